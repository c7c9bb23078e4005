package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// RunResult is the result of a one-shot script execution.
type RunResult struct {
	OK       bool     `json:"ok" yaml:"ok"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`
	Logs     []string `json:"logs" yaml:"logs"`
	Duration string   `json:"duration" yaml:"duration"`
}

// Runner executes Lua scripts with the hue module in a fresh sandboxed VM.
type Runner struct {
	logger  *slog.Logger
	timeout time.Duration
}

// NewRunner creates a runner. A zero timeout means the caller's context is
// the only limit.
func NewRunner(logger *slog.Logger, timeout time.Duration) *Runner {
	return &Runner{
		logger:  logger.With("component", "script"),
		timeout: timeout,
	}
}

// RunFile reads and executes a script file.
func (r *Runner) RunFile(ctx context.Context, path string) (*RunResult, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return r.RunString(ctx, string(code)), nil
}

// RunString executes Lua code. Output of log() and print() is captured in
// the result and forwarded to the logger.
func (r *Runner) RunString(ctx context.Context, code string) *RunResult {
	start := time.Now()

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	L := lua.NewState()
	defer L.Close()

	// Sandbox
	for _, name := range []string{"os", "io", "loadfile", "dofile", "require", "load", "debug", "package"} {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetContext(ctx)

	Register(L)

	var (
		logs  []string
		logMu sync.Mutex
	)
	capture := func(L *lua.LState) int {
		parts := make([]string, 0, L.GetTop())
		for i := 1; i <= L.GetTop(); i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		msg := strings.Join(parts, "\t")
		logMu.Lock()
		logs = append(logs, msg)
		logMu.Unlock()
		r.logger.Info("script log", "msg", msg)
		return 0
	}
	L.SetGlobal("log", L.NewFunction(capture))
	L.SetGlobal("print", L.NewFunction(capture))

	r.logger.Debug("executing script", "code_len", len(code))

	if err := L.DoString(code); err != nil {
		errStr := err.Error()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) || strings.Contains(errStr, "context deadline exceeded") {
			errStr = fmt.Sprintf("timeout (%s)", r.timeout)
		}
		r.logger.Warn("script error", "err", errStr)
		return &RunResult{OK: false, Error: errStr, Logs: logs, Duration: time.Since(start).String()}
	}

	return &RunResult{OK: true, Logs: logs, Duration: time.Since(start).String()}
}
