package zcl

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Registry holds known ZCL cluster definitions keyed by cluster ID.
type Registry struct {
	mu       sync.RWMutex
	clusters map[uint16]*ClusterDef
	logger   *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		clusters: make(map[uint16]*ClusterDef),
		logger:   logger.With("component", "zcl"),
	}
}

// Register adds a cluster definition, merging into an existing definition
// with the same ID.
func (r *Registry) Register(c ClusterDef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.clusters[c.ID]; ok {
		existing.Merge(&c)
		r.logger.Debug("cluster merged", "id", fmt.Sprintf("0x%04X", c.ID), "name", existing.Name)
		return
	}
	r.clusters[c.ID] = c.DeepCopy()
	r.logger.Debug("cluster registered", "id", fmt.Sprintf("0x%04X", c.ID), "name", c.Name,
		"manufacturer", fmt.Sprintf("0x%04X", c.ManufacturerCode))
}

// Get returns a deep copy of the cluster definition, or nil if not found.
func (r *Registry) Get(id uint16) *ClusterDef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := r.clusters[id]
	if c == nil {
		return nil
	}
	return c.DeepCopy()
}

// ByManufacturer returns the clusters registered for a manufacturer code,
// ordered by ID.
func (r *Registry) ByManufacturer(code uint16) []ClusterDef {
	var result []ClusterDef
	for _, c := range r.All() {
		if c.ManufacturerCode == code {
			result = append(result, c)
		}
	}
	return result
}

// All returns deep copies of all registered definitions, ordered by ID.
func (r *Registry) All() []ClusterDef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]ClusterDef, 0, len(r.clusters))
	for _, c := range r.clusters {
		result = append(result, *c.DeepCopy())
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
