package memory

import "github.com/nsyszr/gridadmin/pkg/storage"

// Store contains all memory-based sub-stores of the mock grid
type store struct {
	regions    *regionStore
	broadcasts *broadcastStore
}

// NewStore creates a new memory-based Storage interface
func NewStore() storage.Interface {
	return &store{
		regions:    newRegionStore(),
		broadcasts: newBroadcastStore(),
	}
}

// Regions returns a sub-store for managing the Region model
func (s *store) Regions() storage.RegionStore {
	return s.regions
}

// Broadcasts returns a sub-store for managing the Broadcast model
func (s *store) Broadcasts() storage.BroadcastStore {
	return s.broadcasts
}
