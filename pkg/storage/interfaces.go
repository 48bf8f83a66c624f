package storage

import "github.com/nsyszr/gridadmin/pkg/model"

// Interface is implemented by the storage
type Interface interface {
	Regions() RegionStore
	Broadcasts() BroadcastStore
}

// RegionStore is responsible for managing the Region model
type RegionStore interface {
	FetchAll() ([]model.Region, error)
	FindByName(name string) (*model.Region, error)
	Create(m *model.Region) error
	LoadArchive(name, archive string) error
	DeleteAll() error
}

// BroadcastStore is responsible for managing the Broadcast model
type BroadcastStore interface {
	FetchAll() ([]model.Broadcast, error)
	Create(m *model.Broadcast) error
}
