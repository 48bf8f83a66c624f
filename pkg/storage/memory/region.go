package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/nsyszr/gridadmin/pkg/model"
	"github.com/nsyszr/gridadmin/pkg/storage"
)

type regionStore struct {
	store  map[int32]model.Region
	nextID int32
	sync.RWMutex
}

func newRegionStore() *regionStore {
	return &regionStore{
		store:  make(map[int32]model.Region),
		nextID: 1,
	}
}

// FetchAll returns the regions in creation order.
func (s *regionStore) FetchAll() ([]model.Region, error) {
	s.RLock()
	defer s.RUnlock()

	models := make([]model.Region, 0, len(s.store))
	for _, m := range s.store {
		models = append(models, m)
	}
	sort.Slice(models, func(i, j int) bool { return models[i].ID < models[j].ID })

	return models, nil
}

func (s *regionStore) FindByName(name string) (*model.Region, error) {
	s.RLock()
	defer s.RUnlock()

	if m, ok := s.findByName(name); ok {
		return &m, nil
	}
	return nil, storage.ErrNotFound
}

func (s *regionStore) Create(m *model.Region) error {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.findByName(m.Name); ok {
		return storage.ErrAlreadyExists
	}

	m.ID = s.getNextID()
	m.CreatedAt = time.Now().Round(time.Second).UTC()
	m.UpdatedAt = time.Now().Round(time.Second).UTC()

	s.store[m.ID] = *m

	return nil
}

func (s *regionStore) LoadArchive(name, archive string) error {
	s.Lock()
	defer s.Unlock()

	m, ok := s.findByName(name)
	if !ok {
		return storage.ErrNotFound
	}

	m.Archive = archive
	m.UpdatedAt = time.Now().Round(time.Second).UTC()
	s.store[m.ID] = m

	return nil
}

func (s *regionStore) DeleteAll() error {
	s.Lock()
	defer s.Unlock()

	s.store = make(map[int32]model.Region)

	return nil
}

func (s *regionStore) findByName(name string) (model.Region, bool) {
	for _, m := range s.store {
		if m.Name == name {
			return m, true
		}
	}
	return model.Region{}, false
}

func (s *regionStore) getNextID() int32 {
	id := s.nextID
	s.nextID++
	return id
}
