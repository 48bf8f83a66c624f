package memory

import (
	"sync"
	"time"

	"github.com/nsyszr/gridadmin/pkg/model"
)

type broadcastStore struct {
	store  []model.Broadcast
	nextID int32
	sync.RWMutex
}

func newBroadcastStore() *broadcastStore {
	return &broadcastStore{
		nextID: 1,
	}
}

func (s *broadcastStore) FetchAll() ([]model.Broadcast, error) {
	s.RLock()
	defer s.RUnlock()

	models := make([]model.Broadcast, len(s.store))
	copy(models, s.store)

	return models, nil
}

func (s *broadcastStore) Create(m *model.Broadcast) error {
	s.Lock()
	defer s.Unlock()

	m.ID = s.nextID
	s.nextID++
	m.CreatedAt = time.Now().UTC()

	s.store = append(s.store, *m)

	return nil
}
