package memory

import (
	"context"
	"sync"

	"github.com/gabapcia/walletsync/internal/chainfeed"
)

type checkpointStore struct {
	mu      sync.Mutex
	heights map[string]int64
}

// NewCheckpointStore creates an empty chain feed checkpoint store.
func NewCheckpointStore() *checkpointStore {
	return &checkpointStore{
		heights: make(map[string]int64),
	}
}

func (s *checkpointStore) SaveCheckpoint(_ context.Context, network string, height int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.heights[network] = height
	return nil
}

func (s *checkpointStore) LoadLatestCheckpoint(_ context.Context, network string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	height, ok := s.heights[network]
	if !ok {
		return 0, chainfeed.ErrNoCheckpointFound
	}

	return height, nil
}

var _ chainfeed.CheckpointStorage = (*checkpointStore)(nil)
