package memory

import (
	"context"
	"sync"

	"github.com/corebank/ledgerengine/internal/domain"
)

// ConfigSource serves a configuration set held in memory.
type ConfigSource struct {
	mu  sync.RWMutex
	set *domain.ConfigSet
}

// NewConfigSource creates a source serving set.
func NewConfigSource(set *domain.ConfigSet) *ConfigSource {
	return &ConfigSource{set: set}
}

// Load returns the held set.
func (s *ConfigSource) Load(ctx context.Context) (*domain.ConfigSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set, nil
}

// Replace swaps the held set; the next Load returns it.
func (s *ConfigSource) Replace(set *domain.ConfigSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set = set
}
