package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/forge-lab/daedalus/pkg/domain/model"
)

type agentMemoryRepository struct {
	mu       sync.RWMutex
	memories map[string]*model.AgentMemory
}

func newAgentMemoryRepository() *agentMemoryRepository {
	return &agentMemoryRepository{
		memories: make(map[string]*model.AgentMemory),
	}
}

func (r *agentMemoryRepository) Get(ctx context.Context, agentID string) (*model.AgentMemory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	memory, exists := r.memories[agentID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "agent memory not found", goerr.V("agentID", agentID))
	}

	return memory.Clone(), nil
}

func (r *agentMemoryRepository) Put(ctx context.Context, memory *model.AgentMemory) (*model.AgentMemory, error) {
	if memory.AgentID == "" {
		return nil, goerr.New("agent ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	saved := memory.Clone()
	if existing, exists := r.memories[memory.AgentID]; exists {
		saved.CreatedAt = existing.CreatedAt
	} else {
		saved.CreatedAt = now
	}
	saved.UpdatedAt = now

	r.memories[saved.AgentID] = saved
	return saved.Clone(), nil
}
