package interfaces

import (
	"context"

	"github.com/forge-lab/daedalus/pkg/domain/model"
)

// AgentMemoryRepository defines the interface for AgentMemory persistence
type AgentMemoryRepository interface {
	// Get retrieves the memory record for an agent
	Get(ctx context.Context, agentID string) (*model.AgentMemory, error)

	// Put saves the memory record (upsert) and refreshes UpdatedAt
	Put(ctx context.Context, memory *model.AgentMemory) (*model.AgentMemory, error)
}
