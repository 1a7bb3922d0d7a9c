package memory

import (
	"errors"

	"github.com/forge-lab/daedalus/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

type Memory struct {
	project     *projectRepository
	agentMemory *agentMemoryRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		project:     newProjectRepository(),
		agentMemory: newAgentMemoryRepository(),
	}
}

func (m *Memory) Project() interfaces.ProjectRepository {
	return m.project
}

func (m *Memory) AgentMemory() interfaces.AgentMemoryRepository {
	return m.agentMemory
}

func (m *Memory) Close() error {
	return nil
}
