package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Project() ProjectRepository
	AgentMemory() AgentMemoryRepository

	Close() error
}
