package interfaces

import (
	"context"

	"github.com/forge-lab/daedalus/pkg/domain/model"
)

// ProjectRepository defines the interface for Project data access.
// A missing project is signaled with an error wrapping the backend's
// ErrNotFound sentinel; callers decide whether to create-on-miss.
type ProjectRepository interface {
	// Create creates a new project. The ID is auto-generated when empty,
	// the phase starts at genesis and the status at active.
	Create(ctx context.Context, project *model.Project) (*model.Project, error)

	// Get retrieves a project by ID
	Get(ctx context.Context, id string) (*model.Project, error)

	// List retrieves all projects ordered by most-recently-updated first
	List(ctx context.Context) ([]*model.Project, error)

	// Update merges the given project state and refreshes UpdatedAt.
	// The ID never changes.
	Update(ctx context.Context, project *model.Project) (*model.Project, error)

	// AppendMessage appends a message to the project transcript.
	// The append is atomic with respect to concurrent appends.
	AppendMessage(ctx context.Context, id string, msg *model.Message) (*model.Project, error)

	// AppendFile appends a generated file to the project.
	// Duplicate file names are allowed; the list records generation history.
	AppendFile(ctx context.Context, id string, file *model.ProjectFile) (*model.Project, error)
}
