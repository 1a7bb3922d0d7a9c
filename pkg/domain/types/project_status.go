package types

import "github.com/m-mizutani/goerr/v2"

// ProjectStatus represents the status of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// AllProjectStatuses returns all valid project statuses
func AllProjectStatuses() []ProjectStatus {
	return []ProjectStatus{
		ProjectStatusActive,
		ProjectStatusCompleted,
		ProjectStatusArchived,
	}
}

// Validate checks if the status is one of the known values
func (s ProjectStatus) Validate() error {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusArchived:
		return nil
	}
	return goerr.New("invalid project status", goerr.V("status", string(s)))
}

func (s ProjectStatus) String() string {
	return string(s)
}
