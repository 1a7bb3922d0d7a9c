package model

import (
	"slices"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/forge-lab/daedalus/pkg/domain/types"
)

// NewProjectID generates a new ULID-based project ID. ULIDs sort
// lexicographically by creation time.
func NewProjectID() string {
	return "proj-" + ulid.Make().String()
}

// Project represents a generation project: a chat transcript plus the files
// produced over its lifecycle. Messages and files are append-only; the
// transcript order is insertion order.
type Project struct {
	ID           string
	Name         string
	Description  string
	Status       types.ProjectStatus
	CurrentPhase types.Phase
	Messages     []*Message
	Files        []*ProjectFile
	AgentIDs     []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AdvancePhase moves the project to next if it is not earlier than the
// current phase. Phase regression is never applied.
func (p *Project) AdvancePhase(next types.Phase) bool {
	if next.Before(p.CurrentPhase) || next == p.CurrentPhase {
		return false
	}
	p.CurrentPhase = next
	return true
}

// Clone returns a deep copy of the project
func (p *Project) Clone() *Project {
	copied := &Project{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Status:       p.Status,
		CurrentPhase: p.CurrentPhase,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.AgentIDs != nil {
		copied.AgentIDs = slices.Clone(p.AgentIDs)
	}
	if p.Messages != nil {
		copied.Messages = make([]*Message, len(p.Messages))
		for i, m := range p.Messages {
			cm := *m
			copied.Messages[i] = &cm
		}
	}
	if p.Files != nil {
		copied.Files = make([]*ProjectFile, len(p.Files))
		for i, f := range p.Files {
			cf := *f
			copied.Files[i] = &cf
		}
	}
	return copied
}

// ProjectFile is a generated file artifact. The name acts as a de-facto
// path; duplicates may coexist since the list records generation history.
type ProjectFile struct {
	Name     string
	Content  string
	Language string
}
