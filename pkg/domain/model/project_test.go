package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/forge-lab/daedalus/pkg/domain/model"
	"github.com/forge-lab/daedalus/pkg/domain/types"
)

func TestProject_AdvancePhase(t *testing.T) {
	tests := []struct {
		name      string
		current   types.Phase
		next      types.Phase
		advanced  bool
		wantPhase types.Phase
	}{
		{"genesis to implementation", types.PhaseGenesis, types.PhaseImplementation, true, types.PhaseImplementation},
		{"implementation to perfection", types.PhaseImplementation, types.PhasePerfection, true, types.PhasePerfection},
		{"genesis to perfection", types.PhaseGenesis, types.PhasePerfection, true, types.PhasePerfection},
		{"same phase", types.PhaseImplementation, types.PhaseImplementation, false, types.PhaseImplementation},
		{"regression ignored", types.PhasePerfection, types.PhaseGenesis, false, types.PhasePerfection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &model.Project{CurrentPhase: tt.current}
			gt.Value(t, p.AdvancePhase(tt.next)).Equal(tt.advanced)
			gt.Value(t, p.CurrentPhase).Equal(tt.wantPhase)
		})
	}
}

func TestProject_Clone(t *testing.T) {
	p := &model.Project{
		ID:           "proj-001",
		Name:         "Todo App",
		Status:       types.ProjectStatusActive,
		CurrentPhase: types.PhaseGenesis,
		AgentIDs:     []string{"agent-001"},
		Messages: []*model.Message{
			{ID: "msg-001", Role: types.MessageRoleUser, Content: "create a todo app"},
		},
		Files: []*model.ProjectFile{
			{Name: "main.go", Content: "package main", Language: "go"},
		},
	}

	copied := p.Clone()
	copied.Messages[0].Content = "mutated"
	copied.Files[0].Name = "mutated.go"
	copied.AgentIDs[0] = "agent-999"

	gt.Value(t, p.Messages[0].Content).Equal("create a todo app")
	gt.Value(t, p.Files[0].Name).Equal("main.go")
	gt.Value(t, p.AgentIDs[0]).Equal("agent-001")
}

func TestNewProjectID(t *testing.T) {
	id1 := model.NewProjectID()
	id2 := model.NewProjectID()

	gt.Value(t, id1).NotEqual(id2)
	gt.String(t, id1).HasPrefix("proj-")
}
