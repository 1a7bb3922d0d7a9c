package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/forge-lab/daedalus/pkg/domain/model"
)

func TestLevelForExperience(t *testing.T) {
	tests := []struct {
		name string
		xp   int
		want int
	}{
		{"zero", 0, 0},
		{"below threshold", 99, 0},
		{"exact threshold", 100, 1},
		{"above threshold", 110, 1},
		{"multiple levels", 750, 7},
		{"negative clamps to zero", -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Number(t, model.LevelForExperience(tt.xp)).Equal(tt.want)
		})
	}
}

func TestAgentMemory_AddExperience(t *testing.T) {
	t.Run("experience is additive", func(t *testing.T) {
		mem := &model.AgentMemory{AgentID: "agent-001", Experience: 10}

		amounts := []int{25, 50, 25}
		for _, a := range amounts {
			mem.AddExperience(a)
		}

		gt.Number(t, mem.Experience).Equal(110)
		gt.Number(t, mem.Level).Equal(1)
		gt.Number(t, mem.SuccessfulTasks).Equal(3)
	})

	t.Run("level up appends audit entry", func(t *testing.T) {
		mem := &model.AgentMemory{AgentID: "agent-001", Experience: 95}

		mem.AddExperience(15)

		gt.Number(t, mem.Experience).Equal(110)
		gt.Number(t, mem.Level).Equal(1)
		gt.Array(t, mem.Knowledge).Has("leveled up to 1")
	})

	t.Run("no audit entry without level up", func(t *testing.T) {
		mem := &model.AgentMemory{AgentID: "agent-001", Experience: 10}

		mem.AddExperience(20)

		gt.Number(t, mem.Level).Equal(0)
		gt.Array(t, mem.Knowledge).Length(0)
	})

	t.Run("non-positive amount is a no-op", func(t *testing.T) {
		mem := &model.AgentMemory{AgentID: "agent-001", Experience: 50}

		mem.AddExperience(0)
		mem.AddExperience(-10)

		gt.Number(t, mem.Experience).Equal(50)
		gt.Number(t, mem.SuccessfulTasks).Equal(0)
	})

	t.Run("level never regresses", func(t *testing.T) {
		mem := &model.AgentMemory{AgentID: "agent-001", Experience: 250, Level: 2}

		mem.AddExperience(30)

		gt.Number(t, mem.Level).Equal(2)
	})
}

func TestAgentMemory_RecordInteraction(t *testing.T) {
	t.Run("project id added once", func(t *testing.T) {
		mem := &model.AgentMemory{AgentID: "agent-001"}

		mem.RecordInteraction("proj-001", "Built a todo application backend")
		mem.RecordInteraction("proj-001", "Reviewed the todo application backend")

		gt.Array(t, mem.ProjectIDs).Equal([]string{"proj-001"})
	})

	t.Run("short context is skipped", func(t *testing.T) {
		mem := &model.AgentMemory{AgentID: "agent-001"}

		mem.RecordInteraction("proj-001", "short")

		gt.Array(t, mem.Knowledge).Length(0)
		gt.Array(t, mem.ProjectIDs).Length(1)
	})

	t.Run("duplicate context is skipped", func(t *testing.T) {
		mem := &model.AgentMemory{AgentID: "agent-001"}

		ctx := "Built a todo application backend"
		mem.RecordInteraction("proj-001", ctx)
		mem.RecordInteraction("proj-002", ctx)

		gt.Array(t, mem.Knowledge).Equal([]string{ctx})
		gt.Array(t, mem.ProjectIDs).Length(2)
	})
}

func TestNewAgentMemory(t *testing.T) {
	agent := &model.Agent{
		ID: "agent-001",
		XP: 750,
		Stats: model.AgentStats{
			TasksCompleted: 342,
		},
	}

	mem := model.NewAgentMemory(agent)

	gt.Value(t, mem.AgentID).Equal("agent-001")
	gt.Number(t, mem.Experience).Equal(750)
	gt.Number(t, mem.Level).Equal(7)
	gt.Number(t, mem.SuccessfulTasks).Equal(342)
	gt.Number(t, len(mem.Knowledge)).NotEqual(0)
}

func TestAgentMemory_Clone(t *testing.T) {
	mem := &model.AgentMemory{
		AgentID:    "agent-001",
		Experience: 100,
		Level:      1,
		Knowledge:  []string{"Basic code generation"},
		ProjectIDs: []string{"proj-001"},
	}

	copied := mem.Clone()
	copied.Knowledge = append(copied.Knowledge, "mutation")
	copied.Experience = 999

	gt.Number(t, mem.Experience).Equal(100)
	gt.Array(t, mem.Knowledge).Length(1)
}
