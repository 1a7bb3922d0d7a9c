package model

// Agent represents a provisioned agent persona. The catalog entry is
// immutable at runtime; leveling state lives in AgentMemory.
type Agent struct {
	ID      string
	TokenID string
	Name    string
	Role    string
	Level   int
	XP      int
	MaxXP   int
	Status  string

	Skills    []AgentSkill
	Stats     AgentStats
	Abilities []AgentAbility
	Tasks     []AgentTask
}

// AgentSkill is a named proficiency with the current and maximum level
type AgentSkill struct {
	Name     string
	Level    int
	MaxLevel int
}

// AgentStats holds aggregate execution statistics for an agent
type AgentStats struct {
	TasksCompleted  int
	SuccessRate     int
	AvgResponseTime string
	TotalRuntime    string
}

// AbilityType distinguishes always-on abilities from invocable ones
type AbilityType string

const (
	AbilityTypePassive AbilityType = "passive"
	AbilityTypeActive  AbilityType = "active"
)

// AgentAbility is a capability in the agent's catalog
type AgentAbility struct {
	ID          string
	Name        string
	Description string
	Type        AbilityType
	Cooldown    int
	EnergyCost  int
}

// TaskDifficulty grades an executable task definition
type TaskDifficulty string

const (
	TaskDifficultyEasy   TaskDifficulty = "easy"
	TaskDifficultyMedium TaskDifficulty = "medium"
	TaskDifficultyHard   TaskDifficulty = "hard"
)

// ExperienceForDifficulty returns the XP awarded for completing a task of
// the given difficulty.
func ExperienceForDifficulty(d TaskDifficulty) int {
	switch d {
	case TaskDifficultyMedium:
		return 50
	case TaskDifficultyHard:
		return 100
	default:
		return 25
	}
}

// AgentTask is an executable task definition with typed parameters
type AgentTask struct {
	ID            string
	Name          string
	Description   string
	Function      string
	Parameters    []TaskParameter
	EstimatedTime string
	Difficulty    TaskDifficulty
}

// TaskParameter describes one typed parameter of an AgentTask
type TaskParameter struct {
	Name     string
	Type     string
	Required bool
}
