package model

import (
	"fmt"
	"slices"
	"time"
)

// experiencePerLevel is the fixed leveling threshold: level = experience / 100
const experiencePerLevel = 100

// knowledgeMinLength is the minimum length of an interaction context worth
// recording in the knowledge log. Shorter contexts are treated as noise.
const knowledgeMinLength = 10

// LevelForExperience derives the level from an experience total
func LevelForExperience(xp int) int {
	if xp < 0 {
		return 0
	}
	return xp / experiencePerLevel
}

// AgentMemory is the mutable experience and knowledge record of an agent.
// Level is always derived from Experience; it is never set independently.
// The record only grows: experience increases, the knowledge log and project
// set gain entries, nothing is ever removed.
type AgentMemory struct {
	AgentID         string
	Experience      int
	Level           int
	SuccessfulTasks int
	Knowledge       []string
	ProjectIDs      []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewAgentMemory seeds a memory record from the agent's static catalog stats
func NewAgentMemory(agent *Agent) *AgentMemory {
	return &AgentMemory{
		AgentID:         agent.ID,
		Experience:      agent.XP,
		Level:           LevelForExperience(agent.XP),
		SuccessfulTasks: agent.Stats.TasksCompleted,
		Knowledge: []string{
			"Basic code generation",
			"Error handling patterns",
			"Component structure",
		},
	}
}

// AddExperience increases experience by amount and recomputes the level.
// Crossing a level threshold appends an audit entry to the knowledge log.
// Each call counts as one completed task. Amounts <= 0 are rejected by the
// ledger before reaching here; a non-positive amount is a no-op.
func (m *AgentMemory) AddExperience(amount int) {
	if amount <= 0 {
		return
	}

	m.Experience += amount

	if newLevel := LevelForExperience(m.Experience); newLevel > m.Level {
		m.Level = newLevel
		m.Knowledge = append(m.Knowledge, fmt.Sprintf("leveled up to %d", newLevel))
	}

	m.SuccessfulTasks++
}

// RecordInteraction associates the project with this memory and appends the
// interaction context to the knowledge log. Contexts shorter than the noise
// threshold or already present are skipped.
func (m *AgentMemory) RecordInteraction(projectID, context string) {
	if projectID != "" && !slices.Contains(m.ProjectIDs, projectID) {
		m.ProjectIDs = append(m.ProjectIDs, projectID)
	}

	if len(context) > knowledgeMinLength && !slices.Contains(m.Knowledge, context) {
		m.Knowledge = append(m.Knowledge, context)
	}
}

// Clone returns a deep copy of the memory record
func (m *AgentMemory) Clone() *AgentMemory {
	copied := &AgentMemory{
		AgentID:         m.AgentID,
		Experience:      m.Experience,
		Level:           m.Level,
		SuccessfulTasks: m.SuccessfulTasks,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Knowledge != nil {
		copied.Knowledge = slices.Clone(m.Knowledge)
	}
	if m.ProjectIDs != nil {
		copied.ProjectIDs = slices.Clone(m.ProjectIDs)
	}
	return copied
}
