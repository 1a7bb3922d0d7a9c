package agents

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/forge-lab/daedalus/pkg/domain/model"
)

// Catalog is the TOML representation of an agent catalog file. The on-disk
// format mirrors the provisioning dataset; it is converted to domain models
// on load.
type Catalog struct {
	Agents []CatalogAgent `toml:"agent"`
}

type CatalogAgent struct {
	ID      string `toml:"id"`
	TokenID string `toml:"token_id"`
	Name    string `toml:"name"`
	Role    string `toml:"role"`
	XP      int    `toml:"xp"`
	MaxXP   int    `toml:"max_xp"`
	Status  string `toml:"status"`

	Skills    []CatalogSkill   `toml:"skill"`
	Stats     CatalogStats     `toml:"stats"`
	Abilities []CatalogAbility `toml:"ability"`
	Tasks     []CatalogTask    `toml:"task"`
}

type CatalogSkill struct {
	Name     string `toml:"name"`
	Level    int    `toml:"level"`
	MaxLevel int    `toml:"max_level"`
}

type CatalogStats struct {
	TasksCompleted  int    `toml:"tasks_completed"`
	SuccessRate     int    `toml:"success_rate"`
	AvgResponseTime string `toml:"avg_response_time"`
	TotalRuntime    string `toml:"total_runtime"`
}

type CatalogAbility struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Type        string `toml:"type"`
	Cooldown    int    `toml:"cooldown"`
	EnergyCost  int    `toml:"energy_cost"`
}

type CatalogTask struct {
	ID            string             `toml:"id"`
	Name          string             `toml:"name"`
	Description   string             `toml:"description"`
	Function      string             `toml:"function"`
	Parameters    []CatalogTaskParam `toml:"parameter"`
	EstimatedTime string             `toml:"estimated_time"`
	Difficulty    string             `toml:"difficulty"`
}

type CatalogTaskParam struct {
	Name     string `toml:"name"`
	Type     string `toml:"type"`
	Required bool   `toml:"required"`
}

// Validate checks the catalog for empty or duplicate agent IDs and missing
// required fields.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Agents))
	for i, a := range c.Agents {
		if a.ID == "" {
			return goerr.New("agent id is required", goerr.V("index", i))
		}
		if seen[a.ID] {
			return goerr.New("duplicate agent id", goerr.V("id", a.ID))
		}
		seen[a.ID] = true

		if a.Name == "" {
			return goerr.New("agent name is required", goerr.V("id", a.ID))
		}
		if a.Role == "" {
			return goerr.New("agent role is required", goerr.V("id", a.ID))
		}

		for _, task := range a.Tasks {
			switch model.TaskDifficulty(task.Difficulty) {
			case model.TaskDifficultyEasy, model.TaskDifficultyMedium, model.TaskDifficultyHard, "":
			default:
				return goerr.New("invalid task difficulty",
					goerr.V("agent", a.ID),
					goerr.V("task", task.ID),
					goerr.V("difficulty", task.Difficulty),
				)
			}
		}
	}
	return nil
}

// ToAgents converts the catalog to domain agents. Leveling state is derived
// from the configured XP.
func (c *Catalog) ToAgents() []*model.Agent {
	result := make([]*model.Agent, 0, len(c.Agents))
	for _, a := range c.Agents {
		agent := &model.Agent{
			ID:      a.ID,
			TokenID: a.TokenID,
			Name:    a.Name,
			Role:    a.Role,
			Level:   model.LevelForExperience(a.XP),
			XP:      a.XP,
			MaxXP:   a.MaxXP,
			Status:  a.Status,
			Stats: model.AgentStats{
				TasksCompleted:  a.Stats.TasksCompleted,
				SuccessRate:     a.Stats.SuccessRate,
				AvgResponseTime: a.Stats.AvgResponseTime,
				TotalRuntime:    a.Stats.TotalRuntime,
			},
		}
		for _, s := range a.Skills {
			agent.Skills = append(agent.Skills, model.AgentSkill{
				Name:     s.Name,
				Level:    s.Level,
				MaxLevel: s.MaxLevel,
			})
		}
		for _, ab := range a.Abilities {
			agent.Abilities = append(agent.Abilities, model.AgentAbility{
				ID:          ab.ID,
				Name:        ab.Name,
				Description: ab.Description,
				Type:        model.AbilityType(ab.Type),
				Cooldown:    ab.Cooldown,
				EnergyCost:  ab.EnergyCost,
			})
		}
		for _, task := range a.Tasks {
			params := make([]model.TaskParameter, 0, len(task.Parameters))
			for _, p := range task.Parameters {
				params = append(params, model.TaskParameter{
					Name:     p.Name,
					Type:     p.Type,
					Required: p.Required,
				})
			}
			agent.Tasks = append(agent.Tasks, model.AgentTask{
				ID:            task.ID,
				Name:          task.Name,
				Description:   task.Description,
				Function:      task.Function,
				Parameters:    params,
				EstimatedTime: task.EstimatedTime,
				Difficulty:    model.TaskDifficulty(task.Difficulty),
			})
		}
		result = append(result, agent)
	}
	return result
}

// LoadCatalog loads and validates an agent catalog from a TOML file
func LoadCatalog(path string) (*Catalog, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read agent catalog", goerr.V("path", path))
	}

	var catalog Catalog
	if err := toml.Unmarshal(data, &catalog); err != nil {
		return nil, goerr.Wrap(err, "failed to parse agent catalog TOML", goerr.V("path", path))
	}

	if err := catalog.Validate(); err != nil {
		return nil, goerr.Wrap(err, "agent catalog validation failed", goerr.V("path", path))
	}

	return &catalog, nil
}
