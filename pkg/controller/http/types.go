package http

import (
	"time"

	"github.com/forge-lab/daedalus/pkg/domain/model"
	"github.com/forge-lab/daedalus/pkg/usecase"
)

// Request and response shapes for the JSON API. The wire format uses
// camelCase keys; domain models stay free of JSON tags.

type executeRequest struct {
	Prompt       string   `json:"prompt"`
	AgentIDs     []string `json:"agentIds"`
	ProjectID    string   `json:"projectId,omitempty"`
	CurrentPhase string   `json:"currentPhase,omitempty"`
}

type executeResponse struct {
	ProjectID        string    `json:"projectId"`
	AgentID          string    `json:"agentId"`
	AgentName        string    `json:"agentName"`
	Explanation      string    `json:"explanation"`
	Code             string    `json:"code,omitempty"`
	Language         string    `json:"language,omitempty"`
	FileName         string    `json:"fileName,omitempty"`
	Phase            string    `json:"phase"`
	SuggestedActions []string  `json:"suggestedActions,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

func toExecuteResponse(r *usecase.ExecuteResult) *executeResponse {
	return &executeResponse{
		ProjectID:        r.ProjectID,
		AgentID:          r.AgentID,
		AgentName:        r.AgentName,
		Explanation:      r.Explanation,
		Code:             r.Code,
		Language:         r.Language,
		FileName:         r.FileName,
		Phase:            r.Phase.String(),
		SuggestedActions: r.SuggestedActions,
		Timestamp:        r.Timestamp,
	}
}

type agentSkillResponse struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	MaxLevel int    `json:"maxLevel"`
}

type agentStatsResponse struct {
	TasksCompleted  int    `json:"tasksCompleted"`
	SuccessRate     int    `json:"successRate"`
	AvgResponseTime string `json:"avgResponseTime"`
	TotalRuntime    string `json:"totalRuntime"`
}

type agentAbilityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Cooldown    int    `json:"cooldown"`
	EnergyCost  int    `json:"energyCost"`
}

type agentTaskResponse struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	Description   string                  `json:"description"`
	Function      string                  `json:"function"`
	Parameters    []taskParameterResponse `json:"parameters,omitempty"`
	EstimatedTime string                  `json:"estimatedTime"`
	Difficulty    string                  `json:"difficulty"`
}

type taskParameterResponse struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

type agentResponse struct {
	ID        string                 `json:"id"`
	TokenID   string                 `json:"tokenId"`
	Name      string                 `json:"name"`
	Role      string                 `json:"role"`
	Level     int                    `json:"level"`
	XP        int                    `json:"xp"`
	MaxXP     int                    `json:"maxXp"`
	Status    string                 `json:"status"`
	Skills    []agentSkillResponse   `json:"skills,omitempty"`
	Stats     agentStatsResponse     `json:"stats"`
	Abilities []agentAbilityResponse `json:"abilities,omitempty"`
	Tasks     []agentTaskResponse    `json:"tasks,omitempty"`
}

func toAgentResponse(a *model.Agent) *agentResponse {
	resp := &agentResponse{
		ID:      a.ID,
		TokenID: a.TokenID,
		Name:    a.Name,
		Role:    a.Role,
		Level:   a.Level,
		XP:      a.XP,
		MaxXP:   a.MaxXP,
		Status:  a.Status,
		Stats: agentStatsResponse{
			TasksCompleted:  a.Stats.TasksCompleted,
			SuccessRate:     a.Stats.SuccessRate,
			AvgResponseTime: a.Stats.AvgResponseTime,
			TotalRuntime:    a.Stats.TotalRuntime,
		},
	}
	for _, s := range a.Skills {
		resp.Skills = append(resp.Skills, agentSkillResponse{
			Name:     s.Name,
			Level:    s.Level,
			MaxLevel: s.MaxLevel,
		})
	}
	for _, ab := range a.Abilities {
		resp.Abilities = append(resp.Abilities, agentAbilityResponse{
			ID:          ab.ID,
			Name:        ab.Name,
			Description: ab.Description,
			Type:        string(ab.Type),
			Cooldown:    ab.Cooldown,
			EnergyCost:  ab.EnergyCost,
		})
	}
	for _, task := range a.Tasks {
		tr := agentTaskResponse{
			ID:            task.ID,
			Name:          task.Name,
			Description:   task.Description,
			Function:      task.Function,
			EstimatedTime: task.EstimatedTime,
			Difficulty:    string(task.Difficulty),
		}
		for _, p := range task.Parameters {
			tr.Parameters = append(tr.Parameters, taskParameterResponse{
				Name:     p.Name,
				Type:     p.Type,
				Required: p.Required,
			})
		}
		resp.Tasks = append(resp.Tasks, tr)
	}
	return resp
}

type messageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Code      string    `json:"code,omitempty"`
	Language  string    `json:"language,omitempty"`
	AgentID   string    `json:"agentId,omitempty"`
	AgentName string    `json:"agentName,omitempty"`
	Phase     string    `json:"phase,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type projectFileResponse struct {
	Name     string `json:"name"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

type projectResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	Status       string                `json:"status"`
	CurrentPhase string                `json:"currentPhase"`
	Messages     []messageResponse     `json:"messages"`
	Files        []projectFileResponse `json:"files"`
	AgentIDs     []string              `json:"agentIds"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

func toProjectResponse(p *model.Project) *projectResponse {
	resp := &projectResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Status:       string(p.Status),
		CurrentPhase: p.CurrentPhase.String(),
		Messages:     []messageResponse{},
		Files:        []projectFileResponse{},
		AgentIDs:     p.AgentIDs,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	for _, m := range p.Messages {
		resp.Messages = append(resp.Messages, messageResponse{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			Code:      m.Code,
			Language:  m.Language,
			AgentID:   m.AgentID,
			AgentName: m.AgentName,
			Phase:     m.Phase.String(),
			CreatedAt: m.CreatedAt,
		})
	}
	for _, f := range p.Files {
		resp.Files = append(resp.Files, projectFileResponse{
			Name:     f.Name,
			Content:  f.Content,
			Language: f.Language,
		})
	}
	return resp
}

type createProjectRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	AgentIDs    []string `json:"agentIds,omitempty"`
}
