package agents

import "github.com/forge-lab/daedalus/pkg/domain/model"

// defaultAgents is the built-in persona set used when no catalog file is
// configured. It mirrors what provisioning would normally write.
func defaultAgents() []*model.Agent {
	return []*model.Agent{
		{
			ID:      "agent-001",
			TokenID: "DAED-NFT-00001",
			Name:    "Vulcan",
			Role:    "Full Stack Engineer",
			Level:   7,
			XP:      750,
			MaxXP:   1000,
			Status:  "active",
			Skills: []model.AgentSkill{
				{Name: "Web Development", Level: 8, MaxLevel: 10},
				{Name: "API Design", Level: 6, MaxLevel: 10},
				{Name: "Database Management", Level: 7, MaxLevel: 10},
				{Name: "UI Implementation", Level: 9, MaxLevel: 10},
			},
			Stats: model.AgentStats{
				TasksCompleted:  342,
				SuccessRate:     94,
				AvgResponseTime: "1.2s",
				TotalRuntime:    "156h",
			},
			Abilities: []model.AgentAbility{
				{
					ID:          "dev-001",
					Name:        "Code Generation",
					Description: "Generate production-ready code in multiple languages",
					Type:        model.AbilityTypeActive,
					Cooldown:    5,
					EnergyCost:  20,
				},
				{
					ID:          "dev-002",
					Name:        "Bug Detection",
					Description: "Automatically scan and identify bugs in a codebase",
					Type:        model.AbilityTypePassive,
				},
				{
					ID:          "dev-003",
					Name:        "Auto-Deploy",
					Description: "Deploy applications directly to production",
					Type:        model.AbilityTypeActive,
					Cooldown:    30,
					EnergyCost:  50,
				},
			},
			Tasks: []model.AgentTask{
				{
					ID:          "task-dev-001",
					Name:        "Build API Endpoint",
					Description: "Create a new RESTful API endpoint with authentication",
					Function:    "createAPIEndpoint",
					Parameters: []model.TaskParameter{
						{Name: "endpoint", Type: "string", Required: true},
						{Name: "method", Type: "GET|POST|PUT|DELETE", Required: true},
						{Name: "auth", Type: "boolean", Required: false},
					},
					EstimatedTime: "2-5 minutes",
					Difficulty:    model.TaskDifficultyMedium,
				},
				{
					ID:          "task-dev-002",
					Name:        "Deploy Application",
					Description: "Deploy the current application to a production environment",
					Function:    "deployApp",
					Parameters: []model.TaskParameter{
						{Name: "environment", Type: "staging|production", Required: true},
						{Name: "runTests", Type: "boolean", Required: false},
					},
					EstimatedTime: "5-10 minutes",
					Difficulty:    model.TaskDifficultyHard,
				},
				{
					ID:          "task-dev-003",
					Name:        "Generate Component",
					Description: "Create a new UI component with specified props",
					Function:    "generateComponent",
					Parameters: []model.TaskParameter{
						{Name: "componentName", Type: "string", Required: true},
						{Name: "props", Type: "object", Required: false},
					},
					EstimatedTime: "1-3 minutes",
					Difficulty:    model.TaskDifficultyEasy,
				},
			},
		},
		{
			ID:      "agent-002",
			TokenID: "DAED-NFT-00002",
			Name:    "Hermes",
			Role:    "Outbound Specialist",
			Level:   3,
			XP:      320,
			MaxXP:   500,
			Status:  "active",
			Skills: []model.AgentSkill{
				{Name: "Lead Research", Level: 7, MaxLevel: 10},
				{Name: "Campaign Writing", Level: 6, MaxLevel: 10},
			},
			Stats: model.AgentStats{
				TasksCompleted:  128,
				SuccessRate:     88,
				AvgResponseTime: "2.1s",
				TotalRuntime:    "64h",
			},
			Abilities: []model.AgentAbility{
				{
					ID:          "sales-001",
					Name:        "Lead Discovery",
					Description: "Find and score potential leads for a target industry",
					Type:        model.AbilityTypeActive,
					Cooldown:    10,
					EnergyCost:  15,
				},
			},
			Tasks: []model.AgentTask{
				{
					ID:          "task-sales-001",
					Name:        "Find Leads",
					Description: "Search for potential leads in a given industry",
					Function:    "findLeads",
					Parameters: []model.TaskParameter{
						{Name: "industry", Type: "string", Required: true},
						{Name: "location", Type: "string", Required: false},
					},
					EstimatedTime: "3-8 minutes",
					Difficulty:    model.TaskDifficultyMedium,
				},
				{
					ID:          "task-sales-002",
					Name:        "Send Email Campaign",
					Description: "Send a templated campaign to a recipient list",
					Function:    "sendEmailCampaign",
					Parameters: []model.TaskParameter{
						{Name: "recipients", Type: "string[]", Required: true},
						{Name: "template", Type: "string", Required: true},
					},
					EstimatedTime: "1-2 minutes",
					Difficulty:    model.TaskDifficultyEasy,
				},
			},
		},
		{
			ID:      "agent-003",
			TokenID: "DAED-NFT-00003",
			Name:    "Athena",
			Role:    "Support Specialist",
			Level:   5,
			XP:      540,
			MaxXP:   800,
			Status:  "idle",
			Skills: []model.AgentSkill{
				{Name: "Ticket Triage", Level: 8, MaxLevel: 10},
				{Name: "Knowledge Curation", Level: 7, MaxLevel: 10},
			},
			Stats: model.AgentStats{
				TasksCompleted:  215,
				SuccessRate:     96,
				AvgResponseTime: "0.9s",
				TotalRuntime:    "98h",
			},
			Abilities: []model.AgentAbility{
				{
					ID:          "support-001",
					Name:        "Auto-Resolution",
					Description: "Resolve common tickets with known solutions",
					Type:        model.AbilityTypePassive,
				},
			},
			Tasks: []model.AgentTask{
				{
					ID:          "task-support-001",
					Name:        "Resolve Ticket",
					Description: "Resolve a support ticket with an automated solution",
					Function:    "resolveTicket",
					Parameters: []model.TaskParameter{
						{Name: "ticketId", Type: "string", Required: true},
						{Name: "priority", Type: "low|medium|high", Required: false},
					},
					EstimatedTime: "1-4 minutes",
					Difficulty:    model.TaskDifficultyMedium,
				},
				{
					ID:          "task-support-002",
					Name:        "Generate KB Article",
					Description: "Create a knowledge base article for a topic",
					Function:    "generateKBArticle",
					Parameters: []model.TaskParameter{
						{Name: "topic", Type: "string", Required: true},
						{Name: "difficulty", Type: "string", Required: false},
					},
					EstimatedTime: "2-6 minutes",
					Difficulty:    model.TaskDifficultyEasy,
				},
			},
		},
	}
}
