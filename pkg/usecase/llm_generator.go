package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

//go:embed prompt/studio_system.md
var studioSystemPromptTmpl string

var studioSystemPrompt = template.Must(template.New("studio_system").Parse(studioSystemPromptTmpl))

type studioPromptData struct {
	AgentName string
	AgentRole string
	Phase     string
	Knowledge []string
}

var generationSchema = &gollem.Parameter{
	Title:       "StudioGeneration",
	Description: "Structured response for one studio generation step",
	Type:        gollem.TypeObject,
	Properties: map[string]*gollem.Parameter{
		"explanation": {
			Type:        gollem.TypeString,
			Description: "Explanation of the result, written for the user. Always set.",
			Required:    true,
		},
		"code": {
			Type:        gollem.TypeString,
			Description: "Generated source code. Empty string when the phase produces no code.",
			Required:    false,
		},
		"fileName": {
			Type:        gollem.TypeString,
			Description: "Relative path the code belongs at, e.g. 'components/TodoList.tsx'. Empty when no code.",
			Required:    false,
		},
		"language": {
			Type:        gollem.TypeString,
			Description: "Language of the code, e.g. 'tsx'. Empty when no code.",
			Required:    false,
		},
		"suggestedActions": {
			Type:        gollem.TypeArray,
			Description: "Up to three short follow-up actions the user could take next",
			Required:    false,
			Items: &gollem.Parameter{
				Type: gollem.TypeString,
			},
		},
	},
}

// LLMGenerator returns a generator backed by an LLM session. Output is parsed
// leniently; when the model response cannot be parsed as the expected JSON,
// the raw text becomes the explanation and suggested actions fall back to the
// phase defaults.
func LLMGenerator(client gollem.LLMClient) Generator {
	return func(ctx context.Context, in *GenerationInput) (*GenerationOutput, error) {
		systemPrompt, err := buildStudioSystemPrompt(in)
		if err != nil {
			return nil, err
		}

		session, err := client.NewSession(ctx,
			gollem.WithSessionSystemPrompt(systemPrompt),
			gollem.WithSessionContentType(gollem.ContentTypeJSON),
			gollem.WithSessionResponseSchema(generationSchema),
		)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create generation session")
		}

		resp, err := session.GenerateContent(ctx, gollem.Text(in.Prompt))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to generate content")
		}
		if len(resp.Texts) == 0 {
			return nil, goerr.New("generation returned empty response")
		}

		out := parseGeneration(strings.Join(resp.Texts, "\n"))
		if len(out.SuggestedActions) == 0 {
			out.SuggestedActions = suggestedActionsForPhase(in.Phase)
		}
		return out, nil
	}
}

func buildStudioSystemPrompt(in *GenerationInput) (string, error) {
	data := studioPromptData{
		AgentName: in.Agent.Name,
		AgentRole: in.Agent.Role,
		Phase:     in.Phase.String(),
	}
	if in.Memory != nil {
		data.Knowledge = in.Memory.Knowledge
	}

	var buf bytes.Buffer
	if err := studioSystemPrompt.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to execute studio system prompt template")
	}
	return buf.String(), nil
}
