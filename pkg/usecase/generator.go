package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/forge-lab/daedalus/pkg/domain/model"
	"github.com/forge-lab/daedalus/pkg/domain/types"
)

// GenerationInput carries everything a generator may use to produce content
type GenerationInput struct {
	Prompt string
	Agent  *model.Agent
	Phase  types.Phase
	Memory *model.AgentMemory
}

// GenerationOutput is the structured content produced by one generation step.
// Code, FileName and Language are empty when the phase produces prose only.
type GenerationOutput struct {
	Explanation      string
	Code             string
	FileName         string
	Language         string
	SuggestedActions []string
}

// Generator produces phase-appropriate content for a prompt. The pipeline
// treats it as a black box; any function with this signature can serve.
type Generator func(ctx context.Context, in *GenerationInput) (*GenerationOutput, error)

// Suggested follow-up actions per phase, surfaced to the caller so a client
// can render them as quick replies.
func suggestedActionsForPhase(phase types.Phase) []string {
	switch phase {
	case types.PhaseImplementation:
		return []string{"Review the code", "Add another feature", "Polish and finish"}
	case types.PhasePerfection:
		return []string{"Ship it", "Request another review", "Start a new project"}
	default:
		return []string{"Start implementation", "Refine the plan", "Add more requirements"}
	}
}

// TemplateGenerator returns a deterministic generator that produces templated
// content per phase. It is the fallback when no LLM client is configured and
// the fixture for tests.
func TemplateGenerator() Generator {
	return func(ctx context.Context, in *GenerationInput) (*GenerationOutput, error) {
		switch in.Phase {
		case types.PhaseImplementation:
			return generateImplementation(in), nil
		case types.PhasePerfection:
			return generatePerfection(in), nil
		default:
			return generateGenesis(in), nil
		}
	}
}

// generateGenesis produces a plan with no code
func generateGenesis(in *GenerationInput) *GenerationOutput {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s here. Let's plan this out before writing any code.\n\n", in.Agent.Name)
	fmt.Fprintf(&sb, "Request: %s\n\n", in.Prompt)
	sb.WriteString("Proposed approach:\n")
	sb.WriteString("1. Define the core data model and its invariants\n")
	sb.WriteString("2. Sketch the main screens or endpoints\n")
	sb.WriteString("3. Pick the storage layer and wire the scaffolding\n")
	sb.WriteString("\nSay \"start\" when you want me to begin the implementation.")

	return &GenerationOutput{
		Explanation:      sb.String(),
		SuggestedActions: suggestedActionsForPhase(types.PhaseGenesis),
	}
}

// generateImplementation produces code plus an explanation. The scaffold
// choice keys loosely on prompt keywords.
func generateImplementation(in *GenerationInput) *GenerationOutput {
	name := identifierFromPrompt(in.Prompt)

	var code, fileName, kind string
	if strings.Contains(strings.ToLower(in.Prompt), "component") {
		kind = "component"
		fileName = fmt.Sprintf("components/%s.tsx", strings.ToLower(name))
		code = fmt.Sprintf(`interface %sProps {
  title: string
}

export function %s({ title }: %sProps) {
  return (
    <section>
      <h2>{title}</h2>
    </section>
  )
}
`, name, name, name)
	} else {
		kind = "page"
		fileName = fmt.Sprintf("app/%s/page.tsx", strings.ToLower(name))
		code = fmt.Sprintf(`export default function %sPage() {
  return (
    <main>
      <h1>%s</h1>
    </main>
  )
}
`, name, name)
	}

	explanation := fmt.Sprintf(
		"%s generated a %s scaffold for %q. It compiles standalone; extend the markup and wire the data layer next.",
		in.Agent.Name, kind, in.Prompt,
	)

	return &GenerationOutput{
		Explanation:      explanation,
		Code:             code,
		FileName:         fileName,
		Language:         "tsx",
		SuggestedActions: suggestedActionsForPhase(types.PhaseImplementation),
	}
}

// generatePerfection produces a review-style explanation plus a refactored
// snippet.
func generatePerfection(in *GenerationInput) *GenerationOutput {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s reviewed the current state of the project.\n\n", in.Agent.Name)
	sb.WriteString("Findings:\n")
	sb.WriteString("- Extract repeated markup into shared components\n")
	sb.WriteString("- Add explicit types on all public boundaries\n")
	sb.WriteString("- Cover the happy path and the empty state with tests\n")

	code := `export function assertNonEmpty<T>(items: T[], label: string): T[] {
  if (items.length === 0) {
    throw new Error(` + "`${label} must not be empty`" + `)
  }
  return items
}
`

	return &GenerationOutput{
		Explanation:      sb.String(),
		Code:             code,
		FileName:         "lib/refactor.ts",
		Language:         "ts",
		SuggestedActions: suggestedActionsForPhase(types.PhasePerfection),
	}
}

// identifierFromPrompt derives a PascalCase identifier from the first few
// meaningful words of the prompt.
func identifierFromPrompt(prompt string) string {
	words := strings.Fields(prompt)
	var parts []string
	for _, w := range words {
		cleaned := strings.Map(func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
				return r
			}
			return -1
		}, w)
		if cleaned == "" || isFillerWord(cleaned) {
			continue
		}
		parts = append(parts, strings.ToUpper(cleaned[:1])+strings.ToLower(cleaned[1:]))
		if len(parts) == 2 {
			break
		}
	}
	if len(parts) == 0 {
		return "Generated"
	}
	return strings.Join(parts, "")
}

var fillerWords = map[string]bool{
	"a": true, "an": true, "the": true, "my": true, "our": true,
	"create": true, "build": true, "make": true, "write": true, "add": true,
	"please": true, "for": true, "me": true, "new": true, "some": true,
	"component": true, "page": true, "app": true,
}

func isFillerWord(w string) bool {
	return fillerWords[strings.ToLower(w)]
}
