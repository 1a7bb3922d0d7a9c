package usecase

import (
	"context"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/forge-lab/daedalus/pkg/domain/interfaces"
	"github.com/forge-lab/daedalus/pkg/domain/model"
	"github.com/forge-lab/daedalus/pkg/domain/types"
	"github.com/forge-lab/daedalus/pkg/service/agents"
	"github.com/forge-lab/daedalus/pkg/service/safety"
	"github.com/forge-lab/daedalus/pkg/utils/kmutex"
	"github.com/forge-lab/daedalus/pkg/utils/logging"
)

// experiencePerInteraction is the flat XP award for one pipeline run,
// regardless of how much content was produced.
const experiencePerInteraction = 25

const maxDescriptionLength = 120

// StudioUseCase runs the generation pipeline: safety gate, project
// resolution, phase transition, content generation and ledger updates.
// Runs against the same project are serialized with a per-project mutex,
// so concurrent requests cannot lose appends to each other.
type StudioUseCase struct {
	repo      interfaces.Repository
	directory *agents.Directory
	ledger    *LedgerUseCase
	gate      *safety.Gate
	generate  Generator
	locks     *kmutex.KMutex
}

func NewStudioUseCase(repo interfaces.Repository, directory *agents.Directory, ledger *LedgerUseCase, gate *safety.Gate, generate Generator) *StudioUseCase {
	return &StudioUseCase{
		repo:      repo,
		directory: directory,
		ledger:    ledger,
		gate:      gate,
		generate:  generate,
		locks:     kmutex.New(),
	}
}

// ExecuteInput is one studio request. ProjectID empty means a new project;
// CurrentPhase is only honored for new projects and defaults to genesis.
type ExecuteInput struct {
	Prompt       string
	AgentIDs     []string
	ProjectID    string
	CurrentPhase types.Phase
}

// ExecuteResult is the outcome of one pipeline run
type ExecuteResult struct {
	ProjectID        string
	AgentID          string
	AgentName        string
	Explanation      string
	Code             string
	Language         string
	FileName         string
	Phase            types.Phase
	SuggestedActions []string
	Timestamp        time.Time
}

// Execute runs the full pipeline for one prompt. Validation and the safety
// gate run before any state change; a rejected prompt leaves no trace. Once
// the user message is persisted, later failures do not roll it back.
func (uc *StudioUseCase) Execute(ctx context.Context, in *ExecuteInput) (*ExecuteResult, error) {
	prompt := strings.TrimSpace(in.Prompt)
	if prompt == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "prompt must not be empty")
	}
	if len(in.AgentIDs) == 0 {
		return nil, goerr.Wrap(ErrInvalidInput, "at least one agent must be selected")
	}

	if !uc.gate.Check(ctx, prompt) {
		return nil, goerr.Wrap(ErrPromptRejected, "prompt rejected",
			goerr.V("prompt_length", len(prompt)),
		)
	}

	// One execution ID per pipeline run ties all log lines of a request
	// together across the gate, generator and ledger.
	executionID := uuid.Must(uuid.NewV7()).String()
	ctx = logging.With(ctx, logging.From(ctx).With("execution_id", executionID))

	project, err := uc.resolveProject(ctx, in, prompt)
	if err != nil {
		return nil, err
	}

	projectID := project.ID
	uc.locks.Lock(projectID)
	defer uc.locks.Unlock(projectID)

	// The user's message is part of the transcript even when the rest of
	// the pipeline fails, matching how a chat surface behaves.
	userMsg := &model.Message{
		ID:        model.NewMessageID(),
		Role:      types.MessageRoleUser,
		Content:   prompt,
		CreatedAt: time.Now(),
	}
	if project, err = uc.repo.Project().AppendMessage(ctx, projectID, userMsg); err != nil {
		return nil, goerr.Wrap(err, "failed to append user message", goerr.V(ProjectIDKey, projectID))
	}

	agentID := in.AgentIDs[0]
	agent := uc.directory.Get(agentID)
	if agent == nil {
		return nil, goerr.Wrap(ErrAgentNotFound, "unknown agent", goerr.V(AgentIDKey, agentID))
	}

	mem, err := uc.ledger.GetMemory(ctx, agentID)
	if err != nil {
		return nil, err
	}

	phase := NextPhase(project.CurrentPhase, prompt)
	if project.AdvancePhase(phase) {
		if project, err = uc.repo.Project().Update(ctx, project); err != nil {
			return nil, goerr.Wrap(err, "failed to advance project phase",
				goerr.V(ProjectIDKey, projectID),
				goerr.V("phase", phase),
			)
		}
	}

	out, err := uc.generate(ctx, &GenerationInput{
		Prompt: prompt,
		Agent:  agent,
		Phase:  project.CurrentPhase,
		Memory: mem,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "generation failed",
			goerr.V(ProjectIDKey, projectID),
			goerr.V(AgentIDKey, agentID),
		)
	}

	if _, err := uc.ledger.AddExperience(ctx, agentID, experiencePerInteraction); err != nil {
		return nil, goerr.Wrap(err, "failed to award experience", goerr.V(AgentIDKey, agentID))
	}
	if err := uc.ledger.RecordInteraction(ctx, agentID, projectID, prompt); err != nil {
		return nil, goerr.Wrap(err, "failed to record interaction",
			goerr.V(AgentIDKey, agentID),
			goerr.V(ProjectIDKey, projectID),
		)
	}

	if out.Code != "" && out.FileName != "" {
		file := &model.ProjectFile{
			Name:     out.FileName,
			Content:  out.Code,
			Language: out.Language,
		}
		if project, err = uc.repo.Project().AppendFile(ctx, projectID, file); err != nil {
			return nil, goerr.Wrap(err, "failed to append generated file",
				goerr.V(ProjectIDKey, projectID),
				goerr.V("file_name", out.FileName),
			)
		}
	}

	assistantMsg := &model.Message{
		ID:        model.NewMessageID(),
		Role:      types.MessageRoleAssistant,
		Content:   out.Explanation,
		Code:      out.Code,
		Language:  out.Language,
		AgentID:   agentID,
		AgentName: agent.Name,
		Phase:     project.CurrentPhase,
		CreatedAt: time.Now(),
	}
	if project, err = uc.repo.Project().AppendMessage(ctx, projectID, assistantMsg); err != nil {
		return nil, goerr.Wrap(err, "failed to append assistant message", goerr.V(ProjectIDKey, projectID))
	}

	return &ExecuteResult{
		ProjectID:        project.ID,
		AgentID:          agentID,
		AgentName:        agent.Name,
		Explanation:      out.Explanation,
		Code:             out.Code,
		Language:         out.Language,
		FileName:         out.FileName,
		Phase:            project.CurrentPhase,
		SuggestedActions: out.SuggestedActions,
		Timestamp:        assistantMsg.CreatedAt,
	}, nil
}

// resolveProject loads the addressed project or creates a fresh one when no
// ID was given. A missing ID on an explicit reference is an error, not a
// create-on-miss.
func (uc *StudioUseCase) resolveProject(ctx context.Context, in *ExecuteInput, prompt string) (*model.Project, error) {
	if in.ProjectID != "" {
		project, err := uc.repo.Project().Get(ctx, in.ProjectID)
		if err != nil {
			if isNotFound(err) {
				return nil, goerr.Wrap(ErrProjectNotFound, "no such project", goerr.V(ProjectIDKey, in.ProjectID))
			}
			return nil, goerr.Wrap(err, "failed to load project", goerr.V(ProjectIDKey, in.ProjectID))
		}
		return project, nil
	}

	phase := types.PhaseGenesis
	if in.CurrentPhase != "" && in.CurrentPhase.Validate() == nil {
		phase = in.CurrentPhase
	}

	project := &model.Project{
		Name:         deriveProjectName(prompt),
		Description:  truncate(prompt, maxDescriptionLength),
		Status:       types.ProjectStatusActive,
		CurrentPhase: phase,
		AgentIDs:     in.AgentIDs,
	}

	created, err := uc.repo.Project().Create(ctx, project)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create project")
	}
	return created, nil
}

var projectNameVerbs = []string{"create", "build", "make"}

// deriveProjectName derives a short title from the prompt: the words
// following a creation verb, title-cased, capped at four. Prompts without a
// creation verb get the generic name.
func deriveProjectName(prompt string) string {
	words := strings.Fields(prompt)

	start := -1
	for i, w := range words {
		lower := strings.ToLower(strings.Trim(w, ".,!?"))
		for _, verb := range projectNameVerbs {
			if lower == verb {
				start = i + 1
				break
			}
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 || start >= len(words) {
		return "New Project"
	}

	var parts []string
	for _, w := range words[start:] {
		cleaned := strings.Trim(w, ".,!?")
		if cleaned == "" {
			continue
		}
		lower := strings.ToLower(cleaned)
		if lower == "a" || lower == "an" || lower == "the" {
			continue
		}
		parts = append(parts, titleWord(lower))
		if len(parts) == 4 {
			break
		}
	}
	if len(parts) == 0 {
		return "New Project"
	}
	return strings.Join(parts, " ")
}

// titleWord upper-cases the first rune. Prompts are not ASCII-only, so
// byte slicing would split multibyte characters.
func titleWord(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError && size <= 1 {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}

// truncate shortens s to at most max runes, ending with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
