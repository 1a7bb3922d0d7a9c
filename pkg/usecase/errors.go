package usecase

import "errors"

// Sentinel errors for the use case layer. The HTTP controller maps these to
// distinct response classes; anything else is reported as an opaque
// processing failure.
var (
	// Validation errors
	ErrInvalidInput = errors.New("invalid input")

	// Policy errors
	ErrPromptRejected = errors.New("prompt rejected by safety gate")

	// Not found errors
	ErrAgentNotFound   = errors.New("agent not found")
	ErrProjectNotFound = errors.New("project not found")
)

// Context keys for error values
const (
	AgentIDKey   = "agent_id"
	ProjectIDKey = "project_id"
)
