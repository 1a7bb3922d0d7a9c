package model

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/forge-lab/daedalus/pkg/domain/types"
)

// NewMessageID generates a new ULID-based message ID
func NewMessageID() string {
	return "msg-" + ulid.Make().String()
}

// Message is one entry of a project's chat transcript. Code, Language,
// AgentID, AgentName and Phase are only set on assistant messages.
type Message struct {
	ID        string
	Role      types.MessageRole
	Content   string
	Code      string
	Language  string
	AgentID   string
	AgentName string
	Phase     types.Phase
	CreatedAt time.Time
}
