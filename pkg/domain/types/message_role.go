package types

import "github.com/m-mizutani/goerr/v2"

// MessageRole represents the author role of a chat message
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
	MessageRoleSystem    MessageRole = "system"
)

// Validate checks if the role is one of the known values
func (r MessageRole) Validate() error {
	switch r {
	case MessageRoleUser, MessageRoleAssistant, MessageRoleSystem:
		return nil
	}
	return goerr.New("invalid message role", goerr.V("role", string(r)))
}

func (r MessageRole) String() string {
	return string(r)
}
