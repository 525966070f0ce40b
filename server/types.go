package server

import (
	"time"

	"github.com/teranos/TALS/nta/autocomplete"
)

const (
	// MaxClients is the maximum number of concurrent WebSocket clients
	MaxClients = 100
	// MaxClientMessageQueueSize is the size of per-client message queues
	MaxClientMessageQueueSize = 64
	// ShutdownTimeout is how long to wait for graceful shutdown
	ShutdownTimeout = 10 * time.Second
)

// CommandMessage represents a client command. Type selects the registered
// handler; ID is echoed back so clients can correlate responses.
type CommandMessage struct {
	Type       string `json:"type"` // "autocomplete", "ping"
	ID         string `json:"id,omitempty"`
	XPath      string `json:"xpath"`      // completion context path
	Offset     int    `json:"offset"`     // cursor offset inside the context
	Identifier string `json:"identifier"` // partial (possibly dotted) identifier
}

// CompletionResultMessage carries resolver output back to the client
type CompletionResultMessage struct {
	Type  string                    `json:"type"` // "autocomplete_result"
	ID    string                    `json:"id,omitempty"`
	Items []autocomplete.Suggestion `json:"items"`
}

// ErrorMessage reports a failed command
type ErrorMessage struct {
	Type  string `json:"type"` // "error"
	ID    string `json:"id,omitempty"`
	Error string `json:"error"`
}

// PongMessage answers a client-level ping
type PongMessage struct {
	Type string `json:"type"` // "pong"
	ID   string `json:"id,omitempty"`
}
