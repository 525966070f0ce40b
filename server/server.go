// Package server exposes the completion resolver over a WebSocket command
// protocol and a small JSON HTTP API.
package server

import (
	"context"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/teranos/TALS/config"
	"github.com/teranos/TALS/errors"
	"github.com/teranos/TALS/logger"
	"github.com/teranos/TALS/nta"
	"github.com/teranos/TALS/nta/autocomplete"
)

// commandHandler processes one client command. Handlers run on the client's
// read goroutine; replies go through the client's send queue.
type commandHandler func(s *TALSServer, c *Client, msg *CommandMessage)

// TALSServer serves completion requests to connected editor clients
type TALSServer struct {
	cfg      *config.Config
	repo     *nta.Repository
	resolver *autocomplete.Service
	commands map[string]commandHandler

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex

	mux        *http.ServeMux
	httpServer *http.Server

	logger *zap.SugaredLogger

	// Lifecycle management
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTALSServer creates a server around the given document repository
func NewTALSServer(cfg *config.Config, repo *nta.Repository) (*TALSServer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if repo == nil {
		return nil, errors.New("document repository cannot be nil")
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &TALSServer{
		cfg:        cfg,
		repo:       repo,
		resolver:   autocomplete.NewService(repo),
		commands:   make(map[string]commandHandler),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		mux:        http.NewServeMux(),
		logger:     logger.Logger,
		ctx:        ctx,
		cancel:     cancel,
	}

	s.registerCommands()
	s.setupHTTPRoutes()
	return s, nil
}

// registerCommands binds command names to their handlers
func (s *TALSServer) registerCommands() {
	s.commands["autocomplete"] = (*TALSServer).handleAutocompleteCommand
	s.commands["ping"] = (*TALSServer).handlePingCommand
}

// dispatch routes a parsed client message to its registered handler
func (s *TALSServer) dispatch(c *Client, msg *CommandMessage) {
	handler, ok := s.commands[msg.Type]
	if !ok {
		s.logger.Debugw("Unknown command",
			"type", msg.Type,
			"client_id", c.id)
		c.enqueue(ErrorMessage{
			Type:  "error",
			ID:    msg.ID,
			Error: errors.Wrapf(errors.ErrUnknownCommand, "%q", msg.Type).Error(),
		})
		return
	}
	handler(s, c, msg)
}

// handleAutocompleteCommand runs the resolver and replies with suggestions.
// Resolver failures are reported per-message; the connection stays up.
func (s *TALSServer) handleAutocompleteCommand(c *Client, msg *CommandMessage) {
	items, err := s.resolver.Complete(autocomplete.Request{
		XPath:      msg.XPath,
		Offset:     msg.Offset,
		Identifier: msg.Identifier,
	})
	if err != nil {
		s.logger.Debugw("Completion request failed",
			"client_id", c.id,
			"xpath", msg.XPath,
			"error", err)
		c.enqueue(ErrorMessage{Type: "error", ID: msg.ID, Error: err.Error()})
		return
	}

	c.enqueue(CompletionResultMessage{
		Type:  "autocomplete_result",
		ID:    msg.ID,
		Items: items,
	})
}

func (s *TALSServer) handlePingCommand(c *Client, msg *CommandMessage) {
	c.enqueue(PongMessage{Type: "pong", ID: msg.ID})
}

// handleClientRegister handles a new client connection
func (s *TALSServer) handleClientRegister(client *Client) {
	s.mu.Lock()
	if len(s.clients) >= MaxClients {
		s.mu.Unlock()
		s.logger.Warnw("Max clients reached, rejecting connection",
			"client_id", client.id,
			"max_clients", MaxClients)
		client.close()
		return
	}
	s.clients[client] = true
	totalClients := len(s.clients)
	s.mu.Unlock()

	s.logger.Infow("Client connected",
		"client_id", client.id,
		"total_clients", totalClients)
}

// handleClientUnregister handles a client disconnection
func (s *TALSServer) handleClientUnregister(client *Client) {
	s.mu.Lock()
	if _, ok := s.clients[client]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.clients, client)
	totalClients := len(s.clients)
	s.mu.Unlock()

	client.close()

	s.logger.Infow("Client disconnected",
		"client_id", client.id,
		"total_clients", totalClients)
}

// Run starts the server hub event loop
func (s *TALSServer) Run() {
	for {
		select {
		case <-s.ctx.Done():
			s.logger.Debugw("Server hub stopping due to context cancellation")
			return
		case client := <-s.register:
			s.handleClientRegister(client)
		case client := <-s.unregister:
			s.handleClientUnregister(client)
		}
	}
}

// clientCount returns the number of connected clients
func (s *TALSServer) clientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}
