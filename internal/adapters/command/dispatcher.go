package command

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"gitnag/internal/domain"
	"gitnag/internal/logging"
	"gitnag/internal/ports"
)

// Handler runs one host command
type Handler func(ctx context.Context, args ...string) error

// Dispatcher implements ports.CommandDispatcher with a registry of handlers
type Dispatcher struct {
	handlers map[string]Handler
	mu       sync.RWMutex
}

// Verify interface compliance at compile time
var _ ports.CommandDispatcher = (*Dispatcher)(nil)

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string]Handler),
	}
}

// Register binds a handler to a command ID, replacing any previous one
func (d *Dispatcher) Register(commandID string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[commandID] = h
}

// Commands returns the registered command IDs in sorted order
func (d *Dispatcher) Commands() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]string, 0, len(d.handlers))
	for id := range d.handlers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Dispatch runs the handler registered for commandID
func (d *Dispatcher) Dispatch(ctx context.Context, commandID string, args ...string) error {
	d.mu.RLock()
	h, ok := d.handlers[commandID]
	d.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownCommand, commandID)
	}

	logging.Logger.Info("Dispatching command", "command", commandID, "args", args)
	if err := h(ctx, args...); err != nil {
		return fmt.Errorf("command %s failed: %w", commandID, err)
	}
	return nil
}
