package ports

import "context"

// CommandDispatcher runs host commands by identifier (fire-and-forget)
type CommandDispatcher interface {
	Dispatch(ctx context.Context, commandID string, args ...string) error
}
