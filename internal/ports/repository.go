package ports

import (
	"context"

	"gitnag/internal/domain"
)

// RepositoryProvider is the authority for raw repository state
type RepositoryProvider interface {
	// Available reports whether the provider can be used at all.
	// Returns domain.ErrProviderUnavailable (wrapped) when it cannot.
	Available(ctx context.Context) error

	// OpenRepository returns the state of the repository containing root.
	// Returns nil, nil when root is not inside a repository.
	OpenRepository(ctx context.Context, root string) (*domain.RepositoryState, error)
}
