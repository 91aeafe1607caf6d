package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	adaptergit "gitnag/internal/adapters/git"
	adaptergogit "gitnag/internal/adapters/gogit"
	"gitnag/internal/domain"
)

func TestNewProvider(t *testing.T) {
	assert.IsType(t, &adaptergit.CLIProvider{}, newProvider("git"))
	assert.IsType(t, &adaptergit.CLIProvider{}, newProvider(""))
	assert.IsType(t, &adaptergogit.Provider{}, newProvider("go-git"))
}

func TestNewProvider_UnknownIsUnavailable(t *testing.T) {
	p := newProvider("svn")

	err := p.Available(context.Background())
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
	assert.ErrorContains(t, err, `"svn"`)

	state, err := p.OpenRepository(context.Background(), "/repo")
	assert.Nil(t, state)
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}
