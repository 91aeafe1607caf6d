package cmd

import (
	"context"
	"fmt"
	"os"

	adaptercommand "gitnag/internal/adapters/command"
	adaptereditor "gitnag/internal/adapters/editor"
	adaptergit "gitnag/internal/adapters/git"
	adaptergogit "gitnag/internal/adapters/gogit"
	adapternotifier "gitnag/internal/adapters/notifier"
	adaptersound "gitnag/internal/adapters/sound"
	adapterstorage "gitnag/internal/adapters/storage"
	"gitnag/internal/config"
	"gitnag/internal/domain"
	"gitnag/internal/logging"
	"gitnag/internal/ports"
	"gitnag/internal/services"
)

// ContainerOptions carries command-line overrides into the container
type ContainerOptions struct {
	Editor     string
	Workspaces []string
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	ReminderController *services.ReminderController
	StatusService      *services.StatusService

	// Adapters used directly by commands
	Dispatcher    *adaptercommand.Dispatcher
	Provider      ports.RepositoryProvider
	SettingsStore *config.FileStore
	SoundPlayer   ports.SoundPlayer

	// Internal - for cleanup only
	stateRepo ports.StateRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	storeOpts := []config.StoreOption{config.WithWorkspaceOverride(opts.Workspaces...)}
	if cwd, err := os.Getwd(); err == nil {
		storeOpts = append(storeOpts, config.WithDefaultWorkspaces(cwd))
	}
	settingsStore := config.NewFileStore(config.GetSettingsPath(), storeOpts...)

	// The provider is fixed for the life of the process
	providerName := domain.DefaultProvider
	if settings, err := settingsStore.Load(); err != nil {
		logging.Logger.Warn("Failed to load settings, using default provider", "error", err)
	} else {
		providerName = settings.Provider
	}
	provider := newProvider(providerName)

	stateRepo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	soundPlayer := adaptersound.NewPlayer()
	presenter := adapternotifier.NewRouter(
		adapternotifier.NewDesktop(),
		adapternotifier.NewPrompt(),
		soundPlayer,
	)

	dispatcher := adaptercommand.NewDispatcher()
	adaptercommand.NewGitView(settingsStore, adaptereditor.NewOpener(), opts.Editor).Register(dispatcher)

	snapshotRecorder := services.NewSnapshotRecorder(stateRepo)
	reminderController := services.NewReminderController(
		settingsStore,
		provider,
		presenter,
		dispatcher,
		services.WithReminderRecorder(stateRepo),
		services.WithSnapshotListener(snapshotRecorder.OnSnapshot),
	)
	statusService := services.NewStatusService(settingsStore, provider, stateRepo, stateRepo)

	logging.Logger.Debug("Container ready", "provider", providerName, "settings", settingsStore.Path())

	return &Container{
		Dispatcher:         dispatcher,
		Provider:           provider,
		ReminderController: reminderController,
		SettingsStore:      settingsStore,
		SoundPlayer:        soundPlayer,
		StatusService:      statusService,
		stateRepo:          stateRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.stateRepo != nil {
		return c.stateRepo.Close()
	}
	return nil
}

// newProvider returns the source-control provider configured by name
func newProvider(name string) ports.RepositoryProvider {
	switch name {
	case config.ProviderGit, "":
		return adaptergit.NewCLIProvider()
	case config.ProviderGoGit:
		return adaptergogit.NewProvider()
	default:
		logging.Logger.Warn("Unknown source control provider", "provider", name)
		return unavailableProvider{name: name}
	}
}

// unavailableProvider stands in for a provider name nothing implements
type unavailableProvider struct {
	name string
}

func (p unavailableProvider) Available(ctx context.Context) error {
	return fmt.Errorf("%w: unknown provider %q (use %q or %q)",
		domain.ErrProviderUnavailable, p.name, config.ProviderGit, config.ProviderGoGit)
}

func (p unavailableProvider) OpenRepository(ctx context.Context, root string) (*domain.RepositoryState, error) {
	return nil, p.Available(ctx)
}
