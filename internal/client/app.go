package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-arr-keeper/internal/adapter"
	"github.com/MKhiriev/go-arr-keeper/internal/config"
	"github.com/MKhiriev/go-arr-keeper/internal/logger"
	"github.com/MKhiriev/go-arr-keeper/internal/network"
	"github.com/MKhiriev/go-arr-keeper/internal/store"
	"github.com/MKhiriev/go-arr-keeper/internal/tui"
)

// LoggerRole is the role field of every log line.
const LoggerRole = "arrkeeper"

// App owns everything built from the configuration: the log file, one
// backend client per configured backend, the executor over them and the
// in-memory view storage.
type App struct {
	cfg       *config.ClientConfig
	logger    *logger.Logger
	logCloser io.Closer
	executor  *network.Executor
	storages  *store.Storages
}

// NewApp loads the configuration and builds the runtime. flags may be nil.
// The caller must Close the returned App.
func NewApp(flags *config.Flags) (*App, error) {
	cfg, err := config.GetClientConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, closer, err := logger.NewClientLogger(LoggerRole, cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	app, err := newAppWithLogger(cfg, log)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	app.logCloser = closer
	return app, nil
}

func newAppWithLogger(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	clients, err := adapter.NewBackendClients(cfg.Backends, cfg.Network.RequestTimeout, log)
	if err != nil {
		log.Error().Err(err).Msg("create backend clients")
		return nil, fmt.Errorf("create backend clients: %w", err)
	}

	log.Info().
		Int("backends", len(clients)).
		Str("config_file", cfg.ConfigFile).
		Dur("request_timeout", cfg.Network.RequestTimeout).
		Msg("client app ready")

	return &App{
		cfg:      cfg,
		logger:   log,
		executor: network.NewExecutor(clients, cfg.Network.RequestTimeout, network.WithLogger(log)),
		storages: store.NewStorages(),
	}, nil
}

func (a *App) Config() *config.ClientConfig {
	return a.cfg
}

func (a *App) Logger() *logger.Logger {
	return a.logger
}

func (a *App) Executor() *network.Executor {
	return a.executor
}

// Run starts the interactive UI and blocks until the user quits. Every
// request still in flight is cancelled on return.
func (a *App) Run(ctx context.Context) error {
	defer a.executor.CancelAll()

	ui, err := tui.New(a.executor, a.storages.Views, a.cfg.UI.RefreshInterval, a.logger)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	if err = ui.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Error().Err(err).Msg("ui stopped with error")
		return err
	}
	return nil
}

// Close cancels outstanding requests and closes the log file.
func (a *App) Close() error {
	a.executor.CancelAll()
	if a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}
