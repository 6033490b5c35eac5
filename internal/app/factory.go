package app

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/footprint-tools/stockline/internal/actions/ledger"
	"github.com/footprint-tools/stockline/internal/config"
	"github.com/footprint-tools/stockline/internal/constraint"
	"github.com/footprint-tools/stockline/internal/dispatchers"
	"github.com/footprint-tools/stockline/internal/domain"
	"github.com/footprint-tools/stockline/internal/inventory"
	"github.com/footprint-tools/stockline/internal/log"
	"github.com/footprint-tools/stockline/internal/paths"
	"github.com/footprint-tools/stockline/internal/store"
	"github.com/footprint-tools/stockline/internal/ui"
	"github.com/footprint-tools/stockline/internal/ui/style"
)

// Version is set at build time with -ldflags "-X .../internal/app.Version=...".
var Version = "dev"

// Options configures the application factory.
type Options struct {
	Settings config.Settings

	// Output receives session output. Defaults to stdout.
	Output io.Writer

	// LogPath overrides the default log file location.
	LogPath string

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string
}

// DefaultOptions reads the config file and environment.
func DefaultOptions() (Options, error) {
	provider := config.NewProvider()

	settings, err := config.Load(provider)
	if err != nil {
		return Options{}, err
	}
	styleConfig, _ := provider.GetAll()

	return Options{
		Settings:     settings,
		StyleEnabled: settings.Color && ui.IsTerminal(os.Stdout),
		StyleConfig:  styleConfig,
	}, nil
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	sessionID := uuid.NewString()

	var logger domain.Logger = log.NopLogger{}
	if opts.Settings.EnableLog {
		logPath := opts.LogPath
		if logPath == "" {
			logPath = paths.LogFilePath()
		}
		if l, err := log.New(logPath, log.ParseLevel(opts.Settings.LogLevel)); err == nil {
			l.SetSession(sessionID)
			logger = l
		}
	}

	ledgerStore, err := store.New()
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	var styler domain.Styler = style.NopStyler{}
	if opts.StyleEnabled {
		styler = style.New(true, style.WithOverrides(style.DetectPalette(), opts.StyleConfig))
	}

	logger.Info("app: stockline %s starting", Version)

	return &domain.Application{
		SessionID: sessionID,
		Store:     ledgerStore,
		Config:    config.NewProvider(),
		Logger:    logger,
		Output:    ui.NewWriterTo(out),
		Styler:    styler,
	}, nil
}

// DispatchOptions configures the dispatcher built by NewDispatcher.
type DispatchOptions struct {
	Strict bool
	// Quit runs after the quit command. Defaults to os.Exit(0).
	Quit func()
	// Now is the clock for date constraints. Defaults to time.Now.
	Now func() time.Time
}

// NewDispatcher builds a dispatcher writing to the application output with
// the built-in commands and the ledger commands registered.
func NewDispatcher(a *domain.Application, opts DispatchOptions) (*dispatchers.Dispatcher, error) {
	validator := constraint.NewValidator()
	if opts.Now != nil {
		validator.Now = opts.Now
	}

	dopts := []dispatchers.Option{
		dispatchers.WithOutput(a.Output),
		dispatchers.WithLogger(a.Logger),
		dispatchers.WithStyler(a.Styler),
		dispatchers.WithValidator(validator),
		dispatchers.WithStrictArguments(opts.Strict),
	}
	if opts.Quit != nil {
		dopts = append(dopts, dispatchers.WithQuitHook(opts.Quit))
	}
	d := dispatchers.New(dopts...)

	svc := inventory.NewService(a.Store, inventory.WithLogger(a.Logger))
	if err := d.Register(ledger.NewController(svc)); err != nil {
		return nil, err
	}
	return d, nil
}

// NewForTesting creates an Application suitable for testing.
// Uses an in-memory store, NopLogger, and no styling.
func NewForTesting(out io.Writer) (*domain.Application, error) {
	ledgerStore, err := store.New()
	if err != nil {
		return nil, err
	}
	return &domain.Application{
		SessionID: "test",
		Store:     ledgerStore,
		Config:    config.NewProvider(),
		Logger:    log.NopLogger{},
		Output:    ui.NewWriterTo(out),
		Styler:    style.NopStyler{},
	}, nil
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.Store != nil {
		_ = app.Store.Close()
	}
	return nil
}
