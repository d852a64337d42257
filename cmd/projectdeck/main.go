package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"projectdeck/internal/config"
	"projectdeck/internal/controller"
	"projectdeck/internal/logging"
	"projectdeck/internal/session"
	"projectdeck/internal/store"
	"projectdeck/internal/store/httpstore"
	"projectdeck/internal/trace"
	"projectdeck/internal/ui"
)

// errNotLoggedIn is returned when no usable session token is configured.
var errNotLoggedIn = errors.New("not logged in")

// flags holds the parsed command line.
type flags struct {
	configPath string
	demo       bool
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.configPath, "config", "", "path to config file (default ~/.config/projectdeck/config.yaml)")
	flag.BoolVar(&f.demo, "demo", false, "use an in-memory project store instead of the API")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: projectdeck [flags]\n\n")
		fmt.Fprintf(os.Stderr, "projectdeck lists, creates, edits and deletes projects on the project service.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	return f
}

func main() {
	f := parseFlags()
	loggedOut, err := run(f)
	switch {
	case errors.Is(err, errNotLoggedIn):
		fmt.Fprintln(os.Stderr, "Not logged in. Sign in to the project service and set api.token (or PROJECTDECK_API_TOKEN), or run with --demo.")
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	case loggedOut:
		fmt.Println("Logged out. Clear api.token and sign in again to switch accounts.")
	}
}

func run(f flags) (loggedOut bool, err error) {
	cfg, err := config.Load(f.configPath, func(c *config.Config) {
		if f.demo {
			c.Demo = true
		}
	})
	if err != nil {
		return false, err
	}

	logger, closeLog, err := logging.New(logging.Config{File: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		return false, err
	}
	defer func() { _ = closeLog() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, err := trace.NewProvider(ctx, trace.Config{
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
		Insecure:    cfg.Tracing.Insecure,
	})
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
		tp = trace.Disabled()
	}
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown", zap.Error(err))
		}
	}()

	sess, projects, quotes, err := openStore(cfg, tp, logger)
	if err != nil {
		return false, err
	}
	logger.Info("starting", zap.String("user", sess.Username), zap.Bool("demo", cfg.Demo), zap.Bool("tracing", tp.Enabled()))

	list := controller.NewListController(ctx, projects, logger)
	fetcher := controller.NewQuoteFetcher(ctx, quotes, logger)
	model := ui.NewAppModel(list, fetcher, sess, logger)

	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return false, err
	}
	return model.LoggedOut, nil
}

// openStore builds the session and the store pair for cfg.
func openStore(cfg *config.Config, tp *trace.Provider, logger *zap.Logger) (*session.Session, store.ProjectStore, store.QuoteSource, error) {
	if cfg.Demo {
		mem := store.NewMemoryStore()
		return session.Demo(), mem, mem, nil
	}

	sess, err := session.FromToken(cfg.API.Token)
	if err != nil {
		if !errors.Is(err, session.ErrNoToken) {
			logger.Warn("unusable token", zap.Error(err))
		}
		return nil, nil, nil, errNotLoggedIn
	}
	if !sess.Authenticated(time.Now()) {
		logger.Warn("token expired", zap.Time("expires_at", sess.ExpiresAt))
		return nil, nil, nil, errNotLoggedIn
	}

	client := httpstore.New(cfg.API.BaseURL,
		httpstore.WithToken(sess.Token),
		httpstore.WithTimeout(cfg.API.Timeout),
		httpstore.WithTracerProvider(tp.TracerProvider()),
		httpstore.WithLogger(logger),
	)
	return sess, client, client, nil
}
