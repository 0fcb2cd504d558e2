package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"poi-viewer/internal/adapters/catalog"
	"poi-viewer/internal/adapters/geolocation"
	"poi-viewer/internal/adapters/language"
	"poi-viewer/internal/adapters/markers"
	"poi-viewer/internal/adapters/render"
	"poi-viewer/internal/adapters/translate"
	"poi-viewer/internal/config"
	"poi-viewer/internal/platform/httpclient"
	"poi-viewer/internal/platform/logging"
	"poi-viewer/internal/ports"
	"poi-viewer/internal/services"
	"poi-viewer/internal/tui"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// main is the composition root of the map viewer. It wires the position,
// language, marker and translation adapters into the view state and runs
// either the terminal UI or, headless, a renderer that logs every frame.
func main() {
	if err := start(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// start releases the log file and the signal context before main exits.
func start() error {
	var cfg config.Viewer
	found, err := config.Load(&cfg)
	if err != nil {
		return err
	}

	// The terminal UI owns stdout; logs go to a file unless headless.
	logOut := os.Stderr
	if !cfg.Headless {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.New(cfg.LogLevel, logOut)
	if !found {
		logger.Info().Msg("No .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(logger.WithContext(ctx), cfg, logger); err != nil {
		logger.Error().Err(err).Msg("viewer stopped")
		return err
	}
	return nil
}

// Public IP lookup services reject requests without one.
const userAgent = "poi-viewer/1.0"

func run(ctx context.Context, cfg config.Viewer, logger zerolog.Logger) error {
	client := httpclient.New(cfg.HTTPTimeout)
	client.SetHeader("User-Agent", userAgent)

	source, err := markers.NewHTTPMarkerSource(cfg.APIBaseURL, client)
	if err != nil {
		return err
	}
	translator, err := newTranslator(cfg, client)
	if err != nil {
		return err
	}

	captions, err := catalog.New()
	if err != nil {
		return err
	}
	localizer := services.NewLabelLocalizer(translator)

	location := services.NewLocationSource(newGeolocation(cfg, client, logger))
	locale := services.NewLocaleResolver(language.NewEnvSource(cfg.Lang))
	loader := services.NewCategoryDataLoader(source)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if cfg.Headless {
		view := services.NewViewState(location, locale, loader, render.NewLogRenderer(logger, captions))
		g.Go(func() error { return view.Run(gctx) })
		return g.Wait()
	}

	frames := tui.NewFrameQueue()
	view := services.NewViewState(location, locale, loader, frames)
	g.Go(func() error { return view.Run(gctx) })
	g.Go(func() error {
		// Quitting the UI stops the view loop.
		defer cancel()
		p := tea.NewProgram(tui.New(gctx, view, frames, captions, localizer), tea.WithAltScreen(), tea.WithContext(gctx))
		if _, err := p.Run(); err != nil && gctx.Err() == nil {
			return fmt.Errorf("terminal ui: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// Precedence: fixed position, then the IP lookup endpoint, then nothing.
func newGeolocation(cfg config.Viewer, client *httpclient.Client, logger zerolog.Logger) ports.GeolocationProvider {
	if strings.TrimSpace(cfg.Position) != "" {
		p, err := geolocation.NewStaticProvider(cfg.Position)
		if err == nil {
			return p
		}
		logger.Warn().Err(err).Msg("ignoring VIEWER_POSITION")
	}
	if strings.TrimSpace(cfg.GeolocationURL) != "" {
		p, err := geolocation.NewHTTPProvider(cfg.GeolocationURL, client)
		if err == nil {
			return p
		}
		logger.Warn().Err(err).Msg("ignoring GEOLOCATION_URL")
	}
	return geolocation.Unavailable{}
}

// Without credentials for the Google endpoint the localizer runs as identity.
func newTranslator(cfg config.Viewer, client *httpclient.Client) (ports.Translator, error) {
	if cfg.TranslateProtocol == translate.ProtocolGoogle && strings.TrimSpace(cfg.TranslateAPIKey) == "" {
		return nil, nil
	}
	t, err := translate.NewTranslator(cfg.TranslateURL, cfg.TranslateAPIKey, cfg.TranslateProtocol, client)
	if err != nil {
		return nil, err
	}
	return t, nil
}
