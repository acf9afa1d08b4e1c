package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mdrepo/mdrmeta/internal/checksum"
	"github.com/mdrepo/mdrmeta/internal/config"
	"github.com/mdrepo/mdrmeta/internal/files/filesystem"
	"github.com/mdrepo/mdrmeta/internal/files/scanner"
	"github.com/mdrepo/mdrmeta/internal/logging"
	"github.com/mdrepo/mdrmeta/internal/metadata"
	"github.com/mdrepo/mdrmeta/internal/services"
	"github.com/mdrepo/mdrmeta/internal/tui"
	"github.com/mdrepo/mdrmeta/pkg/mdrmeta"
)

// app holds what every command needs once configuration is resolved.
type app struct {
	cfg       *config.ProjectConfig
	logger    mdrmeta.Logger
	processor *services.Processor
	options   services.Options
}

// newApp resolves configuration, applies the persistent flags on top of it
// and wires the processor. Stdin is taken from cmd so tests can supply it.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Resolve(globalFlags.configPath)
	if err != nil {
		return nil, err
	}
	if err := applyGlobalFlags(cfg); err != nil {
		return nil, err
	}

	logger, err := logging.NewTo(cmd.ErrOrStderr(), cfg.LogFormat, globalFlags.verbose)
	if err != nil {
		return nil, err
	}

	calc := checksum.New()
	fsProvider := filesystem.NewOSFileSystem()
	fileScanner := scanner.NewScannerWithFS(calc, fsProvider, cmd.InOrStdin())

	a := &app{
		cfg:       cfg,
		logger:    logger,
		processor: services.NewProcessor(logger, fileScanner, calc, fsProvider),
		options:   services.Options{Format: cfg.Input(), Version: cfg.Version()},
	}
	logger.Verbose("Schema %s, input format %s", a.options.Version, a.options.Format)
	return a, nil
}

// close flushes the logger when it buffers.
func (a *app) close() {
	if s, ok := a.logger.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}

// styles returns terminal styles for w honoring the configured color mode.
func (a *app) styles(w io.Writer) tui.Styles {
	if f, ok := w.(*os.File); ok {
		return tui.NewStyles(w, tui.ColorEnabled(a.cfg.Color, f))
	}
	return tui.NewStyles(w, strings.EqualFold(a.cfg.Color, tui.ColorAlways))
}

// outputFormat resolves an --output-format value against the configuration.
func (a *app) outputFormat(flag string) (metadata.Format, error) {
	if flag == "" {
		return a.cfg.Output()
	}
	f, err := metadata.ParseFormat(flag)
	if err != nil || f == metadata.FormatAuto {
		return metadata.FormatAuto, invalidFlag("output-format", flag, "expected json or toml")
	}
	return f, nil
}

func applyGlobalFlags(cfg *config.ProjectConfig) error {
	if globalFlags.schema != "" {
		if _, err := metadata.ParseSchemaVersion(globalFlags.schema); err != nil {
			return invalidFlag("schema", globalFlags.schema, "expected legacy, v1 or v2")
		}
		cfg.Schema = globalFlags.schema
	}
	if globalFlags.format != "" {
		if _, err := metadata.ParseFormat(globalFlags.format); err != nil {
			return invalidFlag("format", globalFlags.format, "expected auto, json or toml")
		}
		cfg.InputFormat = globalFlags.format
	}
	if globalFlags.logFormat != "" {
		switch strings.ToLower(globalFlags.logFormat) {
		case logging.FormatText, logging.FormatJSON:
		default:
			return invalidFlag("log-format", globalFlags.logFormat, "expected text or json")
		}
		cfg.LogFormat = globalFlags.logFormat
	}
	if globalFlags.color != "" {
		switch strings.ToLower(globalFlags.color) {
		case tui.ColorAuto, tui.ColorAlways, tui.ColorNever:
		default:
			return invalidFlag("color", globalFlags.color, "expected auto, always or never")
		}
		cfg.Color = globalFlags.color
	}
	return nil
}

func invalidFlag(name, value, hint string) error {
	return mdrmeta.UsageError(fmt.Errorf("invalid argument %q for \"--%s\" flag: %s", value, name, hint))
}

// signalContext is cancelled on Ctrl+C or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
