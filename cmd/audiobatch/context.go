package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/audiobatch/internal/config"
	"github.com/backmassage/audiobatch/internal/display"
	"github.com/backmassage/audiobatch/internal/interact"
	"github.com/backmassage/audiobatch/internal/layout"
	"github.com/backmassage/audiobatch/internal/logging"
)

// errReported ends a command whose failure has already been logged.
var errReported = errors.New("run failed")

const appID = "io.github.backmassage.audiobatch"

// app carries what every command needs once setup has run.
type app struct {
	cfg    config.Config
	gui    bool
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	layout   layout.Layout
	log      *logging.Logger
	prompter *interact.Prompter
}

func newApp(stdin io.Reader) *app {
	return &app{
		cfg:    config.DefaultConfig(),
		stdin:  stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// setup resolves the base directory, overlays the config file onto flags,
// validates, and opens the logger.
func (a *app) setup(cmd *cobra.Command) error {
	baseDir, err := layout.ResolveBaseDir(a.cfg.BaseDir)
	if err != nil {
		return err
	}

	path := a.cfg.ConfigFile
	if path == "" {
		path = layout.New(baseDir, "").ConfigPath()
	}
	file, found, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	if !found && a.cfg.ConfigFile != "" {
		return fmt.Errorf("config file not found: %s", a.cfg.ConfigFile)
	}
	if err := file.Apply(&a.cfg, cmd.Flags().Changed); err != nil {
		return err
	}
	if file != nil && file.BaseDir != nil && !cmd.Flags().Changed("base-dir") {
		if baseDir, err = layout.ResolveBaseDir(a.cfg.BaseDir); err != nil {
			return err
		}
	}
	a.cfg.BaseDir = baseDir

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewWriterLogger(&a.cfg, a.stdout, a.stderr)
	if err != nil {
		return err
	}
	a.log = log
	a.layout = layout.New(a.cfg.BaseDir, a.cfg.Background)
	a.prompter = interact.NewPrompter(a.stdin, a.stdout)

	display.PrintBanner(a.stdout)
	if found {
		log.Debug(a.cfg.Verbose, "Config: %s", path)
	}
	log.Debug(a.cfg.Verbose, "Base directory: %s (run %s)", a.cfg.BaseDir, log.RunID())
	return nil
}

func (a *app) close() {
	if a.log != nil {
		_ = a.log.Close()
	}
}

// picker returns the picker for this invocation: positional arguments win,
// then --gui, then the terminal prompt.
func (a *app) picker(args []string) (interact.Picker, error) {
	if len(args) > 0 {
		return interact.StaticPicker{Paths: args}, nil
	}
	if a.gui {
		return interact.NewDialogPicker(appID)
	}
	return interact.NewPromptPicker(a.prompter), nil
}

// signalContext cancels on SIGINT/SIGTERM so in-flight ffmpeg processes are
// killed and no further items start.
func (a *app) signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			a.log.Warn("Received interrupt, stopping…")
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

// lock takes the run lock on the output directory, logging contention.
func (a *app) lock() (*layout.RunLock, error) {
	l, err := a.layout.Lock()
	if errors.Is(err, layout.ErrLocked) {
		a.log.Error("%v: %s", err, a.layout.OutputDir())
		return nil, errReported
	}
	return l, err
}
