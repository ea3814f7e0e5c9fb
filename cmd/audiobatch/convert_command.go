package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/backmassage/audiobatch/internal/check"
	"github.com/backmassage/audiobatch/internal/config"
	"github.com/backmassage/audiobatch/internal/ffmpeg"
	"github.com/backmassage/audiobatch/internal/interact"
	"github.com/backmassage/audiobatch/internal/pipeline"
	"github.com/backmassage/audiobatch/internal/source"
)

func newConvertCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Render MP3 files over a still image as output/<name>.mp4",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, args)
		},
	}
	config.BindConvertFlags(cmd.Flags(), &a.cfg)
	return cmd
}

// inferMode picks the selection mode for positional arguments: a single
// directory is folder mode, anything else is explicit files.
func inferMode(args []string) config.SelectMode {
	if len(args) == 1 {
		if fi, err := os.Stat(args[0]); err == nil && fi.IsDir() {
			return config.SelectFolder
		}
	}
	return config.SelectMultiple
}

func (a *app) runConvert(cmd *cobra.Command, args []string) error {
	log := a.log

	mode := a.cfg.Mode
	switch {
	case mode != "":
	case len(args) > 0:
		mode = inferMode(args)
	default:
		m, ok, err := a.prompter.AskMode()
		if err != nil {
			return err
		}
		if !ok {
			log.Error("Invalid selection.")
			return nil
		}
		mode = m
	}

	files, err := a.selectConvertInputs(mode, args)
	if err != nil || len(files) == 0 {
		return err
	}

	if err := check.CheckDeps(&a.cfg, a.cfg.ValidateAudio, check.EncoderX264, check.EncoderAAC); err != nil {
		log.Error("%v", err)
		return errReported
	}

	lock, err := a.lock()
	if err != nil {
		return err
	}
	defer lock.Unlock()

	ctx, cancel := a.signalContext(cmd.Context())
	defer cancel()

	conv := pipeline.NewConverter(&a.cfg, a.layout, ffmpeg.NewEncoder(&a.cfg), log)
	stats, err := conv.Convert(ctx, files)
	if err != nil {
		log.Error("Convert aborted: %v", err)
		return errReported
	}
	pipeline.LogSummary(log, &stats)

	if stats.Failed > 0 || ctx.Err() != nil {
		return errReported
	}
	return nil
}

// selectConvertInputs resolves inputs for mode. A cancelled or empty
// selection is logged and returns no files and no error.
func (a *app) selectConvertInputs(mode config.SelectMode, args []string) ([]source.File, error) {
	log := a.log
	picker, err := a.picker(args)
	if err != nil {
		return nil, err
	}

	switch mode {
	case config.SelectFolder:
		folder, err := picker.PickFolder("Select folder with MP3 files to convert")
		if err != nil {
			return nil, err
		}
		if folder == "" {
			log.Warn("No folder selected.")
			return nil, nil
		}
		files, err := source.ListFolder(folder)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			log.Warn("No MP3 files found in folder.")
		}
		return files, nil

	case config.SelectMultiple:
		paths, err := picker.PickFiles("Select MP3 files to convert", interact.MP3Filter, true)
		if err != nil {
			return nil, err
		}
		if len(paths) == 0 {
			log.Warn("No files selected.")
			return nil, nil
		}
		return a.fromSelection(paths)

	default:
		paths, err := picker.PickFiles("Select an MP3 file to convert", interact.MP3Filter, false)
		if err != nil {
			return nil, err
		}
		if len(paths) == 0 {
			log.Warn("No file selected.")
			return nil, nil
		}
		return a.fromSelection(paths)
	}
}

// fromSelection resolves picked paths. Blank entries are dropped, so a
// selection can still come back empty.
func (a *app) fromSelection(paths []string) ([]source.File, error) {
	files, err := source.FromPaths(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		a.log.Warn("No MP3 files selected.")
	}
	return files, nil
}
