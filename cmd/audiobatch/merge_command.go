package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/backmassage/audiobatch/internal/audio"
	"github.com/backmassage/audiobatch/internal/check"
	"github.com/backmassage/audiobatch/internal/config"
	"github.com/backmassage/audiobatch/internal/pipeline"
	"github.com/backmassage/audiobatch/internal/source"
)

func newMergeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge [folder]",
		Short: "Concatenate every MP3 in a folder into output/" + config.MergedOutputName,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMerge(cmd, args)
		},
	}
	config.BindMergeFlags(cmd.Flags(), &a.cfg)
	return cmd
}

func (a *app) runMerge(cmd *cobra.Command, args []string) error {
	log := a.log
	picker, err := a.picker(args)
	if err != nil {
		return err
	}

	folder, err := picker.PickFolder("Select folder with MP3 files")
	if err != nil {
		return err
	}
	if folder == "" {
		log.Warn("No folder selected. Merge cancelled.")
		return errReported
	}

	files, err := source.ListFolder(folder)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Warn("No MP3 files found in %s", folder)
		return nil
	}

	order := a.cfg.Order
	if order == "" {
		if order, err = a.prompter.AskOrder(); err != nil {
			return err
		}
	}

	if err := check.CheckDeps(&a.cfg, false, check.EncoderMP3); err != nil {
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

	m := &pipeline.Merger{Layout: a.layout, Codec: audio.NewCodec(&a.cfg), Log: log}
	if _, err := m.Merge(ctx, files, order); err != nil {
		if errors.Is(err, pipeline.ErrNoInput) {
			log.Warn("No MP3 files found in %s", folder)
			return nil
		}
		log.Error("Merge failed: %s", pipeline.Describe(err))
		return errReported
	}
	return nil
}
