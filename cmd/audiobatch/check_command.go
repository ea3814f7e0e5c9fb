package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/audiobatch/internal/check"
	"github.com/backmassage/audiobatch/internal/pipeline"
	"github.com/backmassage/audiobatch/internal/probe"
	"github.com/backmassage/audiobatch/internal/source"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify ffmpeg, ffprobe and the encoders audiobatch needs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !check.RunCheck(&a.cfg, a.log) {
				return errReported
			}
			return nil
		},
	}
}

func newAnalyzeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [folder]",
		Short: "Report codec, bitrate and duration of every MP3 in a folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			picker, err := a.picker(args)
			if err != nil {
				return err
			}
			folder, err := picker.PickFolder("Select folder with MP3 files")
			if err != nil {
				return err
			}
			if folder == "" {
				a.log.Warn("No folder selected.")
				return nil
			}
			files, err := source.ListFolder(folder)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				a.log.Warn("No MP3 files found in %s", folder)
				return nil
			}
			if err := check.CheckDeps(&a.cfg, true); err != nil {
				a.log.Error("%v", err)
				return errReported
			}

			ctx, cancel := a.signalContext(cmd.Context())
			defer cancel()
			_, err = pipeline.Analyze(ctx, files, probe.Prober{Bin: a.cfg.FFprobeBin}, a.log)
			return err
		},
	}
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(a.stdout, "audiobatch %s (%s)\n", version, commit)
			return err
		},
	}
}
