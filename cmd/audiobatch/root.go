package main

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/audiobatch/internal/config"
)

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "audiobatch",
		Short:         "Merge MP3 files or turn them into still-image videos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd == cmd.Root() {
				return nil
			}
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	config.BindGlobalFlags(rootCmd.PersistentFlags(), &a.cfg)
	rootCmd.PersistentFlags().BoolVar(&a.gui, "gui", false, "Pick inputs with native dialogs (needs a -tags gui build)")

	rootCmd.AddCommand(newMergeCommand(a))
	rootCmd.AddCommand(newConvertCommand(a))
	rootCmd.AddCommand(newAnalyzeCommand(a))
	rootCmd.AddCommand(newCheckCommand(a))
	rootCmd.AddCommand(newVersionCommand(a))

	return rootCmd
}
