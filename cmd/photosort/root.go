package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var dirFlag string
	var configFlag string
	var opts runOptions

	ctx := newCommandContext(&dirFlag, &configFlag)

	rootCmd := &cobra.Command{
		Use:   "photosort [extra-folder ...]",
		Short: "Sort camera raw and jpeg files into an archive and prune unpaired shots",
		Long: `photosort organizes the pictures in a working directory.

The first run creates the archive folder with raw and jpg subfolders and moves
every loose picture into the matching subfolder. After you delete the shots you
do not want from one of the subfolders, run it again: the files in the other
subfolder that lost their counterpart are listed and deleted once you confirm.

Extra folder names given as arguments are created next to the archive.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.exitDelaySet = cmd.Flags().Changed("exit-delay")
			return runOrganize(cmd, ctx, opts, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "Working directory to organize (default: current directory)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.yes, "yes", "y", false, "Delete unpaired files without asking")
	flags.IntVar(&opts.exitDelay, "exit-delay", 0, "Seconds to wait before exiting when not prompting (default from config)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format override (console, json)")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
