package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"photosort/internal/config"
	"photosort/internal/console"
	"photosort/internal/logging"
	"photosort/internal/workflow"
	"photosort/internal/workspace"
)

type runOptions struct {
	yes          bool
	exitDelay    int
	exitDelaySet bool
	logLevel     string
	logFormat    string
	noColor      bool
}

func runOrganize(cmd *cobra.Command, ctx *commandContext, opts runOptions, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	if err := applyOverrides(cfg, opts, args); err != nil {
		return err
	}

	root, err := ctx.workDir()
	if err != nil {
		return err
	}
	lock, err := workspace.Acquire(root)
	if err != nil {
		return err
	}
	defer lock.Release()

	logger, closeLog, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeLog()
	logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))
	logger.Debug("configuration loaded",
		logging.String("config_path", ctx.configPath),
		logging.String("lock_path", lock.Path()),
		logging.Bool("interactive", cfg.Prompt.Interactive),
		logging.Duration("exit_delay", cfg.ExitDelay()),
	)

	reporter := console.NewReporter(cmd.OutOrStdout())
	if opts.noColor {
		reporter = console.NewPlainReporter(cmd.OutOrStdout())
	}
	confirmer, pauser := interaction(cmd, cfg)
	controller := workflow.NewController(
		workspace.OS{},
		workflow.LayoutFromConfig(root, cfg),
		reporter,
		confirmer,
		logger,
		workflow.WithPauser(pauser),
	)
	report, err := controller.Run(cmd.Context())
	if err != nil {
		logger.Debug("run ended with error",
			logging.String("outcome", report.Outcome.String()),
			logging.Error(err),
		)
	}
	return err
}

func applyOverrides(cfg *config.Config, opts runOptions, extras []string) error {
	if err := cfg.AddExtraFolders(extras...); err != nil {
		return err
	}
	if opts.yes {
		cfg.Prompt.Interactive = false
	}
	if opts.exitDelaySet {
		cfg.Prompt.ExitDelaySeconds = opts.exitDelay
	}
	if level := strings.TrimSpace(opts.logLevel); level != "" {
		cfg.Logging.Level = strings.ToLower(level)
	}
	if format := strings.TrimSpace(opts.logFormat); format != "" {
		cfg.Logging.Format = strings.ToLower(format)
	}
	return cfg.Validate()
}

// interaction picks how deletion is approved and how the process pauses before
// exit. A non-terminal stdin still answers the prompt but never blocks on the
// final pause.
func interaction(cmd *cobra.Command, cfg *config.Config) (workflow.Confirmer, workflow.Pauser) {
	delay := console.DelayPause{Delay: cfg.ExitDelay()}
	if !cfg.Prompt.Interactive {
		return workflow.AutoConfirm(true), delay
	}
	in := cmd.InOrStdin()
	prompter := console.NewPrompter(in, cmd.OutOrStdout())
	if !console.IsInteractive(in) {
		return prompter, delay
	}
	return prompter, console.LinePause{Prompter: prompter}
}
