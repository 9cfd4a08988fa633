package cmd

import (
	"context"
	"errors"

	"kitinstall/internal/conflict"
	"kitinstall/internal/db"
	"kitinstall/internal/fetch"
	"kitinstall/internal/installer"
	"kitinstall/internal/logger"
	"kitinstall/internal/manifest"
	"kitinstall/internal/repository"
	"kitinstall/internal/ui"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runInstall(cmd *cobra.Command, args []string) error {
	defer logger.Sync()

	// Flag errors already printed usage; runtime errors should not.
	cmd.SilenceUsage = true
	ui.Out = cmd.ErrOrStderr()

	// The client check runs first so a missing curl/wget stops the run
	// before anything touches the workspace.
	fetcher, err := fetch.New(cfg.Client, cfg.Timeout)
	if err != nil {
		return err
	}

	m, err := manifest.Default()
	if err != nil {
		return err
	}
	m = m.Exclude(cfg.Exclude)

	prompter := conflict.NewConsolePrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
	inst := installer.New(afero.NewOsFs(), fetcher, conflict.NewResolver(prompter), prompter, installer.Options{
		BaseURL:   cfg.BaseURL,
		TargetDir: cfg.TargetDir,
		Timeout:   cfg.Timeout,
		AssumeYes: cfg.AssumeYes,
	})

	if cfg.HistoryDB != "" {
		if err := db.Init(cfg.HistoryDB); err != nil {
			logger.Log.Warn("install history disabled",
				zap.String("db", cfg.HistoryDB),
				zap.Error(err))
		} else {
			defer db.Close()
			inst.WithRecorder(repository.NewHistoryRepository())
		}
	}

	// SIGINT keeps its default behaviour and ends the process, prompts included.
	report, err := inst.Run(context.Background(), m, &conflict.Session{Force: force})
	if errors.Is(err, installer.ErrCancelled) {
		ui.Warning("Installation cancelled.")
		return nil
	}

	ui.PrintSummary(report.Installed(), report.Skipped(), report.Failed())
	ui.Info("Run %s", report.RunID)
	if err != nil {
		return err
	}

	ui.Success("\nKit files are ready in %s", cfg.TargetDir)
	return nil
}
