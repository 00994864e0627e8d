package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizplayer/internal/app"
	"github.com/abhisek/quizplayer/internal/bank"
	"github.com/abhisek/quizplayer/internal/config"
	"github.com/abhisek/quizplayer/internal/session"
	"github.com/abhisek/quizplayer/internal/store"
)

// loadBank returns the bank at cfg.BankPath, or the embedded course.
func loadBank(cfg config.Config) (*bank.Bank, error) {
	if cfg.BankPath == "" {
		return bank.Default(), nil
	}
	return bank.LoadFile(cfg.BankPath)
}

// openSession opens the store and restores a session. Warnings go to warn.
// The returned close function releases the store.
func openSession(cmd *cobra.Command, cfg config.Config, warn io.Writer) (*session.Session, func() error, error) {
	b, err := loadBank(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("load question bank: %w", err)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	sess, err := session.New(cmd.Context(), session.Options{
		Bank:         b,
		KV:           st,
		Warnings:     warn,
		HistoryLimit: cfg.HistoryLimit,
	})
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return sess, st.Close, nil
}

// withSession resolves config and runs fn on a session whose warnings go
// to the command's stderr.
func withSession(cmd *cobra.Command, fn func(*session.Session) error) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sess, closeStore, err := openSession(cmd, cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(sess)
}

// runApp launches the TUI. Warnings are appended to the log file so they
// don't corrupt the screen.
func runApp(cmd *cobra.Command, startTutorial string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: open log file: %v\n", err)
		logFile = nil
	}
	var warn io.Writer = io.Discard
	if logFile != nil {
		defer logFile.Close()
		warn = logFile
	}

	sess, closeStore, err := openSession(cmd, cfg, warn)
	if err != nil {
		return err
	}
	defer closeStore()

	if !sess.RestoreReport().OK() {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: some saved state could not be loaded; see %s\n", cfg.LogPath)
	}

	return app.Run(cmd.Context(), app.Options{
		Session:       sess,
		StartTutorial: startTutorial,
	})
}
