package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"skinini/internal/logging"
	"skinini/internal/logs"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var follow bool
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the JSON log written under logging.dir",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cfg.Logging.Dir == "" {
				return errors.New("logging.dir is not set; no log file is written")
			}
			path := filepath.Join(cfg.Logging.Dir, logging.LogFileName)

			out := cmd.OutOrStdout()
			tail, offset, err := logs.Tail(path, lines)
			if err != nil {
				return fmt.Errorf("tail %s: %w", path, err)
			}
			for _, line := range tail {
				fmt.Fprintln(out, line)
			}
			if !follow {
				if len(tail) == 0 {
					fmt.Fprintln(out, "No log entries available")
				}
				return nil
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return logs.Follow(runCtx, path, offset, logs.DefaultPollInterval, func(line string) {
				fmt.Fprintln(out, line)
			})
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing new entries")
	cmd.Flags().IntVarP(&lines, "lines", "n", 20, "Number of trailing entries to print")
	return cmd
}
