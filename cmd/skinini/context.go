package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"skinini/internal/config"
	"skinini/internal/logging"
	"skinini/internal/skinfile"
)

type globalFlags struct {
	config    string
	logLevel  string
	logFormat string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the tool config once and layers the logging flags on top.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		if level := strings.TrimSpace(c.flags.logLevel); level != "" {
			cfg.Logging.Level = strings.ToLower(level)
			if cfg.Logging.Level == "warning" {
				cfg.Logging.Level = "warn"
			}
		}
		if format := strings.TrimSpace(c.flags.logFormat); format != "" {
			cfg.Logging.Format = strings.ToLower(format)
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config, c.configPath, c.configSeen = cfg, path, exists
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// outputFormat picks the --format flag when set, otherwise output.format.
func (c *commandContext) outputFormat(flag string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(flag))
	if format == "" {
		cfg, err := c.ensureConfig()
		if err != nil {
			return "", err
		}
		format = cfg.Output.Format
	}
	switch format {
	case formatTable, formatJSON, formatYAML:
		return format, nil
	case "yml":
		return formatYAML, nil
	}
	return "", fmt.Errorf("unsupported output format %q (want table, json or yaml)", flag)
}

func (c *commandContext) colorize(w io.Writer) bool {
	mode := "auto"
	if cfg, err := c.ensureConfig(); err == nil {
		mode = cfg.Output.Color
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return shouldColorize(w)
}

// loadSkin reads and tokenizes the skin file at path, logging the outcome.
func (c *commandContext) loadSkin(ctx context.Context, path string) (*skinfile.Document, *slog.Logger, error) {
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}
	logger = logging.WithContext(logging.WithPath(ctx, path), logger)

	doc, err := skinfile.Load(path)
	if err != nil {
		logging.ErrorWithContext(logger, "skin load failed", "skin_load_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, loadHint(err)),
		)
		return nil, logger, err
	}
	logger.Debug("skin loaded", logging.Int("section_count", len(doc.Sections())))
	return doc, logger, nil
}

func loadHint(err error) string {
	switch {
	case errors.Is(err, skinfile.ErrSyntax):
		return "check for unclosed [section] headers"
	case errors.Is(err, skinfile.ErrRead):
		return "check that the path exists and is readable"
	}
	return "check logs for details"
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func absPath(path string) (string, error) {
	abs, err := filepath.Abs(strings.TrimSpace(path))
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", path, err)
	}
	return abs, nil
}
