package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tonearm/internal/apperr"
	"tonearm/internal/config"
	"tonearm/internal/logging"
	"tonearm/internal/scheme"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	logger *slog.Logger
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		logger:       logging.NewNop(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

// initLogger builds the invocation logger once config is available. Each
// invocation gets its own correlation ID.
func (c *commandContext) initLogger(cmd *cobra.Command) error {
	var override string
	if c.logLevelFlag != nil {
		override = *c.logLevelFlag
	}
	if _, err := logging.ParseLevel(override); err != nil {
		return apperr.Usage("argument --log-level: %v", err)
	}
	logger, err := logging.NewFromConfig(c.config, cmd.ErrOrStderr(), override)
	if err != nil {
		return err
	}
	c.logger = logger.With(logging.String(logging.FieldInvocation, uuid.NewString()))
	return nil
}

func (c *commandContext) componentLogger(component string) *slog.Logger {
	return logging.NewComponentLogger(c.logger, component)
}

func (c *commandContext) catalog() (*scheme.Catalog, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	custom := make([]scheme.Scheme, 0, len(cfg.Schemes))
	for _, s := range cfg.Schemes {
		custom = append(custom, scheme.Scheme{Name: s.Name, InnerNull: s.InnerNull, OuterNull: s.OuterNull})
	}
	return scheme.NewCatalog(custom...)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
