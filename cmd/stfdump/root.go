package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/stewi1014/stf"
	"github.com/stewi1014/stf/internal/logging"
	"github.com/stewi1014/stf/stfile"
)

// fileConfig is the layout of the --config file.
type fileConfig struct {
	Limits stf.Config     `toml:"limits"`
	Log    logging.Config `toml:"log"`
}

func loadConfig(path string) (*fileConfig, error) {
	cfg := &fileConfig{Log: logging.DefaultConfig()}
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := cfg.Limits.Validate(); err != nil {
		return nil, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

// options are shared by every subcommand.
type options struct {
	configPath string
	logLevel   string

	limits stf.Config
	logger zerolog.Logger
}

// setup loads the config file, then applies the environment and flags over it.
func (o *options) setup(stderr io.Writer) error {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return err
	}

	logging.ApplyEnv(&cfg.Log)
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	o.logger, err = logging.Configure(cfg.Log, stderr)
	if err != nil {
		return err
	}

	o.limits = cfg.Limits
	o.logger.Debug().Stringer("limits", &o.limits).Str("config", o.configPath).Msg("configured")
	return nil
}

// documents reads every document in the file at path.
func (o *options) documents(path string) ([]*stfile.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var docs []*stfile.Document
	for {
		doc, err := stfile.ReadRaw(f, o.limits)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: document %d: %w", path, len(docs), err)
		}
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("%s: no documents", path)
	}
	return docs, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "stfdump",
		Short:         "Inspect and verify stf documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "TOML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: trace|debug|info|warn|error|off")

	cmd.AddCommand(
		newInspectCmd(opts),
		newHexCmd(opts),
		newVerifyCmd(opts),
	)
	return cmd
}
