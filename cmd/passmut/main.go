package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dyne/passmut/internal/config"
	"github.com/dyne/passmut/internal/log"
	"github.com/dyne/passmut/internal/mutate"
	"github.com/dyne/passmut/internal/run"
	"github.com/dyne/passmut/internal/source"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	Verbose bool
	Seed    int64
	Config  string
	Plugins []string
}

const longHelp = `Mutate passwords with randomized rules and print one result per line.

SOURCE is "." to read one line from standard input, "sqlite:<path>" to read
a column of a SQLite table, or the path of a whitespace-separated text file.

RULE codes, applied in the given order:
  1  replace a random character with a different random lowercase letter
  2  uppercase a random character if it is a lowercase letter

Without rule codes the rules from --config are used, or "1 2" if none.`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "passmut SOURCE [RULE ...]",
		Short:         "Randomized rule-based password mutation",
		Long:          longHelp,
		Args:          requireSource,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.LevelInfo
			if opts.Verbose {
				level = log.LevelDebug
			}
			logger := log.New(level, cmd.ErrOrStderr())
			if err := mutate.LoadPlugins(opts.Plugins, logger); err != nil {
				return err
			}
			cfg, err := config.Load(opts.Config)
			if err != nil {
				return err
			}

			rules, err := buildRules(args[1:], cfg, logger)
			if err != nil {
				return err
			}
			seed := time.Now().UnixNano()
			switch {
			case cmd.Flags().Changed("seed"):
				seed = opts.Seed
			case cfg.Seed != nil:
				seed = *cfg.Seed
			}
			m := mutate.New(rules, seed)
			logger.Debugf("rules: %v, seed: %d", m.RuleNames(), seed)

			src, err := source.Open(cmd.Context(), args[0], source.Options{
				Stdin:  cmd.InOrStdin(),
				Prompt: cmd.ErrOrStderr(),
				SQLite: cfg.SQLiteSource(),
			})
			if err != nil {
				return err
			}
			defer src.Close()
			logger.Debugf("reading passwords from %s", source.Kind(args[0]))

			_, err = run.Run(cmd.Context(), run.Options{
				Source:  src,
				Mutator: m,
				Out:     cmd.OutOrStdout(),
				Logger:  logger,
			})
			return err
		},
	}

	root.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "enable debug logging")
	root.PersistentFlags().Int64Var(&opts.Seed, "seed", 0, "seed for reproducible output (default: current time)")
	root.PersistentFlags().StringVar(&opts.Config, "config", "", "YAML configuration file")
	root.PersistentFlags().StringSliceVar(&opts.Plugins, "plugin", nil, "rule plugin .so path (repeatable)")
	// Flags must come before SOURCE; everything after it is a rule token,
	// including ones that start with "-".
	root.Flags().SetInterspersed(false)
	return root
}

func requireSource(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("wrong number of arguments")
	}
	return nil
}

// buildRules prefers codes from the command line, then the config file,
// then the default list.
func buildRules(codes []string, cfg *config.Config, logger *log.Logger) ([]mutate.Rule, error) {
	if len(codes) > 0 {
		rules, invalid, err := mutate.ParseCodes(codes)
		for _, e := range invalid {
			logger.Errorf("%v", e)
		}
		return rules, err
	}
	if len(cfg.Rules) > 0 {
		return mutate.BuildAll(cfg.Rules)
	}
	return mutate.DefaultRules(), nil
}
