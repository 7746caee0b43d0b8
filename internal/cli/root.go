package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rpgo/takehome/internal/config"
	"github.com/rpgo/takehome/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	LogLevel string
	Schedule string

	log *logrus.Entry
}

var logLevels = map[string]logrus.Level{
	"trace": logrus.TraceLevel,
	"debug": logrus.DebugLevel,
	"info":  logrus.InfoLevel,
	"warn":  logrus.WarnLevel,
	"error": logrus.ErrorLevel,
}

// NewRootCommand creates the root command. Run without a subcommand it scans
// the default sweep and opens the chart.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	scan := &scanOptions{}

	cmd := &cobra.Command{
		Use:   "takehome",
		Short: "Find incomes where a raise lowers take-home pay",
		Long: `takehome computes slab tax with an all-or-nothing rebate threshold, sweeps a
range of gross incomes and charts take-home pay, shading every interval where
take-home falls below what a smaller income already earned.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(opts.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.log = log
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts, scan)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level ("+strings.Join(levelNames(), "|")+")")
	cmd.PersistentFlags().StringVar(&opts.Schedule, "schedule", "", "YAML schedule file (default: built-in slabs)")
	addScanFlags(cmd, scan)

	cmd.AddCommand(NewScanCommand(opts))
	cmd.AddCommand(NewTaxCommand(opts))
	cmd.AddCommand(NewInitCommand(opts))

	return cmd
}

func levelNames() []string {
	names := make([]string, 0, len(logLevels))
	for n := range logLevels {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func newLogger(level string, w io.Writer) (*logrus.Entry, error) {
	lvl, ok := logLevels[strings.ToLower(level)]
	if !ok {
		return nil, fmt.Errorf("invalid log level %q: must be one of %v", level, levelNames())
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.0000",
	})
	return logger.WithField("module", "takehome"), nil
}

// loadConfiguration reads the schedule file if one was given, otherwise it
// returns the built-in configuration.
func loadConfiguration(opts *RootOptions) (*domain.Configuration, domain.Schedule, error) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	if opts.Schedule != "" {
		loaded, err := parser.LoadFromFile(opts.Schedule)
		if err != nil {
			return nil, domain.Schedule{}, err
		}
		cfg = loaded
		opts.log.Debugf("loaded schedule from %s", opts.Schedule)
	}
	schedule, err := parser.BuildSchedule(cfg)
	if err != nil {
		return nil, domain.Schedule{}, err
	}
	return cfg, schedule, nil
}
