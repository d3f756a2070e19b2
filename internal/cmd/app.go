// Package cmd wires the lvsort command line: a demonstration harness that
// prints a list before and after sorting it with one of the sorting
// package's algorithms.
package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/lvsort/internal/config"
	"github.com/katalvlaran/lvsort/internal/logger"
	"github.com/katalvlaran/lvsort/sorting"
)

var log = logger.GetLogger("lvsort")

const configKey = "config"

// Main builds the application and runs it with args, writing command
// output to out and usage errors to errOut.
func Main(args []string, out, errOut io.Writer) error {
	return NewApp(out, errOut).Run(args)
}

// NewApp returns the lvsort application writing to out and errOut.
// The built-in --version flag keeps its -v alias.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:                 "lvsort",
		Usage:                "trace and compare elementary comparison sorts",
		Version:              "1.0.0",
		Writer:               out,
		ErrWriter:            errOut,
		EnableBashCompletion: true,
		Metadata:             map[string]interface{}{},
		Flags:                globalFlags(),
		Before:               setup,
		OnUsageError:         usageError,
		Commands: []*cli.Command{
			CmdSort(),
			CmdCompare(),
			CmdTrace(),
			CmdAlgorithms(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			EnvVars: []string{"LVSORT_CONFIG"},
			Usage:   "YAML or JSON file with command defaults",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"debug"},
			Usage:   "enable debug log",
		},
		&cli.BoolFlag{
			Name:  "trace-log",
			Usage: "enable trace log",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "show warning and errors only",
		},
		&cli.BoolFlag{
			Name:    "no-color",
			EnvVars: []string{"LVSORT_NO_COLOR"},
			Usage:   "disable colors",
		},
	}
}

// usageError reports a flag parse failure on the error writer.
func usageError(c *cli.Context, err error, _ bool) error {
	fmt.Fprintf(c.App.ErrWriter, "Incorrect Usage: %v\n", err)

	return err
}

// setup loads the config, then applies log level and colour switches.
// Command-line switches win over the file.
func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	c.App.Metadata[configKey] = cfg

	switch {
	case c.Bool("trace-log"):
		logger.SetLogLevel(logrus.TraceLevel)
	case c.Bool("verbose"):
		logger.SetLogLevel(logrus.DebugLevel)
	case c.Bool("quiet"):
		logger.SetLogLevel(logrus.WarnLevel)
	default:
		logger.SetLogLevel(cfg.Level())
	}
	if c.Bool("no-color") || cfg.NoColor {
		color.NoColor = true
		logger.DisableLogColor()
	}
	log.Debugf("config loaded: algorithm=%s values=%d", cfg.Algorithm, len(cfg.Values))

	return nil
}

// configOf returns the config stored by setup, or the defaults.
func configOf(c *cli.Context) config.Config {
	if cfg, ok := c.App.Metadata[configKey].(config.Config); ok {
		return cfg
	}

	return config.Default()
}

// algorithmOf resolves --algorithm (or LVSORT_ALGORITHM) over the config,
// which setup has already validated.
func algorithmOf(c *cli.Context, cfg config.Config) (sorting.Algorithm, error) {
	if !c.IsSet("algorithm") {
		return cfg.SortingAlgorithm(), nil
	}
	alg, err := sorting.ParseAlgorithm(c.String("algorithm"))
	if err != nil {
		return 0, errors.Wrap(err, "--algorithm")
	}

	return alg, nil
}

// boolOf returns the flag when given, def otherwise.
func boolOf(c *cli.Context, name string, def bool) bool {
	if c.IsSet(name) {
		return c.Bool(name)
	}

	return def
}

func algorithmFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "algorithm",
		Aliases: []string{"a"},
		EnvVars: []string{"LVSORT_ALGORITHM"},
		Usage:   "bubble, insertion or selection (default from config: bubble)",
	}
}

func kindFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "strings",
			Usage: "treat VALUES as words instead of integers",
		},
		&cli.BoolFlag{
			Name:  "floats",
			Usage: "treat VALUES as floating-point numbers (NaN is rejected)",
		},
	}
}
