// Package config loads the lvsort command-line defaults from a YAML or
// JSON file. JSON documents are valid YAML, so one decoder serves both.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsort/sorting"
)

// DemoValues is the input used when neither the command line nor the
// config file names any values.
var DemoValues = []int{
	10, 2, 5, 4, 80, 43, 10, 2, 5, 4, 80, 43,
	17, 23, 1, 99, 7, 56,
	34, 65, 12, 88, 3, 77,
}

// Config holds the defaults of every lvsort command.
//
// Example (YAML):
//
//	algorithm: insertion
//	trace: true
//	stats: true
//	log_level: debug
//	values: [3, 2, 1]
//
// Example (JSON):
//
//	{"algorithm": "selection", "early_exit": false, "no_color": true}
type Config struct {
	Algorithm string `yaml:"algorithm"`
	Trace     bool   `yaml:"trace"`
	EarlyExit bool   `yaml:"early_exit"`
	Stats     bool   `yaml:"stats"`
	NoColor   bool   `yaml:"no_color"`
	LogLevel  string `yaml:"log_level"`
	Values    []int  `yaml:"values"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Algorithm: sorting.Bubble.String(),
		LogLevel:  logrus.InfoLevel.String(),
		Values:    append([]int(nil), DemoValues...),
	}
}

// Load reads path over Default. An empty path or a missing file yields the
// defaults; unreadable or malformed files are errors.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}

	return c, nil
}

// Parse decodes data over Default and validates the result.
// Unknown keys are rejected so typos do not pass silently.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decode")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks the algorithm name and the log level.
func (c Config) Validate() error {
	if _, err := sorting.ParseAlgorithm(c.Algorithm); err != nil {
		return errors.Wrap(err, "algorithm")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}

	return nil
}

// SortingAlgorithm returns the parsed algorithm. Call Validate first.
func (c Config) SortingAlgorithm() sorting.Algorithm {
	alg, _ := sorting.ParseAlgorithm(c.Algorithm)

	return alg
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}
