package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsort/internal/config"
	"github.com/katalvlaran/lvsort/sorting"
)

func TestLoad_EmptyPathAndMissingFile(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)

	c, err = config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvsort.yaml")
	body := "algorithm: Insertion-Sort\ntrace: true\nlog_level: debug\nvalues: [3, 2, 1]\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, sorting.Insertion, c.SortingAlgorithm())
	assert.True(t, c.Trace)
	assert.False(t, c.Stats)
	assert.Equal(t, logrus.DebugLevel, c.Level())
	assert.Equal(t, []int{3, 2, 1}, c.Values)
}

func TestParse_JSON(t *testing.T) {
	c, err := config.Parse([]byte(`{"algorithm": "selection", "early_exit": true, "no_color": true}`))
	require.NoError(t, err)
	assert.Equal(t, sorting.Selection, c.SortingAlgorithm())
	assert.True(t, c.EarlyExit)
	assert.True(t, c.NoColor)
	assert.Equal(t, config.DemoValues, c.Values, "unset keys keep defaults")
}

func TestParse_Empty(t *testing.T) {
	c, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown key":     "algoritm: bubble\n",
		"bad algorithm":   "algorithm: quick\n",
		"bad level":       "log_level: loud\n",
		"malformed":       "values: [1, 2\n",
		"wrong type":      "values: three\n",
		"json wrong type": `{"trace": [1]}`,
	}
	for name, body := range cases {
		_, err := config.Parse([]byte(body))
		assert.Error(t, err, name)
	}

	_, err := config.Parse([]byte("algorithm: quick\n"))
	assert.ErrorIs(t, errors.Cause(err), sorting.ErrUnknownAlgorithm)
}

func TestDefault_IsIndependentCopy(t *testing.T) {
	c := config.Default()
	c.Values[0] = -1
	assert.Equal(t, 10, config.DemoValues[0])
}
