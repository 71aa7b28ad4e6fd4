package main

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/lvdisks/disks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRootCmd_DefaultLawnmower(t *testing.T) {
	logger = zap.NewNop()
	defer func() { logger = nil }()

	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t,
		"algorithm: lawnmower\n"+
			"before:    D L D L D L D L\n"+
			"after:     L L L L D D D D\n"+
			"swaps:     10\n"+
			"sorted:    true\n", out)
}

func TestRootCmd_AlternateShortFlags(t *testing.T) {
	logger = zap.NewNop()
	defer func() { logger = nil }()

	out, err := execute(t, "-n", "3", "-a", "Alternate")
	require.NoError(t, err)
	assert.Contains(t, out, "algorithm: alternate\n")
	assert.Contains(t, out, "after:     L L L D D D\n")
	assert.Contains(t, out, "swaps:     6\n")
}

func TestRootCmd_All(t *testing.T) {
	logger = zap.NewNop()
	defer func() { logger = nil }()

	out, err := execute(t, "--pairs", "2", "--algorithm", "all")
	require.NoError(t, err)
	assert.Contains(t, out, "algorithm: lawnmower\n")
	assert.Contains(t, out, "algorithm: alternate\n")
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte("swaps:     3\n")))
}

func TestRootCmd_Rejects(t *testing.T) {
	logger = zap.NewNop()
	defer func() { logger = nil }()

	cases := []struct {
		name string
		args []string
	}{
		{"ZeroPairs", []string{"-n", "0"}},
		{"NegativePairs", []string{"--pairs=-3"}},
		{"UnknownAlgorithm", []string{"-a", "quicksort"}},
		{"PositionalArg", []string{"extra"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestRun_UnknownAlgorithmIsSentinel(t *testing.T) {
	logger = zap.NewNop()
	defer func() { logger = nil }()

	err := run(&bytes.Buffer{}, &options{pairs: 2, algorithm: "nope"})
	assert.ErrorIs(t, err, disks.ErrUnknownAlgorithm)
}

func TestRun_VerboseLogsEveryPass(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger = zap.New(core)
	defer func() { logger = nil }()

	err := run(&bytes.Buffer{}, &options{pairs: 4, algorithm: "lawnmower", verbose: true})
	require.NoError(t, err)

	passes := logs.FilterMessage("pass complete").All()
	require.Len(t, passes, 4, "n=4 lawnmower runs two round trips")
	assert.Equal(t, "left-to-right", passes[0].ContextMap()["direction"])
	assert.Equal(t, "right-to-left", passes[1].ContextMap()["direction"])
	assert.Equal(t, "L L L L D D D D", passes[3].ContextMap()["row"])

	sorted := logs.FilterMessage("sorted").All()
	require.Len(t, sorted, 1)
	assert.Equal(t, int64(10), sorted[0].ContextMap()["swaps"])
}

func TestAlgorithmNames(t *testing.T) {
	assert.Equal(t, []string{"lawnmower", "alternate", "all"}, algorithmNames())
}
