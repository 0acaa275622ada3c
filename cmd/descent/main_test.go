package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := RootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "descent "+version+"\n", out)
}

func TestProblems(t *testing.T) {
	out, err := execute(t, "problems")
	require.NoError(t, err)
	assert.Contains(t, out, "beale        n = 2")
	assert.Contains(t, out, "rosenbrock   n >= 2")
}

func TestRun_SingleProblem(t *testing.T) {
	out, err := execute(t, "run", "--problem", "quadratic", "--lr", "0.1",
		"--max-iter", "500", "--tol", "1e-8", "--start", "1,-1")
	require.NoError(t, err)
	assert.Contains(t, out, "quadratic [quadratic, dense64, lr=0.1]")
	assert.Contains(t, out, "status  = Converged")
}

func TestRun_FixedVariantWithTrace(t *testing.T) {
	out, err := execute(t, "run", "--problem", "rosenbrock", "--variant", "fixed32",
		"--lr", "0.001", "--max-iter", "200", "--start", "-1.2,1", "--trace", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "rosenbrock, fixed32")
	assert.Contains(t, out, "trace:")
	assert.Contains(t, out, "status  = IterationLimit")
}

func TestRun_Defaults(t *testing.T) {
	out, err := execute(t, "run", "--parallel", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "rosenbrock-fixed32")
	assert.Contains(t, out, "rosenbrock-dense64")
}

func TestRun_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"non-positive lr", []string{"run", "--problem", "quadratic", "--lr", "0"}},
		{"unknown problem", []string{"run", "--problem", "sphere"}},
		{"unknown variant", []string{"run", "--problem", "quadratic", "--variant", "sparse"}},
		{"zero budget", []string{"run", "--problem", "quadratic", "--max-iter", "0"}},
		{"bad log level", []string{"run", "--log-level", "loud"}},
		{"wrong dimension", []string{"run", "--problem", "beale", "--start", "1,2,3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
