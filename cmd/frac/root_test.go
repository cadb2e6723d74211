package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	frac "github.com/pc-2025-ifrs/ava-01-isabella"
	"github.com/pc-2025-ifrs/ava-01-isabella/intmath"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestParseCommand(t *testing.T) {
	out, _, err := run(t, "parse", "4/8")
	require.NoError(t, err)
	assert.Equal(t, "1/2\nproper=true improper=false apparent=false unit=true\n", out)

	out, _, err = run(t, "parse", "--", "-6 / 3")
	require.NoError(t, err)
	assert.Equal(t, "-2/1\nproper=false improper=true apparent=true unit=false\n", out)

	_, _, err = run(t, "parse", "1/0")
	assert.ErrorIs(t, err, frac.ErrDenZero)

	_, _, err = run(t, "parse", "half")
	assert.ErrorIs(t, err, frac.ErrParse)
}

func TestApproxCommand(t *testing.T) {
	out, _, err := run(t, "approx", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "1/2\n", out)

	out, _, err = run(t, "approx", "--", "-0.75")
	require.NoError(t, err)
	assert.Equal(t, "-3/4\n", out)

	_, _, err = run(t, "approx", "NaN")
	assert.ErrorIs(t, err, frac.ErrNotFinite)
}

func TestAddCommand(t *testing.T) {
	cases := []struct {
		A, B, Want string
	}{
		{"1/2", "1/3", "5/6"},
		{"1/2", "1", "3/2"},
		{"1/2", "0.25", "3/4"},
		{"2", "1/3", "7/3"},
		{"0.5", "0.5", "1/1"},
		{"1/2", "-1/2", "0/1"},
	}
	for _, c := range cases {
		t.Run(c.A+"+"+c.B, func(t *testing.T) {
			out, _, err := run(t, "add", "--", c.A, c.B)
			require.NoError(t, err)
			assert.Equal(t, c.Want+"\n", out)
		})
	}

	_, _, err := run(t, "add", "1/2", "1/0")
	assert.ErrorIs(t, err, frac.ErrDenZero)

	_, _, err = run(t, "add", "1/2", "abc")
	assert.Error(t, err)
}

func TestCmpCommand(t *testing.T) {
	out, _, err := run(t, "cmp", "1/2", "1/3")
	require.NoError(t, err)
	assert.Equal(t, "1/2 > 1/3\n", out)

	out, _, err = run(t, "cmp", "2/4", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "1/2 = 1/2\n", out)

	out, _, err = run(t, "cmp", "--", "-1", "1/3")
	require.NoError(t, err)
	assert.Equal(t, "-1/1 < 1/3\n", out)
}

func TestIntCommands(t *testing.T) {
	out, _, err := run(t, "gcd", "54", "24")
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)

	out, _, err = run(t, "lcm", "--", "-5", "16")
	require.NoError(t, err)
	assert.Equal(t, "80\n", out)

	out, _, err = run(t, "gcd", "0", "0")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	_, _, err = run(t, "lcm", "3.5", "4")
	assert.ErrorIs(t, err, intmath.ErrNotInteger)

	_, _, err = run(t, "lcm", "three", "4")
	assert.ErrorIs(t, err, intmath.ErrNotInteger)

	_, _, err = run(t, "lcm", "3", "4", "5")
	assert.ErrorIs(t, err, intmath.ErrArity)

	_, _, err = run(t, "gcd")
	assert.ErrorIs(t, err, intmath.ErrArity)
}

func TestLogging(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "--log-format", "json", "cmp", "1/2", "3")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"Converting operand"`)
	assert.Contains(t, stderr, `"kind":"int"`)
	assert.Contains(t, stderr, `"command":"cmp"`)

	_, stderr, err = run(t, "cmp", "1/2", "3")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "Converting operand")

	_, _, err = run(t, "--log-format", "xml", "cmp", "1/2", "3")
	assert.ErrorContains(t, err, "unsupported log format")

	_, _, err = run(t, "--log-level", "loud", "cmp", "1/2", "3")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestLoggingFromEnv(t *testing.T) {
	t.Setenv("FRAC_LOG_LEVEL", "debug")
	_, stderr, err := run(t, "approx", "0.25")
	require.NoError(t, err)
	assert.Contains(t, stderr, "DEBUG")
	assert.Contains(t, stderr, "Approximated")
}

func TestOperandKind(t *testing.T) {
	assert.Equal(t, kindText, operandKind("1/2"))
	assert.Equal(t, kindInt, operandKind("-12"))
	assert.Equal(t, kindFloat, operandKind("1.5"))
	assert.Equal(t, kindFloat, operandKind("1e3"))
	assert.Equal(t, "float", kindFloat.String())
	assert.True(t, strings.HasPrefix(kind(9).String(), "unknown"))
}
