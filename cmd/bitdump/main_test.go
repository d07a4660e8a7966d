// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	cmdutil "gitlab.com/accumulatenetwork/bitdump/internal/util/cmd"
)

type exitCode int

type result struct {
	Stdout string
	Stderr string
	Code   int
}

func resetFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func execute(t *testing.T, args ...string) result {
	t.Helper()
	stdout := new(bytes.Buffer)
	r := executeWith(t, stdout, args...)
	r.Stdout = stdout.String()
	return r
}

func executeWith(t *testing.T, stdout io.Writer, args ...string) (r result) {
	t.Helper()
	stderr := new(bytes.Buffer)

	oldErr, oldExit := cmdutil.Stderr, cmdutil.Exit
	cmdutil.Stderr = stderr
	cmdutil.Exit = func(code int) { panic(exitCode(code)) }
	defer func() { cmdutil.Stderr, cmdutil.Exit = oldErr, oldExit }()

	resetFlags(cmdMain.PersistentFlags())
	resetFlags(cmdVersion.Flags())
	if args == nil {
		args = []string{}
	}
	cmdMain.SetArgs(args)
	cmdMain.SetOut(stdout)
	cmdMain.SetErr(stderr)

	defer func() {
		if x := recover(); x != nil {
			code, ok := x.(exitCode)
			if !ok {
				panic(x)
			}
			r.Code = int(code)
		}
		r.Stderr = stderr.String()
	}()

	if err := cmdMain.Execute(); err != nil {
		r.Code = 1
	}
	return r
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}

const scenarioOutput = "" +
	"00000000: 11111111000000000000111100000001\n" +
	"00000004: 10101011\n"

var scenarioInput = []byte{0xFF, 0x00, 0x0F, 0x01, 0xAB}

func TestDefaultInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "output.bin"), scenarioInput, 0600))
	chdir(t, dir)

	r := execute(t)
	require.Zero(t, r.Code)
	require.Equal(t, scenarioOutput, r.Stdout)
	require.Empty(t, r.Stderr)
}

func TestPathArgument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.bin")
	require.NoError(t, os.WriteFile(path, scenarioInput, 0600))

	r := execute(t, path)
	require.Zero(t, r.Code)
	require.Equal(t, scenarioOutput, r.Stdout)
}

func TestMissingInput(t *testing.T) {
	chdir(t, t.TempDir())

	r := execute(t)
	require.Equal(t, 1, r.Code)
	require.Empty(t, r.Stdout)
	require.Equal(t, "Error: open output.bin: no such file or directory\n", r.Stderr)
}

func TestEmptyInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "output.bin"), nil, 0600))
	chdir(t, dir)

	r := execute(t)
	require.Zero(t, r.Code)
	require.Empty(t, r.Stdout)
	require.Equal(t, "WARNING: output.bin is empty\n", r.Stderr)
}

type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) { return 0, fmt.Errorf("broken pipe") }

func TestStdoutWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.bin")
	require.NoError(t, os.WriteFile(path, scenarioInput, 0600))

	r := executeWith(t, brokenPipe{}, path)
	require.Equal(t, 1, r.Code)
	require.Equal(t, "Error: write stdout: broken pipe\n", r.Stderr)
}

func TestTooManyArgs(t *testing.T) {
	r := execute(t, "a.bin", "b.bin")
	require.Equal(t, 1, r.Code)
	require.Contains(t, r.Stderr, "accepts between 0 and 1 arg(s)")
	require.NotContains(t, r.Stdout, "00000000:")
}

func TestLogConfigFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.bin")
	require.NoError(t, os.WriteFile(path, scenarioInput, 0600))
	t.Setenv("BITDUMP_LOG_LEVEL", "debug")
	t.Setenv("BITDUMP_LOG_FORMAT", "json")

	r := execute(t, path)
	require.Zero(t, r.Code)
	require.Equal(t, scenarioOutput, r.Stdout)
	require.Contains(t, r.Stderr, `"message":"Loaded input"`)
	require.Contains(t, r.Stderr, `"size":"5 B"`)
}

func TestLogFlagOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.bin")
	require.NoError(t, os.WriteFile(path, scenarioInput, 0600))
	t.Setenv("BITDUMP_LOG_LEVEL", "debug")

	r := execute(t, "--log-level", "error", path)
	require.Zero(t, r.Code)
	require.Equal(t, scenarioOutput, r.Stdout)
	require.Empty(t, r.Stderr)
}

func TestBadLogFormat(t *testing.T) {
	r := execute(t, "--log-format", "xml", "whatever.bin")
	require.Equal(t, 1, r.Code)
	require.Empty(t, r.Stdout)
	require.Equal(t, "Error: unsupported log format: xml\n", r.Stderr)
}

func TestVersion(t *testing.T) {
	r := execute(t, "version")
	require.Zero(t, r.Code)
	require.Equal(t, "bitdump version unknown\n", r.Stdout)

	r = execute(t, "version", "--version-only")
	require.Zero(t, r.Code)
	require.Equal(t, "version unknown\n", r.Stdout)

	r = execute(t, "version", "--known-version")
	require.Equal(t, 1, r.Code)
}
