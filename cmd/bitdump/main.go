// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/accumulatenetwork/bitdump/internal/bitdump"
	"gitlab.com/accumulatenetwork/bitdump/internal/logging"
	cmdutil "gitlab.com/accumulatenetwork/bitdump/internal/util/cmd"
)

var cmdMain = &cobra.Command{
	Use:   "bitdump [file]",
	Short: "Print the bits of a binary file, four bytes per line",
	Long: "Print the bits of a binary file, four bytes per line, each line prefixed\n" +
		"by the hex offset of its first byte. Reads " + bitdump.DefaultInput + " when no file is given.",
	Args: cobra.RangeArgs(0, 1),
	Run:  dump,
}

var flagMain = struct {
	LogLevel  string
	LogFormat string
}{}

var config = viper.New()

func init() {
	flags := cmdMain.PersistentFlags()
	flags.StringVar(&flagMain.LogLevel, "log-level", "error", "Log level for diagnostics on stderr")
	flags.StringVar(&flagMain.LogFormat, "log-format", logging.LogFormatPlain, "Log format, plain or json")

	config.SetEnvPrefix("BITDUMP")
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()
	check(config.BindPFlags(flags))
}

func main() {
	if err := cmdMain.Execute(); err != nil {
		os.Exit(1)
	}
}

func fatalf(format string, args ...interface{}) {
	cmdutil.Fatalf(format, args...)
}

func check(err error) {
	cmdutil.Check(err)
}

func newLogger(cmd *cobra.Command) zerolog.Logger {
	logger, err := logging.New(cmd.ErrOrStderr(), config.GetString("log-format"), config.GetString("log-level"))
	if err != nil {
		fatalf("%v", err)
	}
	return logger
}

func dump(cmd *cobra.Command, args []string) {
	logger := newLogger(cmd)

	path := bitdump.DefaultInput
	if len(args) > 0 {
		path = args[0]
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	n, err := bitdump.New(logger).DumpFile(out, path)
	if err != nil {
		logger.Debug().Msgf("%+v", err)
	}
	check(err)
	cmdutil.Checkf(out.Flush(), "write stdout")

	if n == 0 {
		cmdutil.Warnf("%s is empty", path)
	}
}
