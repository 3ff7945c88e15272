// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command binc is an interactive calculator for bit manipulation.
//
// Without --expression it starts a line-editing prompt that redraws the
// register after every line. With --expression it runs the ';' separated
// commands against a fresh register and prints the result.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/binc/config"
	"github.com/ezrec/binc/translate"
)

// Version is set by the linker for release builds.
var Version string

var rootCmd = &cobra.Command{
	Use:           "binc",
	Short:         "A calculator for bit manipulation.",
	Long:          "Binc edits a fixed width register with bit-range commands such as '[7:0]=0xff', '>>2' or '[15:8]<>[7:0]'.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	defineFlags(rootCmd)
}

func defineFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.CountP("verbose", "v", "increase logging verbosity, up to -vvvv")
	flags.IntP("history", "H", 0, "number of undo snapshots kept (default 100)")
	flags.BoolP("append-output", "a", false, "append the register after every line instead of redrawing it")
	flags.StringP("expression", "e", "", "run the ';' separated commands and print the result (batch mode)")
	flags.StringP("format", "f", "", "batch output notation: b, o, d, h or x, 0 prefixed to print the radix (default 0b)")
	flags.BoolP("prepend0", "p", false, "zero pad batch output to the register width")
	flags.StringP("config", "c", "", "configuration file (default "+config.DefaultPath()+")")
	flags.IntP("width", "w", 0, "register width in bits (default 32)")
	flags.BoolP("signed", "s", false, "start with a signed register")
	flags.BoolP("unsigned", "u", false, "start with an unsigned register (default)")
	flags.String("language", "", "language tag for messages")
	flags.Bool("version", false, "report version of this executable")
}

// verbosity maps the -v count to a log level.
func verbosity(count int) log.Level {
	switch {
	case count <= 0:
		return log.WarnLevel
	case count == 1:
		return log.InfoLevel
	case count == 2:
		return log.DebugLevel
	default:
		return log.TraceLevel
	}
}

// settings loads the configuration file and applies the command line
// flags that were given on top of it.
func settings(cmd *cobra.Command) (cfg config.Config, err error) {
	flags := cmd.Flags()

	path := config.DefaultPath()
	if flags.Changed("config") {
		path, _ = flags.GetString("config")
	}

	cfg, err = config.Load(path)
	if err != nil {
		return
	}

	if flags.Changed("history") {
		cfg.History, _ = flags.GetInt("history")
	}
	if flags.Changed("append-output") {
		cfg.AppendOutput, _ = flags.GetBool("append-output")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("prepend0") {
		cfg.Prepend0, _ = flags.GetBool("prepend0")
	}
	if flags.Changed("width") {
		cfg.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("signed") {
		cfg.Signed, _ = flags.GetBool("signed")
	}
	if flags.Changed("unsigned") {
		unsigned, _ := flags.GetBool("unsigned")
		cfg.Signed = !unsigned
	}
	if flags.Changed("language") {
		cfg.Language, _ = flags.GetString("language")
	}

	err = cfg.Validate()
	return
}

func version() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}
	return "(unknown version)"
}

func run(cmd *cobra.Command, args []string) (err error) {
	flags := cmd.Flags()

	count, _ := flags.GetCount("verbose")
	log.SetLevel(verbosity(count))

	if show, _ := flags.GetBool("version"); show {
		fmt.Fprintln(cmd.OutOrStdout(), "binc", version())
		return
	}

	cfg, err := settings(cmd)
	if err != nil {
		return
	}

	if cfg.Language != "" {
		err = translate.SetLanguage(cfg.Language)
		if err != nil {
			return
		}
	}

	log.Debugf("binc: %+v", cfg)

	if flags.Changed("expression") {
		expression, _ := flags.GetString("expression")
		return batch(cfg, expression, cmd.OutOrStdout())
	}

	return interactive(cfg, os.Stdin, cmd.OutOrStdout())
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", os.Args[0], err)
		os.Exit(1)
	}
}
