package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	frac "github.com/pc-2025-ifrs/ava-01-isabella"
	"github.com/pc-2025-ifrs/ava-01-isabella/intmath"
)

type app struct {
	v   *viper.Viper
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:          "frac",
		Short:        "Exact fraction arithmetic",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	a.bindFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		a.parseCmd(),
		a.approxCmd(),
		a.addCmd(),
		a.cmpCmd(),
		a.intCmd("gcd", "Greatest common divisor of two integers", intmath.CheckedGCD),
		a.intCmd("lcm", "Least common multiple of two integers", intmath.CheckedLCM),
	)
	return cmd
}

// bindFlags registers the global flags and makes each one settable through
// a FRAC_ environment variable, e.g. FRAC_LOG_LEVEL=debug.
func (a *app) bindFlags(fs *pflag.FlagSet) {
	fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	fs.String("log-format", LogFormatPlain, "Log format (plain, text, json)")

	_ = a.v.BindPFlags(fs)
	a.v.SetEnvPrefix("FRAC")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
}

func (a *app) setup(cmd *cobra.Command) error {
	logger, err := newLogger(cmd.ErrOrStderr(), a.v.GetString("log-format"), a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	a.log = logger.With().Str("command", cmd.Name()).Logger()
	return nil
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <n/d>",
		Short: "Normalize a fraction and classify it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := frac.Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, x)
			fmt.Fprintf(out, "proper=%t improper=%t apparent=%t unit=%t\n",
				x.IsProper(), x.IsImproper(), x.IsApparent(), x.IsUnit())
			return nil
		},
	}
}

func (a *app) approxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approx <float>",
		Short: "Find a simple fraction close to a floating-point value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return err
			}
			x, err := frac.FromFloat64(v)
			if err != nil {
				return err
			}
			f, exact := x.Float64()
			a.log.Debug().
				Float64("input", v).
				Stringer("result", x).
				Float64("error", f-v).
				Bool("exact", exact).
				Msg("Approximated")
			fmt.Fprintln(cmd.OutOrStdout(), x)
			return nil
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Add two operands (n/d, integer or float)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.operand(args[0])
			if err != nil {
				return err
			}

			var z frac.F
			switch operandKind(args[1]) {
			case kindText:
				z, err = x.AddString(args[1])
			case kindInt:
				n, _ := strconv.ParseInt(args[1], 10, 64)
				z, err = x.AddInt(n)
			default:
				var v float64
				v, err = strconv.ParseFloat(args[1], 64)
				if err == nil {
					z, err = x.AddFloat(v)
				}
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), z)
			return nil
		},
	}
}

func (a *app) cmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "Compare two operands (n/d, integer or float)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.operand(args[0])
			if err != nil {
				return err
			}
			y, err := a.operand(args[1])
			if err != nil {
				return err
			}
			rel := "="
			switch {
			case x.Less(y):
				rel = "<"
			case x.Greater(y):
				rel = ">"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", x, rel, y)
			return nil
		},
	}
}

// intCmd does not restrict the argument count so that fn can report arity
// errors itself.
func (a *app) intCmd(name, short string, fn func(...any) (int64, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <a> <b>",
		Short: short,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vals := make([]any, len(args))
			for i, s := range args {
				vals[i] = scalar(s)
			}
			r, err := fn(vals...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

type kind int

const (
	kindText kind = iota
	kindInt
	kindFloat
)

func (k kind) String() string {
	switch k {
	case kindText:
		return "text"
	case kindInt:
		return "int"
	case kindFloat:
		return "float"
	}
	return "unknown"
}

func operandKind(s string) kind {
	if strings.Contains(s, "/") {
		return kindText
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return kindInt
	}
	return kindFloat
}

// operand converts s with the constructor matching its form.
func (a *app) operand(s string) (frac.F, error) {
	k := operandKind(s)
	a.log.Debug().Str("operand", s).Stringer("kind", k).Msg("Converting operand")
	switch k {
	case kindText:
		return frac.Parse(s)
	case kindInt:
		n, _ := strconv.ParseInt(s, 10, 64)
		return frac.FromInt(n), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return frac.F{}, err
	}
	return frac.FromFloat64(v)
}

// scalar returns s as an int64 or float64 if it looks like one, or else the
// string itself.
func scalar(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
