package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"strings"

	"github.com/davecgh/go-spew/spew"
	prim "github.com/shabbyrobe/go-prim"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// primcalc evaluates single operations on wrapped numbers from the command
// line. It is mostly useful for checking what a given kind will do with an
// edge case before writing the code that depends on it:
//
//	primcalc calc i8 127 + 1          # -128
//	primcalc --format hex swap u32 388446023
//	primcalc calc - 255 + 1 --kind u8 # 0
//
// Negative operands need a '--' so they are not read as flags.

func main() {
	log.SetFlags(0)
	log.SetPrefix("primcalc: ")
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	return newRootCmd().Execute()
}

type app struct {
	v   *viper.Viper
	cfg Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: newViper()}

	root := &cobra.Command{
		Use:           "primcalc",
		Short:         "Evaluate operations on fixed-width wrapped numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			a.cfg, err = loadConfig(a.v, cmd.Root().PersistentFlags())
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (yaml, json or toml)")
	pf.String("format", "dec", "output format, dec or hex")
	pf.Bool("dump", false, "dump results with go-spew")
	pf.String("kind", "i64", "kind to use when a kind argument is '-'")

	root.AddCommand(
		a.calcCmd(),
		a.bytesCmd(),
		a.fromBytesCmd(),
		a.swapCmd(),
		a.rotateCmd("rotl", true),
		a.rotateCmd("rotr", false),
		a.parseCmd(),
		a.limitsCmd(),
		a.promoteCmd(),
	)
	return root
}

func (a *app) kind(arg string) (prim.Kind, error) {
	if arg == "-" {
		return a.cfg.Kind, nil
	}
	return prim.ParseKind(arg)
}

func (a *app) emit(cmd *cobra.Command, v any) error {
	out := cmd.OutOrStdout()
	if a.cfg.Dump {
		spew.Fdump(out, v)
		return nil
	}
	_, err := fmt.Fprintf(out, a.cfg.verb(v)+"\n", v)
	return err
}

func (a *app) calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <kind> <a> <op> <b>",
		Short: "Apply a binary operator: + - * / % & | ^ &^ << >> min max == != < <= > >=",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := a.kind(args[0])
			if err != nil {
				return err
			}
			v, err := calc(k, args[1], args[2], args[3])
			if err != nil {
				return fmt.Errorf("calc %s %s %s: %w", args[1], args[2], args[3], err)
			}
			return a.emit(cmd, v)
		},
	}
}

func (a *app) bytesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bytes <kind> <value>",
		Short: "Print the big-endian byte representation of a value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := a.kind(args[0])
			if err != nil {
				return err
			}
			b, err := encode(k, args[1])
			if err != nil {
				return err
			}
			return a.emit(cmd, b)
		},
	}
}

func (a *app) fromBytesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frombytes <kind> <hex>",
		Short: "Decode a big-endian byte representation, given in hex",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := a.kind(args[0])
			if err != nil {
				return err
			}
			clean := strings.NewReplacer("0x", "", "0X", "", " ", "", ":", "").Replace(args[1])
			raw, err := hex.DecodeString(clean)
			if err != nil {
				return fmt.Errorf("frombytes %q: %w", args[1], err)
			}
			v, err := decode(k, raw)
			if err != nil {
				return err
			}
			return a.emit(cmd, v)
		},
	}
}

func (a *app) swapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swap <kind> <value>",
		Short: "Reverse the byte order of an unsigned value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := a.kind(args[0])
			if err != nil {
				return err
			}
			v, err := swap(k, args[1])
			if err != nil {
				return err
			}
			return a.emit(cmd, v)
		},
	}
}

func (a *app) rotateCmd(name string, left bool) *cobra.Command {
	dir := "right"
	if left {
		dir = "left"
	}
	return &cobra.Command{
		Use:   name + " <kind> <value> <n>",
		Short: "Rotate an unsigned value " + dir + " by n bits",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := a.kind(args[0])
			if err != nil {
				return err
			}
			var n prim.I64
			if err := n.UnmarshalText([]byte(args[2])); err != nil {
				return err
			}
			v, err := rotate(k, args[1], int(n.Get()), left)
			if err != nil {
				return err
			}
			return a.emit(cmd, v)
		},
	}
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <kind> <text>",
		Short: "Parse the longest numeric prefix of text; anything else is zero",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := a.kind(args[0])
			if err != nil {
				return err
			}
			v, err := parseLenient(k, args[1])
			if err != nil {
				return err
			}
			return a.emit(cmd, v)
		},
	}
}

func (a *app) limitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "limits <kind>",
		Short: "Show the size and numeric limits of a kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := a.kind(args[0])
			if err != nil {
				return err
			}
			lim, err := limitsOf(k)
			if err != nil {
				return err
			}
			if a.cfg.Dump {
				return a.emit(cmd, lim)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "kind: %s\n", lim.Kind)
			fmt.Fprintf(out, "size: %d\n", lim.Size)
			fmt.Fprintf(out, "bits: %d\n", lim.Bits)
			for _, row := range []struct {
				name string
				v    any
			}{
				{"max", lim.Max},
				{"min", lim.Min},
				{"lowest", lim.Lowest},
				{"epsilon", lim.Epsilon},
			} {
				fmt.Fprintf(out, "%s: "+a.cfg.verb(row.v)+"\n", row.name, row.v)
			}
			return nil
		},
	}
}

type promotion struct {
	From, To prim.Kind
	Class    prim.Promotion
}

func (p promotion) String() string {
	return fmt.Sprintf("%s -> %s: %s", p.From, p.To, p.Class)
}

func (a *app) promoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote <from> <to>",
		Short: "Look up how one kind converts to another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := a.kind(args[0])
			if err != nil {
				return err
			}
			to, err := a.kind(args[1])
			if err != nil {
				return err
			}
			return a.emit(cmd, promotion{From: from, To: to, Class: prim.PromotionOf(from, to)})
		},
	}
}
