package cli

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

//nolint:gochecknoglobals // Compiled once; read-only.
var (
	negativeNumberRe = regexp.MustCompile(`^-(\d|\.\d)`)
	integerRe        = regexp.MustCompile(`^[+-]?\d+$`)
	fractionRe       = regexp.MustCompile(`^\d+/\d+$`)
	// quantityRe splits "5mph", "2.5e3m" or "1/2mile" into number and unit.
	quantityRe = regexp.MustCompile(`^([+-]?(?:\d+/\d+|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?))([A-Za-z].*)$`)
)

// NormalizeNegativeArgs rewrites args so that a negative value such as "-5"
// reaches the root command as a positional argument instead of being read as
// a shorthand flag. Flags keep their values and move to the front, followed by
// "--" and the positionals. Arguments are returned unchanged when no negative
// number is present, when "--" is already used, or when a subcommand is named.
func NormalizeNegativeArgs(root *cobra.Command, args []string) []string {
	if !slices.ContainsFunc(args, negativeNumberRe.MatchString) || slices.Contains(args, "--") {
		return args
	}

	flags := make([]string, 0, len(args))
	positionals := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") || arg == "-" || negativeNumberRe.MatchString(arg) {
			if len(positionals) == 0 && isSubcommand(root, arg) {
				return args
			}
			positionals = append(positionals, arg)
			continue
		}

		flags = append(flags, arg)
		if flagTakesValue(root, arg) && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}

	return append(append(flags, "--"), positionals...)
}

// flagTakesValue reports whether arg is a flag whose value is the next
// argument, i.e. a non-boolean flag written without "=".
func flagTakesValue(root *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = lookupFlag(root, name)
	} else {
		// Shorthand groups such as -dv: only the last letter can take a value.
		f = lookupShorthand(root, arg[len(arg)-1:])
		if f != nil && len(arg) > 2 {
			return f.NoOptDefVal == "" && f.Value.Type() != "bool"
		}
	}
	return f != nil && f.NoOptDefVal == ""
}

func lookupFlag(root *cobra.Command, name string) *pflag.Flag {
	if f := root.Flags().Lookup(name); f != nil {
		return f
	}
	return root.PersistentFlags().Lookup(name)
}

func lookupShorthand(root *cobra.Command, short string) *pflag.Flag {
	if f := root.Flags().ShorthandLookup(short); f != nil {
		return f
	}
	return root.PersistentFlags().ShorthandLookup(short)
}

func isSubcommand(root *cobra.Command, name string) bool {
	for _, c := range root.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return name == "help"
}

// quantity is a conversion request as typed on the command line.
type quantity struct {
	Value     float64
	ValueText string
	From      string
	To        string
}

// parseConversionArgs reads "<value> <from> [to]" from positional arguments.
// The value may be an integer, a decimal, an exponent form, a fraction
// ("1/2"), a mixed fraction given as one argument ("5 1/2") or two ("5"
// "1/2"), or joined to the source unit ("5mph"). To is empty when only one
// unit was given.
func parseConversionArgs(args []string) (quantity, error) {
	if len(args) >= 2 && integerRe.MatchString(args[0]) && fractionRe.MatchString(args[1]) {
		args = append([]string{args[0] + " " + args[1]}, args[2:]...)
	}
	if len(args) == 0 {
		return quantity{}, ErrWrongArgCount
	}

	valueText := strings.TrimSpace(args[0])
	unitArgs := args[1:]

	value, err := parseValue(valueText)
	if err != nil {
		m := quantityRe.FindStringSubmatch(valueText)
		if m == nil {
			return quantity{}, err
		}
		if value, err = parseValue(m[1]); err != nil {
			return quantity{}, err
		}
		valueText = m[1]
		unitArgs = append([]string{m[2]}, unitArgs...)
	}

	q := quantity{Value: value, ValueText: valueText}
	switch len(unitArgs) {
	case 1:
		q.From = unitArgs[0]
	case 2: //nolint:mnd // from and to
		q.From, q.To = unitArgs[0], unitArgs[1]
	default:
		return quantity{}, ErrWrongArgCount
	}
	return q, nil
}

// parseValue parses a decimal, a fraction "a/b" or a mixed fraction "a b/c".
// The sign of a mixed fraction applies to the whole quantity.
func parseValue(s string) (float64, error) {
	if fields := strings.Fields(s); len(fields) == 2 { //nolint:mnd // whole and fraction
		if !integerRe.MatchString(fields[0]) || !fractionRe.MatchString(fields[1]) {
			return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, s)
		}
		whole, _ := strconv.ParseFloat(fields[0], 64)
		frac, err := parseFraction(fields[1])
		if err != nil {
			return 0, err
		}
		if strings.HasPrefix(fields[0], "-") {
			return whole - frac, nil
		}
		return whole + frac, nil
	}

	if strings.Contains(s, "/") {
		return parseFraction(s)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, s)
	}
	return v, nil
}

func parseFraction(s string) (float64, error) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, s)
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, s)
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, s)
	}
	if d == 0 {
		return 0, fmt.Errorf("%w: %s", ErrDivisionByZero, s)
	}
	return n / d, nil
}
