package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tonearm/internal/apperr"
)

// normalizeArgs rewrites the raw command line into a form pflag understands:
// "--nulls A B" becomes "--nulls=A,B" and only the last --nulls is kept, and
// when a negative number appears as a positional every positional is moved
// behind "--" so it is not mistaken for a shorthand flag.
func normalizeArgs(cmd *cobra.Command, args []string) ([]string, error) {
	inline := make([]string, 0, len(args))
	flags := make([]string, 0, len(args))
	var positionals, trailing []string
	negative := false

	for i := 0; i < len(args); i++ {
		tok := args[i]
		switch {
		case tok == "--":
			trailing = append([]string{"--"}, args[i+1:]...)
			i = len(args)
		case tok == "--nulls":
			if i+2 >= len(args) || looksLikeFlag(args[i+1]) || looksLikeFlag(args[i+2]) {
				return nil, apperr.Usage("argument --nulls: expected 2 arguments")
			}
			joined := "--nulls=" + args[i+1] + "," + args[i+2]
			inline = append(inline, joined)
			flags = append(flags, joined)
			i += 2
		case isNumber(tok):
			if strings.HasPrefix(tok, "-") {
				negative = true
			}
			inline = append(inline, tok)
			positionals = append(positionals, tok)
		case looksLikeFlag(tok):
			inline = append(inline, tok)
			flags = append(flags, tok)
			if takesValue(cmd, tok) && i+1 < len(args) {
				inline = append(inline, args[i+1])
				flags = append(flags, args[i+1])
				i++
			}
		default:
			inline = append(inline, tok)
			positionals = append(positionals, tok)
		}
	}

	inline = keepLastNulls(inline)
	flags = keepLastNulls(flags)

	if !negative {
		return append(inline, trailing...), nil
	}
	out := append(flags, "--")
	out = append(out, positionals...)
	if len(trailing) > 0 {
		out = append(out, trailing[1:]...)
	}
	return out, nil
}

// keepLastNulls drops every --nulls occurrence but the last, since pflag
// would otherwise append the pairs together.
func keepLastNulls(tokens []string) []string {
	last := -1
	for i, tok := range tokens {
		if strings.HasPrefix(tok, "--nulls=") {
			last = i
		}
	}
	out := tokens[:0]
	for i, tok := range tokens {
		if i != last && strings.HasPrefix(tok, "--nulls=") {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func looksLikeFlag(tok string) bool {
	return len(tok) > 1 && strings.HasPrefix(tok, "-") && !isNumber(tok)
}

func isNumber(tok string) bool {
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}

// takesValue reports whether tok names a known flag whose value is the next
// token rather than attached with "=" or run together with a shorthand.
func takesValue(cmd *cobra.Command, tok string) bool {
	var flag *pflag.Flag
	switch {
	case strings.HasPrefix(tok, "--"):
		name := tok[2:]
		if strings.Contains(name, "=") {
			return false
		}
		flag = lookupFlag(cmd, name)
	case len(tok) == 2:
		flag = lookupShorthand(cmd, tok[1:])
	default:
		return false
	}
	return flag != nil && flag.NoOptDefVal == ""
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.PersistentFlags().Lookup(name)
}

func lookupShorthand(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().ShorthandLookup(name); f != nil {
		return f
	}
	return cmd.PersistentFlags().ShorthandLookup(name)
}
