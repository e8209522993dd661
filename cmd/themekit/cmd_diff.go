package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sadopc/themekit/internal/theme"
	"github.com/sadopc/themekit/internal/theme/render"
)

func diffCmd() {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	var variants variantList
	fs.Var(&variants, "variant", "Allowed variant (repeatable, default: configured variants)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: themekit diff <theme> <theme> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Resolve two themes and list the color keys that differ.\n")
		fmt.Fprintf(os.Stderr, "Prefix user-defined themes with {UserAppData}/.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  themekit diff light dark\n")
		fmt.Fprintf(os.Stderr, "  themekit diff dark '{UserAppData}/my-dark' --variant HighContrast\n")
		fmt.Fprintf(os.Stderr, "\nExit codes:\n")
		fmt.Fprintf(os.Stderr, "  0  Themes resolve to the same colors\n")
		fmt.Fprintf(os.Stderr, "  1  Themes differ\n")
		fmt.Fprintf(os.Stderr, "  2  A theme could not be resolved\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	if fs.NArg() < 2 {
		fmt.Fprintf(os.Stderr, "Error: two theme names are required\n\n")
		fs.Usage()
		os.Exit(2)
	}

	s := newSession()
	allowed := variantsOrDefault(variants, s.cfg)
	a, err := s.getTheme(themeID(fs.Arg(0), false), allowed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	b, err := s.getTheme(themeID(fs.Arg(1), false), allowed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	changes := theme.Diff(a, b)
	fmt.Print(render.Diff(changes, render.NewStyles(b)))
	if len(changes) > 0 {
		os.Exit(1)
	}
}
