package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/sadopc/themekit/internal/theme"
	"github.com/sadopc/themekit/internal/theme/render"
)

func exportCmd() {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	userFlag := fs.Bool("user", false, "Look the theme up among user-defined themes")
	outputFlag := fs.String("output", "", "Output file path (default: stdout)")
	copyFlag := fs.Bool("copy", false, "Copy the stylesheet to the clipboard")
	plainFlag := fs.Bool("plain", false, "Disable syntax highlighting on stdout")
	styleFlag := fs.String("style", render.DefaultHighlightStyle, "Chroma style used for highlighting")
	var variants variantList
	fs.Var(&variants, "variant", "Allowed variant (repeatable, default: configured variants)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: themekit export <theme> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Resolve a theme and print it as one stylesheet with no imports or variants.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  themekit export dark\n")
		fmt.Fprintf(os.Stderr, "  themekit export dark --variant HighContrast --output dark-hc.css\n")
		fmt.Fprintf(os.Stderr, "  themekit export mine --user --copy\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: theme name is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	s := newSession()
	t, err := s.getTheme(themeID(fs.Arg(0), *userFlag), variantsOrDefault(variants, s.cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	css := theme.Serialize(t)

	switch {
	case *copyFlag:
		if err := clipboard.WriteAll(css); err != nil {
			fmt.Fprintf(os.Stderr, "Error copying to clipboard: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Copied %s to clipboard\n", t.ID())
	case *outputFlag != "":
		if err := os.WriteFile(*outputFlag, []byte(css), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Exported %s to %s\n", t.ID(), *outputFlag)
	case *plainFlag:
		fmt.Print(css)
	default:
		fmt.Print(render.Highlight(css, *styleFlag))
	}
}
