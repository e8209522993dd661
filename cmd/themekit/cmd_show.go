package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/tidwall/pretty"

	"github.com/sadopc/themekit/internal/theme"
	"github.com/sadopc/themekit/internal/theme/render"
)

func showCmd() {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	userFlag := fs.Bool("user", false, "Look the theme up among user-defined themes")
	jsonFlag := fs.Bool("json", false, "Print colors as JSON")
	var variants variantList
	fs.Var(&variants, "variant", "Allowed variant (repeatable, default: configured variants)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: themekit show <theme> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Resolve a theme, including its imports, and print every assigned color.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  themekit show dark\n")
		fmt.Fprintf(os.Stderr, "  themekit show dark --variant HighContrast\n")
		fmt.Fprintf(os.Stderr, "  themekit show mine --user --json\n")
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

	if *jsonFlag {
		data, err := themeJSON(t)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	fmt.Print(render.Table(t, render.NewStyles(t)))
}

type jsonColor struct {
	Key       string `json:"key"`
	Namespace string `json:"namespace"`
	Color     string `json:"color"`
}

type jsonTheme struct {
	Name   string      `json:"name"`
	Tier   string      `json:"tier"`
	Colors []jsonColor `json:"colors"`
}

// themeJSON encodes the assigned colors of t in registry order.
func themeJSON(t *theme.Theme) ([]byte, error) {
	out := jsonTheme{
		Name:   t.ID().Name,
		Tier:   t.ID().Tier.String(),
		Colors: []jsonColor{},
	}
	for _, e := range render.Entries(t) {
		out.Colors = append(out.Colors, jsonColor{
			Key:       e.Key.String(),
			Namespace: e.Key.Namespace.String(),
			Color:     e.Color.String(),
		})
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(data), nil
}
