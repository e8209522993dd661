package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sadopc/themekit/internal/theme"
)

func useCmd() {
	fs := flag.NewFlagSet("use", flag.ExitOnError)
	userFlag := fs.Bool("user", false, "Select a user-defined theme")
	var variants variantList
	fs.Var(&variants, "variant", "Allowed variant (repeatable, default: configured variants)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: themekit use <theme> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Resolve a theme and, if it is valid, make it the active one.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  themekit use dark\n")
		fmt.Fprintf(os.Stderr, "  themekit use mine --user --variant HighContrast\n")
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
	id := themeID(fs.Arg(0), *userFlag)
	allowed := variantsOrDefault(variants, s.cfg)
	if _, err := s.getTheme(id, allowed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := s.openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if _, err := store.Select(id, allowed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Using %s\n", describe(id, allowed))
}

func currentCmd() {
	fs := flag.NewFlagSet("current", flag.ExitOnError)
	historyFlag := fs.Int("history", 0, "Also list this many previous selections")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: themekit current [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Print the active theme. Without a selection the configured theme is used.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	s := newSession()
	store, err := s.openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	cur, ok, err := store.Current()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if ok {
		fmt.Println(describe(cur.Theme, cur.Variants))
	} else {
		fmt.Printf("%s (from config)\n", describe(s.configuredTheme(), s.cfg.Variants))
	}

	if *historyFlag > 0 {
		entries, err := store.History(*historyFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, e := range entries {
			fmt.Printf("  %s  %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"), describe(e.Theme, e.Variants))
		}
	}
}

// activeTheme returns the last selected theme, or the configured one.
func (s *session) activeTheme() theme.ID {
	store, err := s.openStore()
	if err != nil {
		s.logger.Debug("selection store unavailable", "err", err)
		return s.configuredTheme()
	}
	defer store.Close()

	cur, ok, err := store.Current()
	if err != nil || !ok {
		return s.configuredTheme()
	}
	return cur.Theme
}

func (s *session) configuredTheme() theme.ID {
	return themeID(s.cfg.Theme, s.cfg.UserTheme)
}

func describe(id theme.ID, variants []string) string {
	if len(variants) == 0 {
		return id.String()
	}
	return fmt.Sprintf("%s [%s]", id, strings.Join(variants, ", "))
}
