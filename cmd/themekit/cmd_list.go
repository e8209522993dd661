package main

import (
	"flag"
	"fmt"
	"os"
)

func listCmd() {
	fs := flag.NewFlagSet("list", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: themekit list\n\n")
		fmt.Fprintf(os.Stderr, "List selectable themes. User-defined themes carry the {UserAppData}/ prefix;\n")
		fmt.Fprintf(os.Stderr, "the active theme is marked with '*'.\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	s := newSession()
	ids, err := s.repo.ThemeIDs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	active := s.activeTheme()
	for _, id := range ids {
		marker := " "
		if id.Equal(active) {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, id)
	}
}
