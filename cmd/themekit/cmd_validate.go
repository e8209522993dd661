package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sadopc/themekit/internal/theme"
)

func validateCmd() {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var variants variantList
	fs.Var(&variants, "variant", "Allowed variant (repeatable, default: configured variants)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: themekit validate <file.css> [files...] [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Resolve stylesheet files, following their imports, and report errors.\n")
		fmt.Fprintf(os.Stderr, "Imports are looked up in the configured theme directories.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  themekit validate dark.css\n")
		fmt.Fprintf(os.Stderr, "  themekit validate Themes/*.css --variant HighContrast\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: at least one file path is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	s := newSession()
	resolver := theme.NewResolver(s.repo.Locator(), theme.WithLogger(s.logger))
	allowed := variantsOrDefault(variants, s.cfg)

	hasErrors := false
	for _, path := range fs.Args() {
		table, err := resolver.Resolve(path, allowed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
			if hint := validationHint(err); hint != "" {
				fmt.Fprintf(os.Stderr, "     %s\n", hint)
			}
			hasErrors = true
			continue
		}
		fmt.Printf("OK   %s (%d colors)\n", path, len(table.App)+len(table.Sys))
	}

	if hasErrors {
		os.Exit(1)
	}
}

// validationHint suggests a fix for the common resolution failures.
func validationHint(err error) string {
	switch {
	case errors.Is(err, theme.ErrCyclicImport):
		return "remove one of the @import rules in the chain"
	case errors.Is(err, theme.ErrImportNotResolvable):
		return "built-in imports are looked up in the app themes dir, {UserAppData}/ imports in the user themes dir"
	case errors.Is(err, theme.ErrInvalidRule):
		return "rules must look like .Key.variant { color: #rrggbb }"
	case errors.Is(err, theme.ErrFileTooLarge):
		return "split the theme into smaller files joined with @import"
	default:
		return ""
	}
}
