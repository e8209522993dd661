package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sadopc/themekit/internal/theme"
)

func forkCmd() {
	fs := flag.NewFlagSet("fork", flag.ExitOnError)
	userFlag := fs.Bool("user", false, "Look the source theme up among user-defined themes")
	forceFlag := fs.Bool("force", false, "Overwrite an existing user theme")
	var variants variantList
	fs.Var(&variants, "variant", "Allowed variant (repeatable, default: configured variants)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: themekit fork <source> <name> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Resolve a theme and save the result as a user-defined theme.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  themekit fork dark my-dark\n")
		fmt.Fprintf(os.Stderr, "  themekit fork dark my-dark-hc --variant HighContrast\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 2 {
		fmt.Fprintf(os.Stderr, "Error: source and target theme names are required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	s := newSession()
	src := themeID(fs.Arg(0), *userFlag)
	dst := theme.UserID(fs.Arg(1))
	if err := forkTheme(s.repo, src, dst, variantsOrDefault(variants, s.cfg), *forceFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %s\n", dst)
}

// forkTheme resolves src and saves its flattened colors under dst.
func forkTheme(repo *theme.Repository, src, dst theme.ID, variants []string, force bool) error {
	if !force {
		if _, err := repo.Locator().LocateTheme(dst); err == nil {
			return fmt.Errorf("theme %s already exists (use --force to overwrite)", dst)
		}
	}
	t, err := repo.GetTheme(src, variants)
	if err != nil {
		return err
	}
	return repo.Save(theme.NewTheme(dst, t.AppColors(), t.SysColors()))
}

func deleteCmd() {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	userFlag := fs.Bool("user", false, "Delete a user-defined theme")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: themekit delete <name> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Delete a user-defined theme. Built-in themes cannot be deleted.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  themekit delete --user my-dark\n")
		fmt.Fprintf(os.Stderr, "  themekit delete '{UserAppData}/my-dark'\n")
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
	if err := s.repo.Delete(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(deleteExitCode(err))
	}

	if store, err := s.openStore(); err == nil {
		if err := store.Forget(id); err != nil {
			s.logger.Warn("could not forget deleted theme", "theme", id, "err", err)
		}
		store.Close()
	}
	fmt.Printf("Deleted %s\n", id)
}

// deleteExitCode is 2 when the theme may not be deleted at all and 1 for
// any other failure.
func deleteExitCode(err error) int {
	if errors.Is(err, theme.ErrInvalidOperation) {
		return 2
	}
	return 1
}
