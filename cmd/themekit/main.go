package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sahilm/fuzzy"

	"github.com/sadopc/themekit/internal/config"
	"github.com/sadopc/themekit/internal/core/selection"
	"github.com/sadopc/themekit/internal/theme"
	"github.com/sadopc/themekit/pkg/version"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "list":
		listCmd()
	case "show":
		showCmd()
	case "export":
		exportCmd()
	case "diff":
		diffCmd()
	case "fork":
		forkCmd()
	case "delete":
		deleteCmd()
	case "validate":
		validateCmd()
	case "use":
		useCmd()
	case "current":
		currentCmd()
	case "completion":
		completionCmd()
	case "version", "--version":
		fmt.Printf("themekit %s (%s) built %s\n", version.Version, version.Commit, version.Date)
	case "help", "--help", "-h":
		printHelp()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", os.Args[1])
		printHelp()
		os.Exit(2)
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `themekit - resolve and manage CSS color themes

Usage:
  themekit <command> [args] [flags]

Commands:
  list        List built-in and user-defined themes
  show        Resolve a theme and print its colors
  export      Print a theme flattened into a single stylesheet
  diff        Compare the resolved colors of two themes
  fork        Save a copy of a theme as a user-defined theme
  delete      Delete a user-defined theme
  validate    Resolve stylesheet files and report errors
  use         Select the active theme and variants
  current     Print the active theme
  completion  Generate shell completion scripts (bash, zsh, fish)
  version     Print version information
  help        Show this help message

Configuration is read from ~/.config/themekit/config.yaml.

Run 'themekit <command> --help' for more information about a command.
`)
}

// session bundles what every theme command needs.
type session struct {
	cfg    config.Config
	logger *log.Logger
	repo   *theme.Repository
}

func newSession() *session {
	cfg := config.Load()
	logger := newLogger(os.Stderr, cfg.LogLevel)
	if cfg.Portable() {
		logger.Debug("portable install, user themes disabled", "dir", cfg.AppThemesDir)
	}
	locator := theme.NewLocator(cfg.AppThemesDir, cfg.UserThemesDir)
	return &session{
		cfg:    cfg,
		logger: logger,
		repo:   theme.NewRepository(locator, theme.WithLogger(logger)),
	}
}

// openStore opens the selection database, creating its directory if needed.
func (s *session) openStore() (*selection.Store, error) {
	if s.cfg.StatePath == "" {
		return nil, fmt.Errorf("no state path configured")
	}
	if s.cfg.StatePath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(s.cfg.StatePath), 0755); err != nil {
			return nil, fmt.Errorf("creating state dir: %w", err)
		}
	}
	return selection.NewStore(s.cfg.StatePath)
}

// getTheme resolves id and, when it does not exist, appends suggestions of
// similarly named themes to the error.
func (s *session) getTheme(id theme.ID, variants []string) (*theme.Theme, error) {
	t, err := s.repo.GetTheme(id, variants)
	if err == nil {
		return t, nil
	}
	if ids, listErr := s.repo.ThemeIDs(); listErr == nil {
		if similar := suggestThemes(id.Name, ids); len(similar) > 0 {
			return nil, fmt.Errorf("%w (did you mean %s?)", err, strings.Join(similar, ", "))
		}
	}
	return nil, err
}

func newLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{Level: lvl, Prefix: "themekit"})
}

// themeID interprets a command-line theme reference. References may use the
// same {UserAppData}/ prefix as @import; --user forces the user tier.
func themeID(ref string, user bool) theme.ID {
	id := theme.ParseImportReference(ref)
	if user {
		id.Tier = theme.UserDefined
	}
	return id
}

func suggestThemes(name string, ids []theme.ID) []string {
	if name == "" {
		return nil
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	var out []string
	for i, m := range fuzzy.Find(name, names) {
		if i == 3 {
			break
		}
		out = append(out, m.Str)
	}
	return out
}

// variantList is a repeatable flag; each value may also be comma separated.
type variantList []string

func (v *variantList) String() string { return strings.Join(*v, ",") }

func (v *variantList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*v = append(*v, part)
		}
	}
	return nil
}

// variantsOrDefault falls back to the configured variants when none were given.
func variantsOrDefault(v variantList, cfg config.Config) []string {
	if len(v) > 0 {
		return v
	}
	return cfg.Variants
}
