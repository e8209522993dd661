package theme

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// InvariantThemeName is the reserved built-in baseline theme. It is always
// present and never listed among the selectable themes.
const InvariantThemeName = "invariant"

// Repository loads, saves, enumerates and deletes themes across the
// built-in and user tiers. It keeps no state between calls.
type Repository struct {
	locator  *Locator
	resolver *Resolver
	logger   *log.Logger
}

// NewRepository creates a Repository over locator's directories.
func NewRepository(locator *Locator, opts ...Option) *Repository {
	o := buildOptions(opts)
	return &Repository{
		locator:  locator,
		resolver: NewResolver(locator, opts...),
		logger:   o.logger,
	}
}

// Locator exposes the path mapping the repository uses.
func (r *Repository) Locator() *Locator { return r.locator }

// GetTheme resolves a theme with the given variants allowed.
func (r *Repository) GetTheme(id ID, variants []string) (*Theme, error) {
	path, err := r.locator.LocateTheme(id)
	if err != nil {
		return nil, err
	}
	table, err := r.resolver.Resolve(path, variants)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("theme loaded", "theme", id, "path", path, "keys", len(table.App)+len(table.Sys))
	return NewTheme(id, table.App, table.Sys), nil
}

// InvariantTheme loads the baseline theme with no variants.
func (r *Repository) InvariantTheme() (*Theme, error) {
	return r.GetTheme(BuiltinID(InvariantThemeName), nil)
}

// Save writes a theme to its own tier, replacing any previous content.
func (r *Repository) Save(t *Theme) error {
	id := t.ID()
	path, err := r.locator.PathFor(id)
	if err != nil {
		return &Error{Kind: ErrInvalidOperation, Rule: id.String(), Err: err}
	}
	if err := writeFileAtomic(path, []byte(Serialize(t))); err != nil {
		return err
	}
	r.logger.Debug("theme saved", "theme", id, "path", path)
	return nil
}

// Delete removes a user-defined theme.
func (r *Repository) Delete(id ID) error {
	if id.IsBuiltin() {
		return &Error{Kind: ErrInvalidOperation, Rule: id.String(), Detail: "only user-defined themes can be deleted"}
	}
	path, err := r.locator.LocateTheme(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return &Error{Kind: ErrFileNotFound, Path: path, Err: err}
	}
	r.logger.Debug("theme deleted", "theme", id, "path", path)
	return nil
}

// ThemeIDs lists built-in themes (without the invariant one) followed by
// user themes. A missing user directory contributes nothing.
func (r *Repository) ThemeIDs() ([]ID, error) {
	builtin, err := listThemeNames(r.locator.AppDir)
	if err != nil {
		return nil, err
	}

	var ids []ID
	for _, name := range builtin {
		if strings.EqualFold(name, InvariantThemeName) {
			continue
		}
		ids = append(ids, BuiltinID(name))
	}

	if r.locator.UserDir == "" {
		return ids, nil
	}
	user, err := listThemeNames(r.locator.UserDir)
	if err != nil {
		if os.IsNotExist(err) {
			return ids, nil
		}
		return nil, err
	}
	for _, name := range user {
		ids = append(ids, UserID(name))
	}
	return ids, nil
}

func listThemeNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		ext := filepath.Ext(e.Name())
		if !strings.EqualFold(ext, Extension) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(names)
	return names, nil
}
