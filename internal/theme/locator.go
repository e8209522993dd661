package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// Extension is the file extension of theme stylesheets.
	Extension = ".css"
	// UserThemesMarker prefixes @import references to user-defined themes.
	UserThemesMarker = "{UserAppData}/"
)

// Locator maps theme IDs to files in the two storage tiers.
type Locator struct {
	AppDir string
	// UserDir is empty for portable deployments, which have no user tier.
	UserDir string
}

// NewLocator returns a Locator over the given tier directories.
func NewLocator(appDir, userDir string) *Locator {
	return &Locator{AppDir: appDir, UserDir: userDir}
}

// PathFor computes the file a theme is stored in without checking it exists.
func (l *Locator) PathFor(id ID) (string, error) {
	if id.Name == "" || id.Name == "." || id.Name == ".." || strings.ContainsAny(id.Name, `/\`) {
		return "", fmt.Errorf("invalid theme name %q", id.Name)
	}
	dir := l.AppDir
	if id.Tier == UserDefined {
		if l.UserDir == "" {
			return "", fmt.Errorf("portable mode only supports built-in themes")
		}
		dir = l.UserDir
	}
	return filepath.Join(dir, id.Name+Extension), nil
}

// LocateTheme returns the path of an existing theme file. A theme is only
// ever looked up in its own tier.
func (l *Locator) LocateTheme(id ID) (string, error) {
	path, err := l.PathFor(id)
	if err != nil {
		return "", &Error{Kind: ErrThemeNotFound, Rule: id.String(), Err: err}
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", &Error{Kind: ErrThemeNotFound, Path: path, Rule: id.String(), Err: err}
	}
	if info.IsDir() {
		return "", &Error{Kind: ErrThemeNotFound, Path: path, Rule: id.String(), Detail: "is a directory"}
	}
	return path, nil
}

// ParseImportReference interprets an @import reference as a theme ID.
func ParseImportReference(ref string) ID {
	if len(ref) >= len(Extension) && strings.EqualFold(ref[len(ref)-len(Extension):], Extension) {
		ref = ref[:len(ref)-len(Extension)]
	}
	if name, ok := strings.CutPrefix(ref, UserThemesMarker); ok {
		return UserID(name)
	}
	return BuiltinID(ref)
}

// ResolveImport maps an @import reference to an existing theme file.
func (l *Locator) ResolveImport(ref string) (string, error) {
	return l.LocateTheme(ParseImportReference(ref))
}
