package theme

import (
	"maps"
	"strings"

	"github.com/sadopc/themekit/internal/palette"
)

// Tier is the storage precedence class of a theme.
type Tier int

const (
	// Builtin themes ship with the application.
	Builtin Tier = iota
	// UserDefined themes live in the optional user themes directory.
	UserDefined
)

func (t Tier) String() string {
	if t == UserDefined {
		return "user"
	}
	return "builtin"
}

// ID identifies a theme by name and tier.
type ID struct {
	Name string
	Tier Tier
}

// BuiltinID returns the ID of a shipped theme.
func BuiltinID(name string) ID {
	return ID{Name: name, Tier: Builtin}
}

// UserID returns the ID of a user-defined theme.
func UserID(name string) ID {
	return ID{Name: name, Tier: UserDefined}
}

// IsBuiltin reports whether the theme belongs to the built-in tier.
func (id ID) IsBuiltin() bool {
	return id.Tier == Builtin
}

// Equal compares tiers exactly and names case-insensitively.
func (id ID) Equal(other ID) bool {
	return id.Tier == other.Tier && strings.EqualFold(id.Name, other.Name)
}

// String renders the ID the way an @import references it.
func (id ID) String() string {
	if id.Tier == UserDefined {
		return UserThemesMarker + id.Name
	}
	return id.Name
}

// Theme is a fully resolved palette bound to its ID. It is never mutated
// after construction.
type Theme struct {
	id        ID
	appColors map[palette.AppColor]palette.Color
	sysColors map[palette.SysColor]palette.Color
}

// NewTheme builds a Theme. The maps are copied.
func NewTheme(id ID, app map[palette.AppColor]palette.Color, sys map[palette.SysColor]palette.Color) *Theme {
	t := &Theme{
		id:        id,
		appColors: make(map[palette.AppColor]palette.Color, len(app)),
		sysColors: make(map[palette.SysColor]palette.Color, len(sys)),
	}
	maps.Copy(t.appColors, app)
	maps.Copy(t.sysColors, sys)
	return t
}

func (t *Theme) ID() ID { return t.id }

// AppColor returns the color for an application key, if the theme sets it.
func (t *Theme) AppColor(c palette.AppColor) (palette.Color, bool) {
	v, ok := t.appColors[c]
	return v, ok
}

// SysColor returns the color for a system key, if the theme sets it.
func (t *Theme) SysColor(c palette.SysColor) (palette.Color, bool) {
	v, ok := t.sysColors[c]
	return v, ok
}

// Color looks up either partition by tagged key.
func (t *Theme) Color(k palette.Key) (palette.Color, bool) {
	if k.Namespace == palette.SysNamespace {
		return t.SysColor(k.Sys)
	}
	return t.AppColor(k.App)
}

// AppColors returns a copy of the application partition.
func (t *Theme) AppColors() map[palette.AppColor]palette.Color {
	return maps.Clone(t.appColors)
}

// SysColors returns a copy of the system partition.
func (t *Theme) SysColors() map[palette.SysColor]palette.Color {
	return maps.Clone(t.sysColors)
}

// Len is the number of keys the theme sets.
func (t *Theme) Len() int {
	return len(t.appColors) + len(t.sysColors)
}
