package theme

import "github.com/sadopc/themekit/internal/palette"

// ChangeType tells how a color key differs between two themes.
type ChangeType int

const (
	Added ChangeType = iota + 1
	Removed
	Changed
)

func (c ChangeType) String() string {
	switch c {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	default:
		return "same"
	}
}

// Change is one differing key. Old is zero for Added, New is zero for Removed.
type Change struct {
	Key  palette.Key
	Type ChangeType
	Old  palette.Color
	New  palette.Color
}

// Diff lists the keys whose assignment differs from a to b, system colors
// first, each group in registry order. Alpha is compared too.
func Diff(a, b *Theme) []Change {
	var out []Change
	for _, c := range palette.SysColors() {
		k := palette.Key{Namespace: palette.SysNamespace, Sys: c}
		if ch, ok := compareKey(k, a, b); ok {
			out = append(out, ch)
		}
	}
	for _, c := range palette.AppColors() {
		k := palette.Key{Namespace: palette.AppNamespace, App: c}
		if ch, ok := compareKey(k, a, b); ok {
			out = append(out, ch)
		}
	}
	return out
}

func compareKey(k palette.Key, a, b *Theme) (Change, bool) {
	oldC, inA := a.Color(k)
	newC, inB := b.Color(k)
	switch {
	case inA && !inB:
		return Change{Key: k, Type: Removed, Old: oldC}, true
	case !inA && inB:
		return Change{Key: k, Type: Added, New: newC}, true
	case inA && inB && oldC != newC:
		return Change{Key: k, Type: Changed, Old: oldC, New: newC}, true
	default:
		return Change{}, false
	}
}
