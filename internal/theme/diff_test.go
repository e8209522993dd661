package theme

import (
	"testing"

	"github.com/sadopc/themekit/internal/palette"
)

func TestDiff(t *testing.T) {
	a := NewTheme(BuiltinID("a"),
		map[palette.AppColor]palette.Color{
			palette.Graph:  palette.RGB(1, 1, 1),
			palette.Branch: palette.RGB(2, 2, 2),
		},
		map[palette.SysColor]palette.Color{
			palette.Window: palette.RGB(0xff, 0xff, 0xff),
		})
	b := NewTheme(BuiltinID("b"),
		map[palette.AppColor]palette.Color{
			palette.Graph:     palette.RGBA(1, 1, 1, 0x80),
			palette.Branch:    palette.RGB(2, 2, 2),
			palette.DiffAdded: palette.RGB(0, 0xff, 0),
		}, nil)

	got := Diff(a, b)
	want := []Change{
		{Key: palette.Key{Namespace: palette.SysNamespace, Sys: palette.Window}, Type: Removed, Old: palette.RGB(0xff, 0xff, 0xff)},
		{Key: palette.Key{Namespace: palette.AppNamespace, App: palette.Graph}, Type: Changed, Old: palette.RGB(1, 1, 1), New: palette.RGBA(1, 1, 1, 0x80)},
		{Key: palette.Key{Namespace: palette.AppNamespace, App: palette.DiffAdded}, Type: Added, New: palette.RGB(0, 0xff, 0)},
	}
	if len(got) != len(want) {
		t.Fatalf("Diff() returned %d changes, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Diff()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	if d := Diff(a, a); len(d) != 0 {
		t.Fatalf("Diff(a, a) = %+v, want none", d)
	}
}

func TestChangeTypeString(t *testing.T) {
	tests := map[ChangeType]string{Added: "added", Removed: "removed", Changed: "changed", 0: "same"}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Fatalf("ChangeType(%d).String() = %q, want %q", int(c), got, want)
		}
	}
}
