package palette

import (
	"testing"
)

func TestRegistryNamesMatchEnums(t *testing.T) {
	if len(appColorNames) != int(AnsiTerminalWhiteForeNormal)+1 {
		t.Fatalf("appColorNames has %d entries, want %d", len(appColorNames), AnsiTerminalWhiteForeNormal+1)
	}
	if len(sysColorNames) != int(WindowText)+1 {
		t.Fatalf("sysColorNames has %d entries, want %d", len(sysColorNames), WindowText+1)
	}
	for _, c := range AppColors() {
		got, ok := ParseAppColor(c.String())
		if !ok || got != c {
			t.Fatalf("ParseAppColor(%q) = %v, %v", c.String(), got, ok)
		}
	}
	for _, c := range SysColors() {
		got, ok := ParseSysColor(c.String())
		if !ok || got != c {
			t.Fatalf("ParseSysColor(%q) = %v, %v", c.String(), got, ok)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		ns   Namespace
		want string
	}{
		{"Graph", true, AppNamespace, "Graph"},
		{"Window", true, SysNamespace, "Window"},
		{"window", false, 0, ""},
		{"NotARealColor", false, 0, ""},
		{"", false, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok := Lookup(tt.name)
			if ok != tt.ok {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			}
			if !ok {
				return
			}
			if k.Namespace != tt.ns {
				t.Fatalf("Lookup(%q) namespace = %v, want %v", tt.name, k.Namespace, tt.ns)
			}
			if k.String() != tt.want {
				t.Fatalf("Lookup(%q) = %q, want %q", tt.name, k.String(), tt.want)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	got := Suggest("DiffAdd")
	if len(got) == 0 {
		t.Fatal("expected suggestions for DiffAdd")
	}
	found := false
	for _, s := range got {
		if s == "DiffAdded" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Suggest(DiffAdd) = %v, want DiffAdded among them", got)
	}
	if len(got) > 3 {
		t.Fatalf("Suggest returned %d names, want at most 3", len(got))
	}
	if Suggest("") != nil {
		t.Fatal("Suggest(\"\") should be nil")
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#111111", 0xff111111},
		{"#FF0080", 0xffff0080},
		{"#f0c", 0xffff00cc},
		{"#11223380", 0x80112233},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Fatalf("ParseHex(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseHex(%q) = %#08x, want %#08x", tt.in, uint32(got), uint32(tt.want))
		}
	}
}

func TestParseHexRejects(t *testing.T) {
	for _, in := range []string{"", "red", "111111", "#12", "#12345", "#gggggg", "#112233zz"} {
		if _, err := ParseHex(in); err == nil {
			t.Fatalf("ParseHex(%q) expected error", in)
		}
	}
}

func TestColorFormatting(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0x80)
	if got := c.RGBHex(); got != "#123456" {
		t.Fatalf("RGBHex() = %q, want #123456", got)
	}
	if got := c.String(); got != "#12345680" {
		t.Fatalf("String() = %q, want #12345680", got)
	}
	if got := RGB(1, 2, 3).String(); got != "#010203" {
		t.Fatalf("String() = %q, want #010203", got)
	}
	if got := c.Lipgloss(); got != "#123456" {
		t.Fatalf("Lipgloss() = %q, want #123456", got)
	}
	if c.R() != 0x12 || c.G() != 0x34 || c.B() != 0x56 || c.A() != 0x80 {
		t.Fatalf("channels = %x %x %x %x", c.R(), c.G(), c.B(), c.A())
	}
}
