package palette

import (
	"github.com/sahilm/fuzzy"
)

// AppColor is an application-specific palette slot.
type AppColor int

// Application colors. The order is the order in which they are serialized.
const (
	OtherTag AppColor = iota
	AuthoredHighlight
	HighlightAllOccurences
	Tag
	Graph
	Branch
	RemoteBranch
	DiffSection
	DiffRemoved
	DiffRemovedExtra
	DiffAdded
	DiffAddedExtra
	AnsiTerminalBlackForeNormal
	AnsiTerminalRedForeNormal
	AnsiTerminalGreenForeNormal
	AnsiTerminalYellowForeNormal
	AnsiTerminalBlueForeNormal
	AnsiTerminalMagentaForeNormal
	AnsiTerminalCyanForeNormal
	AnsiTerminalWhiteForeNormal
)

var appColorNames = []string{
	"OtherTag",
	"AuthoredHighlight",
	"HighlightAllOccurences",
	"Tag",
	"Graph",
	"Branch",
	"RemoteBranch",
	"DiffSection",
	"DiffRemoved",
	"DiffRemovedExtra",
	"DiffAdded",
	"DiffAddedExtra",
	"AnsiTerminalBlackForeNormal",
	"AnsiTerminalRedForeNormal",
	"AnsiTerminalGreenForeNormal",
	"AnsiTerminalYellowForeNormal",
	"AnsiTerminalBlueForeNormal",
	"AnsiTerminalMagentaForeNormal",
	"AnsiTerminalCyanForeNormal",
	"AnsiTerminalWhiteForeNormal",
}

// SysColor is a platform palette slot.
type SysColor int

// System colors. The order is the order in which they are serialized.
const (
	ActiveBorder SysColor = iota
	ActiveCaption
	ActiveCaptionText
	AppWorkspace
	ButtonFace
	ButtonHighlight
	ButtonShadow
	Control
	ControlDark
	ControlDarkDark
	ControlLight
	ControlLightLight
	ControlText
	Desktop
	GradientActiveCaption
	GradientInactiveCaption
	GrayText
	Highlight
	HighlightText
	HotTrack
	InactiveBorder
	InactiveCaption
	InactiveCaptionText
	Info
	InfoText
	Menu
	MenuBar
	MenuHighlight
	MenuText
	ScrollBar
	Window
	WindowFrame
	WindowText
)

var sysColorNames = []string{
	"ActiveBorder",
	"ActiveCaption",
	"ActiveCaptionText",
	"AppWorkspace",
	"ButtonFace",
	"ButtonHighlight",
	"ButtonShadow",
	"Control",
	"ControlDark",
	"ControlDarkDark",
	"ControlLight",
	"ControlLightLight",
	"ControlText",
	"Desktop",
	"GradientActiveCaption",
	"GradientInactiveCaption",
	"GrayText",
	"Highlight",
	"HighlightText",
	"HotTrack",
	"InactiveBorder",
	"InactiveCaption",
	"InactiveCaptionText",
	"Info",
	"InfoText",
	"Menu",
	"MenuBar",
	"MenuHighlight",
	"MenuText",
	"ScrollBar",
	"Window",
	"WindowFrame",
	"WindowText",
}

var (
	appColorByName = indexNames[AppColor](appColorNames)
	sysColorByName = indexNames[SysColor](sysColorNames)
	allNames       = append(append([]string{}, appColorNames...), sysColorNames...)
)

func indexNames[T ~int](names []string) map[string]T {
	m := make(map[string]T, len(names))
	for i, n := range names {
		m[n] = T(i)
	}
	return m
}

func (c AppColor) String() string {
	if c < 0 || int(c) >= len(appColorNames) {
		return "AppColor(?)"
	}
	return appColorNames[c]
}

func (c SysColor) String() string {
	if c < 0 || int(c) >= len(sysColorNames) {
		return "SysColor(?)"
	}
	return sysColorNames[c]
}

// AppColors returns every application color in registry order.
func AppColors() []AppColor {
	out := make([]AppColor, len(appColorNames))
	for i := range out {
		out[i] = AppColor(i)
	}
	return out
}

// SysColors returns every system color in registry order.
func SysColors() []SysColor {
	out := make([]SysColor, len(sysColorNames))
	for i := range out {
		out[i] = SysColor(i)
	}
	return out
}

// ParseAppColor matches name case-sensitively against the application colors.
func ParseAppColor(name string) (AppColor, bool) {
	c, ok := appColorByName[name]
	return c, ok
}

// ParseSysColor matches name case-sensitively against the system colors.
func ParseSysColor(name string) (SysColor, bool) {
	c, ok := sysColorByName[name]
	return c, ok
}

// Namespace tells which partition a Key belongs to.
type Namespace int

const (
	AppNamespace Namespace = iota
	SysNamespace
)

func (n Namespace) String() string {
	if n == SysNamespace {
		return "sys"
	}
	return "app"
}

// Key is a tagged color key: exactly one of App or Sys is meaningful,
// selected by Namespace.
type Key struct {
	Namespace Namespace
	App       AppColor
	Sys       SysColor
}

func (k Key) String() string {
	if k.Namespace == SysNamespace {
		return k.Sys.String()
	}
	return k.App.String()
}

// Lookup resolves a selector token to a color key. Application colors take
// precedence over system colors.
func Lookup(name string) (Key, bool) {
	if c, ok := ParseAppColor(name); ok {
		return Key{Namespace: AppNamespace, App: c}, true
	}
	if c, ok := ParseSysColor(name); ok {
		return Key{Namespace: SysNamespace, Sys: c}, true
	}
	return Key{}, false
}

// Suggest returns up to three known key names that fuzzily match name.
func Suggest(name string) []string {
	if name == "" {
		return nil
	}
	matches := fuzzy.Find(name, allNames)
	var out []string
	for i, m := range matches {
		if i == 3 {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
