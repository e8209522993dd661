package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/sadopc/themekit/internal/palette"
)

const ruleFormat = ".%s { color: %s }"

// Serialize renders a theme in the stylesheet dialect: one rule per key,
// system colors before application colors, each in registry order. Alpha
// is not preserved.
func Serialize(t *Theme) string {
	var lines []string
	for _, c := range palette.SysColors() {
		if v, ok := t.SysColor(c); ok {
			lines = append(lines, fmt.Sprintf(ruleFormat, c, v.RGBHex()))
		}
	}
	for _, c := range palette.AppColors() {
		if v, ok := t.AppColor(c); ok {
			lines = append(lines, fmt.Sprintf(ruleFormat, c, v.RGBHex()))
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// writeFileAtomic replaces path with data by writing a sibling temp file and
// renaming it over the target.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating themes directory: %w", err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing theme file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing theme file: %w", err)
	}
	return nil
}
