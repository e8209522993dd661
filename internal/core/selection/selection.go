package selection

import (
	"time"

	"github.com/sadopc/themekit/internal/theme"
)

// Entry records one theme selection.
type Entry struct {
	ID        int64
	Theme     theme.ID
	Variants  []string
	Timestamp time.Time
}
