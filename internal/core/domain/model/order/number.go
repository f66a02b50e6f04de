package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewNumber generates a display order number of the form ORD-YYYYMMDD-XXXXXXXX,
// where the suffix is random hex drawn from a fresh UUID. The date prefix keeps
// numbers human-sortable; the random suffix avoids the collisions a
// count+timestamp scheme suffers under concurrent checkouts. Uniqueness is
// ultimately enforced by the database constraint, with regeneration on conflict.
func NewNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}
