// Package domain defines the HSN/SAC code registry contracts.
package domain

import (
	"context"
	"iter"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Entry is one classification code in the registry. The suggested rate is
// advisory only; it never overrides an explicitly chosen rate.
type Entry struct {
	Code          string          `json:"code"`
	Description   string          `json:"description"`
	SuggestedRate decimal.Decimal `json:"suggested_rate"`
	Keywords      []string        `json:"keywords,omitempty"`
}

// IsServiceCode reports whether the entry carries a SAC (services) code.
// SAC codes are six digits and start with "99".
func (e Entry) IsServiceCode() bool {
	return len(e.Code) == 6 && e.Code[:2] == "99"
}

// Suggestion is a ranked auto-suggestion produced from a free-text item
// description.
type Suggestion struct {
	Code          string          `json:"code"`
	Description   string          `json:"description"`
	SuggestedRate decimal.Decimal `json:"suggested_rate"`
	Confidence    int             `json:"confidence"`
}

// Record persists a user-registered code so it survives restarts. Builtin
// entries are compiled in and never stored.
type Record struct {
	ID            snowflake.ID `gorm:"primaryKey"`
	Code          string       `gorm:"type:text;not null;uniqueIndex"`
	Description   string       `gorm:"type:text;not null"`
	SuggestedRate string       `gorm:"type:text;not null"`
	CreatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Record) TableName() string { return "hsn_codes" }

// Repository stores user-registered codes.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	Insert(ctx context.Context, rec *Record) error
}

// Service is the registry entry point used by invoice validation and by
// auto-suggestion UIs.
type Service interface {
	// Lookup resolves a code to its entry, falling back to shorter
	// prefixes for 6- and 8-digit codes. Returns ErrNotFound on a miss.
	Lookup(code string) (Entry, error)
	// Search lazily yields entries whose code or description contains the
	// given substring, in registry insertion order. The returned sequence
	// is finite and restartable.
	Search(substring string) iter.Seq[Entry]
	// Suggest ranks registry entries against a free-text description.
	Suggest(description string, limit int) []Suggestion
	// Register adds a new code. Registering an existing code fails with
	// ErrDuplicateCode; silent overwrite is not permitted.
	Register(ctx context.Context, code, description string, rate decimal.Decimal) (Entry, error)
}
