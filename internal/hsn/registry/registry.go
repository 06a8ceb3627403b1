// Package registry holds the in-memory HSN/SAC code table. Reads are
// concurrent; registrations take the write lock.
package registry

import (
	"fmt"
	"iter"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/anilkedia87/gstbill/internal/hsn/domain"
)

// Registry is the process-wide code table. Entries keep their insertion
// order so Search output is deterministic.
type Registry struct {
	mu      sync.RWMutex
	byCode  map[string]int
	entries []domain.Entry
	builtin int
}

// New builds a registry seeded with the builtin HSN/SAC master entries.
func New() *Registry {
	r := &Registry{byCode: make(map[string]int, len(builtinEntries))}
	for _, e := range builtinEntries {
		r.byCode[e.Code] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	r.builtin = len(r.entries)
	return r
}

// NormalizeCode strips separators and validates the 4-8 digit format.
func NormalizeCode(raw string) (string, error) {
	var b strings.Builder
	for _, ch := range raw {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		} else if ch != ' ' && ch != '-' && ch != '.' {
			return "", fmt.Errorf("%w: %q", domain.ErrInvalidCode, raw)
		}
	}
	code := b.String()
	if len(code) < 4 || len(code) > 8 {
		return "", fmt.Errorf("%w: %q must be 4-8 digits", domain.ErrInvalidCode, raw)
	}
	return code, nil
}

// Lookup resolves a code, falling back from 8 to 6 to 4 digit prefixes so
// sub-headings inherit their chapter entry.
func (r *Registry) Lookup(raw string) (domain.Entry, error) {
	code, err := NormalizeCode(raw)
	if err != nil {
		return domain.Entry{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if idx, ok := r.byCode[code]; ok {
		return r.entries[idx], nil
	}
	for _, prefixLen := range []int{6, 4} {
		if len(code) > prefixLen {
			if idx, ok := r.byCode[code[:prefixLen]]; ok {
				return r.entries[idx], nil
			}
		}
	}
	return domain.Entry{}, domain.ErrNotFound
}

// Contains reports whether an exact code is registered.
func (r *Registry) Contains(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byCode[code]
	return ok
}

// Search yields entries matching the substring against code or description,
// in insertion order. Matching is case-insensitive. The sequence is
// restartable: each range walks a snapshot taken when iteration starts.
func (r *Registry) Search(substring string) iter.Seq[domain.Entry] {
	needle := strings.ToLower(strings.TrimSpace(substring))
	return func(yield func(domain.Entry) bool) {
		r.mu.RLock()
		snapshot := make([]domain.Entry, len(r.entries))
		copy(snapshot, r.entries)
		r.mu.RUnlock()

		for _, e := range snapshot {
			if needle != "" &&
				!strings.Contains(strings.ToLower(e.Code), needle) &&
				!strings.Contains(strings.ToLower(e.Description), needle) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Register adds a new entry. Duplicate codes are an error, never an
// overwrite.
func (r *Registry) Register(code, description string, rate decimal.Decimal) (domain.Entry, error) {
	normalized, err := NormalizeCode(code)
	if err != nil {
		return domain.Entry{}, err
	}
	if description = strings.TrimSpace(description); description == "" {
		return domain.Entry{}, fmt.Errorf("%w: empty description", domain.ErrInvalidCode)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return domain.Entry{}, fmt.Errorf("%w: %s", domain.ErrInvalidRate, rate)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byCode[normalized]; ok {
		return domain.Entry{}, fmt.Errorf("%w: %s", domain.ErrDuplicateCode, normalized)
	}
	entry := domain.Entry{Code: normalized, Description: description, SuggestedRate: rate}
	r.byCode[normalized] = len(r.entries)
	r.entries = append(r.entries, entry)
	return entry, nil
}

// Unregister drops a previously registered entry so a failed persist can be
// rolled back. Builtin entries are immutable and stay put.
func (r *Registry) Unregister(code string) error {
	normalized, err := NormalizeCode(code)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byCode[normalized]
	if !ok {
		return domain.ErrNotFound
	}
	if idx < r.builtin {
		return fmt.Errorf("%w: %s is builtin", domain.ErrInvalidCode, normalized)
	}
	delete(r.byCode, normalized)
	r.entries = append(r.entries[:idx], r.entries[idx+1:]...)
	for code, i := range r.byCode {
		if i > idx {
			r.byCode[code] = i - 1
		}
	}
	return nil
}

// Suggest scores entries by keyword overlap with the item description and
// returns the best matches, highest confidence first.
func (r *Registry) Suggest(description string, limit int) []domain.Suggestion {
	needle := strings.ToLower(strings.TrimSpace(description))
	if needle == "" || limit <= 0 {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	type scored struct {
		entry domain.Entry
		score int
	}
	var matches []scored
	for _, e := range r.entries {
		score := 0
		for _, kw := range e.Keywords {
			if !strings.Contains(needle, kw) {
				continue
			}
			if kw == needle {
				score += 10
			} else {
				score += 5
			}
			if strings.Contains(" "+needle+" ", " "+kw+" ") {
				score += 3
			}
			if strings.HasPrefix(needle, kw) {
				score += 2
			}
		}
		if score > 0 {
			matches = append(matches, scored{entry: e, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]domain.Suggestion, 0, len(matches))
	for _, m := range matches {
		confidence := m.score * 10
		if confidence > 100 {
			confidence = 100
		}
		out = append(out, domain.Suggestion{
			Code:          m.entry.Code,
			Description:   m.entry.Description,
			SuggestedRate: m.entry.SuggestedRate,
			Confidence:    confidence,
		})
	}
	return out
}
