package content

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
)

// Block is one section of a builder page. Blocks render in slice order;
// reordering swaps adjacent entries rather than tracking explicit positions.
type Block struct {
	Kind string // e.g. "hero", "text", "image", "cta"
	Body string
}

// Page represents a marketing page assembled from ordered blocks and
// addressed publicly by slug.
type Page struct {
	ID        string
	Title     string
	Slug      string
	Blocks    []Block
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key implements store.Record.
func (p Page) Key() string { return p.ID }

// Validate checks business rules for the Page entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Page) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.Slug) == "" {
		fields["slug"] = domain.MsgRequired
	}
	for idx, b := range p.Blocks {
		if strings.TrimSpace(b.Kind) == "" {
			fields[fmt.Sprintf("blocks[%d].kind", idx)] = domain.MsgRequired
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// MoveBlock swaps the block at index with its neighbor in the given
// direction (-1 moves up, +1 moves down). Moving past either end returns
// domain.ErrValidation; the page is unchanged on failure.
func (p *Page) MoveBlock(index, direction int) error {
	if direction != -1 && direction != 1 {
		return &domain.ValidationError{Fields: map[string]string{
			"direction": fmt.Sprintf("must be -1 or 1, got %d", direction),
		}}
	}
	if index < 0 || index >= len(p.Blocks) {
		return &domain.ValidationError{Fields: map[string]string{
			"index": fmt.Sprintf("out of range: %d", index),
		}}
	}

	target := index + direction
	if target < 0 || target >= len(p.Blocks) {
		return &domain.ValidationError{Fields: map[string]string{
			"index": "cannot move block past the end of the page",
		}}
	}

	// Page values are copied out of the store with a shared backing
	// array; swap on a clone so earlier snapshots stay intact.
	p.Blocks = slices.Clone(p.Blocks)
	p.Blocks[index], p.Blocks[target] = p.Blocks[target], p.Blocks[index]
	return nil
}
