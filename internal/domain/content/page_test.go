package content_test

import (
	"errors"
	"testing"

	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/domain/content"
)

func threeBlockPage() *content.Page {
	return &content.Page{
		ID:    "page-1",
		Title: "About Us",
		Slug:  "about",
		Blocks: []content.Block{
			{Kind: "hero", Body: "one"},
			{Kind: "text", Body: "two"},
			{Kind: "cta", Body: "three"},
		},
	}
}

func kinds(p *content.Page) []string {
	out := make([]string, len(p.Blocks))
	for i, b := range p.Blocks {
		out[i] = b.Kind
	}
	return out
}

func TestMoveBlock_Down(t *testing.T) {
	t.Parallel()

	p := threeBlockPage()
	if err := p.MoveBlock(0, 1); err != nil {
		t.Fatalf("MoveBlock(0, 1) error: %v", err)
	}

	got := kinds(p)
	if got[0] != "text" || got[1] != "hero" || got[2] != "cta" {
		t.Errorf("blocks after move = %v, want [text hero cta]", got)
	}
}

func TestMoveBlock_Up(t *testing.T) {
	t.Parallel()

	p := threeBlockPage()
	if err := p.MoveBlock(2, -1); err != nil {
		t.Fatalf("MoveBlock(2, -1) error: %v", err)
	}

	got := kinds(p)
	if got[1] != "cta" || got[2] != "text" {
		t.Errorf("blocks after move = %v, want [hero cta text]", got)
	}
}

func TestMoveBlock_PastEnds(t *testing.T) {
	t.Parallel()

	p := threeBlockPage()

	if err := p.MoveBlock(0, -1); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("MoveBlock(0, -1) error = %v, want ErrValidation", err)
	}
	if err := p.MoveBlock(2, 1); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("MoveBlock(2, 1) error = %v, want ErrValidation", err)
	}

	// Failed moves leave the page unchanged.
	got := kinds(p)
	if got[0] != "hero" || got[2] != "cta" {
		t.Errorf("blocks after failed moves = %v, want original order", got)
	}
}

func TestMoveBlock_InvalidArguments(t *testing.T) {
	t.Parallel()

	p := threeBlockPage()

	if err := p.MoveBlock(5, 1); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("MoveBlock(5, 1) error = %v, want ErrValidation", err)
	}
	if err := p.MoveBlock(-1, 1); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("MoveBlock(-1, 1) error = %v, want ErrValidation", err)
	}
	if err := p.MoveBlock(1, 2); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("MoveBlock(1, 2) error = %v, want ErrValidation", err)
	}
}

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	p := threeBlockPage()
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() error for valid page: %v", err)
	}

	p.Blocks = append(p.Blocks, content.Block{Kind: "", Body: "orphan"})
	if err := p.Validate(); err == nil {
		t.Fatal("Validate() = nil for block without kind, want error")
	}
}
