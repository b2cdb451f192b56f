package store_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/store"
)

type rec struct {
	ID   string
	Name string
}

func (r rec) Key() string { return r.ID }

func TestCollection_AddAndGet(t *testing.T) {
	t.Parallel()

	c := store.NewCollection[rec]()
	if err := c.Add(rec{ID: "a", Name: "first"}); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	got, err := c.Get("a")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Name != "first" {
		t.Errorf("Get().Name = %q, want %q", got.Name, "first")
	}
}

func TestCollection_Get_NotFound(t *testing.T) {
	t.Parallel()

	c := store.NewCollection[rec]()
	_, err := c.Get("missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestCollection_Add_DuplicateID(t *testing.T) {
	t.Parallel()

	c := store.NewCollection[rec]()
	if err := c.Add(rec{ID: "a"}); err != nil {
		t.Fatalf("first Add() error: %v", err)
	}

	err := c.Add(rec{ID: "a"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("duplicate Add() error = %v, want ErrConflict", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d after duplicate Add, want 1", c.Len())
	}
}

func TestCollection_List_InsertionOrder(t *testing.T) {
	t.Parallel()

	c := store.NewCollection[rec]()
	for i := range 5 {
		if err := c.Add(rec{ID: fmt.Sprintf("id-%d", i)}); err != nil {
			t.Fatalf("Add() error: %v", err)
		}
	}

	list := c.List()
	if len(list) != 5 {
		t.Fatalf("List() len = %d, want 5", len(list))
	}
	for i, r := range list {
		if want := fmt.Sprintf("id-%d", i); r.ID != want {
			t.Errorf("List()[%d].ID = %q, want %q", i, r.ID, want)
		}
	}
}

func TestCollection_List_ReturnsCopy(t *testing.T) {
	t.Parallel()

	c := store.NewCollection[rec]()
	if err := c.Add(rec{ID: "a", Name: "orig"}); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	list := c.List()
	list[0].Name = "mutated"

	got, err := c.Get("a")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Name != "orig" {
		t.Errorf("mutating List() result changed the stored record: Name = %q", got.Name)
	}
}

func TestCollection_Update(t *testing.T) {
	t.Parallel()

	c := store.NewCollection[rec]()
	if err := c.Add(rec{ID: "a", Name: "before"}); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if err := c.Add(rec{ID: "b"}); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	if err := c.Update(rec{ID: "a", Name: "after"}); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	got, err := c.Get("a")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Name != "after" {
		t.Errorf("Get().Name = %q, want %q", got.Name, "after")
	}

	// Update keeps the record's position in insertion order.
	if list := c.List(); list[0].ID != "a" || list[1].ID != "b" {
		t.Errorf("order after Update = [%s %s], want [a b]", list[0].ID, list[1].ID)
	}
}

func TestCollection_Update_NotFound(t *testing.T) {
	t.Parallel()

	c := store.NewCollection[rec]()
	err := c.Update(rec{ID: "missing"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestCollection_Remove_PreservesOrderAndReindexes(t *testing.T) {
	t.Parallel()

	c := store.NewCollection[rec]()
	for _, id := range []string{"a", "b", "c"} {
		if err := c.Add(rec{ID: id}); err != nil {
			t.Fatalf("Add() error: %v", err)
		}
	}

	if err := c.Remove("b"); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}

	list := c.List()
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "c" {
		t.Fatalf("List() after Remove = %v, want [a c]", list)
	}

	// The shifted record is still reachable by id.
	if _, err := c.Get("c"); err != nil {
		t.Errorf("Get(\"c\") after Remove error: %v", err)
	}
	if _, err := c.Get("b"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get(\"b\") after Remove error = %v, want ErrNotFound", err)
	}
}

func TestCollection_Remove_NotFound(t *testing.T) {
	t.Parallel()

	c := store.NewCollection[rec]()
	err := c.Remove("missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Remove() error = %v, want ErrNotFound", err)
	}
}

func TestCollection_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := store.NewCollection[rec]()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Add(rec{ID: fmt.Sprintf("id-%d", i)})
			c.List()
			c.Len()
		}()
	}
	wg.Wait()

	if c.Len() != 50 {
		t.Errorf("Len() = %d, want 50", c.Len())
	}
}

func TestStore_NewID_Unique(t *testing.T) {
	t.Parallel()

	s := store.New()
	seen := make(map[string]bool)
	for range 100 {
		id := s.NewID()
		if seen[id] {
			t.Fatalf("NewID() returned duplicate %q", id)
		}
		seen[id] = true
	}
}
