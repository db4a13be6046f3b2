package papers

import (
	"errors"
	"reflect"
	"testing"
)

func TestStore_AddAndList(t *testing.T) {
	store := NewStore()
	store.Add(&Paper{Slug: "first", Title: "First"})
	store.Add(&Paper{Slug: "second", Title: "Second"})

	list := store.List()
	if len(list) != 2 || list[0].Slug != "first" || list[1].Slug != "second" {
		t.Fatalf("insertion order not preserved: %#v", list)
	}

	// The returned slice is a copy; mutating it must not touch the store.
	list[0] = &Paper{Slug: "mutated"}
	if store.List()[0].Slug != "first" {
		t.Fatalf("List must return a defensive copy")
	}
}

func TestStore_GetBySlug(t *testing.T) {
	store := NewStore()
	store.Add(&Paper{Slug: "dup", Title: "Original"})
	store.Add(&Paper{Slug: "dup", Title: "Later"})

	paper, err := store.GetBySlug("dup")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if paper.Title != "Original" {
		t.Fatalf("first match must win, got %q", paper.Title)
	}

	if _, err := store.GetBySlug("absent"); !errors.Is(err, ErrPaperNotFound) {
		t.Fatalf("expected ErrPaperNotFound, got %v", err)
	}
}

func TestStore_Categories(t *testing.T) {
	store := NewStore()
	store.Add(&Paper{Slug: "a", Tags: []string{"systems", "compilers"}})
	store.Add(&Paper{Slug: "b", Tags: []string{"compilers", "theory"}})
	store.Add(&Paper{Slug: "c"})

	got := store.Categories()
	want := []string{"compilers", "systems", "theory"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("categories must be sorted and unique: %#v", got)
	}
}

func TestStore_Slugs(t *testing.T) {
	store := NewStore()
	store.Add(&Paper{Slug: "one"})
	store.Add(&Paper{Slug: "two"})

	if got := store.Slugs(); !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Fatalf("slug listing mismatch: %#v", got)
	}
}

func TestStore_Clear(t *testing.T) {
	store := NewStore()
	store.Add(&Paper{Slug: "x"})
	store.Clear()

	if store.Len() != 0 {
		t.Fatalf("store not empty after Clear")
	}
}
