package session

import (
	"fmt"
	"testing"

	"github.com/n9rs9/hadithsahih/internal/domain"
)

func makeEntries(n int) []domain.BookEntry {
	entries := make([]domain.BookEntry, n)
	for i := range entries {
		entries[i] = domain.BookEntry{
			Title: fmt.Sprintf("Book %d", i+1),
			Link:  fmt.Sprintf("http://books.test/%d", i+1),
		}
	}
	return entries
}

func TestPagesTotalPages(t *testing.T) {
	tests := []struct {
		entries  int
		pageSize int
		want     int
	}{
		{0, 5, 0},
		{1, 5, 2},
		{5, 5, 2},
		{6, 5, 2},
		{10, 5, 2},
		{11, 5, 3},
		{12, 5, 3},
	}

	for _, tt := range tests {
		p := NewPages(makeEntries(tt.entries), tt.pageSize)
		if got := p.TotalPages(); got != tt.want {
			t.Errorf("TotalPages with %d entries, size %d = %d, want %d",
				tt.entries, tt.pageSize, got, tt.want)
		}
	}
}

func TestPagesNavigationStaysInBounds(t *testing.T) {
	p := NewPages(makeEntries(12), 5)

	if p.Prev() {
		t.Error("Prev on first page should not move")
	}
	if p.Current != 0 {
		t.Errorf("Current = %d, want 0", p.Current)
	}

	for i := 0; i < 10; i++ {
		p.Next()
	}
	if p.Current != p.TotalPages()-1 {
		t.Errorf("Current = %d, want last page %d", p.Current, p.TotalPages()-1)
	}
	if p.Next() {
		t.Error("Next on last page should not move")
	}
}

func TestPagesUnionPreservesOrder(t *testing.T) {
	entries := makeEntries(12)
	p := NewPages(entries, 5)

	var collected []domain.BookEntry
	for {
		collected = append(collected, p.Page()...)
		if !p.Next() {
			break
		}
	}

	if len(collected) != len(entries) {
		t.Fatalf("collected %d entries, want %d", len(collected), len(entries))
	}
	for i := range entries {
		if collected[i] != entries[i] {
			t.Errorf("entry %d = %+v, want %+v", i, collected[i], entries[i])
		}
	}
}

func TestPagesForcedEndPage(t *testing.T) {
	p := NewPages(makeEntries(1), 5)

	if got := p.TotalPages(); got != 2 {
		t.Fatalf("TotalPages = %d, want 2", got)
	}
	if got := len(p.Page()); got != 1 {
		t.Errorf("first page has %d entries, want 1", got)
	}

	if !p.Next() {
		t.Fatal("expected a navigable second page")
	}
	if got := len(p.Page()); got != 0 {
		t.Errorf("end page has %d entries, want 0", got)
	}
}
