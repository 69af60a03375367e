package model

import "testing"

func TestNewItemDefaults(t *testing.T) {
	it := New("Buy milk")
	if it.ID == "" {
		t.Fatal("expected generated id")
	}
	if it.Done {
		t.Fatal("new items must start pending")
	}
	if it.Text != "Buy milk" {
		t.Fatalf("text = %q, want %q", it.Text, "Buy milk")
	}
}

func TestNewItemAcceptsEmptyText(t *testing.T) {
	it := New("")
	if it.ID == "" {
		t.Fatal("expected generated id")
	}
	if it.Text != "" {
		t.Fatalf("text = %q, want empty", it.Text)
	}
}

func TestNewItemIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		it := New("x")
		if seen[it.ID] {
			t.Fatalf("duplicate id after %d items: %s", i, it.ID)
		}
		seen[it.ID] = true
	}
}
