package jsonstore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/emrekaya/todo/internal/model"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "todos.json"))
}

func TestLoadMissingFileYieldsEmptyList(t *testing.T) {
	s := tempStore(t)
	items, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d items", len(items))
	}
}

func TestLoadMalformedFileYieldsEmptyList(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	items, err := s.Load()
	if err != nil {
		t.Fatalf("load must not fail on malformed content: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d items", len(items))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := tempStore(t)
	in := []model.Item{
		{ID: "id-1", Done: true, Text: "Buy milk"},
		{ID: "id-2", Done: false, Text: ""},
		{ID: "id-3", Done: false, Text: "Call mom"},
	}
	if err := s.Save(in); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	out, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("round trip length = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("item %d = %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestSaveIsByteIdempotent(t *testing.T) {
	s := tempStore(t)
	items := []model.Item{{ID: "id-1", Done: false, Text: "Buy milk"}}

	if err := s.Save(items); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	first, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if err := s.Save(items); err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	second, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("saving unchanged state must produce identical bytes")
	}
}

func TestSavedFileShape(t *testing.T) {
	s := tempStore(t)
	items := []model.Item{{ID: "8d54", Done: true, Text: "Buy milk"}}
	if err := s.Save(items); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	b, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	want := "[\n  {\n    \"id\": \"8d54\",\n    \"done\": true,\n    \"text\": \"Buy milk\"\n  }\n]"
	if string(b) != want {
		t.Fatalf("file content = %q, want %q", b, want)
	}
}

func TestSaveFailsOnUnwritablePath(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing-dir", "todos.json"))
	if err := s.Save([]model.Item{}); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}
