package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/emrekaya/todo/internal/store/jsonstore"
)

func tempOptions(t *testing.T) Options {
	t.Helper()
	return Options{
		File:  filepath.Join(t.TempDir(), "todos.json"),
		Theme: "mono",
	}
}

func TestRunUsageErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"unknown subcommand", []string{"frobnicate"}},
		{"add without text", []string{"add"}},
		{"done without index", []string{"done"}},
		{"done non-number", []string{"done", "two"}},
		{"rm out of range", []string{"rm", "7"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if code := Run(tc.args, tempOptions(t)); code != 2 {
				t.Fatalf("exit code = %d, want 2", code)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	if code := Run([]string{"help"}, tempOptions(t)); code != 0 {
		t.Fatal("help must exit 0")
	}
}

func TestAddWritesFile(t *testing.T) {
	opt := tempOptions(t)

	if code := Run([]string{"add", "Buy", "milk"}, opt); code != 0 {
		t.Fatalf("add exit code = %d", code)
	}

	items, err := jsonstore.New(opt.File).Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Text != "Buy milk" || items[0].Done || items[0].ID == "" {
		t.Fatalf("unexpected item: %+v", items[0])
	}
}

func TestToggleAndRemoveLifecycle(t *testing.T) {
	opt := tempOptions(t)

	for _, text := range []string{"first", "second"} {
		if code := Run([]string{"add", text}, opt); code != 0 {
			t.Fatalf("add %q failed", text)
		}
	}

	// Newest first: index 1 is "second".
	if code := Run([]string{"done", "1"}, opt); code != 0 {
		t.Fatal("done failed")
	}
	items, err := jsonstore.New(opt.File).Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !items[0].Done || items[0].Text != "second" {
		t.Fatalf("expected second done, got %+v", items)
	}
	if items[1].Done {
		t.Fatalf("first must stay pending, got %+v", items[1])
	}

	if code := Run([]string{"rm", "2"}, opt); code != 0 {
		t.Fatal("rm failed")
	}
	items, err = jsonstore.New(opt.File).Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(items) != 1 || items[0].Text != "second" {
		t.Fatalf("expected only second left, got %+v", items)
	}
}

func TestClearRemovesCompleted(t *testing.T) {
	opt := tempOptions(t)

	for _, text := range []string{"C", "B", "A"} { // list ends up A, B, C
		if code := Run([]string{"add", text}, opt); code != 0 {
			t.Fatalf("add %q failed", text)
		}
	}
	if code := Run([]string{"done", "1"}, opt); code != 0 { // A
		t.Fatal("done 1 failed")
	}
	if code := Run([]string{"done", "3"}, opt); code != 0 { // C
		t.Fatal("done 3 failed")
	}

	if code := Run([]string{"clear"}, opt); code != 0 {
		t.Fatal("clear failed")
	}
	items, err := jsonstore.New(opt.File).Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(items) != 1 || items[0].Text != "B" || items[0].Done {
		t.Fatalf("expected exactly pending [B], got %+v", items)
	}
}

func TestGroupListIsReadOnly(t *testing.T) {
	opt := tempOptions(t)
	opt.Group = true

	if code := Run([]string{"add", "keep me"}, opt); code != 0 {
		t.Fatal("add failed")
	}
	before, err := os.ReadFile(opt.File)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	if code := Run([]string{"ls"}, opt); code != 0 {
		t.Fatal("grouped ls failed")
	}
	after, err := os.ReadFile(opt.File)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(before) != string(after) {
		t.Fatal("listing must not modify the file")
	}
}
