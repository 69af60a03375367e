package command

import "github.com/emrekaya/todo/internal/model"

// DoneWatcher keeps a snapshot of each item's done flag and turns
// flag transitions into Save commands. Toggling a checkbox is a purely
// local widget mutation; running the list through Observe after every
// UI update is what guarantees each toggle ends up on disk.
type DoneWatcher struct {
	seen map[string]bool
}

func NewDoneWatcher(items []model.Item) *DoneWatcher {
	w := &DoneWatcher{seen: make(map[string]bool, len(items))}
	w.snapshot(items)
	return w
}

// Observe diffs the list against the previous snapshot. It returns one
// Save command if any known item's done flag flipped, and updates the
// snapshot either way. Items appearing or disappearing do not trigger a
// save here: add and delete persist on their own.
func (w *DoneWatcher) Observe(items []model.Item) []Command {
	changed := false
	for _, it := range items {
		if prev, ok := w.seen[it.ID]; ok && prev != it.Done {
			changed = true
		}
	}
	w.snapshot(items)
	if changed {
		return []Command{Save()}
	}
	return nil
}

func (w *DoneWatcher) snapshot(items []model.Item) {
	next := make(map[string]bool, len(items))
	for _, it := range items {
		next[it.ID] = it.Done
	}
	w.seen = next
}
