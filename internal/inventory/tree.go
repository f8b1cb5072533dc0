// Package inventory operates on flat parent-pointer instance lists: the
// descendant closure used when moving or deleting a container, stack-slot
// expansion of container templates, and stack-count normalization.
package inventory

import "github.com/raidforge/itemcore/internal/domain"

// DescendantsOf returns every instance id reachable downward from rootID,
// ordered children before their ancestors (deepest first, rootID last).
// A root with no children, or one absent from the collection entirely,
// yields the single-element closure [rootID]. The walk tracks visited ids so
// a corrupted list containing a cycle still terminates.
func DescendantsOf(items []domain.ItemInstance, rootID string) []string {
	// Parent → children adjacency, preserving input order.
	children := make(map[string][]string, len(items))
	for _, item := range items {
		if item.ParentID == "" {
			continue
		}
		children[item.ParentID] = append(children[item.ParentID], item.ID)
	}

	visited := make(map[string]bool, len(items)+1)
	out := make([]string, 0, len(items)+1)

	var walk func(id string)
	walk = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true
		for _, child := range children[id] {
			walk(child)
		}
		out = append(out, id)
	}
	walk(rootID)

	return out
}
