package interaction

import (
	"sort"

	"interactq/internal/engine"
)

// Resolver turns a handle into its live object, or nil when the handle is stale.
// *engine.Scene satisfies it.
type Resolver interface {
	Resolve(h engine.Handle) *engine.GameObject
}

type entry struct {
	handle engine.Handle
	seq    uint64
}

// Queue is the ordered candidate set of one interactor.
//
// Entries that require visibility and are not the visible entity rank last
// while visibility is enabled. The rest rank by descending weight, and ties
// keep insertion order. Stale or no longer interactive entries are pruned on
// every Sort.
type Queue struct {
	resolver          Resolver
	entries           []entry
	nextSeq           uint64
	visible           engine.Handle
	visibilityEnabled bool
}

func NewQueue(resolver Resolver) *Queue {
	return &Queue{resolver: resolver}
}

func (q *Queue) resolve(h engine.Handle) *engine.GameObject {
	if q.resolver == nil {
		return nil
	}
	return q.resolver.Resolve(h)
}

// Add appends h and resorts. It fails if h is not interactive or already queued.
func (q *Queue) Add(h engine.Handle) bool {
	if q.Contains(h) || !IsInteractive(q.resolve(h)) {
		return false
	}
	q.nextSeq++
	q.entries = append(q.entries, entry{handle: h, seq: q.nextSeq})
	q.Sort()
	return true
}

// Remove takes h out and resorts. It fails if h is not queued or not interactive.
func (q *Queue) Remove(h engine.Handle) bool {
	i := q.indexOf(h)
	if i < 0 || !IsInteractive(q.resolve(h)) {
		return false
	}
	q.entries = append(q.entries[:i], q.entries[i+1:]...)
	if q.visible == h {
		q.visible = engine.NilHandle
	}
	q.Sort()
	return true
}

func (q *Queue) Contains(h engine.Handle) bool {
	return q.indexOf(h) >= 0
}

func (q *Queue) indexOf(h engine.Handle) int {
	if h.IsNil() {
		return -1
	}
	for i, e := range q.entries {
		if e.handle == h {
			return i
		}
	}
	return -1
}

// Head returns the first entry.
func (q *Queue) Head() (engine.Handle, bool) {
	if len(q.entries) == 0 {
		return engine.NilHandle, false
	}
	return q.entries[0].handle, true
}

func (q *Queue) Len() int {
	return len(q.entries)
}

func (q *Queue) IsEmpty() bool {
	return len(q.entries) == 0
}

// Entries returns a copy of the queued handles in order.
func (q *Queue) Entries() []engine.Handle {
	out := make([]engine.Handle, len(q.entries))
	for i, e := range q.entries {
		out[i] = e.handle
	}
	return out
}

// Visible returns the entity currently satisfying the visibility probe.
func (q *Queue) Visible() engine.Handle {
	return q.visible
}

// SetVisible records h as the sighted entity without reordering.
func (q *Queue) SetVisible(h engine.Handle) {
	q.visible = h
}

func (q *Queue) VisibilityEnabled() bool {
	return q.visibilityEnabled
}

// SetVisibilityEnabled toggles gating. Disabling clears the visible entity.
// The caller resorts.
func (q *Queue) SetVisibilityEnabled(enabled bool) {
	q.visibilityEnabled = enabled
	if !enabled {
		q.visible = engine.NilHandle
	}
}

// IsAvailable reports whether d may be started right now for entity h.
func (q *Queue) IsAvailable(h engine.Handle, d Descriptor) bool {
	return !q.visibilityEnabled || !d.RequiresVisibility || q.visible == h
}

// Prune drops stale or no longer interactive entries and keeps the rest in
// their current order. It returns the pruned handles.
func (q *Queue) Prune() []engine.Handle {
	var pruned []engine.Handle
	kept := q.entries[:0]
	for _, e := range q.entries {
		if _, ok := GetDescriptor(q.resolve(e.handle)); !ok {
			pruned = append(pruned, e.handle)
			if q.visible == e.handle {
				q.visible = engine.NilHandle
			}
			continue
		}
		kept = append(kept, e)
	}
	q.entries = kept
	return pruned
}

// Sort prunes dead entries and reorders the rest. It returns the pruned handles.
func (q *Queue) Sort() []engine.Handle {
	type ranked struct {
		entry
		demoted bool
		weight  int
	}

	pruned := q.Prune()
	items := make([]ranked, 0, len(q.entries))
	for _, e := range q.entries {
		d, _ := GetDescriptor(q.resolve(e.handle))
		items = append(items, ranked{
			entry:   e,
			demoted: !q.IsAvailable(e.handle, d),
			weight:  d.Weight,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.demoted != b.demoted {
			return !a.demoted
		}
		if a.weight != b.weight {
			return a.weight > b.weight
		}
		return a.seq < b.seq
	})

	q.entries = q.entries[:0]
	for _, it := range items {
		q.entries = append(q.entries, it.entry)
	}
	return pruned
}

// MoveToFront puts h at index 0. Entries that were ahead of it shift back by
// one, so the remaining entries keep their relative order.
func (q *Queue) MoveToFront(h engine.Handle) bool {
	i := q.indexOf(h)
	if i < 0 {
		return false
	}
	e := q.entries[i]
	copy(q.entries[1:i+1], q.entries[:i])
	q.entries[0] = e
	return true
}
