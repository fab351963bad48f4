package interaction

import (
	"testing"

	"interactq/internal/engine"
)

type hookCounts struct {
	start, finish, interrupt, force int
	lastInterruptor                 *engine.GameObject
}

func newInteractable(scene *engine.Scene, name string, d Descriptor) (*engine.GameObject, *Interactable, *hookCounts) {
	counts := &hookCounts{}
	it := NewInteractable(d)
	it.StartFunc = func(*engine.GameObject) Result { counts.start++; return Success }
	it.FinishFunc = func(*engine.GameObject) Result { counts.finish++; return Success }
	it.InterruptFunc = func(interruptor, _ *engine.GameObject) Result {
		counts.interrupt++
		counts.lastInterruptor = interruptor
		return Success
	}
	it.ForceFunc = func(*engine.GameObject) Result { counts.force++; return Success }

	g := engine.NewGameObject(name)
	g.AddComponent(it)
	scene.AddGameObject(g)
	return g, it, counts
}

func handles(objs ...*engine.GameObject) []engine.Handle {
	out := make([]engine.Handle, len(objs))
	for i, g := range objs {
		out[i] = g.Handle()
	}
	return out
}

func sameOrder(got, want []engine.Handle) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestQueueAddRejectsDuplicates(t *testing.T) {
	scene := engine.NewScene("test")
	q := NewQueue(scene)
	a, _, _ := newInteractable(scene, "A", Descriptor{Weight: 5})
	b, _, _ := newInteractable(scene, "B", Descriptor{Weight: 1})

	if !q.Add(a.Handle()) || !q.Add(b.Handle()) {
		t.Fatal("Expected first adds to succeed")
	}
	if q.Add(a.Handle()) {
		t.Error("Expected duplicate add to fail")
	}
	if !sameOrder(q.Entries(), handles(a, b)) {
		t.Errorf("Expected order unchanged after duplicate, got %v", q.Entries())
	}
}

func TestQueueAddRejectsNonInteractive(t *testing.T) {
	scene := engine.NewScene("test")
	q := NewQueue(scene)

	plain := engine.NewGameObject("Plain")
	scene.AddGameObject(plain)
	disabled, it, _ := newInteractable(scene, "Disabled", Descriptor{})
	it.Disabled = true

	if q.Add(plain.Handle()) {
		t.Error("Expected object without capability to be rejected")
	}
	if q.Add(disabled.Handle()) {
		t.Error("Expected capability without descriptor to be rejected")
	}
	if q.Add(engine.NilHandle) {
		t.Error("Expected nil handle to be rejected")
	}
	if !q.IsEmpty() {
		t.Errorf("Expected empty queue, got %d entries", q.Len())
	}
}

func TestQueueSortPolicy(t *testing.T) {
	scene := engine.NewScene("test")
	q := NewQueue(scene)
	q.SetVisibilityEnabled(true)

	gatedHeavy, _, _ := newInteractable(scene, "GatedHeavy", Descriptor{Weight: 100, RequiresVisibility: true})
	light, _, _ := newInteractable(scene, "Light", Descriptor{Weight: 1})
	heavy, _, _ := newInteractable(scene, "Heavy", Descriptor{Weight: 10})
	gatedLight, _, _ := newInteractable(scene, "GatedLight", Descriptor{Weight: 2, RequiresVisibility: true})

	for _, g := range []*engine.GameObject{gatedHeavy, light, heavy, gatedLight} {
		q.Add(g.Handle())
	}

	want := handles(heavy, light, gatedHeavy, gatedLight)
	if !sameOrder(q.Entries(), want) {
		t.Errorf("Expected gated entries last, got %v want %v", q.Entries(), want)
	}

	// A visible gated entry competes on weight again
	q.SetVisible(gatedLight.Handle())
	q.Sort()
	want = handles(heavy, gatedLight, light, gatedHeavy)
	if !sameOrder(q.Entries(), want) {
		t.Errorf("Expected visible gated entry ranked by weight, got %v want %v", q.Entries(), want)
	}

	q.SetVisibilityEnabled(false)
	q.Sort()
	want = handles(gatedHeavy, heavy, gatedLight, light)
	if !sameOrder(q.Entries(), want) {
		t.Errorf("Expected no demotion with visibility off, got %v want %v", q.Entries(), want)
	}
}

func TestQueueTiesKeepInsertionOrder(t *testing.T) {
	scene := engine.NewScene("test")
	q := NewQueue(scene)

	a, _, _ := newInteractable(scene, "A", Descriptor{Weight: 3})
	b, _, _ := newInteractable(scene, "B", Descriptor{Weight: 3})
	c, _, _ := newInteractable(scene, "C", Descriptor{Weight: 3})
	q.Add(a.Handle())
	q.Add(b.Handle())
	q.Add(c.Handle())

	q.MoveToFront(c.Handle())
	q.Sort()
	if !sameOrder(q.Entries(), handles(a, b, c)) {
		t.Errorf("Expected resort to restore insertion order, got %v", q.Entries())
	}
}

func TestQueueMoveToFrontKeepsRelativeOrder(t *testing.T) {
	scene := engine.NewScene("test")
	q := NewQueue(scene)

	var objs []*engine.GameObject
	for i, name := range []string{"A", "B", "C", "D"} {
		g, _, _ := newInteractable(scene, name, Descriptor{Weight: 10 - i})
		q.Add(g.Handle())
		objs = append(objs, g)
	}

	if !q.MoveToFront(objs[2].Handle()) {
		t.Fatal("Expected MoveToFront to succeed")
	}
	want := handles(objs[2], objs[0], objs[1], objs[3])
	if !sameOrder(q.Entries(), want) {
		t.Errorf("Expected %v, got %v", want, q.Entries())
	}

	stranger := engine.NewGameObject("Stranger")
	scene.AddGameObject(stranger)
	if q.MoveToFront(stranger.Handle()) {
		t.Error("Expected MoveToFront of unqueued handle to fail")
	}
}

func TestQueueRemove(t *testing.T) {
	scene := engine.NewScene("test")
	q := NewQueue(scene)
	a, _, _ := newInteractable(scene, "A", Descriptor{Weight: 1})
	b, _, _ := newInteractable(scene, "B", Descriptor{Weight: 2})

	if q.Remove(a.Handle()) {
		t.Error("Expected remove on empty queue to fail")
	}
	q.Add(a.Handle())
	q.Add(b.Handle())
	if !q.Remove(b.Handle()) {
		t.Fatal("Expected remove to succeed")
	}
	if head, _ := q.Head(); head != a.Handle() {
		t.Errorf("Expected A at head, got %v", head)
	}
	if q.Remove(b.Handle()) {
		t.Error("Expected second remove to fail")
	}
}

func TestQueuePrunesDestroyed(t *testing.T) {
	scene := engine.NewScene("test")
	q := NewQueue(scene)
	a, _, _ := newInteractable(scene, "A", Descriptor{Weight: 1})
	b, _, _ := newInteractable(scene, "B", Descriptor{Weight: 2})
	q.Add(a.Handle())
	q.Add(b.Handle())

	stale := b.Handle()
	scene.RemoveGameObject(b)

	// Slot reuse must not resurrect the stale entry
	reuse, _, _ := newInteractable(scene, "Reuse", Descriptor{Weight: 50})
	if reuse.Handle().Index != stale.Index {
		t.Fatalf("Expected slot %d to be reused, got %d", stale.Index, reuse.Handle().Index)
	}

	pruned := q.Sort()
	if len(pruned) != 1 || pruned[0] != stale {
		t.Errorf("Expected stale handle pruned, got %v", pruned)
	}
	if q.Contains(reuse.Handle()) {
		t.Error("Expected reused slot not to be queued")
	}
	if !sameOrder(q.Entries(), handles(a)) {
		t.Errorf("Expected only A left, got %v", q.Entries())
	}
}

func TestQueuePruneKeepsOrder(t *testing.T) {
	scene := engine.NewScene("test")
	q := NewQueue(scene)
	a, _, _ := newInteractable(scene, "A", Descriptor{Weight: 1})
	b, _, _ := newInteractable(scene, "B", Descriptor{Weight: 5})
	c, _, _ := newInteractable(scene, "C", Descriptor{Weight: 9})
	q.Add(a.Handle())
	q.Add(b.Handle())
	q.Add(c.Handle())
	q.MoveToFront(a.Handle())

	stale := c.Handle()
	scene.RemoveGameObject(c)
	pruned := q.Prune()

	if len(pruned) != 1 || pruned[0] != stale {
		t.Errorf("Expected C pruned, got %v", pruned)
	}
	if !sameOrder(q.Entries(), handles(a, b)) {
		t.Errorf("Expected [A B] kept in place, got %v", q.Entries())
	}
}
