package scripts

import (
	"testing"
	"time"

	"interactq/internal/engine"
	"interactq/internal/interaction"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestScriptsRegistered(t *testing.T) {
	for _, name := range []string{"Door", "Pickup", "Terminal"} {
		c, ok := engine.CreateScript(name, nil)
		if !ok {
			t.Errorf("Expected %s to be registered", name)
			continue
		}
		if _, ok := c.(interaction.Interactive); !ok {
			t.Errorf("Expected %s to be Interactive", name)
		}
	}
}

func TestDoorToggles(t *testing.T) {
	c, _ := engine.CreateScript("Door", map[string]any{"weight": 3, "swingAngle": 45.0})
	door := c.(*Door)
	g := engine.NewGameObject("Door")
	g.AddComponent(door)

	d, _ := door.Descriptor()
	if d.Message != "Open" || d.Weight != 3 {
		t.Errorf("Expected Open/3, got %s/%d", d.Message, d.Weight)
	}
	if door.OnStart(nil) != interaction.Success || !door.Open {
		t.Fatal("Expected door to open")
	}
	if g.Transform.Rotation.Y != 45 {
		t.Errorf("Expected 45 degree swing, got %v", g.Transform.Rotation.Y)
	}
	if d, _ := door.Descriptor(); d.Message != "Close" {
		t.Errorf("Expected Close prompt, got %s", d.Message)
	}
	door.OnStart(nil)
	if door.Open || g.Transform.Rotation.Y != 0 {
		t.Error("Expected door closed and rotated back")
	}
}

func TestLockedDoor(t *testing.T) {
	door := &Door{Locked: true, SwingAngle: 90}
	toggles := 0
	door.OnToggle.AddListener(func() { toggles++ })

	if door.OnStart(nil) != interaction.Failure {
		t.Error("Expected locked door to decline")
	}
	if toggles != 0 {
		t.Errorf("Expected no toggle while locked, got %d", toggles)
	}
	if door.OnForce(nil) != interaction.Success || !door.Open || door.Locked {
		t.Error("Expected force to break the lock and open")
	}
	if toggles != 1 {
		t.Errorf("Expected 1 toggle after force, got %d", toggles)
	}
}

func TestTimedDoorTogglesOnFinish(t *testing.T) {
	door := &Door{Duration: time.Second}
	door.OnFinish(nil)
	if !door.Open {
		t.Error("Expected timed door to open on finish")
	}
}

type fakeWorld struct {
	destroyed []*engine.GameObject
}

func (w *fakeWorld) Destroy(g *engine.GameObject) {
	w.destroyed = append(w.destroyed, g)
	g.Scene.RemoveGameObject(g)
}

func (w *fakeWorld) Raycast(_, _ rl.Vector3, _ float32) (engine.RaycastResult, bool) {
	return engine.RaycastResult{}, false
}

func (w *fakeWorld) SphereCast(_, _ rl.Vector3, _, _ float32, _ ...*engine.GameObject) (engine.RaycastResult, bool) {
	return engine.RaycastResult{}, false
}

func TestPickupDestroysItself(t *testing.T) {
	scene := engine.NewScene("test")
	world := &fakeWorld{}
	scene.World = world

	c, _ := engine.CreateScript("Pickup", map[string]any{"item": "key"})
	pickup := c.(*Pickup)
	g := engine.NewGameObject("Key")
	g.AddComponent(pickup)
	scene.AddGameObject(g)

	player := engine.NewGameObject("Player")
	var collectedBy *engine.GameObject
	pickup.Collected.AddListener(func(by *engine.GameObject) { collectedBy = by })

	if d, _ := pickup.Descriptor(); d.Message != "Pick up key" {
		t.Errorf("Expected 'Pick up key', got %q", d.Message)
	}
	if pickup.OnStart(player) != interaction.Success {
		t.Fatal("Expected pickup to succeed")
	}
	if collectedBy != player {
		t.Error("Expected Collected to report the player")
	}
	if len(world.destroyed) != 1 || engine.IsValid(g) {
		t.Error("Expected pickup destroyed through the world")
	}
	if _, ok := pickup.Descriptor(); ok {
		t.Error("Expected taken pickup to withhold its descriptor")
	}
	if pickup.OnForce(player) != interaction.Failure {
		t.Error("Expected second take to fail")
	}
}

func TestTerminal(t *testing.T) {
	c, _ := engine.CreateScript("Terminal", map[string]any{"duration": 2})
	term := c.(*Terminal)

	d, ok := term.Descriptor()
	if !ok || !d.RequiresVisibility || d.Duration != 2*time.Second {
		t.Errorf("Expected gated 2s terminal, got %+v", d)
	}
	if term.OnForce(nil) != interaction.Failure {
		t.Error("Expected force to be declined")
	}
	term.OnInterrupt(nil, nil)
	if term.Interrupted != 1 {
		t.Errorf("Expected 1 interrupt, got %d", term.Interrupted)
	}
	term.OnFinish(nil)
	if _, ok := term.Descriptor(); ok {
		t.Error("Expected hacked terminal to stop offering interaction")
	}
}
