package engine

import "testing"

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if !obj.Handle().IsNil() {
		t.Error("Handle should be nil before the object joins a scene")
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"door", "interactive"}

	if !obj.HasTag("door") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("player") {
		t.Error("HasTag should return false for non-existent tag")
	}

	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child, got %d", len(parent.Children))
	}
}

func TestGameObjectRemoveChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)

	parent.RemoveChild(child1)

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child after removal, got %d", len(parent.Children))
	}

	if parent.Children[0] != child2 {
		t.Error("Wrong child removed")
	}

	if child1.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectWorldPositionFollowsParent(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position.X = 10
	child := NewGameObject("Child")
	child.Transform.Position.Y = 2
	parent.AddChild(child)

	pos := child.WorldPosition()
	if pos.X != 10 || pos.Y != 2 {
		t.Errorf("Expected world position (10, 2, 0), got %v", pos)
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if len(obj.components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.components))
	}

	if comp.gameObject != obj {
		t.Error("Component.gameObject should be set")
	}
}

type countingComponent struct {
	BaseComponent
	starts  int
	updates int
}

func (c *countingComponent) Start() { c.starts++ }
func (c *countingComponent) Update(dt float32) { c.updates++ }
func (c *countingComponent) GetEyeHeight() float32 { return 1 }

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	base := &BaseComponent{}
	counting := &countingComponent{}

	obj.AddComponent(base)
	obj.AddComponent(counting)

	if found := GetComponent[*BaseComponent](obj); found != base {
		t.Error("GetComponent failed to find component")
	}
	if found := GetComponent[*countingComponent](obj); found != counting {
		t.Error("GetComponent failed to find second component")
	}
	if found := GetComponent[*countingComponent](nil); found != nil {
		t.Error("GetComponent on nil object should return zero value")
	}
}

func TestGetComponentsReturnsAllOfType(t *testing.T) {
	obj := NewGameObject("Test")
	obj.AddComponent(&countingComponent{})
	obj.AddComponent(&BaseComponent{})
	obj.AddComponent(&countingComponent{})

	found := GetComponents[*countingComponent](obj)
	if len(found) != 2 {
		t.Errorf("Expected 2 components, got %d", len(found))
	}
}

func TestFindComponentByInterface(t *testing.T) {
	type eyeHeight interface{ GetEyeHeight() float32 }

	obj := NewGameObject("Test")
	obj.AddComponent(&BaseComponent{})
	counting := &countingComponent{}
	obj.AddComponent(counting)

	found := FindComponent[eyeHeight](obj)
	if found == nil {
		t.Fatal("FindComponent should locate component by interface")
	}
	if found.(*countingComponent) != counting {
		t.Error("FindComponent returned wrong component")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	obj.Start()
	obj.Start()

	if comp.starts != 1 {
		t.Errorf("Expected Start to run once, got %d", comp.starts)
	}
}

func TestComponentAddedAfterStartIsStarted(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Start()

	comp := &countingComponent{}
	obj.AddComponent(comp)

	if comp.starts != 1 {
		t.Errorf("Expected late component to be started, got %d starts", comp.starts)
	}
}

func TestInactiveGameObjectSkipsUpdate(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	obj.Active = false
	obj.Update(0.016)

	if comp.updates != 0 {
		t.Errorf("Expected no updates on inactive object, got %d", comp.updates)
	}
}
