package engine

// GameObjectRef is a weak reference to a GameObject.
// It never keeps the object alive; Get returns nil once the object has left the scene.
//
// Example:
//
//	type Lever struct {
//	    engine.BaseComponent
//	    Door engine.GameObjectRef
//	}
//
//	func (l *Lever) Pull() {
//	    if door := l.Door.Get(l.GetGameObject().Scene); door != nil {
//	        // Use the door...
//	    }
//	}
type GameObjectRef struct {
	Handle Handle
}

// RefTo builds a reference to g. A nil object gives an empty reference.
func RefTo(g *GameObject) GameObjectRef {
	return GameObjectRef{Handle: g.Handle()}
}

// Get resolves the reference. Returns nil if the reference is empty,
// the scene is nil, or the object has since been removed.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.Handle.IsNil() || scene == nil {
		return nil
	}
	return scene.Resolve(r.Handle)
}

// IsValid reports whether the reference was set. It does not check that the
// object is still in the scene; use Get for that.
func (r GameObjectRef) IsValid() bool {
	return !r.Handle.IsNil()
}

// Clear empties the reference.
func (r *GameObjectRef) Clear() {
	r.Handle = NilHandle
}
