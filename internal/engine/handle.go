package engine

import "fmt"

// Handle is a generation-checked reference to a GameObject slot in a Scene.
// The zero Handle refers to nothing. A slot's generation is bumped every time
// its GameObject leaves the scene, so stale handles stop resolving instead of
// pointing at whatever reuses the slot.
type Handle struct {
	Index      uint32
	Generation uint32
}

// NilHandle is the zero handle.
var NilHandle = Handle{}

// IsNil reports whether h was never assigned. A non-nil handle may still be stale.
func (h Handle) IsNil() bool {
	return h.Generation == 0
}

func (h Handle) String() string {
	if h.IsNil() {
		return "nil"
	}
	return fmt.Sprintf("%d:%d", h.Index, h.Generation)
}
