package interaction

import "interactq/internal/engine"

// Interactive is the capability an entity exposes to take part in interactions.
// It is implemented by a component on the entity.
type Interactive interface {
	// Descriptor returns false when the entity cannot currently supply one,
	// which makes it non-interactive.
	Descriptor() (Descriptor, bool)
	OnStart(interactor *engine.GameObject) Result
	OnInterrupt(interruptor, interactor *engine.GameObject) Result
	OnFinish(interactor *engine.GameObject) Result
	OnForce(interactor *engine.GameObject) Result
}

func capabilityOf(g *engine.GameObject) (Interactive, bool) {
	if !engine.IsValid(g) {
		return nil, false
	}
	c := engine.FindComponent[Interactive](g)
	return c, c != nil
}

// IsInteractive reports whether g is live, exposes the Interactive capability
// and yields a descriptor.
func IsInteractive(g *engine.GameObject) bool {
	_, ok := GetDescriptor(g)
	return ok
}

// GetDescriptor returns g's normalized descriptor.
func GetDescriptor(g *engine.GameObject) (Descriptor, bool) {
	c, ok := capabilityOf(g)
	if !ok {
		return Descriptor{}, false
	}
	d, ok := c.Descriptor()
	if !ok {
		return Descriptor{}, false
	}
	return d.Normalized(), true
}
