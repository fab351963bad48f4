package scripts

import (
	"interactq/internal/engine"
	"interactq/internal/interaction"
)

// Pickup is an item that removes itself from the world when taken.
type Pickup struct {
	engine.BaseComponent
	Item   string
	Weight int

	// Collected fires with the interactor before the pickup is destroyed.
	Collected engine.EventWithArg[*engine.GameObject]

	taken bool
}

func (p *Pickup) Descriptor() (interaction.Descriptor, bool) {
	if p.taken {
		return interaction.Descriptor{}, false
	}
	return interaction.Descriptor{Message: "Pick up " + p.Item, Weight: p.Weight}, true
}

func (p *Pickup) OnStart(interactor *engine.GameObject) interaction.Result {
	return p.take(interactor)
}

func (p *Pickup) OnFinish(interactor *engine.GameObject) interaction.Result {
	return interaction.Success
}

func (p *Pickup) OnInterrupt(interruptor, interactor *engine.GameObject) interaction.Result {
	return interaction.Success
}

func (p *Pickup) OnForce(interactor *engine.GameObject) interaction.Result {
	return p.take(interactor)
}

func (p *Pickup) take(interactor *engine.GameObject) interaction.Result {
	if p.taken {
		return interaction.Failure
	}
	p.taken = true
	p.Collected.Invoke(interactor)

	// Destroy this object
	g := p.GetGameObject()
	if g != nil && g.Scene != nil && g.Scene.World != nil {
		g.Scene.World.Destroy(g)
	}
	return interaction.Success
}

func init() {
	engine.RegisterScript("Pickup", pickupFactory)
}

func pickupFactory(props map[string]any) engine.Component {
	return &Pickup{
		Item:   engine.PropString(props, "item", "item"),
		Weight: int(engine.PropFloat(props, "weight", 1)),
	}
}
