package scripts

import (
	"time"

	"interactq/internal/engine"
	"interactq/internal/interaction"
)

// Door swings open and shut when interacted with. A timed door only toggles
// once its interaction finishes.
type Door struct {
	engine.BaseComponent
	Weight             int
	RequiresVisibility bool
	Duration           time.Duration
	SwingAngle         float32
	Locked             bool
	Open               bool

	// OnToggle fires after the door opens or closes.
	OnToggle engine.Event
}

func (d *Door) Descriptor() (interaction.Descriptor, bool) {
	msg := "Open"
	if d.Open {
		msg = "Close"
	}
	if d.Locked {
		msg = "Locked"
	}
	return interaction.Descriptor{
		Message:            msg,
		Weight:             d.Weight,
		RequiresVisibility: d.RequiresVisibility,
		Duration:           d.Duration,
	}, true
}

func (d *Door) OnStart(interactor *engine.GameObject) interaction.Result {
	if d.Locked {
		return interaction.Failure
	}
	d.toggle()
	return interaction.Success
}

func (d *Door) OnFinish(interactor *engine.GameObject) interaction.Result {
	if d.Locked {
		return interaction.Failure
	}
	if d.Duration > 0 {
		d.toggle()
	}
	return interaction.Success
}

func (d *Door) OnInterrupt(interruptor, interactor *engine.GameObject) interaction.Result {
	return interaction.Success
}

func (d *Door) OnForce(interactor *engine.GameObject) interaction.Result {
	d.Locked = false
	d.toggle()
	return interaction.Success
}

func (d *Door) toggle() {
	d.Open = !d.Open
	if g := d.GetGameObject(); g != nil {
		if d.Open {
			g.Transform.Rotation.Y += d.SwingAngle
		} else {
			g.Transform.Rotation.Y -= d.SwingAngle
		}
	}
	d.OnToggle.Invoke()
}

func init() {
	engine.RegisterScript("Door", doorFactory)
}

func doorFactory(props map[string]any) engine.Component {
	return &Door{
		Weight:             int(engine.PropFloat(props, "weight", 0)),
		RequiresVisibility: engine.PropBool(props, "requiresVisibility", false),
		Duration:           seconds(engine.PropFloat(props, "duration", 0)),
		SwingAngle:         float32(engine.PropFloat(props, "swingAngle", 90)),
		Locked:             engine.PropBool(props, "locked", false),
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
