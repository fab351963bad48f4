package scripts

import (
	"time"

	"interactq/internal/engine"
	"interactq/internal/interaction"
)

// Terminal must be watched for Duration to be hacked. Once hacked it stops
// offering interaction.
type Terminal struct {
	engine.BaseComponent
	Weight   int
	Duration time.Duration

	Hacked      bool
	Attempts    int
	Interrupted int
}

func (t *Terminal) Descriptor() (interaction.Descriptor, bool) {
	if t.Hacked {
		return interaction.Descriptor{}, false
	}
	return interaction.Descriptor{
		Message:            "Hack terminal",
		Weight:             t.Weight,
		RequiresVisibility: true,
		Duration:           t.Duration,
	}, true
}

func (t *Terminal) OnStart(interactor *engine.GameObject) interaction.Result {
	t.Attempts++
	t.Hacked = true
	return interaction.Success
}

func (t *Terminal) OnFinish(interactor *engine.GameObject) interaction.Result {
	t.Attempts++
	t.Hacked = true
	return interaction.Success
}

func (t *Terminal) OnInterrupt(interruptor, interactor *engine.GameObject) interaction.Result {
	t.Interrupted++
	return interaction.Success
}

// OnForce always declines; a terminal cannot be hacked instantly.
func (t *Terminal) OnForce(interactor *engine.GameObject) interaction.Result {
	return interaction.Failure
}

func init() {
	engine.RegisterScript("Terminal", terminalFactory)
}

func terminalFactory(props map[string]any) engine.Component {
	return &Terminal{
		Weight:   int(engine.PropFloat(props, "weight", 0)),
		Duration: seconds(engine.PropFloat(props, "duration", 3)),
	}
}
