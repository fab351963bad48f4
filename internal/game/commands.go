package game

import (
	"fmt"

	"interactq/internal/components"
	"interactq/internal/engine"
	"interactq/internal/interaction"
	"interactq/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Exec runs one plan command against the player.
func (g *Game) Exec(cmd world.CommandDef) error {
	queue := g.Queue()
	if queue == nil {
		return ErrNoInteractor
	}

	var result interaction.Result
	switch cmd.Do {
	case "start":
		result = queue.StartInteraction()
	case "finish":
		result = queue.FinishInteraction()
	case "interrupt":
		interruptor := g.Player
		if cmd.Target != "" {
			target, err := g.find(cmd.Target)
			if err != nil {
				return err
			}
			interruptor = target
		}
		result = queue.InterruptInteraction(interruptor)
	case "force":
		result = queue.ForceInteraction()

	case "look":
		g.look().SetLook(cmd.Yaw, cmd.Pitch)
		return nil
	case "look_at":
		target, err := g.find(cmd.Target)
		if err != nil {
			return err
		}
		g.look().LookAt(target.WorldPosition())
		return nil
	case "move":
		if cmd.Position == nil {
			return fmt.Errorf("move needs a position")
		}
		g.Player.Transform.Position = rl.Vector3{X: cmd.Position[0], Y: cmd.Position[1], Z: cmd.Position[2]}
		return nil
	case "visibility":
		queue.SetVisibilityEnabled(cmd.Enabled)
		return nil
	case "refresh":
		queue.RefreshVisibility()
		return nil
	case "message":
		target, err := g.find(cmd.Target)
		if err != nil {
			return err
		}
		if !queue.UpdateMessage(target, cmd.Message) {
			g.Log.Warn("message override ignored, target not queued", zap.String("target", cmd.Target))
		}
		return nil
	case "destroy":
		target, err := g.find(cmd.Target)
		if err != nil {
			return err
		}
		g.World.Destroy(target)
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd.Do)
	}

	g.Log.Debug("lifecycle command", zap.String("do", cmd.Do), zap.Stringer("result", result))
	return nil
}

func (g *Game) find(name string) (*engine.GameObject, error) {
	obj := g.World.Scene.FindByName(name)
	if obj == nil {
		return nil, fmt.Errorf("no object named %q", name)
	}
	return obj, nil
}

func (g *Game) look() *components.LookController {
	return engine.GetComponent[*components.LookController](g.Player)
}
