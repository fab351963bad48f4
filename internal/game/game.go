package game

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"interactq/internal/components"
	"interactq/internal/config"
	"interactq/internal/engine"
	"interactq/internal/interaction"
	"interactq/internal/logging"
	"interactq/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// ErrNoInteractor is returned by commands issued before the player exists.
var ErrNoInteractor = errors.New("no interactor")

// Game runs a scene headlessly at a fixed step and replays its command plan
// against the player's interaction queue.
type Game struct {
	Config  *config.Config
	World   *world.World
	Player  *engine.GameObject
	Log     *zap.Logger
	History []interaction.Notification

	plan  []world.CommandDef
	next  int
	clock time.Duration
}

func New(cfg *config.Config, log *zap.Logger) *Game {
	if cfg == nil {
		cfg = config.Defaults()
	}
	log = logging.OrNop(log)
	return &Game{
		Config: cfg,
		World:  world.New(log),
		Log:    log,
	}
}

// LoadScene spawns the scene's objects, creates the player and queues the plan.
func (g *Game) LoadScene(path string) error {
	sf, err := g.World.LoadScene(path)
	if err != nil {
		return err
	}
	g.Setup(sf)
	return nil
}

// Setup creates the player from a parsed scene and takes over its plan.
func (g *Game) Setup(sf *world.SceneFile) {
	g.CreatePlayer(sf.Player)
	g.plan = append([]world.CommandDef(nil), sf.Plan...)
	sort.SliceStable(g.plan, func(i, j int) bool { return g.plan[i].At < g.plan[j].At })
	g.next = 0
}

// CreatePlayer spawns the interactor with its look controller, camera, body and queue.
func (g *Game) CreatePlayer(def world.PlayerDef) *engine.GameObject {
	g.Player = engine.NewGameObject("Player")
	g.Player.Tags = []string{"Player"}
	g.Player.Transform.Position = rl.Vector3{X: def.Position[0], Y: def.Position[1], Z: def.Position[2]}

	look := components.NewLookController()
	look.Yaw = def.Yaw
	look.Pitch = def.Pitch
	if def.EyeHeight > 0 {
		look.EyeHeight = def.EyeHeight
	}
	g.Player.AddComponent(look)

	cam := components.NewCamera()
	cam.IsMain = true
	g.Player.AddComponent(cam)

	// Feet at the object's position
	body := components.NewBoxCollider(rl.Vector3{X: 0.6, Y: 1.8, Z: 0.6})
	body.Offset = rl.Vector3{Y: 0.9}
	g.Player.AddComponent(body)

	ic := g.Config.Interaction
	queue := interaction.NewQueueComponent(interaction.Settings{
		SightDistance: ic.SightDistance,
		SightRadius:   ic.SightRadius,
		TickInterval:  ic.TickInterval(),
		ManualFinish:  ic.ManualFinish,
	})
	queue.Log = g.Log.Named("queue")
	queue.RegisterViewpointSource(cam)
	queue.SetVisibilityEnabled(ic.VisibilityEnabled)
	queue.Events.AddListener(g.record)
	g.Player.AddComponent(queue)

	g.World.Spawn(g.Player)
	return g.Player
}

func (g *Game) record(n interaction.Notification) {
	g.History = append(g.History, n)

	name := n.Entity.String()
	if obj := g.World.Scene.Resolve(n.Entity); obj != nil {
		name = obj.Name
	}
	g.Log.Info("interaction",
		zap.Stringer("kind", n.Kind),
		zap.String("entity", name),
		zap.String("message", n.Descriptor.Message),
		zap.Stringer("result", n.Result),
		zap.Duration("at", g.clock),
	)
}

// Queue returns the player's interaction queue, or nil before CreatePlayer.
func (g *Game) Queue() *interaction.QueueComponent {
	return interaction.QueueOf(g.Player)
}

// Clock returns the simulated time.
func (g *Game) Clock() time.Duration {
	return g.clock
}

// Step runs due plan commands, then advances the world by dt.
func (g *Game) Step(dt time.Duration) error {
	for g.next < len(g.plan) && g.plan[g.next].At <= g.clock.Seconds() {
		cmd := g.plan[g.next]
		g.next++
		if err := g.Exec(cmd); err != nil {
			return fmt.Errorf("command %d (%s at %.2fs): %w", g.next-1, cmd.Do, cmd.At, err)
		}
	}
	g.World.Update(float32(dt.Seconds()))
	g.clock += dt
	return nil
}

// Run steps the simulation until the plan is done and MaxSeconds has passed,
// or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	if g.Player == nil {
		return ErrNoInteractor
	}
	step := g.Config.Sandbox.Step()
	limit := time.Duration(g.Config.Sandbox.MaxSeconds * float64(time.Second))

	g.World.Start()
	g.Log.Info("sandbox started", zap.Duration("step", step), zap.Duration("limit", limit), zap.Int("commands", len(g.plan)))

	for g.clock < limit || g.next < len(g.plan) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.Step(step); err != nil {
			return err
		}
	}

	g.Log.Info("sandbox finished",
		zap.Duration("clock", g.clock),
		zap.Int("notifications", len(g.History)),
		zap.Int("queued", g.Queue().Len()),
	)
	return nil
}
