package world

import (
	"errors"
	"fmt"
	"os"
	"time"

	"interactq/internal/components"
	"interactq/internal/engine"
	"interactq/internal/interaction"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrUnknownScript is returned when a scene references an unregistered script.
var ErrUnknownScript = errors.New("unknown script")

// --- YAML types ---

type SceneFile struct {
	Player  PlayerDef    `yaml:"player"`
	Objects []ObjectDef  `yaml:"objects"`
	Plan    []CommandDef `yaml:"plan"`
}

// PlayerDef places the interactor.
type PlayerDef struct {
	Position  [3]float32 `yaml:"position"`
	Yaw       float32    `yaml:"yaw"`
	Pitch     float32    `yaml:"pitch"`
	EyeHeight float32    `yaml:"eye_height"`
}

type ObjectDef struct {
	Name       string      `yaml:"name"`
	Tags       []string    `yaml:"tags,omitempty"`
	Position   [3]float32  `yaml:"position"`
	Rotation   [3]float32  `yaml:"rotation"`
	Scale      [3]float32  `yaml:"scale"`
	Components []yaml.Node `yaml:"components"`
}

// CommandDef is one scripted sandbox action, run once simulated time reaches At seconds.
type CommandDef struct {
	At       float64     `yaml:"at"`
	Do       string      `yaml:"do"`
	Target   string      `yaml:"target,omitempty"`
	Position *[3]float32 `yaml:"position,omitempty"`
	Yaw      float32     `yaml:"yaw,omitempty"`
	Pitch    float32     `yaml:"pitch,omitempty"`
	Enabled  bool        `yaml:"enabled,omitempty"`
	Message  string      `yaml:"message,omitempty"`
}

type componentHeader struct {
	Type string `yaml:"type"`
}

type boxColliderDef struct {
	Size    [3]float32 `yaml:"size"`
	Offset  [3]float32 `yaml:"offset,omitempty"`
	Trigger bool       `yaml:"trigger,omitempty"`
}

type sphereColliderDef struct {
	Radius  float32    `yaml:"radius"`
	Offset  [3]float32 `yaml:"offset,omitempty"`
	Trigger bool       `yaml:"trigger,omitempty"`
}

type interactableDef struct {
	Message            string  `yaml:"message"`
	Weight             int     `yaml:"weight"`
	RequiresVisibility bool    `yaml:"requires_visibility"`
	Duration           float64 `yaml:"duration"` // seconds
	Result             string  `yaml:"result"`   // "success" (default) or "failure"
}

type triggerDef struct {
	Size         [3]float32 `yaml:"size,omitempty"`
	Radius       float32    `yaml:"radius,omitempty"`
	RemoveOnExit *bool      `yaml:"remove_on_exit,omitempty"`
}

type scriptDef struct {
	Name  string         `yaml:"name"`
	Props map[string]any `yaml:"props,omitempty"`
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// --- Loading ---

// LoadScene reads a YAML scene file and spawns its objects.
func (w *World) LoadScene(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	sf, err := w.ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return sf, nil
}

// ParseScene decodes YAML scene data and spawns its objects. Nothing is
// spawned if any object fails to build.
func (w *World) ParseScene(data []byte) (*SceneFile, error) {
	var sf SceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	built := make([]*engine.GameObject, 0, len(sf.Objects))
	for i := range sf.Objects {
		g, err := buildObject(&sf.Objects[i])
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", sf.Objects[i].Name, err)
		}
		built = append(built, g)
	}
	for _, g := range built {
		w.Spawn(g)
	}

	w.Log.Info("scene loaded", zap.Int("objects", len(built)), zap.Int("commands", len(sf.Plan)))
	return &sf, nil
}

func buildObject(def *ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Transform.Position = vec3(def.Position)
	g.Transform.Rotation = vec3(def.Rotation)

	// Default scale to 1 if zero
	if def.Scale != [3]float32{} {
		g.Transform.Scale = vec3(def.Scale)
	}

	for i := range def.Components {
		node := &def.Components[i]
		var header componentHeader
		if err := node.Decode(&header); err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}

		var err error
		switch header.Type {
		case "BoxCollider":
			err = loadBoxCollider(g, node)
		case "SphereCollider":
			err = loadSphereCollider(g, node)
		case "Interactable":
			err = loadInteractable(g, node)
		case "Trigger":
			err = loadTrigger(g, node)
		case "Script":
			err = loadScript(g, node)
		default:
			err = fmt.Errorf("unknown component type %q", header.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("component %d (%s): %w", i, header.Type, err)
		}
	}
	return g, nil
}

func loadBoxCollider(g *engine.GameObject, node *yaml.Node) error {
	var def boxColliderDef
	if err := node.Decode(&def); err != nil {
		return err
	}
	col := components.NewBoxCollider(vec3(def.Size))
	col.Offset = vec3(def.Offset)
	col.IsTrigger = def.Trigger
	g.AddComponent(col)
	return nil
}

func loadSphereCollider(g *engine.GameObject, node *yaml.Node) error {
	var def sphereColliderDef
	if err := node.Decode(&def); err != nil {
		return err
	}
	col := components.NewSphereCollider(def.Radius)
	col.Offset = vec3(def.Offset)
	col.IsTrigger = def.Trigger
	g.AddComponent(col)
	return nil
}

func loadInteractable(g *engine.GameObject, node *yaml.Node) error {
	var def interactableDef
	if err := node.Decode(&def); err != nil {
		return err
	}

	var result interaction.Result
	switch def.Result {
	case "", "success":
		result = interaction.Success
	case "failure":
		result = interaction.Failure
	default:
		return fmt.Errorf("result %q: want success or failure", def.Result)
	}

	it := interaction.NewInteractable(interaction.Descriptor{
		Message:            def.Message,
		Weight:             def.Weight,
		RequiresVisibility: def.RequiresVisibility,
		Duration:           time.Duration(def.Duration * float64(time.Second)),
	})
	it.StartFunc = func(*engine.GameObject) interaction.Result { return result }
	it.FinishFunc = func(*engine.GameObject) interaction.Result { return result }
	it.InterruptFunc = func(_, _ *engine.GameObject) interaction.Result { return result }
	it.ForceFunc = func(*engine.GameObject) interaction.Result { return result }
	g.AddComponent(it)
	return nil
}

// loadTrigger adds the overlap volume and the component that feeds interactor queues.
func loadTrigger(g *engine.GameObject, node *yaml.Node) error {
	var def triggerDef
	if err := node.Decode(&def); err != nil {
		return err
	}

	switch {
	case def.Radius > 0:
		sphere := components.NewSphereCollider(def.Radius)
		sphere.IsTrigger = true
		g.AddComponent(sphere)
	case def.Size != [3]float32{}:
		g.AddComponent(components.NewBoxTrigger(vec3(def.Size)))
	default:
		return errors.New("trigger needs a size or a radius")
	}

	trig := interaction.NewTrigger()
	if def.RemoveOnExit != nil {
		trig.RemoveOnExit = *def.RemoveOnExit
	}
	g.AddComponent(trig)
	return nil
}

func loadScript(g *engine.GameObject, node *yaml.Node) error {
	var def scriptDef
	if err := node.Decode(&def); err != nil {
		return err
	}
	comp, ok := engine.CreateScript(def.Name, def.Props)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScript, def.Name)
	}
	g.AddComponent(comp)
	return nil
}
