package components

import (
	"math"

	"interactq/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LookController holds a yaw/pitch look direction and an eye height.
// It does not read input; game code or AI steers it through SetLook and LookAt.
type LookController struct {
	engine.BaseComponent
	Yaw       float32
	Pitch     float32
	EyeHeight float32
}

func NewLookController() *LookController {
	return &LookController{
		Yaw:       -90.0,
		Pitch:     0,
		EyeHeight: 1.7,
	}
}

// SetLook sets yaw and pitch in degrees. Pitch is clamped to avoid gimbal flip.
func (l *LookController) SetLook(yaw, pitch float32) {
	l.Yaw = yaw
	l.Pitch = clampPitch(pitch)
}

// LookAt turns the controller toward a world-space point from its eye position.
func (l *LookController) LookAt(target rl.Vector3) {
	g := l.GetGameObject()
	if g == nil {
		return
	}
	eye := g.WorldPosition()
	eye.Y += l.EyeHeight
	dir := rl.Vector3Subtract(target, eye)
	if rl.Vector3Length(dir) < 1e-6 {
		return
	}
	dir = rl.Vector3Normalize(dir)
	l.Yaw = float32(math.Atan2(float64(dir.Z), float64(dir.X)) * 180 / math.Pi)
	l.Pitch = clampPitch(float32(math.Asin(float64(dir.Y)) * 180 / math.Pi))
}

func (l *LookController) GetLookDirection() rl.Vector3 {
	yawRad := float64(l.Yaw) * math.Pi / 180
	pitchRad := float64(l.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

func (l *LookController) GetEyeHeight() float32 {
	return l.EyeHeight
}

func clampPitch(p float32) float32 {
	if p > 89 {
		return 89
	}
	if p < -89 {
		return -89
	}
	return p
}
