package interaction

import (
	"time"

	"interactq/internal/engine"
	"interactq/internal/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Settings configures a QueueComponent.
type Settings struct {
	SightDistance float32
	SightRadius   float32
	TickInterval  time.Duration
	// ManualFinish makes timer expiry emit TimerElapsed instead of finishing.
	ManualFinish bool
}

func DefaultSettings() Settings {
	return Settings{
		SightDistance: 512,
		SightRadius:   32,
		TickInterval:  100 * time.Millisecond,
	}
}

// QueueComponent lives on the interactor. It owns the candidate queue, the
// visibility cache and the interaction timer.
type QueueComponent struct {
	engine.BaseComponent
	Settings Settings
	Events   engine.EventWithArg[Notification]
	Log      *zap.Logger

	queue       *Queue
	timer       Timer
	viewpoint   ViewpointSource
	probe       VisibilityProbe
	tickEnabled bool
	sinceTick   time.Duration

	// target of the armed timer and the attempt it belongs to
	pending   engine.GameObjectRef
	attemptID uuid.UUID

	messages map[engine.Handle]string
}

func NewQueueComponent(settings Settings) *QueueComponent {
	c := &QueueComponent{
		Settings: settings,
		Log:      zap.NewNop(),
		messages: make(map[engine.Handle]string),
	}
	c.queue = NewQueue(resolverFunc(c.resolve))
	return c
}

type resolverFunc func(engine.Handle) *engine.GameObject

func (f resolverFunc) Resolve(h engine.Handle) *engine.GameObject { return f(h) }

func (c *QueueComponent) resolve(h engine.Handle) *engine.GameObject {
	g := c.GetGameObject()
	if g == nil {
		return nil
	}
	return g.Scene.Resolve(h)
}

func (c *QueueComponent) logger() *zap.Logger {
	return logging.OrNop(c.Log)
}

// Start picks up a viewpoint from the interactor or its children if none was registered.
func (c *QueueComponent) Start() {
	if c.viewpoint != nil {
		return
	}
	if vp := findViewpoint(c.GetGameObject()); vp != nil {
		c.viewpoint = vp
	}
}

func findViewpoint(g *engine.GameObject) ViewpointSource {
	if g == nil {
		return nil
	}
	if vp := engine.FindComponent[ViewpointSource](g); vp != nil {
		return vp
	}
	for _, child := range g.Children {
		if vp := findViewpoint(child); vp != nil {
			return vp
		}
	}
	return nil
}

// Update advances the interaction timer and runs the visibility tick on its interval.
func (c *QueueComponent) Update(deltaTime float32) {
	dt := time.Duration(float64(deltaTime) * float64(time.Second))

	c.timer.Advance(dt)

	if !c.tickEnabled || !c.queue.VisibilityEnabled() {
		c.sinceTick = 0
		return
	}
	interval := c.Settings.TickInterval
	if interval <= 0 {
		interval = DefaultSettings().TickInterval
	}
	c.sinceTick += dt
	if c.sinceTick >= interval {
		// keep the remainder so the tick does not drift with the frame step
		c.sinceTick %= interval
		c.RefreshVisibility()
	}
}

// RegisterViewpointSource sets where sight is cast from.
func (c *QueueComponent) RegisterViewpointSource(source ViewpointSource) {
	c.viewpoint = source
}

// SetVisibilityProbe replaces the cast used by the visibility tick.
// Without one the tick casts through the interactor's scene.
func (c *QueueComponent) SetVisibilityProbe(probe VisibilityProbe) {
	c.probe = probe
}

// SetVisibilityEnabled toggles visibility gating and the periodic tick.
func (c *QueueComponent) SetVisibilityEnabled(enabled bool) {
	if c.queue.VisibilityEnabled() == enabled {
		return
	}
	c.queue.SetVisibilityEnabled(enabled)
	c.sinceTick = 0
	c.resort()
}

func (c *QueueComponent) VisibilityEnabled() bool {
	return c.queue.VisibilityEnabled()
}

// TickEnabled reports whether the periodic visibility tick is scheduled.
func (c *QueueComponent) TickEnabled() bool {
	return c.tickEnabled
}

// Add queues g as a candidate. It fails if g is not interactive or already queued.
func (c *QueueComponent) Add(g *engine.GameObject) bool {
	h := g.Handle()
	if c.resolve(h) != g {
		return false
	}
	c.prune()
	before, _ := c.queue.Head()
	if !c.queue.Add(h) {
		return false
	}
	c.tickEnabled = true

	d, _ := GetDescriptor(g)
	c.emit(Notification{Kind: QueueAdded, Entity: h, Descriptor: c.withMessage(h, d)})
	c.afterReorder(before)
	return true
}

// Remove drops g from the queue. It fails if g is not queued or not interactive.
func (c *QueueComponent) Remove(g *engine.GameObject) bool {
	h := g.Handle()
	if c.resolve(h) != g {
		return false
	}
	c.prune()
	before, _ := c.queue.Head()
	d, _ := GetDescriptor(g)
	if !c.queue.Remove(h) {
		return false
	}
	desc := c.withMessage(h, d)
	delete(c.messages, h)

	c.emit(Notification{Kind: QueueRemoved, Entity: h, Descriptor: desc})
	if h == c.pending.Handle {
		c.cancelTimer()
	}
	c.afterReorder(before)
	return true
}

func (c *QueueComponent) Contains(g *engine.GameObject) bool {
	h := g.Handle()
	return c.resolve(h) == g && c.queue.Contains(h)
}

// Head returns the highest-ranked live entry, or nil.
func (c *QueueComponent) Head() *engine.GameObject {
	h, ok := c.queue.Head()
	if !ok {
		return nil
	}
	return c.resolve(h)
}

// HeadDescriptor returns the descriptor of the head, with any message override applied.
func (c *QueueComponent) HeadDescriptor() (Descriptor, bool) {
	return c.DescriptorOf(c.Head())
}

// DescriptorOf returns the descriptor of a queued entity, with any message override applied.
func (c *QueueComponent) DescriptorOf(g *engine.GameObject) (Descriptor, bool) {
	if g == nil || !c.Contains(g) {
		return Descriptor{}, false
	}
	d, ok := GetDescriptor(g)
	if !ok {
		return Descriptor{}, false
	}
	return c.withMessage(g.Handle(), d), true
}

// UpdateMessage overrides the message reported for a queued entity.
func (c *QueueComponent) UpdateMessage(g *engine.GameObject, message string) bool {
	if g == nil || !c.Contains(g) {
		return false
	}
	c.messages[g.Handle()] = message
	return true
}

func (c *QueueComponent) withMessage(h engine.Handle, d Descriptor) Descriptor {
	if msg, ok := c.messages[h]; ok {
		d.Message = msg
	}
	return d
}

func (c *QueueComponent) Len() int {
	return c.queue.Len()
}

func (c *QueueComponent) IsQueueEmpty() bool {
	return c.queue.IsEmpty()
}

// Entries returns the queued objects in order. Stale entries are skipped.
func (c *QueueComponent) Entries() []*engine.GameObject {
	var out []*engine.GameObject
	for _, h := range c.queue.Entries() {
		if g := c.resolve(h); g != nil {
			out = append(out, g)
		}
	}
	return out
}

// Visible returns the entity the last visibility tick confirmed, or nil.
func (c *QueueComponent) Visible() *engine.GameObject {
	return c.resolve(c.queue.Visible())
}

// IsTimerActive reports whether a timed interaction is in flight.
func (c *QueueComponent) IsTimerActive() bool {
	return c.timer.IsActive()
}

// TimeRemaining returns how long the in-flight timed interaction has left.
func (c *QueueComponent) TimeRemaining() time.Duration {
	return c.timer.Remaining()
}

// afterReorder cancels the pending timer when the head moved away from before.
func (c *QueueComponent) afterReorder(before engine.Handle) {
	after, _ := c.queue.Head()
	if after != before && c.timer.IsActive() {
		c.cancelTimer()
	}
	if c.queue.IsEmpty() {
		c.tickEnabled = false
		c.sinceTick = 0
	}
}

// dropPruned reports pruned entries as removed.
func (c *QueueComponent) dropPruned(pruned []engine.Handle) {
	for _, h := range pruned {
		delete(c.messages, h)
		c.emit(Notification{Kind: QueueRemoved, Entity: h})
		if h == c.pending.Handle {
			c.cancelTimer()
		}
	}
}

// resort reorders the queue and reports anything pruned as removed.
func (c *QueueComponent) resort() {
	before, _ := c.queue.Head()
	c.dropPruned(c.queue.Sort())
	c.afterReorder(before)
}

// prune drops dead entries without disturbing the order of the rest.
func (c *QueueComponent) prune() {
	before, _ := c.queue.Head()
	c.dropPruned(c.queue.Prune())
	c.afterReorder(before)
}

func (c *QueueComponent) pendingObject() *engine.GameObject {
	g := c.GetGameObject()
	if g == nil {
		return nil
	}
	return c.pending.Get(g.Scene)
}

// RefreshVisibility casts from the viewpoint and reorders the queue around
// whatever is in sight. It runs immediately, outside the tick interval.
func (c *QueueComponent) RefreshVisibility() {
	if !c.queue.VisibilityEnabled() || c.queue.IsEmpty() {
		return
	}

	sighted := c.castSight()
	eligible := false
	if !sighted.IsNil() && c.queue.Contains(sighted) {
		if d, ok := GetDescriptor(c.resolve(sighted)); ok && d.RequiresVisibility {
			eligible = true
		}
	}

	// Losing sight of a gated timed target interrupts it before any reorder.
	if c.timer.IsActive() && c.pending.IsValid() && (!eligible || sighted != c.pending.Handle) {
		if d, ok := GetDescriptor(c.pendingObject()); ok && d.RequiresVisibility {
			c.interruptPending()
		}
	}

	if !eligible {
		c.queue.SetVisible(engine.NilHandle)
		c.resort()
		return
	}

	// A sighted entry taking the head away from a running timer cancels it.
	before, _ := c.queue.Head()
	previous := c.queue.Visible()
	c.queue.SetVisible(sighted)
	if !previous.IsNil() && previous != sighted {
		c.dropPruned(c.queue.Sort())
	}
	c.queue.MoveToFront(sighted)
	c.afterReorder(before)
}

func (c *QueueComponent) castSight() engine.Handle {
	owner := c.GetGameObject()
	if owner == nil || c.viewpoint == nil {
		return engine.NilHandle
	}
	origin, direction, ok := c.viewpoint.Viewpoint()
	if !ok {
		return engine.NilHandle
	}

	exclude := []engine.Handle{owner.Handle()}
	if comp, ok := c.viewpoint.(engine.Component); ok {
		if vg := comp.GetGameObject(); vg != nil && vg != owner {
			exclude = append(exclude, vg.Handle())
		}
	}

	probe := c.probe
	if probe == nil {
		probe = SceneProbe{Scene: owner.Scene}
	}
	sight, ok := probe.SphereCast(origin, direction, c.Settings.SightDistance, c.Settings.SightRadius, exclude)
	if !ok {
		return engine.NilHandle
	}
	if isBehind(origin, direction, sight.Point) {
		return engine.NilHandle
	}
	return sight.Entity
}

func (c *QueueComponent) emit(n Notification) {
	if g := c.GetGameObject(); g != nil {
		n.Interactor = g.Handle()
	}
	c.logger().Debug("interaction notification",
		zap.Stringer("kind", n.Kind),
		zap.Stringer("entity", n.Entity),
		zap.Stringer("result", n.Result),
	)
	c.Events.Invoke(n)
}
