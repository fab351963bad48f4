package interaction

import (
	"interactq/internal/engine"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// target is the resolved head an operation acts on.
type target struct {
	handle     engine.Handle
	object     *engine.GameObject
	capability Interactive
	descriptor Descriptor
}

// headTarget applies the guards shared by every lifecycle operation:
// a live interactor, a non-empty queue and a live interactive head.
// Dead entries are pruned first so a destroyed head does not hide the rest.
func (c *QueueComponent) headTarget(op string) (target, bool) {
	interactor := c.GetGameObject()
	if !engine.IsValid(interactor) {
		c.logger().Debug("interaction rejected: interactor invalid", zap.String("op", op))
		return target{}, false
	}
	c.prune()
	h, ok := c.queue.Head()
	if !ok {
		c.logger().Debug("interaction rejected: queue empty", zap.String("op", op))
		return target{}, false
	}
	return c.targetFor(op, h)
}

func (c *QueueComponent) targetFor(op string, h engine.Handle) (target, bool) {
	g := c.resolve(h)
	capability, ok := capabilityOf(g)
	if !ok {
		c.logger().Debug("interaction rejected: target invalid", zap.String("op", op), zap.Stringer("entity", h))
		return target{}, false
	}
	d, ok := GetDescriptor(g)
	if !ok {
		c.logger().Debug("interaction rejected: no descriptor", zap.String("op", op), zap.Stringer("entity", h))
		return target{}, false
	}
	return target{handle: h, object: g, capability: capability, descriptor: c.withMessage(h, d)}, true
}

// visibilityGate fails while t requires sight and is not the visible entity.
func (c *QueueComponent) visibilityGate(op string, t target) bool {
	if c.queue.IsAvailable(t.handle, t.descriptor) {
		return true
	}
	c.logger().Debug("interaction gated: target not visible", zap.String("op", op), zap.Stringer("entity", t.handle))
	return false
}

// StartInteraction begins an interaction with the head. A timed descriptor arms
// the completion timer; otherwise the head's OnStart runs immediately.
func (c *QueueComponent) StartInteraction() Result {
	t, ok := c.headTarget("start")
	if !ok || !c.visibilityGate("start", t) {
		return Invalid
	}
	if c.timer.IsActive() {
		c.logger().Debug("interaction rejected: timer already armed", zap.Stringer("entity", t.handle))
		return Invalid
	}

	if t.descriptor.IsTimed() {
		if !c.timer.Arm(t.descriptor.Duration, c.onTimerExpired) {
			return Invalid
		}
		c.pending = engine.RefTo(t.object)
		c.attemptID = uuid.New()
		c.emit(Notification{Kind: Started, Entity: t.handle, Descriptor: t.descriptor, Result: Success, AttemptID: c.attemptID})
		return Success
	}

	result := t.capability.OnStart(c.GetGameObject())
	if result == Success {
		c.attemptID = uuid.New()
	}
	c.emit(Notification{Kind: Started, Entity: t.handle, Descriptor: t.descriptor, Result: result, AttemptID: c.attemptID})
	return result
}

// FinishInteraction completes the interaction with the head. It is not visibility gated.
func (c *QueueComponent) FinishInteraction() Result {
	t, ok := c.headTarget("finish")
	if !ok {
		return Invalid
	}
	return c.finish(t)
}

func (c *QueueComponent) finish(t target) Result {
	c.timer.Cancel()
	c.pending.Clear()

	result := t.capability.OnFinish(c.GetGameObject())
	c.emit(Notification{Kind: Finished, Entity: t.handle, Descriptor: t.descriptor, Result: result, AttemptID: c.attemptID})
	c.attemptID = uuid.Nil
	return result
}

// InterruptInteraction interrupts the interaction with the head on behalf of interruptor.
func (c *QueueComponent) InterruptInteraction(interruptor *engine.GameObject) Result {
	t, ok := c.headTarget("interrupt")
	if !ok {
		return Invalid
	}
	return c.interrupt(t, interruptor)
}

func (c *QueueComponent) interrupt(t target, interruptor *engine.GameObject) Result {
	c.timer.Cancel()
	c.pending.Clear()

	result := t.capability.OnInterrupt(interruptor, c.GetGameObject())
	c.emit(Notification{Kind: Interrupted, Entity: t.handle, Descriptor: t.descriptor, Result: result, AttemptID: c.attemptID})
	c.attemptID = uuid.Nil
	return result
}

// ForceInteraction runs the head's instantaneous interaction, bypassing start and finish.
func (c *QueueComponent) ForceInteraction() Result {
	t, ok := c.headTarget("force")
	if !ok || !c.visibilityGate("force", t) {
		return Invalid
	}
	c.timer.Cancel()
	c.pending.Clear()

	result := t.capability.OnForce(c.GetGameObject())
	attempt := uuid.Nil
	if result == Success {
		attempt = uuid.New()
	}
	c.emit(Notification{Kind: Forced, Entity: t.handle, Descriptor: t.descriptor, Result: result, AttemptID: attempt})
	c.attemptID = uuid.Nil
	return result
}

// onTimerExpired completes the timed interaction with the entity it was started on.
func (c *QueueComponent) onTimerExpired() {
	h := c.pending.Handle
	t, ok := c.targetFor("timer", h)
	if !ok || !c.queue.Contains(h) || !engine.IsValid(c.GetGameObject()) {
		c.emit(Notification{Kind: TimerCancelled, Entity: h, AttemptID: c.attemptID})
		c.pending.Clear()
		c.attemptID = uuid.Nil
		return
	}

	if c.Settings.ManualFinish {
		c.pending.Clear()
		c.emit(Notification{Kind: TimerElapsed, Entity: h, Descriptor: t.descriptor, Result: Success, AttemptID: c.attemptID})
		return
	}
	c.finish(t)
}

// interruptPending interrupts the timed interaction because its target left sight.
// The interactor is reported as the interruptor.
func (c *QueueComponent) interruptPending() {
	t, ok := c.targetFor("auto-interrupt", c.pending.Handle)
	if !ok {
		c.cancelTimer()
		return
	}
	c.logger().Debug("interaction interrupted: target out of sight", zap.Stringer("entity", t.handle))
	c.interrupt(t, c.GetGameObject())
}

// cancelTimer disarms the timer without calling any capability.
func (c *QueueComponent) cancelTimer() {
	if !c.timer.Cancel() {
		return
	}
	h := c.pending.Handle
	d, _ := GetDescriptor(c.pendingObject())
	c.emit(Notification{Kind: TimerCancelled, Entity: h, Descriptor: c.withMessage(h, d), AttemptID: c.attemptID})
	c.pending.Clear()
	c.attemptID = uuid.Nil
}
