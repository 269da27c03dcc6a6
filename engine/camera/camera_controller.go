package camera

import (
	"github.com/Carmen-Shannon/oxy-canvas/common"
	"github.com/Carmen-Shannon/oxy-canvas/engine/input"
)

// Pointer control: a press starts a drag, moves rotate the drag axes, and a release or leave
// ends the drag. With inertia enabled a release shortly after the last move throws the camera
// into a coast driven by Update.

func (c *cameraImpl) HandlePointer(ev input.PointerEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev.Action {
	case input.PointerDown:
		c.pointerDown(ev.X, ev.Y)
	case input.PointerMove:
		c.pointerMove(ev.X, ev.Y)
	case input.PointerUp, input.PointerLeave:
		c.pointerUp()
	case input.PointerDoubleClick:
		c.reset()
	}
}

func (c *cameraImpl) EnableMouseControl(src input.PointerSource) input.Subscription {
	c.mu.Lock()
	prev := c.subscription
	c.subscription = nil
	c.mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}

	sub := src.SubscribePointer(c.HandlePointer)

	c.mu.Lock()
	c.subscription = sub
	c.mu.Unlock()
	return sub
}

func (c *cameraImpl) DisableMouseControl() {
	c.mu.Lock()
	sub := c.subscription
	c.subscription = nil
	c.mu.Unlock()

	if sub != nil {
		_ = sub.Close()
	}
	common.Logger().Debug("camera pointer control released")
}

// Caller must hold the mutex.
func (c *cameraImpl) pointerDown(x, y float64) {
	c.dragging = true
	c.lastPointer = [2]float64{x, y}
	c.lastMove = c.clock()
	c.velocityX, c.velocityY = 0, 0
	c.swipeH, c.swipeV = 0, 0
}

// Caller must hold the mutex.
func (c *cameraImpl) pointerMove(x, y float64) {
	if !c.dragging {
		return
	}
	dx := x - c.lastPointer[0]
	dy := y - c.lastPointer[1]
	c.lastPointer = [2]float64{x, y}

	h := dx * c.sensitivity
	v := dy * c.sensitivity
	if c.invertX {
		h = -h
	}
	if c.invertY {
		v = -v
	}
	c.rotation[c.hAxis] += h
	c.rotation[c.vAxis] += v
	c.clampPitch()

	if c.inertia {
		c.swipeH, c.swipeV = h, v
		c.lastMove = c.clock()
	}
}

// Caller must hold the mutex.
func (c *cameraImpl) pointerUp() {
	if !c.dragging {
		return
	}
	c.dragging = false
	if !c.inertia {
		return
	}
	if c.clock().Sub(c.lastMove) < c.throwWindow {
		c.velocityX = c.swipeV * c.velocityScale
		c.velocityY = c.swipeH * c.velocityScale
	}
}
