package motion

import "github.com/jakecoffman/cp"

// EventType identifies outward notification kinds. Each kind fires at most
// once per tick; delivery order is emission order within the tick.
type EventType string

const (
	EventJumped           EventType = "jumped"
	EventLanded           EventType = "landed"
	EventHitCeiling       EventType = "hit_ceiling"
	EventHitWall          EventType = "hit_wall"
	EventDirectionChanged EventType = "direction_changed"
	EventFastFallStarted  EventType = "fast_fall_started"
	EventCoyoteStarted    EventType = "coyote_started"
	EventGraceStarted     EventType = "grace_started"
)

// Event is a notification payload for external collaborators
// (animation/VFX/audio/UI).
type Event struct {
	Type EventType
	Data any
}

// JumpedEvent is emitted when a jump launches.
type JumpedEvent struct {
	LaunchVelocity cp.Vector
	WasRunning     bool
}

// LandedEvent is emitted on the airborne→grounded edge.
type LandedEvent struct {
	LandingVelocity float64
	WasFastFalling  bool
}

// HitCeilingEvent carries the vertical velocity before the head-bump clamp.
type HitCeilingEvent struct {
	PreClampVelocity float64
}

// HitWallEvent carries the wall's surface normal.
type HitWallEvent struct {
	Normal cp.Vector
}

// DirectionChangedEvent is emitted once per sign change of horizontal input.
type DirectionChangedEvent struct {
	Facing int
}

// EventQueue is a simple FIFO queue of pending notifications.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
