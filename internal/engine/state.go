// Package engine holds the fixed-size world state shared by every game and
// the loop that drives a game against a display.
//
// Everything here is sized at construction and never grows: health and
// score counters, a handful of shot slots, a roster of at most three
// enemies. Positions that are not on screen carry the Inactive sentinel
// rather than a separate presence flag, so "do not draw" and "do not
// collide" are the same test.
package engine

// Inactive marks an entity or shot that is neither drawn nor collided.
const Inactive = 255

// Direction is a signed unit step along the horizontal axis.
type Direction int8

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return -d
}

func (d Direction) String() string {
	if d < 0 {
		return "backward"
	}
	return "forward"
}

// State is the discrete behaviour tag of an entity.
type State uint8

const (
	Idle State = iota
	Walking
	Attacking
	Hit
	Falling
	Dead
	AtObstacleLeft
	AtObstacleRight
	OnLadder
)

var stateNames = [...]string{
	Idle:            "idle",
	Walking:         "walking",
	Attacking:       "attacking",
	Hit:             "hit",
	Falling:         "falling",
	Dead:            "dead",
	AtObstacleLeft:  "obstacle-left",
	AtObstacleRight: "obstacle-right",
	OnLadder:        "ladder",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Entity is any on-screen actor.
type Entity struct {
	X     int // 0..127 or Inactive
	Lane  int // display page or stage index
	State State
	Frame int // animation frame
	Dir   Direction
	Timer int // ticks left in the current state, 0 = untimed
}

// Active reports whether the entity takes part in drawing and collisions.
func (e *Entity) Active() bool {
	return e.X != Inactive
}

// Deactivate parks the entity on the sentinel.
func (e *Entity) Deactivate() {
	e.X = Inactive
}

// Enter switches state, restarting the animation.
func (e *Entity) Enter(s State, timer int) {
	e.State = s
	e.Timer = timer
	e.Frame = 0
}

// Tick counts the state timer down and reports whether it just expired.
// Untimed states never expire.
func (e *Entity) Tick() bool {
	if e.Timer == 0 {
		return false
	}
	e.Timer--
	return e.Timer == 0
}
