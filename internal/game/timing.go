package game

const TickRate = 20 // ticks per second

// SecsToTicks converts a duration in seconds to game ticks.
func SecsToTicks(s float64) int {
	t := int(s * TickRate)
	if t < 1 {
		t = 1
	}
	return t
}

// Frame is one loop tick in seconds.
const Frame = 1.0 / TickRate

// Battle animation, in seconds or cells per second. Cosmetic only.
const (
	ShakeOnHit   = 0.15
	ShakeOnSpell = 0.18
	StepDistance = 3.0 // cells the enemy row lunges during its attack
	StepSpeed    = 12.0
)

var (
	ResultBlinkInterval = SecsToTicks(0.5) // "press Enter" blink on the result screen
	CampToastDuration   = SecsToTicks(4.0) // how long a camp message stays highlighted
)

// animation holds the battle's cosmetic timers. It never draws randomness.
type animation struct {
	shake float64 // seconds of screen shake left
	step  float64 // current enemy lunge offset in cells
}

func (a *animation) hit(secs float64) {
	if secs > a.shake {
		a.shake = secs
	}
}

func (a *animation) update(dt float64) {
	a.shake -= dt
	if a.shake < 0 {
		a.shake = 0
	}
	if a.step > 0 {
		a.step -= StepSpeed * dt
		if a.step < 0 {
			a.step = 0
		}
	}
}
