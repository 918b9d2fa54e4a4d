package astar

import (
	"context"
	"math"
	"time"
)

// SpeedDelay maps a speed setting in [0, 100] to the delay between steps.
// Speed 0 pauses and reports false. Two exponential curves meet at speed
// 50: speed 1 waits about 4.5s, 50 waits 25ms and 100 waits 1ms. Values
// outside the range are clamped.
func SpeedDelay(value int) (time.Duration, bool) {
	value = min(max(value, 0), 100)
	if value == 0 {
		return 0, false
	}
	var ms float64
	if value < 50 {
		ms = 5000 * math.Pow(25.0/5000, float64(value)/49)
	} else {
		ms = 625 * math.Pow(1.0/25, float64(value)/50)
	}
	return time.Duration(math.Round(ms)) * time.Millisecond, true
}

// Driver steps an engine on a timer, the way an animation loop would.
// Steps happen on the goroutine that calls Drive, so the engine is never
// touched concurrently.
type Driver struct {
	engine *Engine
	speed  int
}

// NewDriver returns a driver for engine at the given speed.
func NewDriver(engine *Engine, speed int) *Driver {
	return &Driver{engine: engine, speed: speed}
}

// SetSpeed changes the speed for the next Drive call.
func (d *Driver) SetSpeed(value int) { d.speed = value }

func (d *Driver) Speed() int { return d.speed }

// Drive steps the engine once per tick until the session ends, ctx is done,
// or the speed is 0. An idle engine is set up first. onTick, when not nil,
// receives a snapshot after every step.
//
// Cancellation leaves the session where it stopped; call Reset to discard
// it or Drive again to resume.
func (d *Driver) Drive(ctx context.Context, onTick func(Snapshot)) (State, error) {
	if d.engine.State() == Idle {
		if err := d.engine.Setup(); err != nil {
			return Idle, err
		}
	}
	delay, running := SpeedDelay(d.speed)
	if !running || d.engine.State() != Stepping {
		return d.engine.State(), nil
	}

	ticker := time.NewTicker(delay)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return d.engine.State(), ctx.Err()
		case <-ticker.C:
			state := d.engine.Step()
			if onTick != nil {
				onTick(d.engine.Snapshot())
			}
			if state != Stepping {
				return state, nil
			}
		}
	}
}
