package sim

import "time"

const (
	// TickInterval is the fixed simulation period while running. Steps that
	// finish early sleep out the remainder, so the tick rate is independent
	// of the render rate.
	TickInterval = 30 * time.Millisecond
	// IdleInterval is how long the loop sleeps between command drains while
	// paused or stopped.
	IdleInterval = 100 * time.Millisecond
)

// Loop runs an Engine on a dedicated goroutine. The presentation side talks
// to it exclusively through messages: commands in, frames out. The loop never
// blocks on the presentation side; publishing evicts the oldest undelivered
// frame when the receiver lags, and receivers should consume the newest
// available frame each render pass.
type Loop struct {
	engine *Engine

	cmds   chan Command
	frames chan Frame
	done   chan struct{}
}

// NewLoop wraps the engine in a loop. The engine must not be touched directly
// once Start has been called.
func NewLoop(engine *Engine) *Loop {
	return &Loop{
		engine: engine,
		cmds:   make(chan Command, 64),
		frames: make(chan Frame, 2),
		done:   make(chan struct{}),
	}
}

// Frames returns the result channel. It is closed when the loop exits.
func (l *Loop) Frames() <-chan Frame { return l.frames }

// Send queues a command for the next tick. It reports false once the loop has
// exited, instead of blocking forever.
func (l *Loop) Send(cmd Command) bool {
	select {
	case l.cmds <- cmd:
		return true
	case <-l.done:
		return false
	}
}

// Start launches the simulation goroutine. Call it once.
func (l *Loop) Start() {
	go l.run()
}

// Wait blocks until the loop goroutine has exited. The presentation side must
// wait before exiting the process so the goroutine is not abandoned mid-step.
func (l *Loop) Wait() {
	<-l.done
}

func (l *Loop) run() {
	defer close(l.done)
	defer close(l.frames)

	for {
		if !l.drainCommands() {
			return
		}
		if l.engine.State() != Running {
			time.Sleep(IdleInterval)
			continue
		}

		start := time.Now()
		l.engine.Step(float32(TickInterval.Seconds()))
		elapsed := time.Since(start)
		l.publish(Frame{
			Stepped:   true,
			Elapsed:   elapsed,
			Positions: l.engine.Snapshot(),
		})
		if elapsed < TickInterval {
			time.Sleep(TickInterval - elapsed)
		}
	}
}

// drainCommands applies every queued command, oldest first, without blocking.
// It reports false when the loop should exit: an explicit Quit, or a closed
// command channel (the presentation side is gone).
func (l *Loop) drainCommands() bool {
	for {
		select {
		case cmd, ok := <-l.cmds:
			if !ok {
				return false
			}
			if !l.apply(cmd) {
				return false
			}
		default:
			return true
		}
	}
}

func (l *Loop) apply(cmd Command) bool {
	switch c := cmd.(type) {
	case Play:
		l.engine.Play()
	case Pause:
		l.engine.Pause()
	case Reset:
		l.engine.Reset()
	case Spawn:
		l.engine.Spawn()
		l.publish(Frame{Positions: l.engine.Snapshot()})
	case Quit:
		return false
	case ParamsUpdate:
		l.engine.settings.Params = c.Params
	case ClassCountUpdate:
		l.engine.settings.ClassCount = clampClassCount(c.Count)
	case ParticleCountsUpdate:
		for i, n := range c.Counts {
			l.engine.settings.ParticleCounts[i] = clampParticleCount(n)
		}
	case WorldRadiusUpdate:
		l.engine.settings.WorldRadius = c.Radius
	}
	return true
}

// publish hands a frame to the presentation side without ever blocking the
// tick. If the buffer is full the oldest frame is dropped; only the producer
// adds frames, so the retry always lands.
func (l *Loop) publish(f Frame) {
	for {
		select {
		case l.frames <- f:
			return
		default:
		}
		select {
		case <-l.frames:
		default:
		}
	}
}
