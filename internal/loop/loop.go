// Package loop drives a simulation at a fixed timestep on its own goroutine.
//
// Each tick maps input, steps the simulation and presents the result, always
// in that order and always to completion. Wall-clock time is accumulated and
// consumed in whole intervals, so simulation speed does not depend on how
// punctually the goroutine is woken.
package loop

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// InputSource supplies the actions held during a tick.
type InputSource interface {
	Frame() core.InputFrame
}

// Stepper advances the simulation by one tick.
type Stepper interface {
	Step(in core.InputFrame) core.StepResult
}

// Sink receives the simulation after every tick, on the loop goroutine.
type Sink interface {
	Present(res core.StepResult) error
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// State is the loop lifecycle state.
type State int32

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Options configures a Loop.
type Options struct {
	Interval    time.Duration // Fixed timestep
	MaxCatchUp  int           // Ticks run per wake before the backlog is dropped
	StopTimeout time.Duration // Deadline used by Stop
	Logger      *log.Logger
	Clock       Clock
	OnFault     func(*Fault) // Called from the loop goroutine after it has stopped
}

// OptionsFrom builds options from the loop configuration section.
func OptionsFrom(cfg config.LoopConfig) Options {
	return Options{
		Interval:    cfg.TickInterval,
		MaxCatchUp:  cfg.MaxCatchUp,
		StopTimeout: cfg.StopTimeout,
	}
}

// Loop runs input → step → present at a fixed interval.
type Loop struct {
	in   InputSource
	sim  Stepper
	sink Sink
	opts Options
	log  *log.Logger

	mu    sync.Mutex
	state State
	stop  chan struct{}
	done  chan struct{}
	fault *Fault // Last unreported fault, returned by the next Stop

	ticks atomic.Uint64

	// Owned by the loop goroutine while running
	acc  time.Duration
	last time.Time
}

// New creates a stopped loop.
func New(in InputSource, sim Stepper, sink Sink, opts Options) *Loop {
	if opts.Interval <= 0 {
		opts.Interval = 10 * time.Millisecond
	}
	if opts.MaxCatchUp < 1 {
		opts.MaxCatchUp = 1
	}
	if opts.Clock == nil {
		opts.Clock = realClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Loop{
		in:   in,
		sim:  sim,
		sink: sink,
		opts: opts,
		log:  logger.WithPrefix("loop"),
	}
}

// State returns the lifecycle state.
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Ticks returns the number of completed ticks since the loop was created.
func (l *Loop) Ticks() uint64 {
	return l.ticks.Load()
}

// Start begins or resumes the simulation.
// A fault from an earlier run stays pending until Stop returns it.
func (l *Loop) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == Running {
		return ErrAlreadyRunning
	}
	if l.done != nil {
		select {
		case <-l.done:
		default:
			return ErrStopping
		}
	}

	l.stop = make(chan struct{})
	l.done = make(chan struct{})
	l.state = Running
	l.acc = 0
	l.last = l.opts.Clock.Now()

	go l.run(l.stop, l.done)

	l.log.Info("started", "interval", l.opts.Interval, "tick", l.ticks.Load())
	return nil
}

// Stop pauses the simulation and waits up to the configured stop timeout for
// the in-flight tick to finish. No tick runs after a nil return.
// If the loop had stopped itself on a fault, that fault is returned.
func (l *Loop) Stop() error {
	timeout := l.opts.StopTimeout
	if timeout <= 0 {
		return l.StopContext(context.Background())
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return l.StopContext(ctx)
}

// StopContext is Stop with a caller-supplied deadline.
// It returns a FaultShutdown fault if ctx ends before the loop finishes.
func (l *Loop) StopContext(ctx context.Context) error {
	l.mu.Lock()
	if l.state != Running {
		f := l.takeFault()
		l.mu.Unlock()
		if f != nil {
			return f
		}
		return nil
	}
	l.state = Stopped
	close(l.stop)
	done := l.done
	l.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
		f := &Fault{Kind: FaultShutdown, Err: fmt.Errorf("waiting for tick: %w", ctx.Err())}
		l.log.Error("stop timed out", "error", f.Err)
		return f
	}

	l.mu.Lock()
	f := l.takeFault()
	l.mu.Unlock()

	l.log.Info("stopped", "tick", l.ticks.Load())
	if f != nil {
		return f
	}
	return nil
}

func (l *Loop) takeFault() *Fault {
	f := l.fault
	l.fault = nil
	return f
}

func (l *Loop) run(stop, done chan struct{}) {
	f := l.spin(stop)

	if f != nil {
		l.mu.Lock()
		if l.fault == nil {
			l.fault = f // The earliest unreported fault wins
		}
		if l.done == done {
			l.state = Stopped
		}
		l.mu.Unlock()
	}
	close(done)

	if f != nil {
		l.log.Error("loop fault", "kind", f.Kind, "tick", f.Tick, "error", f.Err)
		if l.opts.OnFault != nil {
			l.opts.OnFault(f)
		}
	}
}

func (l *Loop) spin(stop <-chan struct{}) *Fault {
	ticker := time.NewTicker(l.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return nil
		case <-ticker.C:
			if f := l.wake(stop); f != nil {
				return f
			}
		}
	}
}

// wake measures the time since the previous wake and runs the ticks it covers.
func (l *Loop) wake(stop <-chan struct{}) *Fault {
	now := l.opts.Clock.Now()
	elapsed := now.Sub(l.last)
	l.last = now
	return l.advance(elapsed, stop)
}

// advance adds elapsed time to the accumulator and runs one tick per whole
// interval, at most MaxCatchUp of them. Any larger backlog is dropped.
// A closed stop channel ends catch-up before the next tick starts.
func (l *Loop) advance(elapsed time.Duration, stop <-chan struct{}) *Fault {
	if elapsed > 0 {
		l.acc += elapsed
	}

	for n := 0; l.acc >= l.opts.Interval; n++ {
		if n == l.opts.MaxCatchUp {
			dropped := l.acc / l.opts.Interval
			l.acc %= l.opts.Interval
			l.log.Debug("dropping backlog", "ticks", dropped)
			break
		}
		select {
		case <-stop:
			return nil
		default:
		}
		l.acc -= l.opts.Interval
		if f := l.cycle(); f != nil {
			return f
		}
	}
	return nil
}

// cycle runs a single tick. A panic anywhere in it becomes a schedule fault.
func (l *Loop) cycle() (fault *Fault) {
	tick := l.ticks.Load() + 1
	defer func() {
		if r := recover(); r != nil {
			fault = &Fault{Kind: FaultSchedule, Tick: tick, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	res := l.sim.Step(l.in.Frame())
	l.ticks.Add(1)

	if err := l.sink.Present(res); err != nil {
		return &Fault{Kind: FaultRender, Tick: tick, Err: err}
	}
	return nil
}
