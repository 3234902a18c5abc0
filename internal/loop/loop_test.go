package loop

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

type fakeInput struct {
	frame core.InputFrame
}

func (f *fakeInput) Frame() core.InputFrame { return f.frame }

type fakeSim struct {
	mu      sync.Mutex
	steps   int
	inputs  []core.InputFrame
	panicAt int           // Step number that panics, 0 = never
	block   chan struct{} // When set, every step waits for it to close
	onStep  func(n int)   // Called after each step, outside the lock
}

func (s *fakeSim) Step(in core.InputFrame) core.StepResult {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	s.steps++
	n := s.steps
	s.inputs = append(s.inputs, in)
	s.mu.Unlock()

	if n == s.panicAt {
		panic("boom")
	}
	if s.onStep != nil {
		s.onStep(n)
	}
	return core.StepResult{State: core.GameState{Tick: uint64(n)}}
}

func (s *fakeSim) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps
}

type fakeSink struct {
	mu       sync.Mutex
	presents []uint64
	failAt   int
	err      error
}

func (s *fakeSink) Present(res core.StepResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presents = append(s.presents, res.State.Tick)
	if len(s.presents) == s.failAt {
		return s.err
	}
	return nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

const interval = 10 * time.Millisecond

func newTestLoop(sim *fakeSim, sink *fakeSink, maxCatchUp int) *Loop {
	return New(&fakeInput{}, sim, sink, Options{
		Interval:    interval,
		MaxCatchUp:  maxCatchUp,
		StopTimeout: time.Second,
	})
}

func TestAdvanceRunsWholeIntervals(t *testing.T) {
	tests := []struct {
		name    string
		elapsed []time.Duration
		want    int
	}{
		{"nothing elapsed", []time.Duration{0}, 0},
		{"short of one interval", []time.Duration{9 * time.Millisecond}, 0},
		{"exactly one", []time.Duration{interval}, 1},
		{"three", []time.Duration{3 * interval}, 3},
		{"remainder carries", []time.Duration{25 * time.Millisecond, 5 * time.Millisecond}, 3},
		{"many small", []time.Duration{4 * time.Millisecond, 4 * time.Millisecond, 4 * time.Millisecond}, 1},
		{"negative ignored", []time.Duration{-time.Second, interval}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := &fakeSim{}
			sink := &fakeSink{}
			l := newTestLoop(sim, sink, 10)

			for _, e := range tt.elapsed {
				if f := l.advance(e, nil); f != nil {
					t.Fatalf("unexpected fault: %v", f)
				}
			}

			if sim.count() != tt.want {
				t.Errorf("steps = %d, want %d", sim.count(), tt.want)
			}
			if len(sink.presents) != tt.want {
				t.Errorf("presents = %d, want %d", len(sink.presents), tt.want)
			}
			if l.Ticks() != uint64(tt.want) {
				t.Errorf("Ticks = %d, want %d", l.Ticks(), tt.want)
			}
		})
	}
}

func TestAdvanceDropsBacklog(t *testing.T) {
	sim := &fakeSim{}
	l := newTestLoop(sim, &fakeSink{}, 5)

	l.advance(20*interval + 3*time.Millisecond, nil)
	if sim.count() != 5 {
		t.Fatalf("steps = %d, want 5 (catch-up bound)", sim.count())
	}

	// Only the sub-interval remainder survives
	l.advance(7 * time.Millisecond, nil)
	if sim.count() != 6 {
		t.Errorf("steps = %d, want 6", sim.count())
	}
}

func TestAdvanceHonorsStopBetweenTicks(t *testing.T) {
	stop := make(chan struct{})
	sim := &fakeSim{}
	sim.onStep = func(n int) {
		if n == 2 {
			close(stop)
		}
	}
	l := newTestLoop(sim, &fakeSink{}, 5)

	if f := l.advance(5*interval, stop); f != nil {
		t.Fatalf("unexpected fault: %v", f)
	}
	if sim.count() != 2 {
		t.Errorf("steps = %d, want 2 (catch-up ends once stopped)", sim.count())
	}
}

func TestCycleOrder(t *testing.T) {
	in := &fakeInput{}
	in.frame.Set(core.ActionJump)
	sim := &fakeSim{}
	sink := &fakeSink{}
	l := New(in, sim, sink, Options{Interval: interval, MaxCatchUp: 5})

	l.advance(2 * interval, nil)

	for i, f := range sim.inputs {
		if !f.Has(core.ActionJump) {
			t.Errorf("step %d did not receive input", i)
		}
	}
	// Sink sees each step's result right after it
	if len(sink.presents) != 2 || sink.presents[0] != 1 || sink.presents[1] != 2 {
		t.Errorf("presents = %v, want [1 2]", sink.presents)
	}
}

func TestWakeUsesClock(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	sim := &fakeSim{}
	l := New(&fakeInput{}, sim, &fakeSink{}, Options{Interval: interval, MaxCatchUp: 5, Clock: clock})
	l.last = clock.now

	clock.now = clock.now.Add(35 * time.Millisecond)
	l.wake(nil)
	if sim.count() != 3 {
		t.Errorf("steps = %d, want 3", sim.count())
	}
}

func TestRenderErrorIsFault(t *testing.T) {
	sinkErr := errors.New("display gone")
	sink := &fakeSink{failAt: 2, err: sinkErr}
	sim := &fakeSim{}
	l := newTestLoop(sim, sink, 5)

	f := l.advance(5 * interval, nil)
	if f == nil {
		t.Fatal("expected fault")
	}
	if f.Kind != FaultRender || f.Tick != 2 {
		t.Errorf("fault = %v, want render fault at tick 2", f)
	}
	if !errors.Is(f, sinkErr) {
		t.Error("fault does not wrap sink error")
	}
	if sim.count() != 2 {
		t.Errorf("steps = %d, want 2 (no ticks after fault)", sim.count())
	}
}

func TestPanicIsScheduleFault(t *testing.T) {
	sim := &fakeSim{panicAt: 3}
	l := newTestLoop(sim, &fakeSink{}, 5)

	f := l.advance(5 * interval, nil)
	if f == nil || f.Kind != FaultSchedule || f.Tick != 3 {
		t.Fatalf("fault = %v, want schedule fault at tick 3", f)
	}

	var target *Fault
	if !errors.As(error(f), &target) {
		t.Error("errors.As failed for *Fault")
	}
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestStartStop(t *testing.T) {
	sim := &fakeSim{}
	l := New(&fakeInput{}, sim, &fakeSink{}, Options{
		Interval:    time.Millisecond,
		MaxCatchUp:  5,
		StopTimeout: time.Second,
	})

	if l.State() != Stopped {
		t.Fatalf("initial state %v", l.State())
	}
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := l.Start(); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Start = %v, want ErrAlreadyRunning", err)
	}

	waitFor(t, func() bool { return sim.count() >= 3 })

	if err := l.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if l.State() != Stopped {
		t.Errorf("state after Stop = %v", l.State())
	}

	n := sim.count()
	time.Sleep(20 * time.Millisecond)
	if sim.count() != n {
		t.Errorf("ticks ran after Stop returned: %d -> %d", n, sim.count())
	}

	// Stopping twice is harmless
	if err := l.Stop(); err != nil {
		t.Errorf("second Stop: %v", err)
	}

	// Resume keeps the tick counter
	if err := l.Start(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	waitFor(t, func() bool { return sim.count() > n })
	if err := l.Stop(); err != nil {
		t.Fatalf("Stop after restart: %v", err)
	}
	if l.Ticks() != uint64(sim.count()) {
		t.Errorf("Ticks = %d, steps = %d", l.Ticks(), sim.count())
	}
}

func TestFaultStopsLoop(t *testing.T) {
	sinkErr := errors.New("closed")
	faults := make(chan *Fault, 1)
	sim := &fakeSim{}
	l := New(&fakeInput{}, sim, &fakeSink{failAt: 3, err: sinkErr}, Options{
		Interval:    time.Millisecond,
		MaxCatchUp:  5,
		StopTimeout: time.Second,
		OnFault:     func(f *Fault) { faults <- f },
	})

	if err := l.Start(); err != nil {
		t.Fatal(err)
	}

	select {
	case f := <-faults:
		if f.Kind != FaultRender {
			t.Errorf("fault kind = %v, want render", f.Kind)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no fault reported")
	}

	if l.State() != Stopped {
		t.Errorf("state after fault = %v, want stopped", l.State())
	}
	if sim.count() != 3 {
		t.Errorf("steps = %d, want 3", sim.count())
	}

	err := l.Stop()
	if !errors.Is(err, sinkErr) {
		t.Errorf("Stop = %v, want the reported fault", err)
	}
	if err := l.Stop(); err != nil {
		t.Errorf("fault returned twice: %v", err)
	}
}

func TestFaultSurvivesRestart(t *testing.T) {
	sinkErr := errors.New("closed")
	faults := make(chan *Fault, 1)
	sim := &fakeSim{}
	l := New(&fakeInput{}, sim, &fakeSink{failAt: 2, err: sinkErr}, Options{
		Interval:    time.Millisecond,
		MaxCatchUp:  5,
		StopTimeout: time.Second,
		OnFault:     func(f *Fault) { faults <- f },
	})

	if err := l.Start(); err != nil {
		t.Fatal(err)
	}
	select {
	case <-faults:
	case <-time.After(2 * time.Second):
		t.Fatal("no fault reported")
	}

	// Restarting without Stop must not lose the pending fault
	if err := l.Start(); err != nil {
		t.Fatalf("restart after fault: %v", err)
	}
	waitFor(t, func() bool { return sim.count() > 2 })

	if err := l.Stop(); !errors.Is(err, sinkErr) {
		t.Errorf("Stop = %v, want the fault from the earlier run", err)
	}
	if err := l.Stop(); err != nil {
		t.Errorf("fault returned twice: %v", err)
	}
}

func TestStopContextTimeout(t *testing.T) {
	sim := &fakeSim{block: make(chan struct{})}
	l := New(&fakeInput{}, sim, &fakeSink{}, Options{
		Interval:   time.Millisecond,
		MaxCatchUp: 5,
	})

	if err := l.Start(); err != nil {
		t.Fatal(err)
	}
	// Let the loop enter a blocked step
	time.Sleep(10 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := l.StopContext(ctx)
	var f *Fault
	if !errors.As(err, &f) || f.Kind != FaultShutdown {
		t.Fatalf("StopContext = %v, want shutdown fault", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("fault does not wrap deadline: %v", err)
	}

	if err := l.Start(); !errors.Is(err, ErrStopping) {
		t.Errorf("Start while previous run blocked = %v, want ErrStopping", err)
	}

	close(sim.block)
	waitFor(t, func() bool { return l.Start() == nil })
	if err := l.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}
