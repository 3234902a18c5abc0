package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ErrScript is returned for malformed input scripts.
var ErrScript = errors.New("input: invalid script")

// Step holds one zone (or none) for a number of ticks.
type Step struct {
	Action core.Action
	Ticks  int
}

var stepNames = map[string]core.Action{
	"idle":  core.ActionNone,
	"left":  core.ActionMoveLeft,
	"right": core.ActionMoveRight,
	"jump":  core.ActionJump,
	"fire":  core.ActionFire,
}

// ParseScript parses a comma-separated list of name:ticks pairs,
// e.g. "right:5,jump:3,fire:1,idle:10". Ticks defaults to 1.
func ParseScript(s string) ([]Step, error) {
	var steps []Step
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, count, hasCount := strings.Cut(part, ":")
		action, ok := stepNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%w: unknown step %q", ErrScript, name)
		}

		ticks := 1
		if hasCount {
			n, err := strconv.Atoi(count)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: bad tick count in %q", ErrScript, part)
			}
			ticks = n
		}

		steps = append(steps, Step{Action: action, Ticks: ticks})
	}
	return steps, nil
}

// Script replays steps as touches on a controller, one tick per Frame call.
// Adjacent steps holding the same zone form one continuous press.
type Script struct {
	ctrl  *Controller
	steps []Step
	idx   int
	used  int
}

// NewScript creates a script source driving ctrl.
func NewScript(ctrl *Controller, steps []Step) *Script {
	return &Script{ctrl: ctrl, steps: steps}
}

// Ticks returns the total scripted length.
func (s *Script) Ticks() int {
	n := 0
	for _, st := range s.steps {
		n += st.Ticks
	}
	return n
}

// Done reports whether every step has been replayed.
func (s *Script) Done() bool {
	return s.idx >= len(s.steps)
}

// Frame advances the script by one tick and returns the mapped actions.
// Once done it keeps returning an empty frame.
func (s *Script) Frame() core.InputFrame {
	if s.Done() {
		s.ctrl.Release()
		return s.ctrl.Frame()
	}

	st := s.steps[s.idx]
	if st.Action == core.ActionNone || !s.ctrl.Press(st.Action) {
		s.ctrl.Release()
	}

	s.used++
	if s.used >= st.Ticks {
		s.idx++
		s.used = 0
	}

	return s.ctrl.Frame()
}
