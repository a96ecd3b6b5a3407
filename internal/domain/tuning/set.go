package tuning

import "fmt"

// MoveContext selects the horizontal tuning for the current tick
type MoveContext int

const (
	Ground MoveContext = iota
	Air
	moveContextCount
)

// String returns the string representation of the context
func (c MoveContext) String() string {
	switch c {
	case Ground:
		return "Ground"
	case Air:
		return "Air"
	default:
		return "Unknown"
	}
}

// ContextFor returns Ground when grounded, Air otherwise
func ContextFor(grounded bool) MoveContext {
	if grounded {
		return Ground
	}
	return Air
}

// FallKind selects the fall tuning for the current tick
type FallKind int

const (
	NormalFall FallKind = iota
	JumpFall
	fallKindCount
)

// String returns the string representation of the fall kind
func (k FallKind) String() string {
	switch k {
	case NormalFall:
		return "NormalFall"
	case JumpFall:
		return "JumpFall"
	default:
		return "Unknown"
	}
}

// Set bundles one tuning of each kind.
// The zero value is not valid; build a Set with NewSet.
type Set struct {
	moves [moveContextCount]Horizontal
	falls [fallKindCount]Fall
	jumps []JumpStage
	dash  Dash
}

// NewSet validates and copies the given tuning into an immutable Set
func NewSet(ground, air Horizontal, fall, jumpFall Fall, jumps []JumpStage, dash Dash) (Set, error) {
	s := Set{
		moves: [moveContextCount]Horizontal{Ground: ground, Air: air},
		falls: [fallKindCount]Fall{NormalFall: fall, JumpFall: jumpFall},
		jumps: append([]JumpStage(nil), jumps...),
		dash:  dash,
	}
	if err := s.Validate(); err != nil {
		return Set{}, err
	}
	return s, nil
}

// Validate checks every bundle of the set
func (s Set) Validate() error {
	for c, h := range s.moves {
		if err := h.Validate(); err != nil {
			return fmt.Errorf("%s movement: %w", MoveContext(c), err)
		}
	}
	for k, f := range s.falls {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("%s: %w", FallKind(k), err)
		}
	}
	if len(s.jumps) == 0 {
		return fmt.Errorf("%w: at least one jump stage is required", ErrInvalid)
	}
	for i, j := range s.jumps {
		if err := j.Validate(); err != nil {
			return fmt.Errorf("jump stage %d: %w", i, err)
		}
	}
	if err := s.dash.Validate(); err != nil {
		return fmt.Errorf("dash: %w", err)
	}
	return nil
}

// Horizontal returns the horizontal tuning for a context
func (s Set) Horizontal(c MoveContext) Horizontal {
	return s.moves[c]
}

// Fall returns the fall tuning for a kind
func (s Set) Fall(k FallKind) Fall {
	return s.falls[k]
}

// JumpCount is the maximum number of consecutive jumps
func (s Set) JumpCount() int {
	return len(s.jumps)
}

// JumpStage returns the tuning of the i-th jump (0-based)
func (s Set) JumpStage(i int) JumpStage {
	return s.jumps[i]
}

// Dash returns the dash tuning
func (s Set) Dash() Dash {
	return s.dash
}
