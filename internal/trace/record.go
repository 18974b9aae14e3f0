package trace

import (
	"fmt"
	"strings"
)

// Kind distinguishes resource rows from agent rows.
type Kind uint8

const (
	Flower Kind = iota
	Bee
)

func (k Kind) String() string {
	switch k {
	case Flower:
		return "flower"
	case Bee:
		return "bee"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps a type cell to a Kind. Matching ignores case and
// surrounding whitespace.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flower":
		return Flower, nil
	case "bee":
		return Bee, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// BeeState is the behavioural state of a bee. Values outside the six known
// states can appear in a log and are carried through unchanged.
type BeeState int

const (
	Idle BeeState = iota
	Scout
	Returning
	Dancing
	Follower
	Foraging
)

// NumStates is the number of known bee states.
const NumStates = 6

// Known reports whether s is one of the six known states.
func (s BeeState) Known() bool {
	return s >= Idle && s <= Foraging
}

// Record is one row of the position log.
type Record struct {
	Timestep int      `json:"timestep"`
	Kind     Kind     `json:"type"`
	ID       int      `json:"id"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	State    BeeState `json:"state"`
	Nectar   float64  `json:"nectar"`
}

// Table is a log in arrival order.
type Table []Record

// Count returns the number of flower and bee records in t.
func (t Table) Count() (flowers, bees int) {
	for _, r := range t {
		if r.Kind == Bee {
			bees++
		} else {
			flowers++
		}
	}
	return flowers, bees
}
