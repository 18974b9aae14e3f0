// Package frame turns the records of one timestep into the visual
// primitives of one animation frame.
//
// Building a frame is pure: the same table and timestep always yield the
// same frame, and the table is never modified.
package frame

import (
	"fmt"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/style"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/trace"
)

const (
	DefaultWorldSize  = 800.0
	DefaultHiveRadius = 10.0
	// DefaultSizeScale converts nectar to flower marker area. It is a visual
	// knob with no physical meaning.
	DefaultSizeScale = 3.0
)

// Config holds the scene constants shared with the producing simulation.
type Config struct {
	WorldSize  float64 `json:"world_size" yaml:"world_size"`
	HiveRadius float64 `json:"hive_radius" yaml:"hive_radius"`
	SizeScale  float64 `json:"size_scale" yaml:"size_scale"`
}

func DefaultConfig() Config {
	return Config{
		WorldSize:  DefaultWorldSize,
		HiveRadius: DefaultHiveRadius,
		SizeScale:  DefaultSizeScale,
	}
}

// Hive returns the hive primitive: centred in the world, constant across frames.
func (c Config) Hive() Hive {
	return Hive{X: c.WorldSize / 2, Y: c.WorldSize / 2, Radius: c.HiveRadius}
}

type Hive struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Flower is a resource record with its derived marker size.
type Flower struct {
	ID     int     `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Nectar float64 `json:"nectar"`
	Size   float64 `json:"size"`
}

// Bucket holds the bees of one frame that share a state.
type Bucket struct {
	State   trace.BeeState `json:"state"`
	Style   style.Style    `json:"-"`
	Records trace.Table    `json:"records"`
}

// Len returns the number of bees in the bucket.
func (b Bucket) Len() int { return len(b.Records) }

// Label returns the legend label, e.g. "Scout (3)".
func (b Bucket) Label() string {
	return fmt.Sprintf("%s (%d)", b.Style.Label, len(b.Records))
}

// Frame is the resolved scene of one timestep.
type Frame struct {
	Timestep  int                     `json:"timestep"`
	WorldSize float64                 `json:"world_size"`
	Hive      Hive                    `json:"hive"`
	Flowers   []Flower                `json:"flowers"`
	Buckets   [trace.NumStates]Bucket `json:"buckets"`

	// BeeCount counts every bee at the timestep, including bees whose state
	// is unknown and therefore in no bucket. Unclassified counts the latter.
	BeeCount     int `json:"bee_count"`
	Unclassified int `json:"unclassified"`
	FlowerCount  int `json:"flower_count"`
}

// Title returns the frame heading.
func (f Frame) Title() string {
	return fmt.Sprintf("Bee Foraging Simulation - Timestep: %d", f.Timestep)
}

// StatsText returns the statistics overlay.
func (f Frame) StatsText() string {
	s := fmt.Sprintf("Bees: %d | Flowers: %d", f.BeeCount, f.FlowerCount)
	if f.Unclassified > 0 {
		s += fmt.Sprintf(" | Unclassified: %d", f.Unclassified)
	}
	return s
}

// Census returns the bucket sizes in state order.
func (f Frame) Census() [trace.NumStates]int {
	var c [trace.NumStates]int
	for i, b := range f.Buckets {
		c[i] = b.Len()
	}
	return c
}

// TotalNectar sums the nectar available on every flower of the frame.
func (f Frame) TotalNectar() float64 {
	sum := 0.0
	for _, fl := range f.Flowers {
		sum += fl.Nectar
	}
	return sum
}
