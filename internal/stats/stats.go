// Package stats summarises a log frame by frame.
package stats

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/frame"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/style"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/trace"
)

var ErrTooFewPoints = errors.New("stats: need at least two timesteps to chart")

// Sample is the census of one frame.
type Sample struct {
	Timestep     int                  `json:"timestep"`
	Counts       [trace.NumStates]int `json:"counts"`
	Unclassified int                  `json:"unclassified"`
	Bees         int                  `json:"bees"`
	Flowers      int                  `json:"flowers"`
	Nectar       float64              `json:"nectar"`
}

// Series holds one sample per frame in timestep order.
type Series struct {
	Samples []Sample
}

// Source is anything that yields frames by position.
type Source interface {
	Len() int
	Frame(i int) frame.Frame
}

// Collect builds the series of every frame of src.
func Collect(src Source) Series {
	s := Series{Samples: make([]Sample, 0, src.Len())}
	for i := 0; i < src.Len(); i++ {
		s.Samples = append(s.Samples, Of(src.Frame(i)))
	}
	return s
}

// Of returns the census of one frame.
func Of(f frame.Frame) Sample {
	return Sample{
		Timestep:     f.Timestep,
		Counts:       f.Census(),
		Unclassified: f.Unclassified,
		Bees:         f.BeeCount,
		Flowers:      f.FlowerCount,
		Nectar:       f.TotalNectar(),
	}
}

func (s Series) Len() int { return len(s.Samples) }

func (s Series) column(get func(Sample) float64) []float64 {
	out := make([]float64, len(s.Samples))
	for i, smp := range s.Samples {
		out[i] = get(smp)
	}
	return out
}

func (s Series) Timesteps() []float64 {
	return s.column(func(x Sample) float64 { return float64(x.Timestep) })
}

// State returns the bee count of one state per frame. Unknown states
// yield zeros.
func (s Series) State(st trace.BeeState) []float64 {
	return s.column(func(x Sample) float64 {
		if !st.Known() {
			return 0
		}
		return float64(x.Counts[st])
	})
}

func (s Series) Bees() []float64 {
	return s.column(func(x Sample) float64 { return float64(x.Bees) })
}

func (s Series) Flowers() []float64 {
	return s.column(func(x Sample) float64 { return float64(x.Flowers) })
}

func (s Series) Nectar() []float64 {
	return s.column(func(x Sample) float64 { return x.Nectar })
}

// Peak returns the largest bee count and the timestep it first occurs at.
func (s Series) Peak() (bees, timestep int) {
	for i, smp := range s.Samples {
		if i == 0 || smp.Bees > bees {
			bees, timestep = smp.Bees, smp.Timestep
		}
	}
	return bees, timestep
}

// Header returns the CSV column names.
func Header() []string {
	h := []string{"timestep"}
	for _, st := range style.States() {
		h = append(h, strings.ToLower(style.LabelOf(st)))
	}
	return append(h, "unclassified", "bees", "flowers", "nectar")
}

func (s Series) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return err
	}
	for _, smp := range s.Samples {
		row := []string{strconv.Itoa(smp.Timestep)}
		for _, c := range smp.Counts {
			row = append(row, strconv.Itoa(c))
		}
		row = append(row,
			strconv.Itoa(smp.Unclassified),
			strconv.Itoa(smp.Bees),
			strconv.Itoa(smp.Flowers),
			strconv.FormatFloat(smp.Nectar, 'f', 6, 64),
		)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
