package trace

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func randomTable(rng *rand.Rand, n int) Table {
	t := make(Table, n)
	for i := range t {
		kind := Bee
		if rng.Intn(3) == 0 {
			kind = Flower
		}
		t[i] = Record{
			Timestep: rng.Intn(20) * 5,
			Kind:     kind,
			ID:       i,
			X:        rng.Float64() * 800,
			Y:        rng.Float64() * 800,
			State:    BeeState(rng.Intn(7)),
			Nectar:   rng.Float64() * 5,
		}
	}
	return t
}

func TestTimesteps(t *testing.T) {
	table := Table{
		{Timestep: 3}, {Timestep: 1}, {Timestep: 3}, {Timestep: 0}, {Timestep: 1},
	}
	got := Timesteps(table)
	want := []int{0, 1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Timesteps() = %v, want %v", got, want)
	}

	if got := Timesteps(nil); len(got) != 0 {
		t.Errorf("Timesteps(nil) = %v, want empty", got)
	}
}

func TestTimestepsProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		table := randomTable(rng, 200)
		steps := Timesteps(table)

		for i := 1; i < len(steps); i++ {
			if steps[i] <= steps[i-1] {
				t.Fatalf("not strictly ascending at %d: %v", i, steps)
			}
		}

		distinct := make(map[int]bool)
		for _, r := range table {
			distinct[r.Timestep] = true
		}
		want := make([]int, 0, len(distinct))
		for ts := range distinct {
			want = append(want, ts)
		}
		sort.Ints(want)
		if !reflect.DeepEqual(steps, want) {
			t.Fatalf("Timesteps() = %v, want %v", steps, want)
		}
	}
}

func TestIndexMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	table := randomTable(rng, 500)
	idx := NewIndex(table)

	if !reflect.DeepEqual(idx.Timesteps(), Timesteps(table)) {
		t.Fatalf("index order %v differs from Timesteps %v", idx.Timesteps(), Timesteps(table))
	}

	for i := 0; i < idx.Len(); i++ {
		ts := idx.At(i)
		var want Table
		for _, r := range table {
			if r.Timestep == ts {
				want = append(want, r)
			}
		}
		if !reflect.DeepEqual(idx.Records(ts), want) {
			t.Errorf("Records(%d) differs from linear filter", ts)
		}
		if idx.Position(ts) != i {
			t.Errorf("Position(%d) = %d, want %d", ts, idx.Position(ts), i)
		}
	}

	if idx.Records(-1) != nil {
		t.Error("Records for absent timestep should be nil")
	}
	if idx.Position(-1) != -1 {
		t.Error("Position for absent timestep should be -1")
	}
}
