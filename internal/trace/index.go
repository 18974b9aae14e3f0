package trace

import "sort"

// Timesteps returns the distinct timesteps of t in ascending order.
func Timesteps(t Table) []int {
	seen := make(map[int]struct{})
	steps := make([]int, 0)
	for _, r := range t {
		if _, ok := seen[r.Timestep]; ok {
			continue
		}
		seen[r.Timestep] = struct{}{}
		steps = append(steps, r.Timestep)
	}
	sort.Ints(steps)
	return steps
}

// Index groups a table by timestep. Records keep their arrival order
// within a group.
type Index struct {
	steps  []int
	groups map[int]Table
}

// NewIndex groups t in a single pass.
func NewIndex(t Table) *Index {
	groups := make(map[int]Table)
	for _, r := range t {
		groups[r.Timestep] = append(groups[r.Timestep], r)
	}
	steps := make([]int, 0, len(groups))
	for ts := range groups {
		steps = append(steps, ts)
	}
	sort.Ints(steps)
	return &Index{steps: steps, groups: groups}
}

// Timesteps returns the frame order. The slice must not be modified.
func (x *Index) Timesteps() []int { return x.steps }

// Len returns the number of distinct timesteps.
func (x *Index) Len() int { return len(x.steps) }

// At returns the i-th smallest timestep.
func (x *Index) At(i int) int { return x.steps[i] }

// Records returns the records logged at timestep ts, or nil.
func (x *Index) Records(ts int) Table { return x.groups[ts] }

// Position returns the frame position of ts, or -1 when ts is absent.
func (x *Index) Position(ts int) int {
	i := sort.SearchInts(x.steps, ts)
	if i < len(x.steps) && x.steps[i] == ts {
		return i
	}
	return -1
}
