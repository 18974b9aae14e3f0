package frame_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/frame"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/trace"
)

func randomTable(rng *rand.Rand, n int) trace.Table {
	t := make(trace.Table, n)
	for i := range t {
		kind := trace.Bee
		if rng.Intn(4) == 0 {
			kind = trace.Flower
		}
		t[i] = trace.Record{
			Timestep: rng.Intn(8),
			Kind:     kind,
			ID:       i,
			X:        rng.Float64() * 800,
			Y:        rng.Float64() * 800,
			State:    trace.BeeState(rng.Intn(8) - 1),
			Nectar:   rng.Float64() * 5,
		}
	}
	return t
}

func beesAt(t trace.Table, ts int) trace.Table {
	var out trace.Table
	for _, r := range t {
		if r.Kind == trace.Bee && r.Timestep == ts {
			out = append(out, r)
		}
	}
	return out
}

var _ = Describe("Build", func() {
	cfg := frame.DefaultConfig()

	Context("with the three-record scenario", func() {
		table := trace.Table{
			{Timestep: 0, Kind: trace.Bee, X: 5, Y: 5, State: trace.Scout},
			{Timestep: 0, Kind: trace.Flower, X: 10, Y: 10, Nectar: 4},
			{Timestep: 1, Kind: trace.Bee, X: 6, Y: 6, State: trace.Returning},
		}

		It("indexes timesteps 0 and 1", func() {
			Expect(trace.Timesteps(table)).To(Equal([]int{0, 1}))
		})

		It("builds timestep 0", func() {
			f := frame.Build(table, 0, cfg)
			Expect(f.Flowers).To(HaveLen(1))
			Expect(f.Flowers[0].X).To(Equal(10.0))
			Expect(f.Flowers[0].Y).To(Equal(10.0))
			Expect(f.Flowers[0].Size).To(Equal(12.0))
			for _, b := range f.Buckets {
				if b.State == trace.Scout {
					Expect(b.Len()).To(Equal(1))
				} else {
					Expect(b.Len()).To(BeZero())
				}
			}
			Expect(f.BeeCount).To(Equal(1))
			Expect(f.FlowerCount).To(Equal(1))
		})

		It("builds timestep 1", func() {
			f := frame.Build(table, 1, cfg)
			Expect(f.Flowers).To(BeEmpty())
			Expect(f.Buckets[trace.Returning].Len()).To(Equal(1))
			Expect(f.BeeCount).To(Equal(1))
			Expect(f.FlowerCount).To(BeZero())
		})
	})

	It("returns an empty frame for an absent timestep", func() {
		table := trace.Table{{Timestep: 0, Kind: trace.Bee, State: trace.Idle}}
		f := frame.Build(table, 99, cfg)

		Expect(f.Timestep).To(Equal(99))
		Expect(f.Flowers).To(BeEmpty())
		for _, b := range f.Buckets {
			Expect(b.Records).To(BeEmpty())
		}
		Expect(f.BeeCount).To(BeZero())
		Expect(f.FlowerCount).To(BeZero())
		Expect(f.Unclassified).To(BeZero())
	})

	It("always places the hive at the world centre", func() {
		f := frame.Build(nil, 0, frame.Config{WorldSize: 1000, HiveRadius: 12, SizeScale: 3})
		Expect(f.Hive).To(Equal(frame.Hive{X: 500, Y: 500, Radius: 12}))
	})

	It("orders buckets by state with registry styles", func() {
		f := frame.Build(nil, 0, cfg)
		labels := make([]string, 0, len(f.Buckets))
		for i, b := range f.Buckets {
			Expect(int(b.State)).To(Equal(i))
			labels = append(labels, b.Style.Label)
		}
		Expect(labels).To(Equal([]string{"Idle", "Scout", "Returning", "Dancing", "Follower", "Foraging"}))
	})

	It("scales flower size by the configured factor", func() {
		table := trace.Table{{Timestep: 2, Kind: trace.Flower, Nectar: 2.5}}
		f := frame.Build(table, 2, frame.Config{WorldSize: 800, HiveRadius: 10, SizeScale: 10})
		Expect(f.Flowers[0].Size).To(Equal(25.0))
	})

	Describe("unknown states", func() {
		table := trace.Table{
			{Timestep: 4, Kind: trace.Bee, State: trace.Dancing},
			{Timestep: 4, Kind: trace.Bee, State: trace.BeeState(9)},
			{Timestep: 4, Kind: trace.Bee, State: trace.BeeState(-2)},
		}

		It("excludes them from every bucket but counts them", func() {
			f := frame.Build(table, 4, cfg)
			total := 0
			for _, b := range f.Buckets {
				total += b.Len()
			}
			Expect(total).To(Equal(1))
			Expect(f.BeeCount).To(Equal(3))
			Expect(f.Unclassified).To(Equal(2))
			Expect(f.StatsText()).To(Equal("Bees: 3 | Flowers: 0 | Unclassified: 2"))
		})
	})

	Describe("properties over random tables", func() {
		var table trace.Table

		BeforeEach(func() {
			table = randomTable(rand.New(rand.NewSource(GinkgoRandomSeed())), 400)
		})

		It("partitions bees into disjoint buckets covering every known-state bee", func() {
			for ts := 0; ts < 8; ts++ {
				f := frame.Build(table, ts, cfg)
				seen := make(map[int]bool)
				for _, b := range f.Buckets {
					for _, r := range b.Records {
						Expect(r.State).To(Equal(b.State))
						Expect(seen[r.ID]).To(BeFalse(), "record %d in two buckets", r.ID)
						seen[r.ID] = true
					}
				}
				bees := beesAt(table, ts)
				Expect(f.BeeCount).To(Equal(len(bees)))
				for _, r := range bees {
					Expect(seen[r.ID]).To(Equal(r.State.Known()))
				}
				Expect(len(seen) + f.Unclassified).To(Equal(len(bees)))
			}
		})

		It("counts flowers and sizes them by nectar", func() {
			for ts := 0; ts < 8; ts++ {
				f := frame.Build(table, ts, cfg)
				want := 0
				for _, r := range table {
					if r.Kind == trace.Flower && r.Timestep == ts {
						want++
					}
				}
				Expect(f.FlowerCount).To(Equal(want))
				for _, fl := range f.Flowers {
					Expect(fl.Size).To(Equal(fl.Nectar * 3))
				}
			}
		})

		It("is idempotent and leaves the table untouched", func() {
			snapshot := append(trace.Table(nil), table...)
			first := frame.Build(table, 3, cfg)
			second := frame.Build(table, 3, cfg)
			Expect(second).To(Equal(first))
			Expect(table).To(Equal(snapshot))
		})

		It("groups independently of record order", func() {
			shuffled := append(trace.Table(nil), table...)
			rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			for ts := 0; ts < 8; ts++ {
				a := frame.Build(table, ts, cfg)
				b := frame.Build(shuffled, ts, cfg)
				Expect(b.BeeCount).To(Equal(a.BeeCount))
				Expect(b.FlowerCount).To(Equal(a.FlowerCount))
				for i := range a.Buckets {
					Expect(b.Buckets[i].Records).To(ConsistOf(a.Buckets[i].Records))
				}
			}
		})

		It("agrees with the indexed builder", func() {
			b := frame.NewBuilder(trace.NewIndex(table), cfg)
			for ts := -1; ts < 9; ts++ {
				Expect(b.Build(ts)).To(Equal(frame.Build(table, ts, cfg)))
			}
		})
	})
})

var _ = Describe("Frame text", func() {
	It("labels buckets with their size", func() {
		table := trace.Table{
			{Timestep: 12, Kind: trace.Bee, State: trace.Scout},
			{Timestep: 12, Kind: trace.Bee, State: trace.Scout},
			{Timestep: 12, Kind: trace.Flower, Nectar: 1},
		}
		f := frame.Build(table, 12, frame.DefaultConfig())
		Expect(f.Buckets[trace.Scout].Label()).To(Equal("Scout (2)"))
		Expect(f.Title()).To(Equal("Bee Foraging Simulation - Timestep: 12"))
		Expect(f.StatsText()).To(Equal("Bees: 2 | Flowers: 1"))
		Expect(f.Census()).To(Equal([trace.NumStates]int{0, 2, 0, 0, 0, 0}))
		Expect(f.TotalNectar()).To(Equal(1.0))
	})
})
