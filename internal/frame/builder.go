package frame

import (
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/style"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/trace"
)

// Build assembles the frame of timestep ts by scanning the whole table.
// A timestep with no records yields an empty frame.
func Build(t trace.Table, ts int, cfg Config) Frame {
	var records trace.Table
	for _, r := range t {
		if r.Timestep == ts {
			records = append(records, r)
		}
	}
	return assemble(records, ts, cfg)
}

// Builder assembles frames from a pre-grouped index. It yields the same
// frames as Build without rescanning the table per frame.
type Builder struct {
	cfg Config
	idx *trace.Index
}

func NewBuilder(idx *trace.Index, cfg Config) *Builder {
	return &Builder{cfg: cfg, idx: idx}
}

// Config returns the scene constants frames are built with.
func (b *Builder) Config() Config { return b.cfg }

// Index returns the grouped table frames are built from.
func (b *Builder) Index() *trace.Index { return b.idx }

// Build assembles the frame of timestep ts.
func (b *Builder) Build(ts int) Frame {
	return assemble(b.idx.Records(ts), ts, b.cfg)
}

func assemble(records trace.Table, ts int, cfg Config) Frame {
	f := Frame{
		Timestep:  ts,
		WorldSize: cfg.WorldSize,
		Hive:      cfg.Hive(),
		Flowers:   make([]Flower, 0),
	}
	for i := range f.Buckets {
		st, _ := style.Lookup(trace.BeeState(i))
		f.Buckets[i] = Bucket{State: st.State, Style: st, Records: trace.Table{}}
	}

	for _, r := range records {
		switch r.Kind {
		case trace.Flower:
			f.Flowers = append(f.Flowers, Flower{
				ID:     r.ID,
				X:      r.X,
				Y:      r.Y,
				Nectar: r.Nectar,
				Size:   r.Nectar * cfg.SizeScale,
			})
		case trace.Bee:
			f.BeeCount++
			if !r.State.Known() {
				f.Unclassified++
				continue
			}
			f.Buckets[r.State].Records = append(f.Buckets[r.State].Records, r)
		}
	}
	f.FlowerCount = len(f.Flowers)
	return f
}
