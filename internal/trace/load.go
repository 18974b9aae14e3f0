package trace

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Columns every log must carry. Extra columns are ignored.
var requiredColumns = []string{"timestep", "type", "x", "y", "state", "nectar"}

type columns struct {
	timestep, kind, x, y, state, nectar int
	id                                  int // -1 when absent
}

func mapColumns(header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := pos[name]; !ok {
			return columns{}, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	c := columns{
		timestep: pos["timestep"],
		kind:     pos["type"],
		x:        pos["x"],
		y:        pos["y"],
		state:    pos["state"],
		nectar:   pos["nectar"],
		id:       -1,
	}
	if i, ok := pos["id"]; ok {
		c.id = i
	}
	return c, nil
}

// Load reads the log at path.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read decodes a CSV position log. The first non-comment row is the header;
// lines starting with '#' are skipped. Empty state and nectar cells read as 0.
func Read(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	table := make(Table, 0, 1024)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		rec, err := decodeRow(row, cols, line)
		if err != nil {
			return nil, err
		}
		table = append(table, rec)
	}

	if len(table) == 0 {
		return nil, ErrEmptyLog
	}
	return table, nil
}

func decodeRow(row []string, c columns, line int) (Record, error) {
	cell := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	fail := func(col string, err error) (Record, error) {
		return Record{}, &ParseError{Line: line, Column: col, Err: err}
	}

	var rec Record
	var err error

	if rec.Timestep, err = strconv.Atoi(cell(c.timestep)); err != nil {
		return fail("timestep", err)
	}
	if rec.Kind, err = ParseKind(cell(c.kind)); err != nil {
		return fail("type", err)
	}
	if rec.X, err = strconv.ParseFloat(cell(c.x), 64); err != nil {
		return fail("x", err)
	}
	if rec.Y, err = strconv.ParseFloat(cell(c.y), 64); err != nil {
		return fail("y", err)
	}
	if s := cell(c.state); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fail("state", err)
		}
		rec.State = BeeState(v)
	}
	if s := cell(c.nectar); s != "" {
		if rec.Nectar, err = strconv.ParseFloat(s, 64); err != nil {
			return fail("nectar", err)
		}
	}
	if s := cell(c.id); s != "" {
		if rec.ID, err = strconv.Atoi(s); err != nil {
			return fail("id", err)
		}
	}
	return rec, nil
}
