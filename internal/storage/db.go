package storage

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/trace"
)

// DB holds the records of one imported log.
type DB struct {
	conn *sqlx.DB
}

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		seq INTEGER PRIMARY KEY,
		timestep INTEGER NOT NULL,
		type TEXT NOT NULL,
		id INTEGER NOT NULL,
		x REAL NOT NULL,
		y REAL NOT NULL,
		state INTEGER NOT NULL,
		nectar REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_records_timestep ON records(timestep);
	`
	_, err := db.conn.Exec(schema)
	return err
}

type recordRow struct {
	Seq      int     `db:"seq"`
	Timestep int     `db:"timestep"`
	Type     string  `db:"type"`
	ID       int     `db:"id"`
	X        float64 `db:"x"`
	Y        float64 `db:"y"`
	State    int     `db:"state"`
	Nectar   float64 `db:"nectar"`
}

func (r recordRow) record() (trace.Record, error) {
	kind, err := trace.ParseKind(r.Type)
	if err != nil {
		return trace.Record{}, fmt.Errorf("row %d: %w", r.Seq, err)
	}
	return trace.Record{
		Timestep: r.Timestep,
		Kind:     kind,
		ID:       r.ID,
		X:        r.X,
		Y:        r.Y,
		State:    trace.BeeState(r.State),
		Nectar:   r.Nectar,
	}, nil
}

// SaveRecords replaces the stored records with t, keeping its order.
func (db *DB) SaveRecords(t trace.Table) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM records"); err != nil {
		return err
	}

	stmt, err := tx.Preparex(`INSERT INTO records
		(seq, timestep, type, id, x, y, state, nectar)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range t {
		_, err := stmt.Exec(i, r.Timestep, r.Kind.String(), r.ID, r.X, r.Y, int(r.State), r.Nectar)
		if err != nil {
			return fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// Records returns every record in arrival order.
func (db *DB) Records() (trace.Table, error) {
	var rows []recordRow
	if err := db.conn.Select(&rows, "SELECT * FROM records ORDER BY seq"); err != nil {
		return nil, err
	}
	return toTable(rows)
}

// RecordsAt returns the records of one timestep in arrival order.
func (db *DB) RecordsAt(ts int) (trace.Table, error) {
	var rows []recordRow
	if err := db.conn.Select(&rows, "SELECT * FROM records WHERE timestep = ? ORDER BY seq", ts); err != nil {
		return nil, err
	}
	return toTable(rows)
}

// Timesteps returns the distinct timesteps in ascending order.
func (db *DB) Timesteps() ([]int, error) {
	var steps []int
	if err := db.conn.Select(&steps, "SELECT DISTINCT timestep FROM records ORDER BY timestep"); err != nil {
		return nil, err
	}
	return steps, nil
}

func (db *DB) Count() (int, error) {
	var n int
	err := db.conn.Get(&n, "SELECT COUNT(*) FROM records")
	return n, err
}

func toTable(rows []recordRow) (trace.Table, error) {
	t := make(trace.Table, 0, len(rows))
	for _, row := range rows {
		r, err := row.record()
		if err != nil {
			return nil, err
		}
		t = append(t, r)
	}
	return t, nil
}
