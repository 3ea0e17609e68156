// File: store.go
// Role: SQLite-backed Sink. One row per solution, one row per link, written
//       in a transaction so a failed record leaves no partial solution.

package record

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/netknit/netknit/core"
)

const storeSchema = `
CREATE TABLE IF NOT EXISTS solutions (
    id          TEXT PRIMARY KEY,
    link_count  INTEGER NOT NULL,
    recorded_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS solution_links (
    solution_id TEXT NOT NULL,
    point_a     TEXT NOT NULL,
    connector_a TEXT NOT NULL,
    point_b     TEXT NOT NULL,
    connector_b TEXT NOT NULL,
    PRIMARY KEY (solution_id, point_a, connector_a, point_b, connector_b)
);
CREATE INDEX IF NOT EXISTS idx_solution_links_solution ON solution_links(solution_id);
`

// LinkRecord is one persisted link row in canonical endpoint order, with
// connectors in their compact text form ("c1+").
type LinkRecord struct {
	PointA     string
	ConnectorA string
	PointB     string
	ConnectorB string
}

// Store persists solutions to SQLite. Count reports this process's records;
// SolutionCount queries the database, so it also sees earlier runs.
type Store struct {
	db       *sql.DB
	recorded int
}

// OpenStore opens (creating if needed) the SQLite database at path and
// ensures the schema exists.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("record: open %s: %w", path, err)
	}
	st, err := NewStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// NewStore wraps an existing database handle and ensures the schema exists.
// The caller keeps ownership of db unless the store came from OpenStore.
func NewStore(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(storeSchema); err != nil {
		return nil, fmt.Errorf("record: schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record writes the frame's linkage as one solution.
func (s *Store) Record(f *core.Frame) error {
	// 1. One transaction per solution: all links or none.
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("record: begin: %w", err)
	}

	id := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err = tx.Exec(
		`INSERT INTO solutions (id, link_count, recorded_at) VALUES (?, ?, ?)`,
		id, len(f.Linkage), now,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("record: insert solution: %w", err)
	}

	// 2. One row per link; duplicates within a solution collapse on the
	//    primary key.
	for _, l := range f.Linkage {
		if _, err = tx.Exec(
			`INSERT OR IGNORE INTO solution_links
			   (solution_id, point_a, connector_a, point_b, connector_b)
			 VALUES (?, ?, ?, ?, ?)`,
			id, l.A.Point, l.A.Connector.String(), l.B.Point, l.B.Connector.String(),
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("record: insert link: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("record: commit: %w", err)
	}
	s.recorded++
	return nil
}

// Count returns the number of solutions this store recorded in-process.
func (s *Store) Count() int { return s.recorded }

// SolutionCount returns the number of solution rows in the database.
func (s *Store) SolutionCount() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM solutions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("record: count: %w", err)
	}
	return n, nil
}

// SolutionIDs returns all solution ids ordered by record time, oldest first.
func (s *Store) SolutionIDs() ([]string, error) {
	rows, err := s.db.Query(`SELECT id FROM solutions ORDER BY recorded_at, id`)
	if err != nil {
		return nil, fmt.Errorf("record: ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Links returns the persisted link rows of one solution, ordered by the
// canonical endpoint columns.
func (s *Store) Links(solutionID string) ([]LinkRecord, error) {
	rows, err := s.db.Query(
		`SELECT point_a, connector_a, point_b, connector_b
		 FROM solution_links
		 WHERE solution_id = ?
		 ORDER BY point_a, connector_a, point_b, connector_b`,
		solutionID,
	)
	if err != nil {
		return nil, fmt.Errorf("record: links: %w", err)
	}
	defer rows.Close()

	var links []LinkRecord
	for rows.Next() {
		var lr LinkRecord
		if err := rows.Scan(&lr.PointA, &lr.ConnectorA, &lr.PointB, &lr.ConnectorB); err != nil {
			return nil, err
		}
		links = append(links, lr)
	}
	return links, rows.Err()
}

// Close closes the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }
