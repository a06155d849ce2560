package daily

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var ErrNotFound = errors.New("daily: no puzzle archived for date")

// Puzzle is one archived daily crossword.
type Puzzle struct {
	Date      string    `json:"date"`
	Seed      int64     `json:"seed"`
	WordCount int       `json:"wordCount"`
	JSON      []byte    `json:"-"`
	Puz       []byte    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Get returns the archived puzzle for date, or ErrNotFound.
func (s *Store) Get(ctx context.Context, date string) (*Puzzle, error) {
	var p Puzzle
	err := s.db.QueryRowContext(ctx,
		`SELECT date, seed, word_count, json, puz, created_at FROM daily_puzzles WHERE date=?`,
		date,
	).Scan(&p.Date, &p.Seed, &p.WordCount, &p.JSON, &p.Puz, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Insert archives p. An existing row for the same date wins; the return value
// reports whether p was stored.
func (s *Store) Insert(ctx context.Context, p Puzzle) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_puzzles(date, seed, word_count, json, puz)
		VALUES(?,?,?,?,?)`, p.Date, p.Seed, p.WordCount, p.JSON, p.Puz,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// List returns archived puzzles newest date first, without the file bodies.
func (s *Store) List(ctx context.Context, limit int) ([]Puzzle, error) {
	if limit <= 0 {
		limit = 30
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, seed, word_count, created_at
		FROM daily_puzzles
		ORDER BY date DESC
		LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]Puzzle, 0, limit)
	for rows.Next() {
		var p Puzzle
		if err := rows.Scan(&p.Date, &p.Seed, &p.WordCount, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
