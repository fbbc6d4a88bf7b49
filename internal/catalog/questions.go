package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry is a catalog question row. Unlike a generated question it
// carries targeting metadata so the surrounding application can filter
// by audience.
type Entry struct {
	ID             string   `json:"id"`
	Category       string   `json:"category"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	CorrectAnswer  string   `json:"correctAnswer"`
	Explanation    string   `json:"explanation,omitempty"`
	Difficulty     int      `json:"difficulty"`
	AgeRange       string   `json:"ageRange,omitempty"`
	EducationLevel string   `json:"educationLevel,omitempty"`
	CreatedAt      int64    `json:"createdAt"`
}

// Filter narrows a catalog listing. Zero values mean "no constraint".
type Filter struct {
	Category       string
	Difficulty     int
	AgeRange       string
	EducationLevel string
	Limit          int
	Offset         int
}

const defaultListLimit = 10

// Create inserts a question. An empty ID gets a fresh UUID; the stored
// entry is returned.
func (s *Store) Create(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().Unix()
	}

	optionsJSON, err := json.Marshal(e.Options)
	if err != nil {
		return Entry{}, fmt.Errorf("marshal options: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO questions
			(id, category, question, options_json, correct_answer, explanation, difficulty, age_range, education_level, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Category, e.Question, string(optionsJSON), e.CorrectAnswer,
		e.Explanation, e.Difficulty, e.AgeRange, e.EducationLevel, e.CreatedAt,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert question: %w", err)
	}
	return e, nil
}

// List returns catalog questions matching the filter, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]Entry, error) {
	query := `SELECT id, category, question, options_json, correct_answer, explanation, difficulty, age_range, education_level, created_at
		FROM questions WHERE 1=1`
	var args []any

	if f.Category != "" {
		query += " AND category = ?"
		args = append(args, f.Category)
	}
	if f.Difficulty != 0 {
		query += " AND difficulty = ?"
		args = append(args, f.Difficulty)
	}
	if f.AgeRange != "" {
		query += " AND age_range = ?"
		args = append(args, f.AgeRange)
	}
	if f.EducationLevel != "" {
		query += " AND education_level = ?"
		args = append(args, f.EducationLevel)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	query += " ORDER BY created_at DESC, id LIMIT ? OFFSET ?"
	args = append(args, limit, f.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var optionsJSON string
		if err := rows.Scan(&e.ID, &e.Category, &e.Question, &optionsJSON, &e.CorrectAnswer,
			&e.Explanation, &e.Difficulty, &e.AgeRange, &e.EducationLevel, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if err := json.Unmarshal([]byte(optionsJSON), &e.Options); err != nil {
			return nil, fmt.Errorf("decode options for %s: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of questions matching the filter, ignoring
// pagination. Used for list pagination metadata.
func (s *Store) Count(ctx context.Context, f Filter) (int, error) {
	query := `SELECT COUNT(*) FROM questions WHERE 1=1`
	var args []any

	if f.Category != "" {
		query += " AND category = ?"
		args = append(args, f.Category)
	}
	if f.Difficulty != 0 {
		query += " AND difficulty = ?"
		args = append(args, f.Difficulty)
	}
	if f.AgeRange != "" {
		query += " AND age_range = ?"
		args = append(args, f.AgeRange)
	}
	if f.EducationLevel != "" {
		query += " AND education_level = ?"
		args = append(args, f.EducationLevel)
	}

	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}
