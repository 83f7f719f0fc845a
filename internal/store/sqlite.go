// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mistakebook/backend/internal/domain/question"
)

const schema = `
CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    subject TEXT NOT NULL,
    question_text TEXT NOT NULL,
    image_url TEXT NOT NULL DEFAULT '',
    user_answer TEXT NOT NULL DEFAULT '',
    correct_answer TEXT NOT NULL DEFAULT '',
    explanation TEXT NOT NULL DEFAULT '',
    difficulty TEXT NOT NULL DEFAULT 'medium',
    status TEXT NOT NULL DEFAULT 'pending',
    practice_count INTEGER NOT NULL DEFAULT 0,
    correct_count INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_questions_status ON questions(status);
CREATE INDEX IF NOT EXISTS idx_questions_subject ON questions(subject);
`

type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check: *SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const questionColumns = `id, subject, question_text, image_url, user_answer, correct_answer,
	explanation, difficulty, status, practice_count, correct_count, created_at, updated_at`

func (s *SQLiteStore) SaveQuestion(ctx context.Context, q *question.Question) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO questions (`+questionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.Subject, q.QuestionText, q.ImageURL, q.UserAnswer, q.CorrectAnswer,
		q.Explanation, string(q.Difficulty), string(q.Status), q.PracticeCount, q.CorrectCount,
		formatTime(q.CreatedAt), formatTime(q.UpdatedAt),
	)
	return err
}

func (s *SQLiteStore) GetQuestion(ctx context.Context, id string) (*question.Question, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+questionColumns+" FROM questions WHERE id = ?", id)
	q, err := scanQuestion(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (s *SQLiteStore) ListQuestions(ctx context.Context, f QuestionFilter) ([]*question.Question, error) {
	query := "SELECT " + questionColumns + " FROM questions"
	var (
		clauses []string
		args    []any
	)
	if f.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, f.Status)
	}
	if f.Subject != "" {
		clauses = append(clauses, "subject = ?")
		args = append(args, f.Subject)
	}
	for i, c := range clauses {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []*question.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *SQLiteStore) UpdateQuestion(ctx context.Context, q *question.Question) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE questions SET
			subject = ?, question_text = ?, image_url = ?, user_answer = ?,
			correct_answer = ?, explanation = ?, difficulty = ?, status = ?,
			practice_count = ?, correct_count = ?, updated_at = ?
		WHERE id = ?`,
		q.Subject, q.QuestionText, q.ImageURL, q.UserAnswer,
		q.CorrectAnswer, q.Explanation, string(q.Difficulty), string(q.Status),
		q.PracticeCount, q.CorrectCount, formatTime(q.UpdatedAt),
		q.ID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) DeleteQuestion(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM questions WHERE id = ?", id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ============================================================================
// Row scanning
// ============================================================================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (*question.Question, error) {
	var (
		q                    question.Question
		difficulty, status   string
		createdAt, updatedAt string
	)
	err := row.Scan(
		&q.ID, &q.Subject, &q.QuestionText, &q.ImageURL, &q.UserAnswer, &q.CorrectAnswer,
		&q.Explanation, &difficulty, &status, &q.PracticeCount, &q.CorrectCount,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	q.Difficulty = question.Difficulty(difficulty)
	q.Status = question.Status(status)

	if q.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("question %s: bad created_at: %w", q.ID, err)
	}
	if q.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("question %s: bad updated_at: %w", q.ID, err)
	}
	return &q, nil
}

// Timestamps are stored as fixed-width RFC 3339 text so created_at
// sorts lexicographically in the newest-first listing.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}
