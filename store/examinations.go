package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mgrabka/preop-intake/model"
)

// ExaminationStore persists doctor examination records, one per
// submission.
type ExaminationStore struct {
	db *sql.DB
}

func NewExaminations(db *sql.DB) *ExaminationStore {
	return &ExaminationStore{db: db}
}

// Upsert stores the examination for a submission, replacing any
// earlier record. CompletedAt is stamped here.
func (s *ExaminationStore) Upsert(ctx context.Context, exam model.Examination) (model.Examination, error) {
	exam.CompletedAt = time.Now().UTC()

	record, err := json.Marshal(exam)
	if err != nil {
		return model.Examination{}, fmt.Errorf("marshal examination: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO examination (submission_id, record, completed_at)
		VALUES (?, ?, ?)
		ON CONFLICT (submission_id) DO UPDATE
		SET record = excluded.record, completed_at = excluded.completed_at`,
		exam.SubmissionID,
		string(record),
		exam.CompletedAt,
	)
	if err != nil {
		return model.Examination{}, err
	}
	return exam, nil
}

// BySubmission returns the examination for a submission or ErrNotFound.
func (s *ExaminationStore) BySubmission(ctx context.Context, submissionID string) (model.Examination, error) {
	var record string
	err := s.db.QueryRowContext(ctx, `
		SELECT record
		FROM examination
		WHERE submission_id = ?`,
		submissionID,
	).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Examination{}, ErrNotFound
	}
	if err != nil {
		return model.Examination{}, err
	}

	var exam model.Examination
	err = json.Unmarshal([]byte(record), &exam)
	if err != nil {
		return model.Examination{}, fmt.Errorf("unmarshal examination: %w", err)
	}
	return exam, nil
}
