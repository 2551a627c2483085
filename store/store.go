// Package store is the persistence layer for questionnaire submissions
// and examination records, backed by SQLite. The rule engines never
// touch this package; controllers pass them plain data loaded here.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mgrabka/preop-intake/model"
)

// ErrNotFound marks lookups for ids that are not in the database.
var ErrNotFound = errors.New("not found")

// SubmissionStore persists patient questionnaire submissions and
// notifies subscribers on every change. Safe for concurrent use.
type SubmissionStore struct {
	db *sql.DB

	mu        sync.Mutex
	nextSub   int
	listeners map[int]func()
}

func NewSubmissions(db *sql.DB) *SubmissionStore {
	return &SubmissionStore{
		db:        db,
		listeners: map[int]func(){},
	}
}

// Subscribe registers a callback invoked after every successful write.
// The returned function removes the subscription.
func (s *SubmissionStore) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *SubmissionStore) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Submit stores a new submission with a fresh id and status
// "submitted", then notifies subscribers.
func (s *SubmissionStore) Submit(ctx context.Context, patient model.PatientData) (model.Submission, error) {
	submission := model.Submission{
		ID:          uuid.NewString(),
		SubmittedAt: time.Now().UTC(),
		Patient:     patient,
		Status:      model.StatusSubmitted,
	}

	patientJson, err := json.Marshal(submission.Patient)
	if err != nil {
		return model.Submission{}, fmt.Errorf("marshal patient data: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO submission (id, submitted_at, patient, status)
		VALUES (?, ?, ?, ?)`,
		submission.ID,
		submission.SubmittedAt,
		string(patientJson),
		string(submission.Status),
	)
	if err != nil {
		return model.Submission{}, err
	}

	s.notify()
	return submission, nil
}

// All returns every submission, newest first.
func (s *SubmissionStore) All(ctx context.Context) ([]model.Submission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, submitted_at, patient, status
		FROM submission
		ORDER BY submitted_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := []model.Submission{}
	for rows.Next() {
		submission, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, submission)
	}
	return submissions, rows.Err()
}

// ByID returns one submission or ErrNotFound.
func (s *SubmissionStore) ByID(ctx context.Context, id string) (model.Submission, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, submitted_at, patient, status
		FROM submission
		WHERE id = ?`,
		id,
	)
	submission, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Submission{}, ErrNotFound
	}
	return submission, err
}

// UpdateStatus moves a submission to a new workflow status and notifies
// subscribers. Unknown ids return ErrNotFound.
func (s *SubmissionStore) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE submission
		SET status = ?
		WHERE id = ?`,
		string(status),
		id,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n < 1 {
		return ErrNotFound
	}

	s.notify()
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (model.Submission, error) {
	var (
		submission  model.Submission
		patientJson string
		status      string
	)
	err := row.Scan(&submission.ID, &submission.SubmittedAt, &patientJson, &status)
	if err != nil {
		return model.Submission{}, err
	}

	err = json.Unmarshal([]byte(patientJson), &submission.Patient)
	if err != nil {
		return model.Submission{}, fmt.Errorf("unmarshal patient data: %w", err)
	}
	submission.Status = model.Status(status)
	return submission, nil
}
