// internal/store/store.go
//
// Persistence of in-progress game sessions.
// A session is stored as the calendar day it was started on plus the guesses
// accepted so far. Rounds are regenerated from the day and the guesses replayed,
// so nothing else needs saving. Finished sessions are not aggregated anywhere.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Record is one stored session.
type Record struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`    // YYYY-MM-DD the rounds were generated for
	Guesses   []int     `json:"guesses"` // accepted guesses, in round order
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewRecord starts an empty session for date.
func NewRecord(date string, now time.Time) *Record {
	now = now.UTC()
	return &Record{
		ID:        uuid.NewString(),
		Date:      date,
		Guesses:   []int{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Store defines the persistence interface for sessions.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, r *Record) error

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Record, error)

	// Delete removes a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases the backing resources.
	Close() error
}

func clone(r *Record) *Record {
	c := *r
	c.Guesses = append([]int{}, r.Guesses...)
	return &c
}
