// Package sheet provides the interface for character sheet persistence
package sheet

//go:generate mockgen -destination=mock/mock_repository.go -package=sheetmock github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet Repository

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/character"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Record is a stored sheet: its identity plus the engine's serialised state
type Record struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	Name      string          `json:"name"`
	Data      *character.Data `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Repository defines the interface for sheet persistence
type Repository interface {
	// Create stores a new sheet and stamps its created and updated times
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a sheet with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a sheet by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the sheet doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a stored sheet and stamps its updated time
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the sheet doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a sheet by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the sheet doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwner retrieves an owner's sheets, oldest first
	// Returns errors.InvalidArgument for an empty owner ID
	// Returns errors.Internal for storage failures
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)
}

// CreateInput defines the input for creating a sheet
type CreateInput struct {
	Record *Record
}

// CreateOutput defines the output for creating a sheet
type CreateOutput struct {
	Record *Record
}

// GetInput defines the input for getting a sheet
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a sheet
type GetOutput struct {
	Record *Record
}

// UpdateInput defines the input for updating a sheet
type UpdateInput struct {
	Record *Record
}

// UpdateOutput defines the output for updating a sheet
type UpdateOutput struct {
	Record *Record
}

// DeleteInput defines the input for deleting a sheet
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a sheet
type DeleteOutput struct{}

// ListByOwnerInput defines the input for listing an owner's sheets
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the output for listing an owner's sheets
type ListByOwnerOutput struct {
	Records []*Record
}

const (
	errRecordNil     = "sheet record cannot be nil"
	errSheetIDEmpty  = "sheet ID cannot be empty"
	errOwnerIDEmpty  = "owner ID cannot be empty"
	errSheetDataNil  = "sheet data cannot be nil"
	errConfigNil     = "config cannot be nil"
	errClientNil     = "client cannot be nil"
	errSQLitePathNil = "sqlite path cannot be empty"
)

func validateRecord(r *Record) error {
	if r == nil {
		return errors.InvalidArgument(errRecordNil)
	}
	if r.ID == "" {
		return errors.InvalidArgument(errSheetIDEmpty)
	}
	if r.OwnerID == "" {
		return errors.InvalidArgument(errOwnerIDEmpty)
	}
	if r.Data == nil {
		return errors.InvalidArgument(errSheetDataNil)
	}
	return nil
}

func sortRecords(records []*Record) {
	slices.SortFunc(records, func(a, b *Record) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
