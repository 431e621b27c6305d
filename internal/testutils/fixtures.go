package testutils

import (
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

// Shared fixture values
const (
	TestSheetID   = "sheet-test-001"
	TestOwnerID   = "owner-test-001"
	TestSheetName = "Dai Blackthorn"
)

// TestTime is the instant fixtures are stamped with.
var TestTime = time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC)

// CreateTestRecord returns a stored sheet for ownerID with ST 12, DX 14 and a light pack.
func CreateTestRecord(ownerID string) *sheet.Record {
	return builders.NewSheetBuilder().
		WithOwnerID(ownerID).
		WithStrength(12).
		WithDexterity(14).
		WithCarried("Backpack", 3).
		WithCarried("Rope", 1.5).
		BuildRecord()
}
