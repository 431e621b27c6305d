package rpgtoolkit

import "github.com/KirkDiggler/rpg-toolkit/core"

// SheetEntity identifies a character sheet to rpg-toolkit
type SheetEntity struct {
	ID string
}

// GetID returns the sheet's ID
func (s *SheetEntity) GetID() string {
	return s.ID
}

// GetType returns the entity type for rpg-toolkit
func (s *SheetEntity) GetType() string {
	return "sheet"
}

func wrapSheet(id string) *SheetEntity {
	return &SheetEntity{ID: id}
}

// Compile-time check that the wrapper implements core.Entity
var _ core.Entity = (*SheetEntity)(nil)
