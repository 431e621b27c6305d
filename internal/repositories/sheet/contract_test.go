package sheet_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

// RepositoryContractSuite runs the same behavior checks against every backend
type RepositoryContractSuite struct {
	suite.Suite
	newRepo func(c clock.Clock) (sheet.Repository, func())

	ctx     context.Context
	clock   *clock.Manual
	repo    sheet.Repository
	cleanup func()
}

func TestRedisRepositoryContract(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func(c clock.Clock) (sheet.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := sheet.NewRedis(&sheet.RedisConfig{Client: client, Clock: c})
			if err != nil {
				t.Fatalf("failed to create redis repository: %v", err)
			}
			return repo, cleanup
		},
	})
}

func TestSQLiteRepositoryContract(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func(c clock.Clock) (sheet.Repository, func()) {
			repo, err := sheet.NewSQLite(&sheet.SQLiteConfig{
				Path:  filepath.Join(t.TempDir(), "sheets.db"),
				Clock: c,
			})
			if err != nil {
				t.Fatalf("failed to create sqlite repository: %v", err)
			}
			return repo, func() { _ = repo.Close() }
		},
	})
}

func (s *RepositoryContractSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewManual(testutils.TestTime)
	s.repo, s.cleanup = s.newRepo(s.clock)
}

func (s *RepositoryContractSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryContractSuite) create(id, owner string) *sheet.Record {
	out, err := s.repo.Create(s.ctx, sheet.CreateInput{
		Record: builders.NewSheetBuilder().WithID(id).WithOwnerID(owner).WithStrength(12).BuildRecord(),
	})
	s.Require().NoError(err)
	return out.Record
}

func (s *RepositoryContractSuite) TestCreateAndGet() {
	s.clock.Advance(time.Minute)
	created := s.create("sheet-1", "owner-1")
	s.True(created.CreatedAt.Equal(testutils.TestTime.Add(time.Minute)))
	s.True(created.UpdatedAt.Equal(created.CreatedAt))

	out, err := s.repo.Get(s.ctx, sheet.GetInput{ID: "sheet-1"})
	s.Require().NoError(err)
	s.Equal("sheet-1", out.Record.ID)
	s.Equal("owner-1", out.Record.OwnerID)
	s.Equal("Test Sheet", out.Record.Name)
	s.Require().NotNil(out.Record.Data.Strength)
	s.Equal(12, *out.Record.Data.Strength)
	s.True(out.Record.CreatedAt.Equal(created.CreatedAt))
	s.True(out.Record.Data.CreatedOn.Equal(testutils.TestTime))

	s.Run("duplicate IDs are rejected", func() {
		_, err := s.repo.Create(s.ctx, sheet.CreateInput{
			Record: builders.NewSheetBuilder().WithID("sheet-1").BuildRecord(),
		})
		s.True(errors.IsAlreadyExists(err))
	})
}

func (s *RepositoryContractSuite) TestCreateValidation() {
	testCases := []struct {
		name   string
		record *sheet.Record
	}{
		{name: "nil record", record: nil},
		{name: "empty ID", record: builders.NewSheetBuilder().WithID("").BuildRecord()},
		{name: "empty owner", record: builders.NewSheetBuilder().WithOwnerID("").BuildRecord()},
		{name: "nil data", record: &sheet.Record{ID: "x", OwnerID: "o"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.repo.Create(s.ctx, sheet.CreateInput{Record: tc.record})
			s.Nil(out)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RepositoryContractSuite) TestGetErrors() {
	_, err := s.repo.Get(s.ctx, sheet.GetInput{ID: ""})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, sheet.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryContractSuite) TestUpdate() {
	created := s.create("sheet-1", "owner-1")

	s.clock.Advance(time.Hour)
	record := *created
	record.Name = "Renamed"
	dx := 13
	record.Data.Dexterity = &dx

	out, err := s.repo.Update(s.ctx, sheet.UpdateInput{Record: &record})
	s.Require().NoError(err)
	s.True(out.Record.CreatedAt.Equal(created.CreatedAt))
	s.True(out.Record.UpdatedAt.Equal(testutils.TestTime.Add(time.Hour)))

	got, err := s.repo.Get(s.ctx, sheet.GetInput{ID: "sheet-1"})
	s.Require().NoError(err)
	s.Equal("Renamed", got.Record.Name)
	s.Equal(13, *got.Record.Data.Dexterity)
	s.True(got.Record.UpdatedAt.Equal(out.Record.UpdatedAt))

	s.Run("missing sheets are not found", func() {
		_, err := s.repo.Update(s.ctx, sheet.UpdateInput{
			Record: builders.NewSheetBuilder().WithID("missing").BuildRecord(),
		})
		s.True(errors.IsNotFound(err))
	})
}

func (s *RepositoryContractSuite) TestUpdateMovesOwner() {
	created := s.create("sheet-1", "owner-1")
	created.OwnerID = "owner-2"

	_, err := s.repo.Update(s.ctx, sheet.UpdateInput{Record: created})
	s.Require().NoError(err)

	old, err := s.repo.ListByOwner(s.ctx, sheet.ListByOwnerInput{OwnerID: "owner-1"})
	s.Require().NoError(err)
	s.Empty(old.Records)

	moved, err := s.repo.ListByOwner(s.ctx, sheet.ListByOwnerInput{OwnerID: "owner-2"})
	s.Require().NoError(err)
	s.Require().Len(moved.Records, 1)
	s.Equal("sheet-1", moved.Records[0].ID)
}

func (s *RepositoryContractSuite) TestDelete() {
	s.create("sheet-1", "owner-1")

	_, err := s.repo.Delete(s.ctx, sheet.DeleteInput{ID: "sheet-1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, sheet.GetInput{ID: "sheet-1"})
	s.True(errors.IsNotFound(err))

	list, err := s.repo.ListByOwner(s.ctx, sheet.ListByOwnerInput{OwnerID: "owner-1"})
	s.Require().NoError(err)
	s.Empty(list.Records)

	_, err = s.repo.Delete(s.ctx, sheet.DeleteInput{ID: "sheet-1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, sheet.DeleteInput{ID: ""})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryContractSuite) TestListByOwner() {
	s.create("sheet-b", "owner-1")
	s.clock.Advance(time.Minute)
	s.create("sheet-a", "owner-1")
	s.create("sheet-c", "owner-1")
	s.create("sheet-x", "owner-2")

	out, err := s.repo.ListByOwner(s.ctx, sheet.ListByOwnerInput{OwnerID: "owner-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 3)
	// oldest first, ties broken by ID
	s.Equal("sheet-b", out.Records[0].ID)
	s.Equal("sheet-a", out.Records[1].ID)
	s.Equal("sheet-c", out.Records[2].ID)

	none, err := s.repo.ListByOwner(s.ctx, sheet.ListByOwnerInput{OwnerID: "nobody"})
	s.Require().NoError(err)
	s.Empty(none.Records)

	_, err = s.repo.ListByOwner(s.ctx, sheet.ListByOwnerInput{OwnerID: ""})
	s.True(errors.IsInvalidArgument(err))
}
