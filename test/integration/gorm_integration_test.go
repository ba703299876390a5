package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"collabnotes-be/internal/apperror"
	"collabnotes-be/internal/entity"
	"collabnotes-be/internal/repository/specification"
	"collabnotes-be/internal/repository/unitofwork"
	"collabnotes-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.NoteRepository())
	assert.NotNil(t, uow.CollaboratorRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Note Repository", func(t *testing.T) {
		count, err := uow.NoteRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Note count: %d", count)
	})
}

func TestCollaborationRoundTrip(t *testing.T) {
	_ = godotenv.Load("../../.env")

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(ctx)

	require.NoError(t, uow.Begin(ctx))
	// Roll everything back so repeated runs stay clean.
	defer uow.Rollback()

	stamp := time.Now().UnixNano()

	owner := &entity.User{
		Email:        fmt.Sprintf("it-owner-%d@example.com", stamp),
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, uow.UserRepository().Create(ctx, owner))
	require.NotZero(t, owner.Id)

	collaborator := &entity.User{
		Email:        fmt.Sprintf("it-collab-%d@example.com", stamp),
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, uow.UserRepository().Create(ctx, collaborator))

	note := &entity.Note{
		Title:   "integration note",
		Content: "round trip",
		OwnerId: owner.Id,
	}
	require.NoError(t, uow.NoteRepository().Create(ctx, note))
	require.NotZero(t, note.Id)

	row := &entity.NoteCollaborator{NoteId: note.Id, UserId: collaborator.Id}
	require.NoError(t, uow.CollaboratorRepository().Create(ctx, row))

	t.Run("preload resolves collaborator rows", func(t *testing.T) {
		loaded, err := uow.NoteRepository().FindOne(ctx,
			specification.ByID{ID: note.Id},
			specification.WithCollaborators{},
		)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.True(t, loaded.IsCollaborator(collaborator.Id))
	})

	t.Run("join resolves shared notes", func(t *testing.T) {
		shared, err := uow.CollaboratorRepository().FindNotesForCollaborator(ctx, collaborator.Id)
		require.NoError(t, err)
		require.Len(t, shared, 1)
		assert.Equal(t, note.Id, shared[0].Id)
	})

	t.Run("unique index rejects duplicate pair", func(t *testing.T) {
		dup := &entity.NoteCollaborator{NoteId: note.Id, UserId: collaborator.Id}
		err := uow.CollaboratorRepository().Create(ctx, dup)
		require.Error(t, err)
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	})
}
