package members

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/TuancoderLo/perfume-api/pkg/db/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupMembersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Member{}))

	return gdb
}

func TestRepositoryCreateAssignsID(t *testing.T) {
	repo := NewRepository(setupMembersTestDB(t))

	created, err := repo.Create(context.Background(), &models.Member{
		Name:         "Riley",
		Email:        "riley@example.com",
		PasswordHash: "hash",
		YearOfBirth:  1994,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "riley@example.com", found.Email)
}

func TestRepositoryFindByEmail(t *testing.T) {
	repo := NewRepository(setupMembersTestDB(t))

	_, err := repo.Create(context.Background(), &models.Member{
		Name:         "Riley",
		Email:        "riley@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	found, err := repo.FindByEmail(context.Background(), "riley@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Riley", found.Name)

	_, err = repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryFindByGoogleID(t *testing.T) {
	repo := NewRepository(setupMembersTestDB(t))

	subject := "google-subject-1"
	_, err := repo.Create(context.Background(), &models.Member{
		Name:         "Riley",
		Email:        "riley@example.com",
		PasswordHash: "hash",
		GoogleID:     &subject,
	})
	require.NoError(t, err)

	found, err := repo.FindByGoogleID(context.Background(), subject)
	require.NoError(t, err)
	assert.Equal(t, "riley@example.com", found.Email)

	_, err = repo.FindByGoogleID(context.Background(), "missing-subject")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryDuplicateEmailRejected(t *testing.T) {
	repo := NewRepository(setupMembersTestDB(t))

	_, err := repo.Create(context.Background(), &models.Member{
		Name:         "Riley",
		Email:        "riley@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), &models.Member{
		Name:         "Other",
		Email:        "riley@example.com",
		PasswordHash: "hash",
	})
	assert.Error(t, err)
}

func TestRepositorySavePersistsModeration(t *testing.T) {
	repo := NewRepository(setupMembersTestDB(t))

	created, err := repo.Create(context.Background(), &models.Member{
		Name:         "Riley",
		Email:        "riley@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	admin := uuid.New()
	created.IsBlocked = true
	created.BlockedAt = &now
	created.BlockedBy = &admin
	created.BlockReason = "spam"
	require.NoError(t, repo.Save(context.Background(), created))

	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, found.IsBlocked)
	assert.Equal(t, "spam", found.BlockReason)
	require.NotNil(t, found.BlockedBy)
	assert.Equal(t, admin, *found.BlockedBy)
}

func TestRepositoryListFilters(t *testing.T) {
	repo := NewRepository(setupMembersTestDB(t))
	ctx := context.Background()

	seed := []models.Member{
		{Name: "a", Email: "a@example.com", PasswordHash: "hash"},
		{Name: "b", Email: "b@example.com", PasswordHash: "hash", IsBlocked: true},
		{Name: "c", Email: "c@example.com", PasswordHash: "hash", IsAdmin: true},
	}
	for i := range seed {
		_, err := repo.Create(ctx, &seed[i])
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	blocked := true
	onlyBlocked, err := repo.List(ctx, ListFilter{Blocked: &blocked})
	require.NoError(t, err)
	require.Len(t, onlyBlocked, 1)
	assert.Equal(t, "b@example.com", onlyBlocked[0].Email)

	admin := true
	onlyAdmins, err := repo.List(ctx, ListFilter{Admin: &admin})
	require.NoError(t, err)
	require.Len(t, onlyAdmins, 1)
	assert.Equal(t, "c@example.com", onlyAdmins[0].Email)

	limited, err := repo.List(ctx, ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
