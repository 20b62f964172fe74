package postgres

import (
	"context"
	"os"
	"testing"

	"pets-api/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requiere una base real: PETS_TEST_DB_DSN=postgres://... go test ./...
func newTestRepo(t *testing.T) *PetsRepo {
	t.Helper()

	dsn := os.Getenv("PETS_TEST_DB_DSN")
	if dsn == "" {
		t.Skip("PETS_TEST_DB_DSN not set")
	}

	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, _ = db.Exec(`DROP TABLE IF EXISTS pets`)
	t.Cleanup(func() { _, _ = db.Exec(`DROP TABLE IF EXISTS pets`) })

	repo := NewPetsRepo(db)
	require.NoError(t, repo.EnsureSchema(context.Background(), pets.DefaultSeed()))
	return repo
}

func TestPetsRepo_SeedOnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.EnsureSchema(ctx, pets.DefaultSeed()))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, pets.DefaultSeed(), all)
}

func TestPetsRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(ctx, pets.Pet{ID: "1", Name: "Rex Duplicate", Age: 9, Size: pets.SizeLarge}))

	p, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Rex", p.Name)

	require.NoError(t, repo.Update(ctx, "1", func(p *pets.Pet) { p.Age = 0 }))
	p, _ = repo.GetByID(ctx, "1")
	assert.Equal(t, pets.Pet{ID: "1", Name: "Rex", Age: 0, Size: pets.SizeMedium}, p)

	require.NoError(t, repo.Delete(ctx, "1"))
	p, err = repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Rex Duplicate", p.Name)

	assert.ErrorIs(t, repo.Update(ctx, "missing", func(*pets.Pet) {}), pets.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "missing"), pets.ErrNotFound)
	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, pets.ErrNotFound)
}
