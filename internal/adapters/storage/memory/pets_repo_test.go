package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"pets-api/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func seed() []pets.Pet {
	return []pets.Pet{
		{ID: "1", Name: "Rex", Age: 3, Size: pets.SizeMedium},
		{ID: "2", Name: "Mia", Age: 1, Size: pets.SizeSmall},
		{ID: "1", Name: "Rex Duplicate", Age: 9, Size: pets.SizeLarge},
	}
}

func TestPetRepo_SeedIsCopied(t *testing.T) {
	s := seed()
	r := NewPetRepo(s)

	s[0].Name = "mutated"

	p, err := r.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Rex", p.Name)
}

func TestPetRepo_ListKeepsInsertionOrderAndIsACopy(t *testing.T) {
	ctx := context.Background()
	r := NewPetRepo(seed())
	require.NoError(t, r.Create(ctx, pets.Pet{ID: "9", Name: "Zed"}))

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "Zed", got[3].Name)

	got[0].Name = "changed"
	again, _ := r.List(ctx)
	assert.Equal(t, "Rex", again[0].Name)
}

func TestPetRepo_GetByIDReturnsFirstMatch(t *testing.T) {
	r := NewPetRepo(seed())

	p, err := r.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Rex", p.Name)

	_, err = r.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestPetRepo_UpdateAppliesInPlace(t *testing.T) {
	ctx := context.Background()
	r := NewPetRepo(seed())

	require.NoError(t, r.Update(ctx, "2", func(p *pets.Pet) { p.Age = 0 }))

	p, _ := r.GetByID(ctx, "2")
	assert.Equal(t, float64(0), p.Age)
	assert.Equal(t, "Mia", p.Name)

	called := false
	err := r.Update(ctx, "missing", func(*pets.Pet) { called = true })
	assert.ErrorIs(t, err, pets.ErrNotFound)
	assert.False(t, called)
}

func TestPetRepo_DeleteRemovesOnlyFirstMatch(t *testing.T) {
	ctx := context.Background()
	r := NewPetRepo(seed())

	require.NoError(t, r.Delete(ctx, "1"))
	assert.Equal(t, 2, r.Len())

	// el duplicado sigue ahí y ahora es la primera coincidencia
	p, err := r.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Rex Duplicate", p.Name)

	all, _ := r.List(ctx)
	assert.Equal(t, []string{"Mia", "Rex Duplicate"}, []string{all[0].Name, all[1].Name})

	assert.ErrorIs(t, r.Delete(ctx, "missing"), pets.ErrNotFound)
	assert.Equal(t, 2, r.Len())
}

func TestPetRepo_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	r := NewPetRepo([]pets.Pet{{ID: "counter", Age: 0}})

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = r.Update(ctx, "counter", func(p *pets.Pet) { p.Age++ })
			_ = r.Create(ctx, pets.Pet{ID: fmt.Sprintf("p-%d", i)})
			_, _ = r.List(ctx)
		}(i)
	}
	wg.Wait()

	p, err := r.GetByID(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, float64(workers), p.Age)
	assert.Equal(t, workers+1, r.Len())
}
