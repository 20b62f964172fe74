package memory

import (
	"context"
	"slices"
	"sync"

	"pets-api/internal/domain/pets"
)

// PetRepo guarda las mascotas en un slice (orden de inserción).
// Cada operación toma el lock completo, así que find + modificar es atómico
// aunque net/http atienda requests en paralelo.
type PetRepo struct {
	mu    sync.RWMutex
	items []pets.Pet
}

// NewPetRepo copia seed para que el caller no comparta el backing array.
func NewPetRepo(seed []pets.Pet) *PetRepo {
	return &PetRepo{
		items: slices.Clone(seed),
	}
}

func (r *PetRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *PetRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, p)
	return nil
}

func (r *PetRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return pets.Pet{}, pets.ErrNotFound
	}
	return r.items[i], nil
}

func (r *PetRepo) Update(ctx context.Context, id string, apply func(*pets.Pet)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return pets.ErrNotFound
	}
	apply(&r.items[i])
	return nil
}

func (r *PetRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return pets.ErrNotFound
	}
	r.removeAt(i)
	return nil
}

// Len es útil en tests y métricas.
func (r *PetRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// indexOf y removeAt asumen que el caller ya tiene el lock.
func (r *PetRepo) indexOf(id string) int {
	return slices.IndexFunc(r.items, func(p pets.Pet) bool { return p.ID == id })
}

func (r *PetRepo) removeAt(i int) {
	r.items = slices.Delete(r.items, i, i+1)
}
