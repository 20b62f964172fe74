package pets

import "context"

// Repository mantiene la colección ordenada (orden de inserción) de mascotas.
// Update y Delete actúan sobre la primera coincidencia exacta de id y devuelven
// ErrNotFound si no hay ninguna.
type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	Update(ctx context.Context, id string, apply func(*Pet)) error
	Delete(ctx context.Context, id string) error
}
