package pets

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("pet not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput llega sin validar: campos ausentes quedan en su zero value.
type CreateInput struct {
	ID   string
	Name string
	Age  float64
	Size Size
}

// UpdateInput usa punteros para PUT parcial: nil = no tocar.
type UpdateInput struct {
	ID   *string
	Name *string
	Age  *float64
	Size *Size
}

func (in UpdateInput) applyTo(p *Pet) {
	if in.ID != nil {
		p.ID = *in.ID
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.Size != nil {
		p.Size = *in.Size
	}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	p := Pet{
		ID:   in.ID,
		Name: in.Name,
		Age:  in.Age,
		Size: in.Size,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Search devuelve toda la colección si name viene vacío; si no, las mascotas
// cuyo nombre contiene name sin distinguir mayúsculas. Siempre es un slice nuevo.
func (s *Service) Search(ctx context.Context, name string) ([]Pet, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return all, nil
	}

	needle := strings.ToLower(name)
	out := make([]Pet, 0)
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// Update aplica solo los campos presentes. Devuelve ErrNotFound si no existe
// la mascota; el handler decide si eso se informa al cliente.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) error {
	return s.repo.Update(ctx, id, in.applyTo)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
