package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pets-api/internal/domain/pets"

	"github.com/google/uuid"
)

// El id de la mascota no es único, así que cada fila tiene su propio row_id.
// seq conserva el orden de inserción.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS pets (
	row_id UUID PRIMARY KEY,
	seq    BIGSERIAL NOT NULL,
	id     TEXT NOT NULL,
	name   TEXT NOT NULL,
	age    DOUBLE PRECISION NOT NULL,
	size   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS pets_id_seq_idx ON pets (id, seq);
`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

// EnsureSchema crea la tabla si no existe e inserta seed solo si está vacía.
func (r *PetsRepo) EnsureSchema(ctx context.Context, seed []pets.Pet) error {
	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create pets schema: %w", err)
	}

	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM pets`).Scan(&n); err != nil {
		return fmt.Errorf("count pets: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, p := range seed {
		if err := r.Create(ctx, p); err != nil {
			return fmt.Errorf("seed pet %q: %w", p.ID, err)
		}
	}
	return nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, age, size
		FROM pets
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &p.Size); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (row_id, id, name, age, size)
		VALUES ($1,$2,$3,$4,$5)
	`,
		uuid.New(),
		p.ID,
		p.Name,
		p.Age,
		string(p.Size),
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, age, size
		FROM pets
		WHERE id = $1
		ORDER BY seq ASC
		LIMIT 1
	`, id)

	var p pets.Pet
	if err := row.Scan(&p.ID, &p.Name, &p.Age, &p.Size); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

// Update bloquea la fila (FOR UPDATE) para que leer + aplicar + escribir sea atómico.
func (r *PetsRepo) Update(ctx context.Context, id string, apply func(*pets.Pet)) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var (
		rowID uuid.UUID
		p     pets.Pet
	)
	err = tx.QueryRowContext(ctx, `
		SELECT row_id, id, name, age, size
		FROM pets
		WHERE id = $1
		ORDER BY seq ASC
		LIMIT 1
		FOR UPDATE
	`, id).Scan(&rowID, &p.ID, &p.Name, &p.Age, &p.Size)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.ErrNotFound
		}
		return err
	}

	apply(&p)

	if _, err := tx.ExecContext(ctx, `
		UPDATE pets
		SET id = $2, name = $3, age = $4, size = $5
		WHERE row_id = $1
	`,
		rowID,
		p.ID,
		p.Name,
		p.Age,
		string(p.Size),
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM pets
		WHERE row_id = (
			SELECT row_id FROM pets
			WHERE id = $1
			ORDER BY seq ASC
			LIMIT 1
		)
	`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete pet rows affected: %w", err)
	}
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}
