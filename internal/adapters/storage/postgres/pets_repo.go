package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"pet-companion/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, owner_user_id,
			name, breed, gender, sterilized,
			chip_number, color, photo_url,
			birth_date, health_status, notes,
			vet_name, vet_phone, vet_address,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		p.Breed,
		p.Gender,
		p.Sterilized,
		p.ChipNumber,
		p.Color,
		p.PhotoURL,
		toNullDate(p.BirthDate),
		string(p.HealthStatus),
		p.Notes,
		p.Veterinarian.Name,
		p.Veterinarian.Phone,
		p.Veterinarian.Address,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			breed = $3,
			gender = $4,
			sterilized = $5,
			chip_number = $6,
			color = $7,
			photo_url = $8,
			birth_date = $9,
			health_status = $10,
			notes = $11,
			vet_name = $12,
			vet_phone = $13,
			vet_address = $14,
			updated_at = $15
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Breed,
		p.Gender,
		p.Sterilized,
		p.ChipNumber,
		p.Color,
		p.PhotoURL,
		toNullDate(p.BirthDate),
		string(p.HealthStatus),
		p.Notes,
		p.Veterinarian.Name,
		p.Veterinarian.Phone,
		p.Veterinarian.Address,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, owner_user_id,
			name, breed, gender, sterilized,
			chip_number, color, photo_url,
			birth_date, health_status, notes,
			vet_name, vet_phone, vet_address,
			created_at, updated_at
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_user_id,
			name, breed, gender, sterilized,
			chip_number, color, photo_url,
			birth_date, health_status, notes,
			vet_name, vet_phone, vet_address,
			created_at, updated_at
		FROM pets
		WHERE owner_user_id = $1
		ORDER BY created_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var bd sql.NullTime
	var status string

	if err := row.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&p.Breed,
		&p.Gender,
		&p.Sterilized,
		&p.ChipNumber,
		&p.Color,
		&p.PhotoURL,
		&bd,
		&status,
		&p.Notes,
		&p.Veterinarian.Name,
		&p.Veterinarian.Phone,
		&p.Veterinarian.Address,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	p.HealthStatus = pets.HealthStatus(status)
	if bd.Valid {
		// ojo: birth_date es date, pgx lo puede mapear a time.Time midnight UTC
		t := bd.Time
		p.BirthDate = &t
	}
	return p, nil
}

// birth_date es DATE, lo pasamos como NullTime para simplificar
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
