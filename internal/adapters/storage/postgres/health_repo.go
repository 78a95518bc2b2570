package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-companion/internal/domain/health"
)

type HealthRepo struct {
	db *sql.DB
}

func NewHealthRepo(db *sql.DB) *HealthRepo {
	return &HealthRepo{db: db}
}

func (r *HealthRepo) CreateVaccination(ctx context.Context, v health.Vaccination) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vaccinations (
			id, pet_id, name, date, next_due, veterinarian, notes, status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		v.ID, v.PetID, v.Name, v.Date, v.NextDue, v.Veterinarian, v.Notes,
		string(v.Status), v.CreatedAt,
	)
	return err
}

func (r *HealthRepo) GetVaccination(ctx context.Context, id string) (health.Vaccination, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return health.Vaccination{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, name, date, next_due, veterinarian, notes, status, created_at
		FROM vaccinations
		WHERE id = $1
	`, id)

	var v health.Vaccination
	var status string
	if err := row.Scan(
		&v.ID, &v.PetID, &v.Name, &v.Date, &v.NextDue, &v.Veterinarian, &v.Notes,
		&status, &v.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return health.Vaccination{}, ErrNotFound
		}
		return health.Vaccination{}, err
	}
	v.Status = health.VaccinationStatus(status)
	return v, nil
}

func (r *HealthRepo) UpdateVaccination(ctx context.Context, v health.Vaccination) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vaccinations
		SET name = $2, date = $3, next_due = $4, veterinarian = $5, notes = $6, status = $7
		WHERE id = $1
	`,
		v.ID, v.Name, v.Date, v.NextDue, v.Veterinarian, v.Notes, string(v.Status),
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

func (r *HealthRepo) ListVaccinations(ctx context.Context, petID string) ([]health.Vaccination, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, name, date, next_due, veterinarian, notes, status, created_at
		FROM vaccinations
		WHERE pet_id = $1
		ORDER BY created_at ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]health.Vaccination, 0)
	for rows.Next() {
		var v health.Vaccination
		var status string
		if err := rows.Scan(
			&v.ID, &v.PetID, &v.Name, &v.Date, &v.NextDue, &v.Veterinarian, &v.Notes,
			&status, &v.CreatedAt,
		); err != nil {
			return nil, err
		}
		v.Status = health.VaccinationStatus(status)
		out = append(out, v)
	}

	return out, rows.Err()
}

func (r *HealthRepo) CreateTreatment(ctx context.Context, t health.Treatment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO treatments (
			id, pet_id, name, type, start_date, end_date,
			frequency, dosage, instructions, veterinarian, status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		t.ID, t.PetID, t.Name, t.Type, t.StartDate, t.EndDate,
		t.Frequency, t.Dosage, t.Instructions, t.Veterinarian,
		string(t.Status), t.CreatedAt,
	)
	return err
}

func (r *HealthRepo) GetTreatment(ctx context.Context, id string) (health.Treatment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return health.Treatment{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, name, type, start_date, end_date,
		       frequency, dosage, instructions, veterinarian, status, created_at
		FROM treatments
		WHERE id = $1
	`, id)

	var t health.Treatment
	var status string
	if err := row.Scan(
		&t.ID, &t.PetID, &t.Name, &t.Type, &t.StartDate, &t.EndDate,
		&t.Frequency, &t.Dosage, &t.Instructions, &t.Veterinarian,
		&status, &t.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return health.Treatment{}, ErrNotFound
		}
		return health.Treatment{}, err
	}
	t.Status = health.TreatmentStatus(status)
	return t, nil
}

func (r *HealthRepo) UpdateTreatment(ctx context.Context, t health.Treatment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE treatments
		SET name = $2, type = $3, start_date = $4, end_date = $5,
		    frequency = $6, dosage = $7, instructions = $8, veterinarian = $9, status = $10
		WHERE id = $1
	`,
		t.ID, t.Name, t.Type, t.StartDate, t.EndDate,
		t.Frequency, t.Dosage, t.Instructions, t.Veterinarian, string(t.Status),
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

func (r *HealthRepo) ListTreatments(ctx context.Context, petID string) ([]health.Treatment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, name, type, start_date, end_date,
		       frequency, dosage, instructions, veterinarian, status, created_at
		FROM treatments
		WHERE pet_id = $1
		ORDER BY created_at ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]health.Treatment, 0)
	for rows.Next() {
		var t health.Treatment
		var status string
		if err := rows.Scan(
			&t.ID, &t.PetID, &t.Name, &t.Type, &t.StartDate, &t.EndDate,
			&t.Frequency, &t.Dosage, &t.Instructions, &t.Veterinarian,
			&status, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		t.Status = health.TreatmentStatus(status)
		out = append(out, t)
	}

	return out, rows.Err()
}

func (r *HealthRepo) CreateVisit(ctx context.Context, v health.MedicalVisit) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medical_visits (
			id, pet_id, date, reason, veterinarian, diagnosis,
			treatment, notes, follow_up, cost, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		v.ID, v.PetID, v.Date, v.Reason, v.Veterinarian, v.Diagnosis,
		v.Treatment, v.Notes, v.FollowUp, v.Cost, v.CreatedAt,
	)
	return err
}

func (r *HealthRepo) ListVisits(ctx context.Context, petID string) ([]health.MedicalVisit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, date, reason, veterinarian, diagnosis,
		       treatment, notes, follow_up, cost, created_at
		FROM medical_visits
		WHERE pet_id = $1
		ORDER BY created_at ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]health.MedicalVisit, 0)
	for rows.Next() {
		var v health.MedicalVisit
		if err := rows.Scan(
			&v.ID, &v.PetID, &v.Date, &v.Reason, &v.Veterinarian, &v.Diagnosis,
			&v.Treatment, &v.Notes, &v.FollowUp, &v.Cost, &v.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, rows.Err()
}

func (r *HealthRepo) CreateWeight(ctx context.Context, w health.WeightEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO weight_entries (
			id, pet_id, weight, date, time, location, notes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		w.ID, w.PetID, w.Weight, w.Date, w.Time, w.Location, w.Notes, w.CreatedAt,
	)
	return err
}

func (r *HealthRepo) ListWeights(ctx context.Context, petID string) ([]health.WeightEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, weight, date, time, location, notes, created_at
		FROM weight_entries
		WHERE pet_id = $1
		ORDER BY created_at ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]health.WeightEntry, 0)
	for rows.Next() {
		var w health.WeightEntry
		if err := rows.Scan(
			&w.ID, &w.PetID, &w.Weight, &w.Date, &w.Time, &w.Location, &w.Notes, &w.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, w)
	}

	return out, rows.Err()
}
