package postgres

import (
	"context"
	"database/sql"

	"pet-companion/internal/domain/journal"
)

type JournalRepo struct {
	db *sql.DB
}

func NewJournalRepo(db *sql.DB) *JournalRepo {
	return &JournalRepo{db: db}
}

func (r *JournalRepo) CreateActivity(ctx context.Context, a journal.ActivityEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activities (
			id, pet_id, date, type, duration, notes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		a.ID, a.PetID, a.Date, a.Type, a.Duration, a.Notes, a.CreatedAt,
	)
	return err
}

func (r *JournalRepo) ListActivities(ctx context.Context, petID string) ([]journal.ActivityEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, date, type, duration, notes, created_at
		FROM activities
		WHERE pet_id = $1
		ORDER BY created_at ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]journal.ActivityEntry, 0)
	for rows.Next() {
		var a journal.ActivityEntry
		if err := rows.Scan(
			&a.ID, &a.PetID, &a.Date, &a.Type, &a.Duration, &a.Notes, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *JournalRepo) CreateMemory(ctx context.Context, m journal.Memory) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO memories (
			id, pet_id, kind, date, url, caption, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		m.ID, m.PetID, string(m.Kind), m.Date, m.URL, m.Caption, m.CreatedAt,
	)
	return err
}

func (r *JournalRepo) ListMemories(ctx context.Context, petID string) ([]journal.Memory, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, kind, date, url, caption, created_at
		FROM memories
		WHERE pet_id = $1
		ORDER BY created_at ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]journal.Memory, 0)
	for rows.Next() {
		var m journal.Memory
		var kind string
		if err := rows.Scan(
			&m.ID, &m.PetID, &kind, &m.Date, &m.URL, &m.Caption, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		m.Kind = journal.MemoryKind(kind)
		out = append(out, m)
	}

	return out, rows.Err()
}

func (r *JournalRepo) CreateEvent(ctx context.Context, e journal.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (
			id, pet_id, date, title, description, duration, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		e.ID, e.PetID, e.Date, e.Title, e.Description, e.Duration, e.CreatedAt,
	)
	return err
}

func (r *JournalRepo) ListEvents(ctx context.Context, petID string) ([]journal.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, date, title, description, duration, created_at
		FROM events
		WHERE pet_id = $1
		ORDER BY created_at ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]journal.Event, 0)
	for rows.Next() {
		var e journal.Event
		if err := rows.Scan(
			&e.ID, &e.PetID, &e.Date, &e.Title, &e.Description, &e.Duration, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}
