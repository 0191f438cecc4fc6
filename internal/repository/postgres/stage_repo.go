package postgres

import (
	"context"
	"database/sql"

	"lineupboard/internal/domain"
)

type stageRepository struct {
	DB *sql.DB
}

func NewStageRepository(db *sql.DB) domain.StageRepository {
	return &stageRepository{
		DB: db,
	}
}

func (r *stageRepository) Create(ctx context.Context, s *domain.Stage) error {
	query := `
		INSERT INTO event_stages (id, event_id, name, venue_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.EventID, s.Name, s.VenueID, s.CreatedAt, s.UpdatedAt)
	return err
}

func (r *stageRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Stage, error) {
	query := `
		SELECT id, event_id, name, venue_id, created_at, updated_at
		FROM event_stages
		WHERE event_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	stages := make([]*domain.Stage, 0)
	for rows.Next() {
		s := &domain.Stage{}
		if err := rows.Scan(&s.ID, &s.EventID, &s.Name, &s.VenueID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	return stages, rows.Err()
}

// Delete removes the stage and every assignment scheduled on it.
func (r *stageRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM stage_assignments WHERE stage_id = $1`, id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM event_stages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}
