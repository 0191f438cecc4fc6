package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"lineupboard/internal/domain"
)

type assignmentRepository struct {
	DB *sql.DB
}

func NewAssignmentRepository(db *sql.DB) domain.AssignmentRepository {
	return &assignmentRepository{
		DB: db,
	}
}

func (r *assignmentRepository) Create(ctx context.Context, a *domain.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}
	query := `
		INSERT INTO stage_assignments (id, event_id, artist_id, stage_id, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		a.ID, a.EventID, a.ArtistID, a.StageID, a.StartTime, a.EndTime, a.CreatedAt, a.UpdatedAt)
	return err
}

// ListByEventID returns the event's assignments with absolute timestamps.
// Every row is schema-checked before it leaves the boundary, so malformed
// external data cannot feed wrong intervals into the conflict detector.
func (r *assignmentRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Assignment, error) {
	query := `
		SELECT id, event_id, artist_id, stage_id, start_time, end_time, created_at, updated_at
		FROM stage_assignments
		WHERE event_id = $1
		ORDER BY start_time, id
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	assignments := make([]*domain.Assignment, 0)
	for rows.Next() {
		a := &domain.Assignment{}
		if err := rows.Scan(&a.ID, &a.EventID, &a.ArtistID, &a.StageID, &a.StartTime, &a.EndTime, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("stored assignment rejected: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *assignmentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM stage_assignments WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
