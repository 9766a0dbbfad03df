package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/peoplehub/hr-portal-go/internal/domain/announcement"
	"github.com/peoplehub/hr-portal-go/internal/pkg/database"
)

type announcementRepository struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepository{db: db}
}

// Create implements announcement.AnnouncementRepository.
func (r *announcementRepository) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	query := `
		INSERT INTO announcements (id, title, content)
		VALUES ($1, $2, $3)
		RETURNING date_posted
	`
	err := q.QueryRow(ctx, query, a.ID, a.Title, a.Content).Scan(&a.DatePosted)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	return a, nil
}

// Latest implements announcement.AnnouncementRepository.
func (r *announcementRepository) Latest(ctx context.Context, limit int) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, title, content, date_posted FROM announcements ORDER BY date_posted DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	var announcements []announcement.Announcement
	for rows.Next() {
		var a announcement.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.DatePosted); err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

// Delete implements announcement.AnnouncementRepository.
func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}
	return nil
}
