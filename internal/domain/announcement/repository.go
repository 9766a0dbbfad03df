package announcement

import "context"

type AnnouncementRepository interface {
	Create(ctx context.Context, a Announcement) (Announcement, error)

	// Latest returns the newest announcements first, at most limit rows.
	// limit <= 0 means no limit.
	Latest(ctx context.Context, limit int) ([]Announcement, error)

	Delete(ctx context.Context, id string) error
}
