package announcement

import "time"

type Announcement struct {
	ID         string
	Title      string
	Content    string
	DatePosted time.Time
}
