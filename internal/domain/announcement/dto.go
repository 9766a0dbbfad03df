package announcement

import (
	"context"

	"github.com/peoplehub/hr-portal-go/internal/pkg/validator"
)

type CreateAnnouncementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r *CreateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AnnouncementResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	DatePosted string `json:"date_posted"`
}

type AnnouncementService interface {
	Create(ctx context.Context, req CreateAnnouncementRequest) (AnnouncementResponse, error)

	// List returns every announcement, newest first.
	List(ctx context.Context) ([]AnnouncementResponse, error)

	Delete(ctx context.Context, id string) error
}
