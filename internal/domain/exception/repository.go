package exception

import "context"

type EarlyOutRepository interface {
	Create(ctx context.Context, req EarlyOutRequest) (EarlyOutRequest, error)
	GetByID(ctx context.Context, id string) (EarlyOutRequest, error)

	// ListPending returns Pending requests oldest first.
	ListPending(ctx context.Context) ([]EarlyOutRequest, error)

	// UpdateStatus writes the new status only when the current row is
	// still Pending; the boolean reports whether the transition happened.
	UpdateStatus(ctx context.Context, id string, status Status) (bool, error)
}

type LateArrivalRepository interface {
	Create(ctx context.Context, req LateArrivalRequest) (LateArrivalRequest, error)
	GetByID(ctx context.Context, id string) (LateArrivalRequest, error)
	ListPending(ctx context.Context) ([]LateArrivalRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status) (bool, error)
}
