package exception

import (
	"context"
	"testing"
	"time"

	"github.com/peoplehub/hr-portal-go/internal/domain/attendance"
	"github.com/peoplehub/hr-portal-go/internal/domain/exception"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmployeeID = "emp-1"

// passthroughTx runs the callback without a real transaction.
type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEarlyOutRepo struct {
	exception.EarlyOutRepository
	byID    map[string]exception.EarlyOutRequest
	pending []exception.EarlyOutRequest
}

func (f *fakeEarlyOutRepo) Create(ctx context.Context, req exception.EarlyOutRequest) (exception.EarlyOutRequest, error) {
	req.ID = "eo-new"
	req.RequestedAt = time.Now().UTC()
	return req, nil
}

func (f *fakeEarlyOutRepo) GetByID(ctx context.Context, id string) (exception.EarlyOutRequest, error) {
	req, ok := f.byID[id]
	if !ok {
		return exception.EarlyOutRequest{}, exception.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakeEarlyOutRepo) ListPending(ctx context.Context) ([]exception.EarlyOutRequest, error) {
	return f.pending, nil
}

func (f *fakeEarlyOutRepo) UpdateStatus(ctx context.Context, id string, status exception.Status) (bool, error) {
	req, ok := f.byID[id]
	if !ok || req.Status != exception.StatusPending {
		return false, nil
	}
	req.Status = status
	f.byID[id] = req
	return true, nil
}

type fakeLateArrivalRepo struct {
	exception.LateArrivalRepository
	byID map[string]exception.LateArrivalRequest
}

func (f *fakeLateArrivalRepo) Create(ctx context.Context, req exception.LateArrivalRequest) (exception.LateArrivalRequest, error) {
	req.ID = "la-new"
	if req.RequestedAt.IsZero() {
		req.RequestedAt = time.Now().UTC()
	}
	return req, nil
}

func (f *fakeLateArrivalRepo) GetByID(ctx context.Context, id string) (exception.LateArrivalRequest, error) {
	req, ok := f.byID[id]
	if !ok {
		return exception.LateArrivalRequest{}, exception.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakeLateArrivalRepo) UpdateStatus(ctx context.Context, id string, status exception.Status) (bool, error) {
	req, ok := f.byID[id]
	if !ok || req.Status != exception.StatusPending {
		return false, nil
	}
	req.Status = status
	f.byID[id] = req
	return true, nil
}

type fakeShiftRepo struct {
	attendance.ShiftRepository
	open      *attendance.Shift
	checkOuts map[string]time.Time
	created   []attendance.Shift
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{checkOuts: make(map[string]time.Time)}
}

func (f *fakeShiftRepo) GetOpenShift(ctx context.Context, employeeID string) (attendance.Shift, error) {
	if f.open == nil || f.open.EmployeeID != employeeID {
		return attendance.Shift{}, attendance.ErrNoOpenShift
	}
	return *f.open, nil
}

func (f *fakeShiftRepo) SetCheckOut(ctx context.Context, shiftID string, checkOut time.Time) (bool, error) {
	if f.open == nil || f.open.ID != shiftID {
		return false, nil
	}
	f.checkOuts[shiftID] = checkOut
	f.open = nil
	return true, nil
}

func (f *fakeShiftRepo) Create(ctx context.Context, shift attendance.Shift) (attendance.Shift, error) {
	shift.ID = "shift-new"
	f.created = append(f.created, shift)
	return shift, nil
}

func newTestService(earlyOuts *fakeEarlyOutRepo, lateArrivals *fakeLateArrivalRepo, shifts *fakeShiftRepo, now time.Time) exception.ExceptionService {
	return NewExceptionService(passthroughTx{}, earlyOuts, lateArrivals, shifts, func() time.Time { return now })
}

func TestCreateEarlyOut(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 2, 11, 0, 0, 0, time.UTC)

	t.Run("captures the open shift", func(t *testing.T) {
		t.Parallel()

		shifts := newFakeShiftRepo()
		checkIn := now.Add(-2 * time.Hour)
		shifts.open = &attendance.Shift{ID: "shift-1", EmployeeID: testEmployeeID, CheckIn: &checkIn}

		svc := newTestService(&fakeEarlyOutRepo{}, &fakeLateArrivalRepo{}, shifts, now)

		resp, err := svc.CreateEarlyOut(context.Background(), testEmployeeID, exception.CreateRequestRequest{Reason: "doctor appointment"})
		require.NoError(t, err)
		assert.Equal(t, "shift-1", resp.ShiftID)
		assert.Equal(t, string(exception.StatusPending), resp.Status)
	})

	t.Run("refused without an open shift", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(&fakeEarlyOutRepo{}, &fakeLateArrivalRepo{}, newFakeShiftRepo(), now)

		_, err := svc.CreateEarlyOut(context.Background(), testEmployeeID, exception.CreateRequestRequest{Reason: "doctor appointment"})
		assert.ErrorIs(t, err, exception.ErrNoOpenShift)
	})

	t.Run("reason is required", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(&fakeEarlyOutRepo{}, &fakeLateArrivalRepo{}, newFakeShiftRepo(), now)

		_, err := svc.CreateEarlyOut(context.Background(), testEmployeeID, exception.CreateRequestRequest{Reason: "  "})
		assert.Error(t, err)
	})
}

func TestDecideEarlyOut(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 2, 11, 30, 0, 0, time.UTC)

	pendingRepo := func() *fakeEarlyOutRepo {
		return &fakeEarlyOutRepo{byID: map[string]exception.EarlyOutRequest{
			"eo-1": {ID: "eo-1", EmployeeID: testEmployeeID, ShiftID: "shift-1", Status: exception.StatusPending},
		}}
	}

	t.Run("approval closes the shift at the approval moment", func(t *testing.T) {
		t.Parallel()

		shifts := newFakeShiftRepo()
		checkIn := now.Add(-2 * time.Hour)
		shifts.open = &attendance.Shift{ID: "shift-1", EmployeeID: testEmployeeID, CheckIn: &checkIn}

		svc := newTestService(pendingRepo(), &fakeLateArrivalRepo{}, shifts, now)

		resp, err := svc.DecideEarlyOut(context.Background(), "eo-1", exception.StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, now, shifts.checkOuts["shift-1"])
		assert.Empty(t, resp.Warning)
	})

	t.Run("approval of an already-closed shift warns instead of failing", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(pendingRepo(), &fakeLateArrivalRepo{}, newFakeShiftRepo(), now)

		resp, err := svc.DecideEarlyOut(context.Background(), "eo-1", exception.StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, string(exception.StatusApproved), resp.Status)
		assert.Equal(t, "shift was already checked out, no clock-out applied", resp.Warning)
	})

	t.Run("rejection leaves the shift alone", func(t *testing.T) {
		t.Parallel()

		shifts := newFakeShiftRepo()
		checkIn := now.Add(-2 * time.Hour)
		shifts.open = &attendance.Shift{ID: "shift-1", EmployeeID: testEmployeeID, CheckIn: &checkIn}

		svc := newTestService(pendingRepo(), &fakeLateArrivalRepo{}, shifts, now)

		_, err := svc.DecideEarlyOut(context.Background(), "eo-1", exception.StatusRejected)
		require.NoError(t, err)
		assert.Empty(t, shifts.checkOuts)
	})

	t.Run("already processed", func(t *testing.T) {
		t.Parallel()

		repo := pendingRepo()
		req := repo.byID["eo-1"]
		req.Status = exception.StatusRejected
		repo.byID["eo-1"] = req

		svc := newTestService(repo, &fakeLateArrivalRepo{}, newFakeShiftRepo(), now)

		_, err := svc.DecideEarlyOut(context.Background(), "eo-1", exception.StatusApproved)
		assert.ErrorIs(t, err, exception.ErrAlreadyProcessed)
	})

	t.Run("pending is not a valid target", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(pendingRepo(), &fakeLateArrivalRepo{}, newFakeShiftRepo(), now)

		_, err := svc.DecideEarlyOut(context.Background(), "eo-1", exception.StatusPending)
		assert.ErrorIs(t, err, exception.ErrInvalidTargetStatus)
	})
}

func TestDecideLateArrival(t *testing.T) {
	t.Parallel()

	requestedAt := time.Date(2026, time.March, 2, 9, 25, 0, 0, time.UTC)
	now := requestedAt.Add(45 * time.Minute)

	pendingRepo := func() *fakeLateArrivalRepo {
		return &fakeLateArrivalRepo{byID: map[string]exception.LateArrivalRequest{
			"la-1": {ID: "la-1", EmployeeID: testEmployeeID, Status: exception.StatusPending, RequestedAt: requestedAt},
		}}
	}

	t.Run("approval backdates check-in to the request moment", func(t *testing.T) {
		t.Parallel()

		shifts := newFakeShiftRepo()
		svc := newTestService(&fakeEarlyOutRepo{}, pendingRepo(), shifts, now)

		resp, err := svc.DecideLateArrival(context.Background(), "la-1", exception.StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, string(exception.StatusApproved), resp.Status)

		require.Len(t, shifts.created, 1)
		assert.Equal(t, requestedAt, *shifts.created[0].CheckIn)
		assert.Nil(t, shifts.created[0].CheckOut)
	})

	t.Run("rejection creates no shift", func(t *testing.T) {
		t.Parallel()

		shifts := newFakeShiftRepo()
		svc := newTestService(&fakeEarlyOutRepo{}, pendingRepo(), shifts, now)

		_, err := svc.DecideLateArrival(context.Background(), "la-1", exception.StatusRejected)
		require.NoError(t, err)
		assert.Empty(t, shifts.created)
	})

	t.Run("already processed", func(t *testing.T) {
		t.Parallel()

		repo := pendingRepo()
		req := repo.byID["la-1"]
		req.Status = exception.StatusApproved
		repo.byID["la-1"] = req

		svc := newTestService(&fakeEarlyOutRepo{}, repo, newFakeShiftRepo(), now)

		_, err := svc.DecideLateArrival(context.Background(), "la-1", exception.StatusApproved)
		assert.ErrorIs(t, err, exception.ErrAlreadyProcessed)
	})
}
