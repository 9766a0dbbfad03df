package master

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/peoplehub/hr-portal-go/internal/domain/announcement"
	"github.com/peoplehub/hr-portal-go/internal/domain/department"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDepartmentRepo struct {
	department.DepartmentRepository
	names   map[string]bool
	created []department.Department
}

func (f *fakeDepartmentRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return f.names[strings.ToLower(name)], nil
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	dept.ID = "dept-new"
	f.created = append(f.created, dept)
	return dept, nil
}

type fakeAnnouncementRepo struct {
	announcement.AnnouncementRepository
	items   []announcement.Announcement
	deleted []string
}

func (f *fakeAnnouncementRepo) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	a.ID = "ann-new"
	a.DatePosted = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	return a, nil
}

func (f *fakeAnnouncementRepo) Latest(ctx context.Context, limit int) ([]announcement.Announcement, error) {
	if limit > 0 && limit < len(f.items) {
		return f.items[:limit], nil
	}
	return f.items, nil
}

func (f *fakeAnnouncementRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestDepartmentService_Create(t *testing.T) {
	t.Parallel()

	t.Run("creates a department", func(t *testing.T) {
		t.Parallel()

		repo := &fakeDepartmentRepo{}
		svc := NewDepartmentService(repo)

		desc := "Builds the product"
		resp, err := svc.Create(context.Background(), department.CreateDepartmentRequest{
			Name:        "Engineering",
			Description: &desc,
		})
		require.NoError(t, err)
		assert.Equal(t, "dept-new", resp.ID)
		assert.Equal(t, "Engineering", resp.Name)
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()

		repo := &fakeDepartmentRepo{names: map[string]bool{"engineering": true}}
		svc := NewDepartmentService(repo)

		_, err := svc.Create(context.Background(), department.CreateDepartmentRequest{Name: "Engineering"})
		assert.ErrorIs(t, err, department.ErrNameExists)
		assert.Empty(t, repo.created)
	})

	t.Run("name is required", func(t *testing.T) {
		t.Parallel()

		svc := NewDepartmentService(&fakeDepartmentRepo{})

		_, err := svc.Create(context.Background(), department.CreateDepartmentRequest{Name: "  "})
		assert.Error(t, err)
	})
}

func TestAnnouncementService(t *testing.T) {
	t.Parallel()

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		svc := NewAnnouncementService(&fakeAnnouncementRepo{})

		resp, err := svc.Create(context.Background(), announcement.CreateAnnouncementRequest{
			Title:   "Office closed Friday",
			Content: "Maintenance work on the electrical mains.",
		})
		require.NoError(t, err)
		assert.Equal(t, "ann-new", resp.ID)
		assert.Equal(t, "2026-03-02 10:00:00", resp.DatePosted)
	})

	t.Run("list returns everything", func(t *testing.T) {
		t.Parallel()

		repo := &fakeAnnouncementRepo{items: []announcement.Announcement{
			{ID: "ann-2"}, {ID: "ann-1"},
		}}
		svc := NewAnnouncementService(repo)

		resp, err := svc.List(context.Background())
		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "ann-2", resp[0].ID, "newest first, as the repository orders them")
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		repo := &fakeAnnouncementRepo{}
		svc := NewAnnouncementService(repo)

		require.NoError(t, svc.Delete(context.Background(), "ann-1"))
		assert.Equal(t, []string{"ann-1"}, repo.deleted)
	})
}
