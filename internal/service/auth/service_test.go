package auth

import (
	"context"
	"testing"

	"github.com/peoplehub/hr-portal-go/internal/domain/auth"
	"github.com/peoplehub/hr-portal-go/internal/domain/employee"
	"github.com/peoplehub/hr-portal-go/internal/domain/user"
	"github.com/peoplehub/hr-portal-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	user.UserRepository
	byLogin map[string]user.User
}

func (f *fakeUserRepo) GetByLogin(ctx context.Context, login string) (user.User, error) {
	if u, ok := f.byLogin[login]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	byUserID map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	if emp, ok := f.byUserID[userID]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func newTestService(t *testing.T, users *fakeUserRepo, employees *fakeEmployeeRepo) auth.AuthService {
	t.Helper()
	return NewAuthService(users, employees, jwt.NewJWTService("test-secret", "15m", "168h"))
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	users := &fakeUserRepo{byLogin: map[string]user.User{
		"asha.nair": {
			ID:           "user-1",
			Username:     "asha.nair",
			PasswordHash: hashPassword(t, "s3cret-pass"),
			IsAdmin:      true,
		},
	}}
	employees := &fakeEmployeeRepo{byUserID: map[string]employee.Employee{
		"user-1": {ID: "emp-1", UserID: "user-1"},
	}}
	svc := newTestService(t, users, employees)

	t.Run("issues both tokens", func(t *testing.T) {
		t.Parallel()

		pair, err := svc.Login(context.Background(), auth.LoginRequest{Login: "asha.nair", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.True(t, pair.IsAdmin)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Login(context.Background(), auth.LoginRequest{Login: "asha.nair", Password: "wrong"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown login looks identical to a wrong password", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Login(context.Background(), auth.LoginRequest{Login: "nobody", Password: "whatever"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestLogin_UserWithoutEmployeeProfile(t *testing.T) {
	t.Parallel()

	users := &fakeUserRepo{byLogin: map[string]user.User{
		"admin": {ID: "user-2", Username: "admin", PasswordHash: hashPassword(t, "s3cret-pass"), IsAdmin: true},
	}}
	svc := newTestService(t, users, &fakeEmployeeRepo{})

	pair, err := svc.Login(context.Background(), auth.LoginRequest{Login: "admin", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken, "an admin account without an employee row can still sign in")
}

func TestRefresh_RevokedToken(t *testing.T) {
	t.Parallel()

	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	users := &fakeUserRepo{byLogin: map[string]user.User{
		"asha.nair": {ID: "user-1", Username: "asha.nair", PasswordHash: hashPassword(t, "s3cret-pass")},
	}}
	svc := NewAuthService(users, &fakeEmployeeRepo{}, jwtService)

	pair, err := svc.Login(context.Background(), auth.LoginRequest{Login: "asha.nair", Password: "s3cret-pass"})
	require.NoError(t, err)

	jwtService.RevokeToken(pair.RefreshToken)

	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestRefresh_RotatesTheToken(t *testing.T) {
	t.Parallel()

	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	users := &fakeUserRepo{byLogin: map[string]user.User{
		"asha.nair": {ID: "user-1", Username: "asha.nair", PasswordHash: hashPassword(t, "s3cret-pass")},
	}}
	fakeUsersByID := &fakeUserByIDRepo{fakeUserRepo: users}
	svc := NewAuthService(fakeUsersByID, &fakeEmployeeRepo{}, jwtService)

	pair, err := svc.Login(context.Background(), auth.LoginRequest{Login: "asha.nair", Password: "s3cret-pass"})
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	// The old refresh token was revoked by the rotation.
	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

// fakeUserByIDRepo adds GetByID lookups on top of fakeUserRepo for the
// refresh path.
type fakeUserByIDRepo struct {
	*fakeUserRepo
}

func (f *fakeUserByIDRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.byLogin {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}
