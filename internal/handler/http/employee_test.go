package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/peoplehub/hr-portal-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	employee.EmployeeService

	lastUsername string
	lastEmail    string
	existence    employee.ExistenceResponse
}

func (f *fakeEmployeeService) CheckUserExistence(ctx context.Context, username, email string) (employee.ExistenceResponse, error) {
	f.lastUsername, f.lastEmail = username, email
	return f.existence, nil
}

func TestCheckExistence(t *testing.T) {
	t.Parallel()

	svc := &fakeEmployeeService{existence: employee.ExistenceResponse{UsernameTaken: true}}
	handler := NewEmployeeHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/existence?username=asha.nair&email=asha%40example.com", nil)
	rec := httptest.NewRecorder()

	handler.CheckExistence(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "asha.nair", svc.lastUsername)
	assert.Equal(t, "asha@example.com", svc.lastEmail)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			UsernameTaken bool `json:"username_taken"`
			EmailTaken    bool `json:"email_taken"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.True(t, body.Data.UsernameTaken)
	assert.False(t, body.Data.EmailTaken)
}
