package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplehub/hr-portal-go/internal/domain/auth"
	"github.com/peoplehub/hr-portal-go/internal/handler/http/response"
)

// requireEmployeeID resolves the caller's employee ID from the access
// token and writes the error response itself when there is none. Admin
// accounts without an employee profile fail here.
func requireEmployeeID(w http.ResponseWriter, r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return "", false
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		response.Forbidden(w, "no employee profile linked to this account")
		return "", false
	}
	return employeeID, true
}

// requireUserID resolves the caller's user ID from the access token.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return "", false
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return "", false
	}
	return userID, true
}
