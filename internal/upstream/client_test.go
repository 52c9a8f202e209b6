package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bashyamgroup/employee-console/internal/domain/auth"
	"github.com/bashyamgroup/employee-console/internal/domain/employee"
	"github.com/bashyamgroup/employee-console/internal/domain/leave"
	"github.com/bashyamgroup/employee-console/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second)
}

func TestAuthRepository_Login(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req auth.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Username != "admin" || req.Password != "admin123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(auth.Credentials{
			Token: "tok-1",
			User:  auth.User{ID: 1, Username: "admin"},
		})
	})
	repo := NewAuthRepository(client)

	creds, err := repo.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", creds.Token)
	assert.Equal(t, "admin", creds.User.Username)

	_, err = repo.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "nope"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestEmployeeRepository_SearchSendsQueryAndToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/employees/", r.URL.Path)
		assert.Equal(t, "Token tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "jane", r.URL.Query().Get("search"))
		assert.Equal(t, "email", r.URL.Query().Get("search_filter"))
		assert.Equal(t, "department,designation", r.URL.Query().Get("expand"))

		w.Write([]byte(`[
			{"id": 1, "name": "Jane", "email": "jane@bashyamgroup.com",
			 "department": {"id": 2, "name": "Engineering"},
			 "designation": 3,
			 "join_date": "2023-04-01"}
		]`))
	})
	repo := NewEmployeeRepository(client)

	ctx := WithToken(context.Background(), "tok-1")
	employees, err := repo.Search(ctx, employee.SearchOptions{
		Term:   "jane",
		Filter: employee.FilterEmail,
		Expand: true,
	})

	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Engineering", employees[0].Department.Name)
	assert.True(t, employees[0].Department.Expanded)
	assert.Equal(t, int64(3), employees[0].Designation.ID)
	assert.False(t, employees[0].Designation.Expanded)
}

func TestEmployeeRepository_GetByIDNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	repo := NewEmployeeRepository(client)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_CreateRelaysFieldErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"email": ["employee with this email already exists."], "name": "too long"}`))
	})
	repo := NewEmployeeRepository(client)

	_, err := repo.Create(context.Background(), employee.SaveEmployeeRequest{})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	details := verrs.ToMap()
	assert.Equal(t, "employee with this email already exists.", details["email"])
	assert.Equal(t, "too long", details["name"])
}

func TestEmployeeRepository_Suggestions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/employees/suggestions/", r.URL.Path)
		assert.Equal(t, "jan", r.URL.Query().Get("search"))
		w.Write([]byte(`["Jane Doe", "Janet Smith"]`))
	})
	repo := NewEmployeeRepository(client)

	suggestions, err := repo.Suggestions(context.Background(), "jan")
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe", "Janet Smith"}, suggestions)
}

func TestLeaveRepository_ListByEmployeeYear(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/leaves/", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("employee_id"))
		assert.Equal(t, "2024", r.URL.Query().Get("year"))
		w.Write([]byte(`[{"id": 1, "employee": 7, "leave_type": "SL", "month": 2, "year": 2024, "days_taken": "1.5"}]`))
	})
	repo := NewLeaveRepository(client)

	records, err := repo.ListByEmployeeYear(context.Background(), 7, 2024)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, leave.TypeSick, records[0].Type)
	assert.Equal(t, "1.5", records[0].DaysTaken.String())
}

func TestLeaveRepository_AcceptsNumericDaysTaken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 1, "employee": 7, "leave_type": "CL", "month": 1, "year": 2024, "days_taken": 0.5}]`))
	})
	repo := NewLeaveRepository(client)

	records, err := repo.ListByEmployeeYear(context.Background(), 7, 2024)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "0.5", records[0].DaysTaken.String())
}

func TestClient_ServerErrorIsUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	repo := NewEmployeeRepository(client)

	_, err := repo.Search(context.Background(), employee.SearchOptions{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_UnauthorizedToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	repo := NewMasterRepository(client)

	_, err := repo.ListDepartments(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}
