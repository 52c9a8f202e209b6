package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bashyamgroup/employee-console/internal/domain/employee"
	"github.com/bashyamgroup/employee-console/internal/domain/master"
	"github.com/bashyamgroup/employee-console/internal/pkg/session"
	employeeService "github.com/bashyamgroup/employee-console/internal/service/employee"
	"github.com/bashyamgroup/employee-console/internal/service/search"
	"github.com/bashyamgroup/employee-console/internal/upstream"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listingEmployeeRepo backs both the employee service and the search
// coordinator, so handler tests observe the listing the way a session would.
type listingEmployeeRepo struct {
	mu          sync.Mutex
	employees   []employee.Employee
	searchCalls int
	deleteErr   error
}

func newListingEmployeeRepo(n int) *listingEmployeeRepo {
	repo := &listingEmployeeRepo{}
	for i := 1; i <= n; i++ {
		repo.employees = append(repo.employees, employee.Employee{
			ID:    int64(i),
			Name:  fmt.Sprintf("Employee %d", i),
			Email: fmt.Sprintf("employee%d@bashyamgroup.com", i),
		})
	}
	return repo
}

func (f *listingEmployeeRepo) Search(ctx context.Context, opts employee.SearchOptions) ([]employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	out := make([]employee.Employee, len(f.employees))
	copy(out, f.employees)
	return out, nil
}

func (f *listingEmployeeRepo) Suggestions(ctx context.Context, term string) ([]string, error) {
	return nil, nil
}

func (f *listingEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *listingEmployeeRepo) Create(ctx context.Context, req employee.SaveEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, nil
}

func (f *listingEmployeeRepo) Update(ctx context.Context, id int64, req employee.SaveEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, nil
}

func (f *listingEmployeeRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, emp := range f.employees {
		if emp.ID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (f *listingEmployeeRepo) queryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.searchCalls
}

type stubMasterRepo struct{}

func (stubMasterRepo) ListDepartments(ctx context.Context) ([]master.Department, error) {
	return nil, nil
}

func (stubMasterRepo) ListDesignations(ctx context.Context) ([]master.Designation, error) {
	return nil, nil
}

func newEmployeeHandlerFixture(t *testing.T, repo *listingEmployeeRepo) (EmployeeHandler, *session.Session) {
	t.Helper()
	svc := employeeService.NewService(repo, stubMasterRepo{}, "@bashyamgroup.com")
	handler := NewEmployeeHandler(svc)

	coordinator := search.New(
		context.Background(),
		repo,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		search.Options{Debounce: time.Hour},
	)
	coordinator.Load()
	t.Cleanup(coordinator.Close)

	sess := &session.Session{
		ID:     "test-session",
		Token:  "upstream-token",
		Search: coordinator,
	}
	return handler, sess
}

func deleteEmployeeRequest(sess *session.Session, rawID string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/employees/"+rawID, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", rawID)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = session.WithSession(ctx, sess)
	return req.WithContext(ctx)
}

// Test DeleteEmployee - Success
func TestEmployeeHandler_Delete_Success(t *testing.T) {
	repo := newListingEmployeeRepo(6)
	handler, sess := newEmployeeHandlerFixture(t, repo)
	require.Equal(t, 6, sess.Search.Snapshot().TotalCount)

	w := httptest.NewRecorder()
	handler.DeleteEmployee(w, deleteEmployeeRequest(sess, "6"))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.True(t, resp["success"].(bool))

	// The returned snapshot is the refetched listing, not a local removal.
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(5), data["total_count"])
	assert.Equal(t, 5, sess.Search.Snapshot().TotalCount)
	// One query to prime the session, one for the refetch.
	assert.Equal(t, 2, repo.queryCount())
}

// Test DeleteEmployee - Upstream Failure
func TestEmployeeHandler_Delete_FailureLeavesListingUnchanged(t *testing.T) {
	repo := newListingEmployeeRepo(6)
	handler, sess := newEmployeeHandlerFixture(t, repo)
	before := sess.Search.Snapshot()
	repo.deleteErr = upstream.ErrUnavailable

	w := httptest.NewRecorder()
	handler.DeleteEmployee(w, deleteEmployeeRequest(sess, "3"))

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.False(t, resp["success"].(bool))
	assert.NotNil(t, resp["error"])

	// No refetch happened and the listing still shows every employee.
	after := sess.Search.Snapshot()
	assert.Equal(t, before.TotalCount, after.TotalCount)
	assert.Equal(t, before.Page, after.Page)
	assert.Equal(t, 1, repo.queryCount())
}

// Test DeleteEmployee - Not Found
func TestEmployeeHandler_Delete_NotFound(t *testing.T) {
	repo := newListingEmployeeRepo(2)
	handler, sess := newEmployeeHandlerFixture(t, repo)

	w := httptest.NewRecorder()
	handler.DeleteEmployee(w, deleteEmployeeRequest(sess, "99"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 2, sess.Search.Snapshot().TotalCount)
	assert.Equal(t, 1, repo.queryCount())
}

// Test DeleteEmployee - Invalid ID
func TestEmployeeHandler_Delete_InvalidID(t *testing.T) {
	repo := newListingEmployeeRepo(2)
	handler, sess := newEmployeeHandlerFixture(t, repo)

	w := httptest.NewRecorder()
	handler.DeleteEmployee(w, deleteEmployeeRequest(sess, "abc"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 1, repo.queryCount())
}

// Test DeleteEmployee - No Session
func TestEmployeeHandler_Delete_NoSession(t *testing.T) {
	repo := newListingEmployeeRepo(2)
	handler, _ := newEmployeeHandlerFixture(t, repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/employees/1", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()

	handler.DeleteEmployee(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
