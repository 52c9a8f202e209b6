package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bashyamgroup/employee-console/internal/domain/auth"
	"github.com/bashyamgroup/employee-console/internal/domain/employee"
	"github.com/bashyamgroup/employee-console/internal/handler/http/response"
	"github.com/bashyamgroup/employee-console/internal/pkg/session"
	employeeService "github.com/bashyamgroup/employee-console/internal/service/employee"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Listing(w http.ResponseWriter, r *http.Request)
	SearchInput(w http.ResponseWriter, r *http.Request)
	SearchFilter(w http.ResponseWriter, r *http.Request)
	SearchSuggestion(w http.ResponseWriter, r *http.Request)
	SearchClear(w http.ResponseWriter, r *http.Request)
	SearchPage(w http.ResponseWriter, r *http.Request)
	FormData(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService *employeeService.Service
}

func NewEmployeeHandler(svc *employeeService.Service) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: svc}
}

func currentSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrSessionNotFound)
		return nil, false
	}
	return sess, true
}

func employeeID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// Listing returns the session's current listing snapshot: the page slice,
// the pagination window, suggestions and the inline error flag.
func (h *employeeHandlerImpl) Listing(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	response.Success(w, sess.Search.Snapshot())
}

// SearchInput implements EmployeeHandler - one keystroke. The upstream query
// is debounced; the snapshot echoes the term immediately.
func (h *employeeHandlerImpl) SearchInput(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Term string `json:"term"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SearchInput decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	sess.Search.Input(req.Term)
	response.Success(w, sess.Search.Snapshot())
}

// SearchFilter implements EmployeeHandler - switches the field filter and
// re-queries immediately.
func (h *employeeHandlerImpl) SearchFilter(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Filter string `json:"filter"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SearchFilter decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	filter, err := employee.ParseFilter(req.Filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	sess.Search.SetFilter(filter)
	response.Success(w, sess.Search.Snapshot())
}

// SearchSuggestion implements EmployeeHandler - adopts an autocomplete entry.
func (h *employeeHandlerImpl) SearchSuggestion(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Term string `json:"term"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SearchSuggestion decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	sess.Search.SelectSuggestion(req.Term)
	response.Success(w, sess.Search.Snapshot())
}

// SearchClear implements EmployeeHandler.
func (h *employeeHandlerImpl) SearchClear(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	sess.Search.Clear()
	response.Success(w, sess.Search.Snapshot())
}

// SearchPage implements EmployeeHandler - pagination is a pure slice over the
// last fetched result set.
func (h *employeeHandlerImpl) SearchPage(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Page int `json:"page"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SearchPage decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	sess.Search.SetPage(req.Page)
	response.Success(w, sess.Search.Snapshot())
}

// FormData implements EmployeeHandler - reference lists plus the employee
// being edited, if any.
func (h *employeeHandlerImpl) FormData(w http.ResponseWriter, r *http.Request) {
	var editID *int64
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid employee id", nil)
			return
		}
		editID = &id
	}

	data, err := h.employeeService.FormData(r.Context(), editID)
	if err != nil {
		slog.Error("FormData service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}

// GetEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	emp, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// CreateEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.SaveEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if sess, ok := session.FromContext(r.Context()); ok {
		sess.Search.Refresh()
	}
	response.Created(w, "Employee added successfully", emp)
}

// UpdateEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	var req employee.SaveEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.Update(r.Context(), id, req)
	if err != nil {
		slog.Error("UpdateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if sess, ok := session.FromContext(r.Context()); ok {
		sess.Search.Refresh()
	}
	response.SuccessWithMessage(w, "Employee updated successfully", emp)
}

// DeleteEmployee implements EmployeeHandler. On success the listing is
// refetched so the next snapshot no longer contains the employee; on failure
// the listing is left untouched.
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	id, err := employeeID(r)
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteEmployee service error", "employee_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	sess.Search.Refresh()
	response.SuccessWithMessage(w, "Employee deleted successfully", sess.Search.Snapshot())
}
