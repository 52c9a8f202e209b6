package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bashyamgroup/employee-console/internal/domain/leave"
	"github.com/bashyamgroup/employee-console/internal/handler/http/response"
)

type LeaveHandler interface {
	Select(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct{}

func NewLeaveHandler() LeaveHandler {
	return &leaveHandlerImpl{}
}

// Select implements LeaveHandler - switches the leave view to another
// (employee, year) pair and fetches its records.
func (h *leaveHandlerImpl) Select(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req leave.SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Leave select decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := sess.Leave.Select(r.Context(), req.EmployeeID, req.Year); err != nil {
		slog.Error("Leave select service error", "employee_id", req.EmployeeID, "year", req.Year, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, sess.Leave.Summary())
}

// Summary implements LeaveHandler - the 12-month grid with totals and
// balances for the current selection.
func (h *leaveHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	if !sess.Leave.Loaded() {
		response.HandleError(w, leave.ErrNoEmployee)
		return
	}
	response.Success(w, sess.Leave.Summary())
}

// Submit implements LeaveHandler - records a leave application and returns
// the refetched summary, so the browser never does its own balance math.
func (h *leaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req leave.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Leave submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := sess.Leave.Submit(r.Context(), req); err != nil {
		slog.Error("Leave submit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave application submitted successfully", sess.Leave.Summary())
}
