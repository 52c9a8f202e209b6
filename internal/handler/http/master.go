package http

import (
	"net/http"

	"github.com/bashyamgroup/employee-console/internal/domain/master"
	"github.com/bashyamgroup/employee-console/internal/handler/http/response"
)

type MasterHandler interface {
	ListDepartments(w http.ResponseWriter, r *http.Request)
	ListDesignations(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterRepo master.Repository
}

func NewMasterHandler(masterRepo master.Repository) MasterHandler {
	return &masterHandlerImpl{masterRepo: masterRepo}
}

// ListDepartments implements MasterHandler.
func (h *masterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.masterRepo.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, departments)
}

// ListDesignations implements MasterHandler.
func (h *masterHandlerImpl) ListDesignations(w http.ResponseWriter, r *http.Request) {
	designations, err := h.masterRepo.ListDesignations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, designations)
}
