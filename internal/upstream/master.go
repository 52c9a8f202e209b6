package upstream

import (
	"context"
	"net/http"

	"github.com/bashyamgroup/employee-console/internal/domain/master"
)

// MasterRepository implements master.Repository against departments/ and
// designations/.
type MasterRepository struct {
	client *Client
}

func NewMasterRepository(client *Client) *MasterRepository {
	return &MasterRepository{client: client}
}

func (r *MasterRepository) ListDepartments(ctx context.Context) ([]master.Department, error) {
	var departments []master.Department
	if err := r.client.do(ctx, http.MethodGet, "departments/", nil, nil, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *MasterRepository) ListDesignations(ctx context.Context) ([]master.Designation, error) {
	var designations []master.Designation
	if err := r.client.do(ctx, http.MethodGet, "designations/", nil, nil, &designations); err != nil {
		return nil, err
	}
	return designations, nil
}
