package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bashyamgroup/employee-console/internal/domain/leave"
)

// LeaveRepository implements leave.Repository against leaves/.
type LeaveRepository struct {
	client *Client
}

func NewLeaveRepository(client *Client) *LeaveRepository {
	return &LeaveRepository{client: client}
}

func (r *LeaveRepository) ListByEmployeeYear(ctx context.Context, employeeID int64, year int) ([]leave.Record, error) {
	query := url.Values{}
	query.Set("employee_id", strconv.FormatInt(employeeID, 10))
	query.Set("year", strconv.Itoa(year))

	var records []leave.Record
	if err := r.client.do(ctx, http.MethodGet, "leaves/", query, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *LeaveRepository) Create(ctx context.Context, req leave.CreateRecordRequest) (leave.Record, error) {
	var record leave.Record
	if err := r.client.do(ctx, http.MethodPost, "leaves/", nil, req, &record); err != nil {
		return leave.Record{}, err
	}
	return record, nil
}
