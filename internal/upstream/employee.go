package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bashyamgroup/employee-console/internal/domain/employee"
)

// EmployeeRepository implements employee.Repository against employees/.
type EmployeeRepository struct {
	client *Client
}

func NewEmployeeRepository(client *Client) *EmployeeRepository {
	return &EmployeeRepository{client: client}
}

func (r *EmployeeRepository) Search(ctx context.Context, opts employee.SearchOptions) ([]employee.Employee, error) {
	query := url.Values{}
	if opts.Term != "" {
		query.Set("search", opts.Term)
	}
	filter := opts.Filter
	if filter == "" {
		filter = employee.FilterAll
	}
	query.Set("search_filter", string(filter))
	if opts.Expand {
		query.Set("expand", "department,designation")
	}

	var employees []employee.Employee
	if err := r.client.do(ctx, http.MethodGet, "employees/", query, nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeRepository) Suggestions(ctx context.Context, term string) ([]string, error) {
	query := url.Values{}
	query.Set("search", term)

	var suggestions []string
	if err := r.client.do(ctx, http.MethodGet, "employees/suggestions/", query, nil, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	var emp employee.Employee
	err := r.client.do(ctx, http.MethodGet, "employees/"+strconv.FormatInt(id, 10)+"/", nil, nil, &emp)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, req employee.SaveEmployeeRequest) (employee.Employee, error) {
	var emp employee.Employee
	if err := r.client.do(ctx, http.MethodPost, "employees/", nil, req, &emp); err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, id int64, req employee.SaveEmployeeRequest) (employee.Employee, error) {
	var emp employee.Employee
	err := r.client.do(ctx, http.MethodPut, "employees/"+strconv.FormatInt(id, 10)+"/", nil, req, &emp)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	err := r.client.do(ctx, http.MethodDelete, "employees/"+strconv.FormatInt(id, 10)+"/", nil, nil, nil)
	if errors.Is(err, ErrNotFound) {
		return employee.ErrEmployeeNotFound
	}
	return err
}
