package master

import "context"

type Repository interface {
	ListDepartments(ctx context.Context) ([]Department, error)
	ListDesignations(ctx context.Context) ([]Designation, error)
}
