package employee

import "context"

type Repository interface {
	Search(ctx context.Context, opts SearchOptions) ([]Employee, error)
	Suggestions(ctx context.Context, term string) ([]string, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	Create(ctx context.Context, req SaveEmployeeRequest) (Employee, error)
	Update(ctx context.Context, id int64, req SaveEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id int64) error
}
