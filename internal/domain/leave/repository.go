package leave

import "context"

type Repository interface {
	ListByEmployeeYear(ctx context.Context, employeeID int64, year int) ([]Record, error)
	Create(ctx context.Context, req CreateRecordRequest) (Record, error)
}
