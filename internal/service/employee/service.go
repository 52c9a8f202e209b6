package employee

import (
	"context"

	"github.com/bashyamgroup/employee-console/internal/domain/employee"
	"github.com/bashyamgroup/employee-console/internal/domain/master"
	"golang.org/x/sync/errgroup"
)

// Service orchestrates employee CRUD against the upstream API, enforcing the
// organization email rule before anything leaves the process.
type Service struct {
	repo       employee.Repository
	masterRepo master.Repository
	orgDomain  string
}

func NewService(repo employee.Repository, masterRepo master.Repository, orgDomain string) *Service {
	return &Service{
		repo:       repo,
		masterRepo: masterRepo,
		orgDomain:  orgDomain,
	}
}

func (s *Service) Get(ctx context.Context, id int64) (employee.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req employee.SaveEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(s.orgDomain); err != nil {
		return employee.Employee{}, err
	}
	return s.repo.Create(ctx, req)
}

func (s *Service) Update(ctx context.Context, id int64, req employee.SaveEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(s.orgDomain); err != nil {
		return employee.Employee{}, err
	}
	return s.repo.Update(ctx, id, req)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// FormData is everything the add/edit form needs in one round trip.
type FormData struct {
	Departments  []master.Department  `json:"departments"`
	Designations []master.Designation `json:"designations"`
	Employee     *employee.Employee   `json:"employee,omitempty"`
}

// FormData fetches the two reference lists, and the employee when editing,
// concurrently. Any failure fails the whole form load.
func (s *Service) FormData(ctx context.Context, employeeID *int64) (FormData, error) {
	var data FormData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		departments, err := s.masterRepo.ListDepartments(gctx)
		if err != nil {
			return err
		}
		data.Departments = departments
		return nil
	})
	g.Go(func() error {
		designations, err := s.masterRepo.ListDesignations(gctx)
		if err != nil {
			return err
		}
		data.Designations = designations
		return nil
	})
	if employeeID != nil {
		id := *employeeID
		g.Go(func() error {
			emp, err := s.repo.GetByID(gctx, id)
			if err != nil {
				return err
			}
			data.Employee = &emp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return FormData{}, err
	}
	return data, nil
}
