// Package leave derives the monthly leave grid and annual balances for one
// employee and year from the raw records the upstream API returns.
package leave

import (
	"context"
	"sync"

	domain "github.com/bashyamgroup/employee-console/internal/domain/leave"
	"github.com/shopspring/decimal"
)

// View holds one session's leave screen state: the selected (employee, year)
// pair and the records fetched for it. Totals are always recomputed from the
// upstream record set, never adjusted locally; submitting a record reloads
// the set so displayed balances match the server.
type View struct {
	repo         domain.Repository
	entitlements domain.Entitlements

	mu         sync.Mutex
	employeeID int64
	year       int
	records    []domain.Record
	loaded     bool
}

func NewView(repo domain.Repository, entitlements domain.Entitlements) *View {
	return &View{
		repo:         repo,
		entitlements: entitlements,
	}
}

// Select switches the view to (employeeID, year) and fetches that pair's
// records. Previous totals are discarded before the fetch so a failure never
// leaves another selection's numbers on screen.
func (v *View) Select(ctx context.Context, employeeID int64, year int) error {
	v.mu.Lock()
	v.employeeID = employeeID
	v.year = year
	v.records = nil
	v.loaded = false
	v.mu.Unlock()

	return v.reload(ctx)
}

func (v *View) reload(ctx context.Context) error {
	v.mu.Lock()
	employeeID, year := v.employeeID, v.year
	v.mu.Unlock()

	if employeeID == 0 {
		return domain.ErrNoEmployee
	}

	records, err := v.repo.ListByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return err
	}

	v.mu.Lock()
	// The selection may have moved on while the fetch was in flight.
	if v.employeeID == employeeID && v.year == year {
		v.records = records
		v.loaded = true
	}
	v.mu.Unlock()
	return nil
}

// Submit sends a new record for the currently selected employee, then
// reloads the record set so totals reflect the authoritative upstream state.
func (v *View) Submit(ctx context.Context, req domain.CreateRecordRequest) error {
	v.mu.Lock()
	if v.employeeID == 0 {
		v.mu.Unlock()
		return domain.ErrNoEmployee
	}
	req.Employee = v.employeeID
	v.mu.Unlock()

	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := v.repo.Create(ctx, req); err != nil {
		return err
	}
	return v.reload(ctx)
}

// MonthDays returns the days taken for a (month, type) cell. Should the
// upstream ever return more than one record for a cell they are summed, so
// the grid column still adds up to the annual total.
func (v *View) MonthDays(month int, t domain.Type) decimal.Decimal {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.monthDaysLocked(month, t)
}

func (v *View) monthDaysLocked(month int, t domain.Type) decimal.Decimal {
	total := decimal.Zero
	for _, record := range v.records {
		if record.Month == month && record.Type == t {
			total = total.Add(record.DaysTaken)
		}
	}
	return total
}

// AnnualTotal sums days taken across the loaded year for one type.
func (v *View) AnnualTotal(t domain.Type) decimal.Decimal {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.annualTotalLocked(t)
}

func (v *View) annualTotalLocked(t domain.Type) decimal.Decimal {
	total := decimal.Zero
	for _, record := range v.records {
		if record.Type == t {
			total = total.Add(record.DaysTaken)
		}
	}
	return total
}

// Balance is the fixed entitlement minus the annual total. Not clamped; an
// overdrawn balance renders negative.
func (v *View) Balance(t domain.Type) decimal.Decimal {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.entitlements.For(t).Sub(v.annualTotalLocked(t))
}

// Summary renders the 12-month grid with totals, entitlements and balances.
func (v *View) Summary() domain.Summary {
	v.mu.Lock()
	defer v.mu.Unlock()

	summary := domain.Summary{
		EmployeeID:        v.employeeID,
		Year:              v.year,
		Months:            make([]domain.MonthSummary, 12),
		SickEntitlement:   v.entitlements.Sick,
		CasualEntitlement: v.entitlements.Casual,
	}
	for month := 1; month <= 12; month++ {
		summary.Months[month-1] = domain.MonthSummary{
			Month:  month,
			Sick:   v.monthDaysLocked(month, domain.TypeSick),
			Casual: v.monthDaysLocked(month, domain.TypeCasual),
		}
	}
	summary.SickTotal = v.annualTotalLocked(domain.TypeSick)
	summary.CasualTotal = v.annualTotalLocked(domain.TypeCasual)
	summary.SickBalance = v.entitlements.Sick.Sub(summary.SickTotal)
	summary.CasualBalance = v.entitlements.Casual.Sub(summary.CasualTotal)
	return summary
}

// Loaded reports whether the current selection's records have been fetched.
func (v *View) Loaded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loaded
}
