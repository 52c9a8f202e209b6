package leave

import (
	"github.com/shopspring/decimal"
)

// Type enumerates the leave categories the HR API tracks.
type Type string

const (
	TypeCasual Type = "CL"
	TypeSick   Type = "SL"
)

func (t Type) Valid() bool {
	return t == TypeCasual || t == TypeSick
}

// Record is one employee's leave entry for a (month, year) cell. DaysTaken is
// fractional with half-day granularity, so it is kept as a decimal rather
// than a float.
type Record struct {
	ID        int64           `json:"id"`
	Employee  int64           `json:"employee"`
	Type      Type            `json:"leave_type"`
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	DaysTaken decimal.Decimal `json:"days_taken"`
}

// Entitlements are the fixed annual allowances balances are computed against.
type Entitlements struct {
	Casual decimal.Decimal
	Sick   decimal.Decimal
}

func DefaultEntitlements() Entitlements {
	return Entitlements{
		Casual: decimal.NewFromInt(12),
		Sick:   decimal.NewFromInt(16),
	}
}

func (e Entitlements) For(t Type) decimal.Decimal {
	if t == TypeSick {
		return e.Sick
	}
	return e.Casual
}
