package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TenureUnit is the unit a deposit's tenure is expressed in.
type TenureUnit string

const (
	TenureMonths TenureUnit = "months"
	TenureYears  TenureUnit = "years"
)

// FDStatus is the lifecycle status of a fixed deposit at a point in time.
type FDStatus string

const (
	StatusClosed       FDStatus = "closed"
	StatusMatured      FDStatus = "matured"
	StatusMaturingSoon FDStatus = "maturing_soon"
	StatusActive       FDStatus = "active"
)

// maturingSoonWindowDays is how far ahead a maturity date counts as "soon".
const maturingSoonWindowDays = 30

// FixedDeposit represents a time-bound deposit earning a fixed interest
// rate until its maturity date.
type FixedDeposit struct {
	Base
	UserID          uint             `gorm:"not null;index" json:"user_id"`
	FDNumber        string           `gorm:"not null" json:"fd_number"`
	BankName        string           `gorm:"not null" json:"bank_name"`
	PrincipalAmount decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"principal_amount"`
	InterestRate    decimal.Decimal  `gorm:"type:decimal(5,2);not null" json:"interest_rate"`
	Tenure          int              `gorm:"not null" json:"tenure"`
	TenureUnit      TenureUnit       `gorm:"not null;default:months" json:"tenure_unit"`
	StartDate       Date             `gorm:"not null" json:"start_date"`
	MaturityDate    Date             `gorm:"not null" json:"maturity_date"`
	InterestAmount  *decimal.Decimal `gorm:"type:decimal(12,2)" json:"interest_amount,omitempty"`
	MaturityAmount  *decimal.Decimal `gorm:"type:decimal(12,2)" json:"maturity_amount,omitempty"`
	IsActive        bool             `gorm:"default:true" json:"is_active"`
	Notes           string           `json:"notes"`
}

// StatusAt classifies the deposit's lifecycle status relative to now.
// The result depends on the current instant, so it is computed on every
// read and never stored on the record.
func (fd *FixedDeposit) StatusAt(now time.Time) FDStatus {
	if !fd.IsActive {
		return StatusClosed
	}
	today := DateOf(now)
	if !fd.MaturityDate.After(today.Time) {
		return StatusMatured
	}
	if !fd.MaturityDate.After(today.AddDays(maturingSoonWindowDays).Time) {
		return StatusMaturingSoon
	}
	return StatusActive
}

// MaturityValue returns the amount payable at maturity: the recorded
// maturity amount, falling back to principal plus recorded interest, and
// finally to the principal alone.
func (fd *FixedDeposit) MaturityValue() decimal.Decimal {
	if fd.MaturityAmount != nil {
		return *fd.MaturityAmount
	}
	if fd.InterestAmount != nil {
		return fd.PrincipalAmount.Add(*fd.InterestAmount)
	}
	return fd.PrincipalAmount
}

// TenureInYears converts the tenure to years for interest calculations.
func (fd *FixedDeposit) TenureInYears() decimal.Decimal {
	return TenureInYears(fd.Tenure, fd.TenureUnit)
}

// TenureInYears converts a tenure in the given unit to years.
func TenureInYears(tenure int, unit TenureUnit) decimal.Decimal {
	if unit == TenureYears {
		return decimal.NewFromInt(int64(tenure))
	}
	return decimal.NewFromInt(int64(tenure)).Div(decimal.NewFromInt(12))
}

// MaturityDateFrom derives a maturity date from a start date and tenure.
func MaturityDateFrom(start Date, tenure int, unit TenureUnit) Date {
	if unit == TenureYears {
		return start.AddYears(tenure)
	}
	return start.AddMonths(tenure)
}

// SimpleInterest returns principal * rate * years / 100, rounded to the
// cent. Interest accrues linearly in elapsed time; there is deliberately
// no compounding anywhere in this application.
func SimpleInterest(principal, ratePercent, years decimal.Decimal) decimal.Decimal {
	return principal.Mul(ratePercent).Mul(years).Div(decimal.NewFromInt(100)).Round(2)
}
