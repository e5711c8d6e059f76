package services

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fdtrack/internal/errors"
	"fdtrack/internal/models"
)

// Horizon selects the future span a projection covers.
type Horizon string

const (
	HorizonOneYear   Horizon = "1Y"
	HorizonThreeYear Horizon = "3Y"
	HorizonFiveYear  Horizon = "5Y"
	HorizonTenYear   Horizon = "10Y"
)

// Years maps the horizon to its span in years. Unknown values fall back to
// three years, the default the dashboard chart opens with.
func (h Horizon) Years() int {
	switch h {
	case HorizonOneYear:
		return 1
	case HorizonFiveYear:
		return 5
	case HorizonTenYear:
		return 10
	default:
		return 3
	}
}

// ProjectionPoint is a single sample of projected portfolio value.
type ProjectionPoint struct {
	Label  string          `json:"label"`
	Months int             `json:"months"`
	Value  decimal.Decimal `json:"value"`
}

// ProjectionSeries is an ordered set of projection samples plus the summary
// stats derived from its endpoints.
type ProjectionSeries struct {
	Points         []ProjectionPoint `json:"points"`
	InitialValue   decimal.Decimal   `json:"initial_value"`
	FinalValue     decimal.Decimal   `json:"final_value"`
	InterestEarned decimal.Decimal   `json:"interest_earned"`
	AnnualReturn   decimal.Decimal   `json:"annual_return"`
}

// BankTotal is the summed principal held at one bank.
type BankTotal struct {
	BankName string          `json:"bank_name"`
	Total    decimal.Decimal `json:"total"`
}

// MaturityBucket is the summed principal maturing in one calendar quarter.
type MaturityBucket struct {
	Quarter string          `json:"quarter"`
	Total   decimal.Decimal `json:"total"`
}

// ProjectGrowth projects the combined value of the given deposits over the
// horizon under simple interest. The portfolio is modeled as a single pot:
// the summed principal accrues at the arithmetic mean of the deposits'
// rates, linearly in elapsed time. An empty input yields an empty series.
func ProjectGrowth(deposits []models.FixedDeposit, horizon Horizon) *ProjectionSeries {
	series := &ProjectionSeries{Points: []ProjectionPoint{}}
	if len(deposits) == 0 {
		return series
	}

	var totalPrincipal, rateSum decimal.Decimal
	for i := range deposits {
		totalPrincipal = totalPrincipal.Add(deposits[i].PrincipalAmount)
		rateSum = rateSum.Add(deposits[i].InterestRate)
	}
	avgRate := rateSum.Div(decimal.NewFromInt(int64(len(deposits)))).Round(2)

	months := horizon.Years() * 12
	step := 2
	if months > 24 {
		step = 6
	}

	twelve := decimal.NewFromInt(12)
	for i := 0; i <= months; i += step {
		years := decimal.NewFromInt(int64(i)).Div(twelve)
		value := totalPrincipal.Add(models.SimpleInterest(totalPrincipal, avgRate, years))
		series.Points = append(series.Points, ProjectionPoint{
			Label:  monthLabel(i),
			Months: i,
			Value:  value,
		})
	}

	series.InitialValue = series.Points[0].Value
	series.FinalValue = series.Points[len(series.Points)-1].Value
	series.InterestEarned = series.FinalValue.Sub(series.InitialValue)
	series.AnnualReturn = avgRate
	return series
}

func monthLabel(months int) string {
	if months == 0 {
		return "Now"
	}
	if months%12 == 0 {
		return fmt.Sprintf("%dY", months/12)
	}
	return fmt.Sprintf("%dM", months)
}

// GroupByBank sums principal per bank, preserving the order banks first
// appear in the input.
func GroupByBank(deposits []models.FixedDeposit) []BankTotal {
	totals := []BankTotal{}
	index := make(map[string]int)
	for i := range deposits {
		fd := &deposits[i]
		if pos, ok := index[fd.BankName]; ok {
			totals[pos].Total = totals[pos].Total.Add(fd.PrincipalAmount)
			continue
		}
		index[fd.BankName] = len(totals)
		totals = append(totals, BankTotal{BankName: fd.BankName, Total: fd.PrincipalAmount})
	}
	return totals
}

// GroupByMaturityQuarter sums principal per calendar quarter of maturity,
// sorted by the "YYYY QN" key.
func GroupByMaturityQuarter(deposits []models.FixedDeposit) []MaturityBucket {
	sums := make(map[string]decimal.Decimal)
	for i := range deposits {
		fd := &deposits[i]
		quarter := fmt.Sprintf("%d Q%d", fd.MaturityDate.Year(), (int(fd.MaturityDate.Month())+2)/3)
		sums[quarter] = sums[quarter].Add(fd.PrincipalAmount)
	}

	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buckets := make([]MaturityBucket, 0, len(keys))
	for _, k := range keys {
		buckets = append(buckets, MaturityBucket{Quarter: k, Total: sums[k]})
	}
	return buckets
}

// projectionService serves projections over a user's full deposit
// collection. Inactive deposits are included; the projection views show the
// whole book, not just the open positions.
type projectionService struct {
	db *gorm.DB
}

// NewProjectionService creates a new ProjectionServicer.
func NewProjectionService(db *gorm.DB) ProjectionServicer {
	return &projectionService{db: db}
}

func (s *projectionService) userDeposits(userID uint) ([]models.FixedDeposit, error) {
	var deposits []models.FixedDeposit
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&deposits).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return deposits, nil
}

// GetGrowthProjection projects the user's portfolio over the horizon.
func (s *projectionService) GetGrowthProjection(userID uint, horizon Horizon) (*ProjectionSeries, error) {
	deposits, err := s.userDeposits(userID)
	if err != nil {
		return nil, err
	}
	return ProjectGrowth(deposits, horizon), nil
}

// GetBankBreakdown returns the user's principal grouped by bank.
func (s *projectionService) GetBankBreakdown(userID uint) ([]BankTotal, error) {
	deposits, err := s.userDeposits(userID)
	if err != nil {
		return nil, err
	}
	return GroupByBank(deposits), nil
}

// GetMaturityBreakdown returns the user's principal grouped by maturity
// quarter.
func (s *projectionService) GetMaturityBreakdown(userID uint) ([]MaturityBucket, error) {
	deposits, err := s.userDeposits(userID)
	if err != nil {
		return nil, err
	}
	return GroupByMaturityQuarter(deposits), nil
}
