package eligibility

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
)

var (
	catA     = model.CompanyCategory{ID: 1, Name: "CAT A"}
	unlisted = model.CompanyCategory{ID: 2, Name: model.UnlistedCategoryName}
)

func intPtr(v int) *int {
	return &v
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nullDec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func criteria(id, productID uint, category model.CompanyCategory, min string) model.SalaryCriteria {
	return model.SalaryCriteria{ID: id, ProductID: productID, CategoryID: category.ID, MinSalary: dec(min)}
}

func profile(salary string, age int, category model.CompanyCategory) Profile {
	return Profile{
		EmploymentCategory: model.EmploymentPrivate,
		MonthlySalary:      dec(salary),
		Pincode:            "110001",
		Age:                intPtr(age),
		Category:           category,
	}
}

func TestProductStrategy_SalaryBoundary(t *testing.T) {
	snapshot := &Snapshot{Banks: []model.Bank{{
		ID: 1, Name: "Alpha Bank", Pincodes: "110001",
		Products: []model.Product{{
			ID: 10, BankID: 1, Title: "Personal Loan",
			SalaryCriteria: []model.SalaryCriteria{criteria(100, 10, catA, "50000")},
		}},
	}}}
	strategy := NewProductStrategy(Options{})

	report, err := strategy.Evaluate(profile("50000", 30, catA), snapshot)
	require.NoError(t, err)
	require.Len(t, report.Offers, 1)
	assert.True(t, report.Offers[0].MinSalaryRequired.Equal(dec("50000")))

	report, err = strategy.Evaluate(profile("49999.99", 30, catA), snapshot)
	require.NoError(t, err)
	assert.Empty(t, report.Offers)
	require.Len(t, report.Reasons, 1)
	assert.Equal(t, ReasonSalaryBelowMinimum, report.Reasons[0].Code)
	assert.Contains(t, report.Reasons[0].Message, "50000")
}

func TestProductStrategy_CrossProductCompleteness(t *testing.T) {
	snapshot := &Snapshot{Banks: []model.Bank{
		{
			ID: 1, Name: "Alpha Bank", Pincodes: "110001, 110002",
			Products: []model.Product{
				{ID: 10, BankID: 1, Title: "Young Saver", MinAge: intPtr(18), MaxAge: intPtr(25),
					SalaryCriteria: []model.SalaryCriteria{criteria(100, 10, catA, "10000")}},
				{ID: 11, BankID: 1, Title: "Premium", MinAge: intPtr(21), MaxAge: intPtr(60),
					SalaryCriteria: []model.SalaryCriteria{criteria(101, 11, catA, "30000")}},
			},
		},
		{
			ID: 2, Name: "Beta Bank", Pincodes: "110001",
			Products: []model.Product{
				{ID: 20, BankID: 2, Title: "Gold",
					SalaryCriteria: []model.SalaryCriteria{criteria(200, 20, unlisted, "10000")}},
				{ID: 21, BankID: 2, Title: "Platinum",
					SalaryCriteria: []model.SalaryCriteria{criteria(201, 21, catA, "90000")}},
			},
		},
	}}

	report, err := NewProductStrategy(Options{}).Evaluate(profile("40000", 30, catA), snapshot)
	require.NoError(t, err)

	require.Len(t, report.Offers, 1)
	assert.Equal(t, uint(11), report.Offers[0].ProductID)
	assert.Equal(t, "21-60", report.Offers[0].AgeLimit)
	assert.Equal(t, "CAT A", report.Offers[0].CompanyCategory)

	codes := make([]string, 0, len(report.Reasons))
	for _, r := range report.Reasons {
		codes = append(codes, r.Code)
	}
	assert.Equal(t, []string{ReasonAgeOutOfRange, ReasonNoSalaryCriteria, ReasonSalaryBelowMinimum}, codes)
	assert.Equal(t, uint(10), report.Reasons[0].ProductID)
	assert.Contains(t, report.Reasons[0].Message, "maximum age 25")
	assert.Contains(t, report.Reasons[1].Message, "CAT A")
}

func TestProductStrategy_PincodeGateSkipsBank(t *testing.T) {
	snapshot := &Snapshot{Banks: []model.Bank{{
		ID: 1, Name: "Alpha Bank", Pincodes: "560001",
		Products: []model.Product{
			{ID: 10, Title: "A", SalaryCriteria: []model.SalaryCriteria{criteria(1, 10, catA, "1")}},
			{ID: 11, Title: "B", SalaryCriteria: []model.SalaryCriteria{criteria(2, 11, catA, "1")}},
		},
	}}}

	report, err := NewProductStrategy(Options{}).Evaluate(profile("40000", 30, catA), snapshot)
	require.NoError(t, err)
	assert.Empty(t, report.Offers)
	require.Len(t, report.Reasons, 1)
	assert.Equal(t, ReasonBankNotServingArea, report.Reasons[0].Code)
	assert.Zero(t, report.Reasons[0].ProductID)
}

func TestProductStrategy_FirstCriteriaRowWins(t *testing.T) {
	product := model.Product{ID: 10, BankID: 1, Title: "Personal Loan",
		SalaryCriteria: []model.SalaryCriteria{
			criteria(7, 10, catA, "20000"),
			criteria(5, 10, catA, "60000"),
			criteria(6, 10, unlisted, "1000"),
		}}
	snapshot := &Snapshot{Banks: []model.Bank{{ID: 1, Name: "Alpha", Pincodes: "110001", Products: []model.Product{product}}}}
	strategy := NewProductStrategy(Options{})

	report, err := strategy.Evaluate(profile("70000", 30, catA), snapshot)
	require.NoError(t, err)
	require.Len(t, report.Offers, 1)
	assert.True(t, report.Offers[0].MinSalaryRequired.Equal(dec("60000")), "lowest id is evaluated first")

	report, err = strategy.Evaluate(profile("10000", 30, catA), snapshot)
	require.NoError(t, err)
	require.Len(t, report.Reasons, 1)
	assert.Contains(t, report.Reasons[0].Message, "minimum 60000", "rejection cites the first row, not the lowest")
}

func TestProductStrategy_LoanEstimate(t *testing.T) {
	snapshot := &Snapshot{Banks: []model.Bank{{
		ID: 1, Name: "Alpha", Pincodes: "110001",
		Products: []model.Product{
			{ID: 10, Title: "No Cap", MinTenure: intPtr(12), MaxTenure: intPtr(60),
				MinRate: nullDec("10.5"), MaxRate: nullDec("14"),
				SalaryCriteria: []model.SalaryCriteria{criteria(1, 10, catA, "1000")}},
			{ID: 11, Title: "Capped", MinTenure: intPtr(12),
				MinLoanAmount: nullDec("100000"), MaxLoanAmount: nullDec("750000"), FOIR: "50%",
				SalaryCriteria: []model.SalaryCriteria{criteria(2, 11, catA, "1000")}},
		},
	}}}

	report, err := NewProductStrategy(Options{}).Evaluate(profile("50000", 30, catA), snapshot)
	require.NoError(t, err)
	require.Len(t, report.Offers, 2)

	noCap := report.Offers[0]
	assert.True(t, noCap.EstimatedMaxLoan.Equal(dec("250000")))
	assert.Equal(t, "Up to ₹250,000", noCap.MaxLoanAmount)
	assert.Equal(t, "12-60", noCap.Tenure)
	assert.Equal(t, "10.5-14", noCap.RateOfInterest)
	assert.Equal(t, notAvailable, noCap.LoanAmount)
	assert.Equal(t, notAvailable, noCap.AgeLimit)

	capped := report.Offers[1]
	assert.True(t, capped.EstimatedMaxLoan.Equal(dec("750000")))
	assert.Equal(t, "100000-750000", capped.LoanAmount)
	assert.Equal(t, notAvailable, capped.Tenure, "a missing bound renders N/A")
	assert.Equal(t, "50%", capped.FOIR)
}

func TestProductStrategy_CustomMultiplier(t *testing.T) {
	snapshot := &Snapshot{Banks: []model.Bank{{ID: 1, Name: "Alpha", Pincodes: "110001",
		Products: []model.Product{{ID: 10, Title: "P", SalaryCriteria: []model.SalaryCriteria{criteria(1, 10, catA, "1")}}}}}}

	report, err := NewProductStrategy(Options{LoanMultiplier: decimal.NewFromInt(3)}).Evaluate(profile("1000", 30, catA), snapshot)
	require.NoError(t, err)
	require.Len(t, report.Offers, 1)
	assert.True(t, report.Offers[0].EstimatedMaxLoan.Equal(dec("3000")))
}

func TestProductStrategy_UnknownAgeSkipsAgeGate(t *testing.T) {
	snapshot := &Snapshot{Banks: []model.Bank{{ID: 1, Name: "Alpha", Pincodes: "110001",
		Products: []model.Product{{ID: 10, Title: "P", MinAge: intPtr(21), MaxAge: intPtr(30),
			SalaryCriteria: []model.SalaryCriteria{criteria(1, 10, catA, "1")}}}}}}

	p := profile("1000", 0, catA)
	p.Age = nil
	report, err := NewProductStrategy(Options{}).Evaluate(p, snapshot)
	require.NoError(t, err)
	assert.Len(t, report.Offers, 1)
}

func TestProductStrategy_OrdersByBankThenProduct(t *testing.T) {
	mk := func(id uint) model.Product {
		return model.Product{ID: id, Title: "P", SalaryCriteria: []model.SalaryCriteria{criteria(id, id, catA, "1")}}
	}
	snapshot := &Snapshot{Banks: []model.Bank{
		{ID: 2, Name: "Beta", Pincodes: "110001", Products: []model.Product{mk(22), mk(21)}},
		{ID: 1, Name: "Alpha", Pincodes: "110001", Products: []model.Product{mk(12), mk(11)}},
	}}

	report, err := NewProductStrategy(Options{}).Evaluate(profile("1000", 30, catA), snapshot)
	require.NoError(t, err)
	var got []uint
	for _, o := range report.Offers {
		got = append(got, o.ProductID)
	}
	assert.Equal(t, []uint{11, 12, 21, 22}, got)
}

func TestProductStrategy_InvalidProfile(t *testing.T) {
	_, err := NewProductStrategy(Options{}).Evaluate(profile("-1", 30, catA), &Snapshot{})
	assert.True(t, errors.Is(err, domainErrors.ErrInvalidProfile))
}

func TestLegacyRuleStrategy(t *testing.T) {
	snapshot := &Snapshot{Banks: []model.Bank{
		{
			ID: 1, Name: "Alpha Bank", Pincodes: "110001",
			LoanRules: []model.LoanRule{
				{ID: 1, BankID: 1, JobType: " Private Employee ", MinSalary: dec("25000"), MinAge: 21, MaxAge: 58,
					Tenure: intPtr(60), MinRate: nullDec("10.5"), MaxRate: nullDec("16")},
				{ID: 2, BankID: 1, JobType: "Government", MinSalary: dec("20000"), MinAge: 21, MaxAge: 60},
				{ID: 3, BankID: 1, JobType: "private employee", MinSalary: dec("90000"), MinAge: 21, MaxAge: 58},
			},
		},
		{ID: 2, Name: "Beta Bank", Pincodes: "400001"},
	}}
	strategy := NewLegacyRuleStrategy(Options{})
	assert.Equal(t, StrategyLegacyRule, strategy.Name())

	report, err := strategy.Evaluate(profile("30000", 30, catA), snapshot)
	require.NoError(t, err)
	require.Len(t, report.Offers, 1)
	offer := report.Offers[0]
	assert.Equal(t, " Private Employee ", offer.JobType)
	assert.Equal(t, "60", offer.Tenure)
	assert.Equal(t, "21-58", offer.AgeLimit)
	assert.Equal(t, "10.5-16", offer.RateOfInterest)
	assert.Equal(t, "Up to ₹150,000", offer.MaxLoanAmount)

	codes := make([]string, 0, len(report.Reasons))
	for _, r := range report.Reasons {
		codes = append(codes, r.Code)
	}
	assert.Equal(t, []string{ReasonEmploymentTypeMismatch, ReasonSalaryBelowMinimum, ReasonBankNotServingArea}, codes)

	p := profile("30000", 0, catA)
	p.Age = nil
	report, err = strategy.Evaluate(p, snapshot)
	require.NoError(t, err)
	assert.Empty(t, report.Offers)
	assert.Equal(t, ReasonAgeUnknown, report.Reasons[0].Code)
}

func TestReportTopReasons(t *testing.T) {
	r := &Report{Reasons: make([]Reason, 8)}
	assert.Len(t, r.TopReasons(5), 5)
	assert.Len(t, r.Reasons, 8)
	assert.Len(t, r.TopReasons(0), 8)
	assert.Len(t, (&Report{Reasons: make([]Reason, 2)}).TopReasons(5), 2)
}

func TestNewStrategy(t *testing.T) {
	s, err := NewStrategy("", Options{})
	require.NoError(t, err)
	assert.Equal(t, StrategyProduct, s.Name())

	s, err = NewStrategy(StrategyLegacyRule, Options{})
	require.NoError(t, err)
	assert.Equal(t, StrategyLegacyRule, s.Name())

	_, err = NewStrategy("ranked", Options{})
	assert.Error(t, err)
}
