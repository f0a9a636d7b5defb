package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/infrastructure/database"
)

func TestLoadSeedFile(t *testing.T) {
	file, err := loadSeedFile("../../configs/seed.yaml")
	require.NoError(t, err)

	assert.NotEmpty(t, file.Categories)
	assert.NotEmpty(t, file.Companies)
	require.NotEmpty(t, file.Banks)
	assert.NotEmpty(t, file.Banks[0].Pincodes)
	assert.NotEmpty(t, file.Banks[0].Products)
}

func TestSeederRun(t *testing.T) {
	logger := zap.NewNop()
	db, err := database.NewInMemory(logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close(db, logger)
	})

	file := &seedFile{
		Categories: []string{"CAT A", "unlisted"},
		Companies:  []seedCompany{{Name: "Infosys", Category: "CAT A"}},
		Banks: []seedBank{{
			Name:     "Alpha Bank",
			State:    "Delhi",
			Pincodes: []string{"110001", "110002"},
			Products: []seedProduct{{
				Title:         "Personal Loan",
				MinAge:        intPtr(21),
				MaxAge:        intPtr(58),
				MaxLoanAmount: "1500000",
				SalaryCriteria: []seedSalaryCriteria{
					{Category: "CAT A", MinSalary: "25000"},
					{Category: "CAT B", MinSalary: "35000"},
				},
			}},
			LoanRules: []seedLoanRule{{JobType: "private employee", MinSalary: "25000", MinAge: 21, MaxAge: 58}},
		}},
	}

	s := &seeder{reference: newReferenceService(db, logger), logger: logger}
	ctx := context.Background()

	stats, err := s.Run(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, &seedStats{
		Categories:     2,
		Companies:      1,
		Banks:          1,
		Products:       1,
		SalaryCriteria: 2,
		LoanRules:      1,
	}, stats)

	banks, err := s.reference.ListBanks(ctx)
	require.NoError(t, err)
	require.Len(t, banks, 1)
	assert.Equal(t, []string{"110001", "110002"}, banks[0].PincodeList())

	// A second run finds everything by name.
	stats, err = s.Run(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, &seedStats{}, stats)
}

func TestParseNullDecimal(t *testing.T) {
	d, err := parseNullDecimal(" ")
	require.NoError(t, err)
	assert.False(t, d.Valid)

	d, err = parseNullDecimal("10.5")
	require.NoError(t, err)
	assert.True(t, d.Valid)
	assert.Equal(t, "10.5", d.Decimal.String())

	_, err = parseNullDecimal("ten")
	assert.Error(t, err)
}

func intPtr(v int) *int {
	return &v
}
