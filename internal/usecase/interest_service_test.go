package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
	apperrors "github.com/wekeepgrowing/loan-eligibility-service/pkg/errors"
)

func TestInterestService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	resp, err := f.customers.CreateOrCheckEligibility(ctx, intakeRequest())
	require.NoError(t, err)
	customerID := resp.Customer.ID

	t.Run("records a product interest", func(t *testing.T) {
		view, err := f.interests.Record(ctx, &dto.InterestRequest{
			CustomerID: customerID,
			BankID:     f.bank.ID,
			ProductID:  &f.product.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Asha Rao", view.CustomerName)
		assert.Equal(t, "State Bank", view.BankName)
		assert.Equal(t, "Personal Loan", view.ProductTitle)
	})

	t.Run("product must belong to the bank", func(t *testing.T) {
		other := &model.Bank{Name: "Other Bank", Pincodes: "560001"}
		require.NoError(t, f.repos.Banks.Create(ctx, other))

		_, err := f.interests.Record(ctx, &dto.InterestRequest{
			CustomerID: customerID,
			BankID:     other.ID,
			ProductID:  &f.product.ID,
		})
		assertAppError(t, err, apperrors.ErrValidation, "")
	})

	t.Run("unknown customer", func(t *testing.T) {
		_, err := f.interests.Record(ctx, &dto.InterestRequest{CustomerID: 999, BankID: f.bank.ID})
		assertAppError(t, err, apperrors.ErrNotFound, "Customer not found")
	})

	t.Run("lists newest first", func(t *testing.T) {
		_, err := f.interests.Record(ctx, &dto.InterestRequest{CustomerID: customerID, BankID: f.bank.ID})
		require.NoError(t, err)

		all, err := f.interests.List(ctx, nil)
		require.NoError(t, err)
		require.Equal(t, 2, all.Count)
		assert.Nil(t, all.Data[0].ProductID)
		assert.NotNil(t, all.Data[1].ProductID)

		missing := uint(999)
		none, err := f.interests.List(ctx, &missing)
		require.NoError(t, err)
		assert.Zero(t, none.Count)
		assert.Empty(t, none.Data)
	})
}
