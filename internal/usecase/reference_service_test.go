package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
	domainErrors "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/usecase"
	"github.com/wekeepgrowing/loan-eligibility-service/pkg/cache"
	apperrors "github.com/wekeepgrowing/loan-eligibility-service/pkg/errors"
)

type recordingBlobStore struct {
	keys []string
	body []byte
}

func (r *recordingBlobStore) Put(_ context.Context, key, _ string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	r.keys = append(r.keys, key)
	r.body = data
	return "https://cdn.example.com/" + key, nil
}

func TestReferenceService_SnapshotCache(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	mr := miniredis.RunT(t)
	snapshots := cache.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	service := usecase.NewReferenceService(f.repos, snapshots, time.Minute, nil, f.clock, zap.NewNop())

	first, err := service.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, first.Banks, 1)
	require.Len(t, first.Banks[0].Products, 1)
	require.Len(t, first.Banks[0].Products[0].SalaryCriteria, 1)

	// A write that bypasses the service is not visible until the entry expires.
	other := &model.Bank{Name: "Direct Bank", Pincodes: "110001"}
	require.NoError(t, f.repos.Banks.Create(ctx, other))

	cached, err := service.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, cached.Banks, 1)
	assert.True(t, decimal.NewFromInt(30000).Equal(cached.Banks[0].Products[0].SalaryCriteria[0].MinSalary))
	assert.True(t, cached.Banks[0].HasPincode("560002"))

	_, err = service.CreateBank(ctx, &dto.BankRequest{Name: "Canara", Pincodes: "560001"})
	require.NoError(t, err)

	fresh, err := service.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh.Banks, 3)
}

func TestReferenceService_Banks(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate name is a field error", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.reference.CreateBank(ctx, &dto.BankRequest{Name: "state bank", Pincodes: "560001"})
		assertAppError(t, err, apperrors.ErrValidation, "")
	})

	t.Run("invalid pincodes are rejected", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.reference.CreateBank(ctx, &dto.BankRequest{Name: "HDFC", Pincodes: "560001, 12AB56"})

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Contains(t, appErr.Fields()["pincode"], "12AB56")
	})

	t.Run("pincodes are normalised", func(t *testing.T) {
		f := newFixture(t)
		bank, err := f.reference.CreateBank(ctx, &dto.BankRequest{Name: " HDFC ", Pincodes: " 400001 ,400002,,400001"})
		require.NoError(t, err)
		assert.Equal(t, "HDFC", bank.Name)
		assert.Equal(t, []string{"400001", "400002"}, bank.PincodeList())
	})

	t.Run("missing bank", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.reference.GetBank(ctx, 999)
		assertAppError(t, err, apperrors.ErrNotFound, "Bank not found")
		assertAppError(t, f.reference.DeleteBank(ctx, 999), apperrors.ErrNotFound, "Bank not found")
	})
}

func TestReferenceService_BanksByPincodes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	resp, err := f.reference.BanksByPincodes(ctx, "560002,abc,999999")
	require.NoError(t, err)
	require.Len(t, resp.Banks, 1)
	assert.Equal(t, f.bank.ID, resp.Banks[0].ID)
	assert.Equal(t, []string{"abc"}, resp.IgnoredInvalidPincodes)

	resp, err = f.reference.BanksByPincodes(ctx, "999999")
	require.NoError(t, err)
	assert.Empty(t, resp.Banks)

	resp, err = f.reference.BanksByPincodes(ctx, "12,abc")
	assert.ErrorIs(t, err, domainErrors.ErrNoValidPincode)
	require.NotNil(t, resp)
	assert.Equal(t, []string{"12", "abc"}, resp.IgnoredInvalidPincodes)
}

func TestReferenceService_Products(t *testing.T) {
	ctx := context.Background()

	t.Run("age range must be ordered", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.reference.CreateProduct(ctx, &dto.ProductRequest{
			BankID: f.bank.ID, Title: "Home Loan", MinAge: intPtr(60), MaxAge: intPtr(21),
		})
		assertAppError(t, err, apperrors.ErrValidation, "")
	})

	t.Run("unknown bank", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.reference.CreateProduct(ctx, &dto.ProductRequest{BankID: 999, Title: "Home Loan"})
		assertAppError(t, err, apperrors.ErrValidation, "")
	})

	t.Run("duplicate title within a bank", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.reference.CreateProduct(ctx, &dto.ProductRequest{BankID: f.bank.ID, Title: "PERSONAL LOAN"})
		assertAppError(t, err, apperrors.ErrValidation, "")
	})

	t.Run("bank without products", func(t *testing.T) {
		f := newFixture(t)
		bank, err := f.reference.CreateBank(ctx, &dto.BankRequest{Name: "Empty Bank", Pincodes: "600001"})
		require.NoError(t, err)

		_, err = f.reference.ListProductsByBank(ctx, bank.ID)
		assertAppError(t, err, apperrors.ErrNotFound, "No products found for this bank")

		products, err := f.reference.ListProductsByBank(ctx, f.bank.ID)
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})
}

func TestReferenceService_Categories(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	unlisted, err := f.repos.Categories.EnsureByName(ctx, model.UnlistedCategoryName)
	require.NoError(t, err)

	_, err = f.reference.UpdateCategory(ctx, unlisted.ID, &dto.NameRequest{Name: "Renamed"})
	assertAppError(t, err, apperrors.ErrValidation, "")
	assert.Error(t, f.reference.DeleteCategory(ctx, unlisted.ID))

	_, err = f.reference.CreateCompany(ctx, &dto.CompanyRequest{Name: "Acme", CategoryID: 999})
	assertAppError(t, err, apperrors.ErrValidation, "")
}

func TestReferenceService_UploadBankLogo(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.reference.UploadBankLogo(ctx, f.bank.ID, "logo.png", "image/png", bytes.NewReader([]byte("png")))
	assert.ErrorIs(t, err, domainErrors.ErrBlobStoreDisabled)

	blobs := &recordingBlobStore{}
	service := usecase.NewReferenceService(f.repos, nil, 0, blobs, f.clock, zap.NewNop())

	_, err = service.UploadBankLogo(ctx, f.bank.ID, "logo.txt", "text/plain", bytes.NewReader([]byte("txt")))
	assertAppError(t, err, apperrors.ErrValidation, "")

	bank, err := service.UploadBankLogo(ctx, f.bank.ID, "Logo.PNG", "image/png", bytes.NewReader([]byte("png")))
	require.NoError(t, err)
	require.Len(t, blobs.keys, 1)
	assert.Regexp(t, `^banks/\d+/[0-9a-f-]{36}\.png$`, blobs.keys[0])
	assert.Equal(t, "https://cdn.example.com/"+blobs.keys[0], bank.LogoURL)
	assert.Equal(t, []byte("png"), blobs.body)
}
