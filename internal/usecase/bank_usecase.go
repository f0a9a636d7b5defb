package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
	domainErrors "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
)

const bankNotFound = "Bank not found"

func (s *ReferenceService) ListBanks(ctx context.Context) ([]model.Bank, error) {
	return s.repos.Banks.List(ctx)
}

func (s *ReferenceService) GetBank(ctx context.Context, id uint) (*model.Bank, error) {
	bank, err := s.repos.Banks.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, bankNotFound)
	}
	return bank, nil
}

func (s *ReferenceService) CreateBank(ctx context.Context, req *dto.BankRequest) (*model.Bank, error) {
	bank := &model.Bank{}
	if err := applyBankRequest(bank, req); err != nil {
		return nil, err
	}

	if err := s.repos.Banks.Create(ctx, bank); err != nil {
		return nil, writeError(err, "bank_name", "bank with this name already exists")
	}
	s.invalidate(ctx)

	s.logger.Info("Bank created", zap.Uint("bank_id", bank.ID), zap.String("bank_name", bank.Name))
	return bank, nil
}

func (s *ReferenceService) UpdateBank(ctx context.Context, id uint, req *dto.BankRequest) (*model.Bank, error) {
	bank, err := s.GetBank(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyBankRequest(bank, req); err != nil {
		return nil, err
	}

	if err := s.repos.Banks.Update(ctx, bank); err != nil {
		return nil, writeError(err, "bank_name", "bank with this name already exists")
	}
	s.invalidate(ctx)
	return bank, nil
}

func (s *ReferenceService) DeleteBank(ctx context.Context, id uint) error {
	if err := s.repos.Banks.Delete(ctx, id); err != nil {
		return notFound(err, bankNotFound)
	}
	s.invalidate(ctx)

	s.logger.Info("Bank deleted", zap.Uint("bank_id", id))
	return nil
}

// BanksByPincodes resolves banks serving any valid pincode in raw, a comma
// separated list. Invalid entries are reported alongside the result. When no
// entry is valid the response is returned with ErrNoValidPincode.
func (s *ReferenceService) BanksByPincodes(ctx context.Context, raw string) (*dto.BanksByPincodeResponse, error) {
	valid, invalid := model.PartitionPincodes(raw)
	resp := &dto.BanksByPincodeResponse{
		Banks:                  []model.Bank{},
		IgnoredInvalidPincodes: invalid,
	}
	if len(valid) == 0 {
		if resp.IgnoredInvalidPincodes == nil {
			resp.IgnoredInvalidPincodes = []string{}
		}
		return resp, domainErrors.ErrNoValidPincode
	}

	banks, err := s.repos.Banks.ListByPincodes(ctx, valid)
	if err != nil {
		return nil, err
	}
	resp.Banks = banks
	return resp, nil
}

// UploadBankLogo stores an image and records its URL on the bank.
func (s *ReferenceService) UploadBankLogo(ctx context.Context, id uint, filename, contentType string, body io.Reader) (*model.Bank, error) {
	if s.blobs == nil {
		return nil, domainErrors.ErrBlobStoreDisabled
	}
	if err := validateImage(contentType); err != nil {
		return nil, err
	}

	bank, err := s.GetBank(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("banks/%d/%s%s", bank.ID, uuid.NewString(), strings.ToLower(filepath.Ext(filename)))
	url, err := s.blobs.Put(ctx, key, contentType, body)
	if err != nil {
		return nil, err
	}

	bank.LogoURL = url
	if err := s.repos.Banks.Update(ctx, bank); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return bank, nil
}

func applyBankRequest(bank *model.Bank, req *dto.BankRequest) error {
	errs := fieldErrors{}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs.add("bank_name", "bank name is required")
	}

	valid, invalid := model.PartitionPincodes(req.Pincodes)
	switch {
	case len(invalid) > 0:
		errs.add("pincode", fmt.Sprintf("pincodes must be exactly 6 digits: %s", strings.Join(invalid, ", ")))
	case len(valid) == 0:
		errs.add("pincode", "at least one pincode is required")
	}
	if err := errs.err(); err != nil {
		return err
	}

	bank.Name = name
	bank.State = strings.TrimSpace(req.State)
	bank.SetPincodes(valid)
	return nil
}

func validateImage(contentType string) error {
	if !strings.HasPrefix(contentType, "image/") {
		return fieldErrors{"image": "file must be an image"}.err()
	}
	return nil
}
