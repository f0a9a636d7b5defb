package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
	domainErrors "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/provider"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/repository"
	apperrors "github.com/wekeepgrowing/loan-eligibility-service/pkg/errors"
)

const adminNotFound = "Admin not found"

// AdminService manages console accounts and issues their access tokens
type AdminService struct {
	admins    repository.AdminRepository
	tokens    provider.TokenIssuer
	maxAdmins int
	logger    *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(admins repository.AdminRepository, tokens provider.TokenIssuer, maxAdmins int, logger *zap.Logger) *AdminService {
	return &AdminService{
		admins:    admins,
		tokens:    tokens,
		maxAdmins: maxAdmins,
		logger:    logger,
	}
}

// Login checks credentials and returns a signed token. Unknown emails and
// wrong passwords fail with the same error.
func (s *AdminService) Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	invalid := apperrors.NewAppError(apperrors.ErrInvalidArgument, "Invalid admin credentials", nil)

	admin, err := s.admins.GetByEmail(ctx, model.NormalizeKey(req.Email))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, invalid
		}
		return nil, err
	}
	if err := verifyPassword(admin.PasswordHash, req.Password); err != nil {
		s.logger.Warn("Admin login rejected", zap.String("email", admin.Email))
		return nil, invalid
	}

	token, err := s.tokens.Issue(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue admin token: %w", err)
	}
	return &dto.AdminLoginResponse{
		Message: "Login successful",
		Email:   admin.Email,
		Token:   token,
	}, nil
}

// AllowOpenCreate reports whether an admin may be created without a token,
// which is only the case before the first admin exists.
func (s *AdminService) AllowOpenCreate(ctx context.Context) (bool, error) {
	count, err := s.admins.Count(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// Create adds an admin unless the account cap is reached.
func (s *AdminService) Create(ctx context.Context, req *dto.AdminCreateRequest) (*model.Admin, error) {
	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	admin := &model.Admin{
		Email:        model.NormalizeKey(req.Email),
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}

	if err := s.admins.CreateWithLimit(ctx, admin, s.maxAdmins); err != nil {
		if errors.Is(err, domainErrors.ErrAdminLimitReached) {
			return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, fmt.Sprintf("Maximum %d admins allowed", s.maxAdmins), err)
		}
		return nil, writeError(err, "email", "admin with this email already exists")
	}

	s.logger.Info("Admin created", zap.Uint("admin_id", admin.ID), zap.String("email", admin.Email))
	return admin, nil
}

// Update changes the email, the password, or both. A password change needs
// the current password.
func (s *AdminService) Update(ctx context.Context, id uint, req *dto.AdminUpdateRequest) (*model.Admin, error) {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, adminNotFound)
	}

	errs := fieldErrors{}
	if email := model.NormalizeKey(req.Email); email != "" {
		admin.Email = email
	}
	switch {
	case req.NewPassword == "" && req.OldPassword != "":
		errs.add("new_password", "new password is required")
	case req.NewPassword != "" && req.OldPassword == "":
		errs.add("old_password", "old password is required")
	case req.NewPassword != "":
		if verifyPassword(admin.PasswordHash, req.OldPassword) != nil {
			errs.add("old_password", "old password is incorrect")
			break
		}
		hash, err := hashPassword(req.NewPassword)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = hash
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	if err := s.admins.Update(ctx, admin); err != nil {
		return nil, writeError(err, "email", "admin with this email already exists")
	}
	s.logger.Info("Admin updated", zap.Uint("admin_id", admin.ID))
	return admin, nil
}

func (s *AdminService) List(ctx context.Context) ([]model.Admin, error) {
	return s.admins.List(ctx)
}

// Bootstrap creates the configured first admin when no admin exists yet.
func (s *AdminService) Bootstrap(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil
	}
	open, err := s.AllowOpenCreate(ctx)
	if err != nil || !open {
		return err
	}
	if _, err := s.Create(ctx, &dto.AdminCreateRequest{Email: email, Password: password}); err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
