package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"servicehub.backend/internal/domain/entities"
	domainerrors "servicehub.backend/internal/domain/errors"
	"servicehub.backend/internal/domain/repositories"
	"servicehub.backend/pkg/crypto"
	"servicehub.backend/pkg/jwt"
	"servicehub.backend/pkg/utils"
)

// AccountUsecase handles registration, login and profile business logic
type AccountUsecase struct {
	userRepo     repositories.UserRepository
	customerRepo repositories.CustomerRepository
	providerRepo repositories.ProviderRepository
	uow          repositories.UnitOfWork
	jwtService   *jwt.JWTService
}

// NewAccountUsecase creates a new account usecase
func NewAccountUsecase(
	userRepo repositories.UserRepository,
	customerRepo repositories.CustomerRepository,
	providerRepo repositories.ProviderRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.JWTService,
) *AccountUsecase {
	return &AccountUsecase{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		providerRepo: providerRepo,
		uow:          uow,
		jwtService:   jwtService,
	}
}

// RegisterCustomer creates the user account and its customer profile in
// one transaction. The profile always exists once registration returns;
// nothing provisions it lazily later.
func (u *AccountUsecase) RegisterCustomer(ctx context.Context, input *entities.RegisterCustomerInput) (*entities.AuthResponse, error) {
	if _, err := u.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.AlreadyExists("email already registered")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	user, err := buildUser(input.Email, input.Password, input.FullName, entities.UserRoleCustomer,
		input.PhoneNumber, input.Address, input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	profile := &entities.CustomerProfile{
		ID:                     utils.GenerateUUIDv7(),
		UserID:                 user.ID,
		PreferredPaymentMethod: entities.PaymentMethodCash,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		return u.customerRepo.Create(txCtx, profile)
	})
	if err != nil {
		return nil, err
	}

	return u.issueTokens(user)
}

// RegisterProvider creates the user account and its provider profile in
// one transaction. The profile starts unapproved; an admin flips the
// flag before the provider can be discovered.
func (u *AccountUsecase) RegisterProvider(ctx context.Context, input *entities.RegisterProviderInput) (*entities.AuthResponse, error) {
	if !input.ProviderType.Valid() {
		return nil, domainerrors.BadRequest("unknown provider type")
	}
	if _, err := u.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.AlreadyExists("email already registered")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if _, err := u.providerRepo.GetByLicense(ctx, input.BusinessLicense); err == nil {
		return nil, domainerrors.AlreadyExists("business license already registered")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	user, err := buildUser(input.Email, input.Password, input.FullName, entities.UserRoleProvider,
		input.PhoneNumber, input.Address, input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	profile := &entities.ServiceProviderProfile{
		ID:              utils.GenerateUUIDv7(),
		UserID:          user.ID,
		BusinessName:    input.BusinessName,
		BusinessLicense: input.BusinessLicense,
		ProviderType:    input.ProviderType,
		IsApproved:      false,
		IsActive:        true,
		CommissionRate:  10,
	}
	if input.Description != "" {
		profile.Description = null.StringFrom(input.Description)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		return u.providerRepo.Create(txCtx, profile)
	})
	if err != nil {
		return nil, err
	}

	return u.issueTokens(user)
}

// Login verifies credentials and issues a token pair
func (u *AccountUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("invalid email or password")
		}
		return nil, err
	}
	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.Unauthorized("invalid email or password")
	}
	return u.issueTokens(user)
}

// GetMe returns the caller's account
func (u *AccountUsecase) GetMe(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// GetCustomerProfile resolves the caller's customer profile
func (u *AccountUsecase) GetCustomerProfile(ctx context.Context, userID uuid.UUID) (*entities.CustomerProfile, error) {
	profile, err := u.customerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.AccessDenied("caller is not a customer")
		}
		return nil, err
	}
	return profile, nil
}

// GetProviderProfile resolves the caller's provider profile
func (u *AccountUsecase) GetProviderProfile(ctx context.Context, userID uuid.UUID) (*entities.ServiceProviderProfile, error) {
	profile, err := u.providerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.AccessDenied("caller is not a provider")
		}
		return nil, err
	}
	return profile, nil
}

// ApproveProvider is the admin action that opens the gate for a new
// provider
func (u *AccountUsecase) ApproveProvider(ctx context.Context, providerID uuid.UUID, approved bool) error {
	if _, err := u.providerRepo.GetByID(ctx, providerID); err != nil {
		return err
	}
	return u.providerRepo.SetApproval(ctx, providerID, approved)
}

func (u *AccountUsecase) issueTokens(user *entities.User) (*entities.AuthResponse, error) {
	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return &entities.AuthResponse{
		UserID:       user.ID,
		Role:         user.Role,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

func buildUser(email, password, fullName string, role entities.UserRole, phone, address string, lat, lng *float64) (*entities.User, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         role,
	}
	if phone != "" {
		user.PhoneNumber = null.StringFrom(phone)
	}
	if address != "" {
		user.Address = null.StringFrom(address)
	}
	if lat != nil && lng != nil {
		user.Latitude = null.Float64From(*lat)
		user.Longitude = null.Float64From(*lng)
	}
	return user, nil
}
