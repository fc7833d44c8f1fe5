package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"servicehub.backend/internal/domain/entities"
	domainerrors "servicehub.backend/internal/domain/errors"
	"servicehub.backend/internal/domain/repositories"
	"servicehub.backend/pkg/utils"
)

// CatalogUsecase handles categories and provider service management
type CatalogUsecase struct {
	categoryRepo repositories.ServiceCategoryRepository
	serviceRepo  repositories.ServiceRepository
	providerRepo repositories.ProviderRepository
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(
	categoryRepo repositories.ServiceCategoryRepository,
	serviceRepo repositories.ServiceRepository,
	providerRepo repositories.ProviderRepository,
) *CatalogUsecase {
	return &CatalogUsecase{
		categoryRepo: categoryRepo,
		serviceRepo:  serviceRepo,
		providerRepo: providerRepo,
	}
}

// ListCategories lists the active categories
func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]*entities.ServiceCategory, error) {
	return u.categoryRepo.ListActive(ctx)
}

// SearchServices lists available services filtered by substring and
// category
func (u *CatalogUsecase) SearchServices(ctx context.Context, filter entities.ServiceFilter, page, limit int) ([]*entities.Service, int, error) {
	params := utils.GetPaginationParams(page, limit)
	return u.serviceRepo.ListAvailable(ctx, filter, params.Limit, params.CalculateOffset())
}

// GetService returns one service with provider and category joined
func (u *CatalogUsecase) GetService(ctx context.Context, id uuid.UUID) (*entities.Service, error) {
	return u.serviceRepo.GetByID(ctx, id)
}

// CreateService adds a service to the calling provider's catalog
func (u *CatalogUsecase) CreateService(ctx context.Context, userID uuid.UUID, input *entities.CreateServiceInput) (*entities.Service, error) {
	provider, err := u.resolveProvider(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := u.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.BadRequest("unknown service category")
		}
		return nil, err
	}

	service := &entities.Service{
		ID:          utils.GenerateUUIDv7(),
		ProviderID:  provider.ID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		BasePrice:   input.BasePrice,
		IsAvailable: true,
	}
	if input.Description != "" {
		service.Description = null.StringFrom(input.Description)
	}
	if input.EstimatedDuration != "" {
		d, err := time.ParseDuration(input.EstimatedDuration)
		if err != nil || d < 0 {
			return nil, domainerrors.BadRequest("invalid estimated duration")
		}
		service.EstimatedDuration = d
	}

	if err := u.serviceRepo.Create(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// UpdateService edits a service the caller owns
func (u *CatalogUsecase) UpdateService(ctx context.Context, userID, serviceID uuid.UUID, input *entities.UpdateServiceInput) (*entities.Service, error) {
	provider, err := u.resolveProvider(ctx, userID)
	if err != nil {
		return nil, err
	}
	service, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service.ProviderID != provider.ID {
		return nil, domainerrors.AccessDenied("service belongs to another provider")
	}

	if input.Name != "" {
		service.Name = input.Name
	}
	if input.Description != "" {
		service.Description = null.StringFrom(input.Description)
	}
	if input.BasePrice != nil {
		if *input.BasePrice <= 0 {
			return nil, domainerrors.BadRequest("base price must be positive")
		}
		service.BasePrice = *input.BasePrice
	}
	if input.IsAvailable != nil {
		service.IsAvailable = *input.IsAvailable
	}

	if err := u.serviceRepo.Update(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// DeleteService removes a service the caller owns
func (u *CatalogUsecase) DeleteService(ctx context.Context, userID, serviceID uuid.UUID) error {
	provider, err := u.resolveProvider(ctx, userID)
	if err != nil {
		return err
	}
	service, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return err
	}
	if service.ProviderID != provider.ID {
		return domainerrors.AccessDenied("service belongs to another provider")
	}
	return u.serviceRepo.Delete(ctx, serviceID)
}

// ListOwnServices lists every service of the calling provider,
// including paused ones
func (u *CatalogUsecase) ListOwnServices(ctx context.Context, userID uuid.UUID) ([]*entities.Service, error) {
	provider, err := u.resolveProvider(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.serviceRepo.ListByProvider(ctx, provider.ID)
}

func (u *CatalogUsecase) resolveProvider(ctx context.Context, userID uuid.UUID) (*entities.ServiceProviderProfile, error) {
	provider, err := u.providerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.AccessDenied("caller is not a provider")
		}
		return nil, err
	}
	return provider, nil
}
