package usecases

import (
	"context"
	"sort"

	"servicehub.backend/internal/domain/entities"
	domainerrors "servicehub.backend/internal/domain/errors"
	"servicehub.backend/internal/domain/repositories"
	"servicehub.backend/pkg/geo"
)

// DiscoveryUsecase finds eligible providers near a location
type DiscoveryUsecase struct {
	providerRepo repositories.ProviderRepository
	serviceRepo  repositories.ServiceRepository
}

// NewDiscoveryUsecase creates a new discovery usecase
func NewDiscoveryUsecase(
	providerRepo repositories.ProviderRepository,
	serviceRepo repositories.ServiceRepository,
) *DiscoveryUsecase {
	return &DiscoveryUsecase{
		providerRepo: providerRepo,
		serviceRepo:  serviceRepo,
	}
}

// DiscoverNearby returns providers within radiusKm of the query point,
// closest first. A zero radius falls back to the default. Only
// providers that pass the eligibility gate and have a location are
// considered; the distance filter compares the unrounded value, the
// rounded one is display only. Ties keep insertion order.
func (u *DiscoveryUsecase) DiscoverNearby(ctx context.Context, lat, lng, radiusKm float64) ([]*entities.NearbyProvider, error) {
	if !geo.ValidCoordinate(lat, lng) {
		return nil, domainerrors.InvalidQuery("latitude and longitude are required and must be valid coordinates")
	}
	if radiusKm == 0 {
		radiusKm = DefaultSearchRadiusKm
	}
	if radiusKm < 0 || radiusKm > MaxSearchRadiusKm {
		return nil, domainerrors.InvalidQuery("radius must be between 0 and 100 km")
	}

	providers, err := u.providerRepo.ListWithLocation(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*entities.NearbyProvider, 0, len(providers))
	for _, p := range providers {
		if !p.EligibleForRequests() {
			continue
		}
		if p.User == nil || !p.User.HasLocation() {
			continue
		}
		pLat := p.User.Latitude.Float64
		pLng := p.User.Longitude.Float64
		distance := geo.HaversineDistance(lat, lng, pLat, pLng)
		if distance > radiusKm {
			continue
		}

		services, err := u.serviceRepo.ListAvailableByProvider(ctx, p.ID)
		if err != nil {
			return nil, err
		}

		results = append(results, &entities.NearbyProvider{
			ProviderID:   p.ID,
			BusinessName: p.BusinessName,
			ProviderType: p.ProviderType,
			Rating:       p.Rating,
			DistanceKm:   distance,
			Latitude:     pLat,
			Longitude:    pLng,
			Services:     services,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})
	for _, r := range results {
		r.DistanceKm = geo.RoundKm(r.DistanceKm)
	}
	return results, nil
}
