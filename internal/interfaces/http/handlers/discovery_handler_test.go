package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"servicehub.backend/internal/domain/entities"
	domainerrors "servicehub.backend/internal/domain/errors"
	"servicehub.backend/internal/usecases"
)

type discoveryProviderRepoStub struct {
	located []*entities.ServiceProviderProfile
}

func (s *discoveryProviderRepoStub) Create(context.Context, *entities.ServiceProviderProfile) error {
	return nil
}
func (s *discoveryProviderRepoStub) GetByID(context.Context, uuid.UUID) (*entities.ServiceProviderProfile, error) {
	return nil, domainerrors.ErrNotFound
}
func (s *discoveryProviderRepoStub) GetByUserID(context.Context, uuid.UUID) (*entities.ServiceProviderProfile, error) {
	return nil, domainerrors.ErrNotFound
}
func (s *discoveryProviderRepoStub) GetByLicense(context.Context, string) (*entities.ServiceProviderProfile, error) {
	return nil, domainerrors.ErrNotFound
}
func (s *discoveryProviderRepoStub) ListWithLocation(context.Context) ([]*entities.ServiceProviderProfile, error) {
	return s.located, nil
}
func (s *discoveryProviderRepoStub) SetApproval(context.Context, uuid.UUID, bool) error { return nil }
func (s *discoveryProviderRepoStub) SetActive(context.Context, uuid.UUID, bool) error   { return nil }
func (s *discoveryProviderRepoStub) IncrementDues(context.Context, uuid.UUID, float64) error {
	return nil
}
func (s *discoveryProviderRepoStub) DecrementDues(context.Context, uuid.UUID, float64) error {
	return nil
}
func (s *discoveryProviderRepoStub) ApplyReview(context.Context, uuid.UUID, float64) error {
	return nil
}

type discoveryServiceRepoStub struct {
	byProvider map[uuid.UUID][]*entities.Service
}

func (s *discoveryServiceRepoStub) Create(context.Context, *entities.Service) error { return nil }
func (s *discoveryServiceRepoStub) GetByID(context.Context, uuid.UUID) (*entities.Service, error) {
	return nil, domainerrors.ErrNotFound
}
func (s *discoveryServiceRepoStub) ListAvailable(context.Context, entities.ServiceFilter, int, int) ([]*entities.Service, int, error) {
	return nil, 0, nil
}
func (s *discoveryServiceRepoStub) ListByProvider(context.Context, uuid.UUID) ([]*entities.Service, error) {
	return nil, nil
}
func (s *discoveryServiceRepoStub) ListAvailableByProvider(_ context.Context, providerID uuid.UUID) ([]*entities.Service, error) {
	return s.byProvider[providerID], nil
}
func (s *discoveryServiceRepoStub) Update(context.Context, *entities.Service) error { return nil }
func (s *discoveryServiceRepoStub) Delete(context.Context, uuid.UUID) error         { return nil }

func locatedProviderAt(lat, lng float64) *entities.ServiceProviderProfile {
	return &entities.ServiceProviderProfile{
		ID:           uuid.New(),
		BusinessName: "Khan Auto Works",
		ProviderType: entities.ProviderTypeMechanic,
		IsApproved:   true,
		IsActive:     true,
		Rating:       4.5,
		User: &entities.User{
			Latitude:  null.Float64From(lat),
			Longitude: null.Float64From(lng),
		},
	}
}

func newDiscoveryRouter(providers ...*entities.ServiceProviderProfile) (*gin.Engine, *discoveryServiceRepoStub) {
	services := &discoveryServiceRepoStub{byProvider: map[uuid.UUID][]*entities.Service{}}
	uc := usecases.NewDiscoveryUsecase(&discoveryProviderRepoStub{located: providers}, services)
	h := NewDiscoveryHandler(uc)

	r := gin.New()
	r.GET("/providers/nearby", h.DiscoverNearby)
	return r, services
}

func TestDiscoveryHandler_Nearby_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	near := locatedProviderAt(24.8610, 67.0015)
	far := locatedProviderAt(31.5204, 74.3587) // hundreds of km away
	r, services := newDiscoveryRouter(near, far)
	services.byProvider[near.ID] = []*entities.Service{{ID: uuid.New(), Name: "Oil Change"}}

	req := httptest.NewRequest(http.MethodGet, "/providers/nearby?lat=24.8607&lng=67.0011&radius=5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	var hits []*entities.NearbyProvider
	if err := json.Unmarshal(w.Body.Bytes(), &hits); err != nil {
		t.Fatalf("unmarshal hits: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("expected one hit, got %d", len(hits))
	}
	if hits[0].ProviderID != near.ID || len(hits[0].Services) != 1 {
		t.Fatalf("unexpected hit: %+v", hits[0])
	}
}

func TestDiscoveryHandler_Nearby_QueryValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, _ := newDiscoveryRouter()

	cases := []string{
		"/providers/nearby",                               // missing lat/lng
		"/providers/nearby?lat=abc&lng=67",                // non-numeric lat
		"/providers/nearby?lat=24.86&lng=67&radius=wide",  // non-numeric radius
		"/providers/nearby?lat=95&lng=67",                 // latitude out of range
		"/providers/nearby?lat=24.86&lng=67&radius=500",   // radius over the cap
		"/providers/nearby?lat=24.86&lng=67&radius=-1",    // negative radius
	}
	for _, path := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d body=%s", path, w.Code, w.Body.String())
		}
	}
}

func TestDiscoveryHandler_Nearby_FiltersIneligible(t *testing.T) {
	gin.SetMode(gin.TestMode)
	unapproved := locatedProviderAt(24.8610, 67.0015)
	unapproved.IsApproved = false
	maxedOut := locatedProviderAt(24.8612, 67.0018)
	maxedOut.UnpaidDuesCount = entities.MaxUnpaidDues
	r, _ := newDiscoveryRouter(unapproved, maxedOut)

	req := httptest.NewRequest(http.MethodGet, "/providers/nearby?lat=24.8607&lng=67.0011", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	var hits []*entities.NearbyProvider
	if err := json.Unmarshal(w.Body.Bytes(), &hits); err != nil {
		t.Fatalf("unmarshal hits: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("expected no hits, got %d", len(hits))
	}
}
