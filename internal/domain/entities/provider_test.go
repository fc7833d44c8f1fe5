package entities

import (
	"testing"

	"github.com/volatiletech/null/v8"
)

func TestEligibleForRequests(t *testing.T) {
	p := &ServiceProviderProfile{IsApproved: true, IsActive: true, UnpaidDuesCount: 0}
	if !p.EligibleForRequests() {
		t.Fatal("approved active provider with no dues should be eligible")
	}

	p.UnpaidDuesCount = MaxUnpaidDues - 1
	if !p.EligibleForRequests() {
		t.Fatal("provider below the dues ceiling should be eligible")
	}

	p.UnpaidDuesCount = MaxUnpaidDues
	if p.EligibleForRequests() {
		t.Fatal("provider at the dues ceiling should be ineligible")
	}

	p = &ServiceProviderProfile{IsApproved: false, IsActive: true}
	if p.EligibleForRequests() {
		t.Fatal("unapproved provider should be ineligible")
	}

	p = &ServiceProviderProfile{IsApproved: true, IsActive: false}
	if p.EligibleForRequests() {
		t.Fatal("inactive provider should be ineligible")
	}
}

func TestProviderType_Valid(t *testing.T) {
	for _, pt := range []ProviderType{ProviderTypeMechanic, ProviderTypeFuelStation,
		ProviderTypeTowingService, ProviderTypeCarWash, ProviderTypePartsDealer} {
		if !pt.Valid() {
			t.Fatalf("expected %s to be valid", pt)
		}
	}
	if ProviderType("food_truck").Valid() {
		t.Fatal("unknown provider type should be invalid")
	}
}

func TestUser_HasLocation(t *testing.T) {
	u := &User{}
	if u.HasLocation() {
		t.Fatal("user without coordinates should have no location")
	}
	u.Latitude = null.Float64From(24.86)
	u.Longitude = null.Float64From(67.00)
	if !u.HasLocation() {
		t.Fatal("user with both coordinates should have a location")
	}
}

func TestInvoice_RemainingAmount(t *testing.T) {
	inv := &Invoice{TotalAmount: 3300, PaidAmount: 1300}
	if got := inv.RemainingAmount(); got != 2000 {
		t.Fatalf("expected remaining 2000, got %v", got)
	}
}

func TestPaymentMethod_Valid(t *testing.T) {
	for _, m := range []PaymentMethod{PaymentMethodCash, PaymentMethodOnline, PaymentMethodCard} {
		if !m.Valid() {
			t.Fatalf("expected %s to be valid", m)
		}
	}
	if PaymentMethod("barter").Valid() {
		t.Fatal("unknown payment method should be invalid")
	}
}
