package usecases

import "time"

// Discovery defaults
const DefaultSearchRadiusKm = 10.0
const MaxSearchRadiusKm = 100.0

// Billing defaults
const DefaultCommissionGrace = 7 * 24 * time.Hour
const DefaultInvoiceDueIn = 7 * 24 * time.Hour

// Invoice numbers look like INV-20260901-0001; the counter restarts
// every calendar day.
const invoiceNumberLayout = "20060102"

// Review bounds
const MinRating = 1
const MaxRating = 5
