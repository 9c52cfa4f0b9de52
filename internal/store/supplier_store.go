package store

import (
	"math"
	"strings"

	"supplier-portal/internal/model"
)

// SupplierStore holds the generated corpus for the process lifetime. The
// slice is never mutated after construction, so concurrent reads need no
// locking.
type SupplierStore struct {
	suppliers []model.Supplier
}

// NewSupplierStore wraps a generated corpus. The store takes ownership of
// the slice; callers must not modify it afterwards.
func NewSupplierStore(suppliers []model.Supplier) *SupplierStore {
	return &SupplierStore{suppliers: suppliers}
}

// Count returns the corpus size
func (s *SupplierStore) Count() int {
	return len(s.suppliers)
}

// Paginate returns the records in [skip, skip+limit) in id order, and the
// total corpus size. An out-of-range skip yields an empty slice; limit is
// clamped to the remaining length.
func (s *SupplierStore) Paginate(skip, limit int) ([]model.Supplier, int) {
	total := len(s.suppliers)
	if skip < 0 {
		skip = 0
	}
	if skip >= total {
		return []model.Supplier{}, total
	}
	// Clamp against the remaining length rather than computing skip+limit,
	// which could overflow for absurd caller-supplied limits.
	remaining := total - skip
	if limit < 0 || limit > remaining {
		limit = remaining
	}
	return s.suppliers[skip : skip+limit], total
}

// Search returns every record whose name or category contains the query as a
// case-insensitive substring. The empty query matches everything.
func (s *SupplierStore) Search(query string) []model.Supplier {
	q := strings.ToLower(query)
	results := []model.Supplier{}
	for _, sup := range s.suppliers {
		if strings.Contains(strings.ToLower(sup.Name), q) ||
			strings.Contains(strings.ToLower(sup.Category), q) {
			results = append(results, sup)
		}
	}
	return results
}

// Stats computes aggregate statistics over the full corpus. The corpus is
// immutable, so recomputing per call is cheap enough and keeps no state.
func (s *SupplierStore) Stats() model.DashboardStats {
	seen := make(map[string]struct{})
	var ratingSum float64
	verified := 0
	for _, sup := range s.suppliers {
		seen[sup.Category] = struct{}{}
		ratingSum += sup.Rating
		if sup.WalmartVerified {
			verified++
		}
	}

	avg := 0.0
	if len(s.suppliers) > 0 {
		avg = math.Round(ratingSum/float64(len(s.suppliers))*10) / 10
	}

	return model.DashboardStats{
		TotalSuppliers:  len(s.suppliers),
		TotalCategories: len(seen),
		AvgRating:       avg,
		VerifiedCount:   verified,
	}
}
