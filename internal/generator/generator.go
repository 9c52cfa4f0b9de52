// Package generator materializes the supplier corpus. Every field of every
// record is derived from a single base seed (1962 + index) through fixed
// per-field offsets, so two runs with the same count produce identical data.
package generator

import (
	"fmt"
	"math"
	"strings"

	"supplier-portal/internal/model"
	"supplier-portal/internal/seedrand"
)

const baseSeed = 1962

// Per-field seed offsets. Each field reads its own slice of the seed space
// so the derived values are independent of each other.
const (
	offsetCategory  = 100
	offsetRating    = 200
	offsetAIScore   = 300
	offsetLocation  = 400
	offsetRegion    = 500
	offsetYears     = 600
	offsetEmployees = 700
	offsetPrice     = 750
	offsetProjects  = 800
	offsetVerified  = 850
	offsetResponse  = 900
	offsetAddress   = 950
)

// Lookup tables. Selection is by positional index, so order matters as much
// as content.
var names = []string{
	"Global Supplies Inc", "Prime Manufacturing", "Quality Materials Co",
	"BuildRight Industries", "EcoTech Solutions", "FastTrack Logistics",
	"Premium Parts Ltd", "Industrial Dynamics", "CoreFlow Systems",
	"VisionPoint Supplies", "NextGen Manufacturing", "Apex Solutions Inc",
	"Pinnacle Resources", "Elite Distribution", "Quantum Components",
	"Stellar Manufacturing", "Nexus Industries", "Titan Solutions",
}

var categories = []string{
	"Concrete & Cement", "Steel & Metal", "Lumber & Wood",
	"Roofing Materials", "Insulation", "Drywall & Gypsum",
	"Electrical", "Plumbing", "HVAC", "Flooring",
	"Windows & Doors", "Materials & Supplies", "Manufacturing",
	"Logistics", "Technology", "Engineering",
}

var regions = []string{"Northeast", "Southeast", "Midwest", "Southwest", "West"}

var cities = []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Denver", "Atlanta", "Seattle"}

var sizes = []string{"Small (1-50)", "Medium (51-500)", "Large (500+)"}

var priceRanges = []string{"Budget ($)", "Standard ($$)", "Premium ($$$)", "Enterprise ($$$$)"}

var paymentTerms = []string{"Net 30", "Net 60", "Net 90", "COD"}

// pick indexes a lookup table with a [0,1) value
func pick(table []string, v float64) string {
	return table[int(v*float64(len(table)))]
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Generate derives count supplier records. It is pure arithmetic over the
// fixed tables above and cannot fail.
func Generate(count int) []model.Supplier {
	suppliers := make([]model.Supplier, 0, count)
	for i := 0; i < count; i++ {
		seed := baseSeed + i

		category := pick(categories, seedrand.Value(seed+offsetCategory))
		city := pick(cities, seedrand.Value(seed+offsetLocation))
		years := 5 + int(seedrand.Value(seed+offsetYears)*40)

		products := make([]string, 3)
		for j := range products {
			products[j] = pick(categories, seedrand.Value(seed+offsetCategory+j))
		}

		suppliers = append(suppliers, model.Supplier{
			ID:                i + 1,
			Name:              fmt.Sprintf("%s #%d", pick(names, seedrand.Value(seed)), i+1),
			Category:          category,
			Rating:            round1(3.5 + seedrand.Value(seed+offsetRating)*1.5),
			AIScore:           70 + int(seedrand.Value(seed+offsetAIScore)*30),
			Location:          city,
			Region:            pick(regions, seedrand.Value(seed+offsetRegion)),
			YearsInBusiness:   years,
			Employees:         10 + int(seedrand.Value(seed+offsetEmployees)*500),
			ProjectsCompleted: 100 + int(seedrand.Value(seed+offsetProjects)*1000),
			ResponseTime:      fmt.Sprintf("%dh", 1+int(seedrand.Value(seed+offsetResponse)*24)),
			Address:           fmt.Sprintf("%d Main St", int(seedrand.Value(seed+offsetAddress)*9000)),
			City:              city,
			WalmartVerified:   seedrand.Value(seed+offsetVerified) > 0.3,
			Size:              pick(sizes, seedrand.Value(seed+offsetEmployees)),
			PriceRange:        pick(priceRanges, seedrand.Value(seed+offsetPrice)),
			MinOrder:          fmt.Sprintf("$%d", 100+int(seedrand.Value(seed+offsetProjects)*10000)),
			PaymentTerms:      pick(paymentTerms, seedrand.Value(seed+offsetYears)),
			Description:       fmt.Sprintf("Leading %s provider with %d years of experience.", strings.ToLower(category), years),
			Products:          products,
		})
	}
	return suppliers
}
