package model

// Supplier is one generated business-directory record. The corpus is derived
// deterministically at startup and never mutated, so there is no database
// model behind it; JSON field names match the dashboard contract.
type Supplier struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Rating            float64  `json:"rating"`
	AIScore           int      `json:"aiScore"`
	Location          string   `json:"location"`
	Region            string   `json:"region"`
	YearsInBusiness   int      `json:"yearsInBusiness"`
	Employees         int      `json:"employees"`
	ProjectsCompleted int      `json:"projectsCompleted"`
	ResponseTime      string   `json:"responseTime"`
	Address           string   `json:"address"`
	City              string   `json:"city"`
	WalmartVerified   bool     `json:"walmartVerified"`
	Size              string   `json:"size"`
	PriceRange        string   `json:"priceRange"`
	MinOrder          string   `json:"minOrder"`
	PaymentTerms      string   `json:"paymentTerms"`
	Description       string   `json:"description"`
	Products          []string `json:"products"`
}

// DashboardStats are the aggregate statistics shown on the dashboard
type DashboardStats struct {
	TotalSuppliers  int     `json:"totalSuppliers"`
	TotalCategories int     `json:"totalCategories"`
	AvgRating       float64 `json:"avgRating"`
	VerifiedCount   int     `json:"verifiedCount"`
}
