package dto

import "time"

const (
	RecommendationModePersonalized = "personalized"
	RecommendationModePopular      = "popular"
)

type RecommendedJobResponse struct {
	JobID             int64     `json:"job_id"`
	Title             string    `json:"title"`
	CompanyName       string    `json:"company_name"`
	LogoURL           string    `json:"logo_url,omitempty"`
	Location          string    `json:"location"`
	JobType           string    `json:"job_type"`
	SalaryMin         int64     `json:"salary_min,omitempty"`
	SalaryMax         int64     `json:"salary_max,omitempty"`
	SalaryCurrency    string    `json:"salary_currency,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	ViewsCount        int64     `json:"views_count"`
	ApplicationsCount int64     `json:"applications_count"`
	IsFeatured        bool      `json:"is_featured"`
	EmployerVerified  bool      `json:"employer_verified"`
	Score             float64   `json:"score"`
}

type RecommendationsResponse struct {
	Mode  string                   `json:"mode"`
	Items []RecommendedJobResponse `json:"items"`
}

type SimilarJobsResponse struct {
	Items []RecommendedJobResponse `json:"items"`
}
