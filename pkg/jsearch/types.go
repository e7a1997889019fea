package jsearch

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Config defines JSearch (RapidAPI) client settings
type Config struct {
	APIKey     string
	BaseURL    string
	Host       string
	HTTPClient *http.Client
	Timeout    time.Duration
	// RatePerSecond caps outbound requests; zero disables limiting
	RatePerSecond float64
}

// Client queries the JSearch job search API
type Client struct {
	apiKey     string
	host       string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// SearchParams describe a JSearch request
type SearchParams struct {
	Query           string
	Country         string
	EmploymentTypes string
	Page            int
	NumPages        int
	DatePosted      string
}

type searchResponse struct {
	Status string       `json:"status"`
	Data   []jobPosting `json:"data"`
}

type jobPosting struct {
	JobID                  string   `json:"job_id"`
	JobTitle               string   `json:"job_title"`
	EmployerName           string   `json:"employer_name"`
	JobCity                string   `json:"job_city"`
	JobState               string   `json:"job_state"`
	JobEmploymentType      string   `json:"job_employment_type"`
	JobMinSalary           *float64 `json:"job_min_salary"`
	JobMaxSalary           *float64 `json:"job_max_salary"`
	JobSalaryPeriod        string   `json:"job_salary_period"`
	JobPostedAtDatetimeUTC string   `json:"job_posted_at_datetime_utc"`
	JobApplyLink           string   `json:"job_apply_link"`
}

// Job is a JSearch posting with provider-native values
type Job struct {
	ID             string
	Title          string
	EmployerName   string
	City           string
	State          string
	EmploymentType string
	MinSalary      *float64
	MaxSalary      *float64
	SalaryPeriod   string
	PostedAt       string
	ApplyLink      string
}
