package adzuna

import (
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// Config defines Adzuna API client settings
type Config struct {
	AppID      string
	AppKey     string
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration

	// RatePerMinute throttles outgoing calls; zero disables throttling
	RatePerMinute int
}

// Client queries Adzuna job search API
type Client struct {
	appID      string
	appKey     string
	base       *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
}

// SearchParams describe a job search request
type SearchParams struct {
	What           string
	Where          string
	Country        string
	ResultsPerPage int
	Page           int // 1-based, default 1
	SortBy         string
	Category       string
	MaxDaysOld     int
}

type jobSearchResponse struct {
	Count   int          `json:"count"`
	Results []jobPosting `json:"results"`
}

type jobPosting struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Company      companySummary  `json:"company"`
	Location     locationSummary `json:"location"`
	Created      string          `json:"created"`
	RedirectURL  string          `json:"redirect_url"`
	ContractType string          `json:"contract_type"`
	ContractTime string          `json:"contract_time"`
	SalaryMin    *float64        `json:"salary_min"`
	SalaryMax    *float64        `json:"salary_max"`
}

type companySummary struct {
	DisplayName string `json:"display_name"`
}

type locationSummary struct {
	DisplayName string `json:"display_name"`
}

// Job represents an Adzuna posting with provider-native values
type Job struct {
	ID           string
	Title        string
	CompanyName  string
	Location     string
	ContractType string // permanent, contract
	ContractTime string // full_time, part_time
	URL          string
	Created      string
	SalaryMin    *float64
	SalaryMax    *float64
}

func (p jobPosting) toJob() Job {
	return Job{
		ID:           p.ID,
		Title:        p.Title,
		CompanyName:  p.Company.DisplayName,
		Location:     p.Location.DisplayName,
		ContractType: p.ContractType,
		ContractTime: p.ContractTime,
		URL:          p.RedirectURL,
		Created:      p.Created,
		SalaryMin:    p.SalaryMin,
		SalaryMax:    p.SalaryMax,
	}
}
