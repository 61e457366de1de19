package domain

// StrategyCheapest is the provider-selection hint stamped on every canonical
// request. Only one strategy is selectable at this layer.
const StrategyCheapest = "cheapest"

// Result-count bounds per surface. Out-of-range numeric input is clamped to
// the nearest boundary; non-numeric input falls back to the default.
const (
	JobLimitMin     = 1
	JobLimitMax     = 100
	JobLimitDefault = 10

	PeopleLimitMin     = 5
	PeopleLimitMax     = 20
	PeopleLimitDefault = 5
)

// RawJobInput is the job-search form state exactly as the UI collected it:
// filter labels untranslated, the result bound still free text.
type RawJobInput struct {
	Keywords        string `json:"keywords"`
	Location        string `json:"location"`
	Company         string `json:"company"`
	WorkArrangement string `json:"work_arrangement"`
	Seniority       string `json:"seniority"`
	EmploymentType  string `json:"employment_type"`
	Limit           string `json:"limit"`
}

// RawPeopleInput is the people-search form state. CustomQuery switches the
// surface into free-text mode, where Query replaces the company filter.
type RawPeopleInput struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Query       string `json:"query"`
	CustomQuery bool   `json:"custom_query"`
	Limit       string `json:"limit"`
}

// JobSearchRequest is the canonical, backend-ready job search payload. Every
// field present has already passed validation and enum mapping; raw UI labels
// are never serialized.
type JobSearchRequest struct {
	Keywords        string          `json:"keywords"`
	Location        string          `json:"location,omitempty"`
	Company         string          `json:"company,omitempty"`
	WorkArrangement WorkArrangement `json:"work_arrangement,omitempty"`
	Seniority       Seniority       `json:"seniority_level,omitempty"`
	EmploymentType  EmploymentType  `json:"employment_type,omitempty"`
	Limit           int             `json:"limit"`
	Strategy        string          `json:"strategy"`
}

// PeopleSearchRequest is the canonical people search payload.
type PeopleSearchRequest struct {
	Company  string `json:"company,omitempty"`
	Role     string `json:"role,omitempty"`
	Query    string `json:"query,omitempty"`
	Limit    int    `json:"limit"`
	Strategy string `json:"strategy"`
}
