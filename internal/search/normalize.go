package search

import (
	"strconv"
	"strings"

	"github.com/leadscout-hq/leadscout/internal/domain"
)

// NormalizeJobs validates raw job-search form state and canonicalizes it into
// a backend-ready payload. Free text is trimmed (whitespace-only counts as
// absent), filter labels are mapped through the closed enum tables, and the
// result bound is clamped into [JobLimitMin, JobLimitMax]. The function is
// pure: the same input always produces the same payload.
func NormalizeJobs(raw domain.RawJobInput) (domain.JobSearchRequest, *domain.SearchError) {
	var req domain.JobSearchRequest

	keywords := strings.TrimSpace(raw.Keywords)
	if keywords == "" {
		return req, domain.NewRequiredFieldError("keywords")
	}

	arrangement, hasArrangement, err := domain.ParseWorkArrangement(strings.TrimSpace(raw.WorkArrangement))
	if err != nil {
		return req, err
	}
	seniority, hasSeniority, err := domain.ParseSeniority(strings.TrimSpace(raw.Seniority))
	if err != nil {
		return req, err
	}
	employment, hasEmployment, err := domain.ParseEmploymentType(strings.TrimSpace(raw.EmploymentType))
	if err != nil {
		return req, err
	}

	req = domain.JobSearchRequest{
		Keywords: keywords,
		Location: strings.TrimSpace(raw.Location),
		Company:  strings.TrimSpace(raw.Company),
		Limit:    clampLimit(raw.Limit, domain.JobLimitMin, domain.JobLimitMax, domain.JobLimitDefault),
		Strategy: domain.StrategyCheapest,
	}
	if hasArrangement {
		req.WorkArrangement = arrangement
	}
	if hasSeniority {
		req.Seniority = seniority
	}
	if hasEmployment {
		req.EmploymentType = employment
	}

	return req, nil
}

// NormalizePeople validates raw people-search form state. In custom-query
// mode a non-empty free-text query is required and replaces the company
// filter; otherwise a non-empty company name is required.
func NormalizePeople(raw domain.RawPeopleInput) (domain.PeopleSearchRequest, *domain.SearchError) {
	var req domain.PeopleSearchRequest

	company := strings.TrimSpace(raw.Company)
	role := strings.TrimSpace(raw.Role)
	query := strings.TrimSpace(raw.Query)
	limit := clampLimit(raw.Limit, domain.PeopleLimitMin, domain.PeopleLimitMax, domain.PeopleLimitDefault)

	if raw.CustomQuery {
		if query == "" {
			return req, domain.NewRequiredFieldError("query")
		}
		return domain.PeopleSearchRequest{
			Query:    query,
			Role:     role,
			Limit:    limit,
			Strategy: domain.StrategyCheapest,
		}, nil
	}

	if company == "" {
		return req, domain.NewRequiredFieldError("company")
	}
	return domain.PeopleSearchRequest{
		Company:  company,
		Role:     role,
		Limit:    limit,
		Strategy: domain.StrategyCheapest,
	}, nil
}

// clampLimit parses the raw result bound. Non-numeric or empty input falls
// back to def; numeric input is clamped into [min, max], never rejected.
func clampLimit(raw string, min, max, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
