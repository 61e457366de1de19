package search

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadscout-hq/leadscout/internal/domain"
)

func TestNormalizeJobs_RequiredKeywords(t *testing.T) {
	for _, keywords := range []string{"", "   ", "\t\n"} {
		_, err := NormalizeJobs(domain.RawJobInput{Keywords: keywords, Location: "SF"})
		require.NotNil(t, err, "keywords %q", keywords)
		assert.Equal(t, domain.ErrKindValidation, err.Kind)
		assert.Equal(t, "keywords", err.Field)
		assert.Equal(t, domain.ReasonRequired, err.Reason)
	}
}

func TestNormalizeJobs_CanonicalRequest(t *testing.T) {
	req, err := NormalizeJobs(domain.RawJobInput{
		Keywords:  "engineer",
		Seniority: "Mid-Senior",
		Limit:     "500",
	})
	require.Nil(t, err)

	assert.Equal(t, "engineer", req.Keywords)
	assert.Equal(t, domain.SeniorityMidSenior, req.Seniority)
	assert.Equal(t, 100, req.Limit)
	assert.Equal(t, domain.StrategyCheapest, req.Strategy)
}

func TestNormalizeJobs_AllSentinelOmitted(t *testing.T) {
	req, err := NormalizeJobs(domain.RawJobInput{
		Keywords:        "developer",
		WorkArrangement: domain.LabelAll,
		Seniority:       domain.LabelAll,
		EmploymentType:  domain.LabelAll,
	})
	require.Nil(t, err)

	payload, marshalErr := json.Marshal(req)
	require.NoError(t, marshalErr)
	assert.NotContains(t, string(payload), "work_arrangement")
	assert.NotContains(t, string(payload), "seniority_level")
	assert.NotContains(t, string(payload), "employment_type")
	assert.NotContains(t, string(payload), domain.LabelAll)
}

func TestNormalizeJobs_UnmappedLabel(t *testing.T) {
	_, err := NormalizeJobs(domain.RawJobInput{
		Keywords:        "developer",
		WorkArrangement: "Telecommute",
	})
	require.NotNil(t, err)
	assert.Equal(t, domain.ErrKindValidation, err.Kind)
	assert.Equal(t, "work_arrangement", err.Field)
	assert.Equal(t, domain.ReasonUnmapped, err.Reason)
}

func TestNormalizeJobs_LimitClamping(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", domain.JobLimitDefault},
		{"abc", domain.JobLimitDefault},
		{"12.5", domain.JobLimitDefault},
		{"0", domain.JobLimitMin},
		{"-5", domain.JobLimitMin},
		{"1", 1},
		{"42", 42},
		{"100", 100},
		{"500", domain.JobLimitMax},
	}

	for _, tt := range tests {
		req, err := NormalizeJobs(domain.RawJobInput{Keywords: "dev", Limit: tt.raw})
		require.Nil(t, err, "limit %q", tt.raw)
		assert.Equal(t, tt.want, req.Limit, "limit %q", tt.raw)
	}
}

func TestNormalizeJobs_TrimsFreeText(t *testing.T) {
	req, err := NormalizeJobs(domain.RawJobInput{
		Keywords: "  engineer  ",
		Location: " San Francisco ",
		Company:  "   ",
	})
	require.Nil(t, err)

	assert.Equal(t, "engineer", req.Keywords)
	assert.Equal(t, "San Francisco", req.Location)
	assert.Empty(t, req.Company, "whitespace-only company must be treated as absent")
}

func TestNormalizeJobs_Idempotent(t *testing.T) {
	raw := domain.RawJobInput{
		Keywords:        "platform engineer",
		Location:        "Berlin",
		Company:         "Acme",
		WorkArrangement: "Remote",
		Seniority:       "Director",
		EmploymentType:  "Full-time",
		Limit:           "25",
	}

	first, err1 := NormalizeJobs(raw)
	require.Nil(t, err1)
	second, err2 := NormalizeJobs(raw)
	require.Nil(t, err2)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestNormalizePeople_RequiredCompany(t *testing.T) {
	_, err := NormalizePeople(domain.RawPeopleInput{Role: "CTO"})
	require.NotNil(t, err)
	assert.Equal(t, domain.ErrKindValidation, err.Kind)
	assert.Equal(t, "company", err.Field)
	assert.Equal(t, domain.ReasonRequired, err.Reason)
}

func TestNormalizePeople_CustomQueryRequired(t *testing.T) {
	_, err := NormalizePeople(domain.RawPeopleInput{
		Company:     "Acme",
		Query:       "   ",
		CustomQuery: true,
	})
	require.NotNil(t, err)
	assert.Equal(t, "query", err.Field)
	assert.Equal(t, domain.ReasonRequired, err.Reason)
}

func TestNormalizePeople_CompanyMode(t *testing.T) {
	req, err := NormalizePeople(domain.RawPeopleInput{
		Company: " Acme ",
		Role:    "recruiter",
		Limit:   "50",
	})
	require.Nil(t, err)

	assert.Equal(t, "Acme", req.Company)
	assert.Equal(t, "recruiter", req.Role)
	assert.Empty(t, req.Query)
	assert.Equal(t, domain.PeopleLimitMax, req.Limit)
	assert.Equal(t, domain.StrategyCheapest, req.Strategy)
}

func TestNormalizePeople_CustomQueryMode(t *testing.T) {
	req, err := NormalizePeople(domain.RawPeopleInput{
		Company:     "ignored-in-custom-mode",
		Query:       "founders of seed-stage fintechs",
		CustomQuery: true,
	})
	require.Nil(t, err)

	assert.Equal(t, "founders of seed-stage fintechs", req.Query)
	assert.Empty(t, req.Company)
	assert.Equal(t, domain.PeopleLimitDefault, req.Limit)
}

func TestNormalizePeople_LimitClamping(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", domain.PeopleLimitDefault},
		{"many", domain.PeopleLimitDefault},
		{"1", domain.PeopleLimitMin},
		{"5", 5},
		{"12", 12},
		{"20", 20},
		{"99", domain.PeopleLimitMax},
	}

	for _, tt := range tests {
		req, err := NormalizePeople(domain.RawPeopleInput{Company: "Acme", Limit: tt.raw})
		require.Nil(t, err, "limit %q", tt.raw)
		assert.Equal(t, tt.want, req.Limit, "limit %q", tt.raw)
	}
}
