package domain

// Surface identifies an independent search surface. Each surface owns its own
// orchestrator instance; a slow search on one surface never affects another.
type Surface string

const (
	SurfaceJobs   Surface = "jobs"
	SurfacePeople Surface = "people"
)

// LabelAll is the sentinel filter label meaning "omit this dimension from the
// request". It is never serialized as a literal value.
const LabelAll = "All"

// WorkArrangement is the canonical work-arrangement token the backend
// recognizes.
type WorkArrangement string

const (
	WorkArrangementRemote WorkArrangement = "remote"
	WorkArrangementHybrid WorkArrangement = "hybrid"
	WorkArrangementOnSite WorkArrangement = "on-site"
)

// Seniority is the canonical seniority-level token.
type Seniority string

const (
	SeniorityEntryLevel Seniority = "entry-level"
	SeniorityAssociate  Seniority = "associate"
	SeniorityMidSenior  Seniority = "mid-senior"
	SeniorityDirector   Seniority = "director"
	SeniorityExecutive  Seniority = "executive"
)

// EmploymentType is the canonical employment-type token.
type EmploymentType string

const (
	EmploymentTypeFullTime   EmploymentType = "full-time"
	EmploymentTypePartTime   EmploymentType = "part-time"
	EmploymentTypeContract   EmploymentType = "contract"
	EmploymentTypeInternship EmploymentType = "internship"
)

// ParseWorkArrangement maps a user-facing label to its canonical token.
// The "All" label (or an empty selection) means the filter is omitted:
// ok is false and there is no error. Any other unrecognized label fails with
// an unmapped-label validation error rather than being silently dropped.
func ParseWorkArrangement(label string) (token WorkArrangement, ok bool, err *SearchError) {
	switch label {
	case "", LabelAll:
		return "", false, nil
	case "Remote":
		return WorkArrangementRemote, true, nil
	case "Hybrid":
		return WorkArrangementHybrid, true, nil
	case "On-site":
		return WorkArrangementOnSite, true, nil
	default:
		return "", false, NewUnmappedLabelError("work_arrangement", label)
	}
}

// ParseSeniority maps a user-facing seniority label to its canonical token.
func ParseSeniority(label string) (token Seniority, ok bool, err *SearchError) {
	switch label {
	case "", LabelAll:
		return "", false, nil
	case "Entry Level":
		return SeniorityEntryLevel, true, nil
	case "Associate":
		return SeniorityAssociate, true, nil
	case "Mid-Senior":
		return SeniorityMidSenior, true, nil
	case "Director":
		return SeniorityDirector, true, nil
	case "Executive":
		return SeniorityExecutive, true, nil
	default:
		return "", false, NewUnmappedLabelError("seniority_level", label)
	}
}

// ParseEmploymentType maps a user-facing employment-type label to its
// canonical token.
func ParseEmploymentType(label string) (token EmploymentType, ok bool, err *SearchError) {
	switch label {
	case "", LabelAll:
		return "", false, nil
	case "Full-time":
		return EmploymentTypeFullTime, true, nil
	case "Part-time":
		return EmploymentTypePartTime, true, nil
	case "Contract":
		return EmploymentTypeContract, true, nil
	case "Internship":
		return EmploymentTypeInternship, true, nil
	default:
		return "", false, NewUnmappedLabelError("employment_type", label)
	}
}
