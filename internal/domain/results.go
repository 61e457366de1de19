package domain

// JobPosting is a single job search result.
type JobPosting struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Company         string `json:"company"`
	Location        string `json:"location,omitempty"`
	WorkArrangement string `json:"work_arrangement,omitempty"`
	SeniorityLevel  string `json:"seniority_level,omitempty"`
	EmploymentType  string `json:"employment_type,omitempty"`
	Salary          string `json:"salary,omitempty"`
	URL             string `json:"url,omitempty"`
	Description     string `json:"description,omitempty"`
	PostedAt        string `json:"posted_at,omitempty"`
}

// Contact is a single professional-contact search result.
type Contact struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Role       string `json:"role,omitempty"`
	Company    string `json:"company,omitempty"`
	Location   string `json:"location,omitempty"`
	ProfileURL string `json:"profile_url,omitempty"`
	Email      string `json:"email,omitempty"`
}

// Receipt is the payment confirmation returned alongside a metered result
// set. It is created only by the backend and passed through untouched; a nil
// receipt is observable and distinct from a zero-cost one.
type Receipt struct {
	Provider      string  `json:"provider"`
	AmountPaidUSD float64 `json:"amount_paid_usd"`
}

// ResultSet is the decoded body of one successful backend response.
type ResultSet[T any] struct {
	Items   []T      `json:"items"`
	Receipt *Receipt `json:"receipt,omitempty"`
}

// Outcome is the result of exactly one completed submission: either an
// ordered item list plus optional receipt, or an error. Err == nil means
// success; an empty, paid result set is a valid non-error outcome.
type Outcome[T any] struct {
	RequestID string       `json:"request_id,omitempty"`
	Items     []T          `json:"items,omitempty"`
	Receipt   *Receipt     `json:"receipt,omitempty"`
	Err       *SearchError `json:"error,omitempty"`
}

// Failed reports whether the outcome is the error variant.
func (o *Outcome[T]) Failed() bool {
	return o.Err != nil
}

// Phase is the coarse position of a submission in its lifecycle.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseInFlight Phase = "in_flight"
	PhaseSettled  Phase = "settled"
)

// LifecycleState is a point-in-time snapshot of one orchestrator's request
// lifecycle. Outcomes are immutable once settled, so sharing the pointer
// across snapshots is safe.
type LifecycleState[T any] struct {
	Phase     Phase       `json:"phase"`
	RequestID string      `json:"request_id,omitempty"` // current submission while in flight
	Outcome   *Outcome[T] `json:"outcome,omitempty"`    // populated once settled
}
