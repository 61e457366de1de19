package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/leadscout-hq/leadscout/internal/api"
	"github.com/leadscout-hq/leadscout/internal/domain"
	"github.com/leadscout-hq/leadscout/internal/search"
)

// SearchHandler exposes the two search surfaces to the browser UI. Each
// surface holds its own orchestrator, so lifecycle state never crosses
// between them.
type SearchHandler struct {
	jobs   *search.JobOrchestrator
	people *search.PeopleOrchestrator
}

func NewSearchHandler(jobs *search.JobOrchestrator, people *search.PeopleOrchestrator) *SearchHandler {
	return &SearchHandler{jobs: jobs, people: people}
}

// OutcomeResponse is the bridge's settled-submission envelope. Superseded
// reports that a newer submission outranked this one while it was in flight;
// its results were returned to this caller but not published.
type OutcomeResponse[T any] struct {
	RequestID  string          `json:"request_id,omitempty"`
	Items      []T             `json:"items"`
	Receipt    *domain.Receipt `json:"receipt,omitempty"`
	Superseded bool            `json:"superseded,omitempty"`
}

// SearchJobs submits one job search.
func (h *SearchHandler) SearchJobs(w http.ResponseWriter, r *http.Request) {
	var raw domain.RawJobInput
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, accepted := h.jobs.Submit(r.Context(), raw)
	writeOutcome(w, out, accepted)
}

// SearchPeople submits one people search.
func (h *SearchHandler) SearchPeople(w http.ResponseWriter, r *http.Request) {
	var raw domain.RawPeopleInput
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, accepted := h.people.Submit(r.Context(), raw)
	writeOutcome(w, out, accepted)
}

// JobsState returns the job surface's lifecycle snapshot.
func (h *SearchHandler) JobsState(w http.ResponseWriter, r *http.Request) {
	api.Success(w, http.StatusOK, h.jobs.State())
}

// PeopleState returns the people surface's lifecycle snapshot.
func (h *SearchHandler) PeopleState(w http.ResponseWriter, r *http.Request) {
	api.Success(w, http.StatusOK, h.people.State())
}

// JobsResults returns the job surface's accumulated results, newest first.
func (h *SearchHandler) JobsResults(w http.ResponseWriter, r *http.Request) {
	api.Success(w, http.StatusOK, map[string]interface{}{"items": h.jobs.Results()})
}

// PeopleResults returns the people surface's accumulated results, newest
// first.
func (h *SearchHandler) PeopleResults(w http.ResponseWriter, r *http.Request) {
	api.Success(w, http.StatusOK, map[string]interface{}{"items": h.people.Results()})
}

func writeOutcome[T any](w http.ResponseWriter, out *domain.Outcome[T], accepted bool) {
	if out.Failed() {
		api.Failure(w, out.Err)
		return
	}

	items := out.Items
	if items == nil {
		items = []T{}
	}

	api.Success(w, http.StatusOK, OutcomeResponse[T]{
		RequestID:  out.RequestID,
		Items:      items,
		Receipt:    out.Receipt,
		Superseded: !accepted,
	})
}
