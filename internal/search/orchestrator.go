package search

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/leadscout-hq/leadscout/internal/domain"
	"github.com/leadscout-hq/leadscout/internal/metrics"
	"github.com/leadscout-hq/leadscout/internal/telemetry"
)

// NormalizeFunc canonicalizes raw form state into a backend-ready payload.
type NormalizeFunc[R, Q any] func(R) (Q, *domain.SearchError)

// SearchFunc performs the metered backend call for a canonical payload.
type SearchFunc[Q, T any] func(context.Context, Q) (*domain.ResultSet[T], *domain.SearchError)

// Orchestrator is the single entry point a search surface submits through.
// It composes normalization, the request lifecycle, the backend call, receipt
// reconciliation and the results accumulator, so surfaces never duplicate
// request, error or payment handling.
type Orchestrator[R, Q, T any] struct {
	surface     domain.Surface
	normalize   NormalizeFunc[R, Q]
	search      SearchFunc[Q, T]
	ctrl        *Controller[T]
	accumulator *Accumulator[T]
	log         zerolog.Logger
}

// Aliases for the two shipped surfaces.
type (
	JobOrchestrator    = Orchestrator[domain.RawJobInput, domain.JobSearchRequest, domain.JobPosting]
	PeopleOrchestrator = Orchestrator[domain.RawPeopleInput, domain.PeopleSearchRequest, domain.Contact]
)

// New creates an orchestrator for one surface. Each surface must own its own
// instance; lifecycle state is never shared between surfaces.
func New[R, Q, T any](
	surface domain.Surface,
	normalize NormalizeFunc[R, Q],
	search SearchFunc[Q, T],
	log zerolog.Logger,
) *Orchestrator[R, Q, T] {
	return &Orchestrator[R, Q, T]{
		surface:     surface,
		normalize:   normalize,
		search:      search,
		ctrl:        NewController[T](),
		accumulator: NewAccumulator[T](),
		log:         log.With().Str("surface", string(surface)).Logger(),
	}
}

// NewJobs wires a job-search orchestrator onto the given backend call.
func NewJobs(search SearchFunc[domain.JobSearchRequest, domain.JobPosting], log zerolog.Logger) *JobOrchestrator {
	return New(domain.SurfaceJobs, NormalizeJobs, search, log)
}

// NewPeople wires a people-search orchestrator onto the given backend call.
func NewPeople(search SearchFunc[domain.PeopleSearchRequest, domain.Contact], log zerolog.Logger) *PeopleOrchestrator {
	return New(domain.SurfacePeople, NormalizePeople, search, log)
}

// Submit runs one search submission end to end and returns its outcome.
// A validation failure settles immediately without any network call.
// accepted reports whether the outcome settled the lifecycle: a submission
// superseded by a newer one still returns its outcome to the caller with
// accepted=false, but it is never published to state, metrics or the
// accumulator.
func (o *Orchestrator[R, Q, T]) Submit(ctx context.Context, raw R) (out *domain.Outcome[T], accepted bool) {
	req, verr := o.normalize(raw)
	if verr != nil {
		out = &domain.Outcome[T]{Err: verr}
		o.ctrl.SettleNow(out)
		metrics.RecordSearch(o.surface, string(verr.Kind))
		o.log.Debug().Str("field", verr.Field).Str("reason", verr.Reason).
			Msg("submission rejected before dispatch")
		return out, true
	}

	id := o.ctrl.Begin()
	o.log.Debug().Str("request_id", id).Msg("submission in flight")

	rs, serr := o.search(ctx, req)
	if serr != nil {
		out = ReconcileFailure[T](id, serr)
	} else {
		out = Reconcile(id, rs)
	}

	if !o.ctrl.Settle(id, out) {
		o.log.Debug().Str("request_id", id).Msg("stale response discarded")
		return out, false
	}

	if out.Failed() {
		metrics.RecordSearch(o.surface, string(out.Err.Kind))
		telemetry.CaptureError(ctx, out.Err)
		o.log.Warn().Str("request_id", id).Str("kind", string(out.Err.Kind)).
			Msg(out.Err.Message)
		return out, true
	}

	o.accumulator.Prepend(out.Items)
	metrics.RecordSearch(o.surface, "success")
	if out.Receipt != nil {
		metrics.RecordReceipt(o.surface, out.Receipt.Provider, out.Receipt.AmountPaidUSD)
	}
	o.log.Info().Str("request_id", id).Int("items", len(out.Items)).
		Msg("search settled")
	return out, true
}

// State returns the surface's current lifecycle snapshot.
func (o *Orchestrator[R, Q, T]) State() domain.LifecycleState[T] {
	return o.ctrl.State()
}

// Results returns the surface's accumulated items, newest first.
func (o *Orchestrator[R, Q, T]) Results() []T {
	return o.accumulator.Items()
}

// Surface identifies which search surface this orchestrator serves.
func (o *Orchestrator[R, Q, T]) Surface() domain.Surface {
	return o.surface
}
