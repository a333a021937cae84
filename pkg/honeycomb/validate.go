package honeycomb

import (
	"github.com/irvingpop/honeycomb-api/internal/constants"
)

// Validate checks the request against the API's documented bounds before any
// network I/O. Trigger query constraints themselves are enforced by
// BuildTriggerQuery / QueryInput.ResolveForTrigger.
func (r *TriggerCreateRequest) Validate() error {
	if r.Name == "" {
		return buildErrorf("trigger name is required")
	}

	if r.Frequency < constants.TriggerMinFrequency || r.Frequency > constants.TriggerMaxFrequency {
		return buildErrorf("frequency must be between %d and %d seconds, got %d",
			constants.TriggerMinFrequency, constants.TriggerMaxFrequency, r.Frequency)
	}

	if limit := r.Threshold.ExceededLimit; limit != 0 &&
		(limit < constants.TriggerMinExceededLimit || limit > constants.TriggerMaxExceededLimit) {
		return buildErrorf("exceeded_limit must be between %d and %d, got %d",
			constants.TriggerMinExceededLimit, constants.TriggerMaxExceededLimit, limit)
	}

	if (r.Query == nil) == (r.QueryID == "") {
		return buildErrorf("exactly one of query or query_id must be set")
	}

	return nil
}

// Validate checks the request before any network I/O.
func (r *BurnAlertCreateRequest) Validate() error {
	if r.SLO.ID == "" {
		return buildErrorf("burn alert requires an SLO id")
	}

	if r.AlertType != "budget_rate" && r.ExhaustionMinutes < 0 {
		return buildErrorf("exhaustion_minutes must not be negative, got %d", r.ExhaustionMinutes)
	}

	return nil
}

// ReferenceRecipients reduces recipients to the reference shape (id, or
// type+target for inline creation) the API expects when attaching them to a
// trigger or burn alert. Triggers and burn alerts share this handling.
func ReferenceRecipients(recipients []Recipient) []Recipient {
	if len(recipients) == 0 {
		return nil
	}

	refs := make([]Recipient, 0, len(recipients))

	for _, r := range recipients {
		if r.ID != "" {
			refs = append(refs, Recipient{ID: r.ID})

			continue
		}

		refs = append(refs, Recipient{Type: r.Type, Target: r.Target})
	}

	return refs
}
