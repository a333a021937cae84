package honeycomb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

func validTriggerRequest() *honeycomb.TriggerCreateRequest {
	return &honeycomb.TriggerCreateRequest{
		Name:      "High error rate",
		Threshold: honeycomb.TriggerThreshold{Op: honeycomb.TriggerThresholdOpGT, Value: 100},
		Frequency: 900,
		QueryID:   "abc123",
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestTriggerCreateRequest_Validate(t *testing.T) {
	t.Parallel()
	t.Run("valid request", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, validTriggerRequest().Validate())
	})

	t.Run("requires a name", func(t *testing.T) {
		t.Parallel()

		request := validTriggerRequest()
		request.Name = ""

		err := request.Validate()
		require.ErrorIs(t, err, honeycomb.ErrInvalidQuery)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("frequency bounds", func(t *testing.T) {
		t.Parallel()

		for _, frequency := range []int{0, 59, 86401} {
			request := validTriggerRequest()
			request.Frequency = frequency

			err := request.Validate()
			require.ErrorIs(t, err, honeycomb.ErrInvalidQuery, "frequency %d", frequency)
			assert.Contains(t, err.Error(), "frequency must be between 60 and 86400")
		}

		for _, frequency := range []int{60, 86400} {
			request := validTriggerRequest()
			request.Frequency = frequency
			require.NoError(t, request.Validate(), "frequency %d", frequency)
		}
	})

	t.Run("exceeded limit bounds", func(t *testing.T) {
		t.Parallel()

		request := validTriggerRequest()
		request.Threshold.ExceededLimit = 6

		err := request.Validate()
		require.ErrorIs(t, err, honeycomb.ErrInvalidQuery)
		assert.Contains(t, err.Error(), "exceeded_limit must be between 1 and 5")

		// Zero means unset and is allowed.
		request.Threshold.ExceededLimit = 0
		require.NoError(t, request.Validate())

		request.Threshold.ExceededLimit = 3
		require.NoError(t, request.Validate())
	})

	t.Run("requires exactly one of query and query_id", func(t *testing.T) {
		t.Parallel()

		neither := validTriggerRequest()
		neither.QueryID = ""

		err := neither.Validate()
		require.ErrorIs(t, err, honeycomb.ErrInvalidQuery)
		assert.Contains(t, err.Error(), "exactly one of query or query_id")

		both := validTriggerRequest()
		both.Query = &honeycomb.QuerySpec{}
		require.ErrorIs(t, both.Validate(), honeycomb.ErrInvalidQuery)

		inline := validTriggerRequest()
		inline.QueryID = ""
		inline.Query = &honeycomb.QuerySpec{
			Calculations: []honeycomb.Calculation{{Op: honeycomb.CalculationOpCount}},
			TimeRange:    900,
		}
		require.NoError(t, inline.Validate())
	})
}

func TestBurnAlertCreateRequest_Validate(t *testing.T) {
	t.Parallel()
	t.Run("valid request", func(t *testing.T) {
		t.Parallel()

		request := &honeycomb.BurnAlertCreateRequest{
			ExhaustionMinutes: 60,
			SLO:               honeycomb.SLORef{ID: "slo-1"},
		}
		require.NoError(t, request.Validate())
	})

	t.Run("requires an SLO id", func(t *testing.T) {
		t.Parallel()

		request := &honeycomb.BurnAlertCreateRequest{ExhaustionMinutes: 60}

		err := request.Validate()
		require.ErrorIs(t, err, honeycomb.ErrInvalidQuery)
		assert.Contains(t, err.Error(), "SLO id")
	})

	t.Run("rejects negative exhaustion minutes", func(t *testing.T) {
		t.Parallel()

		request := &honeycomb.BurnAlertCreateRequest{
			ExhaustionMinutes: -1,
			SLO:               honeycomb.SLORef{ID: "slo-1"},
		}
		require.ErrorIs(t, request.Validate(), honeycomb.ErrInvalidQuery)
	})

	t.Run("budget rate alerts skip the exhaustion check", func(t *testing.T) {
		t.Parallel()

		request := &honeycomb.BurnAlertCreateRequest{
			AlertType: "budget_rate",
			SLO:       honeycomb.SLORef{ID: "slo-1"},
		}
		require.NoError(t, request.Validate())
	})
}

func TestReferenceRecipients(t *testing.T) {
	t.Parallel()
	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, honeycomb.ReferenceRecipients(nil))
		assert.Nil(t, honeycomb.ReferenceRecipients([]honeycomb.Recipient{}))
	})

	t.Run("reduces to references", func(t *testing.T) {
		t.Parallel()

		refs := honeycomb.ReferenceRecipients([]honeycomb.Recipient{
			{
				ID:     "rcpt-1",
				Type:   honeycomb.RecipientTypeEmail,
				Target: "oncall@example.com",
			},
			{
				Type:   honeycomb.RecipientTypeSlack,
				Target: "#alerts",
			},
		})

		require.Len(t, refs, 2)

		// Existing recipients keep only their id.
		assert.Equal(t, honeycomb.Recipient{ID: "rcpt-1"}, refs[0])

		// Inline recipients keep type and target for creation.
		assert.Equal(t, honeycomb.Recipient{
			Type:   honeycomb.RecipientTypeSlack,
			Target: "#alerts",
		}, refs[1])
	})
}
