package infrastructure

import (
	"testing"

	"lotto/domain/events"

	"github.com/stretchr/testify/assert"
)

func TestEventSubjectMapper_RoundTrip(t *testing.T) {
	t.Parallel()

	mapper := NewEventSubjectMapper()

	tests := []struct {
		event       events.Event
		wantSubject string
	}{
		{events.EntryAcceptedEvent{}, "lottery.entries.accepted"},
		{events.DrawOpenedEvent{}, "lottery.draws.opened"},
		{events.RandomnessRequestedEvent{}, "lottery.draws.randomness_requested"},
		{events.DrawFulfilledEvent{}, "lottery.draws.fulfilled"},
		{events.PrizePaidEvent{}, "lottery.payouts.prize"},
		{events.AffiliatePaidEvent{}, "lottery.payouts.affiliate"},
		{events.NomadRetainedEvent{}, "lottery.payouts.nomad_retained"},
		{events.BalanceChangeEvent{}, "accounts.balance_changed"},
		{events.SettingChangedEvent{}, "lottery.settings.changed"},
		{events.AffiliateFlagChangedEvent{}, "lottery.affiliates.flag_changed"},
		{events.BucketSharesChangedEvent{}, "lottery.settlement.shares_changed"},
	}

	for _, tt := range tests {
		t.Run(tt.wantSubject, func(t *testing.T) {
			subject := mapper.MapEventToSubject(tt.event)

			assert.Equal(t, tt.wantSubject, subject)
			assert.Equal(t, tt.event.Type(), mapper.MapSubjectToEventType(subject))
		})
	}
}

func TestEventSubjectMapper_GetAllSubjects(t *testing.T) {
	t.Parallel()

	mapper := NewEventSubjectMapper()
	subjects := mapper.GetAllSubjects()

	assert.Len(t, subjects, 11)

	seen := make(map[string]bool)
	for _, subject := range subjects {
		assert.False(t, seen[subject], "duplicate subject %s", subject)
		seen[subject] = true
	}
}
