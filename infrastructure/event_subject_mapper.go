package infrastructure

import (
	"fmt"

	"lotto/domain/events"
)

// EventSubjectMapper handles mapping between domain events and NATS subjects
type EventSubjectMapper struct{}

// NewEventSubjectMapper creates a new event subject mapper
func NewEventSubjectMapper() *EventSubjectMapper {
	return &EventSubjectMapper{}
}

// MapEventToSubject converts a domain event to its corresponding NATS subject
func (m *EventSubjectMapper) MapEventToSubject(event events.Event) string {
	switch event.Type() {
	case events.EventTypeEntryAccepted:
		return "lottery.entries.accepted"
	case events.EventTypeDrawOpened:
		return "lottery.draws.opened"
	case events.EventTypeRandomnessRequested:
		return "lottery.draws.randomness_requested"
	case events.EventTypeDrawFulfilled:
		return "lottery.draws.fulfilled"
	case events.EventTypePrizePaid:
		return "lottery.payouts.prize"
	case events.EventTypeAffiliatePaid:
		return "lottery.payouts.affiliate"
	case events.EventTypeNomadRetained:
		return "lottery.payouts.nomad_retained"
	case events.EventTypeBalanceChange:
		return "accounts.balance_changed"
	case events.EventTypeSettingChanged:
		return "lottery.settings.changed"
	case events.EventTypeAffiliateFlagChanged:
		return "lottery.affiliates.flag_changed"
	case events.EventTypeBucketSharesChanged:
		return "lottery.settlement.shares_changed"
	default:
		// Fallback for unknown event types
		return fmt.Sprintf("unknown.%s", event.Type())
	}
}

// MapSubjectToEventType converts a NATS subject back to an event type
func (m *EventSubjectMapper) MapSubjectToEventType(subject string) events.EventType {
	switch subject {
	case "lottery.entries.accepted":
		return events.EventTypeEntryAccepted
	case "lottery.draws.opened":
		return events.EventTypeDrawOpened
	case "lottery.draws.randomness_requested":
		return events.EventTypeRandomnessRequested
	case "lottery.draws.fulfilled":
		return events.EventTypeDrawFulfilled
	case "lottery.payouts.prize":
		return events.EventTypePrizePaid
	case "lottery.payouts.affiliate":
		return events.EventTypeAffiliatePaid
	case "lottery.payouts.nomad_retained":
		return events.EventTypeNomadRetained
	case "accounts.balance_changed":
		return events.EventTypeBalanceChange
	case "lottery.settings.changed":
		return events.EventTypeSettingChanged
	case "lottery.affiliates.flag_changed":
		return events.EventTypeAffiliateFlagChanged
	case "lottery.settlement.shares_changed":
		return events.EventTypeBucketSharesChanged
	default:
		return events.EventType(subject)
	}
}

// GetAllSubjects returns all subjects that this service publishes to
func (m *EventSubjectMapper) GetAllSubjects() []string {
	return []string{
		"lottery.entries.accepted",
		"lottery.draws.opened",
		"lottery.draws.randomness_requested",
		"lottery.draws.fulfilled",
		"lottery.payouts.prize",
		"lottery.payouts.affiliate",
		"lottery.payouts.nomad_retained",
		"accounts.balance_changed",
		"lottery.settings.changed",
		"lottery.affiliates.flag_changed",
		"lottery.settlement.shares_changed",
	}
}
