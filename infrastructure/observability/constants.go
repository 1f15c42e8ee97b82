package observability

// Metric name prefixes
const (
	MetricPrefix = "lotto"
)

// Metric names
const (
	// Lottery metrics
	EntriesAcceptedTotal = MetricPrefix + ".entries.accepted_total"
	DrawsFulfilledTotal  = MetricPrefix + ".draws.fulfilled_total"
	DrawsStuck           = MetricPrefix + ".draws.stuck"

	// Payout metrics
	PayoutsTotal = MetricPrefix + ".payouts.total"

	// NATS metrics
	NATSMessagesReceivedTotal  = MetricPrefix + ".nats.messages_received_total"
	NATSMessagesPublishedTotal = MetricPrefix + ".nats.messages_published_total"

	// Database metrics
	DatabaseQueriesTotal  = MetricPrefix + ".database.queries_total"
	DatabaseQueryDuration = MetricPrefix + ".database.query_duration"
)

// Label keys
const (
	// Common labels
	LabelType      = "type"
	LabelEventType = "event_type"

	// Database labels
	LabelRepository = "repository"
	LabelMethod     = "method"
)

// Payout types
const (
	PayoutTypePrize     = "prize"
	PayoutTypeAffiliate = "affiliate"
	PayoutTypeBucket    = "bucket"
	PayoutTypeNomad     = "nomad"
)
