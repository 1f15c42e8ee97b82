package infrastructure

import (
	"encoding/json"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// EventEnvelope is the wire format every message on the bus travels in.
// SourceService identifies the publishing service; consumers use it to
// reject messages from untrusted origins.
type EventEnvelope struct {
	EventId       string                 `json:"event_id"`
	EventType     string                 `json:"event_type"`
	Timestamp     *timestamppb.Timestamp `json:"timestamp"`
	SourceService string                 `json:"source_service"`
	Payload       json.RawMessage        `json:"payload"`
}

// ServiceName is the SourceService value this service stamps on outgoing messages
const ServiceName = "lotto"
