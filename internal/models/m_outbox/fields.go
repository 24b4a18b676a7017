package m_outbox

// Field name constants for the outbox_events table.
const (
	TableName = "outbox_events"

	EventID     = "event_id"
	EventType   = "event_type"
	AggregateID = "aggregate_id"
	Payload     = "payload"
	Status      = "status"
	CreatedAt   = "created_at"
	ProcessedAt = "processed_at"
)

// Event status constants. Events are written pending; a relay outside this
// service moves them on.
const (
	StatusPending   = "pending"
	StatusPublished = "published"
)
