package kafka

const (
	// TopicAnalysisCompleted is the default topic, overridable by kafka.topic.
	TopicAnalysisCompleted = "callaudit.analysis"

	EventTypeAnalysisCompleted = "analysis.completed"
)

// Record headers. Consumers route on event_type without decoding the body.
const (
	HeaderEventType   = "event_type"
	HeaderContentType = "content_type"
)
