package eventbus

// Global topic declarations: base topic names per feature, managed in one
// place so they can later move into configuration.

var (
	TopicMeetingEvents = NewTopic("civicscoop.meeting.events")
)

var AllTopics = []Topic{
	TopicMeetingEvents,
}
