package domain

// ContentKind constrains how a content value is interpreted by the site.
// The stored value is always a string.
type ContentKind string

const (
	ContentKindText     ContentKind = "text"
	ContentKindRichText ContentKind = "rich_text"
	ContentKindImage    ContentKind = "image"
)

func (k ContentKind) String() string { return string(k) }

func (k ContentKind) IsValid() bool {
	switch k {
	case ContentKindText, ContentKindRichText, ContentKindImage:
		return true
	}
	return false
}

// ComplaintStatus is the investigation state of a complaint.
type ComplaintStatus string

const (
	ComplaintStatusPending       ComplaintStatus = "pending"
	ComplaintStatusInvestigating ComplaintStatus = "investigating"
	ComplaintStatusResolved      ComplaintStatus = "resolved"
	ComplaintStatusClosed        ComplaintStatus = "closed"
)

// ComplaintStatuses lists every status in workflow order.
var ComplaintStatuses = []ComplaintStatus{
	ComplaintStatusPending,
	ComplaintStatusInvestigating,
	ComplaintStatusResolved,
	ComplaintStatusClosed,
}

func (s ComplaintStatus) String() string { return string(s) }

func (s ComplaintStatus) IsValid() bool {
	switch s {
	case ComplaintStatusPending, ComplaintStatusInvestigating, ComplaintStatusResolved, ComplaintStatusClosed:
		return true
	}
	return false
}

// IsFinal reports whether no further investigation is expected.
func (s ComplaintStatus) IsFinal() bool {
	return s == ComplaintStatusResolved || s == ComplaintStatusClosed
}

// ComplaintPriority orders complaints for triage.
type ComplaintPriority string

const (
	ComplaintPriorityLow    ComplaintPriority = "low"
	ComplaintPriorityMedium ComplaintPriority = "medium"
	ComplaintPriorityHigh   ComplaintPriority = "high"
	ComplaintPriorityUrgent ComplaintPriority = "urgent"
)

func (p ComplaintPriority) String() string { return string(p) }

func (p ComplaintPriority) IsValid() bool {
	switch p {
	case ComplaintPriorityLow, ComplaintPriorityMedium, ComplaintPriorityHigh, ComplaintPriorityUrgent:
		return true
	}
	return false
}

// MessageStatus tracks how far staff have handled a contact message.
type MessageStatus string

const (
	MessageStatusUnread  MessageStatus = "unread"
	MessageStatusRead    MessageStatus = "read"
	MessageStatusReplied MessageStatus = "replied"
)

func (s MessageStatus) String() string { return string(s) }

func (s MessageStatus) IsValid() bool {
	switch s {
	case MessageStatusUnread, MessageStatusRead, MessageStatusReplied:
		return true
	}
	return false
}

// ActivityKind tags an entry in the recent-activity feed.
type ActivityKind string

const (
	ActivityKindComplaint ActivityKind = "complaint"
	ActivityKindMessage   ActivityKind = "message"
)

func (k ActivityKind) String() string { return string(k) }
