package site

import (
	"strings"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
)

// MaxFeaturedArticles bounds FeaturedArticles.
const MaxFeaturedArticles = 20

// ComplaintSubmission is the public complaint form. Status, priority and
// assignee are set by staff and have no field here.
type ComplaintSubmission struct {
	ComplainantName  string `json:"complainantName"`
	ContactInfo      string `json:"contactInfo"`
	OrganizationName string `json:"organizationName"`
	ComplaintType    string `json:"complaintType"`
	Description      string `json:"description"`
}

func (in ComplaintSubmission) toComplaint() domain.Complaint {
	return domain.Complaint{
		ComplainantName:  strings.TrimSpace(in.ComplainantName),
		ContactInfo:      strings.TrimSpace(in.ContactInfo),
		OrganizationName: strings.TrimSpace(in.OrganizationName),
		ComplaintType:    strings.TrimSpace(in.ComplaintType),
		Description:      strings.TrimSpace(in.Description),
		Status:           domain.ComplaintStatusPending,
		Priority:         domain.ComplaintPriorityMedium,
	}
}

// MessageSubmission is the public contact form.
type MessageSubmission struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Category string  `json:"category"`
	Subject  string  `json:"subject"`
	Body     string  `json:"body"`
}

func (in MessageSubmission) toMessage() domain.ContactMessage {
	m := domain.ContactMessage{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Phone:    trimOrNil(in.Phone),
		Category: strings.ToLower(strings.TrimSpace(in.Category)),
		Subject:  strings.TrimSpace(in.Subject),
		Body:     strings.TrimSpace(in.Body),
		Status:   domain.MessageStatusUnread,
	}
	m.ApplyDefaults()
	return m
}
