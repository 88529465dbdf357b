package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultMessageCategory is used when a contact message arrives without one.
const DefaultMessageCategory = "general"

// ContactMessage is a message sent through the public contact form.
type ContactMessage struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     *string       `json:"phone,omitempty"`
	Category  string        `json:"category"`
	Subject   string        `json:"subject"`
	Body      string        `json:"body"`
	Status    MessageStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// ApplyDefaults sets Status=unread and Category=general when unset.
func (m *ContactMessage) ApplyDefaults() {
	if m.Status == "" {
		m.Status = MessageStatusUnread
	}
	if m.Category == "" {
		m.Category = DefaultMessageCategory
	}
}

// Validate checks all fields and collects all errors.
func (m ContactMessage) Validate() error {
	var errs []FieldError
	errs = checkRequired(errs, "name", m.Name, 200)
	errs = checkEmail(errs, "email", m.Email)
	errs = checkRequired(errs, "category", m.Category, 100)
	errs = checkRequired(errs, "subject", m.Subject, 300)
	errs = checkRequired(errs, "body", m.Body, 5000)
	if m.Phone != nil {
		errs = checkLength(errs, "phone", *m.Phone, 50)
	}
	if !m.Status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Message: "must be one of unread, read, replied"})
	}
	return validationResult(errs)
}

// ContactMessagePatch is a partial update. Staff normally only move Status.
type ContactMessagePatch struct {
	Name     *string        `json:"name,omitempty"`
	Email    *string        `json:"email,omitempty"`
	Phone    *string        `json:"phone,omitempty"`
	Category *string        `json:"category,omitempty"`
	Subject  *string        `json:"subject,omitempty"`
	Body     *string        `json:"body,omitempty"`
	Status   *MessageStatus `json:"status,omitempty"`
}

// IsEmpty reports whether no field is set.
func (p ContactMessagePatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Category == nil &&
		p.Subject == nil && p.Body == nil && p.Status == nil
}

// Validate checks all fields and collects all errors.
func (p ContactMessagePatch) Validate() error {
	if p.IsEmpty() {
		return NewValidationErrors(noFieldsError())
	}
	var errs []FieldError
	errs = checkPatchText(errs, "name", p.Name, 200)
	if p.Email != nil {
		errs = checkEmail(errs, "email", *p.Email)
	}
	if p.Phone != nil {
		errs = checkLength(errs, "phone", *p.Phone, 50)
	}
	errs = checkPatchText(errs, "category", p.Category, 100)
	errs = checkPatchText(errs, "subject", p.Subject, 300)
	errs = checkPatchText(errs, "body", p.Body, 5000)
	if p.Status != nil && !p.Status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Message: "must be one of unread, read, replied"})
	}
	return validationResult(errs)
}
