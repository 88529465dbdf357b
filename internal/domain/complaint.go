package domain

import (
	"time"

	"github.com/google/uuid"
)

// Complaint is a labour complaint lodged against an organization.
type Complaint struct {
	ID               uuid.UUID         `json:"id"`
	ComplainantName  string            `json:"complainantName"`
	ContactInfo      string            `json:"contactInfo"`
	OrganizationName string            `json:"organizationName"`
	ComplaintType    string            `json:"complaintType"`
	Description      string            `json:"description"`
	Status           ComplaintStatus   `json:"status"`
	Priority         ComplaintPriority `json:"priority"`
	AssignedTo       *string           `json:"assignedTo,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// ApplyDefaults sets Status=pending and Priority=medium when unset.
func (c *Complaint) ApplyDefaults() {
	if c.Status == "" {
		c.Status = ComplaintStatusPending
	}
	if c.Priority == "" {
		c.Priority = ComplaintPriorityMedium
	}
}

// Validate checks all fields and collects all errors.
func (c Complaint) Validate() error {
	var errs []FieldError
	errs = checkRequired(errs, "complainantName", c.ComplainantName, 200)
	errs = checkRequired(errs, "contactInfo", c.ContactInfo, 200)
	errs = checkLength(errs, "organizationName", c.OrganizationName, 200)
	errs = checkRequired(errs, "complaintType", c.ComplaintType, 100)
	errs = checkRequired(errs, "description", c.Description, 5000)
	if !c.Status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Message: "must be one of pending, investigating, resolved, closed"})
	}
	if !c.Priority.IsValid() {
		errs = append(errs, FieldError{Field: "priority", Message: "must be one of low, medium, high, urgent"})
	}
	if c.AssignedTo != nil {
		errs = checkLength(errs, "assignedTo", *c.AssignedTo, 200)
	}
	return validationResult(errs)
}

// ComplaintPatch is a partial update. AssignedTo set to "" clears the assignee.
type ComplaintPatch struct {
	ComplainantName  *string            `json:"complainantName,omitempty"`
	ContactInfo      *string            `json:"contactInfo,omitempty"`
	OrganizationName *string            `json:"organizationName,omitempty"`
	ComplaintType    *string            `json:"complaintType,omitempty"`
	Description      *string            `json:"description,omitempty"`
	Status           *ComplaintStatus   `json:"status,omitempty"`
	Priority         *ComplaintPriority `json:"priority,omitempty"`
	AssignedTo       *string            `json:"assignedTo,omitempty"`
}

// IsEmpty reports whether no field is set.
func (p ComplaintPatch) IsEmpty() bool {
	return p.ComplainantName == nil && p.ContactInfo == nil && p.OrganizationName == nil &&
		p.ComplaintType == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.AssignedTo == nil
}

// Validate checks all fields and collects all errors.
func (p ComplaintPatch) Validate() error {
	if p.IsEmpty() {
		return NewValidationErrors(noFieldsError())
	}
	var errs []FieldError
	errs = checkPatchText(errs, "complainantName", p.ComplainantName, 200)
	errs = checkPatchText(errs, "contactInfo", p.ContactInfo, 200)
	errs = checkPatchText(errs, "complaintType", p.ComplaintType, 100)
	errs = checkPatchText(errs, "description", p.Description, 5000)
	if p.OrganizationName != nil {
		errs = checkLength(errs, "organizationName", *p.OrganizationName, 200)
	}
	if p.AssignedTo != nil {
		errs = checkLength(errs, "assignedTo", *p.AssignedTo, 200)
	}
	if p.Status != nil && !p.Status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Message: "must be one of pending, investigating, resolved, closed"})
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		errs = append(errs, FieldError{Field: "priority", Message: "must be one of low, medium, high, urgent"})
	}
	return validationResult(errs)
}
