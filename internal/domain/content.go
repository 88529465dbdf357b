package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContentEntry is one editable value on a site page, addressed by
// (Section, Key). The pair is unique within a store.
type ContentEntry struct {
	ID      uuid.UUID   `json:"id"`
	Section string      `json:"section"`
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Kind    ContentKind `json:"kind"`
}

// ApplyDefaults fills optional fields that have a documented default.
func (e *ContentEntry) ApplyDefaults() {
	if e.Kind == "" {
		e.Kind = ContentKindText
	}
}

// Validate checks all fields and collects all errors.
func (e ContentEntry) Validate() error {
	var errs []FieldError
	errs = checkRequired(errs, "section", e.Section, 100)
	errs = checkRequired(errs, "key", e.Key, 100)
	if !e.Kind.IsValid() {
		errs = append(errs, FieldError{Field: "kind", Message: "must be one of text, rich_text, image"})
	}
	return validationResult(errs)
}

// ContentEntryPatch is a partial update. Section and Key are the entry's
// identity and are changed only through an explicit patch.
type ContentEntryPatch struct {
	Section *string      `json:"section,omitempty"`
	Key     *string      `json:"key,omitempty"`
	Value   *string      `json:"value,omitempty"`
	Kind    *ContentKind `json:"kind,omitempty"`
}

// IsEmpty reports whether no field is set.
func (p ContentEntryPatch) IsEmpty() bool {
	return p.Section == nil && p.Key == nil && p.Value == nil && p.Kind == nil
}

// Validate checks all fields and collects all errors.
func (p ContentEntryPatch) Validate() error {
	if p.IsEmpty() {
		return NewValidationErrors(noFieldsError())
	}
	var errs []FieldError
	errs = checkPatchText(errs, "section", p.Section, 100)
	errs = checkPatchText(errs, "key", p.Key, 100)
	if p.Kind != nil && !p.Kind.IsValid() {
		errs = append(errs, FieldError{Field: "kind", Message: "must be one of text, rich_text, image"})
	}
	return validationResult(errs)
}

// Article is a news item or announcement.
type Article struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"createdAt"`
}

// DefaultArticleCategory is used when an article is created without one.
const DefaultArticleCategory = "news"

// ApplyDefaults fills optional fields that have a documented default.
func (a *Article) ApplyDefaults() {
	if a.Category == "" {
		a.Category = DefaultArticleCategory
	}
}

// Validate checks all fields and collects all errors.
func (a Article) Validate() error {
	var errs []FieldError
	errs = checkRequired(errs, "title", a.Title, 300)
	errs = checkRequired(errs, "body", a.Body, 0)
	errs = checkLength(errs, "excerpt", a.Excerpt, 1000)
	errs = checkLength(errs, "author", a.Author, 200)
	errs = checkRequired(errs, "category", a.Category, 100)
	return validationResult(errs)
}

// ArticlePatch is a partial update. CreatedAt is immutable and has no field here.
type ArticlePatch struct {
	Title    *string `json:"title,omitempty"`
	Excerpt  *string `json:"excerpt,omitempty"`
	Body     *string `json:"body,omitempty"`
	Author   *string `json:"author,omitempty"`
	Category *string `json:"category,omitempty"`
	Featured *bool   `json:"featured,omitempty"`
}

// IsEmpty reports whether no field is set.
func (p ArticlePatch) IsEmpty() bool {
	return p.Title == nil && p.Excerpt == nil && p.Body == nil &&
		p.Author == nil && p.Category == nil && p.Featured == nil
}

// Validate checks all fields and collects all errors.
func (p ArticlePatch) Validate() error {
	if p.IsEmpty() {
		return NewValidationErrors(noFieldsError())
	}
	var errs []FieldError
	errs = checkPatchText(errs, "title", p.Title, 300)
	errs = checkPatchText(errs, "body", p.Body, 0)
	errs = checkPatchText(errs, "category", p.Category, 100)
	if p.Excerpt != nil {
		errs = checkLength(errs, "excerpt", *p.Excerpt, 1000)
	}
	if p.Author != nil {
		errs = checkLength(errs, "author", *p.Author, 200)
	}
	return validationResult(errs)
}

// Testimonial is a quote from a member of the public. It is shown on the
// public site only once Approved.
type Testimonial struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Organization string    `json:"organization"`
	Body         string    `json:"body"`
	Rating       int       `json:"rating"`
	Featured     bool      `json:"featured"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsPublic reports whether the testimonial may appear on the public site.
func (t Testimonial) IsPublic() bool { return t.Approved }

// ApplyDefaults is a no-op: Approved starts false, which is its zero value.
func (t *Testimonial) ApplyDefaults() {}

// Validate checks all fields and collects all errors.
func (t Testimonial) Validate() error {
	var errs []FieldError
	errs = checkRequired(errs, "name", t.Name, 200)
	errs = checkRequired(errs, "body", t.Body, 2000)
	errs = checkLength(errs, "role", t.Role, 200)
	errs = checkLength(errs, "organization", t.Organization, 200)
	errs = checkRating(errs, "rating", t.Rating)
	return validationResult(errs)
}

// TestimonialPatch is a partial update.
type TestimonialPatch struct {
	Name         *string `json:"name,omitempty"`
	Role         *string `json:"role,omitempty"`
	Organization *string `json:"organization,omitempty"`
	Body         *string `json:"body,omitempty"`
	Rating       *int    `json:"rating,omitempty"`
	Featured     *bool   `json:"featured,omitempty"`
	Approved     *bool   `json:"approved,omitempty"`
}

// IsEmpty reports whether no field is set.
func (p TestimonialPatch) IsEmpty() bool {
	return p.Name == nil && p.Role == nil && p.Organization == nil && p.Body == nil &&
		p.Rating == nil && p.Featured == nil && p.Approved == nil
}

// Validate checks all fields and collects all errors.
func (p TestimonialPatch) Validate() error {
	if p.IsEmpty() {
		return NewValidationErrors(noFieldsError())
	}
	var errs []FieldError
	errs = checkPatchText(errs, "name", p.Name, 200)
	errs = checkPatchText(errs, "body", p.Body, 2000)
	if p.Role != nil {
		errs = checkLength(errs, "role", *p.Role, 200)
	}
	if p.Organization != nil {
		errs = checkLength(errs, "organization", *p.Organization, 200)
	}
	if p.Rating != nil {
		errs = checkRating(errs, "rating", *p.Rating)
	}
	return validationResult(errs)
}
