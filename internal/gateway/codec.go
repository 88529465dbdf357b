package gateway

import (
	"time"

	"github.com/google/uuid"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/store"
)

// codec moves one entity type in and out of provider records.
type codec[T, P any] struct {
	collection    domain.Collection
	decode        func(store.Record) (T, error)
	encode        func(T) store.Record
	encodePatch   func(P, time.Time) store.Record
	applyDefaults func(*T)
	validate      func(T) error
	validatePatch func(P) error
}

// decoder reads columns from a record, keeping the first error.
type decoder struct {
	rec store.Record
	err error
}

func (d *decoder) id() uuid.UUID {
	if d.err != nil {
		return uuid.Nil
	}
	v, err := d.rec.UUID(store.ColID)
	d.err = err
	return v
}

func (d *decoder) text(col string) string {
	if d.err != nil {
		return ""
	}
	v, err := d.rec.StringOrEmpty(col)
	d.err = err
	return v
}

func (d *decoder) optional(col string) *string {
	if d.err != nil {
		return nil
	}
	v, err := d.rec.OptionalString(col)
	d.err = err
	return v
}

func (d *decoder) flag(col string) bool {
	if d.err != nil {
		return false
	}
	v, err := d.rec.Bool(col)
	d.err = err
	return v
}

func (d *decoder) number(col string) int {
	if d.err != nil || !d.rec.Has(col) {
		return 0
	}
	v, err := d.rec.Int(col)
	d.err = err
	return v
}

// timestamp returns the zero time for a missing column so that the
// aggregation layer can report it as a data integrity fault.
func (d *decoder) timestamp(col string) time.Time {
	if d.err != nil || !d.rec.Has(col) {
		return time.Time{}
	}
	v, err := d.rec.Time(col)
	d.err = err
	return v
}

// putID and putCreatedAt omit zero values so the provider assigns them.
func putID(rec store.Record, id uuid.UUID) {
	if id != uuid.Nil {
		rec[store.ColID] = id.String()
	}
}

func putCreatedAt(rec store.Record, t time.Time) {
	if !t.IsZero() {
		rec[store.ColCreatedAt] = t.UTC()
	}
}

func putText[S ~string](rec store.Record, col string, v *S) {
	if v != nil {
		rec[col] = string(*v)
	}
}

func putAny[V any](rec store.Record, col string, v *V) {
	if v != nil {
		rec[col] = *v
	}
}

// nullable maps nil and "" to SQL NULL.
func nullable(v *string) any {
	if v == nil || *v == "" {
		return nil
	}
	return *v
}

var contentCodec = codec[domain.ContentEntry, domain.ContentEntryPatch]{
	collection: domain.CollectionContentEntries,
	decode: func(r store.Record) (domain.ContentEntry, error) {
		d := decoder{rec: r}
		e := domain.ContentEntry{
			ID:      d.id(),
			Section: d.text("section"),
			Key:     d.text("key"),
			Value:   d.text("value"),
			Kind:    domain.ContentKind(d.text("kind")),
		}
		e.ApplyDefaults()
		return e, d.err
	},
	encode: func(e domain.ContentEntry) store.Record {
		rec := store.Record{
			"section": e.Section,
			"key":     e.Key,
			"value":   e.Value,
			"kind":    string(e.Kind),
		}
		putID(rec, e.ID)
		return rec
	},
	encodePatch: func(p domain.ContentEntryPatch, _ time.Time) store.Record {
		rec := store.Record{}
		putText(rec, "section", p.Section)
		putText(rec, "key", p.Key)
		putText(rec, "value", p.Value)
		putText(rec, "kind", p.Kind)
		return rec
	},
	applyDefaults: (*domain.ContentEntry).ApplyDefaults,
	validate:      domain.ContentEntry.Validate,
	validatePatch: domain.ContentEntryPatch.Validate,
}

var articleCodec = codec[domain.Article, domain.ArticlePatch]{
	collection: domain.CollectionArticles,
	decode: func(r store.Record) (domain.Article, error) {
		d := decoder{rec: r}
		a := domain.Article{
			ID:        d.id(),
			Title:     d.text("title"),
			Excerpt:   d.text("excerpt"),
			Body:      d.text("body"),
			Author:    d.text("author"),
			Category:  d.text("category"),
			Featured:  d.flag("featured"),
			CreatedAt: d.timestamp(store.ColCreatedAt),
		}
		return a, d.err
	},
	encode: func(a domain.Article) store.Record {
		rec := store.Record{
			"title":    a.Title,
			"excerpt":  a.Excerpt,
			"body":     a.Body,
			"author":   a.Author,
			"category": a.Category,
			"featured": a.Featured,
		}
		putID(rec, a.ID)
		putCreatedAt(rec, a.CreatedAt)
		return rec
	},
	encodePatch: func(p domain.ArticlePatch, _ time.Time) store.Record {
		rec := store.Record{}
		putText(rec, "title", p.Title)
		putText(rec, "excerpt", p.Excerpt)
		putText(rec, "body", p.Body)
		putText(rec, "author", p.Author)
		putText(rec, "category", p.Category)
		putAny(rec, "featured", p.Featured)
		return rec
	},
	applyDefaults: (*domain.Article).ApplyDefaults,
	validate:      domain.Article.Validate,
	validatePatch: domain.ArticlePatch.Validate,
}

var testimonialCodec = codec[domain.Testimonial, domain.TestimonialPatch]{
	collection: domain.CollectionTestimonials,
	decode: func(r store.Record) (domain.Testimonial, error) {
		d := decoder{rec: r}
		t := domain.Testimonial{
			ID:           d.id(),
			Name:         d.text("name"),
			Role:         d.text("role"),
			Organization: d.text("organization"),
			Body:         d.text("body"),
			Rating:       d.number("rating"),
			Featured:     d.flag("featured"),
			Approved:     d.flag("approved"),
			CreatedAt:    d.timestamp(store.ColCreatedAt),
		}
		return t, d.err
	},
	encode: func(t domain.Testimonial) store.Record {
		rec := store.Record{
			"name":         t.Name,
			"role":         t.Role,
			"organization": t.Organization,
			"body":         t.Body,
			"rating":       t.Rating,
			"featured":     t.Featured,
			"approved":     t.Approved,
		}
		putID(rec, t.ID)
		putCreatedAt(rec, t.CreatedAt)
		return rec
	},
	encodePatch: func(p domain.TestimonialPatch, _ time.Time) store.Record {
		rec := store.Record{}
		putText(rec, "name", p.Name)
		putText(rec, "role", p.Role)
		putText(rec, "organization", p.Organization)
		putText(rec, "body", p.Body)
		putAny(rec, "rating", p.Rating)
		putAny(rec, "featured", p.Featured)
		putAny(rec, "approved", p.Approved)
		return rec
	},
	applyDefaults: (*domain.Testimonial).ApplyDefaults,
	validate:      domain.Testimonial.Validate,
	validatePatch: domain.TestimonialPatch.Validate,
}

var complaintCodec = codec[domain.Complaint, domain.ComplaintPatch]{
	collection: domain.CollectionComplaints,
	decode: func(r store.Record) (domain.Complaint, error) {
		d := decoder{rec: r}
		c := domain.Complaint{
			ID:               d.id(),
			ComplainantName:  d.text("complainant_name"),
			ContactInfo:      d.text("contact_info"),
			OrganizationName: d.text("organization_name"),
			ComplaintType:    d.text("complaint_type"),
			Description:      d.text("description"),
			Status:           domain.ComplaintStatus(d.text("status")),
			Priority:         domain.ComplaintPriority(d.text("priority")),
			AssignedTo:       d.optional("assigned_to"),
			CreatedAt:        d.timestamp(store.ColCreatedAt),
			UpdatedAt:        d.timestamp(store.ColUpdatedAt),
		}
		return c, d.err
	},
	encode: func(c domain.Complaint) store.Record {
		rec := store.Record{
			"complainant_name":  c.ComplainantName,
			"contact_info":      c.ContactInfo,
			"organization_name": c.OrganizationName,
			"complaint_type":    c.ComplaintType,
			"description":       c.Description,
			"status":            string(c.Status),
			"priority":          string(c.Priority),
			"assigned_to":       nullable(c.AssignedTo),
		}
		putID(rec, c.ID)
		putCreatedAt(rec, c.CreatedAt)
		if !c.UpdatedAt.IsZero() {
			rec[store.ColUpdatedAt] = c.UpdatedAt.UTC()
		}
		return rec
	},
	encodePatch: func(p domain.ComplaintPatch, now time.Time) store.Record {
		rec := store.Record{}
		putText(rec, "complainant_name", p.ComplainantName)
		putText(rec, "contact_info", p.ContactInfo)
		putText(rec, "organization_name", p.OrganizationName)
		putText(rec, "complaint_type", p.ComplaintType)
		putText(rec, "description", p.Description)
		putText(rec, "status", p.Status)
		putText(rec, "priority", p.Priority)
		if p.AssignedTo != nil {
			rec["assigned_to"] = nullable(p.AssignedTo)
		}
		rec[store.ColUpdatedAt] = now.UTC()
		return rec
	},
	applyDefaults: (*domain.Complaint).ApplyDefaults,
	validate:      domain.Complaint.Validate,
	validatePatch: domain.ComplaintPatch.Validate,
}

var messageCodec = codec[domain.ContactMessage, domain.ContactMessagePatch]{
	collection: domain.CollectionContactMessages,
	decode: func(r store.Record) (domain.ContactMessage, error) {
		d := decoder{rec: r}
		m := domain.ContactMessage{
			ID:        d.id(),
			Name:      d.text("name"),
			Email:     d.text("email"),
			Phone:     d.optional("phone"),
			Category:  d.text("category"),
			Subject:   d.text("subject"),
			Body:      d.text("body"),
			Status:    domain.MessageStatus(d.text("status")),
			CreatedAt: d.timestamp(store.ColCreatedAt),
		}
		return m, d.err
	},
	encode: func(m domain.ContactMessage) store.Record {
		rec := store.Record{
			"name":     m.Name,
			"email":    m.Email,
			"phone":    nullable(m.Phone),
			"category": m.Category,
			"subject":  m.Subject,
			"body":     m.Body,
			"status":   string(m.Status),
		}
		putID(rec, m.ID)
		putCreatedAt(rec, m.CreatedAt)
		return rec
	},
	encodePatch: func(p domain.ContactMessagePatch, _ time.Time) store.Record {
		rec := store.Record{}
		putText(rec, "name", p.Name)
		putText(rec, "email", p.Email)
		if p.Phone != nil {
			rec["phone"] = nullable(p.Phone)
		}
		putText(rec, "category", p.Category)
		putText(rec, "subject", p.Subject)
		putText(rec, "body", p.Body)
		putText(rec, "status", p.Status)
		return rec
	},
	applyDefaults: (*domain.ContactMessage).ApplyDefaults,
	validate:      domain.ContactMessage.Validate,
	validatePatch: domain.ContactMessagePatch.Validate,
}
