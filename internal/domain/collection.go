package domain

// Collection names a fixed set of same-shaped records.
type Collection string

const (
	CollectionContentEntries  Collection = "content_entries"
	CollectionArticles        Collection = "articles"
	CollectionTestimonials    Collection = "testimonials"
	CollectionComplaints      Collection = "complaints"
	CollectionContactMessages Collection = "contact_messages"
)

// Collections lists every collection the data layer serves.
var Collections = []Collection{
	CollectionContentEntries,
	CollectionArticles,
	CollectionTestimonials,
	CollectionComplaints,
	CollectionContactMessages,
}

func (c Collection) String() string { return string(c) }

func (c Collection) IsValid() bool {
	switch c {
	case CollectionContentEntries, CollectionArticles, CollectionTestimonials,
		CollectionComplaints, CollectionContactMessages:
		return true
	}
	return false
}
