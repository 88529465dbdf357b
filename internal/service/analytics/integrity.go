package analytics

import (
	"math"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
)

func complaintRef(c domain.Complaint) string { return "complaint " + c.ID.String() }

func messageRef(m domain.ContactMessage) string { return "message " + m.ID.String() }

func checkComplaintCreatedAt(c domain.Complaint) error {
	if c.CreatedAt.IsZero() {
		return domain.NewDataIntegrityError(complaintRef(c), "createdAt", "missing timestamp")
	}
	return nil
}

func checkComplaintStatus(c domain.Complaint) error {
	if !c.Status.IsValid() {
		return domain.NewDataIntegrityError(complaintRef(c), "status", "unknown status "+quote(string(c.Status)))
	}
	return nil
}

func checkMessage(m domain.ContactMessage) error {
	if m.CreatedAt.IsZero() {
		return domain.NewDataIntegrityError(messageRef(m), "createdAt", "missing timestamp")
	}
	if !m.Status.IsValid() {
		return domain.NewDataIntegrityError(messageRef(m), "status", "unknown status "+quote(string(m.Status)))
	}
	return nil
}

func quote(s string) string { return `"` + s + `"` }

// percent returns part/total*100 rounded half away from zero to one decimal.
func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
