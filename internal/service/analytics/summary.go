package analytics

import "github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"

// StatusBreakdown counts complaints per status. Every status appears, in
// workflow order.
func StatusBreakdown(complaints []domain.Complaint) ([]domain.StatusCount, error) {
	counts := make(map[domain.ComplaintStatus]int, len(domain.ComplaintStatuses))
	for _, c := range complaints {
		if err := checkComplaintStatus(c); err != nil {
			return nil, err
		}
		counts[c.Status]++
	}

	out := make([]domain.StatusCount, len(domain.ComplaintStatuses))
	for i, s := range domain.ComplaintStatuses {
		out[i] = domain.StatusCount{Status: s, Count: counts[s]}
	}
	return out, nil
}

// Totals computes the headline counters. ResolutionRate is the share of
// resolved or closed complaints, 0 when there are none.
func Totals(complaints []domain.Complaint, messages []domain.ContactMessage) (domain.Totals, error) {
	var t domain.Totals
	finished := 0

	for _, c := range complaints {
		if err := checkComplaintStatus(c); err != nil {
			return domain.Totals{}, err
		}
		t.Complaints++
		if c.Status.IsFinal() {
			finished++
			continue
		}
		t.OpenComplaints++
		if c.Priority == domain.ComplaintPriorityUrgent {
			t.UrgentComplaints++
		}
	}

	for _, m := range messages {
		if !m.Status.IsValid() {
			return domain.Totals{}, domain.NewDataIntegrityError(messageRef(m), "status", "unknown status "+quote(string(m.Status)))
		}
		t.Messages++
		if m.Status == domain.MessageStatusUnread {
			t.UnreadMessages++
		}
	}

	t.ResolutionRate = percent(finished, t.Complaints)
	return t, nil
}
