package analytics

import (
	"strings"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
)

// CategoryBreakdown groups complaints by type in order of first appearance.
// Each percentage is taken against the total and rounded on its own, so the
// shares need not add up to exactly 100. Records the other aggregations would
// reject are rejected here too, so every dashboard panel fails the same way.
func CategoryBreakdown(complaints []domain.Complaint) ([]domain.CategoryShare, error) {
	out := []domain.CategoryShare{}
	if len(complaints) == 0 {
		return out, nil
	}

	index := make(map[string]int)
	for _, c := range complaints {
		if strings.TrimSpace(c.ComplaintType) == "" {
			return nil, domain.NewDataIntegrityError(complaintRef(c), "complaintType", "missing type")
		}
		if err := checkComplaintCreatedAt(c); err != nil {
			return nil, err
		}
		if err := checkComplaintStatus(c); err != nil {
			return nil, err
		}
		i, ok := index[c.ComplaintType]
		if !ok {
			i = len(out)
			index[c.ComplaintType] = i
			out = append(out, domain.CategoryShare{Type: c.ComplaintType})
		}
		out[i].Count++
	}

	total := len(complaints)
	for i := range out {
		out[i].Percentage = percent(out[i].Count, total)
	}
	return out, nil
}
