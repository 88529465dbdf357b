package domain

import "time"

// MonthCount is one point of the monthly complaint trend.
type MonthCount struct {
	Month time.Month `json:"month"`
	Label string     `json:"label"`
	Count int        `json:"count"`
}

// CategoryShare is one slice of the complaint-type breakdown.
// Percentage is rounded to one decimal against the total complaint count,
// so the shares need not sum to exactly 100.
type CategoryShare struct {
	Type       string  `json:"type"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// StatusCount is the number of complaints in one status.
type StatusCount struct {
	Status ComplaintStatus `json:"status"`
	Count  int             `json:"count"`
}

// Activity is one entry of the merged recent-activity feed.
type Activity struct {
	Kind       ActivityKind `json:"kind"`
	Title      string       `json:"title"`
	OccurredAt time.Time    `json:"occurredAt"`
	Status     string       `json:"status"`
}

// Totals are headline counters for the dashboard.
type Totals struct {
	Complaints       int     `json:"complaints"`
	OpenComplaints   int     `json:"openComplaints"`
	UrgentComplaints int     `json:"urgentComplaints"`
	Messages         int     `json:"messages"`
	UnreadMessages   int     `json:"unreadMessages"`
	ResolutionRate   float64 `json:"resolutionRate"`
}

// Dashboard is the admin overview, recomputed on every request.
type Dashboard struct {
	Year           int             `json:"year"`
	Totals         Totals          `json:"totals"`
	MonthlyTrend   []MonthCount    `json:"monthlyTrend"`
	Categories     []CategoryShare `json:"categories"`
	Statuses       []StatusCount   `json:"statuses"`
	RecentActivity []Activity      `json:"recentActivity"`
	FallbackMode   bool            `json:"fallbackMode"`
	GeneratedAt    time.Time       `json:"generatedAt"`
}
