package domain

import "context"

// DashboardStats holds the aggregate counts shown on the admin dashboard.
// The event counts are derived from the stored date against wall-clock time
// at query time; a cancelled event with a future date still counts as
// upcoming. The four counts are separate queries, not a consistent snapshot.
// swagger:model DashboardStats
type DashboardStats struct {
	ResidentCount      int `json:"residentCount"`
	UpcomingEventCount int `json:"upcomingEventCount"`
	PastEventCount     int `json:"pastEventCount"`
	TotalEventCount    int `json:"totalEventCount"`
}

// StatsService computes dashboard statistics.
type StatsService interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}
