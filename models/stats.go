package models

// DashboardStats is the body of GET /api/stats/dashboard.
type DashboardStats struct {
	TotalMembers       int64             `json:"total_members"`
	TotalSocieties     int               `json:"total_societies"`
	TotalOrganizations int               `json:"total_organizations"`
	RecentFinances     []FinancialEntry  `json:"recent_finances"`
	MembersBySociety   map[Society]int64 `json:"members_by_society"`
}
