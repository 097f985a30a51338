package entity

// DashboardStats are the platform totals shown on the overview page.
type DashboardStats struct {
	TotalUsers      int     `json:"total_users"`
	TotalSellers    int     `json:"total_sellers"`
	TotalProducts   int     `json:"total_products"`
	TotalOrders     int     `json:"total_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	OpenTickets     int     `json:"open_tickets"`
	PendingSellers  int     `json:"pending_sellers"`
	PendingProducts int     `json:"pending_products"`
}
