package dto

type DashboardResponse struct {
	TotalUsers      int     `json:"total_users"`
	TotalTables     int     `json:"total_tables"`
	TotalCategories int     `json:"total_categories"`
	TotalMenuItems  int     `json:"total_menu_items"`
	TotalBookings   int     `json:"total_bookings"`
	PendingBookings int     `json:"pending_bookings"`
	TotalOrders     int     `json:"total_orders"`
	PendingOrders   int     `json:"pending_orders"`
	PendingReviews  int     `json:"pending_reviews"`
	TotalRevenue    float64 `json:"total_revenue"`
}
