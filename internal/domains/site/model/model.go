package model

// Stats is the admin dashboard summary.
type Stats struct {
	TotalTours      int     `json:"total_tours"`
	TotalRooms      int     `json:"total_rooms"`
	TotalCategories int     `json:"total_categories"`
	TotalReviews    int     `json:"total_reviews"`
	PendingReviews  int     `json:"pending_reviews"`
	TotalBookings   int     `json:"total_bookings"`
	VisitorCount    int     `json:"visitor_count"`
	AvgRating       float64 `json:"avg_rating"`
}
