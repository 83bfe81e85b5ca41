package models

// Stats is the dashboard header aggregate. Every figure carries its
// previous-period counterpart so the cards can show a trend arrow.
type Stats struct {
	TotalOrders            int     `json:"totalOrders"`
	TotalOrdersPrevious    int     `json:"totalOrdersPrevious"`
	TotalCustomers         int     `json:"totalCustomers"`
	TotalCustomersPrevious int     `json:"totalCustomersPrevious"`
	TodayRevenue           float64 `json:"todayRevenue"`
	RevenuePrevious        float64 `json:"revenuePrevious"`
	AverageFeedback        float64 `json:"averageFeedback"`
	FeedbackPrevious       float64 `json:"feedbackPrevious"`
}

// RevenuePoint is one month on the revenue trend chart.
type RevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// GroupSales is one slice of the sales-by-group chart.
type GroupSales struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// TopItem is one row of the most-ordered items list.
type TopItem struct {
	Name   string `json:"name"`
	Orders int    `json:"orders"`
}

// KeyMetrics mirrors the upstream analytics key-metrics payload.
type KeyMetrics struct {
	TotalRevenue     float64 `json:"total_revenue"`
	PrevTotalRevenue float64 `json:"prev_total_revenue"`
	TotalOrders      int     `json:"total_orders"`
	PrevTotalOrders  int     `json:"prev_total_orders"`
	NewCustomers     int     `json:"new_customers"`
	PrevNewCustomers int     `json:"prev_new_customers"`
	AvgRating        float64 `json:"avg_rating"`
	PrevAvgRating    float64 `json:"prev_avg_rating"`
}
