package models

import "time"

// Order statuses as the upstream reports them.
const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Order is a row in the orders tables. Items is filled by the dashboard
// after a separate per-order fetch; the upstream order listing does not
// embed line items.
type Order struct {
	ID           uint        `json:"id"`
	CustomerName string      `json:"customer_name"`
	Status       string      `json:"status"`
	TotalAmount  float64     `json:"total_amount"`
	CreatedAt    time.Time   `json:"created_at"`
	Items        []OrderItem `json:"items,omitempty"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	FoodName string  `json:"food_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderStatusVariant maps a status to its badge classes; unknown statuses
// get the neutral variant the frontend uses as fallback.
func OrderStatusVariant(status string) string {
	switch status {
	case OrderCompleted:
		return "bg-green-500 text-white"
	case OrderPreparing:
		return "bg-orange-500 text-white"
	case OrderCancelled:
		return "bg-red-500 text-white"
	case OrderPending:
		return "bg-gray-100 text-gray-700 border border-gray-300"
	default:
		return "bg-gray-100 text-gray-700"
	}
}
