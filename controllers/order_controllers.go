package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RichelleAnne09/agots-express-dashboard/models"
	"github.com/RichelleAnne09/agots-express-dashboard/services"
	"github.com/RichelleAnne09/agots-express-dashboard/utils"
)

type OrderController struct {
	Orders *services.OrdersService
}

func NewOrderController(orders *services.OrdersService) *OrderController {
	return &OrderController{Orders: orders}
}

// orderRow is an order with its badge variant attached, so every screen
// colors statuses the same way.
type orderRow struct {
	models.Order
	StatusVariant string `json:"status_variant"`
}

func withVariants(orders []models.Order) []orderRow {
	rows := make([]orderRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, orderRow{
			Order:         order,
			StatusVariant: models.OrderStatusVariant(order.Status),
		})
	}
	return rows
}

// GetRecentOrders returns the recent orders with their line items joined in.
// If any line-item fetch fails the whole load fails; no partial table.
func (oc *OrderController) GetRecentOrders(c *gin.Context) {
	orders, err := oc.Orders.RecentWithItems(c.Request.Context())
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Recent orders", withVariants(orders))
}

// GetAllOrders returns every order, without line items.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Orders.All(c.Request.Context())
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All orders", withVariants(orders))
}
