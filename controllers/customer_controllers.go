package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RichelleAnne09/agots-express-dashboard/models"
	"github.com/RichelleAnne09/agots-express-dashboard/utils"
)

// CustomersGateway is the upstream contract for the customers screen.
type CustomersGateway interface {
	Customers(ctx context.Context) ([]models.Customer, error)
	UpdateCustomer(ctx context.Context, id uint, customer models.Customer) (models.Customer, error)
}

type CustomerController struct {
	Gateway CustomersGateway
}

func NewCustomerController(gw CustomersGateway) *CustomerController {
	return &CustomerController{Gateway: gw}
}

func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := cc.Gateway.Customers(c.Request.Context())
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, err := parseID(c.Param("customer_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid customer id"))
		return
	}

	var body models.Customer
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updated, err := cc.Gateway.UpdateCustomer(c.Request.Context(), id, body)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer updated", updated)
}
