package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RichelleAnne09/agots-express-dashboard/models"
	"github.com/RichelleAnne09/agots-express-dashboard/services"
	"github.com/RichelleAnne09/agots-express-dashboard/utils"
)

type StatsController struct {
	Stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{Stats: stats}
}

// groupColors is the canonical chart palette for the sales-by-group pie.
// Used when the upstream sends no color of its own.
var groupColors = map[string]string{
	string(models.GroupMainCourse): "#8884d8",
	string(models.GroupDessert):    "#82ca9d",
	string(models.GroupAppetizer):  "#ffc658",
	string(models.GroupBeverage):   "#ff7f50",
	string(models.GroupComboMeal):  "#a569bd",
}

// GetStats returns the dashboard header aggregates, with the revenue figure
// pre-formatted for the cards.
func (sc *StatsController) GetStats(c *gin.Context) {
	stats, err := sc.Stats.Stats(c.Request.Context())
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", gin.H{
		"stats":                 stats,
		"today_revenue_display": utils.FormatPeso(stats.TodayRevenue),
	})
}

func (sc *StatsController) GetRevenueTrend(c *gin.Context) {
	points, err := sc.Stats.RevenueTrend(c.Request.Context())
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Revenue trend", points)
}

// GetSalesByGroup returns the per-group sales slices, filling in the
// canonical palette where the upstream left colors empty.
func (sc *StatsController) GetSalesByGroup(c *gin.Context) {
	sales, err := sc.Stats.SalesByGroup(c.Request.Context())
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	for i := range sales {
		if sales[i].Color == "" {
			sales[i].Color = groupColors[sales[i].Name]
		}
	}
	utils.RespondJSON(c, http.StatusOK, "Sales by group", sales)
}

func (sc *StatsController) GetTopItems(c *gin.Context) {
	items, err := sc.Stats.TopItems(c.Request.Context())
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Top items", items)
}

func (sc *StatsController) GetKeyMetrics(c *gin.Context) {
	metrics, err := sc.Stats.KeyMetrics(c.Request.Context())
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Key metrics", metrics)
}
