package router

import (
	"github.com/gin-gonic/gin"

	"github.com/RichelleAnne09/agots-express-dashboard/controllers"
	"github.com/RichelleAnne09/agots-express-dashboard/gateway"
	"github.com/RichelleAnne09/agots-express-dashboard/middlewares"
	"github.com/RichelleAnne09/agots-express-dashboard/services"
)

// SetupRouter wires the dashboard surface: the menu screen runs through the
// catalog service and its cache, everything else proxies the upstream.
func SetupRouter(client *gateway.Client, catalog *services.CatalogService, stats *services.StatsService, limiter *middlewares.RateLimiter, allowedOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.CORSMiddlewares(allowedOrigin))
	if limiter != nil {
		r.Use(limiter.RateLimit())
	}

	menuCtrl := controllers.NewMenuController(catalog)
	announcementCtrl := controllers.NewAnnouncementController(client)
	customerCtrl := controllers.NewCustomerController(client)
	orderCtrl := controllers.NewOrderController(services.NewOrdersService(client))
	statsCtrl := controllers.NewStatsController(stats)

	menu := r.Group("/dashboard-api/menu")
	{
		menu.GET("", menuCtrl.GetMenu)
		menu.GET("/stats", menuCtrl.GetMenuStats)
		menu.GET("/meta", menuCtrl.GetMenuMeta)
		menu.POST("/refresh", menuCtrl.RefreshMenu)
		menu.POST("", menuCtrl.CreateMenuItem)
		menu.PUT("/:menu_id", menuCtrl.UpdateMenuItem)
		menu.DELETE("/:menu_id", menuCtrl.DeleteMenuItem)
	}

	announcements := r.Group("/dashboard-api/announcements")
	{
		announcements.GET("", announcementCtrl.GetAllAnnouncements)
		announcements.GET("/:announcement_id", announcementCtrl.GetAnnouncement)
		announcements.POST("", announcementCtrl.CreateAnnouncement)
		announcements.PUT("/:announcement_id", announcementCtrl.UpdateAnnouncement)
		announcements.DELETE("/:announcement_id", announcementCtrl.DeleteAnnouncement)
	}

	customers := r.Group("/dashboard-api/customers")
	{
		customers.GET("", customerCtrl.GetAllCustomers)
		customers.PUT("/:customer_id", customerCtrl.UpdateCustomer)
	}

	orders := r.Group("/dashboard-api/orders")
	{
		orders.GET("/recent", orderCtrl.GetRecentOrders)
		orders.GET("", orderCtrl.GetAllOrders)
	}

	analytics := r.Group("/dashboard-api/analytics")
	{
		analytics.GET("/stats", statsCtrl.GetStats)
		analytics.GET("/revenue-trend", statsCtrl.GetRevenueTrend)
		analytics.GET("/sales-by-group", statsCtrl.GetSalesByGroup)
		analytics.GET("/top-items", statsCtrl.GetTopItems)
		analytics.GET("/key-metrics", statsCtrl.GetKeyMetrics)
	}

	return r
}
