// Package stubgateway is a small stand-in for the real restaurant API, used
// for local development and integration tests. It implements the same HTTP
// contract the dashboard's gateway client speaks: raw JSON arrays and
// objects on success, an optional {"message"} body on errors.
package stubgateway

import (
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDB opens the stub's database. STUB_DB_DRIVER=mysql uses STUB_DB_DSN;
// anything else falls back to a local sqlite file (or the given DSN, which
// lets tests use ":memory:").
func OpenDB(dsn string) (*gorm.DB, error) {
	if os.Getenv("STUB_DB_DRIVER") == "mysql" {
		return gorm.Open(mysql.Open(os.Getenv("STUB_DB_DSN")), &gorm.Config{})
	}
	if dsn == "" {
		dsn = "stubgateway.db"
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

// Migrate creates the stub's tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&MenuRecord{},
		&AnnouncementRecord{},
		&CustomerRecord{},
		&OrderRecord{},
		&OrderItemRecord{},
	)
}

// NewServer builds the stub's router.
func NewServer(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &stubServer{db: db}

	menu := r.Group("/api/menu")
	{
		menu.GET("", s.listMenu)
		menu.POST("", s.createMenu)
		menu.PUT("/:id", s.updateMenu)
		menu.DELETE("/:id", s.deleteMenu)
	}

	announcements := r.Group("/api/announcements")
	{
		announcements.GET("", s.listAnnouncements)
		announcements.GET("/:id", s.getAnnouncement)
		announcements.POST("", s.createAnnouncement)
		announcements.PUT("/:id", s.updateAnnouncement)
		announcements.DELETE("/:id", s.deleteAnnouncement)
	}

	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/stats", s.stats)
		dashboard.GET("/recent-orders", s.recentOrders)
		dashboard.GET("/orders", s.allOrders)
		dashboard.GET("/order-items/:id", s.orderItems)
		dashboard.GET("/customers", s.listCustomers)
		dashboard.PUT("/customers/:id", s.updateCustomer)
	}

	analytics := r.Group("/analytics")
	{
		analytics.GET("/revenue-trend", s.revenueTrend)
		analytics.GET("/sales-by-category", s.salesByGroup)
		analytics.GET("/top-items", s.topItems)
		analytics.GET("/key-metrics", s.keyMetrics)
	}

	return r
}

type stubServer struct {
	db *gorm.DB
}
