package stubgateway

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (s *stubServer) listCustomers(c *gin.Context) {
	var records []CustomerRecord
	if err := s.db.Order("id").Find(&records).Error; err != nil {
		respondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *stubServer) updateCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	var payload CustomerRecord
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	var record CustomerRecord
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondMessage(c, http.StatusNotFound, "customer not found")
			return
		}
		respondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}

	record.FirstName = payload.FirstName
	record.LastName = payload.LastName
	record.Email = payload.Email
	record.Phone = payload.Phone
	record.Address = payload.Address

	if err := s.db.Save(&record).Error; err != nil {
		respondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}

func (s *stubServer) recentOrders(c *gin.Context) {
	var records []OrderRecord
	if err := s.db.Order("created_at desc").Limit(10).Find(&records).Error; err != nil {
		respondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *stubServer) allOrders(c *gin.Context) {
	var records []OrderRecord
	if err := s.db.Order("created_at desc").Find(&records).Error; err != nil {
		respondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *stubServer) orderItems(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid order id")
		return
	}

	var items []OrderItemRecord
	if err := s.db.Where("order_id = ?", id).Find(&items).Error; err != nil {
		respondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *stubServer) stats(c *gin.Context) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var totalOrders, prevOrders, totalCustomers, prevCustomers int64
	s.db.Model(&OrderRecord{}).Where("created_at >= ?", monthStart).Count(&totalOrders)
	s.db.Model(&OrderRecord{}).Where("created_at >= ? AND created_at < ?", prevMonthStart, monthStart).Count(&prevOrders)
	s.db.Model(&CustomerRecord{}).Where("created_at >= ?", monthStart).Count(&totalCustomers)
	s.db.Model(&CustomerRecord{}).Where("created_at >= ? AND created_at < ?", prevMonthStart, monthStart).Count(&prevCustomers)

	var todayRevenue, prevRevenue float64
	s.db.Model(&OrderRecord{}).Where("created_at >= ? AND status = ?", dayStart, "completed").
		Select("COALESCE(SUM(total_amount), 0)").Scan(&todayRevenue)
	s.db.Model(&OrderRecord{}).Where("created_at >= ? AND created_at < ? AND status = ?", dayStart.AddDate(0, 0, -1), dayStart, "completed").
		Select("COALESCE(SUM(total_amount), 0)").Scan(&prevRevenue)

	c.JSON(http.StatusOK, gin.H{
		"totalOrders":            totalOrders,
		"totalOrdersPrevious":    prevOrders,
		"totalCustomers":         totalCustomers,
		"totalCustomersPrevious": prevCustomers,
		"todayRevenue":           todayRevenue,
		"revenuePrevious":        prevRevenue,
		"averageFeedback":        0,
		"feedbackPrevious":       0,
	})
}

// revenueTrend aggregates completed orders per month in Go so the same code
// works on sqlite and mysql.
func (s *stubServer) revenueTrend(c *gin.Context) {
	var orders []OrderRecord
	if err := s.db.Where("status = ?", "completed").Find(&orders).Error; err != nil {
		respondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}

	type bucket struct {
		revenue float64
		orders  int
	}
	buckets := make(map[string]*bucket)
	for _, order := range orders {
		month := order.CreatedAt.Format("Jan 2006")
		b, ok := buckets[month]
		if !ok {
			b = &bucket{}
			buckets[month] = b
		}
		b.revenue += order.TotalAmount
		b.orders++
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Slice(months, func(a, b int) bool {
		ta, _ := time.Parse("Jan 2006", months[a])
		tb, _ := time.Parse("Jan 2006", months[b])
		return ta.Before(tb)
	})

	points := make([]gin.H, 0, len(months))
	for _, month := range months {
		points = append(points, gin.H{
			"month":   month,
			"revenue": buckets[month].revenue,
			"orders":  buckets[month].orders,
		})
	}
	c.JSON(http.StatusOK, points)
}

// salesByGroup sums line-item sales per menu group, matching items to menu
// records by name.
func (s *stubServer) salesByGroup(c *gin.Context) {
	var menus []MenuRecord
	if err := s.db.Find(&menus).Error; err != nil {
		respondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}
	groupByName := make(map[string]string, len(menus))
	for _, m := range menus {
		groupByName[m.Name] = m.Group
	}

	var items []OrderItemRecord
	if err := s.db.Find(&items).Error; err != nil {
		respondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}

	totals := make(map[string]float64)
	for _, item := range items {
		group, ok := groupByName[item.FoodName]
		if !ok {
			continue
		}
		totals[group] += item.Price * float64(item.Quantity)
	}

	groups := make([]string, 0, len(totals))
	for group := range totals {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	sales := make([]gin.H, 0, len(groups))
	for _, group := range groups {
		sales = append(sales, gin.H{"name": group, "value": totals[group]})
	}
	c.JSON(http.StatusOK, sales)
}

func (s *stubServer) topItems(c *gin.Context) {
	var items []OrderItemRecord
	if err := s.db.Find(&items).Error; err != nil {
		respondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}

	counts := make(map[string]int)
	for _, item := range items {
		counts[item.FoodName] += item.Quantity
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(a, b int) bool {
		if counts[names[a]] != counts[names[b]] {
			return counts[names[a]] > counts[names[b]]
		}
		return names[a] < names[b]
	})
	if len(names) > 5 {
		names = names[:5]
	}

	top := make([]gin.H, 0, len(names))
	for _, name := range names {
		top = append(top, gin.H{"name": name, "orders": counts[name]})
	}
	c.JSON(http.StatusOK, top)
}

func (s *stubServer) keyMetrics(c *gin.Context) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)

	var revenue, prevRevenue float64
	s.db.Model(&OrderRecord{}).Where("created_at >= ? AND status = ?", monthStart, "completed").
		Select("COALESCE(SUM(total_amount), 0)").Scan(&revenue)
	s.db.Model(&OrderRecord{}).Where("created_at >= ? AND created_at < ? AND status = ?", prevMonthStart, monthStart, "completed").
		Select("COALESCE(SUM(total_amount), 0)").Scan(&prevRevenue)

	var orders, prevOrders, customers, prevCustomers int64
	s.db.Model(&OrderRecord{}).Where("created_at >= ?", monthStart).Count(&orders)
	s.db.Model(&OrderRecord{}).Where("created_at >= ? AND created_at < ?", prevMonthStart, monthStart).Count(&prevOrders)
	s.db.Model(&CustomerRecord{}).Where("created_at >= ?", monthStart).Count(&customers)
	s.db.Model(&CustomerRecord{}).Where("created_at >= ? AND created_at < ?", prevMonthStart, monthStart).Count(&prevCustomers)

	c.JSON(http.StatusOK, gin.H{
		"total_revenue":      revenue,
		"prev_total_revenue": prevRevenue,
		"total_orders":       orders,
		"prev_total_orders":  prevOrders,
		"new_customers":      customers,
		"prev_new_customers": prevCustomers,
		"avg_rating":         0,
		"prev_avg_rating":    0,
	})
}
