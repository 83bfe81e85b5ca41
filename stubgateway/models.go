package stubgateway

import "time"

// Record types persisted by the stub. The JSON shapes mirror the real
// upstream API exactly: a null category means "no category", the literal
// string "None" is never stored or served.

type MenuRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Category    *string   `gorm:"type:varchar(100)" json:"category"`
	Price       int       `gorm:"not null" json:"price"`
	Description *string   `gorm:"type:text" json:"description"`
	Group       string    `gorm:"type:varchar(100);not null" json:"group"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

type AnnouncementRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Type      string    `gorm:"type:varchar(50);not null" json:"type"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Date      string    `gorm:"type:varchar(10);not null" json:"date"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type CustomerRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"type:varchar(100)" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100)" json:"last_name"`
	Email     string    `gorm:"type:varchar(255)" json:"email"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`
	Address   string    `gorm:"type:varchar(255)" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

type OrderRecord struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerName string    `gorm:"type:varchar(200)" json:"customer_name"`
	Status       string    `gorm:"type:varchar(50);not null" json:"status"`
	TotalAmount  float64   `gorm:"not null" json:"total_amount"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

type OrderItemRecord struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	OrderID  uint    `gorm:"index;not null" json:"-"`
	FoodName string  `gorm:"type:varchar(255);not null" json:"food_name"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"not null" json:"price"`
}
