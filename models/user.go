package models

import "time"

type User struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"` // stored lowercase
	Password      string    `gorm:"not null" json:"-"`
	IsAdmin       bool      `gorm:"default:false" json:"is_admin"`
	CartID        *uint     `json:"cart_id"`
	Cart          *Cart     `gorm:"foreignKey:UserID" json:"cart,omitempty"`
	LikedProducts []Product `gorm:"many2many:user_liked_products;constraint:OnDelete:CASCADE" json:"liked_products,omitempty"`
	AvatarURL     string    `json:"avatar_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
