package domain

// Client Model
type Client struct {
	ID       uint   `gorm:"primaryKey" json:"id"`            // Primary key
	Username string `gorm:"unique;not null" json:"username"` // Unique username, stored lowercase
	Password string `gorm:"not null" json:"-"`               // Hashed password, never serialized
}
