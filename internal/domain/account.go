package domain

// Account Model
type Account struct {
	ID       uint   `gorm:"primaryKey" json:"id"` // Primary key, immutable once assigned
	Name     string `gorm:"not null" json:"name"` // Display label
	Bank     string `json:"bank"`                 // Issuing institution
	ClientID uint   `gorm:"index" json:"clientId"` // Owning client; many accounts may share one client
}
