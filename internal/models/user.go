package models

// User represents a registered account on the platform.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"type:varchar(255);not null" validate:"required"`
	Email    string `json:"email" gorm:"type:varchar(255);not null;uniqueIndex" validate:"required"`
	Password string `json:"-" gorm:"type:varchar(255);not null"` // Never serialized
	UserType string `json:"userType" gorm:"type:varchar(255);not null;default:Regular"`
}
