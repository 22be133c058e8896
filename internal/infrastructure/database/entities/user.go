package entities

import "time"

// User models an account owning pages, content and subscriptions.
type User struct {
	ID                   string    `gorm:"type:uuid;primaryKey"`
	Email                string    `gorm:"type:varchar(255);uniqueIndex"`
	FirstName            string    `gorm:"type:varchar(120)"`
	LastName             string    `gorm:"type:varchar(120)"`
	ProfileImageURL      string    `gorm:"type:text"`
	StripeCustomerID     string    `gorm:"type:varchar(120)"`
	StripeSubscriptionID string    `gorm:"type:varchar(120)"`
	SubscriptionStatus   string    `gorm:"type:varchar(32);default:inactive"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
