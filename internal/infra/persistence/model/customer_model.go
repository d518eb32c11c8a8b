package model

import (
	"time"

	"gorm.io/datatypes"
)

// CustomerModel mirrors the 'customers' table. The phone number is the
// natural primary key of the aggregate. Nested aggregate state (cart,
// session, referrals, eligibility, order history) is stored as JSONB so the
// aggregate loads and saves as one row.
type CustomerModel struct {
	Phone       string `gorm:"type:varchar(32);primary_key"`
	Name        string `gorm:"type:varchar(100)"`
	Address     string `gorm:"type:text"`
	Area        string `gorm:"type:varchar(100)"`
	CountryCode string `gorm:"type:varchar(4)"`
	Active      bool   `gorm:"not null;default:true"`

	IsForeman         bool `gorm:"not null;default:false"`
	ForemanCommission bool `gorm:"not null;default:false"`

	CommissionRateBps       int `gorm:"not null;default:0"`
	CommissionEligibleSince *time.Time

	Cart        datatypes.JSON `gorm:"type:jsonb"`
	Session     datatypes.JSON `gorm:"type:jsonb"`
	ReferredBy  datatypes.JSON `gorm:"type:jsonb"`
	Referrals   datatypes.JSON `gorm:"type:jsonb"`
	Eligibility datatypes.JSON `gorm:"type:jsonb"`
	Orders      datatypes.JSON `gorm:"type:jsonb"`

	// Denormalized session columns queried by the reminder sweeps; kept in
	// step with the JSONB session on every write.
	CartUpdatedAt   *time.Time `gorm:"index"`
	CartItemCount   int        `gorm:"not null;default:0"`
	ReminderSentAt  *time.Time
	HasPendingOrder bool `gorm:"not null;default:false;index"`
	OldestPendingAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
