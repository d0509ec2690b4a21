package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Device categories served by the trade-in flow.
const (
	DeviceTypePhone  = "phone"
	DeviceTypeLaptop = "laptop"
	DeviceTypeTablet = "tablet"
)

// DeviceVariant is one storage configuration of a device with its base trade-in price.
type DeviceVariant struct {
	bun.BaseModel `bun:"table:device_variants,alias:dv"`

	ID         string          `bun:"id,pk" json:"id"`
	DeviceID   string          `bun:"device_id,notnull" json:"device_id"`
	DeviceName string          `bun:"device_name,notnull" json:"device_name"`
	Brand      string          `bun:"brand,notnull" json:"brand"`
	DeviceType string          `bun:"device_type,notnull" json:"device_type"`
	Storage    string          `bun:"storage,notnull" json:"storage"`
	BasePrice  decimal.Decimal `bun:"base_price,type:numeric,notnull" json:"base_price"`
	CreatedAt  time.Time       `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt  time.Time       `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

// Device holds catalogue display data keyed by device identifier.
type Device struct {
	bun.BaseModel `bun:"table:devices,alias:d"`

	ID          string `bun:"id,pk"`
	DisplayName string `bun:"display_name,notnull"`
	Brand       string `bun:"brand,notnull"`
	DeviceType  string `bun:"device_type,notnull"`
}

// NormalizeDeviceType maps route and legacy category names onto the canonical set.
// It returns "" for unknown categories.
func NormalizeDeviceType(v string) string {
	switch v {
	case DeviceTypePhone:
		return DeviceTypePhone
	case DeviceTypeLaptop:
		return DeviceTypeLaptop
	case DeviceTypeTablet, "ipad":
		return DeviceTypeTablet
	default:
		return ""
	}
}
