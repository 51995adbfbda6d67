// internal/models/device.go
package models

import (
	"time"
)

// Device is a physical RFID scanner owned by a supplier.
type Device struct {
	BaseModel
	DeviceCode   string `json:"deviceCode" gorm:"uniqueIndex;size:50;not null"`
	SupplierCode string `json:"supplierCode" gorm:"index;size:50;not null"`
	DeviceName   string `json:"deviceName" gorm:"size:100"`
}

// RfidScanHistory is an append-only log of scan batches reported by devices.
type RfidScanHistory struct {
	BaseModel
	DeviceCode      string     `json:"deviceCode" gorm:"index;size:50;not null"`
	SupplierCode    string     `json:"supplierCode" gorm:"index;size:50;not null"`
	ClientCode      string     `json:"clientCode" gorm:"index;size:50"`
	ProductCode     string     `json:"productCode" gorm:"size:50;not null"`
	Status          ScanStatus `json:"status" gorm:"type:varchar(20);not null"`
	ScannedCount    int        `json:"scannedCount" gorm:"not null"`
	AcceptedCount   int        `json:"acceptedCount" gorm:"not null"`
	LatestReadingAt time.Time  `json:"latestReadingAt" gorm:"not null"`
}
