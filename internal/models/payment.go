package models

import (
	"time"

	"gorm.io/gorm"
)

// CheckoutAttempt is the audit record of one checkout run. Every attempt
// gets a fresh row and a fresh gateway intent; attempts are never
// resumed.
type CheckoutAttempt struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	CartID         string         `json:"cart_id" gorm:"not null;index"`
	AttemptRef     string         `json:"attempt_ref" gorm:"unique;not null"`
	GatewayOrderID string         `json:"gateway_order_id"`
	Amount         int64          `json:"amount"` // minor currency units
	Currency       string         `json:"currency"`
	Status         string         `json:"status" gorm:"default:'started'"`
	FailureReason  string         `json:"failure_reason"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type AttemptStatus string

const (
	AttemptStarted   AttemptStatus = "started"
	AttemptCompleted AttemptStatus = "completed"
	AttemptFailed    AttemptStatus = "failed"
	AttemptCancelled AttemptStatus = "cancelled"
)

// PaymentReconciliation records a charge that succeeded at the gateway
// but never reached a confirmed order: either order creation or payment
// verification failed afterwards. Staff resolve these out-of-band; the
// storefront never auto-refunds.
type PaymentReconciliation struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Stage          string         `json:"stage" gorm:"not null"`
	GatewayOrderID string         `json:"gateway_order_id" gorm:"not null"`
	PaymentID      string         `json:"payment_id" gorm:"not null"`
	Signature      string         `json:"signature"`
	OrderID        string         `json:"order_id"` // set when the order was created but verification failed
	Amount         int64          `json:"amount"`
	Currency       string         `json:"currency"`
	Detail         string         `json:"detail" gorm:"type:text"`
	Resolved       bool           `json:"resolved" gorm:"default:false"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type ReconciliationStage string

const (
	StageOrderCreation ReconciliationStage = "order_creation"
	StageVerification  ReconciliationStage = "verification"
)
