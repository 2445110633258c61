package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeTopup    TransactionType = "TOPUP"
	TransactionTypePayment  TransactionType = "PAYMENT"
	TransactionTypeRefund   TransactionType = "REFUND"
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusSuccess   TransactionStatus = "SUCCESS"
	TransactionStatusFailed    TransactionStatus = "FAILED"
	TransactionStatusCancelled TransactionStatus = "CANCELLED"
)

type PaymentMethod string

const (
	PaymentMethodGopay     PaymentMethod = "GOPAY"
	PaymentMethodShopeePay PaymentMethod = "SHOPEE_PAY"
)

// HistoricalTransaction is one completed ledger entry. Rows are written by the
// upstream transaction processor; this service never mutates or deletes them.
type HistoricalTransaction struct {
	ID                   string            `gorm:"primarykey;type:varchar(64)" json:"id"`
	UserID               int64             `gorm:"index;not null" json:"userId"`
	AccountID            string            `gorm:"type:varchar(64);index;not null" json:"accountId"`
	TransactionID        string            `gorm:"type:varchar(64);not null" json:"transactionId"`
	TransactionType      TransactionType   `gorm:"type:varchar(20);not null" json:"transactionType"`
	TransactionStatus    TransactionStatus `gorm:"type:varchar(20);not null" json:"transactionStatus"`
	Amount               decimal.Decimal   `gorm:"type:numeric(20,8);not null" json:"amount"`
	BalanceBefore        decimal.Decimal   `gorm:"type:numeric(20,8);not null" json:"balanceBefore"`
	BalanceAfter         decimal.Decimal   `gorm:"type:numeric(20,8);not null" json:"balanceAfter"`
	Currency             string            `gorm:"type:varchar(8);not null" json:"currency"`
	Description          *string           `gorm:"type:text" json:"description,omitempty"`
	ExternalReference    *string           `gorm:"type:varchar(128)" json:"externalReference,omitempty"`
	PaymentMethod        *PaymentMethod    `gorm:"type:varchar(20)" json:"paymentMethod,omitempty"`
	Metadata             *string           `gorm:"type:text" json:"metadata,omitempty"` // serialized JSON, kept opaque
	IsAccessibleExternal bool              `gorm:"not null;default:false" json:"isAccessibleExternal"`
	CreatedAt            time.Time         `gorm:"index;precision:3" json:"createdAt"`
	UpdatedAt            time.Time         `gorm:"precision:3" json:"updatedAt"`
}

func (HistoricalTransaction) TableName() string { return "historical_transactions" }

// TransactionResp is the list projection of HistoricalTransaction. It is also
// the shape cached for list reads, so it must survive a JSON round trip.
type TransactionResp struct {
	ID                string            `json:"id"`
	UserID            int64             `json:"userId"`
	AccountID         string            `json:"accountId"`
	TransactionID     string            `json:"transactionId"`
	TransactionStatus TransactionStatus `json:"transactionStatus"`
	Amount            decimal.Decimal   `json:"amount"`
	Currency          string            `json:"currency"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// ToResp projects the entity onto its list response shape, field for field.
func (t *HistoricalTransaction) ToResp() TransactionResp {
	return TransactionResp{
		ID:                t.ID,
		UserID:            t.UserID,
		AccountID:         t.AccountID,
		TransactionID:     t.TransactionID,
		TransactionStatus: t.TransactionStatus,
		Amount:            t.Amount,
		Currency:          t.Currency,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}
