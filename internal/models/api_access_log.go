package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HTTPMethod string

const (
	HTTPMethodGet    HTTPMethod = "GET"
	HTTPMethodPost   HTTPMethod = "POST"
	HTTPMethodPut    HTTPMethod = "PUT"
	HTTPMethodDelete HTTPMethod = "DELETE"
	HTTPMethodPatch  HTTPMethod = "PATCH"
)

// ApiAccessLog is an append-only audit record of one external read. Written
// exactly once per successful query; never updated or deleted by this service.
type ApiAccessLog struct {
	ID                string     `gorm:"primarykey;type:varchar(64)" json:"id"`
	ExternalServiceID string     `gorm:"type:varchar(64);index;not null" json:"externalServiceId"`
	APIKeyID          string     `gorm:"type:varchar(64);not null" json:"apiKeyId"`
	Endpoint          string     `gorm:"type:varchar(255);not null" json:"endpoint"`
	HTTPMethod        HTTPMethod `gorm:"type:varchar(10);not null" json:"httpMethod"`
	IPAddress         string     `gorm:"type:varchar(50);not null" json:"ipAddress"`
	UserAgent         string     `gorm:"type:varchar(255);not null" json:"userAgent"`
	ResponseStatus    int        `gorm:"not null" json:"responseStatus"`
	CreatedAt         time.Time  `gorm:"precision:3" json:"createdAt"`
}

func (ApiAccessLog) TableName() string { return "api_access_logs" }

// BeforeCreate assigns a generated id when the caller did not supply one.
func (l *ApiAccessLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
