package utils

import "strconv"

// Meta is the envelope header carried by every reply. Code is the stringified
// HTTP status.
type Meta struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// PaginatedMeta extends Meta with the paging totals of a list reply.
type PaginatedMeta struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Total   int64  `json:"total"`
	Page    int    `json:"page"`
	Size    int    `json:"size"`
}

// WebResponse is the meta/data envelope shared by all endpoints. Data is
// always present, null on errors.
type WebResponse struct {
	Meta interface{} `json:"meta"`
	Data interface{} `json:"data"`
}

// NewSuccessResponse builds a 200 envelope.
func NewSuccessResponse(message string, data interface{}) WebResponse {
	return WebResponse{
		Meta: Meta{Code: "200", Message: message},
		Data: data,
	}
}

// NewPaginatedResponse builds a 200 envelope with paging totals.
func NewPaginatedResponse(message string, total int64, page, size int, data interface{}) WebResponse {
	return WebResponse{
		Meta: PaginatedMeta{
			Code:    "200",
			Message: message,
			Total:   total,
			Page:    page,
			Size:    size,
		},
		Data: data,
	}
}

// NewErrorResponse builds an error envelope with a null data payload.
func NewErrorResponse(status int, message string) WebResponse {
	return WebResponse{
		Meta: Meta{Code: strconv.Itoa(status), Message: message},
		Data: nil,
	}
}
