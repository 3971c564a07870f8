package email

import (
	"net/url"
	"strconv"
)

// BulkQuery addresses a scheduled bulk.
type BulkQuery struct {
	BulkID string `json:"bulkId" validate:"required"`
}

func (q BulkQuery) Values() url.Values {
	return url.Values{"bulkId": {q.BulkID}}
}

type DeliveryReportsQuery struct {
	BulkID    string `json:"bulkId,omitempty"`
	MessageID string `json:"messageId,omitempty"`
	Limit     *int   `json:"limit,omitempty" validate:"omitnil,max=1000"`
}

func (q DeliveryReportsQuery) Values() url.Values {
	v := url.Values{}
	if q.BulkID != "" {
		v.Set("bulkId", q.BulkID)
	}
	if q.MessageID != "" {
		v.Set("messageId", q.MessageID)
	}
	if q.Limit != nil {
		v.Set("limit", strconv.Itoa(*q.Limit))
	}
	return v
}

// LogsQuery filters logs of the last 48 hours.
type LogsQuery struct {
	MessageID     string `json:"messageId,omitempty"`
	From          string `json:"from,omitempty"`
	To            string `json:"to,omitempty"`
	BulkID        string `json:"bulkId,omitempty"`
	GeneralStatus string `json:"generalStatus,omitempty"`
	SentSince     string `json:"sentSince,omitempty"`
	SentUntil     string `json:"sentUntil,omitempty"`
	Limit         *int   `json:"limit,omitempty" validate:"omitnil,max=1000"`
}

func (q LogsQuery) Values() url.Values {
	v := url.Values{}
	for key, value := range map[string]string{
		"messageId":     q.MessageID,
		"from":          q.From,
		"to":            q.To,
		"bulkId":        q.BulkID,
		"generalStatus": q.GeneralStatus,
		"sentSince":     q.SentSince,
		"sentUntil":     q.SentUntil,
	} {
		if value != "" {
			v.Set(key, value)
		}
	}
	if q.Limit != nil {
		v.Set("limit", strconv.Itoa(*q.Limit))
	}
	return v
}

// DomainsQuery pages through domains. Page numbering starts at 1.
type DomainsQuery struct {
	Size *int `json:"size,omitempty" validate:"omitnil,min=1,max=20"`
	Page *int `json:"page,omitempty" validate:"omitnil,min=1"`
}

func (q DomainsQuery) Values() url.Values {
	v := url.Values{}
	if q.Size != nil {
		v.Set("size", strconv.Itoa(*q.Size))
	}
	if q.Page != nil {
		v.Set("page", strconv.Itoa(*q.Page))
	}
	return v
}
