package sms

import (
	"net/url"
	"strconv"
	"strings"
)

func setString(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setInt(v url.Values, key string, value *int) {
	if value != nil {
		v.Set(key, strconv.Itoa(*value))
	}
}

func setBool(v url.Values, key string, value *bool) {
	if value != nil {
		v.Set(key, strconv.FormatBool(*value))
	}
}

// DeliveryReportsQuery filters delivery reports. Reports are returned once;
// Limit caps how many are fetched per call.
type DeliveryReportsQuery struct {
	BulkID    string `json:"bulkId,omitempty"`
	MessageID string `json:"messageId,omitempty"`
	Limit     *int   `json:"limit,omitempty" validate:"omitnil,max=1000"`
}

func (q DeliveryReportsQuery) Values() url.Values {
	v := url.Values{}
	setString(v, "bulkId", q.BulkID)
	setString(v, "messageId", q.MessageID)
	setInt(v, "limit", q.Limit)
	return v
}

// LogsQuery filters sent message logs from the last 48 hours.
type LogsQuery struct {
	From          string `json:"from,omitempty"`
	To            string `json:"to,omitempty"`
	BulkID        string `json:"bulkId,omitempty"`
	MessageID     string `json:"messageId,omitempty"`
	GeneralStatus string `json:"generalStatus,omitempty"`
	SentSince     string `json:"sentSince,omitempty"`
	SentUntil     string `json:"sentUntil,omitempty"`
	Limit         *int   `json:"limit,omitempty" validate:"omitnil,max=1000"`
	Mcc           string `json:"mcc,omitempty"`
	Mnc           string `json:"mnc,omitempty"`
}

func (q LogsQuery) Values() url.Values {
	v := url.Values{}
	setString(v, "from", q.From)
	setString(v, "to", q.To)
	setString(v, "bulkId", q.BulkID)
	setString(v, "messageId", q.MessageID)
	setString(v, "generalStatus", q.GeneralStatus)
	setString(v, "sentSince", q.SentSince)
	setString(v, "sentUntil", q.SentUntil)
	setInt(v, "limit", q.Limit)
	setString(v, "mcc", q.Mcc)
	setString(v, "mnc", q.Mnc)
	return v
}

type InboundReportsQuery struct {
	Limit *int `json:"limit,omitempty" validate:"omitnil,max=1000"`
}

func (q InboundReportsQuery) Values() url.Values {
	v := url.Values{}
	setInt(v, "limit", q.Limit)
	return v
}

// BulkQuery addresses a scheduled bulk.
type BulkQuery struct {
	BulkID string `json:"bulkId" validate:"required"`
}

func (q BulkQuery) Values() url.Values {
	return url.Values{"bulkId": {q.BulkID}}
}

// SendOverQueryParameters sends a message with everything, credentials
// included, in the query string. Destinations are joined with commas.
type SendOverQueryParameters struct {
	Username                  string   `json:"username" validate:"required"`
	Password                  string   `json:"password" validate:"required"`
	BulkID                    string   `json:"bulkId,omitempty"`
	From                      string   `json:"from,omitempty"`
	To                        []string `json:"to" validate:"required,min=1,dive,required"`
	Text                      string   `json:"text,omitempty"`
	Flash                     *bool    `json:"flash,omitempty"`
	Transliteration           string   `json:"transliteration,omitempty" validate:"omitempty,sms_transliteration"`
	LanguageCode              string   `json:"languageCode,omitempty" validate:"omitempty,sms_language_code"`
	IntermediateReport        *bool    `json:"intermediateReport,omitempty"`
	NotifyURL                 string   `json:"notifyUrl,omitempty" validate:"omitempty,url"`
	NotifyContentType         string   `json:"notifyContentType,omitempty" validate:"omitempty,notify_content_type"`
	CallbackData              string   `json:"callbackData,omitempty" validate:"omitempty,max=4000"`
	ValidityPeriod            *int     `json:"validityPeriod,omitempty"`
	SendAt                    string   `json:"sendAt,omitempty"`
	Track                     string   `json:"track,omitempty"`
	ProcessKey                string   `json:"processKey,omitempty"`
	TrackingType              string   `json:"trackingType,omitempty"`
	IndiaDltContentTemplateID string   `json:"indiaDltContentTemplateId,omitempty" validate:"omitempty,max=30"`
	IndiaDltPrincipalEntityID string   `json:"indiaDltPrincipalEntityId,omitempty"`
}

func NewSendOverQueryParameters(username, password string, to ...string) SendOverQueryParameters {
	return SendOverQueryParameters{Username: username, Password: password, To: to}
}

func (q SendOverQueryParameters) Values() url.Values {
	v := url.Values{}
	v.Set("username", q.Username)
	v.Set("password", q.Password)
	v.Set("to", strings.Join(q.To, ","))
	setString(v, "bulkId", q.BulkID)
	setString(v, "from", q.From)
	setString(v, "text", q.Text)
	setBool(v, "flash", q.Flash)
	setString(v, "transliteration", q.Transliteration)
	setString(v, "languageCode", q.LanguageCode)
	setBool(v, "intermediateReport", q.IntermediateReport)
	setString(v, "notifyUrl", q.NotifyURL)
	setString(v, "notifyContentType", q.NotifyContentType)
	setString(v, "callbackData", q.CallbackData)
	setInt(v, "validityPeriod", q.ValidityPeriod)
	setString(v, "sendAt", q.SendAt)
	setString(v, "track", q.Track)
	setString(v, "processKey", q.ProcessKey)
	setString(v, "trackingType", q.TrackingType)
	setString(v, "indiaDltContentTemplateId", q.IndiaDltContentTemplateID)
	setString(v, "indiaDltPrincipalEntityId", q.IndiaDltPrincipalEntityID)
	return v
}

// SendPinQuery controls number lookup before a PIN is sent.
type SendPinQuery struct {
	NcNeeded *bool `json:"ncNeeded,omitempty"`
}

func (q SendPinQuery) Values() url.Values {
	v := url.Values{}
	setBool(v, "ncNeeded", q.NcNeeded)
	return v
}

type TfaVerificationStatusQuery struct {
	Msisdn   string `json:"msisdn" validate:"required"`
	Verified *bool  `json:"verified,omitempty"`
	Sent     *bool  `json:"sent,omitempty"`
}

func NewTfaVerificationStatusQuery(msisdn string) TfaVerificationStatusQuery {
	return TfaVerificationStatusQuery{Msisdn: msisdn}
}

func (q TfaVerificationStatusQuery) Values() url.Values {
	v := url.Values{}
	v.Set("msisdn", q.Msisdn)
	setBool(v, "verified", q.Verified)
	setBool(v, "sent", q.Sent)
	return v
}
