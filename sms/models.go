package sms

import "github.com/shopspring/decimal"

// Language selects the national language shift table used for encoding.
type Language struct {
	LanguageCode string `json:"languageCode,omitempty" validate:"omitempty,sms_language_code"`
}

// PreviewRequest asks how a text would be split and encoded before sending.
type PreviewRequest struct {
	LanguageCode    string `json:"languageCode,omitempty" validate:"omitempty,sms_language_code"`
	Text            string `json:"text"`
	Transliteration string `json:"transliteration,omitempty" validate:"omitempty,sms_transliteration"`
}

func NewPreviewRequest(text string) *PreviewRequest {
	return &PreviewRequest{Text: text}
}

type PreviewLanguageConfiguration struct {
	Language        *Language `json:"language,omitempty"`
	Transliteration string    `json:"transliteration,omitempty"`
}

type Preview struct {
	CharactersRemaining int                           `json:"charactersRemaining,omitempty"`
	Configuration       *PreviewLanguageConfiguration `json:"configuration,omitempty"`
	MessageCount        int                           `json:"messageCount,omitempty"`
	TextPreview         string                        `json:"textPreview,omitempty"`
}

type PreviewResponse struct {
	OriginalText string    `json:"originalText,omitempty"`
	Previews     []Preview `json:"previews,omitempty"`
}

// Status describes where a message stands in its delivery lifecycle.
type Status struct {
	Action      string `json:"action,omitempty"`
	Description string `json:"description,omitempty"`
	GroupID     int    `json:"groupId,omitempty"`
	GroupName   string `json:"groupName,omitempty"`
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
}

// Price is the charge for one message. PricePerMessage keeps the exact
// decimal the service reports.
type Price struct {
	Currency        string           `json:"currency,omitempty"`
	PricePerMessage *decimal.Decimal `json:"pricePerMessage,omitempty"`
}

// Error explains a failed delivery. Permanent errors will not succeed on retry.
type Error struct {
	Description string `json:"description,omitempty"`
	GroupID     int    `json:"groupId,omitempty"`
	GroupName   string `json:"groupName,omitempty"`
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Permanent   *bool  `json:"permanent,omitempty"`
}

type Report struct {
	BulkID       string  `json:"bulkId,omitempty"`
	CallbackData string  `json:"callbackData,omitempty"`
	DoneAt       string  `json:"doneAt,omitempty"`
	Error        *Error  `json:"error,omitempty"`
	From         string  `json:"from,omitempty"`
	MccMnc       string  `json:"mccMnc,omitempty"`
	MessageID    string  `json:"messageId,omitempty"`
	Price        *Price  `json:"price,omitempty"`
	SentAt       string  `json:"sentAt,omitempty"`
	SmsCount     int     `json:"smsCount,omitempty"`
	Status       *Status `json:"status,omitempty"`
	To           string  `json:"to,omitempty"`
}

type DeliveryReportsResponse struct {
	Results []Report `json:"results,omitempty"`
}

// Tracking enables conversion tracking for a bulk.
type Tracking struct {
	BaseURL      string `json:"baseUrl,omitempty"`
	ProcessKey   string `json:"processKey,omitempty"`
	Track        string `json:"track,omitempty"`
	TrackingType string `json:"type,omitempty"`
}

// TimeUnit is the period a SpeedLimit amount applies to.
type TimeUnit string

const (
	TimeUnitMinute TimeUnit = "MINUTE"
	TimeUnitHour   TimeUnit = "HOUR"
	TimeUnitDay    TimeUnit = "DAY"
)

// SpeedLimit caps how many messages of a bulk are sent per TimeUnit.
type SpeedLimit struct {
	Amount   int      `json:"amount" validate:"min=1"`
	TimeUnit TimeUnit `json:"timeUnit,omitempty" validate:"omitempty,oneof=MINUTE HOUR DAY"`
}

type URLOptions struct {
	ShortenURL     *bool  `json:"shortenUrl,omitempty"`
	TrackClicks    *bool  `json:"trackClicks,omitempty"`
	TrackingURL    string `json:"trackingUrl,omitempty" validate:"omitempty,url"`
	RemoveProtocol *bool  `json:"removeProtocol,omitempty"`
	CustomDomain   string `json:"customDomain,omitempty"`
}

type DeliveryDay string

const (
	Monday    DeliveryDay = "MONDAY"
	Tuesday   DeliveryDay = "TUESDAY"
	Wednesday DeliveryDay = "WEDNESDAY"
	Thursday  DeliveryDay = "THURSDAY"
	Friday    DeliveryDay = "FRIDAY"
	Saturday  DeliveryDay = "SATURDAY"
	Sunday    DeliveryDay = "SUNDAY"
)

// DeliveryTime is a wall-clock time of day.
type DeliveryTime struct {
	Hour   int `json:"hour" validate:"min=0,max=23"`
	Minute int `json:"minute" validate:"min=0,max=59"`
}

// DeliveryTimeWindow restricts sending to the listed days, optionally
// between From and To on each of them.
type DeliveryTimeWindow struct {
	Days []DeliveryDay `json:"days" validate:"required,min=1,max=7,unique,dive,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	From *DeliveryTime `json:"from,omitempty"`
	To   *DeliveryTime `json:"to,omitempty"`
}

func NewDeliveryTimeWindow(days ...DeliveryDay) *DeliveryTimeWindow {
	return &DeliveryTimeWindow{Days: days}
}

type Destination struct {
	MessageID string `json:"messageId,omitempty"`
	To        string `json:"to" validate:"required,max=50"`
}

func NewDestination(to string) Destination {
	return Destination{To: to}
}

// IndiaDlt carries the Distributed Ledger Technology registration required
// for traffic to India.
type IndiaDlt struct {
	ContentTemplateID string `json:"contentTemplateId,omitempty" validate:"omitempty,max=30"`
	PrincipalEntityID string `json:"principalEntityId" validate:"required"`
}

// TurkeyIys carries the IYS registration required for traffic to Turkey.
type TurkeyIys struct {
	BrandCode     *int   `json:"brandCode,omitempty"`
	RecipientType string `json:"recipientType" validate:"required,turkey_recipient_type"`
}

type RegionalOptions struct {
	IndiaDlt  *IndiaDlt  `json:"indiaDlt,omitempty"`
	TurkeyIys *TurkeyIys `json:"turkeyIys,omitempty"`
}

// Message is one text message sent to one or more destinations.
type Message struct {
	CallbackData       string              `json:"callbackData,omitempty" validate:"omitempty,max=4000"`
	DeliveryTimeWindow *DeliveryTimeWindow `json:"deliveryTimeWindow,omitempty"`
	Destinations       []Destination       `json:"destinations" validate:"required,min=1,dive"`
	Flash              *bool               `json:"flash,omitempty"`
	From               string              `json:"from,omitempty" validate:"omitempty,min=3,max=15"`
	IntermediateReport *bool               `json:"intermediateReport,omitempty"`
	Language           *Language           `json:"language,omitempty"`
	NotifyContentType  string              `json:"notifyContentType,omitempty" validate:"omitempty,notify_content_type"`
	NotifyURL          string              `json:"notifyUrl,omitempty" validate:"omitempty,url"`
	Regional           *RegionalOptions    `json:"regional,omitempty"`
	SendAt             string              `json:"sendAt,omitempty"`
	Text               string              `json:"text,omitempty"`
	Transliteration    string              `json:"transliteration,omitempty" validate:"omitempty,sms_transliteration"`
	ValidityPeriod     *int64              `json:"validityPeriod,omitempty"`
}

func NewMessage(text string, destinations ...Destination) Message {
	return Message{Text: text, Destinations: destinations}
}

// BinaryData is a raw payload given as hex octets, optionally space separated.
type BinaryData struct {
	DataCoding *int   `json:"dataCoding,omitempty"`
	EsmClass   *int   `json:"esmClass,omitempty"`
	Hex        string `json:"hex" validate:"required,binary_hex"`
}

type BinaryMessage struct {
	Binary             *BinaryData         `json:"binary,omitempty"`
	CallbackData       string              `json:"callbackData,omitempty" validate:"omitempty,max=4000"`
	DeliveryTimeWindow *DeliveryTimeWindow `json:"deliveryTimeWindow,omitempty"`
	Destinations       []Destination       `json:"destinations" validate:"required,min=1,dive"`
	Flash              *bool               `json:"flash,omitempty"`
	From               string              `json:"from,omitempty" validate:"omitempty,min=3,max=15"`
	IntermediateReport *bool               `json:"intermediateReport,omitempty"`
	NotifyContentType  string              `json:"notifyContentType,omitempty" validate:"omitempty,notify_content_type"`
	NotifyURL          string              `json:"notifyUrl,omitempty" validate:"omitempty,url"`
	Regional           *RegionalOptions    `json:"regional,omitempty"`
	SendAt             string              `json:"sendAt,omitempty"`
	ValidityPeriod     *int64              `json:"validityPeriod,omitempty"`
}

func NewBinaryMessage(hex string, destinations ...Destination) BinaryMessage {
	return BinaryMessage{Binary: &BinaryData{Hex: hex}, Destinations: destinations}
}

// SendRequest sends a bulk of text messages.
type SendRequest struct {
	BulkID            string      `json:"bulkId,omitempty"`
	Messages          []Message   `json:"messages" validate:"required,min=1,dive"`
	SendingSpeedLimit *SpeedLimit `json:"sendingSpeedLimit,omitempty"`
	URLOptions        *URLOptions `json:"urlOptions,omitempty"`
	Tracking          *Tracking   `json:"tracking,omitempty"`
}

func NewSendRequest(messages ...Message) *SendRequest {
	return &SendRequest{Messages: messages}
}

// SendBinaryRequest sends a bulk of binary messages.
type SendBinaryRequest struct {
	BulkID            string          `json:"bulkId,omitempty"`
	Messages          []BinaryMessage `json:"messages" validate:"required,min=1,dive"`
	SendingSpeedLimit *SpeedLimit     `json:"sendingSpeedLimit,omitempty"`
}

func NewSendBinaryRequest(messages ...BinaryMessage) *SendBinaryRequest {
	return &SendBinaryRequest{Messages: messages}
}

type SentMessageDetails struct {
	MessageID string  `json:"messageId,omitempty"`
	Status    *Status `json:"status,omitempty"`
	To        string  `json:"to,omitempty"`
}

// SendResponse acknowledges a bulk. BulkID is only set for more than one
// destination.
type SendResponse struct {
	BulkID   string               `json:"bulkId,omitempty"`
	Messages []SentMessageDetails `json:"messages,omitempty"`
}

type ScheduledResponse struct {
	BulkID string `json:"bulkId,omitempty"`
	SendAt string `json:"sendAt,omitempty"`
}

type Log struct {
	BulkID    string  `json:"bulkId,omitempty"`
	DoneAt    string  `json:"doneAt,omitempty"`
	Error     *Error  `json:"error,omitempty"`
	From      string  `json:"from,omitempty"`
	MccMnc    string  `json:"mccMnc,omitempty"`
	MessageID string  `json:"messageId,omitempty"`
	Price     *Price  `json:"price,omitempty"`
	SentAt    string  `json:"sentAt,omitempty"`
	SmsCount  int     `json:"smsCount,omitempty"`
	Status    *Status `json:"status,omitempty"`
	Text      string  `json:"text,omitempty"`
	To        string  `json:"to,omitempty"`
}

type LogsResponse struct {
	Results []Log `json:"results,omitempty"`
}

type InboundReport struct {
	CallbackData string `json:"callbackData,omitempty"`
	CleanText    string `json:"cleanText,omitempty"`
	From         string `json:"from,omitempty"`
	Keyword      string `json:"keyword,omitempty"`
	MessageID    string `json:"messageId,omitempty"`
	Price        *Price `json:"price,omitempty"`
	ReceivedAt   string `json:"receivedAt,omitempty"`
	SmsCount     int    `json:"smsCount,omitempty"`
	Text         string `json:"text,omitempty"`
	To           string `json:"to,omitempty"`
}

type InboundReportsResponse struct {
	MessageCount        int             `json:"messageCount,omitempty"`
	PendingMessageCount int             `json:"pendingMessageCount,omitempty"`
	Results             []InboundReport `json:"results,omitempty"`
}

// RescheduleRequest moves a scheduled bulk. SendAt uses the
// yyyy-MM-dd'T'HH:mm:ss.SSSZ layout.
type RescheduleRequest struct {
	SendAt string `json:"sendAt" validate:"required"`
}

func NewRescheduleRequest(sendAt string) *RescheduleRequest {
	return &RescheduleRequest{SendAt: sendAt}
}

type ScheduledStatus string

const (
	ScheduledPending    ScheduledStatus = "PENDING"
	ScheduledPaused     ScheduledStatus = "PAUSED"
	ScheduledProcessing ScheduledStatus = "PROCESSING"
	ScheduledCanceled   ScheduledStatus = "CANCELED"
	ScheduledFinished   ScheduledStatus = "FINISHED"
	ScheduledFailed     ScheduledStatus = "FAILED"
)

type ScheduledStatusResponse struct {
	BulkID string          `json:"bulkId,omitempty"`
	Status ScheduledStatus `json:"status,omitempty"`
}

type UpdateScheduledStatusRequest struct {
	Status ScheduledStatus `json:"status" validate:"required,oneof=PENDING PAUSED PROCESSING CANCELED FINISHED FAILED"`
}

func NewUpdateScheduledStatusRequest(status ScheduledStatus) *UpdateScheduledStatusRequest {
	return &UpdateScheduledStatusRequest{Status: status}
}
