package email

import (
	"github.com/shopspring/decimal"

	"github.com/example/infobip-go/api"
)

// SendRequest is a single or bulk email. It travels as multipart/form-data,
// so Attachment and InlineImage are local file paths whose contents are
// uploaded. Several recipients go into To as a comma separated list.
type SendRequest struct {
	From                    string `json:"from,omitempty"`
	To                      string `json:"to" validate:"required"`
	Cc                      string `json:"cc,omitempty"`
	Bcc                     string `json:"bcc,omitempty"`
	Subject                 string `json:"subject,omitempty" validate:"omitempty,max=150"`
	Text                    string `json:"text,omitempty"`
	HTML                    string `json:"html,omitempty"`
	AmpHTML                 string `json:"ampHtml,omitempty"`
	TemplateID              *int64 `json:"templateId,omitempty"`
	Attachment              string `json:"attachment,omitempty"`
	InlineImage             string `json:"inlineImage,omitempty"`
	IntermediateReport      *bool  `json:"intermediateReport,omitempty"`
	NotifyURL               string `json:"notifyUrl,omitempty" validate:"omitempty,url"`
	NotifyContentType       string `json:"notifyContentType,omitempty" validate:"omitempty,notify_content_type"`
	CallbackData            string `json:"callbackData,omitempty" validate:"omitempty,max=4000"`
	Track                   *bool  `json:"track,omitempty"`
	TrackClicks             *bool  `json:"trackClicks,omitempty"`
	TrackOpens              *bool  `json:"trackOpens,omitempty"`
	TrackingURL             string `json:"trackingUrl,omitempty" validate:"omitempty,url"`
	BulkID                  string `json:"bulkId,omitempty"`
	MessageID               string `json:"messageId,omitempty"`
	ReplyTo                 string `json:"replyTo,omitempty"`
	DefaultPlaceholders     string `json:"defaultPlaceholders,omitempty"`
	PreserveRecipients      *bool  `json:"preserveRecipients,omitempty"`
	SendAt                  string `json:"sendAt,omitempty"`
	LandingPagePlaceholders string `json:"landingPagePlaceholders,omitempty"`
	LandingPageID           string `json:"landingPageId,omitempty"`
}

func NewSendRequest(to string) *SendRequest {
	return &SendRequest{To: to}
}

// Form lays the request out as multipart parts, one per present field.
// File contents are read only when the form is sent.
func (r *SendRequest) Form() *api.Form {
	return api.NewForm().
		Text("to", r.To).
		Text("from", r.From).
		Text("cc", r.Cc).
		Text("bcc", r.Bcc).
		Text("subject", r.Subject).
		Text("text", r.Text).
		Text("html", r.HTML).
		Text("ampHtml", r.AmpHTML).
		Int("templateId", r.TemplateID).
		File("attachment", r.Attachment).
		File("inlineImage", r.InlineImage).
		Bool("intermediateReport", r.IntermediateReport).
		Text("notifyUrl", r.NotifyURL).
		Text("notifyContentType", r.NotifyContentType).
		Text("callbackData", r.CallbackData).
		Bool("track", r.Track).
		Bool("trackClicks", r.TrackClicks).
		Bool("trackOpens", r.TrackOpens).
		Text("trackingUrl", r.TrackingURL).
		Text("bulkId", r.BulkID).
		Text("messageId", r.MessageID).
		Text("replyTo", r.ReplyTo).
		Text("defaultPlaceholders", r.DefaultPlaceholders).
		Bool("preserveRecipients", r.PreserveRecipients).
		Text("sendAt", r.SendAt).
		Text("landingPagePlaceholders", r.LandingPagePlaceholders).
		Text("landingPageId", r.LandingPageID)
}

type Status struct {
	Action      string `json:"action,omitempty"`
	Description string `json:"description,omitempty"`
	GroupID     int    `json:"groupId,omitempty"`
	GroupName   string `json:"groupName,omitempty"`
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
}

type Error struct {
	Description string `json:"description,omitempty"`
	GroupID     int    `json:"groupId,omitempty"`
	GroupName   string `json:"groupName,omitempty"`
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Permanent   *bool  `json:"permanent,omitempty"`
}

// Price keeps the exact decimal the service reports.
type Price struct {
	Currency        string           `json:"currency,omitempty"`
	PricePerMessage *decimal.Decimal `json:"pricePerMessage,omitempty"`
}

type SentMessageDetails struct {
	MessageCount int     `json:"messageCount,omitempty"`
	MessageID    string  `json:"messageId,omitempty"`
	Status       *Status `json:"status,omitempty"`
	To           string  `json:"to,omitempty"`
}

type SendResponse struct {
	BulkID   string               `json:"bulkId,omitempty"`
	Messages []SentMessageDetails `json:"messages,omitempty"`
}

// Bulk is a scheduled bulk. SendAt is Unix milliseconds.
type Bulk struct {
	BulkID string `json:"bulkId,omitempty"`
	SendAt int64  `json:"sendAt,omitempty"`
}

type BulksResponse struct {
	ExternalBulkID string `json:"externalBulkId,omitempty"`
	Bulks          []Bulk `json:"bulks,omitempty"`
}

type RescheduleRequest struct {
	SendAt string `json:"sendAt" validate:"required"`
}

func NewRescheduleRequest(sendAt string) *RescheduleRequest {
	return &RescheduleRequest{SendAt: sendAt}
}

type RescheduleResponse struct {
	BulkID string `json:"bulkId,omitempty"`
	SendAt int64  `json:"sendAt,omitempty"`
}

type BulkStatus string

const (
	BulkPending    BulkStatus = "PENDING"
	BulkPaused     BulkStatus = "PAUSED"
	BulkProcessing BulkStatus = "PROCESSING"
	BulkCanceled   BulkStatus = "CANCELED"
	BulkFinished   BulkStatus = "FINISHED"
	BulkFailed     BulkStatus = "FAILED"
)

type BulkStatusInfo struct {
	BulkID string     `json:"bulkId,omitempty"`
	Status BulkStatus `json:"status,omitempty"`
}

type ScheduledStatusResponse struct {
	ExternalBulkID string           `json:"externalBulkId,omitempty"`
	Bulks          []BulkStatusInfo `json:"bulks,omitempty"`
}

type UpdateScheduledStatusRequest struct {
	Status BulkStatus `json:"status" validate:"required,oneof=PENDING PAUSED PROCESSING CANCELED FINISHED FAILED"`
}

func NewUpdateScheduledStatusRequest(status BulkStatus) *UpdateScheduledStatusRequest {
	return &UpdateScheduledStatusRequest{Status: status}
}

type UpdateScheduledStatusResponse struct {
	BulkID string     `json:"bulkId,omitempty"`
	Status BulkStatus `json:"status,omitempty"`
}

type Report struct {
	BulkID       string  `json:"bulkId,omitempty"`
	Channel      string  `json:"channel,omitempty"`
	DoneAt       string  `json:"doneAt,omitempty"`
	Error        *Error  `json:"error,omitempty"`
	MessageCount int     `json:"messageCount,omitempty"`
	MessageID    string  `json:"messageId,omitempty"`
	Price        *Price  `json:"price,omitempty"`
	SentAt       string  `json:"sentAt,omitempty"`
	Status       *Status `json:"status,omitempty"`
	To           string  `json:"to,omitempty"`
}

type DeliveryReportsResponse struct {
	Results []Report `json:"results,omitempty"`
}

type Log struct {
	BulkID       string  `json:"bulkId,omitempty"`
	DoneAt       string  `json:"doneAt,omitempty"`
	From         string  `json:"from,omitempty"`
	MessageCount int     `json:"messageCount,omitempty"`
	MessageID    string  `json:"messageId,omitempty"`
	Price        *Price  `json:"price,omitempty"`
	SentAt       string  `json:"sentAt,omitempty"`
	Status       *Status `json:"status,omitempty"`
	Text         string  `json:"text,omitempty"`
	To           string  `json:"to,omitempty"`
}

type LogsResponse struct {
	Results []Log `json:"results,omitempty"`
}

type ValidateAddressRequest struct {
	To string `json:"to" validate:"required"`
}

func NewValidateAddressRequest(to string) *ValidateAddressRequest {
	return &ValidateAddressRequest{To: to}
}

// ValidateAddressResponse grades one address. ValidMailbox is "true",
// "false" or "unknown".
type ValidateAddressResponse struct {
	CatchAll     *bool  `json:"catchAll,omitempty"`
	DidYouMean   string `json:"didYouMean,omitempty"`
	Disposable   *bool  `json:"disposable,omitempty"`
	Reason       string `json:"reason,omitempty"`
	RoleBased    *bool  `json:"roleBased,omitempty"`
	To           string `json:"to,omitempty"`
	ValidMailbox string `json:"validMailbox,omitempty"`
	ValidSyntax  *bool  `json:"validSyntax,omitempty"`
}

type DkimKeyLength int

const (
	DkimKeyLength1024 DkimKeyLength = 1024
	DkimKeyLength2048 DkimKeyLength = 2048
)

type AddDomainRequest struct {
	DkimKeyLength *DkimKeyLength `json:"dkimKeyLength,omitempty" validate:"omitnil,oneof=1024 2048"`
	DomainName    string         `json:"domainName" validate:"required"`
}

func NewAddDomainRequest(domainName string) *AddDomainRequest {
	return &AddDomainRequest{DomainName: domainName}
}

type Tracking struct {
	Clicks      *bool `json:"clicks,omitempty"`
	Opens       *bool `json:"opens,omitempty"`
	Unsubscribe *bool `json:"unsubscribe,omitempty"`
}

type DNSRecord struct {
	ExpectedValue string `json:"expectedValue,omitempty"`
	Name          string `json:"name,omitempty"`
	RecordType    string `json:"recordType,omitempty"`
	Verified      *bool  `json:"verified,omitempty"`
}

type Domain struct {
	Active     *bool       `json:"active,omitempty"`
	Blocked    *bool       `json:"blocked,omitempty"`
	CreatedAt  string      `json:"createdAt,omitempty"`
	DNSRecords []DNSRecord `json:"dnsRecords,omitempty"`
	DomainID   int64       `json:"domainId,omitempty"`
	DomainName string      `json:"domainName,omitempty"`
	Tracking   *Tracking   `json:"tracking,omitempty"`
}

type Paging struct {
	Page         int `json:"page,omitempty"`
	Size         int `json:"size,omitempty"`
	TotalPages   int `json:"totalPages,omitempty"`
	TotalResults int `json:"totalResults,omitempty"`
}

type DomainsResponse struct {
	Paging  *Paging  `json:"paging,omitempty"`
	Results []Domain `json:"results,omitempty"`
}

// UpdateTrackingRequest switches tracking features per domain. Nil fields
// are left unchanged.
type UpdateTrackingRequest struct {
	Clicks      *bool `json:"clicks,omitempty"`
	Open        *bool `json:"open,omitempty"`
	Unsubscribe *bool `json:"unsubscribe,omitempty"`
}
