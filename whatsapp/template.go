package whatsapp

import (
	"encoding/json"
	"fmt"

	"github.com/example/infobip-go/internal/wire"
)

// TemplateCategory classifies a template for approval.
type TemplateCategory string

const (
	CategoryAccountUpdate        TemplateCategory = "ACCOUNT_UPDATE"
	CategoryPaymentUpdate        TemplateCategory = "PAYMENT_UPDATE"
	CategoryPersonalFinance      TemplateCategory = "PERSONAL_FINANCE_UPDATE"
	CategoryShippingUpdate       TemplateCategory = "SHIPPING_UPDATE"
	CategoryReservationUpdate    TemplateCategory = "RESERVATION_UPDATE"
	CategoryIssueResolution      TemplateCategory = "ISSUE_RESOLUTION"
	CategoryAppointmentUpdate    TemplateCategory = "APPOINTMENT_UPDATE"
	CategoryTransportationUpdate TemplateCategory = "TRANSPORTATION_UPDATE"
	CategoryTicketUpdate         TemplateCategory = "TICKET_UPDATE"
	CategoryAlertUpdate          TemplateCategory = "ALERT_UPDATE"
	CategoryAutoReply            TemplateCategory = "AUTO_REPLY"
	CategoryMarketing            TemplateCategory = "MARKETING"
	CategoryTransactional        TemplateCategory = "TRANSACTIONAL"
	CategoryOTP                  TemplateCategory = "OTP"
)

// TemplateLanguage is a WhatsApp locale code such as "en" or "pt_BR". The
// accepted set is enforced by validation.
type TemplateLanguage string

const (
	LanguageEnglish   TemplateLanguage = "en"
	LanguageEnglishGB TemplateLanguage = "en_GB"
	LanguageEnglishUS TemplateLanguage = "en_US"
	LanguageGerman    TemplateLanguage = "de"
	LanguageSpanish   TemplateLanguage = "es"
	LanguageFrench    TemplateLanguage = "fr"
	LanguageItalian   TemplateLanguage = "it"
	LanguageCroatian  TemplateLanguage = "hr"
	LanguageUnknown   TemplateLanguage = "unknown"
)

// TemplateStatus is the approval state of a registered template.
type TemplateStatus string

const (
	TemplateApproved        TemplateStatus = "APPROVED"
	TemplateInAppeal        TemplateStatus = "IN_APPEAL"
	TemplatePending         TemplateStatus = "PENDING"
	TemplateRejected        TemplateStatus = "REJECTED"
	TemplatePendingDeletion TemplateStatus = "PENDING_DELETION"
	TemplateDeleted         TemplateStatus = "DELETED"
	TemplateDisabled        TemplateStatus = "DISABLED"
)

// TemplateType is reported by the service on registered templates.
type TemplateType string

const (
	TemplateTypeText        TemplateType = "TEXT"
	TemplateTypeMedia       TemplateType = "MEDIA"
	TemplateTypeUnsupported TemplateType = "UNSUPPORTED"
)

// TemplateHeader is the header slot of a template being registered,
// discriminated by "format".
type TemplateHeader interface {
	templateHeaderFormat() string
}

// TemplateDocumentHeader declares a PDF header. Example is a sample URL.
type TemplateDocumentHeader struct {
	Example string `json:"example,omitempty" validate:"omitempty,url"`
}

func (TemplateDocumentHeader) templateHeaderFormat() string { return "DOCUMENT" }

func (h TemplateDocumentHeader) MarshalJSON() ([]byte, error) {
	type plain TemplateDocumentHeader
	return wire.Tagged("format", h.templateHeaderFormat(), plain(h))
}

type TemplateImageHeader struct {
	Example string `json:"example,omitempty" validate:"omitempty,url"`
}

func (TemplateImageHeader) templateHeaderFormat() string { return "IMAGE" }

func (h TemplateImageHeader) MarshalJSON() ([]byte, error) {
	type plain TemplateImageHeader
	return wire.Tagged("format", h.templateHeaderFormat(), plain(h))
}

// TemplateLocationHeader has no fields; the location is supplied per send.
type TemplateLocationHeader struct{}

func (TemplateLocationHeader) templateHeaderFormat() string { return "LOCATION" }

func (h TemplateLocationHeader) MarshalJSON() ([]byte, error) {
	type plain TemplateLocationHeader
	return wire.Tagged("format", h.templateHeaderFormat(), plain(h))
}

// TemplateTextHeader may carry one {{1}} placeholder.
type TemplateTextHeader struct {
	Text    string `json:"text" validate:"required"`
	Example string `json:"example,omitempty"`
}

func (TemplateTextHeader) templateHeaderFormat() string { return "TEXT" }

func (h TemplateTextHeader) MarshalJSON() ([]byte, error) {
	type plain TemplateTextHeader
	return wire.Tagged("format", h.templateHeaderFormat(), plain(h))
}

type TemplateVideoHeader struct {
	Example string `json:"example,omitempty" validate:"omitempty,url"`
}

func (TemplateVideoHeader) templateHeaderFormat() string { return "VIDEO" }

func (h TemplateVideoHeader) MarshalJSON() ([]byte, error) {
	type plain TemplateVideoHeader
	return wire.Tagged("format", h.templateHeaderFormat(), plain(h))
}

// TemplateButton is a button declared on a template being registered.
type TemplateButton interface {
	templateButtonType() string
}

type PhoneNumberButton struct {
	Text        string `json:"text" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

func (PhoneNumberButton) templateButtonType() string { return "PHONE_NUMBER" }

func (b PhoneNumberButton) MarshalJSON() ([]byte, error) {
	type plain PhoneNumberButton
	return wire.Tagged("type", b.templateButtonType(), plain(b))
}

type QuickReplyButton struct {
	Text string `json:"text" validate:"required"`
}

func (QuickReplyButton) templateButtonType() string { return "QUICK_REPLY" }

func (b QuickReplyButton) MarshalJSON() ([]byte, error) {
	type plain QuickReplyButton
	return wire.Tagged("type", b.templateButtonType(), plain(b))
}

// URLButton opens URL, which may end in a {{1}} placeholder for dynamic links.
type URLButton struct {
	Text    string `json:"text" validate:"required"`
	URL     string `json:"url" validate:"required"`
	Example string `json:"example,omitempty" validate:"omitempty,url"`
}

func (URLButton) templateButtonType() string { return "URL" }

func (b URLButton) MarshalJSON() ([]byte, error) {
	type plain URLButton
	return wire.Tagged("type", b.templateButtonType(), plain(b))
}

var (
	templateHeaders = wire.Table[TemplateHeader]{
		"DOCUMENT": wire.Variant[TemplateHeader, TemplateDocumentHeader](),
		"IMAGE":    wire.Variant[TemplateHeader, TemplateImageHeader](),
		"LOCATION": wire.Variant[TemplateHeader, TemplateLocationHeader](),
		"TEXT":     wire.Variant[TemplateHeader, TemplateTextHeader](),
		"VIDEO":    wire.Variant[TemplateHeader, TemplateVideoHeader](),
	}
	templateButtons = wire.Table[TemplateButton]{
		"PHONE_NUMBER": wire.Variant[TemplateButton, PhoneNumberButton](),
		"QUICK_REPLY":  wire.Variant[TemplateButton, QuickReplyButton](),
		"URL":          wire.Variant[TemplateButton, URLButton](),
	}
)

// TemplateBody holds text with {{n}} placeholders and one example per
// placeholder.
type TemplateBody struct {
	Text     string   `json:"text" validate:"required"`
	Examples []string `json:"examples,omitempty"`
}

type TemplateFooter struct {
	Text string `json:"text" validate:"max=60"`
}

// TemplateStructure is the layout of a template: optional header, body,
// optional footer and up to three buttons.
type TemplateStructure struct {
	Header  TemplateHeader   `json:"header,omitempty"`
	Body    TemplateBody     `json:"body"`
	Footer  *TemplateFooter  `json:"footer,omitempty"`
	Buttons []TemplateButton `json:"buttons,omitempty" validate:"omitempty,max=3,dive"`
	Type    TemplateType     `json:"type,omitempty"`
}

func NewTemplateStructure(body string) TemplateStructure {
	return TemplateStructure{Body: TemplateBody{Text: body}}
}

func (s *TemplateStructure) UnmarshalJSON(data []byte) error {
	type plain TemplateStructure
	aux := struct {
		*plain
		Header  json.RawMessage `json:"header,omitempty"`
		Buttons json.RawMessage `json:"buttons,omitempty"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	header, err := wire.Decode(aux.Header, "format", templateHeaders)
	if err != nil {
		return fmt.Errorf("template header: %w", err)
	}
	buttons, err := wire.DecodeSlice(aux.Buttons, "type", templateButtons)
	if err != nil {
		return fmt.Errorf("template buttons: %w", err)
	}
	s.Header = header
	s.Buttons = buttons
	return nil
}

// CreateTemplateRequest registers a template for a sender.
type CreateTemplateRequest struct {
	Name      string            `json:"name" validate:"required"`
	Language  TemplateLanguage  `json:"language" validate:"required,wa_template_language"`
	Category  TemplateCategory  `json:"category" validate:"required,wa_template_category"`
	Structure TemplateStructure `json:"structure"`
}

func NewCreateTemplateRequest(name string, language TemplateLanguage, category TemplateCategory, structure TemplateStructure) *CreateTemplateRequest {
	return &CreateTemplateRequest{Name: name, Language: language, Category: category, Structure: structure}
}

// TemplateBodyContent fills the body placeholders in registration order.
// It always encodes a placeholders array, empty for templates without
// placeholders.
type TemplateBodyContent struct {
	Placeholders []string `json:"placeholders" validate:"dive,required"`
}

func NewTemplateBodyContent(placeholders ...string) TemplateBodyContent {
	return TemplateBodyContent{Placeholders: placeholders}
}

func (b TemplateBodyContent) MarshalJSON() ([]byte, error) {
	type plain TemplateBodyContent
	if b.Placeholders == nil {
		b.Placeholders = []string{}
	}
	return json.Marshal(plain(b))
}

// TemplateHeaderData supplies the header registered on a template.
type TemplateHeaderData interface {
	templateHeaderDataType() string
}

type DocumentHeaderData struct {
	MediaURL string `json:"mediaUrl" validate:"required,url"`
	Filename string `json:"filename" validate:"required,max=240"`
}

func (DocumentHeaderData) templateHeaderDataType() string { return "DOCUMENT" }

func (h DocumentHeaderData) MarshalJSON() ([]byte, error) {
	type plain DocumentHeaderData
	return wire.Tagged("type", h.templateHeaderDataType(), plain(h))
}

type ImageHeaderData struct {
	MediaURL string `json:"mediaUrl" validate:"required,url"`
}

func (ImageHeaderData) templateHeaderDataType() string { return "IMAGE" }

func (h ImageHeaderData) MarshalJSON() ([]byte, error) {
	type plain ImageHeaderData
	return wire.Tagged("type", h.templateHeaderDataType(), plain(h))
}

type LocationHeaderData struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

func (LocationHeaderData) templateHeaderDataType() string { return "LOCATION" }

func (h LocationHeaderData) MarshalJSON() ([]byte, error) {
	type plain LocationHeaderData
	return wire.Tagged("type", h.templateHeaderDataType(), plain(h))
}

// TextHeaderData is the value of the {{1}} placeholder in a text header.
type TextHeaderData struct {
	Placeholder string `json:"placeholder" validate:"required"`
}

func (TextHeaderData) templateHeaderDataType() string { return "TEXT" }

func (h TextHeaderData) MarshalJSON() ([]byte, error) {
	type plain TextHeaderData
	return wire.Tagged("type", h.templateHeaderDataType(), plain(h))
}

type VideoHeaderData struct {
	MediaURL string `json:"mediaUrl" validate:"required,url"`
}

func (VideoHeaderData) templateHeaderDataType() string { return "VIDEO" }

func (h VideoHeaderData) MarshalJSON() ([]byte, error) {
	type plain VideoHeaderData
	return wire.Tagged("type", h.templateHeaderDataType(), plain(h))
}

// TemplateButtonData supplies a quick reply payload or a dynamic URL suffix.
type TemplateButtonData interface {
	templateButtonDataType() string
}

type QuickReplyButtonData struct {
	Parameter string `json:"parameter" validate:"required"`
}

func (QuickReplyButtonData) templateButtonDataType() string { return "QUICK_REPLY" }

func (b QuickReplyButtonData) MarshalJSON() ([]byte, error) {
	type plain QuickReplyButtonData
	return wire.Tagged("type", b.templateButtonDataType(), plain(b))
}

type URLButtonData struct {
	Parameter string `json:"parameter" validate:"required"`
}

func (URLButtonData) templateButtonDataType() string { return "URL" }

func (b URLButtonData) MarshalJSON() ([]byte, error) {
	type plain URLButtonData
	return wire.Tagged("type", b.templateButtonDataType(), plain(b))
}

var (
	templateHeaderData = wire.Table[TemplateHeaderData]{
		"DOCUMENT": wire.Variant[TemplateHeaderData, DocumentHeaderData](),
		"IMAGE":    wire.Variant[TemplateHeaderData, ImageHeaderData](),
		"LOCATION": wire.Variant[TemplateHeaderData, LocationHeaderData](),
		"TEXT":     wire.Variant[TemplateHeaderData, TextHeaderData](),
		"VIDEO":    wire.Variant[TemplateHeaderData, VideoHeaderData](),
	}
	templateButtonData = wire.Table[TemplateButtonData]{
		"QUICK_REPLY": wire.Variant[TemplateButtonData, QuickReplyButtonData](),
		"URL":         wire.Variant[TemplateButtonData, URLButtonData](),
	}
)

// TemplateData holds the values sent into a registered template. Buttons
// hold up to three quick replies or a single dynamic URL.
type TemplateData struct {
	Body    TemplateBodyContent  `json:"body"`
	Header  TemplateHeaderData   `json:"header,omitempty"`
	Buttons []TemplateButtonData `json:"buttons,omitempty" validate:"omitempty,max=3,dive"`
}

func (d *TemplateData) UnmarshalJSON(data []byte) error {
	type plain TemplateData
	aux := struct {
		*plain
		Header  json.RawMessage `json:"header,omitempty"`
		Buttons json.RawMessage `json:"buttons,omitempty"`
	}{plain: (*plain)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	header, err := wire.Decode(aux.Header, "type", templateHeaderData)
	if err != nil {
		return fmt.Errorf("template data header: %w", err)
	}
	buttons, err := wire.DecodeSlice(aux.Buttons, "type", templateButtonData)
	if err != nil {
		return fmt.Errorf("template data buttons: %w", err)
	}
	d.Header = header
	d.Buttons = buttons
	return nil
}

type TemplateContent struct {
	TemplateName string       `json:"templateName" validate:"required,max=512"`
	TemplateData TemplateData `json:"templateData"`
	Language     string       `json:"language" validate:"required"`
}

func NewTemplateContent(name, language string, data TemplateData) TemplateContent {
	return TemplateContent{TemplateName: name, TemplateData: data, Language: language}
}

// SmsFailover is sent as SMS when the template message cannot be delivered.
type SmsFailover struct {
	From string `json:"from" validate:"required,max=24"`
	Text string `json:"text" validate:"required,max=4096"`
}

type FailoverMessage struct {
	From         string          `json:"from" validate:"required,max=24"`
	To           string          `json:"to" validate:"required,max=24"`
	MessageID    string          `json:"messageId,omitempty" validate:"omitempty,max=50"`
	Content      TemplateContent `json:"content"`
	CallbackData string          `json:"callbackData,omitempty" validate:"omitempty,max=4000"`
	NotifyURL    string          `json:"notifyUrl,omitempty" validate:"omitempty,url"`
	SmsFailover  *SmsFailover    `json:"smsFailover,omitempty"`
}

func NewFailoverMessage(from, to string, content TemplateContent) FailoverMessage {
	return FailoverMessage{From: from, To: to, Content: content}
}

// SendTemplateRequest sends one or more template messages in one bulk.
type SendTemplateRequest struct {
	Messages []FailoverMessage `json:"messages" validate:"required,min=1,dive"`
	BulkID   string            `json:"bulkId,omitempty"`
}

func NewSendTemplateRequest(messages ...FailoverMessage) *SendTemplateRequest {
	return &SendTemplateRequest{Messages: messages}
}

var (
	_ TemplateHeader     = TemplateDocumentHeader{}
	_ TemplateHeader     = TemplateImageHeader{}
	_ TemplateHeader     = TemplateLocationHeader{}
	_ TemplateHeader     = TemplateTextHeader{}
	_ TemplateHeader     = TemplateVideoHeader{}
	_ TemplateButton     = PhoneNumberButton{}
	_ TemplateButton     = QuickReplyButton{}
	_ TemplateButton     = URLButton{}
	_ TemplateHeaderData = DocumentHeaderData{}
	_ TemplateHeaderData = ImageHeaderData{}
	_ TemplateHeaderData = LocationHeaderData{}
	_ TemplateHeaderData = TextHeaderData{}
	_ TemplateHeaderData = VideoHeaderData{}
	_ TemplateButtonData = QuickReplyButtonData{}
	_ TemplateButtonData = URLButtonData{}
)
