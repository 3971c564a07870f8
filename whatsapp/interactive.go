package whatsapp

import (
	"encoding/json"
	"fmt"

	"github.com/example/infobip-go/internal/wire"
)

// InteractiveBody is the main text of an interactive message.
type InteractiveBody struct {
	Text string `json:"text" validate:"required,max=1024"`
}

// InteractiveFooter is the small print under an interactive message.
type InteractiveFooter struct {
	Text string `json:"text" validate:"required,max=60"`
}

// InteractiveButton is one of the buttons offered by an interactive buttons
// message. ReplyButton is the only variant.
type InteractiveButton interface {
	interactiveButtonType() string
}

// ReplyButton sends its ID back to the sender when tapped.
type ReplyButton struct {
	ID    string `json:"id" validate:"required"`
	Title string `json:"title" validate:"required"`
}

func (ReplyButton) interactiveButtonType() string { return "REPLY" }

func (b ReplyButton) MarshalJSON() ([]byte, error) {
	type plain ReplyButton
	return wire.Tagged("type", b.interactiveButtonType(), plain(b))
}

var interactiveButtons = wire.Table[InteractiveButton]{
	"REPLY": wire.Variant[InteractiveButton, ReplyButton](),
}

// InteractiveButtonsHeader is the optional header of an interactive buttons
// message: DocumentHeader, ImageHeader, TextHeader or VideoHeader.
type InteractiveButtonsHeader interface {
	buttonsHeaderType() string
}

// InteractiveListHeader is the optional header of an interactive list
// message. Only TextHeader qualifies.
type InteractiveListHeader interface {
	listHeaderType() string
}

// InteractiveMultiproductHeader heads a multi-product message. Only
// TextHeader qualifies.
type InteractiveMultiproductHeader interface {
	multiproductHeaderType() string
}

type DocumentHeader struct {
	MediaURL string `json:"mediaUrl" validate:"required,url"`
	Filename string `json:"filename,omitempty" validate:"omitempty,max=240"`
}

func (DocumentHeader) buttonsHeaderType() string { return "DOCUMENT" }

func (h DocumentHeader) MarshalJSON() ([]byte, error) {
	type plain DocumentHeader
	return wire.Tagged("type", h.buttonsHeaderType(), plain(h))
}

type ImageHeader struct {
	MediaURL string `json:"mediaUrl" validate:"required,url"`
}

func (ImageHeader) buttonsHeaderType() string { return "IMAGE" }

func (h ImageHeader) MarshalJSON() ([]byte, error) {
	type plain ImageHeader
	return wire.Tagged("type", h.buttonsHeaderType(), plain(h))
}

type VideoHeader struct {
	MediaURL string `json:"mediaUrl" validate:"required,url"`
}

func (VideoHeader) buttonsHeaderType() string { return "VIDEO" }

func (h VideoHeader) MarshalJSON() ([]byte, error) {
	type plain VideoHeader
	return wire.Tagged("type", h.buttonsHeaderType(), plain(h))
}

// TextHeader is shared by every interactive message kind that has a header.
type TextHeader struct {
	Text string `json:"text" validate:"required"`
}

func (TextHeader) buttonsHeaderType() string      { return "TEXT" }
func (TextHeader) listHeaderType() string         { return "TEXT" }
func (TextHeader) multiproductHeaderType() string { return "TEXT" }

func (h TextHeader) MarshalJSON() ([]byte, error) {
	type plain TextHeader
	return wire.Tagged("type", "TEXT", plain(h))
}

var (
	buttonsHeaders = wire.Table[InteractiveButtonsHeader]{
		"DOCUMENT": wire.Variant[InteractiveButtonsHeader, DocumentHeader](),
		"IMAGE":    wire.Variant[InteractiveButtonsHeader, ImageHeader](),
		"TEXT":     wire.Variant[InteractiveButtonsHeader, TextHeader](),
		"VIDEO":    wire.Variant[InteractiveButtonsHeader, VideoHeader](),
	}
	listHeaders = wire.Table[InteractiveListHeader]{
		"TEXT": wire.Variant[InteractiveListHeader, TextHeader](),
	}
	multiproductHeaders = wire.Table[InteractiveMultiproductHeader]{
		"TEXT": wire.Variant[InteractiveMultiproductHeader, TextHeader](),
	}
)

type InteractiveButtonsAction struct {
	Buttons []InteractiveButton `json:"buttons" validate:"required,min=1,max=3,dive"`
}

func (a *InteractiveButtonsAction) UnmarshalJSON(data []byte) error {
	var aux struct {
		Buttons json.RawMessage `json:"buttons"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	buttons, err := wire.DecodeSlice(aux.Buttons, "type", interactiveButtons)
	if err != nil {
		return fmt.Errorf("interactive buttons: %w", err)
	}
	a.Buttons = buttons
	return nil
}

// InteractiveButtonsContent offers up to three reply buttons.
type InteractiveButtonsContent struct {
	Body   InteractiveBody          `json:"body"`
	Action InteractiveButtonsAction `json:"action"`
	Header InteractiveButtonsHeader `json:"header,omitempty"`
	Footer *InteractiveFooter       `json:"footer,omitempty"`
}

func NewInteractiveButtonsContent(body string, buttons ...InteractiveButton) InteractiveButtonsContent {
	return InteractiveButtonsContent{
		Body:   InteractiveBody{Text: body},
		Action: InteractiveButtonsAction{Buttons: buttons},
	}
}

func (c *InteractiveButtonsContent) UnmarshalJSON(data []byte) error {
	type plain InteractiveButtonsContent
	aux := struct {
		*plain
		Header json.RawMessage `json:"header,omitempty"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	header, err := wire.Decode(aux.Header, "type", buttonsHeaders)
	if err != nil {
		return fmt.Errorf("interactive buttons header: %w", err)
	}
	c.Header = header
	return nil
}

type InteractiveRow struct {
	ID          string `json:"id" validate:"required,max=200"`
	Title       string `json:"title" validate:"required,max=24"`
	Description string `json:"description,omitempty" validate:"omitempty,max=72"`
}

type InteractiveListSection struct {
	Title string           `json:"title,omitempty" validate:"omitempty,max=24"`
	Rows  []InteractiveRow `json:"rows" validate:"required,min=1,dive"`
}

type InteractiveListAction struct {
	Title    string                   `json:"title" validate:"required,max=20"`
	Sections []InteractiveListSection `json:"sections" validate:"required,min=1,max=10,dive"`
}

// InteractiveListContent offers a menu of up to ten sections of rows.
type InteractiveListContent struct {
	Body   InteractiveBody       `json:"body"`
	Action InteractiveListAction `json:"action"`
	Header InteractiveListHeader `json:"header,omitempty"`
	Footer *InteractiveFooter    `json:"footer,omitempty"`
}

func NewInteractiveListContent(body, title string, sections ...InteractiveListSection) InteractiveListContent {
	return InteractiveListContent{
		Body:   InteractiveBody{Text: body},
		Action: InteractiveListAction{Title: title, Sections: sections},
	}
}

func (c *InteractiveListContent) UnmarshalJSON(data []byte) error {
	type plain InteractiveListContent
	aux := struct {
		*plain
		Header json.RawMessage `json:"header,omitempty"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	header, err := wire.Decode(aux.Header, "type", listHeaders)
	if err != nil {
		return fmt.Errorf("interactive list header: %w", err)
	}
	c.Header = header
	return nil
}

type InteractiveProductAction struct {
	CatalogID         string `json:"catalogId" validate:"required"`
	ProductRetailerID string `json:"productRetailerId" validate:"required"`
}

// InteractiveProductContent shows a single catalog product.
type InteractiveProductContent struct {
	Action InteractiveProductAction `json:"action"`
	Body   *InteractiveBody         `json:"body,omitempty"`
	Footer *InteractiveFooter       `json:"footer,omitempty"`
}

func NewInteractiveProductContent(catalogID, productRetailerID string) InteractiveProductContent {
	return InteractiveProductContent{
		Action: InteractiveProductAction{CatalogID: catalogID, ProductRetailerID: productRetailerID},
	}
}

type InteractiveMultiproductSection struct {
	Title              string   `json:"title,omitempty" validate:"omitempty,max=24"`
	ProductRetailerIDs []string `json:"productRetailerIds" validate:"required,min=1"`
}

type InteractiveMultiproductAction struct {
	CatalogID string                           `json:"catalogId" validate:"required"`
	Sections  []InteractiveMultiproductSection `json:"sections" validate:"required,min=1,max=10,dive"`
}

// InteractiveMultiproductContent shows up to ten sections of catalog products.
type InteractiveMultiproductContent struct {
	Header InteractiveMultiproductHeader `json:"header" validate:"required"`
	Body   InteractiveBody               `json:"body"`
	Action InteractiveMultiproductAction `json:"action"`
	Footer *InteractiveFooter            `json:"footer,omitempty"`
}

func NewInteractiveMultiproductContent(header InteractiveMultiproductHeader, body, catalogID string, sections ...InteractiveMultiproductSection) InteractiveMultiproductContent {
	return InteractiveMultiproductContent{
		Header: header,
		Body:   InteractiveBody{Text: body},
		Action: InteractiveMultiproductAction{CatalogID: catalogID, Sections: sections},
	}
}

func (c *InteractiveMultiproductContent) UnmarshalJSON(data []byte) error {
	type plain InteractiveMultiproductContent
	aux := struct {
		*plain
		Header json.RawMessage `json:"header"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	header, err := wire.Decode(aux.Header, "type", multiproductHeaders)
	if err != nil {
		return fmt.Errorf("interactive multi-product header: %w", err)
	}
	c.Header = header
	return nil
}

var (
	_ InteractiveButtonsHeader      = DocumentHeader{}
	_ InteractiveButtonsHeader      = ImageHeader{}
	_ InteractiveButtonsHeader      = TextHeader{}
	_ InteractiveButtonsHeader      = VideoHeader{}
	_ InteractiveListHeader         = TextHeader{}
	_ InteractiveMultiproductHeader = TextHeader{}
	_ InteractiveButton             = ReplyButton{}
)
