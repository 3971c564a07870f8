// Package whatsapp sends WhatsApp messages and manages message templates.
package whatsapp

import (
	"context"
	"net/http"

	"github.com/example/infobip-go/api"
)

const (
	pathSendText                    = "/whatsapp/1/message/text"
	pathSendDocument                = "/whatsapp/1/message/document"
	pathSendImage                   = "/whatsapp/1/message/image"
	pathSendAudio                   = "/whatsapp/1/message/audio"
	pathSendVideo                   = "/whatsapp/1/message/video"
	pathSendSticker                 = "/whatsapp/1/message/sticker"
	pathSendLocation                = "/whatsapp/1/message/location"
	pathSendContact                 = "/whatsapp/1/message/contact"
	pathSendInteractiveButtons      = "/whatsapp/1/message/interactive/buttons"
	pathSendInteractiveList         = "/whatsapp/1/message/interactive/list"
	pathSendInteractiveProduct      = "/whatsapp/1/message/interactive/product"
	pathSendInteractiveMultiproduct = "/whatsapp/1/message/interactive/multi-product"
	pathSendTemplate                = "/whatsapp/1/message/template"
	pathTemplates                   = "/whatsapp/2/senders/{sender}/templates"
	pathTemplate                    = "/whatsapp/2/senders/{sender}/templates/{templateName}"
)

// Client is the WhatsApp channel client.
type Client struct {
	api *api.Client
}

func NewClient(c *api.Client) *Client {
	return &Client{api: c}
}

func send[C Content](ctx context.Context, c *Client, operation, path string, msg *Message[C]) (*api.Response[SendResponse], error) {
	return api.Do[SendResponse](ctx, c.api, api.Request{
		Operation: operation,
		Method:    http.MethodPost,
		Path:      path,
		Body:      msg,
	})
}

func (c *Client) SendText(ctx context.Context, msg *TextMessage) (*api.Response[SendResponse], error) {
	return send(ctx, c, "whatsapp.send_text", pathSendText, msg)
}

func (c *Client) SendDocument(ctx context.Context, msg *DocumentMessage) (*api.Response[SendResponse], error) {
	return send(ctx, c, "whatsapp.send_document", pathSendDocument, msg)
}

func (c *Client) SendImage(ctx context.Context, msg *ImageMessage) (*api.Response[SendResponse], error) {
	return send(ctx, c, "whatsapp.send_image", pathSendImage, msg)
}

func (c *Client) SendAudio(ctx context.Context, msg *AudioMessage) (*api.Response[SendResponse], error) {
	return send(ctx, c, "whatsapp.send_audio", pathSendAudio, msg)
}

func (c *Client) SendVideo(ctx context.Context, msg *VideoMessage) (*api.Response[SendResponse], error) {
	return send(ctx, c, "whatsapp.send_video", pathSendVideo, msg)
}

func (c *Client) SendSticker(ctx context.Context, msg *StickerMessage) (*api.Response[SendResponse], error) {
	return send(ctx, c, "whatsapp.send_sticker", pathSendSticker, msg)
}

func (c *Client) SendLocation(ctx context.Context, msg *LocationMessage) (*api.Response[SendResponse], error) {
	return send(ctx, c, "whatsapp.send_location", pathSendLocation, msg)
}

func (c *Client) SendContact(ctx context.Context, msg *ContactMessage) (*api.Response[SendResponse], error) {
	return send(ctx, c, "whatsapp.send_contact", pathSendContact, msg)
}

func (c *Client) SendInteractiveButtons(ctx context.Context, msg *InteractiveButtonsMessage) (*api.Response[SendResponse], error) {
	return send(ctx, c, "whatsapp.send_interactive_buttons", pathSendInteractiveButtons, msg)
}

func (c *Client) SendInteractiveList(ctx context.Context, msg *InteractiveListMessage) (*api.Response[SendResponse], error) {
	return send(ctx, c, "whatsapp.send_interactive_list", pathSendInteractiveList, msg)
}

func (c *Client) SendInteractiveProduct(ctx context.Context, msg *InteractiveProductMessage) (*api.Response[SendResponse], error) {
	return send(ctx, c, "whatsapp.send_interactive_product", pathSendInteractiveProduct, msg)
}

func (c *Client) SendInteractiveMultiproduct(ctx context.Context, msg *InteractiveMultiproductMessage) (*api.Response[SendResponse], error) {
	return send(ctx, c, "whatsapp.send_interactive_multiproduct", pathSendInteractiveMultiproduct, msg)
}

// SendTemplate sends registered template messages, optionally falling back
// to SMS per message.
func (c *Client) SendTemplate(ctx context.Context, req *SendTemplateRequest) (*api.Response[SendTemplateResponse], error) {
	return api.Do[SendTemplateResponse](ctx, c.api, api.Request{
		Operation: "whatsapp.send_template",
		Method:    http.MethodPost,
		Path:      pathSendTemplate,
		Body:      req,
	})
}

// Templates lists the templates registered for sender with their statuses.
func (c *Client) Templates(ctx context.Context, sender string) (*api.Response[TemplatesResponse], error) {
	return api.Do[TemplatesResponse](ctx, c.api, api.Request{
		Operation:  "whatsapp.templates",
		Method:     http.MethodGet,
		Path:       pathTemplates,
		PathParams: map[string]string{"sender": sender},
	})
}

// CreateTemplate registers a template for sender. It becomes usable once
// approved.
func (c *Client) CreateTemplate(ctx context.Context, sender string, req *CreateTemplateRequest) (*api.Response[Template], error) {
	return api.Do[Template](ctx, c.api, api.Request{
		Operation:  "whatsapp.create_template",
		Method:     http.MethodPost,
		Path:       pathTemplates,
		PathParams: map[string]string{"sender": sender},
		Body:       req,
	})
}

// DeleteTemplate removes a template in every language it was registered in.
func (c *Client) DeleteTemplate(ctx context.Context, sender, templateName string) (int, error) {
	return api.DoStatus(ctx, c.api, api.Request{
		Operation:  "whatsapp.delete_template",
		Method:     http.MethodDelete,
		Path:       pathTemplate,
		PathParams: map[string]string{"sender": sender, "templateName": templateName},
	})
}
