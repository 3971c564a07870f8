package whatsapp_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/infobip-go/api"
	"github.com/example/infobip-go/internal/apitest"
	"github.com/example/infobip-go/whatsapp"
)

const sendResponse = `{
	"to": "441134960001",
	"messageCount": 1,
	"messageId": "a28dd97c-1ffb-4fcf-99f1-0b557ed381da",
	"status": {
		"groupId": 1,
		"groupName": "PENDING",
		"id": 7,
		"name": "PENDING_ENROUTE",
		"description": "Message sent to next instance"
	}
}`

const badRequest = `{"requestError":{"serviceException":{"messageId":"BAD_REQUEST","text":"Bad request","validationErrors":{"content.text":["size must be between 1 and 4096","must not be blank"]}}}}`

func newClient(t *testing.T) (*apitest.Server, *whatsapp.Client) {
	t.Helper()
	srv := apitest.NewServer(t)
	return srv, whatsapp.NewClient(srv.Client(t))
}

func TestSendText(t *testing.T) {
	srv, client := newClient(t)
	route := srv.Reply(http.MethodPost, "/whatsapp/1/message/text", http.StatusOK, sendResponse)

	preview := true
	msg := whatsapp.NewMessage("441134960000", "441134960001", whatsapp.TextContent{
		Text:       "Some text with url: http://example.com",
		PreviewURL: &preview,
	})
	resp, err := client.SendText(context.Background(), msg)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "a28dd97c-1ffb-4fcf-99f1-0b557ed381da", resp.Body.MessageID)
	assert.Equal(t, 1, resp.Body.MessageCount)
	require.NotNil(t, resp.Body.Status)
	assert.Equal(t, "PENDING_ENROUTE", resp.Body.Status.Name)

	assert.JSONEq(t, `{
		"from":"441134960000",
		"to":"441134960001",
		"content":{"text":"Some text with url: http://example.com","previewUrl":true}
	}`, string(route.Last(t).Body))
}

func TestSendTextValidationFailure(t *testing.T) {
	srv, client := newClient(t)
	route := srv.Reply(http.MethodPost, "/whatsapp/1/message/text", http.StatusOK, sendResponse)

	_, err := client.SendText(context.Background(), whatsapp.NewMessage("", "441134960001", whatsapp.NewTextContent("hi")))
	require.ErrorIs(t, err, api.ErrValidation)

	var verr *api.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Field("from"), 1)
	assert.Empty(t, route.Calls())
}

func TestSendTextAPIError(t *testing.T) {
	srv, client := newClient(t)
	srv.Reply(http.MethodPost, "/whatsapp/1/message/text", http.StatusBadRequest, badRequest)

	_, err := client.SendText(context.Background(), whatsapp.NewMessage("44444444444", "55555555555", whatsapp.NewTextContent("some text")))
	require.ErrorIs(t, err, api.ErrAPI)

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "BAD_REQUEST", apiErr.Exception().MessageID)
	assert.Equal(t, []string{"size must be between 1 and 4096", "must not be blank"}, apiErr.Exception().ValidationErrors["content.text"])
}

func TestSendContentRoutes(t *testing.T) {
	ctx := context.Background()
	srv, client := newClient(t)

	tests := []struct {
		path string
		send func() (*api.Response[whatsapp.SendResponse], error)
	}{
		{"/whatsapp/1/message/document", func() (*api.Response[whatsapp.SendResponse], error) {
			return client.SendDocument(ctx, whatsapp.NewMessage("a", "b", whatsapp.NewDocumentContent("https://example.com/a.pdf")))
		}},
		{"/whatsapp/1/message/image", func() (*api.Response[whatsapp.SendResponse], error) {
			return client.SendImage(ctx, whatsapp.NewMessage("a", "b", whatsapp.NewImageContent("https://example.com/a.png")))
		}},
		{"/whatsapp/1/message/audio", func() (*api.Response[whatsapp.SendResponse], error) {
			return client.SendAudio(ctx, whatsapp.NewMessage("a", "b", whatsapp.NewAudioContent("https://example.com/a.mp3")))
		}},
		{"/whatsapp/1/message/video", func() (*api.Response[whatsapp.SendResponse], error) {
			return client.SendVideo(ctx, whatsapp.NewMessage("a", "b", whatsapp.NewVideoContent("https://example.com/a.mp4")))
		}},
		{"/whatsapp/1/message/sticker", func() (*api.Response[whatsapp.SendResponse], error) {
			return client.SendSticker(ctx, whatsapp.NewMessage("a", "b", whatsapp.NewStickerContent("https://example.com/a.webp")))
		}},
		{"/whatsapp/1/message/location", func() (*api.Response[whatsapp.SendResponse], error) {
			return client.SendLocation(ctx, whatsapp.NewMessage("a", "b", whatsapp.NewLocationContent(45.8, 15.97)))
		}},
		{"/whatsapp/1/message/contact", func() (*api.Response[whatsapp.SendResponse], error) {
			contact := whatsapp.NewContact(whatsapp.ContactName{FirstName: "John", FormattedName: "John Smith"})
			return client.SendContact(ctx, whatsapp.NewMessage("a", "b", whatsapp.NewContactContent(contact)))
		}},
		{"/whatsapp/1/message/interactive/buttons", func() (*api.Response[whatsapp.SendResponse], error) {
			content := whatsapp.NewInteractiveButtonsContent("Choose", whatsapp.ReplyButton{ID: "1", Title: "Yes"})
			return client.SendInteractiveButtons(ctx, whatsapp.NewMessage("a", "b", content))
		}},
		{"/whatsapp/1/message/interactive/list", func() (*api.Response[whatsapp.SendResponse], error) {
			content := whatsapp.NewInteractiveListContent("Pick one", "Menu", sections(1)...)
			return client.SendInteractiveList(ctx, whatsapp.NewMessage("a", "b", content))
		}},
		{"/whatsapp/1/message/interactive/product", func() (*api.Response[whatsapp.SendResponse], error) {
			content := whatsapp.NewInteractiveProductContent("catalog-1", "sku-1")
			return client.SendInteractiveProduct(ctx, whatsapp.NewMessage("a", "b", content))
		}},
		{"/whatsapp/1/message/interactive/multi-product", func() (*api.Response[whatsapp.SendResponse], error) {
			content := whatsapp.NewInteractiveMultiproductContent(whatsapp.TextHeader{Text: "Range"}, "Browse", "catalog-1",
				whatsapp.InteractiveMultiproductSection{ProductRetailerIDs: []string{"sku-1", "sku-2"}})
			return client.SendInteractiveMultiproduct(ctx, whatsapp.NewMessage("a", "b", content))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			route := srv.Reply(http.MethodPost, tt.path, http.StatusOK, sendResponse)
			resp, err := tt.send()
			require.NoError(t, err)
			assert.Equal(t, "a28dd97c-1ffb-4fcf-99f1-0b557ed381da", resp.Body.MessageID)
			assert.Len(t, route.Calls(), 1)
		})
	}
}

func TestSendTemplate(t *testing.T) {
	srv, client := newClient(t)
	route := srv.Reply(http.MethodPost, "/whatsapp/1/message/template", http.StatusOK, `{
		"messages":[{"to":"441134960001","messageCount":1,"messageId":"m-1","status":{"groupId":1,"groupName":"PENDING"}}],
		"bulkId":"bulk-1"
	}`)

	content := whatsapp.NewTemplateContent("order_shipped", "en", whatsapp.TemplateData{
		Body:   whatsapp.NewTemplateBodyContent("#42"),
		Header: whatsapp.TextHeaderData{Placeholder: "Jane"},
	})
	message := whatsapp.NewFailoverMessage("441134960000", "441134960001", content)
	message.SmsFailover = &whatsapp.SmsFailover{From: "InfoSMS", Text: "Your order #42 has shipped"}
	req := whatsapp.NewSendTemplateRequest(message)
	req.BulkID = "bulk-1"

	resp, err := client.SendTemplate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "bulk-1", resp.Body.BulkID)
	require.Len(t, resp.Body.Messages, 1)
	assert.Equal(t, "m-1", resp.Body.Messages[0].MessageID)

	assert.JSONEq(t, `{
		"messages":[{
			"from":"441134960000",
			"to":"441134960001",
			"content":{
				"templateName":"order_shipped",
				"templateData":{"body":{"placeholders":["#42"]},"header":{"type":"TEXT","placeholder":"Jane"}},
				"language":"en"
			},
			"smsFailover":{"from":"InfoSMS","text":"Your order #42 has shipped"}
		}],
		"bulkId":"bulk-1"
	}`, string(route.Last(t).Body))
}

func TestTemplates(t *testing.T) {
	srv, client := newClient(t)
	route := srv.Reply(http.MethodGet, "/whatsapp/2/senders/{sender}/templates", http.StatusOK, `{
		"templates":[{
			"id":"111",
			"businessAccountId":222,
			"name":"exampleName",
			"language":"en",
			"status":"APPROVED",
			"category":"ACCOUNT_UPDATE",
			"structure":{
				"header":{"format":"IMAGE"},
				"body":{"text":"example {{1}} body"},
				"footer":{"text":"exampleFooter"},
				"buttons":[{"type":"QUICK_REPLY","text":"Yes"}],
				"type":"MEDIA"
			}
		}]
	}`)

	resp, err := client.Templates(context.Background(), "441134960000")
	require.NoError(t, err)
	assert.Equal(t, "/whatsapp/2/senders/441134960000/templates", route.Last(t).Path)

	require.Len(t, resp.Body.Templates, 1)
	tmpl := resp.Body.Templates[0]
	assert.Equal(t, int64(222), tmpl.BusinessAccountID)
	assert.Equal(t, whatsapp.TemplateApproved, tmpl.Status)
	assert.Equal(t, whatsapp.CategoryAccountUpdate, tmpl.Category)
	require.NotNil(t, tmpl.Structure)
	assert.Equal(t, whatsapp.TemplateImageHeader{}, tmpl.Structure.Header)
	assert.Equal(t, []whatsapp.TemplateButton{whatsapp.QuickReplyButton{Text: "Yes"}}, tmpl.Structure.Buttons)
	assert.Equal(t, whatsapp.TemplateTypeMedia, tmpl.Structure.Type)
}

func TestTemplatesRequiresSender(t *testing.T) {
	_, client := newClient(t)

	_, err := client.Templates(context.Background(), "")
	require.ErrorIs(t, err, api.ErrValidation)
	assert.Contains(t, err.Error(), "sender: required")
}

func TestCreateTemplate(t *testing.T) {
	srv, client := newClient(t)
	route := srv.Reply(http.MethodPost, "/whatsapp/2/senders/{sender}/templates", http.StatusCreated, `{
		"id":"111","name":"greeting","language":"en","status":"PENDING","category":"MARKETING",
		"structure":{"body":{"text":"Hello {{1}}"},"type":"TEXT"}
	}`)

	structure := whatsapp.NewTemplateStructure("Hello {{1}}")
	structure.Header = whatsapp.TemplateTextHeader{Text: "Welcome"}
	req := whatsapp.NewCreateTemplateRequest("greeting", whatsapp.LanguageEnglish, whatsapp.CategoryMarketing, structure)

	resp, err := client.CreateTemplate(context.Background(), "441134960000", req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, whatsapp.TemplatePending, resp.Body.Status)

	assert.JSONEq(t, `{
		"name":"greeting",
		"language":"en",
		"category":"MARKETING",
		"structure":{"header":{"format":"TEXT","text":"Welcome"},"body":{"text":"Hello {{1}}"}}
	}`, string(route.Last(t).Body))
}

func TestDeleteTemplate(t *testing.T) {
	srv, client := newClient(t)
	route := srv.Reply(http.MethodDelete, "/whatsapp/2/senders/{sender}/templates/{templateName}", http.StatusNoContent, "")

	status, err := client.DeleteTemplate(context.Background(), "441134960000", "greeting")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, status)
	assert.Equal(t, "/whatsapp/2/senders/441134960000/templates/greeting", route.Last(t).Path)

	_, err = client.DeleteTemplate(context.Background(), "441134960000", " ")
	require.ErrorIs(t, err, api.ErrValidation)
	assert.Len(t, route.Calls(), 1)
}
