// Package sms sends text and binary SMS, manages scheduled bulks and reports,
// and drives 2FA PIN delivery and verification.
package sms

import (
	"context"
	"net/http"

	"github.com/example/infobip-go/api"
)

const (
	pathPreview             = "/sms/1/preview"
	pathDeliveryReports     = "/sms/1/reports"
	pathSend                = "/sms/2/text/advanced"
	pathSendBinary          = "/sms/2/binary/advanced"
	pathSendOverQuery       = "/sms/1/text/query"
	pathLogs                = "/sms/1/logs"
	pathInboundReports      = "/sms/1/inbox/reports"
	pathBulks               = "/sms/1/bulks"
	pathBulksStatus         = "/sms/1/bulks/status"
	pathTfaApplications     = "/2fa/2/applications"
	pathTfaApplication      = "/2fa/2/applications/{appId}"
	pathTfaMessageTemplates = "/2fa/2/applications/{appId}/messages"
	pathTfaMessageTemplate  = "/2fa/2/applications/{appId}/messages/{msgId}"
	pathTfaVerifications    = "/2fa/2/applications/{appId}/verifications"
	pathSendPinOverSMS      = "/2fa/2/pin"
	pathResendPinOverSMS    = "/2fa/2/pin/{pinId}/resend"
	pathSendPinOverVoice    = "/2fa/2/pin/voice"
	pathResendPinOverVoice  = "/2fa/2/pin/{pinId}/resend/voice"
	pathVerifyPhoneNumber   = "/2fa/2/pin/{pinId}/verify"
)

// Client is the SMS and 2FA channel client.
type Client struct {
	api *api.Client
}

func NewClient(c *api.Client) *Client {
	return &Client{api: c}
}

// Preview shows how text would be split into parts and encoded.
func (c *Client) Preview(ctx context.Context, req *PreviewRequest) (*api.Response[PreviewResponse], error) {
	return api.Do[PreviewResponse](ctx, c.api, api.Request{
		Operation: "sms.preview",
		Method:    http.MethodPost,
		Path:      pathPreview,
		Body:      req,
	})
}

// DeliveryReports fetches reports not yet pushed to a notify URL. Each
// report is returned only once.
func (c *Client) DeliveryReports(ctx context.Context, query DeliveryReportsQuery) (*api.Response[DeliveryReportsResponse], error) {
	return api.Do[DeliveryReportsResponse](ctx, c.api, api.Request{
		Operation: "sms.delivery_reports",
		Method:    http.MethodGet,
		Path:      pathDeliveryReports,
		Query:     query,
	})
}

func (c *Client) Send(ctx context.Context, req *SendRequest) (*api.Response[SendResponse], error) {
	return api.Do[SendResponse](ctx, c.api, api.Request{
		Operation: "sms.send",
		Method:    http.MethodPost,
		Path:      pathSend,
		Body:      req,
	})
}

func (c *Client) SendBinary(ctx context.Context, req *SendBinaryRequest) (*api.Response[SendResponse], error) {
	return api.Do[SendResponse](ctx, c.api, api.Request{
		Operation: "sms.send_binary",
		Method:    http.MethodPost,
		Path:      pathSendBinary,
		Body:      req,
	})
}

// SendOverQueryParameters sends with a GET request. Prefer Send; this form
// exposes credentials in the URL.
func (c *Client) SendOverQueryParameters(ctx context.Context, query SendOverQueryParameters) (*api.Response[SendResponse], error) {
	return api.Do[SendResponse](ctx, c.api, api.Request{
		Operation: "sms.send_over_query",
		Method:    http.MethodGet,
		Path:      pathSendOverQuery,
		Query:     query,
	})
}

func (c *Client) Logs(ctx context.Context, query LogsQuery) (*api.Response[LogsResponse], error) {
	return api.Do[LogsResponse](ctx, c.api, api.Request{
		Operation: "sms.logs",
		Method:    http.MethodGet,
		Path:      pathLogs,
		Query:     query,
	})
}

func (c *Client) InboundReports(ctx context.Context, query InboundReportsQuery) (*api.Response[InboundReportsResponse], error) {
	return api.Do[InboundReportsResponse](ctx, c.api, api.Request{
		Operation: "sms.inbound_reports",
		Method:    http.MethodGet,
		Path:      pathInboundReports,
		Query:     query,
	})
}

func (c *Client) ScheduledMessages(ctx context.Context, query BulkQuery) (*api.Response[ScheduledResponse], error) {
	return api.Do[ScheduledResponse](ctx, c.api, api.Request{
		Operation: "sms.scheduled",
		Method:    http.MethodGet,
		Path:      pathBulks,
		Query:     query,
	})
}

func (c *Client) Reschedule(ctx context.Context, query BulkQuery, req *RescheduleRequest) (*api.Response[ScheduledResponse], error) {
	return api.Do[ScheduledResponse](ctx, c.api, api.Request{
		Operation: "sms.reschedule",
		Method:    http.MethodPut,
		Path:      pathBulks,
		Query:     query,
		Body:      req,
	})
}

func (c *Client) ScheduledStatus(ctx context.Context, query BulkQuery) (*api.Response[ScheduledStatusResponse], error) {
	return api.Do[ScheduledStatusResponse](ctx, c.api, api.Request{
		Operation: "sms.scheduled_status",
		Method:    http.MethodGet,
		Path:      pathBulksStatus,
		Query:     query,
	})
}

// UpdateScheduledStatus pauses, resumes or cancels a scheduled bulk.
func (c *Client) UpdateScheduledStatus(ctx context.Context, query BulkQuery, req *UpdateScheduledStatusRequest) (*api.Response[ScheduledStatusResponse], error) {
	return api.Do[ScheduledStatusResponse](ctx, c.api, api.Request{
		Operation: "sms.update_scheduled_status",
		Method:    http.MethodPut,
		Path:      pathBulksStatus,
		Query:     query,
		Body:      req,
	})
}

func (c *Client) TfaApplications(ctx context.Context) (*api.Response[[]TfaApplication], error) {
	return api.Do[[]TfaApplication](ctx, c.api, api.Request{
		Operation: "tfa.applications",
		Method:    http.MethodGet,
		Path:      pathTfaApplications,
	})
}

func (c *Client) CreateTfaApplication(ctx context.Context, req *TfaApplication) (*api.Response[TfaApplication], error) {
	return api.Do[TfaApplication](ctx, c.api, api.Request{
		Operation: "tfa.create_application",
		Method:    http.MethodPost,
		Path:      pathTfaApplications,
		Body:      req,
	})
}

func (c *Client) TfaApplication(ctx context.Context, appID string) (*api.Response[TfaApplication], error) {
	return api.Do[TfaApplication](ctx, c.api, api.Request{
		Operation:  "tfa.application",
		Method:     http.MethodGet,
		Path:       pathTfaApplication,
		PathParams: map[string]string{"appId": appID},
	})
}

func (c *Client) UpdateTfaApplication(ctx context.Context, appID string, req *TfaApplication) (*api.Response[TfaApplication], error) {
	return api.Do[TfaApplication](ctx, c.api, api.Request{
		Operation:  "tfa.update_application",
		Method:     http.MethodPut,
		Path:       pathTfaApplication,
		PathParams: map[string]string{"appId": appID},
		Body:       req,
	})
}

func (c *Client) TfaMessageTemplates(ctx context.Context, appID string) (*api.Response[[]TfaMessageTemplate], error) {
	return api.Do[[]TfaMessageTemplate](ctx, c.api, api.Request{
		Operation:  "tfa.message_templates",
		Method:     http.MethodGet,
		Path:       pathTfaMessageTemplates,
		PathParams: map[string]string{"appId": appID},
	})
}

func (c *Client) CreateTfaMessageTemplate(ctx context.Context, appID string, req *TfaMessageTemplate) (*api.Response[TfaMessageTemplate], error) {
	return api.Do[TfaMessageTemplate](ctx, c.api, api.Request{
		Operation:  "tfa.create_message_template",
		Method:     http.MethodPost,
		Path:       pathTfaMessageTemplates,
		PathParams: map[string]string{"appId": appID},
		Body:       req,
	})
}

func (c *Client) TfaMessageTemplate(ctx context.Context, appID, msgID string) (*api.Response[TfaMessageTemplate], error) {
	return api.Do[TfaMessageTemplate](ctx, c.api, api.Request{
		Operation:  "tfa.message_template",
		Method:     http.MethodGet,
		Path:       pathTfaMessageTemplate,
		PathParams: map[string]string{"appId": appID, "msgId": msgID},
	})
}

func (c *Client) UpdateTfaMessageTemplate(ctx context.Context, appID, msgID string, req *TfaMessageTemplate) (*api.Response[TfaMessageTemplate], error) {
	return api.Do[TfaMessageTemplate](ctx, c.api, api.Request{
		Operation:  "tfa.update_message_template",
		Method:     http.MethodPut,
		Path:       pathTfaMessageTemplate,
		PathParams: map[string]string{"appId": appID, "msgId": msgID},
		Body:       req,
	})
}

// SendPinOverSMS generates a PIN and sends it in the template's text.
func (c *Client) SendPinOverSMS(ctx context.Context, query SendPinQuery, req *SendPinRequest) (*api.Response[SendPinResponse], error) {
	return api.Do[SendPinResponse](ctx, c.api, api.Request{
		Operation: "tfa.send_pin_sms",
		Method:    http.MethodPost,
		Path:      pathSendPinOverSMS,
		Query:     query,
		Body:      req,
	})
}

func (c *Client) ResendPinOverSMS(ctx context.Context, pinID string, req *ResendPinRequest) (*api.Response[SendPinResponse], error) {
	return api.Do[SendPinResponse](ctx, c.api, api.Request{
		Operation:  "tfa.resend_pin_sms",
		Method:     http.MethodPost,
		Path:       pathResendPinOverSMS,
		PathParams: map[string]string{"pinId": pinID},
		Body:       resendBody(req),
	})
}

// SendPinOverVoice generates a PIN and reads it out in a call.
func (c *Client) SendPinOverVoice(ctx context.Context, req *SendPinRequest) (*api.Response[SendPinResponse], error) {
	return api.Do[SendPinResponse](ctx, c.api, api.Request{
		Operation: "tfa.send_pin_voice",
		Method:    http.MethodPost,
		Path:      pathSendPinOverVoice,
		Body:      req,
	})
}

func (c *Client) ResendPinOverVoice(ctx context.Context, pinID string, req *ResendPinRequest) (*api.Response[SendPinResponse], error) {
	return api.Do[SendPinResponse](ctx, c.api, api.Request{
		Operation:  "tfa.resend_pin_voice",
		Method:     http.MethodPost,
		Path:       pathResendPinOverVoice,
		PathParams: map[string]string{"pinId": pinID},
		Body:       resendBody(req),
	})
}

func (c *Client) VerifyPhoneNumber(ctx context.Context, pinID string, req *VerifyPhoneNumberRequest) (*api.Response[VerifyPhoneNumberResponse], error) {
	return api.Do[VerifyPhoneNumberResponse](ctx, c.api, api.Request{
		Operation:  "tfa.verify_phone_number",
		Method:     http.MethodPost,
		Path:       pathVerifyPhoneNumber,
		PathParams: map[string]string{"pinId": pinID},
		Body:       req,
	})
}

// TfaVerificationStatus lists verification attempts for one phone number.
func (c *Client) TfaVerificationStatus(ctx context.Context, appID string, query TfaVerificationStatusQuery) (*api.Response[TfaVerificationStatusResponse], error) {
	return api.Do[TfaVerificationStatusResponse](ctx, c.api, api.Request{
		Operation:  "tfa.verification_status",
		Method:     http.MethodGet,
		Path:       pathTfaVerifications,
		PathParams: map[string]string{"appId": appID},
		Query:      query,
	})
}

// A resend needs no body fields, so a nil request is sent as {}.
func resendBody(req *ResendPinRequest) *ResendPinRequest {
	if req == nil {
		return &ResendPinRequest{}
	}
	return req
}
