package sms_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/infobip-go/api"
	"github.com/example/infobip-go/internal/apitest"
	"github.com/example/infobip-go/sms"
)

func newClient(t *testing.T) (*apitest.Server, *sms.Client) {
	t.Helper()
	srv := apitest.NewServer(t)
	return srv, sms.NewClient(srv.Client(t))
}

const sendResponse = `{
	"bulkId": "2034072219640523072",
	"messages": [{
		"messageId": "2250be2d4219-3af1-78856-aabe-1362af1edfd2",
		"status": {"description": "Message sent to next instance", "groupId": 1, "groupName": "PENDING", "id": 26, "name": "MESSAGE_ACCEPTED"},
		"to": "41793026727"
	}]
}`

func TestSend(t *testing.T) {
	srv, client := newClient(t)
	route := srv.Reply(http.MethodPost, "/sms/2/text/advanced", http.StatusOK, sendResponse)

	msg := sms.NewMessage("This is a sample message", sms.NewDestination("41793026727"))
	msg.From = "InfoSMS"
	req := sms.NewSendRequest(msg)
	req.BulkID = api.NewMessageID()

	resp, err := client.Send(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2034072219640523072", resp.Body.BulkID)
	require.Len(t, resp.Body.Messages, 1)
	assert.Equal(t, "MESSAGE_ACCEPTED", resp.Body.Messages[0].Status.Name)

	assert.JSONEq(t, `{
		"bulkId":"`+req.BulkID+`",
		"messages":[{"destinations":[{"to":"41793026727"}],"from":"InfoSMS","text":"This is a sample message"}]
	}`, string(route.Last(t).Body))
}

func TestSendValidationFailsBeforeSending(t *testing.T) {
	srv, client := newClient(t)
	route := srv.Reply(http.MethodPost, "/sms/2/text/advanced", http.StatusOK, sendResponse)

	_, err := client.Send(context.Background(), sms.NewSendRequest())
	require.ErrorIs(t, err, api.ErrValidation)
	assert.Empty(t, route.Calls())
}

func TestSendAPIError(t *testing.T) {
	srv, client := newClient(t)
	srv.Reply(http.MethodPost, "/sms/2/text/advanced", http.StatusBadRequest,
		`{"requestError":{"serviceException":{"messageId":"BAD_REQUEST","text":"Bad request"}}}`)

	_, err := client.Send(context.Background(), sms.NewSendRequest(sms.NewMessage("hi", sms.NewDestination("41793026727"))))
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "BAD_REQUEST", apiErr.Exception().MessageID)
}

func TestSendBinary(t *testing.T) {
	srv, client := newClient(t)
	route := srv.Reply(http.MethodPost, "/sms/2/binary/advanced", http.StatusOK, sendResponse)

	req := sms.NewSendBinaryRequest(sms.NewBinaryMessage("0f c2 4a bf 34 13 ba", sms.NewDestination("41793026727")))
	_, err := client.SendBinary(context.Background(), req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"messages":[{"binary":{"hex":"0f c2 4a bf 34 13 ba"},"destinations":[{"to":"41793026727"}]}]}`, string(route.Last(t).Body))
}

func TestPreview(t *testing.T) {
	srv, client := newClient(t)
	srv.Reply(http.MethodPost, "/sms/1/preview", http.StatusOK, `{
		"originalText": "Let's see how many characters will remain unused in this message.",
		"previews": [{
			"charactersRemaining": 94,
			"configuration": {"language": {"languageCode": "TR"}, "transliteration": "TURKISH"},
			"messageCount": 1,
			"textPreview": "Let's see how many characters will remain unused in this message."
		}]
	}`)

	req := sms.NewPreviewRequest("Let's see how many characters will remain unused in this message.")
	req.LanguageCode = "TR"
	resp, err := client.Preview(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Body.Previews, 1)
	assert.Equal(t, 94, resp.Body.Previews[0].CharactersRemaining)
	assert.Equal(t, "TR", resp.Body.Previews[0].Configuration.Language.LanguageCode)
}

func TestReportsAndLogs(t *testing.T) {
	ctx := context.Background()
	srv, client := newClient(t)
	reports := srv.Reply(http.MethodGet, "/sms/1/reports", http.StatusOK, `{"results":[{"bulkId":"b-1","messageId":"m-1","price":{"pricePerMessage":0.01,"currency":"EUR"},"smsCount":1}]}`)
	logs := srv.Reply(http.MethodGet, "/sms/1/logs", http.StatusOK, `{"results":[{"bulkId":"b-1","text":"hi"}]}`)
	inbound := srv.Reply(http.MethodGet, "/sms/1/inbox/reports", http.StatusOK, `{"messageCount":1,"pendingMessageCount":0,"results":[{"keyword":"KEY","text":"KEY hello"}]}`)

	r, err := client.DeliveryReports(ctx, sms.DeliveryReportsQuery{BulkID: "b-1", Limit: intPtr(2)})
	require.NoError(t, err)
	require.Len(t, r.Body.Results, 1)
	assert.Equal(t, "0.01", r.Body.Results[0].Price.PricePerMessage.String())
	assert.Equal(t, "b-1", reports.Last(t).Query.Get("bulkId"))
	assert.Equal(t, "2", reports.Last(t).Query.Get("limit"))

	l, err := client.Logs(ctx, sms.LogsQuery{MessageID: "m-1"})
	require.NoError(t, err)
	assert.Equal(t, "hi", l.Body.Results[0].Text)
	assert.Equal(t, "m-1", logs.Last(t).Query.Get("messageId"))

	in, err := client.InboundReports(ctx, sms.InboundReportsQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, in.Body.MessageCount)
	assert.Equal(t, "KEY", in.Body.Results[0].Keyword)
	assert.Empty(t, inbound.Last(t).Query)

	_, err = client.DeliveryReports(ctx, sms.DeliveryReportsQuery{Limit: intPtr(5000)})
	require.ErrorIs(t, err, api.ErrValidation)
	assert.Len(t, reports.Calls(), 1)
}

func TestSendOverQueryParameters(t *testing.T) {
	srv, client := newClient(t)
	route := srv.Reply(http.MethodGet, "/sms/1/text/query", http.StatusOK, sendResponse)

	q := sms.NewSendOverQueryParameters("user", "secret", "41793026727", "41793026834")
	q.Text = "Hello"
	_, err := client.SendOverQueryParameters(context.Background(), q)
	require.NoError(t, err)

	call := route.Last(t)
	assert.Equal(t, "41793026727,41793026834", call.Query.Get("to"))
	assert.Equal(t, "user", call.Query.Get("username"))
	assert.Empty(t, call.Body)

	_, err = client.SendOverQueryParameters(context.Background(), sms.NewSendOverQueryParameters("user", "secret"))
	require.ErrorIs(t, err, api.ErrValidation)
}

func TestScheduledBulks(t *testing.T) {
	ctx := context.Background()
	srv, client := newClient(t)
	get := srv.Reply(http.MethodGet, "/sms/1/bulks", http.StatusOK, `{"bulkId":"b-1","sendAt":"2021-02-22T17:42:05.390+0100"}`)
	put := srv.Reply(http.MethodPut, "/sms/1/bulks", http.StatusOK, `{"bulkId":"b-1","sendAt":"2021-08-25T16:00:00.000+0000"}`)
	status := srv.Reply(http.MethodGet, "/sms/1/bulks/status", http.StatusOK, `{"bulkId":"b-1","status":"PAUSED"}`)
	update := srv.Reply(http.MethodPut, "/sms/1/bulks/status", http.StatusOK, `{"bulkId":"b-1","status":"CANCELED"}`)
	query := sms.BulkQuery{BulkID: "b-1"}

	s, err := client.ScheduledMessages(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "2021-02-22T17:42:05.390+0100", s.Body.SendAt)
	assert.Equal(t, "b-1", get.Last(t).Query.Get("bulkId"))

	r, err := client.Reschedule(ctx, query, sms.NewRescheduleRequest("2021-08-25T16:00:00.000+0000"))
	require.NoError(t, err)
	assert.Equal(t, "2021-08-25T16:00:00.000+0000", r.Body.SendAt)
	assert.JSONEq(t, `{"sendAt":"2021-08-25T16:00:00.000+0000"}`, string(put.Last(t).Body))

	st, err := client.ScheduledStatus(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, sms.ScheduledPaused, st.Body.Status)
	assert.Len(t, status.Calls(), 1)

	u, err := client.UpdateScheduledStatus(ctx, query, sms.NewUpdateScheduledStatusRequest(sms.ScheduledCanceled))
	require.NoError(t, err)
	assert.Equal(t, sms.ScheduledCanceled, u.Body.Status)
	assert.JSONEq(t, `{"status":"CANCELED"}`, string(update.Last(t).Body))

	_, err = client.ScheduledMessages(ctx, sms.BulkQuery{})
	require.ErrorIs(t, err, api.ErrValidation)
	_, err = client.UpdateScheduledStatus(ctx, query, sms.NewUpdateScheduledStatusRequest("STOPPED"))
	require.ErrorIs(t, err, api.ErrValidation)
	assert.Len(t, update.Calls(), 1)
}

func TestTfaApplications(t *testing.T) {
	ctx := context.Background()
	srv, client := newClient(t)
	list := srv.Reply(http.MethodGet, "/2fa/2/applications", http.StatusOK, `[{"applicationId":"app-1","name":"2fa test application","enabled":true,"configuration":{"pinAttempts":10,"pinTimeToLive":"15m"}}]`)
	create := srv.Reply(http.MethodPost, "/2fa/2/applications", http.StatusOK, `{"applicationId":"app-2","name":"login"}`)
	get := srv.Reply(http.MethodGet, "/2fa/2/applications/{appId}", http.StatusOK, `{"applicationId":"app-1","name":"2fa test application"}`)
	put := srv.Reply(http.MethodPut, "/2fa/2/applications/{appId}", http.StatusOK, `{"applicationId":"app-1","name":"renamed"}`)

	apps, err := client.TfaApplications(ctx)
	require.NoError(t, err)
	require.Len(t, apps.Body, 1)
	assert.Equal(t, 10, *apps.Body[0].Configuration.PinAttempts)
	assert.Len(t, list.Calls(), 1)

	created, err := client.CreateTfaApplication(ctx, sms.NewTfaApplication("login"))
	require.NoError(t, err)
	assert.Equal(t, "app-2", created.Body.ApplicationID)
	assert.JSONEq(t, `{"name":"login"}`, string(create.Last(t).Body))

	app, err := client.TfaApplication(ctx, "app-1")
	require.NoError(t, err)
	assert.Equal(t, "2fa test application", app.Body.Name)
	assert.Equal(t, "/2fa/2/applications/app-1", get.Last(t).Path)

	updated, err := client.UpdateTfaApplication(ctx, "app-1", sms.NewTfaApplication("renamed"))
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Body.Name)
	assert.Len(t, put.Calls(), 1)

	_, err = client.TfaApplication(ctx, "")
	require.ErrorIs(t, err, api.ErrValidation)
	assert.Contains(t, err.Error(), "appId: required")
}

func TestTfaMessageTemplates(t *testing.T) {
	ctx := context.Background()
	srv, client := newClient(t)
	tmpl := `{"applicationId":"app-1","messageId":"msg-1","messageText":"Your pin is {{pin}}","pinLength":4,"pinType":"NUMERIC","language":"en"}`
	srv.Reply(http.MethodGet, "/2fa/2/applications/{appId}/messages", http.StatusOK, "["+tmpl+"]")
	create := srv.Reply(http.MethodPost, "/2fa/2/applications/{appId}/messages", http.StatusOK, tmpl)
	get := srv.Reply(http.MethodGet, "/2fa/2/applications/{appId}/messages/{msgId}", http.StatusOK, tmpl)
	put := srv.Reply(http.MethodPut, "/2fa/2/applications/{appId}/messages/{msgId}", http.StatusOK, tmpl)

	all, err := client.TfaMessageTemplates(ctx, "app-1")
	require.NoError(t, err)
	require.Len(t, all.Body, 1)
	assert.Equal(t, sms.PinNumeric, all.Body[0].PinType)

	body := sms.NewTfaMessageTemplate("Your pin is {{pin}}", sms.PinNumeric, 4)
	_, err = client.CreateTfaMessageTemplate(ctx, "app-1", body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"messageText":"Your pin is {{pin}}","pinLength":4,"pinType":"NUMERIC"}`, string(create.Last(t).Body))

	one, err := client.TfaMessageTemplate(ctx, "app-1", "msg-1")
	require.NoError(t, err)
	assert.Equal(t, sms.TfaEnglish, one.Body.Language)
	assert.Equal(t, "/2fa/2/applications/app-1/messages/msg-1", get.Last(t).Path)

	_, err = client.UpdateTfaMessageTemplate(ctx, "app-1", "msg-1", body)
	require.NoError(t, err)
	assert.Len(t, put.Calls(), 1)

	_, err = client.UpdateTfaMessageTemplate(ctx, "app-1", "", body)
	require.ErrorIs(t, err, api.ErrValidation)
	assert.Len(t, put.Calls(), 1)
}

func TestPinFlow(t *testing.T) {
	ctx := context.Background()
	srv, client := newClient(t)
	pin := `{"pinId":"pin-1","to":"41793026727","ncStatus":"NC_DESTINATION_REACHABLE","smsStatus":"MESSAGE_SENT"}`
	sendSMS := srv.Reply(http.MethodPost, "/2fa/2/pin", http.StatusOK, pin)
	resendSMS := srv.Reply(http.MethodPost, "/2fa/2/pin/{pinId}/resend", http.StatusOK, pin)
	sendVoice := srv.Reply(http.MethodPost, "/2fa/2/pin/voice", http.StatusOK, `{"pinId":"pin-2","callStatus":"PENDING_ACCEPTED"}`)
	resendVoice := srv.Reply(http.MethodPost, "/2fa/2/pin/{pinId}/resend/voice", http.StatusOK, `{"pinId":"pin-2","callStatus":"PENDING_ACCEPTED"}`)
	verify := srv.Reply(http.MethodPost, "/2fa/2/pin/{pinId}/verify", http.StatusOK, `{"attemptsRemaining":0,"msisdn":"41793026727","pinId":"pin-1","verified":true}`)
	status := srv.Reply(http.MethodGet, "/2fa/2/applications/{appId}/verifications", http.StatusOK, `{"verifications":[{"msisdn":"41793026727","sentAt":1418364246,"verified":true,"verifiedAt":1418364366}]}`)

	nc := true
	req := sms.NewSendPinRequest("app-1", "msg-1", "41793026727")
	req.Placeholders = map[string]string{"firstName": "John"}
	sent, err := client.SendPinOverSMS(ctx, sms.SendPinQuery{NcNeeded: &nc}, req)
	require.NoError(t, err)
	assert.Equal(t, "pin-1", sent.Body.PinID)
	assert.Equal(t, "true", sendSMS.Last(t).Query.Get("ncNeeded"))
	assert.JSONEq(t, `{"applicationId":"app-1","messageId":"msg-1","placeholders":{"firstName":"John"},"to":"41793026727"}`, string(sendSMS.Last(t).Body))

	_, err = client.ResendPinOverSMS(ctx, "pin-1", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(resendSMS.Last(t).Body))

	voice, err := client.SendPinOverVoice(ctx, sms.NewSendPinRequest("app-1", "msg-2", "41793026727"))
	require.NoError(t, err)
	assert.Equal(t, "PENDING_ACCEPTED", voice.Body.CallStatus)
	assert.Len(t, sendVoice.Calls(), 1)

	_, err = client.ResendPinOverVoice(ctx, "pin-2", &sms.ResendPinRequest{Placeholders: map[string]string{"firstName": "Jane"}})
	require.NoError(t, err)
	assert.Equal(t, "/2fa/2/pin/pin-2/resend/voice", resendVoice.Last(t).Path)

	verified, err := client.VerifyPhoneNumber(ctx, "pin-1", sms.NewVerifyPhoneNumberRequest("1598"))
	require.NoError(t, err)
	require.NotNil(t, verified.Body.Verified)
	assert.True(t, *verified.Body.Verified)
	assert.JSONEq(t, `{"pin":"1598"}`, string(verify.Last(t).Body))

	st, err := client.TfaVerificationStatus(ctx, "app-1", sms.NewTfaVerificationStatusQuery("41793026727"))
	require.NoError(t, err)
	require.Len(t, st.Body.Verifications, 1)
	assert.Equal(t, int64(1418364366), st.Body.Verifications[0].VerifiedAt)
	require.NotNil(t, st.Body.Verifications[0].Verified)
	assert.True(t, *st.Body.Verifications[0].Verified)
	assert.Equal(t, "41793026727", status.Last(t).Query.Get("msisdn"))

	_, err = client.VerifyPhoneNumber(ctx, "pin-1", sms.NewVerifyPhoneNumberRequest(""))
	require.ErrorIs(t, err, api.ErrValidation)
	assert.Len(t, verify.Calls(), 1)
}
