// Package email sends multipart email, manages scheduled bulks, reports and
// logs, validates addresses and administers sending domains.
package email

import (
	"context"
	"net/http"

	"github.com/example/infobip-go/api"
)

const (
	pathSend           = "/email/3/send"
	pathBulks          = "/email/1/bulks"
	pathBulksStatus    = "/email/1/bulks/status"
	pathReports        = "/email/1/reports"
	pathLogs           = "/email/1/logs"
	pathValidate       = "/email/2/validation"
	pathDomains        = "/email/1/domains"
	pathDomain         = "/email/1/domains/{domainName}"
	pathDomainTracking = "/email/1/domains/{domainName}/tracking"
	pathDomainVerify   = "/email/1/domains/{domainName}/verify"
)

// Client is the email channel client.
type Client struct {
	api *api.Client
}

func NewClient(c *api.Client) *Client {
	return &Client{api: c}
}

// Send validates req, then uploads it as multipart/form-data. An unreadable
// attachment fails with api.ErrIO before the request is sent.
func (c *Client) Send(ctx context.Context, req *SendRequest) (*api.Response[SendResponse], error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	return api.Do[SendResponse](ctx, c.api, api.Request{
		Operation: "email.send",
		Method:    http.MethodPost,
		Path:      pathSend,
		Form:      req.Form(),
	})
}

func (c *Client) Bulks(ctx context.Context, query BulkQuery) (*api.Response[BulksResponse], error) {
	return api.Do[BulksResponse](ctx, c.api, api.Request{
		Operation: "email.bulks",
		Method:    http.MethodGet,
		Path:      pathBulks,
		Query:     query,
	})
}

func (c *Client) Reschedule(ctx context.Context, query BulkQuery, req *RescheduleRequest) (*api.Response[RescheduleResponse], error) {
	return api.Do[RescheduleResponse](ctx, c.api, api.Request{
		Operation: "email.reschedule",
		Method:    http.MethodPut,
		Path:      pathBulks,
		Query:     query,
		Body:      req,
	})
}

func (c *Client) ScheduledStatus(ctx context.Context, query BulkQuery) (*api.Response[ScheduledStatusResponse], error) {
	return api.Do[ScheduledStatusResponse](ctx, c.api, api.Request{
		Operation: "email.scheduled_status",
		Method:    http.MethodGet,
		Path:      pathBulksStatus,
		Query:     query,
	})
}

func (c *Client) UpdateScheduledStatus(ctx context.Context, query BulkQuery, req *UpdateScheduledStatusRequest) (*api.Response[UpdateScheduledStatusResponse], error) {
	return api.Do[UpdateScheduledStatusResponse](ctx, c.api, api.Request{
		Operation: "email.update_scheduled_status",
		Method:    http.MethodPut,
		Path:      pathBulksStatus,
		Query:     query,
		Body:      req,
	})
}

// DeliveryReports fetches reports not yet pushed to a notify URL.
func (c *Client) DeliveryReports(ctx context.Context, query DeliveryReportsQuery) (*api.Response[DeliveryReportsResponse], error) {
	return api.Do[DeliveryReportsResponse](ctx, c.api, api.Request{
		Operation: "email.delivery_reports",
		Method:    http.MethodGet,
		Path:      pathReports,
		Query:     query,
	})
}

func (c *Client) Logs(ctx context.Context, query LogsQuery) (*api.Response[LogsResponse], error) {
	return api.Do[LogsResponse](ctx, c.api, api.Request{
		Operation: "email.logs",
		Method:    http.MethodGet,
		Path:      pathLogs,
		Query:     query,
	})
}

func (c *Client) ValidateAddress(ctx context.Context, req *ValidateAddressRequest) (*api.Response[ValidateAddressResponse], error) {
	return api.Do[ValidateAddressResponse](ctx, c.api, api.Request{
		Operation: "email.validate_address",
		Method:    http.MethodPost,
		Path:      pathValidate,
		Body:      req,
	})
}

func (c *Client) Domains(ctx context.Context, query DomainsQuery) (*api.Response[DomainsResponse], error) {
	return api.Do[DomainsResponse](ctx, c.api, api.Request{
		Operation: "email.domains",
		Method:    http.MethodGet,
		Path:      pathDomains,
		Query:     query,
	})
}

func (c *Client) AddDomain(ctx context.Context, req *AddDomainRequest) (*api.Response[Domain], error) {
	return api.Do[Domain](ctx, c.api, api.Request{
		Operation: "email.add_domain",
		Method:    http.MethodPost,
		Path:      pathDomains,
		Body:      req,
	})
}

func (c *Client) Domain(ctx context.Context, name string) (*api.Response[Domain], error) {
	return api.Do[Domain](ctx, c.api, api.Request{
		Operation:  "email.domain",
		Method:     http.MethodGet,
		Path:       pathDomain,
		PathParams: map[string]string{"domainName": name},
	})
}

// DeleteDomain returns the status code; the service answers 204 with no body.
func (c *Client) DeleteDomain(ctx context.Context, name string) (int, error) {
	return api.DoStatus(ctx, c.api, api.Request{
		Operation:  "email.delete_domain",
		Method:     http.MethodDelete,
		Path:       pathDomain,
		PathParams: map[string]string{"domainName": name},
	})
}

func (c *Client) UpdateTracking(ctx context.Context, name string, req *UpdateTrackingRequest) (*api.Response[Domain], error) {
	return api.Do[Domain](ctx, c.api, api.Request{
		Operation:  "email.update_tracking",
		Method:     http.MethodPut,
		Path:       pathDomainTracking,
		PathParams: map[string]string{"domainName": name},
		Body:       req,
	})
}

// VerifyDomain starts DNS verification. The service answers 202 with no body.
func (c *Client) VerifyDomain(ctx context.Context, name string) (int, error) {
	return api.DoStatus(ctx, c.api, api.Request{
		Operation:  "email.verify_domain",
		Method:     http.MethodPost,
		Path:       pathDomainVerify,
		PathParams: map[string]string{"domainName": name},
	})
}
