package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cmdcable/portal/internal/client/models"
	"github.com/cmdcable/portal/internal/common"
	"github.com/cmdcable/portal/internal/logging"
)

// maxErrorBody caps how much of an error response body is read for detail
// text.
const maxErrorBody = 4 << 10

// RESTClient talks to the billing backend over its JSON REST surface.
type RESTClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewRESTClient builds a client for the given base URL. The timeout bounds
// every request end to end; a hung backend surfaces as a failed fetch
// instead of a screen stuck loading forever.
func NewRESTClient(baseURL string, timeout time.Duration, log logging.Logger) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// listEnvelope matches the backend's {data: [...], meta: {...}} shape.
type listEnvelope[T any] struct {
	Data []T             `json:"data"`
	Meta json.RawMessage `json:"meta"`
}

func (c *RESTClient) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	return req, nil
}

type sessionResponse struct {
	Token string `json:"token"`
	Error string `json:"error"`
}

// Authenticate exchanges phone + password for a bearer credential. Invalid
// credentials, or a success response carrying no credential, fail with
// common.ErrUnauthorized.
func (c *RESTClient) Authenticate(ctx context.Context, phone string, password string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"phone_number": phone,
		"password":     password,
	})
	if err != nil {
		return "", err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/v1/sessions", nil, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("authenticate: %w", common.ErrUnavailable)
	}
	defer resp.Body.Close()

	var sr sessionResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&sr); err != nil && resp.StatusCode < 300 {
		return "", fmt.Errorf("authenticate: decode response: %w", err)
	}

	if resp.StatusCode >= 300 || sr.Token == "" {
		c.log.Warn(ctx, "authentication rejected", "status", resp.StatusCode)
		if sr.Error != "" {
			return "", fmt.Errorf("%w: %s", common.ErrUnauthorized, sr.Error)
		}
		return "", common.ErrUnauthorized
	}

	return sr.Token, nil
}

// getJSON performs a credential-guarded GET and decodes the response into
// out. Absent credential fails fast without touching the network.
func (c *RESTClient) getJSON(ctx context.Context, credential, path string, query url.Values, resource string, out any) error {
	if credential == "" {
		return common.ErrNoCredential
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+credential)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", resource, common.ErrUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return common.ErrUnauthorized
	case resp.StatusCode >= 300:
		return &FetchError{Resource: resource, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", resource, err)
	}
	return nil
}

// CurrentSubscriber fetches the authenticated subscriber's profile.
func (c *RESTClient) CurrentSubscriber(ctx context.Context, credential string) (*models.Subscriber, error) {
	var sub models.Subscriber
	if err := c.getJSON(ctx, credential, "/api/v1/session/me", nil, "me", &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Billings fetches billing periods, optionally narrowed to a year.
func (c *RESTClient) Billings(ctx context.Context, credential string, year int) ([]models.Billing, error) {
	query := url.Values{}
	if year > 0 {
		query.Set("year", strconv.Itoa(year))
	}
	var env listEnvelope[models.Billing]
	if err := c.getJSON(ctx, credential, "/api/v1/billings", query, "billings", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Payments fetches payment history, optionally narrowed to a year.
func (c *RESTClient) Payments(ctx context.Context, credential string, year int) ([]models.Payment, error) {
	query := url.Values{}
	if year > 0 {
		query.Set("year", strconv.Itoa(year))
	}
	var env listEnvelope[models.Payment]
	if err := c.getJSON(ctx, credential, "/api/v1/payments", query, "payments", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// PayableBillings fetches the open/overdue billing periods. The backend
// does the status filtering; ordering by due date descending happens here
// so the most urgent period lands first.
func (c *RESTClient) PayableBillings(ctx context.Context, credential string) ([]models.Billing, error) {
	query := url.Values{}
	query.Set("status", "open,overdue")

	var env listEnvelope[models.Billing]
	if err := c.getJSON(ctx, credential, "/api/v1/billings", query, "billings", &env); err != nil {
		return nil, err
	}

	list := env.Data
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].DueTime().After(list[j].DueTime())
	})
	return list, nil
}

// SubmitPayment creates a manual payment via multipart form. It is never
// retried automatically; a failure surfaces to the user for manual
// resubmission.
func (c *RESTClient) SubmitPayment(ctx context.Context, credential string, sub PaymentSubmission) (*models.Payment, error) {
	if credential == "" {
		return nil, common.ErrNoCredential
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"subscriber_id":  strconv.FormatInt(sub.SubscriberID, 10),
		"billing_id":     strconv.FormatInt(sub.BillingID, 10),
		"full_name":      sub.FullName,
		"plan_name":      sub.PlanName,
		"amount":         strconv.FormatFloat(sub.Amount, 'f', 2, 64),
		"billing_period": sub.BillingPeriod,
		"payment_method": string(sub.Method),
	}
	switch sub.Method {
	case models.MethodGCash:
		fields["payee_name"] = sub.PayeeName
		fields["gcash_reference"] = sub.GCashReference
	case models.MethodBankTransfer:
		fields["bank_name"] = sub.BankName
		fields["account_name"] = sub.AccountName
		fields["account_no"] = sub.AccountNumber
	}

	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return nil, err
		}
	}

	if len(sub.Receipt) > 0 {
		part, err := mw.CreateFormFile("receipt", sub.ReceiptName)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(sub.Receipt); err != nil {
			return nil, err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/v1/payments", nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+credential)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	c.log.Info(ctx, "submitting payment",
		"billing_id", sub.BillingID, "method", sub.Method, "amount", sub.Amount)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit payment: %w", common.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, common.ErrUnauthorized
	}
	if resp.StatusCode >= 300 {
		detail := readErrorDetail(resp.Body)
		c.log.Warn(ctx, "payment submission rejected", "status", resp.StatusCode, "detail", detail)
		return nil, &SubmissionError{Status: resp.StatusCode, Detail: detail}
	}

	var created models.Payment
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("submit payment: decode response: %w", err)
	}
	return &created, nil
}

// readErrorDetail pulls a human-readable message out of an error response:
// the "error" field when the body is JSON, the raw text otherwise.
func readErrorDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(raw))
}
