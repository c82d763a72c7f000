// Package kuaidi100 provides the express-tracking gateway backed by the
// Kuaidi100 polling API. Shipments go out with SF Express, whose lookups
// require the last four digits of the recipient's phone number.
package kuaidi100

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cherry/internal/core/ports"
	"cherry/internal/pkg/errs"
)

const (
	// DefaultBaseURL is the production Kuaidi100 polling endpoint.
	DefaultBaseURL = "https://poll.kuaidi100.com/poll/query.do"

	// carrierCode identifies SF Express in the Kuaidi100 API.
	carrierCode = "shunfeng"

	// carrierName is the display name returned with every lookup.
	carrierName = "顺丰速运"
)

// getStateTexts maps carrier state codes to their localized labels.
func getStateTexts() map[string]string {
	return map[string]string{
		ports.DeliveryStateInTransit:  "运输中",
		ports.DeliveryStateCollected:  "已揽收",
		ports.DeliveryStateProblem:    "疑难件",
		ports.DeliveryStateSigned:     "已签收",
		ports.DeliveryStateReturned:   "退签",
		ports.DeliveryStateDelivering: "派送中",
		ports.DeliveryStateSentBack:   "退回",
	}
}

// StateText returns the localized label for a carrier state code,
// falling back to "未知状态" for codes outside the documented set.
func StateText(state string) string {
	if text, ok := getStateTexts()[state]; ok {
		return text
	}
	return "未知状态"
}

// Client implements ports.TrackingGateway against the Kuaidi100 API.
// Requests are signed with md5(param + key + customer) per the Kuaidi100
// protocol; customer and key come from configuration.
type Client struct {
	// BaseURL is the polling endpoint. Overridable for tests.
	BaseURL string

	customer   string
	key        string
	httpClient *http.Client
}

// NewClient creates a Kuaidi100 gateway with the given account credentials.
// A nil httpClient falls back to a client with a 10 second timeout.
func NewClient(customer, key string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		BaseURL:    DefaultBaseURL,
		customer:   customer,
		key:        key,
		httpClient: httpClient,
	}
}

// queryParam is the JSON payload signed and sent as the "param" form field.
type queryParam struct {
	Com   string `json:"com"`
	Num   string `json:"num"`
	Phone string `json:"phone"`
}

// queryResponse is the subset of the Kuaidi100 reply the gateway consumes.
//
// Success:  {"message":"ok","status":"200","state":"0","data":[...]}
// Failure:  {"message":"<reason>","status":"4xx/500","data":[]}
type queryResponse struct {
	Message    string                `json:"message"`
	Status     string                `json:"status"`
	State      string                `json:"state"`
	ReturnCode string                `json:"returnCode"`
	Data       []ports.TrackingEvent `json:"data"`
}

// Query looks up the current route state of a shipment.
// Returns *ports.ErrTrackingNotReady when the carrier has no data yet, which
// is expected for freshly dispatched parcels.
func (c *Client) Query(ctx context.Context, trackingNumber, phoneTail string) (ports.TrackingInfo, error) {
	if trackingNumber == "" {
		return ports.TrackingInfo{}, errs.NewValueIsRequiredError("tracking_number")
	}

	param, err := json.Marshal(queryParam{
		Com:   carrierCode,
		Num:   trackingNumber,
		Phone: phoneTail,
	})
	if err != nil {
		return ports.TrackingInfo{}, err
	}

	form := url.Values{
		"customer": {c.customer},
		"sign":     {c.sign(string(param))},
		"param":    {string(param)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return ports.TrackingInfo{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.TrackingInfo{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.TrackingInfo{}, err
	}

	var result queryResponse
	if err = json.Unmarshal(body, &result); err != nil {
		return ports.TrackingInfo{}, fmt.Errorf("kuaidi100: malformed response: %w", err)
	}

	if result.Status != "200" || result.Message != "ok" {
		if c.isNotReady(result) {
			return ports.TrackingInfo{}, &ports.ErrTrackingNotReady{TrackingNumber: trackingNumber}
		}
		return ports.TrackingInfo{}, fmt.Errorf("kuaidi100: query failed: %s", result.Message)
	}

	events := result.Data
	if events == nil {
		events = []ports.TrackingEvent{}
	}

	return ports.TrackingInfo{
		TrackingNumber: trackingNumber,
		State:          result.State,
		StateText:      StateText(result.State),
		Company:        carrierName,
		Events:         events,
	}, nil
}

// sign computes the Kuaidi100 request signature:
// uppercase hex of md5(param + key + customer).
func (c *Client) sign(param string) string {
	sum := md5.Sum([]byte(param + c.key + c.customer))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// isNotReady detects the "no result yet" replies Kuaidi100 sends for numbers
// the carrier has not ingested: returnCode 500 or the two stock messages.
func (c *Client) isNotReady(result queryResponse) bool {
	return result.ReturnCode == "500" ||
		strings.Contains(result.Message, "查询无结果") ||
		strings.Contains(result.Message, "请隔段时间")
}
