package client

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	json "github.com/json-iterator/go"
	"github.com/onesocial/cli/pkg/config"
	"github.com/onesocial/cli/pkg/logger"
)

// UserAgent is sent with every request.
const UserAgent = "OneSocial-CLI/0.1.0"

var httpClient *resty.Client

// Init initializes the HTTP client
func Init() {
	httpClient = newClient()
}

func newClient() *resty.Client {
	c := resty.New()

	baseURL := config.GetString("api.base_url")
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c.SetBaseURL(baseURL)
	c.SetTimeout(timeout)
	c.SetHeader("User-Agent", UserAgent)
	c.SetHeader("Accept", "application/json")
	c.SetJSONMarshaler(json.Marshal)
	c.SetJSONUnmarshaler(json.Unmarshal)

	// Only reads are retried; a retried POST could like or save twice.
	c.SetRetryCount(config.GetInt("api.retries"))
	c.SetRetryWaitTime(200 * time.Millisecond)
	c.SetRetryMaxWaitTime(2 * time.Second)
	c.AddRetryCondition(func(resp *resty.Response, err error) bool {
		if resp == nil || resp.Request == nil || resp.Request.Method != http.MethodGet {
			return false
		}
		switch resp.StatusCode() {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
		return false
	})

	c.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		if req.Header.Get("X-Request-ID") == "" {
			req.Header.Set("X-Request-ID", uuid.NewString())
		}
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL,
			"request_id", req.Header.Get("X-Request-ID"))
		return nil
	})

	c.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response", "status", resp.StatusCode(), "elapsed", resp.Time())
		return nil
	})

	return c
}

// GetClient returns the HTTP client
func GetClient() *resty.Client {
	if httpClient == nil {
		Init()
	}
	return httpClient
}

// SetAuthToken sets the authorization token
func SetAuthToken(token string) {
	if httpClient == nil {
		Init()
	}
	httpClient.SetAuthToken(token)
}

// ClearAuthToken clears the authorization token
func ClearAuthToken() {
	// Re-init the client to drop the auth scheme and token
	httpClient = newClient()
}

// HasAuthToken reports whether requests are currently authenticated
func HasAuthToken() bool {
	return httpClient != nil && httpClient.Token != ""
}
