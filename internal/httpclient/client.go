package httpclient

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HttpClient is a wrapper around the resty.Client
type HttpClient struct {
	Client *resty.Client
}

// Request describes a single API round trip.
type Request struct {
	Method string
	Path   string
	Params map[string]string
	Header map[string]string
	Body   interface{}
	Result interface{}

	// ExpectStatus is the only status code accepted for this request.
	// Anything else is an error carrying the response body.
	ExpectStatus int
}

func New(baseUrl string) *HttpClient {
	return NewWithClient(resty.New().SetBaseURL(baseUrl))
}

func NewWithClient(client *resty.Client) *HttpClient {
	client.SetHeader("Accept", "application/json")
	return &HttpClient{Client: client}
}

// SetAuthToken arms the client with a bearer token for all subsequent requests.
func (c *HttpClient) SetAuthToken(token string) {
	c.Client.SetAuthToken(token)
}

// Do executes a single request. No retries, no redirect magic; the request is
// sent once and the status code is checked against r.ExpectStatus.
func (c *HttpClient) Do(r Request) (*resty.Response, error) {
	slog.Debug(r.Method, "path", r.Path, "params", r.Params)

	req := c.Client.R()
	if r.Params != nil {
		req = req.SetQueryParams(r.Params)
	}
	if r.Header != nil {
		req = req.SetHeaders(r.Header)
	}
	if r.Body != nil {
		req = req.SetBody(r.Body)
	}
	if r.Result != nil {
		req = req.SetResult(r.Result)
	}

	response, err := req.Execute(r.Method, r.Path)
	if err != nil {
		return nil, err
	}

	if response == nil {
		return nil, fmt.Errorf("response is nil")
	}

	if response.StatusCode() != r.ExpectStatus {
		return nil, fmt.Errorf("response status code: %d, body: %s", response.StatusCode(), response.Body())
	}

	return response, nil
}

// Get fetches a resource, expecting http.StatusOK.
func (c *HttpClient) Get(path string, params map[string]string, res interface{}) (*resty.Response, error) {
	return c.Do(Request{
		Method:       http.MethodGet,
		Path:         path,
		Params:       params,
		Result:       res,
		ExpectStatus: http.StatusOK,
	})
}
