package svue

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/rvue/rvue/events"
	"github.com/rvue/rvue/gradebook"
)

const (
	// DefaultEndpoint is the Portland Public Schools portal endpoint.
	DefaultEndpoint = "https://student-portland.cascadetech.org/portland/Service/PXPCommunication.asmx"

	soapAction  = "http://edupoint.com/webservices/ProcessWebServiceRequest"
	contentType = "text/xml; charset=utf-8"
)

// Client performs portal web-service calls.
type Client struct {
	// Endpoint is the portal service URL.
	Endpoint string
	// HTTPClient performs the requests. Replaceable for testing or
	// transport tuning.
	HTTPClient *http.Client
}

// NewClient returns a Client for the given endpoint, or for
// DefaultEndpoint when endpoint is empty.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{Endpoint: endpoint, HTTPClient: &http.Client{}}
}

// Gradebook retrieves and decodes the gradebook for the portal's
// current grading period.
func (c *Client) Gradebook(ctx context.Context, user, password string) (*gradebook.Gradebook, error) {
	return c.GradebookForPeriod(ctx, user, password, -1)
}

// GradebookForPeriod retrieves and decodes the gradebook for the report
// period with the given index. A negative period requests the portal's
// default.
func (c *Client) GradebookForPeriod(ctx context.Context, user, password string, period int) (*gradebook.Gradebook, error) {
	payload, err := c.do(ctx, request{
		action: ActionGradebook, user: user, password: password, period: period,
	})
	if err != nil {
		return nil, err
	}
	seq, err := events.Tokenize(strings.NewReader(payload))
	if err != nil {
		return nil, err
	}
	return gradebook.Decode(events.NewCursor(seq))
}

// StudentInfo retrieves the raw student information payload.
func (c *Client) StudentInfo(ctx context.Context, user, password string) (string, error) {
	return c.do(ctx, request{
		action: ActionChildList, user: user, password: password, period: -1,
	})
}

func (c *Client) do(ctx context.Context, req request) (string, error) {
	body := req.envelope()
	glog.V(1).Infof("POST %s method=%s", c.Endpoint, req.action)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, strings.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "build portal request")
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("SOAPAction", soapAction)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, "portal request")
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read portal response")
	}
	glog.V(2).Infof("response status=%d bytes=%d", resp.StatusCode, len(raw))
	return extractPayload(string(raw), req.action.String())
}
