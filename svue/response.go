package svue

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
)

var (
	xpResult = xpath.MustCompile(`//ProcessWebServiceRequestResult`)
	xpError  = xpath.MustCompile(`//RT_ERROR`)
)

// extractPayload digs the inner payload document out of the portal's
// SOAP response. The useful payload travels as the character data of
// the result element; on failure the portal puts an RT_ERROR document
// there instead, with the message in an attribute and the stack trace
// as text content.
func extractPayload(raw, expect string) (string, error) {
	doc, err := xmlquery.Parse(strings.NewReader(raw))
	if err != nil {
		return "", errors.Wrap(err, "parse response envelope")
	}
	result := xmlquery.QuerySelector(doc, xpResult)
	if result == nil {
		return "", ErrResponseBodyNotFound
	}
	inner := result.InnerText()

	innerDoc, err := xmlquery.Parse(strings.NewReader(inner))
	if err != nil {
		return "", errors.Wrap(err, "parse response payload")
	}
	if node, err := xmlquery.Query(innerDoc, "//"+expect); err == nil && node != nil {
		return inner, nil
	}
	if rtErr := xmlquery.QuerySelector(innerDoc, xpError); rtErr != nil {
		msg := rtErr.SelectAttr("ERROR_MESSAGE")
		if msg == "" {
			return "", errors.Errorf("undecodable portal error document: %s", inner)
		}
		return "", &RemoteError{Message: msg, Trace: strings.TrimSpace(rtErr.InnerText())}
	}
	return "", &ExpectedPayloadNotFoundError{Tag: expect}
}
