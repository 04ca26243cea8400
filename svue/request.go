package svue

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Action identifies a portal web-service method. Its string form is
// both the methodName sent on the wire and the top-level tag expected
// in the response payload.
type Action int

const (
	// ActionGradebook retrieves the grades payload
	ActionGradebook Action = iota
	// ActionChildList retrieves student information
	ActionChildList
)

func (a Action) String() string {
	switch a {
	case ActionGradebook:
		return "Gradebook"
	case ActionChildList:
		return "ChildList"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

type request struct {
	action   Action
	user     string
	password string
	// period is the report period index to request; negative means the
	// portal's default (current) period.
	period int
}

const envelopeFormat = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <ProcessWebServiceRequest xmlns="http://edupoint.com/webservices/">
      <userID>%s</userID>
      <password>%s</password>
      <skipLoginLog>1</skipLoginLog>
      <parent>0</parent>
      <webServiceHandleName>PXPWebServices</webServiceHandleName>
      <methodName>%s</methodName>
      <paramStr>%s</paramStr>
    </ProcessWebServiceRequest>
  </soap:Body>
</soap:Envelope>`

func (r request) envelope() string {
	return fmt.Sprintf(envelopeFormat,
		escape(r.user), escape(r.password), r.action, escape(r.params()))
}

// params builds the inner Parms document carried in paramStr. The
// portal requires paramStr to be attribute-escaped; envelope() applies
// the escaping.
func (r request) params() string {
	var b strings.Builder
	b.WriteString("<Parms><ChildIntID>0</ChildIntID>")
	if r.action == ActionGradebook && r.period >= 0 {
		fmt.Fprintf(&b, "<ReportPeriod>%d</ReportPeriod>", r.period)
	}
	b.WriteString("</Parms>")
	return b.String()
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
