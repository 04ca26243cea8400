package svue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionString(t *testing.T) {
	assert.Equal(t, "Gradebook", ActionGradebook.String())
	assert.Equal(t, "ChildList", ActionChildList.String())
}

func TestRequestParams(t *testing.T) {
	for _, tc := range []struct {
		name string
		req  request
		want string
	}{
		{
			name: "default period omits ReportPeriod",
			req:  request{action: ActionGradebook, period: -1},
			want: "<Parms><ChildIntID>0</ChildIntID></Parms>",
		},

		{
			name: "explicit period",
			req:  request{action: ActionGradebook, period: 2},
			want: "<Parms><ChildIntID>0</ChildIntID><ReportPeriod>2</ReportPeriod></Parms>",
		},

		{
			name: "child list ignores period",
			req:  request{action: ActionChildList, period: 2},
			want: "<Parms><ChildIntID>0</ChildIntID></Parms>",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.req.params())
		})
	}
}

func TestRequestEnvelope(t *testing.T) {
	body := request{
		action:   ActionGradebook,
		user:     "student",
		password: `p<&"w`,
		period:   1,
	}.envelope()

	assert.Contains(t, body, "<userID>student</userID>")
	// credentials and paramStr must be escaped for embedding
	assert.Contains(t, body, "<password>p&lt;&amp;&#34;w</password>")
	assert.Contains(t, body, "<methodName>Gradebook</methodName>")
	assert.Contains(t, body,
		"<paramStr>&lt;Parms&gt;&lt;ChildIntID&gt;0&lt;/ChildIntID&gt;&lt;ReportPeriod&gt;1&lt;/ReportPeriod&gt;&lt;/Parms&gt;</paramStr>")
	assert.NotContains(t, body, "<Parms>")
	assert.True(t, strings.HasPrefix(body, `<?xml version="1.0" encoding="utf-8"?>`))
}
