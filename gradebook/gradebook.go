package gradebook

import (
	"time"

	"github.com/rvue/rvue/decode"
	"github.com/rvue/rvue/events"
)

// Gradebook is the decoded root of one grades snapshot.
type Gradebook struct {
	// Courses the student is enrolled in, in source order.
	Courses []Course
	// ReportingPeriod is the grading period this snapshot covers.
	ReportingPeriod ReportingPeriod
	// ReportingPeriods lists the periods available for selection on
	// future requests.
	ReportingPeriods []ReportPeriod
}

// ReportingPeriod is the active grading period of a snapshot.
type ReportingPeriod struct {
	GradePeriod string
	StartDate   time.Time
	EndDate     time.Time
}

// ReportPeriod is one selectable grading period. Index is the value to
// pass back to the portal to request that period.
type ReportPeriod struct {
	Index       int
	GradePeriod string
	StartDate   time.Time
	EndDate     time.Time
}

// Decode decodes a Gradebook payload from its event sequence. The first
// significant event must open the Gradebook element; the decode consumes
// exactly that element's subtree.
func Decode(cur *events.Cursor) (*Gradebook, error) {
	for {
		ev, ok := cur.Next()
		if !ok {
			return nil, decode.ErrUnexpectedEnd
		}
		switch ev := ev.(type) {
		case events.Start:
			if ev.Name == "Gradebook" {
				return decodeGradebook(ev, cur)
			}
			return nil, &decode.UnexpectedEventError{Event: ev}
		case events.Whitespace:
		default:
			return nil, &decode.UnexpectedEventError{Event: ev}
		}
	}
}

func decodeGradebook(_ events.Start, cur *events.Cursor) (*Gradebook, error) {
	gb := &Gradebook{}
	wrappers := []string{"Courses", "ReportingPeriods"}
	err := decode.Children(cur, "Gradebook", wrappers, func(start events.Start) error {
		switch start.Name {
		case "Course":
			c, err := decodeCourse(start, cur)
			if err != nil {
				return err
			}
			gb.Courses = append(gb.Courses, c)
		case "ReportPeriod":
			rp, err := decodeReportPeriod(start, cur)
			if err != nil {
				return err
			}
			gb.ReportingPeriods = append(gb.ReportingPeriods, rp)
		case "ReportingPeriod":
			rp, err := decodeReportingPeriod(start, cur)
			if err != nil {
				return err
			}
			gb.ReportingPeriod = rp
		default:
			return &decode.UnexpectedEventError{Event: start}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return gb, nil
}

func decodeReportingPeriod(start events.Start, cur *events.Cursor) (ReportingPeriod, error) {
	attrs := decode.AttrMap(start.Attr)
	var rp ReportingPeriod
	var err error
	if rp.GradePeriod, err = attrs.String("GradePeriod"); err != nil {
		return rp, err
	}
	if rp.StartDate, err = attrs.Date("StartDate"); err != nil {
		return rp, err
	}
	if rp.EndDate, err = attrs.Date("EndDate"); err != nil {
		return rp, err
	}
	return rp, decode.Leaf(cur, "ReportingPeriod")
}

func decodeReportPeriod(start events.Start, cur *events.Cursor) (ReportPeriod, error) {
	attrs := decode.AttrMap(start.Attr)
	var rp ReportPeriod
	var err error
	if rp.Index, err = attrs.Int("Index"); err != nil {
		return rp, err
	}
	if rp.GradePeriod, err = attrs.String("GradePeriod"); err != nil {
		return rp, err
	}
	if rp.StartDate, err = attrs.Date("StartDate"); err != nil {
		return rp, err
	}
	if rp.EndDate, err = attrs.Date("EndDate"); err != nil {
		return rp, err
	}
	return rp, decode.Leaf(cur, "ReportPeriod")
}
