package gradebook

import (
	"fmt"
	"regexp"

	"github.com/rvue/rvue/decode"
	"github.com/rvue/rvue/events"
)

// CourseTitle is a course's title, split into name and course ID when
// the portal's "<name> (<id>)" shape matched. Titles that do not match
// stay opaque in Raw; they are valid, not errors. CourseTitle is the
// identity of a course across snapshots: two courses with equal titles
// are the same course.
type CourseTitle struct {
	Name string
	ID   string
	// Raw holds the original text when the title did not parse.
	Raw string
}

var courseTitleRE = regexp.MustCompile(`(.+)\s+\((.+?)\)`)

// ParseCourseTitle classifies a course title string.
func ParseCourseTitle(title string) CourseTitle {
	m := courseTitleRE.FindStringSubmatch(title)
	if m == nil {
		return CourseTitle{Raw: title}
	}
	return CourseTitle{Name: m[1], ID: m[2]}
}

// Parsed reports whether the title matched the "<name> (<id>)" shape.
func (t CourseTitle) Parsed() bool { return t.Raw == "" }

func (t CourseTitle) String() string {
	if !t.Parsed() {
		return t.Raw
	}
	return fmt.Sprintf("%s (%s)", t.Name, t.ID)
}

// Course is one course (subject) in a gradebook snapshot.
type Course struct {
	Title      CourseTitle
	Period     int
	Room       string
	Staff      string
	StaffEmail string
	// HighlightCutoff is the portal's progress-bar highlight threshold
	// percentage for this course.
	HighlightCutoff int
	// Marks holds this course's grading-period snapshots. In practice a
	// single mark, but the portal models it as a list.
	Marks []Mark
}

func decodeCourse(start events.Start, cur *events.Cursor) (Course, error) {
	attrs := decode.AttrMap(start.Attr)
	var c Course
	var err error
	title, err := attrs.String("Title")
	if err != nil {
		return c, err
	}
	c.Title = ParseCourseTitle(title)
	if c.Period, err = attrs.Int("Period"); err != nil {
		return c, err
	}
	if c.Room, err = attrs.String("Room"); err != nil {
		return c, err
	}
	if c.Staff, err = attrs.String("Staff"); err != nil {
		return c, err
	}
	if c.StaffEmail, err = attrs.String("StaffEMail"); err != nil {
		return c, err
	}
	if c.HighlightCutoff, err = attrs.Int("HighlightPercentageCutOffForProgressBar"); err != nil {
		return c, err
	}
	err = decode.Children(cur, "Course", []string{"Marks"}, func(child events.Start) error {
		if child.Name != "Mark" {
			return &decode.UnexpectedEventError{Event: child}
		}
		m, err := decodeMark(child, cur)
		if err != nil {
			return err
		}
		c.Marks = append(c.Marks, m)
		return nil
	})
	return c, err
}
