package gradebook

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rvue/rvue/decode"
	"github.com/rvue/rvue/events"
)

// Assignment is one graded (or gradeable) item within a mark.
// GradebookID is the portal's stable identifier and the only valid
// identity for an assignment across snapshots.
type Assignment struct {
	Type        string
	GradebookID string
	// Measure is the assignment's title.
	Measure       string
	Date          time.Time
	DueDate       time.Time
	Score         AssignmentScore
	ScoreType     string
	Points        AssignmentPoints
	Notes         string
	TeacherID     string
	StudentID     string
	HasDropBox    bool
	DropStartDate time.Time
	DropEndDate   time.Time
	// Standards is populated for standards-based courses.
	Standards []Standard
}

func decodeAssignment(start events.Start, cur *events.Cursor) (Assignment, error) {
	attrs := decode.AttrMap(start.Attr)
	var a Assignment
	var err error
	if a.Type, err = attrs.String("Type"); err != nil {
		return a, err
	}
	if a.GradebookID, err = attrs.String("GradebookID"); err != nil {
		return a, err
	}
	if a.Measure, err = attrs.String("Measure"); err != nil {
		return a, err
	}
	if a.Date, err = attrs.Date("Date"); err != nil {
		return a, err
	}
	if a.DueDate, err = attrs.Date("DueDate"); err != nil {
		return a, err
	}
	score, err := attrs.String("Score")
	if err != nil {
		return a, err
	}
	a.Score = ParseAssignmentScore(score)
	if a.ScoreType, err = attrs.String("ScoreType"); err != nil {
		return a, err
	}
	points, err := attrs.String("Points")
	if err != nil {
		return a, err
	}
	a.Points = ParseAssignmentPoints(points)
	if a.Notes, err = attrs.String("Notes"); err != nil {
		return a, err
	}
	if a.TeacherID, err = attrs.String("TeacherID"); err != nil {
		return a, err
	}
	if a.StudentID, err = attrs.String("StudentID"); err != nil {
		return a, err
	}
	if a.HasDropBox, err = attrs.Bool("HasDropBox"); err != nil {
		return a, err
	}
	if a.DropStartDate, err = attrs.Date("DropStartDate"); err != nil {
		return a, err
	}
	if a.DropEndDate, err = attrs.Date("DropEndDate"); err != nil {
		return a, err
	}
	wrappers := []string{"Standards", "Resources"}
	err = decode.Children(cur, "Assignment", wrappers, func(child events.Start) error {
		if child.Name != "Standard" {
			return &decode.UnexpectedEventError{Event: child}
		}
		s, err := decodeStandard(child, cur)
		if err != nil {
			return err
		}
		a.Standards = append(a.Standards, s)
		return nil
	})
	return a, err
}

// ScoreKind discriminates AssignmentScore values.
type ScoreKind int

const (
	// ScoreNotDue is an assignment not yet due
	ScoreNotDue ScoreKind = iota
	// ScoreNotForGrading is an ungraded (blank score) assignment
	ScoreNotForGrading
	// ScoreNotGraded is a due but not yet graded assignment
	ScoreNotGraded
	// ScoreSeeStandards defers to standards-based grading
	ScoreSeeStandards
	// ScorePercentage is a bare percentage score
	ScorePercentage
	// ScoreOutOf is an "n out of m" score
	ScoreOutOf
	// ScoreUnparseable keeps the original text of an unrecognized score
	ScoreUnparseable
)

func (k ScoreKind) String() string {
	switch k {
	case ScoreNotDue:
		return "not due"
	case ScoreNotForGrading:
		return "not for grading"
	case ScoreNotGraded:
		return "not graded"
	case ScoreSeeStandards:
		return "see standards"
	case ScorePercentage:
		return "percentage"
	case ScoreOutOf:
		return "score"
	case ScoreUnparseable:
		return "unparseable"
	default:
		return fmt.Sprintf("ScoreKind(%d)", int(k))
	}
}

// AssignmentScore is an assignment's score as the portal displays it.
// The portal encodes several distinct states into one free-text field;
// Kind selects which of the value fields are meaningful.
type AssignmentScore struct {
	Kind     ScoreKind
	Percent  float64 // ScorePercentage
	Earned   float64 // ScoreOutOf
	Possible float64 // ScoreOutOf
	Raw      string  // ScoreUnparseable
}

var (
	scoreOutOfRE = regexp.MustCompile(`([\d.]+)\s*out\s*of\s*([\d.]+)`)
	scorePctRE   = regexp.MustCompile(`^([\d.]+)\s*(?:\(\))?$`)
)

// ParseAssignmentScore classifies a score string. It never fails:
// unrecognized input becomes a ScoreUnparseable value preserving the
// original text.
func ParseAssignmentScore(s string) AssignmentScore {
	switch s {
	case "Not Due":
		return AssignmentScore{Kind: ScoreNotDue}
	case "":
		return AssignmentScore{Kind: ScoreNotForGrading}
	case "Not Graded":
		return AssignmentScore{Kind: ScoreNotGraded}
	case "See Standards":
		return AssignmentScore{Kind: ScoreSeeStandards}
	}
	if m := scoreOutOfRE.FindStringSubmatch(s); m != nil {
		earned, err1 := strconv.ParseFloat(m[1], 64)
		possible, err2 := strconv.ParseFloat(m[2], 64)
		if err1 == nil && err2 == nil {
			return AssignmentScore{Kind: ScoreOutOf, Earned: earned, Possible: possible}
		}
	}
	if m := scorePctRE.FindStringSubmatch(s); m != nil {
		if pct, err := strconv.ParseFloat(m[1], 64); err == nil {
			return AssignmentScore{Kind: ScorePercentage, Percent: pct}
		}
	}
	return AssignmentScore{Kind: ScoreUnparseable, Raw: s}
}

func (s AssignmentScore) String() string {
	switch s.Kind {
	case ScoreNotDue:
		return "Not Due"
	case ScoreNotForGrading:
		return "Not For Grading"
	case ScoreNotGraded:
		return "Not Graded"
	case ScoreSeeStandards:
		return "See Standards"
	case ScorePercentage:
		return strconv.FormatFloat(s.Percent, 'f', -1, 64)
	case ScoreOutOf:
		return fmt.Sprintf("%v out of %v", s.Earned, s.Possible)
	default:
		return s.Raw
	}
}

// PointsKind discriminates AssignmentPoints values.
type PointsKind int

const (
	// PointsUngraded is an assignment with possible points but no grade yet
	PointsUngraded PointsKind = iota
	// PointsGraded is an earned/possible points pair
	PointsGraded
	// PointsUnparseable keeps the original text of an unrecognized value
	PointsUnparseable
)

// AssignmentPoints is an assignment's points field: either
// "<n> Points Possible" for ungraded work or "<earned>/<possible>" once
// graded.
type AssignmentPoints struct {
	Kind     PointsKind
	Earned   float64 // PointsGraded
	Possible float64 // PointsUngraded, PointsGraded
	Raw      string  // PointsUnparseable
}

var (
	pointsPossibleRE = regexp.MustCompile(`([\d.]+)\s*Points\s*Possible`)
	pointsGradedRE   = regexp.MustCompile(`([\d.]+)\s*/\s*([\d.]+)`)
)

// ParseAssignmentPoints classifies a points string. It never fails.
func ParseAssignmentPoints(s string) AssignmentPoints {
	if strings.Contains(s, "Points Possible") {
		if m := pointsPossibleRE.FindStringSubmatch(s); m != nil {
			if possible, err := strconv.ParseFloat(m[1], 64); err == nil {
				return AssignmentPoints{Kind: PointsUngraded, Possible: possible}
			}
		}
		return AssignmentPoints{Kind: PointsUnparseable, Raw: s}
	}
	if m := pointsGradedRE.FindStringSubmatch(s); m != nil {
		earned, err1 := strconv.ParseFloat(m[1], 64)
		possible, err2 := strconv.ParseFloat(m[2], 64)
		if err1 == nil && err2 == nil {
			return AssignmentPoints{Kind: PointsGraded, Earned: earned, Possible: possible}
		}
	}
	return AssignmentPoints{Kind: PointsUnparseable, Raw: s}
}

func (p AssignmentPoints) String() string {
	switch p.Kind {
	case PointsUngraded:
		return fmt.Sprintf("%v Points Possible", p.Possible)
	case PointsGraded:
		return fmt.Sprintf("%v/%v", p.Earned, p.Possible)
	default:
		return p.Raw
	}
}
