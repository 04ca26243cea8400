package gradebook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rvue/rvue/decode"
	"github.com/rvue/rvue/events"
)

// Mark is one grading-period snapshot of a course: the calculated
// overall score plus the assignments and category breakdown behind it.
type Mark struct {
	Name                  string
	CalculatedScoreRaw    float64
	CalculatedScoreString string
	Assignments           []Assignment
	// GradeCalcSummary is the per-category weight breakdown.
	GradeCalcSummary []AssignmentGradeCalc
	// StandardViews is populated for standards-based courses, in lieu
	// of a simple numeric score.
	StandardViews []StandardView
}

func decodeMark(start events.Start, cur *events.Cursor) (Mark, error) {
	attrs := decode.AttrMap(start.Attr)
	var m Mark
	var err error
	if m.Name, err = attrs.String("MarkName"); err != nil {
		return m, err
	}
	if m.CalculatedScoreRaw, err = attrs.Float("CalculatedScoreRaw"); err != nil {
		return m, err
	}
	if m.CalculatedScoreString, err = attrs.String("CalculatedScoreString"); err != nil {
		return m, err
	}
	wrappers := []string{"Assignments", "GradeCalculationSummary", "StandardViews"}
	err = decode.Children(cur, "Mark", wrappers, func(child events.Start) error {
		switch child.Name {
		case "Assignment":
			a, err := decodeAssignment(child, cur)
			if err != nil {
				return err
			}
			m.Assignments = append(m.Assignments, a)
		case "AssignmentGradeCalc":
			agc, err := decodeAssignmentGradeCalc(child, cur)
			if err != nil {
				return err
			}
			m.GradeCalcSummary = append(m.GradeCalcSummary, agc)
		case "StandardView":
			sv, err := decodeStandardView(child, cur)
			if err != nil {
				return err
			}
			m.StandardViews = append(m.StandardViews, sv)
		default:
			return &decode.UnexpectedEventError{Event: child}
		}
		return nil
	})
	return m, err
}

// AssignmentGradeCalc is one category of a mark's weighted grade
// calculation.
type AssignmentGradeCalc struct {
	Type           string
	CalculatedMark string
	Points         float64
	PointsPossible float64
	Weight         GradeCalcWeight
	WeightedPct    GradeCalcWeight
}

func decodeAssignmentGradeCalc(start events.Start, cur *events.Cursor) (AssignmentGradeCalc, error) {
	attrs := decode.AttrMap(start.Attr)
	var agc AssignmentGradeCalc
	var err error
	if agc.Type, err = attrs.String("Type"); err != nil {
		return agc, err
	}
	if agc.CalculatedMark, err = attrs.String("CalculatedMark"); err != nil {
		return agc, err
	}
	if agc.Points, err = attrs.Float("Points"); err != nil {
		return agc, err
	}
	if agc.PointsPossible, err = attrs.Float("PointsPossible"); err != nil {
		return agc, err
	}
	weight, err := attrs.String("Weight")
	if err != nil {
		return agc, err
	}
	agc.Weight = ParseGradeCalcWeight(weight)
	pct, err := attrs.String("WeightedPct")
	if err != nil {
		return agc, err
	}
	agc.WeightedPct = ParseGradeCalcWeight(pct)
	return agc, decode.Leaf(cur, "AssignmentGradeCalc")
}

// WeightKind discriminates GradeCalcWeight values.
type WeightKind int

const (
	// WeightPercentage is a parsed percentage weight
	WeightPercentage WeightKind = iota
	// WeightUnparseable keeps the original text of a malformed weight
	WeightUnparseable
)

// GradeCalcWeight is a category weight. The portal sometimes emits
// malformed weight strings; those are kept verbatim rather than dropped.
type GradeCalcWeight struct {
	Kind    WeightKind
	Percent float64
	Raw     string
}

// ParseGradeCalcWeight classifies a weight string such as "40%".
func ParseGradeCalcWeight(s string) GradeCalcWeight {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		if p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64); err == nil {
			return GradeCalcWeight{Kind: WeightPercentage, Percent: p}
		}
	}
	return GradeCalcWeight{Kind: WeightUnparseable, Raw: s}
}

func (w GradeCalcWeight) String() string {
	if w.Kind == WeightPercentage {
		return fmt.Sprintf("%v%%", w.Percent)
	}
	return w.Raw
}
