package gradebook

import (
	"time"

	"github.com/rvue/rvue/decode"
	"github.com/rvue/rvue/events"
)

// Standard is a named learning standard an assignment is graded
// against, for courses using standards-based grading. Proficiency is
// nil when the portal reports no (or a non-numeric) value, which is the
// common case.
type Standard struct {
	Subject           string
	Mark              string
	Description       string
	Proficiency       *float64
	ProficiencyMax    float64
	ScreenAssignments []StandardScreenAssignment
}

func decodeStandard(start events.Start, cur *events.Cursor) (Standard, error) {
	attrs := decode.AttrMap(start.Attr)
	var s Standard
	var err error
	if s.Subject, err = attrs.String("Subject"); err != nil {
		return s, err
	}
	if s.Mark, err = attrs.String("Mark"); err != nil {
		return s, err
	}
	if s.Description, err = attrs.String("Description"); err != nil {
		return s, err
	}
	s.Proficiency = attrs.OptionalFloat("Proficiency")
	// the portal misspells Proficiency in this attribute
	if s.ProficiencyMax, err = attrs.Float("ProfciencyMaxValue"); err != nil {
		return s, err
	}
	err = decode.Children(cur, "Standard", []string{"StandardScreenAssignments"}, func(child events.Start) error {
		if child.Name != "StandardScreenAssignment" {
			return &decode.UnexpectedEventError{Event: child}
		}
		ssa, err := decodeStandardScreenAssignment(child, cur)
		if err != nil {
			return err
		}
		s.ScreenAssignments = append(s.ScreenAssignments, ssa)
		return nil
	})
	return s, err
}

// StandardScreenAssignment is one assignment's contribution to a
// Standard, as shown on the portal's standards screen.
type StandardScreenAssignment struct {
	Type           string
	Assignment     string
	DueDate        time.Time
	Mark           string
	Proficiency    *float64
	ProficiencyMax float64
}

func decodeStandardScreenAssignment(start events.Start, cur *events.Cursor) (StandardScreenAssignment, error) {
	attrs := decode.AttrMap(start.Attr)
	var ssa StandardScreenAssignment
	var err error
	if ssa.Type, err = attrs.String("Type"); err != nil {
		return ssa, err
	}
	if ssa.Assignment, err = attrs.String("Assignment"); err != nil {
		return ssa, err
	}
	if ssa.DueDate, err = attrs.Date("DueDate"); err != nil {
		return ssa, err
	}
	if ssa.Mark, err = attrs.String("Mark"); err != nil {
		return ssa, err
	}
	ssa.Proficiency = attrs.OptionalFloat("Proficiency")
	if ssa.ProficiencyMax, err = attrs.Float("ProfciencyMaxValue"); err != nil {
		return ssa, err
	}
	return ssa, decode.Leaf(cur, "StandardScreenAssignment")
}

// StandardView is a mark-level rollup of proficiency against one
// standard, used in lieu of the simple calculated score.
type StandardView struct {
	Subject         string
	SubjectID       int
	Mark            string
	Description     string
	CalValue        float64
	Proficiency     *float64
	ProficiencyMax  float64
	AssignmentViews []StandardAssignmentView
}

func decodeStandardView(start events.Start, cur *events.Cursor) (StandardView, error) {
	attrs := decode.AttrMap(start.Attr)
	var sv StandardView
	var err error
	if sv.Subject, err = attrs.String("Subject"); err != nil {
		return sv, err
	}
	if sv.SubjectID, err = attrs.Int("SubjectID"); err != nil {
		return sv, err
	}
	if sv.Mark, err = attrs.String("Mark"); err != nil {
		return sv, err
	}
	if sv.Description, err = attrs.String("Description"); err != nil {
		return sv, err
	}
	if sv.CalValue, err = attrs.Float("CalValue"); err != nil {
		return sv, err
	}
	sv.Proficiency = attrs.OptionalFloat("Proficiency")
	if sv.ProficiencyMax, err = attrs.Float("ProfciencyMaxValue"); err != nil {
		return sv, err
	}
	err = decode.Children(cur, "StandardView", []string{"StandardAssignmentViews"}, func(child events.Start) error {
		if child.Name != "StandardAssignmentView" {
			return &decode.UnexpectedEventError{Event: child}
		}
		sav, err := decodeStandardAssignmentView(child, cur)
		if err != nil {
			return err
		}
		sv.AssignmentViews = append(sv.AssignmentViews, sav)
		return nil
	})
	return sv, err
}

// StandardAssignmentView is one assignment's proficiency entry within a
// StandardView.
type StandardAssignmentView struct {
	Type           string
	Assignment     string
	GradebookID    string
	DueDate        time.Time
	Mark           string
	CalValue       float64
	Proficiency    *float64
	ProficiencyMax float64
}

func decodeStandardAssignmentView(start events.Start, cur *events.Cursor) (StandardAssignmentView, error) {
	attrs := decode.AttrMap(start.Attr)
	var sav StandardAssignmentView
	var err error
	if sav.Type, err = attrs.String("Type"); err != nil {
		return sav, err
	}
	if sav.Assignment, err = attrs.String("Assignment"); err != nil {
		return sav, err
	}
	if sav.GradebookID, err = attrs.String("GradebookID"); err != nil {
		return sav, err
	}
	if sav.DueDate, err = attrs.Date("DueDate"); err != nil {
		return sav, err
	}
	if sav.Mark, err = attrs.String("Mark"); err != nil {
		return sav, err
	}
	if sav.CalValue, err = attrs.Float("CalValue"); err != nil {
		return sav, err
	}
	sav.Proficiency = attrs.OptionalFloat("Proficiency")
	if sav.ProficiencyMax, err = attrs.Float("ProfciencyMaxValue"); err != nil {
		return sav, err
	}
	return sav, decode.Leaf(cur, "StandardAssignmentView")
}
