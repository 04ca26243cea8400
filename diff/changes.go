package diff

import (
	"time"

	"github.com/rvue/rvue/gradebook"
)

// CourseChange is one detected course-level difference. The concrete
// types are CourseAdded, CourseDropped, PeriodChange, StaffChange,
// StaffEmailChange and GradeChange.
//
// There is no course title change: courses are paired by title, so a
// changed title reads as one course dropped and another added.
type CourseChange interface {
	courseChange()
}

// CourseAdded marks a course present only in the new snapshot.
type CourseAdded struct{}

// CourseDropped marks a course present only in the old snapshot.
type CourseDropped struct{}

// PeriodChange records a changed class period.
type PeriodChange struct {
	Old, New int
}

// StaffChange records a changed staff name.
type StaffChange struct {
	Old, New string
}

// StaffEmailChange records a changed staff email address.
type StaffEmailChange struct {
	Old, New string
}

// GradeChange records a change to the course's overall calculated
// grade, in both raw and display form.
type GradeChange struct {
	OldRaw, NewRaw float64
	Old, New       string
}

func (CourseAdded) courseChange()      {}
func (CourseDropped) courseChange()    {}
func (PeriodChange) courseChange()     {}
func (StaffChange) courseChange()      {}
func (StaffEmailChange) courseChange() {}
func (GradeChange) courseChange()      {}

// AssignmentChange is one detected assignment-level difference. The
// concrete types are AssignmentAdded, AssignmentRemoved, DateChange,
// DueDateChange, NotesChange, PointsChange, ScoreChange,
// ScoreTypeChange and TitleChange.
type AssignmentChange interface {
	assignmentChange()
}

// AssignmentAdded marks an assignment present only in the new snapshot.
type AssignmentAdded struct{}

// AssignmentRemoved marks an assignment present only in the old
// snapshot.
type AssignmentRemoved struct{}

// DateChange records a changed assigned date.
type DateChange struct {
	Old, New time.Time
}

// DueDateChange records a changed due date.
type DueDateChange struct {
	Old, New time.Time
}

// NotesChange records changed teacher notes.
type NotesChange struct {
	Old, New string
}

// PointsChange records a changed points value.
type PointsChange struct {
	Old, New gradebook.AssignmentPoints
}

// ScoreChange records a changed score.
type ScoreChange struct {
	Old, New gradebook.AssignmentScore
}

// ScoreTypeChange records a changed score type label.
type ScoreTypeChange struct {
	Old, New string
}

// TitleChange records a changed assignment title (measure).
type TitleChange struct {
	Old, New string
}

func (AssignmentAdded) assignmentChange()   {}
func (AssignmentRemoved) assignmentChange() {}
func (DateChange) assignmentChange()        {}
func (DueDateChange) assignmentChange()     {}
func (NotesChange) assignmentChange()       {}
func (PointsChange) assignmentChange()      {}
func (ScoreChange) assignmentChange()       {}
func (ScoreTypeChange) assignmentChange()   {}
func (TitleChange) assignmentChange()       {}
