package diff

import "github.com/rvue/rvue/gradebook"

// Changeset is the full set of detected differences between two
// gradebook snapshots, structured by course and assignment. Only
// courses and assignments with at least one difference appear.
type Changeset struct {
	Courses []CourseDiff
}

// CourseDiff holds every difference detected for one course, keyed by
// the course title.
type CourseDiff struct {
	Title       gradebook.CourseTitle
	Changes     []CourseChange
	Assignments []AssignmentDiff
}

// AssignmentDiff holds every difference detected for one assignment.
type AssignmentDiff struct {
	GradebookID string
	Measure     string
	Changes     []AssignmentChange
}

// Compare diffs two gradebook snapshots. It returns nil when no
// difference is found anywhere.
func Compare(old, new *gradebook.Gradebook) *Changeset {
	pairs := PairByKey(old.Courses, new.Courses,
		func(c gradebook.Course) gradebook.CourseTitle { return c.Title })
	var courses []CourseDiff
	for _, p := range pairs {
		if cd := diffCourse(p); cd != nil {
			courses = append(courses, *cd)
		}
	}
	if len(courses) == 0 {
		return nil
	}
	return &Changeset{Courses: courses}
}

func diffCourse(p Pair[gradebook.Course]) *CourseDiff {
	switch {
	case p.Old == nil && p.New == nil:
		return nil
	case p.New == nil:
		return &CourseDiff{Title: p.Old.Title, Changes: []CourseChange{CourseDropped{}}}
	case p.Old == nil:
		return &CourseDiff{Title: p.New.Title, Changes: []CourseChange{CourseAdded{}}}
	}

	o, n := p.Old, p.New
	var changes []CourseChange
	if o.Period != n.Period {
		changes = append(changes, PeriodChange{Old: o.Period, New: n.Period})
	}
	if o.Staff != n.Staff {
		changes = append(changes, StaffChange{Old: o.Staff, New: n.Staff})
	}
	if o.StaffEmail != n.StaffEmail {
		changes = append(changes, StaffEmailChange{Old: o.StaffEmail, New: n.StaffEmail})
	}

	om, nm := firstMark(o), firstMark(n)
	if om != nil && nm != nil {
		if om.CalculatedScoreRaw != nm.CalculatedScoreRaw ||
			om.CalculatedScoreString != nm.CalculatedScoreString {
			changes = append(changes, GradeChange{
				OldRaw: om.CalculatedScoreRaw, NewRaw: nm.CalculatedScoreRaw,
				Old: om.CalculatedScoreString, New: nm.CalculatedScoreString,
			})
		}
	}

	assignments := diffAssignments(markAssignments(om), markAssignments(nm))
	if len(changes) == 0 && len(assignments) == 0 {
		return nil
	}
	return &CourseDiff{Title: o.Title, Changes: changes, Assignments: assignments}
}

func diffAssignments(old, new []gradebook.Assignment) []AssignmentDiff {
	pairs := PairByKey(old, new,
		func(a gradebook.Assignment) string { return a.GradebookID })
	var diffs []AssignmentDiff
	for _, p := range pairs {
		switch {
		case p.Old != nil && p.New != nil:
			if ad := diffAssignment(p.Old, p.New); ad != nil {
				diffs = append(diffs, *ad)
			}
		case p.Old != nil:
			diffs = append(diffs, AssignmentDiff{
				GradebookID: p.Old.GradebookID,
				Measure:     p.Old.Measure,
				Changes:     []AssignmentChange{AssignmentRemoved{}},
			})
		case p.New != nil:
			diffs = append(diffs, AssignmentDiff{
				GradebookID: p.New.GradebookID,
				Measure:     p.New.Measure,
				Changes:     []AssignmentChange{AssignmentAdded{}},
			})
		}
	}
	return diffs
}

func diffAssignment(o, n *gradebook.Assignment) *AssignmentDiff {
	var changes []AssignmentChange
	if !o.Date.Equal(n.Date) {
		changes = append(changes, DateChange{Old: o.Date, New: n.Date})
	}
	if !o.DueDate.Equal(n.DueDate) {
		changes = append(changes, DueDateChange{Old: o.DueDate, New: n.DueDate})
	}
	if o.Notes != n.Notes {
		changes = append(changes, NotesChange{Old: o.Notes, New: n.Notes})
	}
	if o.Points != n.Points {
		changes = append(changes, PointsChange{Old: o.Points, New: n.Points})
	}
	if o.Score != n.Score {
		changes = append(changes, ScoreChange{Old: o.Score, New: n.Score})
	}
	if o.ScoreType != n.ScoreType {
		changes = append(changes, ScoreTypeChange{Old: o.ScoreType, New: n.ScoreType})
	}
	if o.Measure != n.Measure {
		changes = append(changes, TitleChange{Old: o.Measure, New: n.Measure})
	}
	if len(changes) == 0 {
		return nil
	}
	return &AssignmentDiff{GradebookID: o.GradebookID, Measure: n.Measure, Changes: changes}
}

func firstMark(c *gradebook.Course) *gradebook.Mark {
	if len(c.Marks) == 0 {
		return nil
	}
	return &c.Marks[0]
}

func markAssignments(m *gradebook.Mark) []gradebook.Assignment {
	if m == nil {
		return nil
	}
	return m.Assignments
}
