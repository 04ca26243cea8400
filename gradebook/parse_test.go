package gradebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAssignmentScore(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  AssignmentScore
	}{
		{"not due", "Not Due", AssignmentScore{Kind: ScoreNotDue}},
		{"not for grading", "", AssignmentScore{Kind: ScoreNotForGrading}},
		{"not graded", "Not Graded", AssignmentScore{Kind: ScoreNotGraded}},
		{"see standards", "See Standards", AssignmentScore{Kind: ScoreSeeStandards}},
		{"out of", "8 out of 10", AssignmentScore{Kind: ScoreOutOf, Earned: 8, Possible: 10}},
		{"out of fractional", "7.5 out of 10", AssignmentScore{Kind: ScoreOutOf, Earned: 7.5, Possible: 10}},
		{"out of tight spacing", "8out of10", AssignmentScore{Kind: ScoreOutOf, Earned: 8, Possible: 10}},
		{"bare percentage", "95.5", AssignmentScore{Kind: ScorePercentage, Percent: 95.5}},
		{"parenthesized percentage", "95 ()", AssignmentScore{Kind: ScorePercentage, Percent: 95}},
		{"unparseable", "A+", AssignmentScore{Kind: ScoreUnparseable, Raw: "A+"}},
		{"unparseable dots", "...", AssignmentScore{Kind: ScoreUnparseable, Raw: "..."}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseAssignmentScore(tc.input))
		})
	}
}

func TestParseAssignmentPoints(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  AssignmentPoints
	}{
		{"ungraded", "10 Points Possible", AssignmentPoints{Kind: PointsUngraded, Possible: 10}},
		{"ungraded fractional", "12.5 Points Possible", AssignmentPoints{Kind: PointsUngraded, Possible: 12.5}},
		{"graded", "7/10", AssignmentPoints{Kind: PointsGraded, Earned: 7, Possible: 10}},
		{"graded spaced", "7 / 10", AssignmentPoints{Kind: PointsGraded, Earned: 7, Possible: 10}},
		{"unparseable", "extra credit", AssignmentPoints{Kind: PointsUnparseable, Raw: "extra credit"}},
		{"unparseable possible", "some Points Possible", AssignmentPoints{Kind: PointsUnparseable, Raw: "some Points Possible"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseAssignmentPoints(tc.input))
		})
	}
}

func TestParseGradeCalcWeight(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  GradeCalcWeight
	}{
		{"percentage", "40%", GradeCalcWeight{Kind: WeightPercentage, Percent: 40}},
		{"fractional", "37.2%", GradeCalcWeight{Kind: WeightPercentage, Percent: 37.2}},
		{"padded", "  40%  ", GradeCalcWeight{Kind: WeightPercentage, Percent: 40}},
		{"no percent sign", "40", GradeCalcWeight{Kind: WeightUnparseable, Raw: "40"}},
		{"garbage prefix", "x%", GradeCalcWeight{Kind: WeightUnparseable, Raw: "x%"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseGradeCalcWeight(tc.input))
		})
	}
}

func TestParseCourseTitle(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  CourseTitle
	}{
		{"parsed", "Algebra I (MATH101)", CourseTitle{Name: "Algebra I", ID: "MATH101"}},
		{"unparseable", "Lunch", CourseTitle{Raw: "Lunch"}},
		{"no space before id", "Algebra(MATH101)", CourseTitle{Raw: "Algebra(MATH101)"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseCourseTitle(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want.Raw == "", got.Parsed())
		})
	}
}

func TestCourseTitleString(t *testing.T) {
	assert.Equal(t, "Algebra I (MATH101)", ParseCourseTitle("Algebra I (MATH101)").String())
	assert.Equal(t, "Lunch", ParseCourseTitle("Lunch").String())
}

func TestScoreString(t *testing.T) {
	assert.Equal(t, "8 out of 10", AssignmentScore{Kind: ScoreOutOf, Earned: 8, Possible: 10}.String())
	assert.Equal(t, "Not Due", AssignmentScore{Kind: ScoreNotDue}.String())
	assert.Equal(t, "7/10", AssignmentPoints{Kind: PointsGraded, Earned: 7, Possible: 10}.String())
	assert.Equal(t, "10 Points Possible", AssignmentPoints{Kind: PointsUngraded, Possible: 10}.String())
}
