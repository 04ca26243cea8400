// Command gradewatch fetches a student's gradebook from the StudentVUE
// portal and prints it, or compares two saved payload files and prints
// their differences.
//
// Usage:
//
//	gradewatch -config config.json [-period N] [-ics out.ics]
//	gradewatch -old old.xml -new new.xml
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rvue/rvue/calendar"
	"github.com/rvue/rvue/diff"
	"github.com/rvue/rvue/events"
	"github.com/rvue/rvue/gradebook"
	"github.com/rvue/rvue/svue"
)

type config struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Endpoint string `json:"endpoint"`
}

func loadConfig(filename string) (*config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func main() {
	var (
		configPath = flag.String("config", "config.json", "path to the JSON config file")
		period     = flag.Int("period", -1, "report period index (negative for the portal default)")
		icsPath    = flag.String("ics", "", "write assignment due dates to this iCalendar file")
		oldPath    = flag.String("old", "", "older saved gradebook payload to compare")
		newPath    = flag.String("new", "", "newer saved gradebook payload to compare")
	)
	flag.Parse()

	if (*oldPath == "") != (*newPath == "") {
		fatalf("-old and -new must be given together")
	}
	if *oldPath != "" {
		runDiff(*oldPath, *newPath)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fatalf("load config: %v", err)
	}
	client := svue.NewClient(cfg.Endpoint)
	gb, err := client.GradebookForPeriod(context.Background(), cfg.Username, cfg.Password, *period)
	if err != nil {
		fatalf("retrieve gradebook: %v", err)
	}
	printGradebook(gb)

	if *icsPath != "" {
		if err := os.WriteFile(*icsPath, []byte(calendar.DueDates(gb)), 0o644); err != nil {
			fatalf("write calendar: %v", err)
		}
	}
}

func runDiff(oldPath, newPath string) {
	old, err := decodeFile(oldPath)
	if err != nil {
		fatalf("decode %s: %v", oldPath, err)
	}
	new, err := decodeFile(newPath)
	if err != nil {
		fatalf("decode %s: %v", newPath, err)
	}
	cs := diff.Compare(old, new)
	if cs == nil {
		fmt.Println("no changes")
		return
	}
	printChangeset(cs)
}

func decodeFile(path string) (*gradebook.Gradebook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seq, err := events.Tokenize(f)
	if err != nil {
		return nil, err
	}
	return gradebook.Decode(events.NewCursor(seq))
}

func printGradebook(gb *gradebook.Gradebook) {
	fmt.Printf("%s (%s to %s)\n",
		gb.ReportingPeriod.GradePeriod,
		gb.ReportingPeriod.StartDate.Format("1/2/2006"),
		gb.ReportingPeriod.EndDate.Format("1/2/2006"))
	for _, c := range gb.Courses {
		fmt.Printf("\nperiod %d: %s (%s, room %s)\n", c.Period, c.Title, c.Staff, c.Room)
		for _, m := range c.Marks {
			fmt.Printf("  %s: %s (%.1f)\n", m.Name, m.CalculatedScoreString, m.CalculatedScoreRaw)
			for _, a := range m.Assignments {
				fmt.Printf("    %s: %s due %s, score %s, points %s\n",
					a.Type, a.Measure, a.DueDate.Format("1/2/2006"), a.Score, a.Points)
			}
		}
	}
}

func printChangeset(cs *diff.Changeset) {
	for _, cd := range cs.Courses {
		fmt.Printf("%s:\n", cd.Title)
		for _, ch := range cd.Changes {
			switch ch := ch.(type) {
			case diff.CourseAdded:
				fmt.Println("  course added")
			case diff.CourseDropped:
				fmt.Println("  course dropped")
			case diff.PeriodChange:
				fmt.Printf("  period: %d -> %d\n", ch.Old, ch.New)
			case diff.StaffChange:
				fmt.Printf("  staff: %s -> %s\n", ch.Old, ch.New)
			case diff.StaffEmailChange:
				fmt.Printf("  staff email: %s -> %s\n", ch.Old, ch.New)
			case diff.GradeChange:
				fmt.Printf("  grade: %s (%.1f) -> %s (%.1f)\n", ch.Old, ch.OldRaw, ch.New, ch.NewRaw)
			}
		}
		for _, ad := range cd.Assignments {
			fmt.Printf("  %s:\n", ad.Measure)
			for _, ch := range ad.Changes {
				switch ch := ch.(type) {
				case diff.AssignmentAdded:
					fmt.Println("    assignment added")
				case diff.AssignmentRemoved:
					fmt.Println("    assignment removed")
				case diff.DateChange:
					fmt.Printf("    date: %s -> %s\n", ch.Old.Format("1/2/2006"), ch.New.Format("1/2/2006"))
				case diff.DueDateChange:
					fmt.Printf("    due date: %s -> %s\n", ch.Old.Format("1/2/2006"), ch.New.Format("1/2/2006"))
				case diff.NotesChange:
					fmt.Printf("    notes: %q -> %q\n", ch.Old, ch.New)
				case diff.PointsChange:
					fmt.Printf("    points: %s -> %s\n", ch.Old, ch.New)
				case diff.ScoreChange:
					fmt.Printf("    score: %s -> %s\n", ch.Old, ch.New)
				case diff.ScoreTypeChange:
					fmt.Printf("    score type: %s -> %s\n", ch.Old, ch.New)
				case diff.TitleChange:
					fmt.Printf("    title: %s -> %s\n", ch.Old, ch.New)
				}
			}
		}
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "gradewatch: "+format+"\n", args...)
	os.Exit(1)
}
