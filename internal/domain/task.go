package domain

import (
	"fmt"
	"sort"
)

// TimeOfDay is a zero-padded "HH:MM" clock value with no date or timezone.
// Zero-padding makes lexicographic order equal to chronological order.
type TimeOfDay string

// ParseTimeOfDay validates s as a 24-hour "HH:MM" value.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return "", fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	h, m := s[:2], s[3:]
	for _, c := range h + m {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("invalid time %q: want HH:MM", s)
		}
	}
	if h > "23" || m > "59" {
		return "", fmt.Errorf("invalid time %q: hour 00-23, minute 00-59", s)
	}
	return TimeOfDay(s), nil
}

// StudyTask is a single planned study session in the daily schedule.
type StudyTask struct {
	ID        string
	Subject   Subject
	Time      TimeOfDay
	Completed bool
}

// Validate checks that the task is well formed.
func (t *StudyTask) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task id is empty")
	}
	if !t.Subject.IsValid() {
		return fmt.Errorf("unknown subject %q", t.Subject)
	}
	if _, err := ParseTimeOfDay(string(t.Time)); err != nil {
		return err
	}
	return nil
}

// SortTasks orders tasks ascending by time of day. The sort is stable, so
// tasks sharing a time keep their relative insertion order.
func SortTasks(tasks []StudyTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Time < tasks[j].Time
	})
}
