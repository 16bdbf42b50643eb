package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Record is implemented by every entity held in a collection. WithID returns
// a copy with the id set so callers never mutate a committed record in place.
type Record[T any] interface {
	RecordID() string
	WithID(id string) T
	Validate() bool
}

// Course is one scheduled course on the schedule screen. Time, days and
// location are free text; only the name is required.
type Course struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Time     string `json:"time"`
	Days     string `json:"days"`
	Location string `json:"location"`
}

func (c Course) RecordID() string { return c.ID }

func (c Course) WithID(id string) Course {
	c.ID = id
	return c
}

// Validate reports whether the course can be committed. Only the name is
// checked; a whitespace-only name counts as empty.
func (c Course) Validate() bool { return strings.TrimSpace(c.Name) != "" }

// Assignment is one tracked assignment. Course is free text, not a reference
// to a Course record. Completed is flipped through the dedicated toggle path.
type Assignment struct {
	ID          string
	Title       string
	Course      string
	DueDate     time.Time
	Description string
	Completed   bool
}

func (a Assignment) RecordID() string { return a.ID }

func (a Assignment) WithID(id string) Assignment {
	a.ID = id
	return a
}

// Validate reports whether the assignment can be committed. Only the title
// is checked.
func (a Assignment) Validate() bool { return strings.TrimSpace(a.Title) != "" }

// assignmentJSON is the stored shape. DueDate travels as absolute RFC 3339
// text so saved collections re-parse into the same instant on any device.
type assignmentJSON struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Course      string `json:"course"`
	DueDate     string `json:"dueDate"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

func (a Assignment) MarshalJSON() ([]byte, error) {
	return json.Marshal(assignmentJSON{
		ID:          a.ID,
		Title:       a.Title,
		Course:      a.Course,
		DueDate:     a.DueDate.UTC().Format(time.RFC3339Nano),
		Description: a.Description,
		Completed:   a.Completed,
	})
}

func (a *Assignment) UnmarshalJSON(b []byte) error {
	var w assignmentJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if w.DueDate == "" {
		return errors.New("assignment is missing dueDate")
	}
	due, err := time.Parse(time.RFC3339Nano, w.DueDate)
	if err != nil {
		return fmt.Errorf("parse dueDate: %w", err)
	}
	a.ID = w.ID
	a.Title = w.Title
	a.Course = w.Course
	a.DueDate = due
	a.Description = w.Description
	a.Completed = w.Completed
	return nil
}

// NewID mints a collection-unique id for a freshly committed record.
// Timestamp-based ids are unique at interactive creation rates; the id is
// assigned once at first commit and never changes afterwards.
func NewID() string {
	return time.Now().UTC().Format("20060102T150405.000000000")
}
