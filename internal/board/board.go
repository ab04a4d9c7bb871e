// Package board models a generated kanban board and builds one from a
// product-requirements input.
package board

import (
	"fmt"
	"time"
)

// Status is the column a task sits in.
type Status string

// Task status constants
const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

// Statuses lists every status in column order.
var Statuses = []Status{StatusTodo, StatusDoing, StatusDone}

// ParseStatus converts s to a Status, rejecting anything outside the closed set.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q (want todo, doing or done)", s)
}

// Input holds the four free-text fields a board is generated from.
// Every field is optional.
type Input struct {
	Goal        string `json:"goal" yaml:"goal"`
	Constraints string `json:"constraints" yaml:"constraints"`
	Duration    string `json:"duration" yaml:"duration"`
	Team        string `json:"team" yaml:"team"`
}

// Column is one of the fixed status buckets.
type Column struct {
	Key   Status `json:"key" yaml:"key"`
	Title string `json:"title" yaml:"title"`
}

// Task represents a single unit of work on the board.
type Task struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	Status        Status   `json:"status" yaml:"status"`
	EstimateHours *float64 `json:"estimateHours,omitempty" yaml:"estimateHours,omitempty"`
	DependsOn     []string `json:"dependsOn,omitempty" yaml:"dependsOn,omitempty"`
	Acceptance    []string `json:"acceptance,omitempty" yaml:"acceptance,omitempty"`
}

// Document is a complete generated board.
type Document struct {
	Title     string
	CreatedAt time.Time
	Input     Input
	Columns   []Column
	Tasks     []Task
}

// DefaultColumns returns the fixed Todo/Doing/Done columns.
func DefaultColumns() []Column {
	return []Column{
		{Key: StatusTodo, Title: "Todo"},
		{Key: StatusDoing, Title: "Doing"},
		{Key: StatusDone, Title: "Done"},
	}
}

// TasksByStatus partitions tasks into their columns, keeping relative order.
func (d Document) TasksByStatus() map[Status][]Task {
	out := make(map[Status][]Task, len(Statuses))
	for _, t := range d.Tasks {
		out[t.Status] = append(out[t.Status], t)
	}
	return out
}

// Count returns the number of tasks with the given status.
func (d Document) Count(s Status) int {
	n := 0
	for _, t := range d.Tasks {
		if t.Status == s {
			n++
		}
	}
	return n
}

// Hours returns a pointer to v, for populating Task.EstimateHours.
func Hours(v float64) *float64 {
	return &v
}
