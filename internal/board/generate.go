package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/pablasso/prdkanban/internal/util"
)

// TitlePrefix starts every board title derived from a goal.
const TitlePrefix = "PRD → Kanban"

// Generate builds a board from in, stamped with the current time.
func Generate(in Input) Document {
	return GenerateAt(in, time.Now())
}

// GenerateAt builds a board from in, stamped with now. Everything except
// CreatedAt is a pure function of in. Invalid UTF-8 in any field is replaced
// with U+FFFD so the document survives a JSON export unchanged.
func GenerateAt(in Input, now time.Time) Document {
	in = in.valid()

	templates := make([]template, 0, len(baseline)+3)
	templates = append(templates, baseline...)
	templates = append(templates, extras(
		strings.TrimSpace(in.Constraints),
		strings.TrimSpace(in.Duration),
		strings.TrimSpace(in.Team),
	)...)

	// Assign sequential IDs before wiring so edges can refer to them.
	ids := make(map[string]string, len(templates))
	for i, tpl := range templates {
		ids[tpl.key] = util.TaskID(i)
	}

	tasks := make([]Task, len(templates))
	for i, tpl := range templates {
		tasks[i] = Task{
			ID:            ids[tpl.key],
			Title:         tpl.title,
			Status:        StatusTodo,
			EstimateHours: Hours(tpl.hours),
			Acceptance:    append([]string(nil), tpl.acceptance...),
			DependsOn:     mustResolve(tpl, ids),
		}
	}

	return Document{
		Title:     Title(in.Goal),
		CreatedAt: Stamp(now),
		Input:     in,
		Columns:   DefaultColumns(),
		Tasks:     tasks,
	}
}

// valid returns in with invalid UTF-8 sequences replaced by U+FFFD.
func (in Input) valid() Input {
	return Input{
		Goal:        strings.ToValidUTF8(in.Goal, "\uFFFD"),
		Constraints: strings.ToValidUTF8(in.Constraints, "\uFFFD"),
		Duration:    strings.ToValidUTF8(in.Duration, "\uFFFD"),
		Team:        strings.ToValidUTF8(in.Team, "\uFFFD"),
	}
}

// Title derives the board title from the goal field.
func Title(goal string) string {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return TitlePrefix
	}
	return TitlePrefix + ": " + goal
}

// Stamp normalizes t to the precision and zone boards are stored with.
func Stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// mustResolve maps a template's declared dependency keys to task IDs.
// An unresolvable key means the template table itself is broken.
func mustResolve(tpl template, ids map[string]string) []string {
	if len(tpl.dependsOn) == 0 {
		return nil
	}
	deps := make([]string, 0, len(tpl.dependsOn))
	for _, key := range tpl.dependsOn {
		id, ok := ids[key]
		if !ok {
			panic(fmt.Sprintf("board: template %q depends on unknown template %q", tpl.key, key))
		}
		deps = append(deps, id)
	}
	return deps
}
