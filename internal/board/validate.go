package board

import "math"

// Validate checks the integrity of a board built outside the generator, such
// as one parsed from an export. Generated boards always pass.
//
// Dependencies must reference an earlier task, which also rules out cycles.
// Each column key may appear at most once. Columns may be omitted: renderers
// fall back to DefaultColumns for any missing key.
func Validate(doc Document) error {
	seen := make(map[Status]bool, len(doc.Columns))
	for _, c := range doc.Columns {
		if _, err := ParseStatus(string(c.Key)); err != nil {
			return invalidf("", "column %q: %v", c.Title, err)
		}
		if seen[c.Key] {
			return invalidf("", "duplicate column %q", c.Key)
		}
		seen[c.Key] = true
	}

	index := make(map[string]int, len(doc.Tasks))
	for i, t := range doc.Tasks {
		if t.ID == "" {
			return invalidf("", "task %d has no id", i+1)
		}
		if _, dup := index[t.ID]; dup {
			return invalidf(t.ID, "duplicate task id")
		}
		index[t.ID] = i
	}

	for i, t := range doc.Tasks {
		if _, err := ParseStatus(string(t.Status)); err != nil {
			return invalidf(t.ID, "%v", err)
		}
		if h := t.EstimateHours; h != nil && (!(*h >= 0) || math.IsInf(*h, 1)) {
			return invalidf(t.ID, "estimate must be a non-negative number of hours, got %v", *h)
		}
		for _, dep := range t.DependsOn {
			j, ok := index[dep]
			if !ok {
				return invalidf(t.ID, "depends on unknown task %q", dep)
			}
			if j >= i {
				return &GraphError{Kind: ErrForwardDependency, TaskID: t.ID, Msg: "depends on " + dep}
			}
		}
	}
	return nil
}
