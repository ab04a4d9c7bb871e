package board

// template is a task blueprint. Dependencies are declared by template key so
// that reordering the baseline cannot silently move an edge.
type template struct {
	key        string
	title      string
	hours      float64
	acceptance []string
	dependsOn  []string
}

// Template keys for the baseline checklist.
const (
	keyScope    = "scope"
	keyFlows    = "flows"
	keyStack    = "stack"
	keyRepo     = "repo"
	keyModel    = "model"
	keyCoreUI   = "core-ui"
	keyStates   = "states"
	keyTestPlan = "test-plan"
	keyDeploy   = "deploy"
	keyDemo     = "demo"
	keyReadme   = "readme"
)

// baseline is the generic "ship a minimal product" checklist, in board order.
var baseline = []template{
	{
		key:        keyScope,
		title:      "Write the PRD on one page (goal, audience, non-goals)",
		hours:      1,
		acceptance: []string{"Goal, audience and non-goals are stated in prose"},
	},
	{
		key:        keyFlows,
		title:      "Decide user flows and the screen list",
		hours:      1,
		acceptance: []string{"The flow works with the minimum set of screens"},
		dependsOn:  []string{keyScope},
	},
	{
		key:        keyStack,
		title:      "Choose the tech stack and deploy target",
		hours:      0.5,
		acceptance: []string{"The README can describe how to start the app"},
	},
	{
		key:        keyRepo,
		title:      "Create the repository and initial setup (lint/format included)",
		hours:      0.5,
		acceptance: []string{"CI passes"},
	},
	{
		key:        keyModel,
		title:      "Define the API and data model for the core feature",
		hours:      1,
		acceptance: []string{"Main entities and CRUD are defined"},
	},
	{
		key:        keyCoreUI,
		title:      "Implement the core UI (minimal but working)",
		hours:      2,
		acceptance: []string{"The happy path works end to end"},
		dependsOn:  []string{keyRepo},
	},
	{
		key:        keyStates,
		title:      "Add error handling, loading and empty states",
		hours:      1,
		acceptance: []string{"Nothing breaks when empty or failing"},
	},
	{
		key:        keyTestPlan,
		title:      "Write simple tests or a manual test checklist in the README",
		hours:      0.5,
		acceptance: []string{"There are 5 to 10 things to check"},
	},
	{
		key:        keyDeploy,
		title:      "Deploy (Vercel or similar) and configure environment variables",
		hours:      0.5,
		acceptance: []string{"Anyone can try it from a URL"},
		dependsOn:  []string{keyCoreUI},
	},
	{
		key:        keyDemo,
		title:      "Prepare demo sample data and a demo script",
		hours:      0.5,
		acceptance: []string{"The value comes across in 30 seconds"},
	},
	{
		key:        keyReadme,
		title:      "Polish the README (overview, usage, demo, architecture)",
		hours:      0.5,
		acceptance: []string{"A first-time reader can run it"},
	},
}

// maxConstraintRunes is how much of the constraints field is echoed into its task title.
const maxConstraintRunes = 60

// Ellipsis marks a truncated echo.
const Ellipsis = "…"

// extras builds the input-derived templates, one per non-empty field, in
// constraints, duration, team order. Values must already be trimmed.
func extras(constraints, duration, team string) []template {
	var out []template
	if constraints != "" {
		out = append(out, template{
			key:        "constraints",
			title:      "Check the constraints are respected (" + truncate(constraints, maxConstraintRunes) + ")",
			hours:      0.5,
			acceptance: []string{"No constraint is violated"},
		})
	}
	if duration != "" {
		out = append(out, template{
			key:        "duration",
			title:      "Adjust the schedule (duration: " + duration + ")",
			hours:      0.25,
			acceptance: []string{"Split into pieces that fit the deadline"},
		})
	}
	if team != "" {
		out = append(out, template{
			key:        "team",
			title:      "Assign roles (team: " + team + ")",
			hours:      0.25,
			acceptance: []string{"Owner, reviewer and operator are clear"},
		})
	}
	return out
}

// truncate keeps the first n runes of s, appending Ellipsis when anything was cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + Ellipsis
}
