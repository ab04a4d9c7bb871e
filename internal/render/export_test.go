package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablasso/prdkanban/internal/board"
)

func TestExportJSON_Sample(t *testing.T) {
	doc := sampleDocument()
	doc.Tasks = doc.Tasks[:2]

	want := `{
  "title": "PRD → Kanban: Ship MVP",
  "createdAt": "2026-10-15T09:30:00.000Z",
  "input": {
    "goal": "Ship MVP",
    "constraints": "",
    "duration": "2 days",
    "team": ""
  },
  "columns": [
    {
      "key": "todo",
      "title": "Todo"
    },
    {
      "key": "doing",
      "title": "Doing"
    },
    {
      "key": "done",
      "title": "Done"
    }
  ],
  "tasks": [
    {
      "id": "T-01",
      "title": "Scope",
      "status": "todo",
      "estimateHours": 1,
      "acceptance": [
        "Written down",
        "Reviewed"
      ]
    },
    {
      "id": "T-02",
      "title": "Build",
      "status": "done",
      "estimateHours": 0.25,
      "dependsOn": [
        "T-01"
      ]
    }
  ]
}
`
	got, err := ExportJSON(doc)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExportJSON_DoesNotEscapeHTML(t *testing.T) {
	doc := board.GenerateAt(board.Input{Constraints: "a < b & c > d"}, fixedNow)
	got, err := ExportJSON(doc)
	require.NoError(t, err)
	assert.Contains(t, got, `"constraints": "a < b & c > d"`)
}

func TestExportJSON_EmptyDocument(t *testing.T) {
	got, err := ExportJSON(board.Document{CreatedAt: fixedNow})
	require.NoError(t, err)
	assert.Contains(t, got, `"columns": []`)
	assert.Contains(t, got, `"tasks": []`)
}

func TestRoundTrip(t *testing.T) {
	inputs := []board.Input{
		{},
		{Goal: "Ship MVP", Duration: "2 days"},
		{Goal: " g ", Constraints: strings.Repeat("制約", 40), Duration: "d", Team: "a: b\n- c"},
		{Goal: "ship \xff mvp", Team: "a\xfeb"},
	}
	now := time.Date(2026, 10, 15, 9, 30, 12, 345678901, time.UTC)

	for _, in := range inputs {
		doc := board.GenerateAt(in, now)

		t.Run("json/"+in.Goal, func(t *testing.T) {
			text, err := ExportJSON(doc)
			require.NoError(t, err)
			got, err := ParseJSON([]byte(text))
			require.NoError(t, err)
			assert.True(t, got.CreatedAt.Equal(doc.CreatedAt))
			assert.Equal(t, doc, got)
		})

		t.Run("yaml/"+in.Goal, func(t *testing.T) {
			text, err := ExportYAML(doc)
			require.NoError(t, err)
			got, err := ParseYAML([]byte(text))
			require.NoError(t, err)
			assert.Equal(t, doc, got)
		})
	}
}

func TestRoundTrip_KeepsNonTodoStatuses(t *testing.T) {
	doc := sampleDocument()
	text, err := ExportJSON(doc)
	require.NoError(t, err)
	got, err := Parse([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, doc, got)
	assert.Equal(t, Outline(doc), Outline(got))
}

func TestExportYAML_Shape(t *testing.T) {
	doc := sampleDocument()
	doc.Tasks = doc.Tasks[1:2]
	got, err := ExportYAML(doc)
	require.NoError(t, err)

	want := `title: 'PRD → Kanban: Ship MVP'
createdAt: "2026-10-15T09:30:00.000Z"
input:
  goal: Ship MVP
  constraints: ""
  duration: 2 days
  team: ""
columns:
  - key: todo
    title: Todo
  - key: doing
    title: Doing
  - key: done
    title: Done
tasks:
  - id: T-02
    title: Build
    status: done
    estimateHours: 0.25
    dependsOn:
      - T-01
`
	assert.Equal(t, want, got)
}

func TestParse_DetectsFormat(t *testing.T) {
	doc := sampleDocument()

	jsonText, err := ExportJSON(doc)
	require.NoError(t, err)
	yamlText, err := ExportYAML(doc)
	require.NoError(t, err)

	for name, text := range map[string]string{
		"json":          jsonText,
		"json indented": "\n  " + jsonText,
		"yaml":          yamlText,
	} {
		t.Run(name, func(t *testing.T) {
			got, err := Parse([]byte(text))
			require.NoError(t, err)
			assert.Equal(t, doc, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"bad json", `{"title": `, "unmarshaling JSON"},
		{"bad yaml", "title: [unclosed", "unmarshaling YAML"},
		{"missing timestamp", `{"title": "x"}`, "parsing createdAt"},
		{"bad timestamp", `{"title": "x", "createdAt": "yesterday"}`, "parsing createdAt"},
		{
			"unknown task status",
			`{"createdAt": "2026-10-15T09:30:00.000Z", "tasks": [{"id": "T-01", "title": "x", "status": "blocked"}]}`,
			`task T-01: unknown status "blocked"`,
		},
		{
			"unknown column key",
			"createdAt: \"2026-10-15T09:30:00.000Z\"\ncolumns:\n  - key: later\n    title: Later\n",
			`column "Later": unknown status "later"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"outline", FormatOutline},
		{"md", FormatOutline},
		{"Markdown", FormatOutline},
		{"json", FormatJSON},
		{" JSON ", FormatJSON},
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("csv")
	assert.EqualError(t, err, `unknown format "csv" (want outline, json or yaml)`)
}

func TestRender(t *testing.T) {
	doc := sampleDocument()
	for _, f := range Formats {
		out, err := Render(doc, f)
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	}
	_, err := Render(doc, Format("csv"))
	assert.Error(t, err)
}

func TestFormatLabelAndExtension(t *testing.T) {
	assert.Equal(t, "MD", FormatOutline.Label())
	assert.Equal(t, "JSON", FormatJSON.Label())
	assert.Equal(t, "YAML", FormatYAML.Label())
	assert.Equal(t, ".md", FormatOutline.Extension())
	assert.Equal(t, ".json", FormatJSON.Extension())
	assert.Equal(t, ".yaml", FormatYAML.Extension())
}
