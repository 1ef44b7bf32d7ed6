package render

import (
	"errors"
	"strings"
	"testing"
)

func TestEngine_Render(t *testing.T) {
	e := New()

	tests := []struct {
		name      string
		template  string
		variables map[string]any
		want      string
		wantErr   error
	}{
		{
			name:      "plain variables",
			template:  "Hello, {{.name}}!",
			variables: map[string]any{"name": "World"},
			want:      "Hello, World!",
		},
		{
			name:      "filter pipeline",
			template:  "{{.title | xml_escape}}",
			variables: map[string]any{"title": `<a href="x">`},
			want:      "&lt;a href=&quot;x&quot;&gt;",
		},
		{
			name:      "date filter from front-matter string",
			template:  "{{date_to_string .date}}",
			variables: map[string]any{"date": "2011-01-27"},
			want:      "27 Jan 2011",
		},
		{
			name:      "empty template",
			template:  "",
			variables: nil,
			wantErr:   ErrEmpty,
		},
		{
			name:      "parse error",
			template:  "{{.open",
			variables: nil,
			wantErr:   ErrParse,
		},
		{
			name:      "execution error",
			template:  "{{date_to_string .date}}",
			variables: map[string]any{"date": "not a date"},
			wantErr:   ErrExecute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Render(tt.template, tt.variables)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEngine_GroupByPipeline(t *testing.T) {
	e := New()

	vars := map[string]any{
		"posts": []any{
			map[string]any{"cat": "go", "title": "one"},
			map[string]any{"cat": "web", "title": "two"},
			map[string]any{"cat": "go", "title": "three"},
		},
	}
	tmpl := `{{range group_by .posts "cat"}}[{{.Name}}: {{len .Items}}]{{end}}`

	got, err := e.Render(tmpl, vars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[go: 2][web: 1]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEngine_AddFunc(t *testing.T) {
	e := New()
	e.AddFunc("shout", strings.ToUpper)

	got, err := e.Render("{{shout .word}}", map[string]any{"word": "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "HI" {
		t.Errorf("got %q, want %q", got, "HI")
	}
}

func TestEngine_AddFuncDoesNotLeakAcrossEngines(t *testing.T) {
	a := New()
	b := New()
	a.AddFunc("only_a", func() string { return "a" })

	if _, err := b.Render("{{only_a}}", nil); err == nil {
		t.Error("expected parse error for function added to another engine")
	}
}
