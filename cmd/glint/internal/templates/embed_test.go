package templates

import (
	"strings"
	"testing"
)

func TestRenderSubstitutesModulePath(t *testing.T) {
	out, err := Render("gen/app.go.tmpl", Data{
		ModulePath: "example.com/demo",
		AppName:    "demo",
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, want := range []string{
		`"example.com/demo/components"`,
		`"example.com/demo/context"`,
		"demo",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected rendered entry to contain %q", want)
		}
	}
	if strings.Contains(out, "{{") {
		t.Error("expected no unexpanded template actions")
	}
}

func TestRenderAllScaffoldTemplates(t *testing.T) {
	data := Data{ModulePath: "example.com/demo", AppName: "demo"}
	tests := []struct {
		path string
		want string
	}{
		{"gen/theme.go.tmpl", "package context"},
		{"gen/counter_card.go.tmpl", "package components"},
		{"gen/width_card.go.tmpl", "package components"},
	}
	for _, tt := range tests {
		out, err := Render(tt.path, data)
		if err != nil {
			t.Fatalf("render %s failed: %v", tt.path, err)
		}
		if !strings.Contains(out, tt.want) {
			t.Errorf("expected %s to contain %q", tt.path, tt.want)
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, err := Render("gen/nope.tmpl", Data{}); err == nil {
		t.Error("expected error for unknown template")
	}
}
