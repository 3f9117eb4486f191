package templates

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	tmpl, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	for _, name := range []string{"quiz.tmpl", "results.tmpl", "header", "footer"} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("template %q not defined", name)
		}
	}

	var sb strings.Builder
	data := map[string]interface{}{"Title": "t", "CSRFToken": "tok", "LoadError": "boom"}
	if err := tmpl.ExecuteTemplate(&sb, "quiz.tmpl", data); err != nil {
		t.Fatalf("ExecuteTemplate() error = %v", err)
	}
	if !strings.Contains(sb.String(), "boom") {
		t.Error("load error message not rendered")
	}
}
