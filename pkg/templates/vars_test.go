package templates

import (
	"errors"
	"strings"
	"testing"
)

func TestReplaceVars(t *testing.T) {
	tests := []struct {
		name string
		html string
		vars Vars
		want string
	}{
		{
			name: "replaces supplied keys",
			html: "<h1>{{HEADLINE}}</h1><p>{{PRODUCT_NAME}}</p>",
			vars: Vars{"HEADLINE": "Ship Faster", "PRODUCT_NAME": "Acme"},
			want: "<h1>Ship Faster</h1><p>Acme</p>",
		},
		{
			name: "substitutes keys in sorted order",
			html: "<p>{{A}}</p>",
			vars: Vars{"B": "x", "A": "{{B}}"},
			want: "<p>x</p>",
		},
		{
			name: "replaces every occurrence",
			html: "{{A}} and {{A}}",
			vars: Vars{"A": "x"},
			want: "x and x",
		},
		{
			name: "strips unknown tokens",
			html: "<h1>{{HEADLINE}}</h1><p>{{SUBLINE}}</p>",
			vars: Vars{"HEADLINE": "Hi"},
			want: "<h1>Hi</h1><p></p>",
		},
		{
			name: "no escaping",
			html: "<div>{{BODY}}</div>",
			vars: Vars{"BODY": "<b>bold</b> & more"},
			want: "<div><b>bold</b> & more</div>",
		},
		{
			name: "keys with regex metacharacters match literally",
			html: "{{A.B}} {{AXB}}",
			vars: Vars{"A.B": "dot"},
			want: "dot ",
		},
		{
			name: "lowercase tokens are not stripped",
			html: "{{lower}}",
			vars: Vars{},
			want: "{{lower}}",
		},
		{
			name: "empty value",
			html: "[{{X}}]",
			vars: Vars{"X": ""},
			want: "[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReplaceVars(tt.html, tt.vars); got != tt.want {
				t.Errorf("ReplaceVars() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReplaceVars_NoPlaceholderSurvives(t *testing.T) {
	html := "{{HEADLINE}} {{SUBLINE}} {{CTA_TEXT}} {{STAT_1_NUMBER}} {{PRODUCT_NAME}}"
	got := ReplaceVars(html, Vars{"CTA_TEXT": "Go"})
	if strings.Contains(got, "{{") {
		t.Errorf("placeholder survived substitution: %q", got)
	}
	if !strings.Contains(got, "Go") {
		t.Errorf("expected supplied value in output: %q", got)
	}
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders("{{A}} {{B_2}} {{A}} {{lower}}")
	want := []string{"A", "B_2"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Placeholders() = %v, want %v", got, want)
	}
}

func TestParseVarsJSON(t *testing.T) {
	vars, err := ParseVarsJSON("--vars", []byte(`{
		"HEADLINE": "Ship Faster",
		"HOURS": 23,
		"PRICE": 9.5,
		"LIVE": true,
		"EMPTY": null,
		"TAGS": ["a", 1, false]
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"HEADLINE": "Ship Faster",
		"HOURS":    "23",
		"PRICE":    "9.5",
		"LIVE":     "true",
		"EMPTY":    "",
		"TAGS":     "a,1,false",
	}
	for k, v := range want {
		if vars[k] != v {
			t.Errorf("vars[%s] = %q, want %q", k, vars[k], v)
		}
	}
}

func TestParseVarsJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `{"HEADLINE": `},
		{"array", `["a"]`},
		{"null", `null`},
		{"nested object", `{"A": {"B": 1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVarsJSON("--vars", []byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			var ive *InvalidVarsError
			if !errors.As(err, &ive) {
				t.Fatalf("expected *InvalidVarsError, got %T", err)
			}
			if !strings.Contains(err.Error(), "--vars") {
				t.Errorf("expected source in message, got %q", err.Error())
			}
		})
	}
}

func TestVarsFromMap_YAMLScalars(t *testing.T) {
	vars, err := VarsFromMap("batch.yaml", map[string]any{
		"HOURS":   23,
		"BIG":     uint64(1 << 40),
		"RATIO":   0.25,
		"CTA":     "Claim it →",
		"BULLETS": []any{"Fast", "Cheap"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Vars{"HOURS": "23", "BIG": "1099511627776", "RATIO": "0.25", "CTA": "Claim it →", "BULLETS": "Fast,Cheap"}
	for k, v := range want {
		if vars[k] != v {
			t.Errorf("vars[%s] = %q, want %q", k, vars[k], v)
		}
	}

	if _, err := VarsFromMap("batch.yaml", map[string]any{"A": map[string]any{"B": 1}}); err == nil {
		t.Error("expected nested map to be rejected")
	}
}
