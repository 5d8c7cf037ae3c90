package suggest

import "testing"

func TestClosest(t *testing.T) {
	candidates := []string{"hero-launch", "social-proof", "testimonial"}

	tests := []struct {
		input string
		want  string
	}{
		{"hero-lunch", "hero-launch"},
		{"Testimonal", "testimonial"},
		{"social-proof", "social-proof"},
		{"pricing-table", ""},
		{"", ""},
		{"  ", ""},
	}

	for _, tt := range tests {
		if got := Closest(tt.input, candidates); got != tt.want {
			t.Errorf("Closest(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestClosest_ShortInputsNeedNearMatch(t *testing.T) {
	if got := Closest("fb", []string{"fb-ad"}); got != "" {
		t.Errorf("expected no suggestion for distant short input, got %q", got)
	}
	if got := Closest("fbad", []string{"fb-ad"}); got != "fb-ad" {
		t.Errorf("expected fb-ad, got %q", got)
	}
}

func TestClosest_NoCandidates(t *testing.T) {
	if got := Closest("anything", nil); got != "" {
		t.Errorf("expected empty suggestion, got %q", got)
	}
}
