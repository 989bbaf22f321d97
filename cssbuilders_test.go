package beaddeck

import (
	"strings"
	"testing"
)

func TestBuildLayoutCSS(t *testing.T) {
	t.Parallel()

	css := buildLayoutCSS()

	for _, want := range []string{
		"." + classPageBreak + " {",
		"page-break-after: always",
		"break-after: avoid",
		"img." + classImage + " {",
		"break-inside: avoid",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("buildLayoutCSS() missing %q", want)
		}
	}
}

func TestInches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{6, "6.00in"},
		{4, "4.00in"},
		{0.2, "0.20in"},
		{0.3, "0.30in"},
	}

	for _, tt := range tests {
		if got := inches(tt.in); got != tt.want {
			t.Errorf("inches(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
