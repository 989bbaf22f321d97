package assets

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestEmbeddedLoader_LoadStyle
// ---------------------------------------------------------------------------

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	t.Run("deck style", func(t *testing.T) {
		t.Parallel()

		css, err := loader.LoadStyle(DefaultStyleName)
		if err != nil {
			t.Fatalf("LoadStyle(%q) error = %v", DefaultStyleName, err)
		}
		for _, want := range []string{"h1.deck-title", "#0000ff", "h1.deck-heading", "#008000", "img.deck-image"} {
			if !strings.Contains(css, want) {
				t.Errorf("deck style missing %q", want)
			}
		}
	})

	tests := []struct {
		name    string
		style   string
		wantErr error
	}{
		{name: "unknown style", style: "corporate", wantErr: ErrStyleNotFound},
		{name: "empty name", style: "", wantErr: ErrInvalidAssetName},
		{name: "path traversal", style: "../deck", wantErr: ErrInvalidAssetName},
		{name: "extension given", style: "deck.css", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := loader.LoadStyle(tt.style)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
			}
		})
	}
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	names := StyleNames()
	found := false
	for _, n := range names {
		if n == DefaultStyleName {
			found = true
		}
	}
	if !found {
		t.Errorf("StyleNames() = %v, want it to contain %q", names, DefaultStyleName)
	}
}
