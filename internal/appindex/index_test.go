package appindex

import (
	"context"
	"errors"
	"testing"
)

func TestIndexAddNormalizes(t *testing.T) {
	ix := NewIndex()
	ix.Add("  Firefox ")
	ix.Add("ORG.MOZILLA.FIREFOX")
	ix.Add("firefox") // duplicate after lowercase
	ix.Add("")
	ix.Add("   ")

	if ix.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ix.Len())
	}
	if !ix.Has("firefox") {
		t.Error("expected firefox to be indexed")
	}
	if !ix.Has("Firefox") {
		t.Error("Has should normalize its argument")
	}
	if !ix.Has("org.mozilla.firefox") {
		t.Error("expected bundle identifier to be indexed")
	}
}

func TestIndexContainsSubstring(t *testing.T) {
	ix := NewIndex()
	ix.Add("com.spotify.client")
	ix.Add("Visual Studio Code")

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"partial id", "spotify", true},
		{"partial name", "studio", true},
		{"case folded", "SPOTIFY", true},
		{"absent", "blender", false},
		{"empty never matches", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ix.ContainsSubstring(tt.query); got != tt.want {
				t.Errorf("ContainsSubstring(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestIndexEntriesSorted(t *testing.T) {
	ix := NewIndex()
	ix.Add("zoom")
	ix.Add("alacritty")
	ix.Add("firefox")

	entries := ix.Entries()
	want := []string{"alacritty", "firefox", "zoom"}
	if len(entries) != len(want) {
		t.Fatalf("Entries() = %v, want %v", entries, want)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("Entries()[%d] = %q, want %q", i, entries[i], want[i])
		}
	}
}

type fakeSource struct {
	name   string
	tokens []string
	err    error
}

func (s fakeSource) Name() string { return s.name }

func (s fakeSource) Contribute(context.Context) ([]string, error) {
	return s.tokens, s.err
}

func TestBuildUnionsSources(t *testing.T) {
	ix := Build(context.Background(),
		fakeSource{name: "a", tokens: []string{"Firefox", "org.mozilla.firefox"}},
		fakeSource{name: "b", tokens: []string{"firefox", "Spotify"}},
	)

	if ix.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ix.Len())
	}
	for _, token := range []string{"firefox", "org.mozilla.firefox", "spotify"} {
		if !ix.Has(token) {
			t.Errorf("expected %q in index", token)
		}
	}
}

func TestBuildToleratesFailingSource(t *testing.T) {
	ix := Build(context.Background(),
		fakeSource{name: "broken", err: errors.New("facility disabled")},
		fakeSource{name: "ok", tokens: []string{"Slack"}},
	)

	if !ix.Has("slack") {
		t.Error("healthy source should still contribute after another fails")
	}
	if ix.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ix.Len())
	}
}

func TestBuildPartialTokensFromFailingSource(t *testing.T) {
	// A source may return tokens alongside an error; they still count.
	ix := Build(context.Background(),
		fakeSource{name: "partial", tokens: []string{"Zoom"}, err: errors.New("truncated")},
	)
	if !ix.Has("zoom") {
		t.Error("tokens returned before the failure should be indexed")
	}
}
