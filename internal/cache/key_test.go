package cache

import (
	"strings"
	"testing"
)

func TestKey_Deterministic(t *testing.T) {
	a := Key("salaries", map[string]string{"industry": "tech"})
	b := Key("salaries", map[string]string{"industry": "tech"})
	if a != b {
		t.Fatalf("expected identical keys, got %q / %q", a, b)
	}
}

func TestKey_VariesWithQueryAndParams(t *testing.T) {
	base := Key("salaries", map[string]string{"industry": "tech"})
	if Key("skills", map[string]string{"industry": "tech"}) == base {
		t.Fatal("expected different queries to produce different keys")
	}
	if Key("salaries", map[string]string{"industry": "health"}) == base {
		t.Fatal("expected different params to produce different keys")
	}
}

func TestKey_Prefix(t *testing.T) {
	key := Key("summary", nil)
	if !strings.HasPrefix(key, "market:summary:") {
		t.Fatalf("unexpected key shape: %q", key)
	}
}

func TestNormalizeParam(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Technology  ", "technology"},
		{"machine   Learning", "machine learning"},
		{"", ""},
		{"\tSE\n", "se"},
	}
	for _, tc := range cases {
		if got := NormalizeParam(tc.in); got != tc.want {
			t.Fatalf("NormalizeParam(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestKey_EquivalentSpellingsShareEntry(t *testing.T) {
	a := Key("salaries", map[string]string{"industry": NormalizeParam("  TECH  ")})
	b := Key("salaries", map[string]string{"industry": NormalizeParam("tech")})
	if a != b {
		t.Fatalf("expected normalized spellings to collide, got %q / %q", a, b)
	}
}
