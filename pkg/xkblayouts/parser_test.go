package xkblayouts

import (
	"codeberg.org/miketth/hyprtint/pkg/hyprtint"
	"codeberg.org/miketth/hyprtint/pkg/protocol"
	"strings"
	"testing"
)

func loadTestRegistry(t *testing.T) *XkbConfigRegistry {
	t.Helper()
	r, err := ParseLayouts("testdata/evdev.xml")
	if err != nil {
		t.Fatalf("ParseLayouts: %v", err)
	}
	return r
}

func TestLayoutForName(t *testing.T) {
	r := loadTestRegistry(t)

	tests := []struct {
		name   string
		want   hyprtint.LayoutID
		wantOK bool
	}{
		{name: "English (US)", want: "us", wantOK: true},
		{name: "English (US, intl., with dead keys)", want: "us(intl)", wantOK: true},
		{name: "Russian", want: "ru", wantOK: true},
		{name: "Russian (phonetic)", want: ID("ru", "phonetic"), wantOK: true},
		{name: "German", want: "de", wantOK: true},
		{name: "Klingon", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.LayoutForName(tt.name)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("LayoutForName(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	r := loadTestRegistry(t)

	tests := []struct {
		layout, variant, want string
	}{
		{"us", "", "English (US)"},
		{"ru", "phonetic", "Russian (phonetic)"},
		{"ru", "missing", ""},
		{"xx", "", ""},
	}
	for _, tt := range tests {
		if got := r.DisplayName(tt.layout, tt.variant); got != tt.want {
			t.Fatalf("DisplayName(%q, %q) = %q, want %q", tt.layout, tt.variant, got, tt.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse(strings.NewReader("<xkbConfigRegistry>")); err == nil {
		t.Fatal("expected error for truncated xml")
	}
	if _, err := ParseLayouts("testdata/missing.xml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestVariantsGetDistinctIDs(t *testing.T) {
	r := loadTestRegistry(t)

	plain, _ := r.LayoutForName("English (US)")
	intl, _ := r.LayoutForName("English (US, intl., with dead keys)")
	if plain == intl {
		t.Fatalf("us and us(intl) share the ID %q", plain)
	}

	ru, _ := r.LayoutForName("Russian")
	phonetic, _ := r.LayoutForName("Russian (phonetic)")
	if ru == phonetic {
		t.Fatalf("ru and ru(phonetic) share the ID %q", ru)
	}
}

func TestID(t *testing.T) {
	tests := []struct {
		layout, variant string
		want            hyprtint.LayoutID
	}{
		{"us", "", "us"},
		{"us", "intl", "us(intl)"},
		{"de", "nodeadkeys", ID("de", "nodeadkeys")},
		{"latam", "deadtilde", ID("latam", "deadtilde")},
	}

	seen := make(map[hyprtint.LayoutID]string)
	for _, tt := range tests {
		got := ID(tt.layout, tt.variant)
		if got != tt.want {
			t.Fatalf("ID(%q, %q) = %q, want %q", tt.layout, tt.variant, got, tt.want)
		}
		if _, err := protocol.PackLayout(got); err != nil {
			t.Fatalf("ID(%q, %q) = %q is not transportable: %v", tt.layout, tt.variant, got, err)
		}
		if prev, ok := seen[got]; ok {
			t.Fatalf("ID %q used by %s and %s(%s)", got, prev, tt.layout, tt.variant)
		}
		seen[got] = tt.layout + "(" + tt.variant + ")"
	}

	if got := ID("de", "nodeadkeys"); !strings.HasPrefix(string(got), "de~") || len(got) != 8 {
		t.Fatalf("ID(de, nodeadkeys) = %q, want de~ and a hash", got)
	}
	if got := ID("latam", "deadtilde"); !strings.HasPrefix(string(got), "lata~") {
		t.Fatalf("ID(latam, deadtilde) = %q, want a four byte code prefix", got)
	}
	if ID("ru", "phonetic") == ID("ru", "typewriter") {
		t.Fatal("ru variants share an ID")
	}
}
