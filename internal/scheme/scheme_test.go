package scheme_test

import (
	"errors"
	"strings"
	"testing"

	"tonearm/internal/apperr"
	"tonearm/internal/scheme"
)

func TestBuiltinOrderAndValues(t *testing.T) {
	want := []string{
		"Löfgren A / Baerwald: 66.0 mm / 120.9 mm",
		"Löfgren B: 70.3 mm / 116.6 mm",
		"Stevenson: 60.0 mm / 117.0 mm",
		"Rega (factory): 60.0 mm / 120.0 mm",
		"Technics (JIS-based): 60.0 mm / 116.0 mm",
	}
	got := scheme.Builtin()
	if len(got) != len(want) {
		t.Fatalf("expected %d schemes, got %d", len(want), len(got))
	}
	for i, s := range got {
		if s.String() != want[i] {
			t.Fatalf("scheme %d: got %q want %q", i, s.String(), want[i])
		}
		if s.InnerNull >= s.OuterNull {
			t.Fatalf("scheme %q has inner >= outer", s.Name)
		}
	}
}

func TestBuiltinReturnsCopy(t *testing.T) {
	first := scheme.Builtin()
	first[0].InnerNull = 1
	first[0].Name = "mutated"
	second := scheme.Builtin()
	if second[0].Name != "Löfgren A / Baerwald" || second[0].InnerNull != 66.0 {
		t.Fatalf("built-in table was mutated: %+v", second[0])
	}
}

func TestFormatMillimetres(t *testing.T) {
	cases := map[float64]string{
		66:    "66.0",
		120.9: "120.9",
		70.3:  "70.3",
		0.5:   "0.5",
		1e21:  "1000000000000000000000.0",
	}
	for in, want := range cases {
		if got := scheme.FormatMillimetres(in); got != want {
			t.Fatalf("FormatMillimetres(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestLookup(t *testing.T) {
	cat, err := scheme.NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	for _, want := range scheme.Builtin() {
		got, err := cat.Lookup(want.Name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", want.Name, err)
		}
		if got != want {
			t.Fatalf("Lookup(%q) = %+v, want %+v", want.Name, got, want)
		}
	}
}

func TestLookupRequiresExactName(t *testing.T) {
	cat, err := scheme.NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	for _, query := range []string{
		"lofgren b",
		"Lofgren B",
		"  LÖFGREN   A / baerwald ",
		"rega (FACTORY)",
		"Stevenson ",
		"",
	} {
		_, err := cat.Lookup(query)
		if !errors.Is(err, apperr.ErrUnknownScheme) {
			t.Fatalf("Lookup(%q): expected ErrUnknownScheme, got %v", query, err)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	cat, err := scheme.NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	_, err = cat.Lookup("Unknown")
	if !errors.Is(err, apperr.ErrUnknownScheme) {
		t.Fatalf("expected ErrUnknownScheme, got %v", err)
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, `unknown scheme "Unknown" (choose from: `) {
		t.Fatalf("unexpected message: %q", msg)
	}
	if !strings.Contains(msg, "Stevenson") || !strings.Contains(msg, "Technics (JIS-based)") {
		t.Fatalf("expected choices in message: %q", msg)
	}
}

func TestCatalogCustomSchemes(t *testing.T) {
	cat, err := scheme.NewCatalog(scheme.Scheme{Name: " Workshop ", InnerNull: 62, OuterNull: 118})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	all := cat.All()
	if len(all) != len(scheme.Builtin())+1 {
		t.Fatalf("unexpected scheme count: %d", len(all))
	}
	if all[len(all)-1].Name != "Workshop" {
		t.Fatalf("expected custom scheme last, got %q", all[len(all)-1].Name)
	}
	got, err := cat.Lookup("Workshop")
	if err != nil {
		t.Fatalf("Lookup custom: %v", err)
	}
	if inner, outer := got.Nulls(); inner != 62 || outer != 118 {
		t.Fatalf("unexpected nulls %v/%v", inner, outer)
	}
	names := cat.Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestCatalogRejectsBadCustomSchemes(t *testing.T) {
	cases := []struct {
		name   string
		scheme scheme.Scheme
		substr string
	}{
		{name: "blank name", scheme: scheme.Scheme{Name: " ", InnerNull: 60, OuterNull: 120}, substr: "name must be set"},
		{name: "shadows builtin", scheme: scheme.Scheme{Name: "lofgren b", InnerNull: 60, OuterNull: 120}, substr: "already defined"},
		{name: "non positive", scheme: scheme.Scheme{Name: "x", InnerNull: 0, OuterNull: 120}, substr: "must be positive"},
		{name: "inverted", scheme: scheme.Scheme{Name: "x", InnerNull: 120, OuterNull: 60}, substr: "smaller than outer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scheme.NewCatalog(tc.scheme)
			if err == nil || !strings.Contains(err.Error(), tc.substr) {
				t.Fatalf("expected error containing %q, got %v", tc.substr, err)
			}
		})
	}
}
