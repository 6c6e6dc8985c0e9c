package main

import (
	"errors"
	"reflect"
	"testing"

	"tonearm/internal/apperr"
)

func TestNormalizeArgs(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "plain",
			in:   []string{"212", "--scheme", "Stevenson"},
			want: []string{"212", "--scheme", "Stevenson"},
		},
		{
			name: "nulls pair",
			in:   []string{"212", "--nulls", "66", "120.9"},
			want: []string{"212", "--nulls=66,120.9"},
		},
		{
			name: "last nulls wins",
			in:   []string{"212", "--nulls", "1", "2", "--nulls=66,120.9"},
			want: []string{"212", "--nulls=66,120.9"},
		},
		{
			name: "last nulls wins with negative pivot",
			in:   []string{"--nulls=1,2", "-5", "--nulls", "66", "120.9"},
			want: []string{"--nulls=66,120.9", "--", "-5"},
		},
		{
			name: "negative pivot moves positionals",
			in:   []string{"-5", "--scheme", "Stevenson"},
			want: []string{"--scheme", "Stevenson", "--", "-5"},
		},
		{
			name: "negative null stays inside flag",
			in:   []string{"212", "--nulls", "-1", "40"},
			want: []string{"212", "--nulls=-1,40"},
		},
		{
			name: "shorthand value consumed",
			in:   []string{"-o", "json", "-5", "--nulls", "1", "2"},
			want: []string{"-o", "json", "--nulls=1,2", "--", "-5"},
		},
		{
			name: "bool flag does not consume",
			in:   []string{"--list-schemes", "-5"},
			want: []string{"--list-schemes", "--", "-5"},
		},
		{
			name: "subcommand untouched",
			in:   []string{"config", "init", "--path", "x.toml"},
			want: []string{"config", "init", "--path", "x.toml"},
		},
		{
			name: "explicit terminator",
			in:   []string{"--scheme", "Stevenson", "--", "-5"},
			want: []string{"--scheme", "Stevenson", "--", "-5"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalizeArgs(newRootCommand(), tc.in)
			if err != nil {
				t.Fatalf("normalizeArgs: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("normalizeArgs(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeArgsRejectsShortNulls(t *testing.T) {
	for _, in := range [][]string{
		{"212", "--nulls", "60"},
		{"212", "--nulls"},
		{"212", "--nulls", "60", "--scheme", "x"},
	} {
		_, err := normalizeArgs(newRootCommand(), in)
		if !errors.Is(err, apperr.ErrUsage) {
			t.Fatalf("%q: expected usage error, got %v", in, err)
		}
	}
}

func TestRenderErrorLine(t *testing.T) {
	err := apperr.Usage("choose --scheme or provide --nulls")
	if got := renderErrorLine(err, false); got != "error: choose --scheme or provide --nulls" {
		t.Fatalf("unexpected plain line: %q", got)
	}
	got := renderErrorLine(err, true)
	if got != ansiRed+"error: choose --scheme or provide --nulls"+ansiReset {
		t.Fatalf("unexpected coloured line: %q", got)
	}
}
