package element

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/woby-dev/woby/pkg/reactive"
)

func str(s string) *string { return &s }

func TestDecodeAttribute(t *testing.T) {
	tests := []struct {
		name    string
		hint    reactive.TypeHint
		raw     *string
		want    any
		wantErr bool
	}{
		{"number int", reactive.TypeNumber, str("5"), 5, false},
		{"number spaces", reactive.TypeNumber, str(" 42 "), 42, false},
		{"number float", reactive.TypeNumber, str("2.5"), 2.5, false},
		{"number invalid", reactive.TypeNumber, str("abc"), nil, true},
		{"number NaN", reactive.TypeNumber, str("NaN"), nil, true},
		{"number empty", reactive.TypeNumber, str(""), nil, true},
		{"number absent", reactive.TypeNumber, nil, nil, false},
		{"boolean empty", reactive.TypeBoolean, str(""), true, false},
		{"boolean true", reactive.TypeBoolean, str("true"), true, false},
		{"boolean false", reactive.TypeBoolean, str("false"), false, false},
		{"boolean absent", reactive.TypeBoolean, nil, false, false},
		{"boolean invalid", reactive.TypeBoolean, str("yes"), nil, true},
		{"string", reactive.TypeString, str("5"), "5", false},
		{"string absent", reactive.TypeString, nil, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeAttribute(tt.hint, tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAttributeDecode) {
					t.Fatalf("err = %v, want ErrInvalidAttributeDecode", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeAttribute(t *testing.T) {
	type level int
	tests := []struct {
		in      any
		want    string
		present bool
	}{
		{"x", "x", true},
		{7, "7", true},
		{level(3), "3", true},
		{2.5, "2.5", true},
		{float32(0.5), "0.5", true},
		{uint8(9), "9", true},
		{true, "true", true},
		{false, "", false},
		{nil, "", false},
		{[]int{1}, "", false},
	}
	for _, tt := range tests {
		got, present := EncodeAttribute(tt.in)
		if got != tt.want || present != tt.present {
			t.Errorf("EncodeAttribute(%#v) = %q, %v; want %q, %v", tt.in, got, present, tt.want, tt.present)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		hint reactive.TypeHint
		v    any
	}{
		{reactive.TypeNumber, 12},
		{reactive.TypeNumber, -0.25},
		{reactive.TypeBoolean, true},
		{reactive.TypeBoolean, false},
		{reactive.TypeString, "hello world"},
	}
	for _, tt := range tests {
		s, present := EncodeAttribute(tt.v)
		var raw *string
		if present {
			raw = &s
		}
		got, err := DecodeAttribute(tt.hint, raw)
		if err != nil {
			t.Fatalf("decode %v: %v", tt.v, err)
		}
		if got != tt.v {
			t.Errorf("round trip of %#v gave %#v", tt.v, got)
		}
	}
}

func TestKeyPath(t *testing.T) {
	tests := []struct {
		attr, prefix string
		want         []string
	}{
		{"nested-nested-text", "nested-", []string{"nested", "text"}},
		{"style-color", "style-", []string{"color"}},
		{"nested--a", "nested-", []string{"a"}},
		{"nested-", "nested-", nil},
		{"other-x", "nested-", nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, KeyPath(tt.attr, tt.prefix)); diff != "" {
			t.Errorf("KeyPath(%q, %q) mismatch (-want +got):\n%s", tt.attr, tt.prefix, diff)
		}
	}
}

func TestSetPath(t *testing.T) {
	orig := map[string]any{"a": map[string]any{"b": 1}}

	got := setPath(orig, []string{"a", "c", "d"}, "x")
	want := map[string]any{"a": map[string]any{"b": 1, "c": map[string]any{"d": "x"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("set mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"a": map[string]any{"b": 1}}, orig); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}

	pruned := setPath(got, []string{"a", "c", "d"}, nil)
	if diff := cmp.Diff(orig, pruned); diff != "" {
		t.Errorf("delete should prune empty maps (-want +got):\n%s", diff)
	}
}
