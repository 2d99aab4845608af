package model

import (
	"encoding/json"
	"testing"
)

func TestParsePrice_RoundTripsTwoDecimals(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12.50", "12.50"},
		{"12,50", "12.50"},
		{"0.1", "0.10"},
		{"7", "7.00"},
		{" 3.999 ", "4.00"},
		{"0", "0.00"},
	}
	for _, tc := range cases {
		p, err := ParsePrice(tc.in)
		if err != nil {
			t.Fatalf("ParsePrice(%q): %v", tc.in, err)
		}
		if got := p.String(); got != tc.want {
			t.Errorf("ParsePrice(%q).String() = %q, want %q", tc.in, got, tc.want)
		}
		// Parsing the rendered form again must be lossless.
		p2, err := ParsePrice(p.String())
		if err != nil {
			t.Fatalf("re-parse %q: %v", p.String(), err)
		}
		if !p.Equal(p2) {
			t.Errorf("round-trip of %q lost precision: %s != %s", tc.in, p, p2)
		}
	}
}

func TestParsePrice_Rejects(t *testing.T) {
	for _, in := range []string{"", "abc", "-1.00", "1.2.3"} {
		if _, err := ParsePrice(in); err == nil {
			t.Errorf("ParsePrice(%q): expected error", in)
		}
	}
}

func TestPrice_Wire(t *testing.T) {
	p, err := ParsePrice("12.5")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Wire(); got != "12,50" {
		t.Errorf("Wire() = %q, want %q", got, "12,50")
	}
}

func TestPrice_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"12.50"`, "12.50"},
		{`"12,50"`, "12.50"},
		{`12.5`, "12.50"},
		{`7`, "7.00"},
	}
	for _, tc := range cases {
		var p Price
		if err := json.Unmarshal([]byte(tc.in), &p); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if got := p.String(); got != tc.want {
			t.Errorf("unmarshal %s = %q, want %q", tc.in, got, tc.want)
		}
	}
	var p Price
	if err := json.Unmarshal([]byte(`true`), &p); err == nil {
		t.Error("unmarshal true: expected error")
	}
}

func TestPrice_MarshalJSON(t *testing.T) {
	p, _ := ParsePrice("9.9")
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"9.90"` {
		t.Errorf("marshal = %s, want %q", b, `"9.90"`)
	}
}
