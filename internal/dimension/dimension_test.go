package dimension

import (
	"errors"
	"testing"
)

func TestAllRoundTrip(t *testing.T) {
	all := All()
	if len(all) != Count {
		t.Fatalf("All() has %d entries, want %d", len(all), Count)
	}
	if all[0] != Global {
		t.Errorf("index 0 = %s, want global", all[0])
	}
	for _, d := range all {
		parsed, err := Parse(d.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", d.String(), err)
		}
		if parsed != d {
			t.Errorf("round trip %s -> %s", d, parsed)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("telepathy"); !errors.Is(err, ErrUnknownDimension) {
		t.Errorf("Parse(unknown) = %v, want ErrUnknownDimension", err)
	}
}

func TestTextMarshal(t *testing.T) {
	b, err := Grammar.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var d Dimension
	if err := d.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if d != Grammar {
		t.Errorf("round trip = %s, want grammar", d)
	}

	if _, err := Dimension(200).MarshalText(); err == nil {
		t.Error("expected error marshaling out-of-range dimension")
	}
	if err := d.UnmarshalText([]byte("nope")); err == nil {
		t.Error("expected error unmarshaling unknown name")
	}
}
