package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != f {
			t.Errorf("ParseFormat(%q) = %s", f, got)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(toml) = %v", err)
	}
	var f Format
	if err := f.UnmarshalText([]byte("x")); err != nil || f != XMLFormat {
		t.Errorf("UnmarshalText(x) = %s, %v", f, err)
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a/b.json", JSONFormat},
		{"b.XML", XMLFormat},
		{"settings.ini", INIFormat},
		{"app.conf", INIFormat},
		{"data.csv", CSVFormat},
		{"c.yml", YAMLFormat},
	}
	for _, tt := range tests {
		got, err := FromPath(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FromPath(%q) = %s, %v", tt.path, got, err)
		}
	}
	if _, err := FromPath("README"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("FromPath(README) = %v", err)
	}
	if TreeFormat.CanParse() || !CSVFormat.CanParse() {
		t.Error("CanParse")
	}
}
