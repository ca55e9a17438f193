package dpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *DPath
	}{
		{name: "empty path", input: "", want: nil},
		{name: "dot", input: ".", want: nil},
		{name: "dots", input: "..", want: nil},
		{name: "field", input: "a", want: Field("a")},
		{name: "leading dot", input: ".a", want: Field("a")},
		{
			name:  "nested fields",
			input: "a.b.c",
			want:  &DPath{Field: sp("a"), Next: &DPath{Field: sp("b"), Next: Field("c")}},
		},
		{
			name:  "matrix",
			input: "matrix[0][1]",
			want:  &DPath{Field: sp("matrix"), Next: &DPath{Index: ip(0), Next: Index(1)}},
		},
		{
			name:  "index then field",
			input: "[0].x",
			want:  &DPath{Index: ip(0), Next: Field("x")},
		},
		{
			name:  "dot index",
			input: ".[12]",
			want:  Index(12),
		},
		{
			name:  "empty segments skipped",
			input: "a..[1]...b.",
			want:  &DPath{Field: sp("a"), Next: &DPath{Index: ip(1), Next: Field("b")}},
		},
		{
			name:  "space in name",
			input: "first name",
			want:  Field("first name"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"a[", "a[]", "a[x]", "a[-1]", "a]", "[1", "a[99999999999999999999999]"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if !errors.Is(err, ErrBadPath) {
				t.Errorf("Parse(%q) error = %v, want ErrBadPath", input, err)
			}
		})
	}
}

func TestParseDoesNotRetainInput(t *testing.T) {
	buf := []byte("a.b")
	p, err := Parse(string(buf))
	if err != nil {
		t.Fatal(err)
	}
	buf[0] = 'z'
	if got := p.String(); got != "a.b" {
		t.Errorf("got %q after mutating input", got)
	}
}

func TestString(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", "."},
		{".a", "a"},
		{"a..b", "a.b"},
		{"matrix[0][1]", "matrix[0][1]"},
		{".[0].x", "[0].x"},
		{"pontos.p1", "pontos.p1"},
	}
	for _, tt := range tests {
		if got := MustParse(tt.in).String(); got != tt.want {
			t.Errorf("String(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParentJoinLast(t *testing.T) {
	p := MustParse("a.b[2].c")
	if got := p.Len(); got != 4 {
		t.Errorf("Len = %d, want 4", got)
	}
	if got := p.Last().SegmentString(); got != "c" {
		t.Errorf("Last = %q, want c", got)
	}
	if got := p.Parent().String(); got != "a.b[2]" {
		t.Errorf("Parent = %q", got)
	}
	if got := p.String(); got != "a.b[2].c" {
		t.Errorf("Parent modified p: %q", got)
	}
	if got := Field("x").Parent(); got != nil {
		t.Errorf("Parent of single segment = %v, want nil", got)
	}
	j := MustParse("a").Join(MustParse("[0].b"))
	if got := j.String(); got != "a[0].b" {
		t.Errorf("Join = %q", got)
	}
	var root *DPath
	if got := root.Join(Field("a")).String(); got != "a" {
		t.Errorf("nil Join = %q", got)
	}
}

func sp(s string) *string { return &s }
func ip(i int) *int       { return &i }
