package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vdoc-go/vdoc/format"
	"github.com/vdoc-go/vdoc/ir"
	"github.com/vdoc-go/vdoc/parse"
)

func mustBuild(t *testing.T, l ir.Lit) ir.Node {
	t.Helper()
	n, err := ir.Build(l)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func encodeString(t *testing.T, n ir.Node, opts ...EncodeOption) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, opts...); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestJSONScenario(t *testing.T) {
	root, err := parse.JSON([]byte(`{"a":1,"b":[true,false,null]}`))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := MustString(root), `{"a":1,"b":[true,false,null]}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSON(t *testing.T) {
	tests := []struct {
		name string
		in   ir.Lit
		want string
	}{
		{"scalars", ir.Obj("r",
			ir.I8("i", -3), ir.U64("u", math.MaxUint64), ir.F64("f", 2), ir.F32("g", 0.5),
			ir.Bool("b", true), ir.Null("n"), ir.Str("s", "q\"\n<"), ir.Bin("x", []byte("Man"))),
			`{"i":-3,"u":18446744073709551615,"f":2.0,"g":0.5,"b":true,"n":null,"s":"q\"\n<","x":"TWFu"}`},
		{"nan", ir.Arr("", ir.F64("", math.NaN()), ir.F64("", math.Inf(1)), ir.F64("", 1e21)),
			`[null,null,1e+21]`},
		{"nested", ir.Obj("", ir.Arr("a", ir.Obj(""), ir.Obj("", ir.Str("", "x")))),
			`{"a":[{},{"":"x"}]}`},
		{"scalar root", ir.Str("json", "hi"), `"hi"`},
		{"no html escape", ir.Obj("", ir.Str("s", "a<b&c>")), `{"s":"a<b&c>"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encodeString(t, mustBuild(t, tt.in), EncodeFormat(format.JSONFormat))
			if got != tt.want+"\n" {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	docs := []string{
		`{}`,
		`[]`,
		`null`,
		`{"a":{"b":[1,2,3],"c":[1.5,2]},"d":"eé\t\"","f":[[true],[false,null]],"g":-7}`,
		`[{"x":1},{"y":[]},{}]`,
		`{"big":18446744073709551615,"neg":-9223372036854775808,"f":1e-7}`,
	}
	for _, d := range docs {
		t.Run(d, func(t *testing.T) {
			first, err := parse.JSON([]byte(d))
			if err != nil {
				t.Fatal(err)
			}
			second, err := parse.JSON([]byte(MustString(first)))
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(first, second) {
				t.Errorf("%s re-parses differently from %s", MustString(second), d)
			}
		})
	}
}

const xmlDoc = `<?xml version="1.0" encoding="UTF-8"?>
<catalog kind="books">
  <book id="1">
    <title>Go &amp; more</title>
  </book>
  <book id="2">
    <title>C</title>
    <year>1978</year>
  </book>
  <empty/>
</catalog>
`

func TestXML(t *testing.T) {
	root, err := parse.XML([]byte(xmlDoc))
	if err != nil {
		t.Fatal(err)
	}
	got := encodeString(t, root, EncodeFormat(format.XMLFormat))
	if diff := cmp.Diff(xmlDoc, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	back, err := parse.XML([]byte(got))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(root, back) {
		t.Error("xml does not round trip")
	}
}

func TestXMLScalars(t *testing.T) {
	root := mustBuild(t, ir.Obj("r", ir.Obj("doc",
		ir.I32("n", 5), ir.Null("none"), ir.Arr("v", ir.Str("", "a"), ir.Str("", "b")), ir.Obj("", ir.Bool("ok", true)))))
	want := `<?xml version="1.0" encoding="UTF-8"?>
<doc>
    <n>5</n>
    <none/>
    <v>a</v>
    <v>b</v>
    <item>
        <ok>true</ok>
    </item>
</doc>
`
	got := encodeString(t, root, EncodeFormat(format.XMLFormat), Indent(4))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestINI(t *testing.T) {
	root := mustBuild(t, ir.Obj("ini",
		ir.Obj("server",
			ir.Str("host", "example.com"),
			ir.I64("port", 8080),
			ir.Obj("tls", ir.Bool("on", true), ir.Str("path", "/a;b"))),
		ir.Str("title", "x"),
		ir.F64("ratio", 0.5),
		ir.Str("num", "12"),
		ir.Str("pad", " a "),
		ir.Null("bare"),
		ir.Str("", "anon"),
		ir.Bin("key", []byte{0xff}),
	))
	want := `title = x
ratio = 0.50000
num = "12"
pad = " a "
bare =
{anon}
key = /w==

[server]
host = example.com
port = 8080
on = true
path = "/a;b"
`
	got := encodeString(t, root, EncodeFormat(format.INIFormat))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if root.Get("server.tls.on").Type() != ir.BoolType {
		t.Error("encoding changed the tree")
	}
	if n := root.Doc().Len(); n != 14 {
		t.Errorf("doc holds %d nodes after encoding, want 14", n)
	}

	back, err := parse.INI([]byte(got))
	if err != nil {
		t.Fatal(err)
	}
	for path, want := range map[string]any{
		"num":         "12",
		"pad":         " a ",
		"ratio":       0.5,
		"server.path": "/a;b",
		"server.on":   true,
		"[5]":         "anon",
		"key":         "/w==",
	} {
		if got := back.Get(path).Value(); got != want {
			t.Errorf("%s = %v, want %v", path, got, want)
		}
	}
}

func TestINISquashConflict(t *testing.T) {
	root := mustBuild(t, ir.Obj("ini", ir.Obj("s", ir.I8("a", 1), ir.Obj("o", ir.I8("a", 2)))))
	if err := INI(root, &bytes.Buffer{}); !errors.Is(err, ir.ErrDuplicateName) {
		t.Errorf("got %v", err)
	}
	if root.Get("s.o.a").Type() != ir.Int8Type {
		t.Error("failed encoding changed the tree")
	}
}

func TestINIBadNames(t *testing.T) {
	tests := []struct {
		name string
		in   ir.Lit
	}{
		{"equals", ir.Obj("", ir.I8("a=b", 1))},
		{"comment", ir.Obj("", ir.I8("a#b", 1))},
		{"semicolon", ir.Obj("", ir.I8(";a", 1))},
		{"brace", ir.Obj("", ir.Str("{a}", "x"))},
		{"padded", ir.Obj("", ir.Null(" a"))},
		{"section", ir.Obj("", ir.Obj("s;t", ir.I8("a", 1)))},
		{"nested key", ir.Obj("", ir.Obj("s", ir.I8("k=v", 1)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := INI(mustBuild(t, tt.in), &buf); !errors.Is(err, ErrShape) {
				t.Errorf("got %v, want %v", err, ErrShape)
			}
			if buf.Len() != 0 {
				t.Errorf("wrote %q", buf.String())
			}
		})
	}
}

func TestCSV(t *testing.T) {
	in := "name,age,score\nann,31,1.5\nbob,,2.0\n"
	flags := format.FirstLineAsNames | format.FirstColumnAsNames
	root, err := parse.CSV([]byte(in), parse.CSVFlags(flags))
	if err != nil {
		t.Fatal(err)
	}
	got := encodeString(t, root, EncodeFormat(format.CSVFormat), CSVFlags(flags))
	if want := ",age,score\nann,31,1.5\nbob,,2.0\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = encodeString(t, root, EncodeFormat(format.CSVFormat),
		CSVFlags(format.UseCustomSeparator), CSVSeparator(';'))
	if want := "31;1.5\n;2.0\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	plain, err := parse.CSV([]byte("a,\"b,c\",3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := encodeString(t, plain, EncodeFormat(format.CSVFormat)); got != "a,\"b,c\",3\n" {
		t.Errorf("got %q", got)
	}
}

func TestCSVShape(t *testing.T) {
	tests := []ir.Lit{
		ir.Obj("", ir.I8("x", 1)),
		ir.Obj("", ir.Arr("", ir.I8("", 1)), ir.Arr("", ir.I8("", 1), ir.I8("", 2))),
		ir.Obj("", ir.Obj("", ir.Obj("n"))),
	}
	for _, l := range tests {
		if err := CSV(mustBuild(t, l), &bytes.Buffer{}); !errors.Is(err, ErrShape) {
			t.Errorf("%v: got %v", l, err)
		}
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	root, err := parse.JSON([]byte(`{"name":"vdoc","tags":["a","b"],"n":{"x":1.5,"y":null,"z":[1,2]},"ok":true}`))
	if err != nil {
		t.Fatal(err)
	}
	got := encodeString(t, root, EncodeFormat(format.YAMLFormat))
	back, err := parse.YAML([]byte(got))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(root, back) {
		t.Errorf("yaml\n%s\ndoes not round trip", got)
	}
	if !strings.HasPrefix(got, "name: vdoc\n") {
		t.Errorf("member order lost:\n%s", got)
	}
}

func TestPrint(t *testing.T) {
	root := mustBuild(t, ir.Obj("root",
		ir.I32("n", 5),
		ir.Arr("a", ir.Bool("", true), ir.Null("")),
		ir.Bin("b", []byte{0x0a, 0xff}),
		ir.Str("s", "hi")))
	want := `[root] (Object):
    [n] (Int32): "5"
    [a] (Array):
        [] (Bool): "true"
        [] (Null): "null"
    [b] (Binary): "0x0AFF"
    [s] (String): "hi"
`
	buf := bytes.NewBuffer(nil)
	if err := Print(root, buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	colored := encodeString(t, root, EncodeFormat(format.TreeFormat), EncodeColors(NewColors()))
	if !strings.Contains(colored, "root") {
		t.Errorf("colored output lost names: %q", colored)
	}
}

func TestEncodeErrors(t *testing.T) {
	scalar := mustBuild(t, ir.I8("x", 1))
	for _, f := range []format.Format{format.XMLFormat, format.INIFormat, format.CSVFormat} {
		if err := Encode(scalar, &bytes.Buffer{}, EncodeFormat(f)); !errors.Is(err, ir.ErrNotContainer) {
			t.Errorf("%s: got %v", f, err)
		}
	}
	if err := Encode(ir.Node{}, &bytes.Buffer{}); !errors.Is(err, ir.ErrStaleNode) {
		t.Errorf("zero node: got %v", err)
	}
	if err := Encode(scalar, &bytes.Buffer{}, EncodeFormat(format.Format(42))); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("bad format: got %v", err)
	}
}
