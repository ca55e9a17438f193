package ir

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAdd(t *testing.T) {
	root := testTree(t)
	n, err := root.Add("pontos", "p4", Int32Type, 4)
	if err != nil {
		t.Fatal(err)
	}
	if n.Index() != 3 || root.Get("pontos").Len() != 4 {
		t.Errorf("p4 at %d of %d", n.Index(), root.Get("pontos").Len())
	}
	if _, err := root.Add(".", "o", ObjectType, "a", Int8Type, 1, "b", ArrayType, End, End); err != nil {
		t.Fatal(err)
	}
	if v, _ := root.Get("o.a").Int64(); v != 1 {
		t.Errorf("o.a = %d", v)
	}
	if _, err := root.Add("pontos", "", NullType); err != nil {
		t.Errorf("adding null to an array: %v", err)
	}
	checkLinks(t, root)

	before := root.Doc().Len()
	tests := []struct {
		name   string
		target string
		member string
		typ    Type
		args   []any
		want   error
	}{
		{"mismatch", "pontos", "p5", Int64Type, []any{5}, ErrArrayTypeMismatch},
		{"scalar target", "flag", "x", BoolType, []any{true}, ErrNotContainer},
		{"duplicate", ".", "sub", NullType, nil, ErrDuplicateName},
		{"missing target", "nope", "x", NullType, nil, ErrNotFound},
		{"bad type", ".", "x", Type(-1), nil, ErrNotAType},
		{"bad member", ".", "x", ObjectType, []any{"a", Int8Type, 1000, End}, ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := root.Add(tt.target, tt.member, tt.typ, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("Add error = %v, want %v", err, tt.want)
			}
			if got := root.Doc().Len(); got != before {
				t.Errorf("failed Add changed node count from %d to %d", before, got)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name string
		path string
		rest []string
	}{
		{"first", "pontos.p1", []string{"p2", "p3"}},
		{"middle", "pontos.p2", []string{"p1", "p3"}},
		{"last", "pontos.p3", []string{"p1", "p2"}},
		{"by index", "pontos[0]", []string{"p2", "p3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := testTree(t)
			before := root.Doc().Len()
			if err := root.Delete(tt.path); err != nil {
				t.Fatal(err)
			}
			var names []string
			for c := range root.Get("pontos").Children() {
				names = append(names, c.Name())
			}
			if diff := cmp.Diff(tt.rest, names); diff != "" {
				t.Errorf("remaining (-want +got):\n%s", diff)
			}
			if got := root.Doc().Len(); got != before-1 {
				t.Errorf("node count %d, want %d", got, before-1)
			}
			checkLinks(t, root)
		})
	}
}

func TestDeleteCompleteness(t *testing.T) {
	for _, p := range []string{"matrix", "matrix[1]", "sub", "sub.x", "[0]"} {
		t.Run(p, func(t *testing.T) {
			root := testTree(t)
			target := root.Get(p)
			var sub []string
			size := 0
			target.Visit(func(n Node, isPost bool) (bool, error) {
				if !isPost {
					sub = append(sub, n.Path().String())
					size++
				}
				return true, nil
			})
			before := root.Doc().Len()
			if err := root.Delete(p); err != nil {
				t.Fatal(err)
			}
			if got := root.Doc().Len(); got != before-size {
				t.Errorf("released %d nodes, want %d", before-got, size)
			}
			for _, sp := range append(sub, p+".anything") {
				if _, err := root.Resolve(sp); !errors.Is(err, ErrNotFound) {
					t.Errorf("Resolve(%q) after delete: %v", sp, err)
				}
			}
			checkLinks(t, root)
		})
	}
}

func TestDeleteOnly(t *testing.T) {
	root, err := Build(Obj("root", Obj("a", I8("only", 1))))
	if err != nil {
		t.Fatal(err)
	}
	if err := root.Delete("a.only"); err != nil {
		t.Fatal(err)
	}
	a := root.Get("a")
	if a.Len() != 0 || a.FirstChild().Valid() || a.LastChild().Valid() {
		t.Errorf("a not empty after deleting its only child")
	}
	if err := root.Delete("."); err != nil {
		t.Fatal(err)
	}
	if root.Valid() || root.Doc().Len() != 0 {
		t.Errorf("deleting . left %d nodes", root.Doc().Len())
	}
}

func TestCopy(t *testing.T) {
	root, err := Build(Obj("root",
		Obj("src",
			Bin("own", []byte("owned")),
			ConstBin("shared", []byte("shared")),
			Str("s", "text"),
			Arr("a", F64("", 1), F64("", 2)))))
	if err != nil {
		t.Fatal(err)
	}
	c, err := root.Copy("src")
	if err != nil {
		t.Fatal(err)
	}
	if !c.IsDetached() {
		t.Error("copy is attached")
	}
	if !Equal(root.Get("src"), c) {
		t.Error("copy differs from source")
	}
	checkLinks(t, c)

	srcOwn, _ := root.Get("src.own").Bytes()
	cpOwn, _ := c.Get("own").Bytes()
	if &srcOwn[0] == &cpOwn[0] {
		t.Error("owned payload shared by copy")
	}
	srcShared, _ := root.Get("src.shared").Bytes()
	cpShared, _ := c.Get("shared").Bytes()
	if &srcShared[0] != &cpShared[0] {
		t.Error("borrowed payload duplicated by copy")
	}

	if err := c.SetBinary("own", []byte("changed")); err != nil {
		t.Fatal(err)
	}
	if err := c.SetString("s", "changed"); err != nil {
		t.Fatal(err)
	}
	if err := c.SetValue("a[0]", 9.0); err != nil {
		t.Fatal(err)
	}
	if err := c.Delete("a[1]"); err != nil {
		t.Fatal(err)
	}
	if got, _ := root.Get("src.own").Bytes(); string(got) != "owned" {
		t.Errorf("source own = %q", got)
	}
	if got, _ := root.Get("src.s").Text(); got != "text" {
		t.Errorf("source s = %q", got)
	}
	if got, _ := root.Get("src.a[0]").Float64(); got != 1 {
		t.Errorf("source a[0] = %v", got)
	}
	if got := root.Get("src.a").Len(); got != 2 {
		t.Errorf("source a has %d elements", got)
	}
}

func TestRename(t *testing.T) {
	root := testTree(t)
	if err := root.Rename("sub", "renamed"); err != nil {
		t.Fatal(err)
	}
	if v, _ := root.Get("renamed.x").Text(); v != "y" {
		t.Errorf("renamed.x = %q", v)
	}
	if err := root.Rename("renamed", "flag"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("rename to sibling name: %v", err)
	}
	if err := root.Rename("flag", "flag"); err != nil {
		t.Errorf("rename to own name: %v", err)
	}
	if err := root.Rename("flag", "a.b"); !errors.Is(err, ErrNameInvalid) {
		t.Errorf("rename to invalid name: %v", err)
	}
	// arrays do not require unique names
	if err := root.Rename("pontos.p1", "p2"); err != nil {
		t.Errorf("rename in array: %v", err)
	}
}

func TestAppend(t *testing.T) {
	root := testTree(t)
	c, err := root.Copy("sub")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := root.Append(".", c); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("append duplicate: %v", err)
	}
	if err := c.Rename(".", "sub2"); err != nil {
		t.Fatal(err)
	}
	got, err := root.Append(".", c)
	if err != nil {
		t.Fatal(err)
	}
	if got != c || got.Parent() != root {
		t.Error("appended node not linked under root")
	}
	if _, err := root.Append(".", c); !errors.Is(err, ErrAttached) {
		t.Errorf("append attached node: %v", err)
	}

	d, err := root.Copy("matrix[0]")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Append(".", d); !errors.Is(err, ErrCycle) {
		t.Errorf("append into itself: %v", err)
	}
	if _, err := root.Append("pontos", d); !errors.Is(err, ErrArrayTypeMismatch) {
		t.Errorf("append array into int32 array: %v", err)
	}
	if _, err := root.Append("flag", d); !errors.Is(err, ErrNotContainer) {
		t.Errorf("append to scalar: %v", err)
	}
	if _, err := root.Append("matrix", d); err != nil {
		t.Fatal(err)
	}
	if root.Get("matrix").Len() != 3 {
		t.Errorf("matrix has %d rows", root.Get("matrix").Len())
	}
	checkLinks(t, root)
}

func TestAppendAcrossDocs(t *testing.T) {
	root := testTree(t)
	other, err := Build(Obj("other", Str("k", "v")))
	if err != nil {
		t.Fatal(err)
	}
	got, err := root.Append(".", other)
	if err != nil {
		t.Fatal(err)
	}
	if other.Valid() || other.Doc().Len() != 0 {
		t.Error("moved tree still live in its source doc")
	}
	if got.Doc() != root.Doc() {
		t.Error("appended node in wrong doc")
	}
	if v, _ := root.Get("other.k").Text(); v != "v" {
		t.Errorf("other.k = %q", v)
	}
}

func TestDetach(t *testing.T) {
	root := testTree(t)
	sub, err := root.Detach("sub")
	if err != nil {
		t.Fatal(err)
	}
	if !sub.IsDetached() || root.Get("sub").Valid() {
		t.Error("sub still attached")
	}
	if _, err := root.Append("matrix", sub); !errors.Is(err, ErrArrayTypeMismatch) {
		t.Errorf("append object to matrix: %v", err)
	}
	if _, err := root.Append(".", sub); err != nil {
		t.Fatal(err)
	}
	if sub.Index() != root.Len()-1 {
		t.Error("sub not appended at the tail")
	}
	checkLinks(t, root)
}

func TestSquashScenario(t *testing.T) {
	root, err := Build(Obj("root", Obj("A", Obj("B", I32("x", 1)))))
	if err != nil {
		t.Fatal(err)
	}
	if err := root.Squash(".", 1); err != nil {
		t.Fatal(err)
	}
	if v, _ := root.Get("x").Int64(); v != 1 || root.Len() != 1 {
		t.Errorf("x = %d, root has %d children", v, root.Len())
	}
	for _, p := range []string{"A", "A.B"} {
		if root.Get(p).Valid() {
			t.Errorf("%s still present", p)
		}
	}
	if root.Doc().Len() != 2 {
		t.Errorf("%d nodes live, want 2", root.Doc().Len())
	}
}

func leaves(n Node) []string {
	var res []string
	n.Visit(func(c Node, isPost bool) (bool, error) {
		if !isPost && !c.Type().IsContainer() {
			res = append(res, fmt.Sprintf("%s=%v", c.Name(), c.Value()))
		}
		return true, nil
	})
	slices.Sort(res)
	return res
}

func TestSquashBound(t *testing.T) {
	for depth := 1; depth <= 5; depth++ {
		t.Run(fmt.Sprint(depth), func(t *testing.T) {
			root, err := Build(Obj("root",
				I8("a", 1),
				Obj("s1",
					I8("b", 2),
					Obj("s2",
						Str("c", "3"),
						Arr("l", I8("", 4), I8("", 5)),
						Obj("s3", Bool("d", true), Obj("empty")))),
				Obj("t1", Null("e"))))
			if err != nil {
				t.Fatal(err)
			}
			want := leaves(root)
			if err := root.Squash(".", depth); err != nil {
				t.Fatal(err)
			}
			if got := root.Depth(); got > depth {
				t.Errorf("depth %d after squash to %d", got, depth)
			}
			if diff := cmp.Diff(want, leaves(root)); diff != "" {
				t.Errorf("leaves (-want +got):\n%s", diff)
			}
			checkLinks(t, root)
		})
	}
}

func TestSquashOrder(t *testing.T) {
	root, err := Build(Obj("ini",
		I8("g", 0),
		Obj("sec", I8("a", 1), Obj("deep", I8("b", 2)), I8("c", 3))))
	if err != nil {
		t.Fatal(err)
	}
	if err := root.Squash(".", 2); err != nil {
		t.Fatal(err)
	}
	var names []string
	for c := range root.Get("sec").Children() {
		names = append(names, c.Name())
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, names); diff != "" {
		t.Errorf("sec members (-want +got):\n%s", diff)
	}
}

func TestSquashErrors(t *testing.T) {
	root, err := Build(Obj("root", I8("x", 1), Obj("A", I8("x", 2)), Str("s", "v")))
	if err != nil {
		t.Fatal(err)
	}
	snapshot, _ := root.Copy(".")
	if err := root.Squash(".", 1); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("conflicting squash: %v", err)
	}
	if !Equal(snapshot, root) {
		t.Error("failed squash modified the tree")
	}
	if err := root.Squash(".", 0); !errors.Is(err, ErrInvalidDepth) {
		t.Errorf("depth 0: %v", err)
	}
	if err := root.Squash("s", 1); !errors.Is(err, ErrNotContainer) {
		t.Errorf("squash scalar: %v", err)
	}

	arr, err := Build(Arr("r", Arr("", I8("", 1)), Arr("", Str("", "a"))))
	if err != nil {
		t.Fatal(err)
	}
	if err := arr.Squash(".", 1); !errors.Is(err, ErrArrayTypeMismatch) {
		t.Errorf("mixed array squash: %v", err)
	}
	if arr.Len() != 2 {
		t.Error("failed squash modified the array")
	}
}

func TestSetErrors(t *testing.T) {
	root := testTree(t)
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"value on object", root.SetValue("sub", 1), ErrNotScalar},
		{"wrong go type", root.SetValue("flag", "yes"), ErrTypeMismatch},
		{"string on int", root.SetString("pontos.p1", "x"), ErrTypeMismatch},
		{"binary on string", root.SetBinary("sub.x", []byte("x")), ErrTypeMismatch},
		{"missing", root.SetValue("nope", 1), ErrNotFound},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, tt.want) {
			t.Errorf("%s: %v, want %v", tt.name, tt.err, tt.want)
		}
	}
	if err := root.SetValue("flag", false); err != nil {
		t.Fatal(err)
	}
	if v, _ := root.Get("flag").Bool(); v {
		t.Error("flag still true")
	}
}

func TestReplace(t *testing.T) {
	root := testTree(t)
	arr, err := root.Doc().New("sub", ArrayType, End)
	if err != nil {
		t.Fatal(err)
	}
	old, err := root.Replace("sub", arr)
	if err != nil {
		t.Fatal(err)
	}
	if !old.IsDetached() || old.Name() != "sub" || old.Type() != ObjectType {
		t.Errorf("replaced node %v not returned detached", old)
	}
	if got := root.Get("sub"); got != arr || got.Index() != 2 {
		t.Errorf("replacement at index %d", got.Index())
	}
	if _, err := arr.Append(".", old); err != nil {
		t.Fatal(err)
	}
	if v, _ := root.Get("sub[0].x").Text(); v != "y" {
		t.Errorf("sub[0].x = %q", v)
	}
	checkLinks(t, root)

	other, err := root.Doc().New("flag", Int8Type, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := root.Replace("pontos", other); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("replace with taken name: %v", err)
	}
	if _, err := root.Replace("pontos.p1", other); !errors.Is(err, ErrArrayTypeMismatch) {
		t.Errorf("replace array element with other type: %v", err)
	}
	if _, err := root.Replace(".", other); !errors.Is(err, ErrNotContainer) {
		t.Errorf("replace root: %v", err)
	}
	if _, err := root.Replace("flag", other); err != nil {
		t.Errorf("replace flag: %v", err)
	}
	if v, _ := root.Get("flag").Int64(); v != 1 {
		t.Errorf("flag = %d", v)
	}
	checkLinks(t, root)
}
