package encode

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/vdoc-go/vdoc/ir"
)

func writeINI(buf *bytes.Buffer, node ir.Node, _ *EncState) error {
	if err := needContainer(node); err != nil {
		return err
	}
	flat, err := node.Copy(".")
	if err != nil {
		return err
	}
	defer flat.Delete(".")
	if err := flat.Squash(".", 2); err != nil {
		return err
	}
	for c := range flat.Children() {
		if c.Type().IsContainer() {
			continue
		}
		if err := iniEntry(buf, c); err != nil {
			return err
		}
	}
	for c := range flat.Children() {
		if !c.Type().IsContainer() {
			continue
		}
		if strings.ContainsAny(c.Name(), "#;") || c.Name() != strings.TrimSpace(c.Name()) {
			return fmt.Errorf("%w: ini section name %q", ErrShape, c.Name())
		}
		fmt.Fprintf(buf, "\n[%s]\n", c.Name())
		for e := range c.Children() {
			if err := iniEntry(buf, e); err != nil {
				return err
			}
		}
	}
	return nil
}

// iniBadName reports whether name would not read back as the key it is.
func iniBadName(name string) bool {
	return strings.ContainsAny(name, "=#;") || strings.HasPrefix(name, "{") ||
		name != strings.TrimSpace(name)
}

func iniEntry(buf *bytes.Buffer, n ir.Node) error {
	name := n.Name()
	if iniBadName(name) {
		return fmt.Errorf("%w: ini key %q", ErrShape, name)
	}
	if n.Type() == ir.NullType {
		if name == "" {
			buf.WriteString("{}\n")
			return nil
		}
		buf.WriteString(name + " =\n")
		return nil
	}
	v := iniText(n)
	if name == "" {
		buf.WriteString("{" + v + "}\n")
		return nil
	}
	buf.WriteString(name + " = " + v + "\n")
	return nil
}

func iniText(n ir.Node) string {
	t := n.Type()
	switch {
	case t.IsFloat():
		f, _ := n.Float64()
		return fmt.Sprintf("%#.5G", f)
	case t.IsString(), t.IsBinary():
		s := text(n)
		if iniNeedsQuote(s) {
			return quoteINI(s)
		}
		return s
	}
	return text(n)
}

// iniNeedsQuote reports whether s would not read back as the same string
// unquoted.
func iniNeedsQuote(s string) bool {
	switch {
	case s == "", s != strings.TrimSpace(s):
		return true
	case strings.ContainsAny(s, "#;\"\\\n\t{}"):
		return true
	case s == "true", s == "false":
		return true
	}
	return looksNumeric(s)
}

func looksNumeric(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789.eE+-", r) {
			return false
		}
	}
	return true
}

func quoteINI(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
