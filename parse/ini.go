package parse

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/vdoc-go/vdoc/ir"
)

func parseINI(d []byte, _ *parseOpts) (ir.Node, error) {
	root, err := ir.New("ini", ir.ObjectType, ir.End)
	if err != nil {
		return ir.Node{}, err
	}
	cur := root
	sc := bufio.NewScanner(bytes.NewReader(d))
	sc.Buffer(nil, len(d)+1)
	lineNo, start := 0, 0
	var logical strings.Builder
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if logical.Len() == 0 {
			start = lineNo
		}
		if strings.HasSuffix(line, `\`) {
			logical.WriteString(line[:len(line)-1])
			continue
		}
		logical.WriteString(line)
		next, err := iniLine(root, cur, logical.String())
		if err != nil {
			return ir.Node{}, fmt.Errorf("%w: ini line %d: %w", ErrParse, start, err)
		}
		cur = next
		logical.Reset()
	}
	if err := sc.Err(); err != nil {
		return ir.Node{}, fmt.Errorf("%w: ini: %w", ErrParse, err)
	}
	if logical.Len() > 0 {
		if _, err := iniLine(root, cur, logical.String()); err != nil {
			return ir.Node{}, fmt.Errorf("%w: ini line %d: %w", ErrParse, start, err)
		}
	}
	return root, nil
}

// iniLine adds the content of one logical line and returns the container
// later lines go into.
func iniLine(root, cur ir.Node, line string) (ir.Node, error) {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' || line[0] == ';' {
		return cur, nil
	}
	switch line[0] {
	case '[':
		end := strings.IndexByte(line, ']')
		if end < 0 {
			return cur, fmt.Errorf("unterminated section %q", line)
		}
		if rest := strings.TrimSpace(line[end+1:]); rest != "" && !isComment(rest) {
			return cur, fmt.Errorf("unexpected %q after section", rest)
		}
		return root.Add(".", strings.TrimSpace(line[1:end]), ir.ObjectType, ir.End)
	case '{':
		end := strings.LastIndexByte(line, '}')
		if end < 0 {
			return cur, fmt.Errorf("unterminated anonymous value %q", line)
		}
		t, v, err := iniValue(strings.TrimSpace(line[1:end]))
		if err != nil {
			return cur, err
		}
		return cur, iniAdd(cur, "", t, v)
	}
	name, text, hasValue := strings.Cut(line, "=")
	name = strings.TrimSpace(name)
	if !hasValue {
		name = strings.TrimSpace(stripComment(name))
	}
	if name == "" {
		return cur, fmt.Errorf("missing name in %q", line)
	}
	if !hasValue {
		return cur, iniAdd(cur, name, ir.NullType, nil)
	}
	t, v, err := iniValue(strings.TrimSpace(text))
	if err != nil {
		return cur, err
	}
	return cur, iniAdd(cur, name, t, v)
}

func iniAdd(cur ir.Node, name string, t ir.Type, v any) error {
	var err error
	if t == ir.NullType {
		_, err = cur.Add(".", name, t)
	} else {
		_, err = cur.Add(".", name, t, v)
	}
	return err
}

// iniValue types the text after '='. Quoted text is a String; empty text
// is Null.
func iniValue(text string) (ir.Type, any, error) {
	if strings.HasPrefix(text, `"`) {
		s, rest, err := unquoteINI(text)
		if err != nil {
			return ir.NullType, nil, err
		}
		if rest = strings.TrimSpace(rest); rest != "" && !isComment(rest) {
			return ir.NullType, nil, fmt.Errorf("unexpected %q after string", rest)
		}
		return ir.StringType, s, nil
	}
	text = strings.TrimSpace(stripComment(text))
	if text == "" {
		return ir.NullType, nil, nil
	}
	t, v := typedValue(text)
	return t, v, nil
}

func isComment(s string) bool { return s[0] == '#' || s[0] == ';' }

func stripComment(s string) string {
	if i := strings.IndexAny(s, "#;"); i >= 0 {
		return s[:i]
	}
	return s
}

// unquoteINI decodes the quoted string at the start of s and returns the
// text following it.
func unquoteINI(s string) (string, string, error) {
	var buf strings.Builder
	for i := 1; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			return buf.String(), s[i+1:], nil
		case '\\':
			if i+1 == len(s) {
				return "", "", fmt.Errorf("unterminated string %s", s)
			}
			i++
			switch e := s[i]; e {
			case 'n':
				buf.WriteByte('\n')
			case 't':
				buf.WriteByte('\t')
			case '"', '\\':
				buf.WriteByte(e)
			default:
				buf.WriteByte('\\')
				buf.WriteByte(e)
			}
		default:
			buf.WriteByte(c)
		}
	}
	return "", "", fmt.Errorf("unterminated string %s", s)
}
