package parse

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/vdoc-go/vdoc/ir"
)

func parseJSON(d []byte, o *parseOpts) (ir.Node, error) {
	s := &jsonScanner{d: d, maxDepth: o.maxDepth}
	s.ws()
	if s.pos == len(d) {
		return ir.New("json", ir.NullType)
	}
	v, err := s.value(1)
	if err != nil {
		return ir.Node{}, err
	}
	s.ws()
	if s.pos != len(d) {
		return ir.Node{}, s.errorf("unexpected %q after value", d[s.pos])
	}
	return build("json", v, o.maxDepth)
}

type jsonScanner struct {
	d        []byte
	pos      int
	maxDepth int
}

func (s *jsonScanner) errorf(f string, args ...any) error {
	return errorAt(s.d, s.pos, "json: "+f, args...)
}

func (s *jsonScanner) ws() {
	for s.pos < len(s.d) {
		switch s.d[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *jsonScanner) peek() byte {
	if s.pos < len(s.d) {
		return s.d[s.pos]
	}
	return 0
}

func (s *jsonScanner) value(depth int) (any, error) {
	switch c := s.peek(); {
	case c == '{' || c == '[':
		if depth > s.maxDepth {
			return nil, fmt.Errorf("%w: %d levels", ErrTooDeep, s.maxDepth)
		}
		if c == '{' {
			return s.object(depth)
		}
		return s.array(depth)
	case c == '"':
		return s.str()
	case c == '-' || (c >= '0' && c <= '9'):
		return s.number()
	case c == 't':
		return true, s.literal("true")
	case c == 'f':
		return false, s.literal("false")
	case c == 'n':
		return nil, s.literal("null")
	case c == 0 && s.pos == len(s.d):
		return nil, s.errorf("unexpected end of input")
	default:
		return nil, s.errorf("unexpected %q", c)
	}
}

func (s *jsonScanner) literal(lit string) error {
	if !bytes.HasPrefix(s.d[s.pos:], []byte(lit)) {
		return s.errorf("invalid literal")
	}
	s.pos += len(lit)
	return nil
}

func (s *jsonScanner) object(depth int) (any, error) {
	s.pos++
	res := object{}
	s.ws()
	if s.peek() == '}' {
		s.pos++
		return res, nil
	}
	for {
		s.ws()
		if s.peek() != '"' {
			return nil, s.errorf("expected member name")
		}
		name, err := s.str()
		if err != nil {
			return nil, err
		}
		s.ws()
		if s.peek() != ':' {
			return nil, s.errorf("expected ':'")
		}
		s.pos++
		s.ws()
		v, err := s.value(depth + 1)
		if err != nil {
			return nil, err
		}
		res = append(res, field{name: name, v: v})
		s.ws()
		switch s.peek() {
		case ',':
			s.pos++
		case '}':
			s.pos++
			return res, nil
		default:
			return nil, s.errorf("expected ',' or '}'")
		}
	}
}

func (s *jsonScanner) array(depth int) (any, error) {
	s.pos++
	res := []any{}
	s.ws()
	if s.peek() == ']' {
		s.pos++
		return res, nil
	}
	for {
		s.ws()
		v, err := s.value(depth + 1)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
		s.ws()
		switch s.peek() {
		case ',':
			s.pos++
		case ']':
			s.pos++
			return res, nil
		default:
			return nil, s.errorf("expected ',' or ']'")
		}
	}
}

func (s *jsonScanner) str() (string, error) {
	start := s.pos
	escaped := false
	for i := start + 1; i < len(s.d); i++ {
		switch c := s.d[i]; {
		case c == '\\':
			escaped = true
			i++
		case c == '"':
			s.pos = i + 1
			if !escaped {
				return string(s.d[start+1 : i]), nil
			}
			var res string
			if err := json.Unmarshal(s.d[start:s.pos], &res); err != nil {
				s.pos = start
				return "", s.errorf("%v", err)
			}
			return res, nil
		case c < 0x20:
			s.pos = i
			return "", s.errorf("control character in string")
		}
	}
	return "", s.errorf("unterminated string")
}

func (s *jsonScanner) number() (any, error) {
	start := s.pos
	bad := func() (any, error) {
		text := string(s.d[start:s.pos])
		s.pos = start
		return nil, s.errorf("invalid number %q", text)
	}
	if s.peek() == '-' {
		s.pos++
	}
	switch c := s.peek(); {
	case c == '0':
		s.pos++
		if d := s.peek(); d >= '0' && d <= '9' {
			return bad()
		}
	case c >= '1' && c <= '9':
		s.digits()
	default:
		return bad()
	}
	isFloat := false
	if s.peek() == '.' {
		isFloat = true
		s.pos++
		if s.digits() == 0 {
			return bad()
		}
	}
	if c := s.peek(); c == 'e' || c == 'E' {
		isFloat = true
		s.pos++
		if c := s.peek(); c == '+' || c == '-' {
			s.pos++
		}
		if s.digits() == 0 {
			return bad()
		}
	}
	text := string(s.d[start:s.pos])
	if !isFloat {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return i, nil
		}
		if u, err := strconv.ParseUint(text, 10, 64); err == nil {
			return u, nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return bad()
		}
	}
	return f, nil
}

// digits consumes a run of decimal digits and returns its length.
func (s *jsonScanner) digits() int {
	n := 0
	for c := s.peek(); c >= '0' && c <= '9'; c = s.peek() {
		s.pos++
		n++
	}
	return n
}
