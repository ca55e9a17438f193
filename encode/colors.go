package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/vdoc-go/vdoc/ir"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	NameColor ColorAttr = iota
	TypeColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{Type: t, Attr: TypeColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = NameColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = ValueColor
		switch {
		case t.IsNumber():
			colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
		case t.IsString():
			colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
		case t.IsBinary():
			colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
		}
	}
	colors.Map[Colorable{Type: ir.NullType, Attr: ValueColor}] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[Colorable{Type: ir.BoolType, Attr: ValueColor}] = color.CyanString
	colors.Map[Colorable{Type: ir.ObjectType, Attr: SepColor}] = color.RGB(196, 128, 128).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
