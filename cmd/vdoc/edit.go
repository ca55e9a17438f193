package main

import (
	"fmt"
	"strconv"

	"github.com/vdoc-go/vdoc/b64"
	"github.com/vdoc-go/vdoc/ir"
	"github.com/vdoc-go/vdoc/parse"

	"github.com/scott-cotton/cli"
)

// edit applies f to the document in file and writes the result.
func edit(cfg *MainConfig, cc *cli.Context, file string, f func(root ir.Node) error) error {
	root, in, err := getObjFile(cfg, cc, file)
	if err != nil {
		return err
	}
	if err := f(root); err != nil {
		return err
	}
	return writeObj(cfg, cc.Out, root, in)
}

// fileArg returns the optional file argument following n required ones.
func fileArg(args []string, n int) (string, error) {
	switch len(args) {
	case n:
		return "-", nil
	case n + 1:
		return args[n], nil
	}
	return "", fmt.Errorf("%w: expected %d or %d arguments, got %d", cli.ErrUsage, n, n+1, len(args))
}

func add(cfg *AddConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Add.Parse(cc, args)
	if err != nil {
		cfg.Add.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	file, err := fileArg(args, 3)
	if err != nil {
		return err
	}
	var typ *ir.Type
	if cfg.Type != "" {
		var t ir.Type
		if err := t.UnmarshalText([]byte(cfg.Type)); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		typ = &t
	}
	path, name := args[0], args[1]
	return edit(cfg.MainConfig, cc, file, func(root ir.Node) error {
		sub, err := newMember(name, args[2], typ)
		if err != nil {
			return err
		}
		theLog.Debug("add", "path", path, "name", name, "type", sub.Type())
		_, err = root.Append(path, sub)
		return err
	})
}

// newMember builds a detached node named name from the text arg. Without a
// type arg is read as yaml; string types take arg as is and binary types
// decode it from base64.
func newMember(name, arg string, typ *ir.Type) (ir.Node, error) {
	switch {
	case typ == nil:
	case *typ == ir.NullType:
		return ir.New(name, ir.NullType)
	case typ.IsString():
		return ir.New(name, *typ, arg)
	case typ.IsBinary():
		d, err := b64.Decode(arg)
		if err != nil {
			return ir.Node{}, err
		}
		return ir.New(name, *typ, d)
	}
	v, err := parse.YAML([]byte(arg))
	if err != nil {
		return ir.Node{}, err
	}
	if typ == nil || typ.IsContainer() {
		if typ != nil && v.Type() != *typ {
			return ir.Node{}, fmt.Errorf("%w: %q is %s, not %s", ir.ErrTypeMismatch, arg, v.Type(), *typ)
		}
		if err := v.Rename(".", name); err != nil {
			return ir.Node{}, err
		}
		return v, nil
	}
	val := v.Value()
	if i, ok := val.(int64); ok && typ.IsFloat() {
		val = float64(i)
	}
	return ir.New(name, *typ, val)
}

func del(cfg *DeleteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Delete.Parse(cc, args)
	if err != nil {
		cfg.Delete.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	file, err := fileArg(args, 1)
	if err != nil {
		return err
	}
	return edit(cfg.MainConfig, cc, file, func(root ir.Node) error {
		theLog.Debug("delete", "path", args[0])
		return root.Delete(args[0])
	})
}

func rename(cfg *RenameConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rename.Parse(cc, args)
	if err != nil {
		cfg.Rename.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	file, err := fileArg(args, 2)
	if err != nil {
		return err
	}
	return edit(cfg.MainConfig, cc, file, func(root ir.Node) error {
		theLog.Debug("rename", "path", args[0], "name", args[1])
		return root.Rename(args[0], args[1])
	})
}

func squash(cfg *SquashConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Squash.Parse(cc, args)
	if err != nil {
		cfg.Squash.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	file, err := fileArg(args, 2)
	if err != nil {
		return err
	}
	depth, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: depth %q: %w", cli.ErrUsage, args[1], err)
	}
	return edit(cfg.MainConfig, cc, file, func(root ir.Node) error {
		theLog.Debug("squash", "path", args[0], "depth", depth)
		return root.Squash(args[0], depth)
	})
}
