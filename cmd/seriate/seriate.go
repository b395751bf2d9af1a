// Command seriate reads a JSON or YAML document and re-renders it as
// json, yaml, or xml via the render registry.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/seriate/go-seriate/ir"
	"github.com/seriate/go-seriate/render"
)

type MainConfig struct {
	In     string `cli:"name=I aliases=ifmt desc='input format: json, yaml'"`
	Format string `cli:"name=O aliases=ofmt desc='output format: json, yaml, xml'"`
	Indent int    `cli:"name=indent desc='pretty-print indent width'"`
	Sort   bool   `cli:"name=sort desc='sort object keys (json)'"`
	Color  bool   `cli:"name=color desc='render with color'"`
	List   bool   `cli:"name=l aliases=list desc='list available renderers'"`

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "seriate").
		WithSynopsis("seriate [opts] [files]").
		WithDescription("seriate re-renders structured documents across wire formats.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return seriateMain(cfg, cc, args)
		})
}

func seriateMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	registry := render.DefaultRegistry()
	if cfg.List {
		for _, name := range registry.List() {
			fmt.Fprintln(cc.Out, name)
		}
		return nil
	}
	if cfg.Format == "" {
		cfg.Format = "json"
	}
	renderer, err := registry.Get(cfg.Format)
	if err != nil {
		return err
	}
	renderOpts := []render.Option{
		render.WithIndent(cfg.Indent),
		render.WithSortKeys(cfg.Sort),
	}
	if cfg.Color || isTerminal(cc.Out) {
		renderOpts = append(renderOpts, render.WithColors(render.NewColors()))
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := readArg(cfg, arg)
		if err != nil {
			return err
		}
		if err := renderer.Render(node, cc.Out, renderOpts...); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func readArg(cfg *MainConfig, arg string) (*ir.Node, error) {
	var rd io.Reader
	if arg == "-" {
		rd = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		rd = f
	}
	d, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	v, err := decode(cfg.In, d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return ir.FromAny(v)
}

func decode(format string, d []byte) (any, error) {
	switch format {
	case "yaml", "y":
		var v any
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, err
		}
		return v, nil
	case "json", "j", "":
		dec := json.NewDecoder(bytes.NewReader(d))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: unknown input format %q", cli.ErrUsage, format)
	}
}
