// trackdump prints a course file as the editor's tree, or re-emits it as a
// normalized JSON document.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"trackedit/internal/config"
	"trackedit/internal/course"
	"trackedit/internal/editor"
	"trackedit/internal/lookup"
	"trackedit/internal/tree"
)

type options struct {
	props     bool
	collapsed bool
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "editor config file, for lookup overrides")
	asJSON := flag.Bool("json", false, "print the normalized course document instead of the tree")
	props := flag.Bool("props", false, "print each entity's properties under its row")
	collapsed := flag.Bool("collapsed", false, "print only the categories")
	noColor := flag.Bool("no-color", false, "disable colour output")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: trackdump [flags] <course.json>")
		os.Exit(2)
	}
	if *noColor {
		color.Enable = false
	}

	c, err := course.LoadFile(flag.Arg(0))
	if err != nil {
		exitWithError(err)
	}

	if *asJSON {
		data, err := c.Encode()
		if err != nil {
			exitWithError(err)
		}
		os.Stdout.Write(append(data, '\n'))
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		exitWithError(err)
	}
	tables, err := lookup.Load(cfg.Lookup)
	if err != nil {
		exitWithError(err)
	}
	dump(os.Stdout, c, tables, options{props: *props, collapsed: *collapsed})
}

func dump(w io.Writer, c *course.Course, tables *lookup.Tables, o options) {
	t := tree.New(tables)
	t.Load(c)
	if !o.collapsed {
		expandAll(t.Roots())
	}

	color.Fprintf(w, "<bold>%d</> entities\n", c.EntityCount())
	for _, row := range t.Visible() {
		indent := strings.Repeat("  ", row.Depth)
		dot := " "
		if rgba, ok := tables.Color(row.Node.Ref.Kind); ok {
			dot = color.RGB(rgba.R, rgba.G, rgba.B).Sprint("●")
		}
		color.Fprintf(w, "%s%s %s <grey>%s</>\n", indent, dot, row.Node.Label, row.Node.Ref)
		if o.props && !row.Node.Ref.Kind.IsCategory() {
			for _, p := range editor.Properties(c, row.Node.Ref, tables) {
				color.Fprintf(w, "%s    <grey>%s:</> %s\n", indent, p.Name, p.Value)
			}
		}
	}
}

func expandAll(nodes []*tree.Node) {
	for _, n := range nodes {
		if len(n.Children) > 0 {
			n.Expanded = true
			expandAll(n.Children)
		}
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
