package runif

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

func listClasses(w io.Writer, classes []*Class) error {

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Class", "Method", "Run If", "Preconditions", "Tags"})

	for _, c := range classes {

		t.AppendRow(table.Row{c.Name, "", c.RunIf.String(), "", ""})

		for _, m := range c.Methods {
			t.AppendRow(table.Row{
				"",
				m.Name,
				m.RunIf.String(),
				strings.Join(m.Preconditions, ", "),
				strings.Join(m.Tags, ", "),
			})
		}

		t.AppendSeparator()
	}

	t.Render()

	return nil
}

func listRegistered(w io.Writer, r *Registry) error {

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Kind", "Name", "Shapes"})

	for _, name := range r.Checkers() {
		c, _ := r.checker(name)
		t.AppendRow(table.Row{"checker", name, checkerShapes(c)})
	}

	for _, name := range r.Preconditions() {
		p, _ := r.precondition(name)
		t.AppendRow(table.Row{"precondition", name, preconditionShapes(p)})
	}

	t.Render()

	return nil
}

func checkerShapes(c CheckerConstructors) string {

	var shapes []string
	if c.New != nil {
		shapes = append(shapes, "()")
	}
	if c.NewWithArgument != nil {
		shapes = append(shapes, "(arg)")
	}
	if c.NewWithArguments != nil {
		shapes = append(shapes, "(args...)")
	}

	return strings.Join(shapes, " ")
}

func preconditionShapes(p PreconditionConstructors) string {

	var shapes []string
	if p.New != nil {
		shapes = append(shapes, "()")
	}
	if p.NewWithContext != nil {
		shapes = append(shapes, "(context)")
	}

	return strings.Join(shapes, " ")
}
