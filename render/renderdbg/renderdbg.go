/*
Package renderdbg implements helpers to debug a render tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package renderdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/mdrender/render"
	"github.com/npillmayer/mdrender/style"
	tp "github.com/xlab/treeprint"
)

// Dump returns an indented text drawing of render trees.
func Dump(nodes ...render.Node) string {
	p := tp.New()
	for _, n := range nodes {
		dump(p, n)
	}
	return p.String()
}

func dump(p tp.Tree, n render.Node) {
	c, ok := n.(*render.Container)
	if !ok {
		p.AddNode(n.String())
		return
	}
	branch := p.AddBranch(c.String())
	for _, ch := range c.Children {
		dump(branch, ch)
	}
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
}

var defaultGroups = []string{
	style.PGFont,
	style.PGColor,
	style.PGText,
}

// ToGraphViz outputs a diagram for a render tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node,
// a Writer, and an optional list of style property groups.
// The diagram will include all styles belonging to one of the
// property groups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Font
//     - Color
//     - Text
//
func ToGraphViz(root render.Node, w io.Writer, styleGroups []string) error {
	tmpl, err := template.New("render").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("rnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(renderNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("redge").Parse(edgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[render.Node]string, 1024)
	if err = nodes(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a render node and a testing.T, it will
// create a Graphiviz image of the render tree under `root` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root render.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "render.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing render digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N      render.Node
	Name   string
	Label  string
	IsText bool
}

type stylegroup struct {
	Name       string
	Group      string
	Properties []style.KeyValue
}

func nodes(n render.Node, w io.Writer, dict map[render.Node]string, gparams *graphParamsType) error {
	if err := renderNode(n, w, dict, gparams); err != nil {
		return err
	}
	if c, ok := n.(*render.Container); ok {
		for _, ch := range c.Children {
			if err := nodes(ch, w, dict, gparams); err != nil {
				return err
			}
			e := edge{node{Name: dict[n]}, node{Name: dict[ch]}}
			if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderNode(n render.Node, w io.Writer, dict map[render.Node]string, gparams *graphParamsType) error {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	var st style.Attributes
	rn := node{N: n, Name: name}
	switch x := n.(type) {
	case *render.Span:
		rn.IsText, rn.Label, st = true, x.Text, x.Style
	case *render.Container:
		rn.Label, st = x.Tag, x.Style
	case *render.Leaf:
		rn.Label, st = x.Kind.String(), x.Style
	}
	if err := gparams.NodeTmpl.Execute(w, &rn); err != nil {
		return err
	}
	for _, g := range gparams.StyleGroups {
		props := st.Group(g)
		if len(props) == 0 {
			continue
		}
		sg := stylegroup{Name: name, Group: g, Properties: props}
		if err := gparams.StylegroupTmpl.Execute(w, sg); err != nil {
			return err
		}
	}
	return nil
}

type edge struct {
	N1, N2 node
}

func shortText(n *node) string {
	s := "\"\\\""
	if len(n.Label) > 10 {
		s += n.Label[:10] + "...\\\"\""
	} else {
		s += n.Label + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const renderNodeTmpl = `{{ if .IsText }}
{{ .Name }}	[ label={{ shortstring . }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ .Name }}_{{ .Group }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Group }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
{{ .Name }} -> {{ .Name }}_{{ .Group }} [dir=none weight=1 style="dashed"] ;
`

const edgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
