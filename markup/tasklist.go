package markup

import (
	"fmt"
	"regexp"

	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// KindTaskMarker is the goldmark node kind of task-list markers.
var KindTaskMarker = gast.NewNodeKind("TaskMarker")

// TaskMarker is an inline goldmark node for a task-list checkbox.
type TaskMarker struct {
	gast.BaseInline
	Checked bool
}

// NewTaskMarker creates a task-list marker node.
func NewTaskMarker(checked bool) *TaskMarker {
	return &TaskMarker{Checked: checked}
}

// Kind is part of interface goldmark/ast.Node.
func (n *TaskMarker) Kind() gast.NodeKind {
	return KindTaskMarker
}

// Dump is part of interface goldmark/ast.Node.
func (n *TaskMarker) Dump(source []byte, level int) {
	gast.DumpHelper(n, source, level, map[string]string{
		"Checked": fmt.Sprintf("%v", n.Checked),
	}, nil)
}

// taskPattern: optional leading spaces, '[', one of ' ', 'x', 'X', ']', and
// at least one space.
var taskPattern = regexp.MustCompile(`^ *\[([ xX])\] +`)

// MatchTaskMarker applies the task-list rule to the start of an inline run.
// It returns the checked-state and the number of bytes consumed, or ok=false
// if the line does not start with a task-list marker.
func MatchTaskMarker(line []byte) (checked bool, consumed int, ok bool) {
	m := taskPattern.FindSubmatchIndex(line)
	if m == nil {
		return false, 0, false
	}
	c := line[m[2]]
	return c == 'x' || c == 'X', m[1], true
}

type taskListParser struct{}

// NewTaskListParser returns the goldmark inline parser for task-list markers.
func NewTaskListParser() parser.InlineParser {
	return taskListParser{}
}

func (taskListParser) Trigger() []byte {
	return []byte{'['}
}

// Parse recognizes a marker only at the very start of an inline run, i.e.
// if the enclosing block has no inline children yet.
func (taskListParser) Parse(parent gast.Node, block text.Reader, pc parser.Context) gast.Node {
	if parent.HasChildren() {
		return nil
	}
	line, _ := block.PeekLine()
	checked, n, ok := MatchTaskMarker(line)
	if !ok {
		return nil
	}
	block.Advance(n)
	tracer().Debugf("task-list marker, checked=%v", checked)
	return NewTaskMarker(checked)
}
