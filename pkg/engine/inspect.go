package engine

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/render"
)

// maxTreeDepth limits recursion when describing malformed trees.
const maxTreeDepth = 500

// DebugInfo is a snapshot of the loop published after a frame.
type DebugInfo struct {
	AppTimeMs float64   `json:"appTimeMs"`
	Size      string    `json:"size"`
	Factor    uint8     `json:"factor"`
	Animating bool      `json:"animating"`
	Rebuilds  int       `json:"rebuilds"`
	Source    *TreeNode `json:"source,omitempty"`
	Target    *TreeNode `json:"target,omitempty"`
}

// TreeNode describes one render tree node.
type TreeNode struct {
	Type      string      `json:"type"`
	Children  []*TreeNode `json:"children,omitempty"`
	Truncated bool        `json:"truncated,omitempty"`
}

// Info returns the snapshot published by the last frame, or nil when
// Options.Inspect is off or no frame was drawn yet. It is safe to call from
// any goroutine.
func (l *Loop[D]) Info() *DebugInfo { return l.info.Load() }

func (l *Loop[D]) publish(now time.Duration, d animation.Domain) {
	l.info.Store(&DebugInfo{
		AppTimeMs: durationToMillis(now),
		Size:      l.target.Canvas().Size().String(),
		Factor:    d.Factor,
		Animating: l.animating,
		Rebuilds:  l.rebuilds,
		Source:    DescribeTree(l.source),
		Target:    DescribeTree(l.dest),
	})
}

var renderableType = reflect.TypeFor[render.Renderable]()

// DescribeTree returns the node types of a render tree. Children are found
// by walking the fields of each node that hold renderables.
func DescribeTree(r render.Renderable) *TreeNode {
	if r == nil {
		return nil
	}
	return describe(reflect.ValueOf(r), 0)
}

func describe(v reflect.Value, depth int) *TreeNode {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	node := &TreeNode{Type: shortTypeName(v.Type())}
	if v.Kind() != reflect.Struct {
		return node
	}
	if depth >= maxTreeDepth {
		node.Truncated = true
		return node
	}
	for i := range v.NumField() {
		node.Children = append(node.Children, children(v.Field(i), depth+1)...)
	}
	return node
}

func children(f reflect.Value, depth int) []*TreeNode {
	switch {
	case f.Type().Implements(renderableType):
		if child := describe(f, depth); child != nil {
			return []*TreeNode{child}
		}
	case (f.Kind() == reflect.Slice || f.Kind() == reflect.Array) && f.Type().Elem().Implements(renderableType):
		var nodes []*TreeNode
		for i := range f.Len() {
			if child := describe(f.Index(i), depth); child != nil {
				nodes = append(nodes, child)
			}
		}
		return nodes
	}
	return nil
}

// shortTypeName drops package paths from type arguments.
func shortTypeName(t reflect.Type) string {
	name := t.String()
	open := strings.IndexByte(name, '[')
	if open < 0 {
		return name
	}
	args := strings.Split(name[open+1:len(name)-1], ",")
	for i, a := range args {
		if slash := strings.LastIndexByte(a, '/'); slash >= 0 {
			args[i] = a[slash+1:]
		}
	}
	return name[:open+1] + strings.Join(args, ",") + "]"
}
