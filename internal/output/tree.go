package output

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"
)

// treeNode is one entry of a rendered project layout.
type treeNode struct {
	name     string
	dir      bool
	children map[string]*treeNode
}

func (n *treeNode) child(name string, dir bool) *treeNode {
	if c, ok := n.children[name]; ok {
		c.dir = c.dir || dir
		return c
	}
	c := &treeNode{name: name, dir: dir, children: make(map[string]*treeNode)}
	n.children[name] = c
	return c
}

// sorted returns the children with directories first, then by name.
func (n *treeNode) sorted() []*treeNode {
	out := make([]*treeNode, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *treeNode) int {
		if a.dir != b.dir {
			if a.dir {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.name, b.name)
	})
	return out
}

func (n *treeNode) label() string {
	if n.dir {
		return n.name + "/"
	}
	return n.name
}

// RenderTree draws slash-separated paths relative to root as a directory
// tree. A path ending in "/" is a directory, as is every intermediate
// segment. It returns "" when paths is empty.
func RenderTree(root string, paths []string) string {
	if len(paths) == 0 {
		return ""
	}

	top := &treeNode{name: root, dir: true, children: make(map[string]*treeNode)}
	for _, p := range paths {
		p = filepath.ToSlash(p)
		segments := strings.Split(strings.Trim(p, "/"), "/")
		n := top
		for i, seg := range segments {
			n = n.child(seg, i < len(segments)-1 || strings.HasSuffix(p, "/"))
		}
	}

	var sb strings.Builder
	sb.WriteString(StyleSummary.Render(top.label()) + "\n")
	writeBranches(&sb, top, "")
	return sb.String()
}

func writeBranches(sb *strings.Builder, n *treeNode, indent string) {
	kids := n.sorted()
	for i, c := range kids {
		branch, next := "├── ", "│   "
		if i == len(kids)-1 {
			branch, next = "└── ", "    "
		}
		sb.WriteString(StyleDim.Render(indent+branch) + c.label() + "\n")
		writeBranches(sb, c, indent+next)
	}
}
