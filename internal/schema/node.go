// Package schema models the balance-sheet template as a tagged tree: a node is a
// section (ordered named children), a numeric leaf, or a text leaf. Fields are
// addressed with dotted paths such as "assets.current_assets.cash.1010_checking".
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"fjacquet/balance-sheet/internal/parsererror"
)

// Kind tags the variant held by a Node.
type Kind int

const (
	Section Kind = iota
	Numeric
	Text
)

func (k Kind) String() string {
	switch k {
	case Section:
		return "section"
	case Numeric:
		return "numeric leaf"
	case Text:
		return "text leaf"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Entry is one named child of a section.
type Entry struct {
	Key  string
	Node *Node
}

// Node is a section, a numeric leaf or a text leaf. Sections keep their children
// in declaration order; that order drives every traversal.
type Node struct {
	kind    Kind
	number  float64
	text    string
	entries []Entry
	index   map[string]int
}

// NewSection builds a section from entries, in the given order.
func NewSection(entries ...Entry) *Node {
	n := &Node{kind: Section, index: make(map[string]int, len(entries))}
	for _, e := range entries {
		n.Put(e.Key, e.Node)
	}
	return n
}

// NewNumeric builds a numeric leaf.
func NewNumeric(v float64) *Node {
	return &Node{kind: Numeric, number: v}
}

// NewText builds a text leaf.
func NewText(s string) *Node {
	return &Node{kind: Text, text: s}
}

// Field is shorthand for an Entry literal.
func Field(key string, node *Node) Entry {
	return Entry{Key: key, Node: node}
}

func (n *Node) Kind() Kind      { return n.kind }
func (n *Node) Number() float64 { return n.number }
func (n *Node) Text() string    { return n.text }

// IsSection reports whether n is a non-nil section.
func (n *Node) IsSection() bool { return n != nil && n.kind == Section }

// Entries returns the children of a section in declaration order. Leaves have none.
func (n *Node) Entries() []Entry {
	return append([]Entry(nil), n.entries...)
}

// Len returns the number of direct children.
func (n *Node) Len() int { return len(n.entries) }

// Child returns the named direct child of a section.
func (n *Node) Child(key string) (*Node, bool) {
	if n == nil || n.kind != Section {
		return nil, false
	}
	i, ok := n.index[key]
	if !ok {
		return nil, false
	}
	return n.entries[i].Node, true
}

// Put adds or replaces a direct child. A replaced child keeps its position.
func (n *Node) Put(key string, child *Node) {
	if n.index == nil {
		n.index = make(map[string]int)
	}
	if i, ok := n.index[key]; ok {
		n.entries[i].Node = child
		return
	}
	n.index[key] = len(n.entries)
	n.entries = append(n.entries, Entry{Key: key, Node: child})
}

// Clone returns a deep copy.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{kind: n.kind, number: n.number, text: n.text}
	if n.kind == Section {
		c.entries = make([]Entry, len(n.entries))
		c.index = make(map[string]int, len(n.entries))
		for i, e := range n.entries {
			c.entries[i] = Entry{Key: e.Key, Node: e.Node.Clone()}
			c.index[e.Key] = i
		}
	}
	return c
}

// Equal reports whether two trees have the same shape, order and values.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case Numeric:
		return n.number == other.number
	case Text:
		return n.text == other.text
	}
	if len(n.entries) != len(other.entries) {
		return false
	}
	for i, e := range n.entries {
		o := other.entries[i]
		if e.Key != o.Key || !e.Node.Equal(o.Node) {
			return false
		}
	}
	return true
}

// JoinPath appends key to a dotted prefix.
func JoinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// Lookup resolves a dotted path from n.
func (n *Node) Lookup(path string) (*Node, bool) {
	cur := n
	for _, key := range strings.Split(path, ".") {
		next, ok := cur.Child(key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// SetNumber assigns a numeric leaf at path. Every intermediate segment must be an
// existing section; a missing final leaf is created at the end of its section.
func (n *Node) SetNumber(path string, v float64) error {
	return n.setLeaf(path, NewNumeric(v))
}

// SetText assigns a text leaf at path, with the same rules as SetNumber.
func (n *Node) SetText(path string, v string) error {
	return n.setLeaf(path, NewText(v))
}

func (n *Node) setLeaf(path string, leaf *Node) error {
	if !n.IsSection() {
		return &parsererror.SchemaError{Reason: "template root is not a section"}
	}
	keys := strings.Split(path, ".")
	parent := n
	for i, key := range keys[:len(keys)-1] {
		next, ok := parent.Child(key)
		if !ok {
			return &parsererror.SchemaError{Path: strings.Join(keys[:i+1], "."), Reason: "section is missing"}
		}
		if next == nil {
			return &parsererror.SchemaError{Path: strings.Join(keys[:i+1], "."), Reason: nilNodeReason}
		}
		if next.kind != Section {
			return &parsererror.SchemaError{Path: strings.Join(keys[:i+1], "."), Reason: "expected a section, found a " + next.kind.String()}
		}
		parent = next
	}

	last := keys[len(keys)-1]
	if existing, ok := parent.Child(last); ok && existing != nil && existing.kind != leaf.kind {
		return &parsererror.SchemaError{Path: path, Reason: fmt.Sprintf("expected a %s, found a %s", leaf.kind, existing.kind)}
	}
	parent.Put(last, leaf)
	return nil
}

// nilNodeReason reports a section entry built with a nil node.
const nilNodeReason = "entry has no node"

// SkipSection can be returned by a WalkFunc to skip a section's children.
var SkipSection = errors.New("skip this section")

// WalkFunc is called for every node below the root, in declaration order.
type WalkFunc func(path string, key string, node *Node) error

// Walk visits every descendant of n depth-first. Sections are visited before their
// children. Returning SkipSection from a section skips its subtree.
func (n *Node) Walk(fn WalkFunc) error {
	return n.walk("", fn)
}

func (n *Node) walk(prefix string, fn WalkFunc) error {
	for _, e := range n.entries {
		path := JoinPath(prefix, e.Key)
		if e.Node == nil {
			return &parsererror.SchemaError{Path: path, Reason: nilNodeReason}
		}
		err := fn(path, e.Key, e.Node)
		if errors.Is(err, SkipSection) {
			continue
		}
		if err != nil {
			return err
		}
		if e.Node.kind == Section {
			if err := e.Node.walk(path, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// MarshalJSON writes sections as objects with keys in declaration order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.writeJSON(&buf, ""); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) writeJSON(buf *bytes.Buffer, path string) error {
	if n == nil {
		return &parsererror.SchemaError{Path: path, Reason: nilNodeReason}
	}
	switch n.kind {
	case Numeric:
		b, err := json.Marshal(n.number)
		if err != nil {
			return err
		}
		buf.Write(b)
	case Text:
		b, err := json.Marshal(n.text)
		if err != nil {
			return err
		}
		buf.Write(b)
	default:
		buf.WriteByte('{')
		for i, e := range n.entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(e.Key)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := e.Node.writeJSON(buf, JoinPath(path, e.Key)); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// UnmarshalJSON decodes an object into a section tree, keeping key order.
func (n *Node) UnmarshalJSON(data []byte) error {
	decoded, err := Load(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*n = *decoded
	return nil
}
