package fhirpath

import (
	"strconv"
	"strings"
)

// NoIndex marks the absence of an index selector.
const NoIndex = -1

// Node is a node of the expression tree. The tree is immutable once parsed.
type Node interface {
	// Pos returns the byte offset of the node in the expression source.
	Pos() int
	String() string
}

// RootNode is the leftmost identifier of a path term.
// It refers to the evaluation root if Name matches the root's type name,
// otherwise it is a path step against the current collection.
type RootNode struct {
	Offset int
	Name   string
	Index  int
}

// PathNode descends into the property Name of every element of the current collection.
type PathNode struct {
	Offset int
	Name   string
	Index  int
}

// FunctionNode invokes a function on the current collection.
type FunctionNode struct {
	Offset int
	Name   string
	Args   []Node
	Index  int
}

// LiteralNode holds a system value parsed from the source.
type LiteralNode struct {
	Offset int
	Value  Element
}

// BinaryNode covers arithmetic, logical, comparison, type and path-join operators.
// For OpIs and OpAs, Right is a *TypeSpecifierNode.
type BinaryNode struct {
	Offset int
	Op     Operator
	Left   Node
	Right  Node
}

// TypeSpecifierNode names a type, optionally qualified with System or FHIR.
type TypeSpecifierNode struct {
	Offset    int
	Namespace string
	Name      string
}

type UnaryNode struct {
	Offset  int
	Op      Operator
	Operand Node
}

// ParenNode is a parenthesized expression, optionally followed by an index selector.
type ParenNode struct {
	Offset int
	Expr   Node
	Index  int
}

func (n *RootNode) Pos() int          { return n.Offset }
func (n *PathNode) Pos() int          { return n.Offset }
func (n *FunctionNode) Pos() int      { return n.Offset }
func (n *LiteralNode) Pos() int       { return n.Offset }
func (n *BinaryNode) Pos() int        { return n.Offset }
func (n *TypeSpecifierNode) Pos() int { return n.Offset }
func (n *UnaryNode) Pos() int         { return n.Offset }
func (n *ParenNode) Pos() int         { return n.Offset }

func (n *RootNode) String() string {
	return identifier(n.Name) + indexSuffix(n.Index)
}

func (n *PathNode) String() string {
	return identifier(n.Name) + indexSuffix(n.Index)
}

func (n *FunctionNode) String() string {
	args := make([]string, 0, len(n.Args))
	for _, a := range n.Args {
		args = append(args, a.String())
	}
	return identifier(n.Name) + "(" + strings.Join(args, ", ") + ")" + indexSuffix(n.Index)
}

func (n *LiteralNode) String() string {
	switch v := n.Value.(type) {
	case String:
		return quote(string(v), '\'')
	case DateTime:
		return "@" + v.String()
	default:
		return v.String()
	}
}

func (n *BinaryNode) String() string {
	if n.Op == OpDot {
		return n.Left.String() + "." + n.Right.String()
	}
	return n.Left.String() + " " + n.Op.String() + " " + n.Right.String()
}

func (n *TypeSpecifierNode) String() string {
	if n.Namespace != "" {
		return n.Namespace + "." + n.Name
	}
	return n.Name
}

func (n *UnaryNode) String() string {
	return n.Op.String() + n.Operand.String()
}

func (n *ParenNode) String() string {
	return "(" + n.Expr.String() + ")" + indexSuffix(n.Index)
}

func indexSuffix(index int) string {
	if index == NoIndex {
		return ""
	}
	return "[" + strconv.Itoa(index) + "]"
}

func identifier(name string) string {
	if name == "" || !isIdentStart(name[0]) {
		return quote(name, '`')
	}
	for i := 1; i < len(name); i++ {
		if !isIdentPart(name[i]) {
			return quote(name, '`')
		}
	}
	if _, ok := keywordOperators[name]; ok {
		return quote(name, '`')
	}
	return name
}

var quoteEscaper = strings.NewReplacer(
	`\`, `\\`,
	"'", `\'`,
	"`", "\\`",
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\f", `\f`,
)

func quote(s string, delim byte) string {
	return string(delim) + quoteEscaper.Replace(s) + string(delim)
}
