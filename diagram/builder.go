package diagram

import "strings"

type Kind string

const (
	KindComputeInstance Kind = "ComputeInstance"
	KindLoadBalancer    Kind = "LoadBalancer"
)

type Style struct {
	Fill   string
	Stroke string
	Shape  string
}

var kindStyles = map[Kind]Style{
	KindComputeInstance: {Fill: "#ED7100", Stroke: "#ffffff", Shape: "mxgraph.aws4.ec2"},
	KindLoadBalancer:    {Fill: "#8C4FFF", Stroke: "#ffffff", Shape: "mxgraph.aws4.application_load_balancer"},
}

// StyleFor resolves the visual style for a resource kind.
func StyleFor(kind Kind) (Style, error) {
	style, ok := kindStyles[kind]
	if !ok {
		return Style{}, &UnknownKindError{Kind: kind}
	}
	return style, nil
}

// Node is one resource in the topology diagram. References lists the names of
// the nodes this node depends on; the importer draws them as inbound arrows.
type Node struct {
	Name       string
	Kind       Kind
	Style      Style
	References []string
}

// Builder accumulates nodes and validates reference targets against the names
// it has issued so far. Output order is insertion order.
type Builder struct {
	nodes      []*Node
	issuedName map[string]bool
}

func NewBuilder() *Builder {
	return &Builder{
		issuedName: map[string]bool{},
	}
}

// NewNode constructs a node with no references and registers its name with the
// builder. Names must be non-empty and free of the CSV delimiters.
func (builder *Builder) NewNode(kind Kind, name string) (*Node, error) {
	if name == "" || strings.ContainsAny(name, ",\n") {
		return nil, &InvalidNameError{Name: name}
	}

	style, err := StyleFor(kind)
	if err != nil {
		return nil, err
	}

	node := &Node{
		Name:  name,
		Kind:  kind,
		Style: style,
	}
	builder.nodes = append(builder.nodes, node)
	builder.issuedName[name] = true
	return node, nil
}

// AddReference records that node depends on the node named targetName. The
// target must already have been issued by this builder. Duplicate references
// are dropped.
func (builder *Builder) AddReference(node *Node, targetName string) error {
	if !builder.issuedName[targetName] {
		return &UnknownTargetError{Target: targetName}
	}

	for _, existing := range node.References {
		if existing == targetName {
			return nil
		}
	}

	node.References = append(node.References, targetName)
	return nil
}

// Nodes returns the nodes in insertion order.
func (builder *Builder) Nodes() []*Node {
	return builder.nodes
}
