package results

import (
	"github.com/notargets/strengl/utils"
)

// Node is a grid point displacement result
type Node struct {
	id           Identity
	translations Vec3 // dx, dy, dz
	rotations    Vec3 // rx, ry, rz
}

// NewNode validates and copies the component vectors
func NewNode(id Identity, translations, rotations []float64) (*Node, error) {
	tr, err := vec3From("translations", translations)
	if err != nil {
		return nil, err
	}
	rot, err := vec3From("rotations", rotations)
	if err != nil {
		return nil, err
	}
	return &Node{id: id, translations: tr, rotations: rot}, nil
}

func (n *Node) Identity() Identity { return n.id }
func (n *Node) Kind() Kind         { return KindNode }
func (n *Node) Translations() Vec3 { return n.translations }
func (n *Node) Rotations() Vec3    { return n.rotations }

func (n *Node) Components() []Component {
	return []Component{
		{"T1", n.translations[0]}, {"T2", n.translations[1]}, {"T3", n.translations[2]},
		{"R1", n.rotations[0]}, {"R2", n.rotations[1]}, {"R3", n.rotations[2]},
	}
}

func (n *Node) derive(translations, rotations Vec3) *Node {
	return &Node{id: n.id.combined(), translations: translations, rotations: rotations}
}

func asNode(op string, other Result) (*Node, error) {
	o, ok := other.(*Node)
	if !ok {
		return nil, mismatch(op, KindNode, other)
	}
	return o, nil
}

func (n *Node) Add(other Result) (Result, error) {
	o, err := asNode("add", other)
	if err != nil {
		return nil, err
	}
	return n.derive(n.translations.Add(o.translations), n.rotations.Add(o.rotations)), nil
}

func (n *Node) Sub(other Result) (Result, error) {
	o, err := asNode("subtract", other)
	if err != nil {
		return nil, err
	}
	return n.derive(n.translations.Sub(o.translations), n.rotations.Sub(o.rotations)), nil
}

func (n *Node) Scale(k float64) Result {
	return n.derive(n.translations.Scale(k), n.rotations.Scale(k))
}

func (n *Node) ScaleInPlace(k float64) Result {
	n.translations = n.translations.Scale(k)
	n.rotations = n.rotations.Scale(k)
	return n
}

func (n *Node) Div(k float64) (Result, error) {
	if err := checkDivisor(k); err != nil {
		return nil, err
	}
	q := n.derive(n.translations.Div(k), n.rotations.Div(k))
	if err := checkFinite("divide", q); err != nil {
		return nil, err
	}
	return q, nil
}

// DivInPlace leaves the receiver unchanged when it fails
func (n *Node) DivInPlace(k float64) error {
	out, err := n.Div(k)
	if err != nil {
		return err
	}
	q := out.(*Node)
	n.translations = q.translations
	n.rotations = q.rotations
	return nil
}

// Rotate expresses translations and rotations in the frame R
func (n *Node) Rotate(R utils.DCM) Result {
	return &Node{id: n.id, translations: n.translations.Rotate(R), rotations: n.rotations.Rotate(R)}
}
