package xmlsoccer

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

const accountInformationElement = "AccountInformation"

// Node is a generic XML element. Every response is parsed into one before
// classification so the body is known to be well formed.
type Node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Content string     `xml:",chardata"`
	Nodes   []Node     `xml:",any"`
}

func parseDocument(body []byte) (*Node, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, crerr.New("empty body")
	}

	var root Node
	if err := xml.Unmarshal(trimmed, &root); err != nil {
		return nil, err
	}
	return &root, nil
}

func (n *Node) Name() string {
	if n == nil {
		return ""
	}
	return n.XMLName.Local
}

// Text is the trimmed character data directly inside the element.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.Content)
}

func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == name {
			return &n.Nodes[i]
		}
	}
	return nil
}

func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	out := make([]*Node, 0, len(n.Nodes))
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == name {
			out = append(out, &n.Nodes[i])
		}
	}
	return out
}

// ChildText returns the text of the first child called name.
func (n *Node) ChildText(name string) string {
	return n.Child(name).Text()
}

// canonicalNode copies the tree without the named elements at any depth, without
// namespace declarations and with character data trimmed.
func canonicalNode(n Node, drop string) Node {
	out := Node{
		XMLName: n.XMLName,
		Content: strings.TrimSpace(n.Content),
	}
	for _, attr := range n.Attrs {
		if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
			continue
		}
		out.Attrs = append(out.Attrs, attr)
	}
	if len(n.Nodes) == 0 {
		return out
	}
	out.Nodes = make([]Node, 0, len(n.Nodes))
	for _, child := range n.Nodes {
		if child.XMLName.Local == drop {
			continue
		}
		out.Nodes = append(out.Nodes, canonicalNode(child, drop))
	}
	return out
}

// contentHash fingerprints the document data independently of the account
// that fetched it.
func contentHash(doc *Node) (string, error) {
	if doc == nil {
		return "", crerr.New("nil document")
	}
	encoded, err := xml.Marshal(canonicalNode(*doc, accountInformationElement))
	if err != nil {
		return "", crerr.Wrap(err, "encode canonical document")
	}
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:]), nil
}
