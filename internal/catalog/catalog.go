// Package catalog loads the FAQ tree from its declarative YAML form.
//
// A document is a nested mapping: mapping values are submenus and string
// values are final answers. Mapping order is menu order.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/faqbot/internal/domain"
	"gopkg.in/yaml.v3"
)

// RootLabel names the top-level menu.
const RootLabel = "Menu principal"

// ErrInvalidCatalog wraps every structural problem found while parsing.
var ErrInvalidCatalog = errors.New("invalid catalog")

//go:embed python_faq.yaml
var pythonFAQ []byte

// Default returns the built-in Python FAQ tree.
func Default() (*domain.Tree, error) {
	return Parse(pythonFAQ)
}

// LoadFile parses the catalog stored at path.
func LoadFile(path string) (*domain.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	tree, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

// Parse builds a tree from YAML data.
func Parse(data []byte) (*domain.Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidCatalog)
	}
	root, err := buildBranch(RootLabel, doc.Content[0], nil)
	if err != nil {
		return nil, err
	}
	return domain.NewTree(root), nil
}

func buildBranch(label string, n *yaml.Node, path []string) (*domain.Branch, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s: line %d: expected a mapping", ErrInvalidCatalog, where(path), n.Line)
	}
	children := make([]domain.Node, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if key.Kind != yaml.ScalarNode || strings.TrimSpace(key.Value) == "" {
			return nil, fmt.Errorf("%w: %s: line %d: option labels must be non-empty strings", ErrInvalidCatalog, where(path), key.Line)
		}
		childPath := append(append([]string(nil), path...), key.Value)

		switch val.Kind {
		case yaml.MappingNode:
			sub, err := buildBranch(key.Value, val, childPath)
			if err != nil {
				return nil, err
			}
			children = append(children, sub)
		case yaml.ScalarNode:
			if val.ShortTag() != "!!str" {
				return nil, fmt.Errorf("%w: %s: line %d: answer must be a string", ErrInvalidCatalog, where(childPath), val.Line)
			}
			children = append(children, domain.NewLeaf(key.Value, val.Value))
		default:
			return nil, fmt.Errorf("%w: %s: line %d: expected a submenu or an answer", ErrInvalidCatalog, where(childPath), val.Line)
		}
	}

	b, err := domain.NewBranch(label, children...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidCatalog, where(path), err)
	}
	return b, nil
}

func where(path []string) string {
	if len(path) == 0 {
		return "root"
	}
	return strings.Join(path, domain.PathSeparator)
}
