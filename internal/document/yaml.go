package document

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const yamlStrTag = "!!str"

// Indentation widths the YAML emitter accepts; others fall back to 2.
const (
	minYAMLIndent = 2
	maxYAMLIndent = 9
)

// yamlDocument keeps the parsed node tree, so key order and comments survive
// the round-trip.
type yamlDocument struct {
	root    yaml.Node
	spacing int
}

func decodeYAML(data []byte, spacing int) (Document, error) {
	d := &yamlDocument{spacing: spacing}
	if err := yaml.Unmarshal(data, &d.root); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if d.root.Kind != yaml.DocumentNode || len(d.root.Content) == 0 || resolveAlias(d.root.Content[0]).Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing YAML: top-level value is %w", ErrNotMapping)
	}
	return d, nil
}

func (d *yamlDocument) mapping() *yaml.Node {
	return resolveAlias(d.root.Content[0])
}

func (d *yamlDocument) Get(path ...string) (string, bool) {
	cur := d.mapping()
	for _, key := range path {
		if cur.Kind != yaml.MappingNode {
			return "", false
		}
		if cur = mappingValue(cur, key); cur == nil {
			return "", false
		}
		cur = resolveAlias(cur)
	}
	if cur.Kind != yaml.ScalarNode || cur.ShortTag() != yamlStrTag {
		return "", false
	}
	return cur.Value, true
}

func (d *yamlDocument) Set(value string, path ...string) error {
	if len(path) == 0 {
		return errors.New("empty path")
	}

	m := d.mapping()
	for i, key := range path[:len(path)-1] {
		next := mappingValue(m, key)
		if next == nil {
			next = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			appendPair(m, key, next)
		}
		next = resolveAlias(next)
		if next.Kind != yaml.MappingNode {
			return fmt.Errorf("%s is %w", strings.Join(path[:i+1], "."), ErrNotMapping)
		}
		m = next
	}

	key := path[len(path)-1]
	node := mappingValue(m, key)
	if node == nil {
		appendPair(m, key, &yaml.Node{Kind: yaml.ScalarNode, Tag: yamlStrTag, Value: value})
		return nil
	}
	if node.Kind != yaml.ScalarNode {
		*node = yaml.Node{Kind: yaml.ScalarNode}
	}
	// The encoder quotes the value when a plain scalar would resolve to
	// another type, e.g. 1.10 as a float.
	node.Tag = yamlStrTag
	node.Value = value
	return nil
}

// Encode writes the node tree with the configured indentation, clamped to
// the widths the emitter supports.
func (d *yamlDocument) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent(d.spacing))
	if err := enc.Encode(&d.root); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	return buf.Bytes(), nil
}

func yamlIndent(spacing int) int {
	n := min(max(spacing, minYAMLIndent), maxYAMLIndent)
	if n != spacing {
		logger.Warnf("YAML indentation %d is not supported, using %d", spacing, n)
	}
	return n
}

// mappingValue returns the value node stored under key in mapping m.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: yamlStrTag, Value: key},
		value,
	)
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
