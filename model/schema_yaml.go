package model

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SchemaFile represents a schema.yaml document declaring the node types a
// document may contain.
//
// Example:
//
//	types:
//	  - name: doc
//	  - name: paragraph
//	  - name: image
//	    inline: true
//	    leaf: true
type SchemaFile struct {
	// Types lists the structural node types, in declaration order.
	Types []NodeTypeSpec `yaml:"types"`
}

// NodeTypeSpec declares one node type in a schema file.
type NodeTypeSpec struct {
	Name   string `yaml:"name"`
	Inline bool   `yaml:"inline,omitempty"`
	Leaf   bool   `yaml:"leaf,omitempty"`
}

// LoadSchema reads and parses a schema file from the given path.
// If the path is a directory, it looks for schema.yaml or schema.yml in
// that directory.
func LoadSchema(path string) (*Schema, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	var schemaPath string
	if info.IsDir() {
		// Try schema.yaml first, then schema.yml
		yamlPath := filepath.Join(path, "schema.yaml")
		if _, err := os.Stat(yamlPath); err == nil {
			schemaPath = yamlPath
		} else {
			ymlPath := filepath.Join(path, "schema.yml")
			if _, err := os.Stat(ymlPath); err == nil {
				schemaPath = ymlPath
			} else {
				return nil, fmt.Errorf("no schema.yaml or schema.yml found in %s", path)
			}
		}
	} else {
		schemaPath = path
	}

	data, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var file SchemaFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse schema file: %w", err)
	}

	types := make([]NodeType, len(file.Types))
	for i, spec := range file.Types {
		types[i] = NodeType{Name: spec.Name, Inline: spec.Inline, Leaf: spec.Leaf}
	}

	schema, err := NewSchema(types...)
	if err != nil {
		return nil, fmt.Errorf("invalid schema in %s: %w", schemaPath, err)
	}
	return schema, nil
}

// LoadSchemaFromDir searches for a schema file starting from the given
// directory and walking up to parent directories until found or root is
// reached.
func LoadSchemaFromDir(dir string) (*Schema, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		schema, err := LoadSchema(absDir)
		if err == nil {
			return schema, nil
		}

		// Move to parent directory
		parent := filepath.Dir(absDir)
		if parent == absDir {
			// Reached root
			return nil, fmt.Errorf("no schema.yaml found in %s or parent directories", dir)
		}
		absDir = parent
	}
}
