package richtext

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML reads a document written as a markdown string.
func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	var source string
	if err := value.Decode(&source); err != nil {
		return fmt.Errorf("rich text must be a markdown string (line %d): %w", value.Line, err)
	}

	*d = ParseMarkdown(source)
	return nil
}
