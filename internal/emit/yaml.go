package emit

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlProject struct {
	Include   string `yaml:"include"`
	Directory string `yaml:"directory"`
}

type yamlSettings struct {
	RootName string        `yaml:"rootName,omitempty"`
	Projects []yamlProject `yaml:"projects"`
}

func writeYAML(w io.Writer, src Source) error {
	doc := yamlSettings{RootName: src.RootName()}
	for _, e := range src.Enumerate() {
		doc.Projects = append(doc.Projects, yamlProject{Include: e.ID, Directory: e.Directory})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML settings: %w", err)
	}
	return enc.Close()
}
