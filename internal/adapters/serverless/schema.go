package serverless

import "gopkg.in/yaml.v3"

// serviceFile is the subset of serverless.yml the plugin reads.
type serviceFile struct {
	Service   serviceName            `yaml:"service"`
	Functions map[string]functionDTO `yaml:"functions"`
	Custom    map[string]yaml.Node   `yaml:"custom"`
}

// serviceName accepts both `service: name` and `service: {name: name}`.
type serviceName string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *serviceName) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var long struct {
			Name string `yaml:"name"`
		}
		if err := node.Decode(&long); err != nil {
			return err
		}
		*s = serviceName(long.Name)
		return nil
	}
	var short string
	if err := node.Decode(&short); err != nil {
		return err
	}
	*s = serviceName(short)
	return nil
}

// functionDTO is one entry of the functions block.
type functionDTO struct {
	Handler string `yaml:"handler"`
}
