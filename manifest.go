package runif

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// A Manifest declares gates, preconditions and tags for registered classes.
// It lets the conditions of a suite live next to the deployment instead of the code.
//
//	classes:
//	  - name: Network
//	    run_if:
//	      checker: os
//	      arguments: [linux]
//	    methods:
//	      - name: Ping
//	        preconditions: [tempdir]
type Manifest struct {
	Classes []ClassManifest `yaml:"classes"`
}

// A ClassManifest holds the declarations for one class.
type ClassManifest struct {
	Name    string           `yaml:"name"`
	RunIf   *RunIf           `yaml:"run_if,omitempty"`
	Methods []MethodManifest `yaml:"methods,omitempty"`
}

// A MethodManifest holds the declarations for one method.
type MethodManifest struct {
	Name          string   `yaml:"name"`
	RunIf         *RunIf   `yaml:"run_if,omitempty"`
	Preconditions []string `yaml:"preconditions,omitempty"`
	Tags          []string `yaml:"tags,omitempty"`
}

// LoadManifest reads and parses the manifest at the given path.
func LoadManifest(path string) (*Manifest, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read manifest at path %s: %w", path, err)
	}

	return ParseManifest(data)
}

// ParseManifest parses a manifest.
func ParseManifest(data []byte) (*Manifest, error) {

	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("unable to parse manifest: %w", err)
	}

	return m, nil
}

// Apply sets the declarations on the classes of the registry.
// A class or method can only have one gate and one precondition list: declaring
// one in the manifest for a class or method that already has one in code is an error.
// Every entry is checked before any class is changed, so a failed Apply leaves the registry untouched.
func (m *Manifest) Apply(r *Registry) error {

	r.lock.Lock()
	defer r.lock.Unlock()

	changes, err := m.plan(r.classes)
	if err != nil {
		return err
	}

	for _, c := range changes {
		c()
	}

	return nil
}

// plan checks the manifest against the classes and returns the changes to make.
func (m *Manifest) plan(classes Classes) ([]func(), error) {

	var changes []func()

	classGated := map[string]bool{}
	methodGated := map[*Method]bool{}
	methodChained := map[*Method]bool{}

	for _, cm := range m.Classes {

		c, ok := classes[cm.Name]
		if !ok {
			return nil, fmt.Errorf("manifest references unknown class '%s'", cm.Name)
		}

		if cm.RunIf != nil {
			if c.RunIf != nil || classGated[c.Name] {
				return nil, newConfigurationError(Description{Class: c.Name}, nil, "run if declared twice")
			}
			classGated[c.Name] = true

			c, spec := c, cm.RunIf
			changes = append(changes, func() { c.RunIf = spec })
		}

		for _, mm := range cm.Methods {

			method := c.Method(mm.Name)
			if method == nil {
				return nil, fmt.Errorf("manifest references unknown method '%s' of class '%s'", mm.Name, cm.Name)
			}

			d := c.description(method)

			if mm.RunIf != nil {
				if method.RunIf != nil || methodGated[method] {
					return nil, newConfigurationError(d, nil, "run if declared twice")
				}
				methodGated[method] = true

				method, spec := method, mm.RunIf
				changes = append(changes, func() { method.RunIf = spec })
			}

			if len(mm.Preconditions) > 0 {
				if len(method.Preconditions) > 0 || methodChained[method] {
					return nil, newConfigurationError(d, nil, "preconditions declared twice")
				}
				methodChained[method] = true

				method, names := method, append([]string(nil), mm.Preconditions...)
				changes = append(changes, func() { method.Preconditions = names })
			}

			if len(mm.Tags) > 0 {
				method, tags := method, mm.Tags
				changes = append(changes, func() { method.Tags = append(method.Tags, tags...) })
			}
		}
	}

	return changes, nil
}
