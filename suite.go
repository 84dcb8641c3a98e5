package runif

import (
	"sort"
	"strings"
)

// A Class represents a test class: a set of test methods sharing
// an instance factory, an optional gate and an optional precondition context.
type Class struct {
	Name        string
	Description string
	RunIf       *RunIf
	New         InstanceFunction
	Context     ContextFunction
	Methods     []*Method
}

// Method returns the method with the given name or nil.
func (c *Class) Method(name string) *Method {

	for _, m := range c.Methods {
		if m.Name == name {
			return m
		}
	}

	return nil
}

// Select returns a copy of the class that only holds the methods
// matching the given names and tags. Empty filters match everything.
func (c *Class) Select(names []string, tags []string, matchAll bool) *Class {

	out := *c
	out.Methods = nil

	for _, m := range c.Methods {

		if len(names) > 0 && !contains(names, m.Name) {
			continue
		}

		if !m.MatchTags(tags, matchAll) {
			continue
		}

		out.Methods = append(out.Methods, m)
	}

	return &out
}

func (c *Class) description(m *Method) Description {
	return Description{Class: c.Name, Method: m.Name}
}

// Classes is a set of classes keyed by name.
type Classes map[string]*Class

// Sorted returns the classes sorted by name.
func (s Classes) Sorted() (out []*Class) {

	for _, c := range s {
		out = append(out, c)
	}

	sort.Slice(out, func(i int, j int) bool {
		return strings.Compare(out[i].Name, out[j].Name) == -1
	})

	return out
}

func contains(values []string, value string) bool {

	for _, v := range values {
		if v == value {
			return true
		}
	}

	return false
}
