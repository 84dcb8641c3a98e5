package runif

import (
	"fmt"
	"strings"
)

// A Method represents a test method of a Class.
type Method struct {
	Name          string
	Description   string
	Author        string
	Tags          []string
	RunIf         *RunIf
	Preconditions []string
	Function      TestFunction
}

// MatchTags matches all tags if matchAll is set otherwise matches any tag.
func (m *Method) MatchTags(tags []string, matchAll bool) bool {

	if !matchAll {
		return m.matchAnyTags(tags)
	}

	return m.matchAllTags(tags)
}

// matchAllTags returns true if all incoming tags are matching minus exclusions
func (m *Method) matchAllTags(tags []string) bool {

	if len(tags) == 0 {
		return true
	}

	for _, incoming := range tags {
		if strings.HasPrefix(incoming, "~") {
			if m.hasTag(strings.TrimPrefix(incoming, "~")) {
				return false
			}

			continue
		}

		if !m.hasTag(incoming) {
			return false
		}
	}

	return true
}

// matchAnyTags returns true if any incoming tags are matching
func (m *Method) matchAnyTags(tags []string) bool {

	if len(tags) == 0 {
		return true
	}

	for _, incoming := range tags {
		if m.hasTag(incoming) {
			return true
		}
	}

	return false
}

func (m *Method) hasTag(tag string) bool {

	for _, t := range m.Tags {
		if tag == t {
			return true
		}
	}

	return false
}

func (m *Method) String() string {
	return fmt.Sprintf(`name          : %s
desc          : %s
author        : %s
tags          : %s
run if        : %s
preconditions : %s
`, m.Name, m.Description, m.Author, strings.Join(m.Tags, ", "), m.RunIf, strings.Join(m.Preconditions, ", "))
}
