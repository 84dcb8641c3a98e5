package runif

// SelectClasses filters the classes by name, then their methods by name and tags.
// Classes left without methods are dropped.
func SelectClasses(classes []*Class, names []string, methods []string, tags []string, matchAll bool) []*Class {

	out := []*Class{}

	for _, c := range classes {

		if len(names) > 0 && !contains(names, c.Name) {
			continue
		}

		selected := c.Select(methods, tags, matchAll)
		if len(selected.Methods) > 0 {
			out = append(out, selected)
		}
	}

	return out
}
