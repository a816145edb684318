package tinyqrc

import (
	"regexp"
)

// allowedAttributes may be passed through onto the document root.
var allowedAttributes = map[string]bool{
	"id":                  true,
	"class":               true,
	"style":               true,
	"lang":                true,
	"opacity":             true,
	"transform":           true,
	"preserveAspectRatio": true,
	"focusable":           true,
	"tabindex":            true,
}

// reservedAttributes are written by the renderer itself.
var reservedAttributes = map[string]bool{
	"width":          true,
	"height":         true,
	"viewBox":        true,
	"xmlns":          true,
	"role":           true,
	"aria-label":     true,
	"data-generator": true,
}

var prefixedAttribute = regexp.MustCompile(`^(data|aria)-[a-z0-9]+(-[a-z0-9]+)*$`)

// AllowedAttribute reports whether name may be passed through onto the
// document root.
func AllowedAttribute(name string) bool {
	if reservedAttributes[name] {
		return false
	}

	return allowedAttributes[name] || prefixedAttribute.MatchString(name)
}

func validateAttributes(attrs []Attr) error {
	seen := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		if !AllowedAttribute(a.Name) {
			return invalid("attributes", "%q is not an allowed attribute", a.Name)
		}
		if seen[a.Name] {
			return invalid("attributes", "%q given more than once", a.Name)
		}
		seen[a.Name] = true
	}

	return nil
}
