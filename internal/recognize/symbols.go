package recognize

import (
	"regexp"
	"strings"
)

var (
	symbolPageRE     = regexp.MustCompile(`^(?P<kind>[a-z]+)\.(?P<name>.+)\.html$`)
	memberFragmentRE = regexp.MustCompile(`^(?:method|tymethod|structfield|variant|associatedtype|associatedconstant)\.(?P<name>.+)$`)
)

// parseSymbolPage splits a documentation page filename of the form
// "<kind>.<Name>.html" into item kind and symbol name.
func parseSymbolPage(page string) (kind, name string, ok bool) {
	m := symbolPageRE.FindStringSubmatch(page)
	if m == nil {
		return "", "", false
	}
	return m[symbolPageRE.SubexpIndex("kind")], m[symbolPageRE.SubexpIndex("name")], true
}

// parseMemberFragment extracts the member name from anchors such as
// "method.insert" or "structfield.len".
func parseMemberFragment(fragment string) (string, bool) {
	m := memberFragmentRE.FindStringSubmatch(fragment)
	if m == nil {
		return "", false
	}
	return m[memberFragmentRE.SubexpIndex("name")], true
}

// symbolPath resolves documentation path segments below a crate root
// into the "::"-joined symbol path the page documents. rest holds the
// segments after the crate root; every leading one is a module, and
// the final one is either a page filename, "index.html", or the empty
// segment of a trailing slash (the latter two name the module itself).
// A fragment naming a member extends the path one step further.
// Primitive pages drop the crate from the path when
// primitivesOmitCrate is set, matching how the standard library
// presents them.
func symbolPath(crate string, rest []string, fragment string, primitivesOmitCrate bool) (string, bool) {
	parts := []string{crate}
	if len(rest) == 0 {
		return crate, true
	}

	page := rest[len(rest)-1]
	for _, module := range rest[:len(rest)-1] {
		if module == "" {
			return "", false
		}
		parts = append(parts, module)
	}

	if page != "" && page != "index.html" {
		kind, name, ok := parseSymbolPage(page)
		if !ok {
			return "", false
		}
		if kind == "primitive" && primitivesOmitCrate {
			parts = parts[1:]
		}
		parts = append(parts, name)
		if member, ok := parseMemberFragment(fragment); ok {
			parts = append(parts, member)
		}
	}

	return strings.Join(parts, "::"), true
}
