package recognize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSymbolPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page string
		kind string
		name string
		ok   bool
	}{
		{"struct.String.html", "struct", "String", true},
		{"enum.Option.html", "enum", "Option", true},
		{"trait.Iterator.html", "trait", "Iterator", true},
		{"fn.read_to_string.html", "fn", "read_to_string", true},
		{"primitive.str.html", "primitive", "str", true},
		{"macro.println.html", "macro", "println", true},
		{"index.html", "", "", false},
		{"README.md", "", "", false},
		{"struct.html", "", "", false},
	}

	for _, tt := range tests {
		kind, name, ok := parseSymbolPage(tt.page)
		assert.Equal(t, tt.ok, ok, "parseSymbolPage(%q)", tt.page)
		assert.Equal(t, tt.kind, kind, "parseSymbolPage(%q)", tt.page)
		assert.Equal(t, tt.name, name, "parseSymbolPage(%q)", tt.page)
	}
}

func TestParseMemberFragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fragment string
		name     string
		ok       bool
	}{
		{"method.parse", "parse", true},
		{"tymethod.next", "next", true},
		{"structfield.len", "len", true},
		{"variant.Some", "Some", true},
		{"associatedtype.Item", "Item", true},
		{"associatedconstant.MAX", "MAX", true},
		{"impl-Display-for-String", "", false},
		{"examples", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		name, ok := parseMemberFragment(tt.fragment)
		assert.Equal(t, tt.ok, ok, "parseMemberFragment(%q)", tt.fragment)
		assert.Equal(t, tt.name, name, "parseMemberFragment(%q)", tt.fragment)
	}
}

func TestSymbolPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		crate          string
		rest           []string
		fragment       string
		primitivesOmit bool
		want           string
		ok             bool
	}{
		{name: "CrateRootBare", crate: "serde", rest: nil, want: "serde", ok: true},
		{name: "CrateRootTrailingSlash", crate: "serde", rest: []string{""}, want: "serde", ok: true},
		{name: "CrateRootIndex", crate: "serde", rest: []string{"index.html"}, want: "serde", ok: true},
		{name: "NestedModuleIndex", crate: "tokio", rest: []string{"sync", "mpsc", "index.html"}, want: "tokio::sync::mpsc", ok: true},
		{name: "SymbolPage", crate: "std", rest: []string{"vec", "struct.Vec.html"}, want: "std::vec::Vec", ok: true},
		{name: "SymbolWithMember", crate: "serde", rest: []string{"trait.Serialize.html"}, fragment: "tymethod.serialize", want: "serde::Serialize::serialize", ok: true},
		{name: "MemberIgnoredOnIndex", crate: "std", rest: []string{"vec", "index.html"}, fragment: "method.push", want: "std::vec", ok: true},
		{name: "PrimitiveOmitsCrate", crate: "std", rest: []string{"primitive.str.html"}, primitivesOmit: true, want: "str", ok: true},
		{name: "PrimitiveKeptWithoutFlag", crate: "std", rest: []string{"primitive.str.html"}, want: "std::str", ok: true},
		{name: "PrimitiveMemberOmitsCrate", crate: "std", rest: []string{"primitive.str.html"}, fragment: "method.parse", primitivesOmit: true, want: "str::parse", ok: true},
		{name: "EmptyModuleSegment", crate: "std", rest: []string{"", "struct.Vec.html"}, ok: false},
		{name: "UnparseablePage", crate: "std", rest: []string{"vec", "notes.txt"}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := symbolPath(tt.crate, tt.rest, tt.fragment, tt.primitivesOmit)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
