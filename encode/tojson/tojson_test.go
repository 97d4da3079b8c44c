package tojson_test

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/tomlforge/toml/encode/tojson"
	"github.com/tomlforge/toml/parser"
	"github.com/tomlforge/toml/version"
)

func TestEncodeNestedTablesPreservesOrder(t *testing.T) {
	root, errs := parser.Parse("[a.b.c]\nanswer = 42\n\n[a]\nbetter = 43\n", version.Default)
	qt.Assert(t, qt.HasLen(errs, 0))
	got := tojson.Encode(root)
	want := "{\n  \"a\" : {\n    \"b\" : {\n      \"c\" : {\n        \"answer\" : 42\n      }\n    },\n    \"better\" : 43\n  }\n}\n"
	qt.Assert(t, qt.Equals(got, want))
}

func TestEncodeArraysAndLeaves(t *testing.T) {
	root, errs := parser.Parse("nums = [1, 2, 3]\nname = \"ab\\tc\"\n", version.Default)
	qt.Assert(t, qt.HasLen(errs, 0))
	got := tojson.Encode(root)
	want := "{\n  \"nums\" : [\n    1,\n    2,\n    3\n  ],\n  \"name\" : \"ab\\tc\"\n}\n"
	qt.Assert(t, qt.Equals(got, want))
}

func TestEncodeEmptyTableAndArray(t *testing.T) {
	root, errs := parser.Parse("nums = []\n[empty]\n", version.Default)
	qt.Assert(t, qt.HasLen(errs, 0))
	got := tojson.Encode(root)
	want := "{\n  \"nums\" : [],\n  \"empty\" : {}\n}\n"
	qt.Assert(t, qt.Equals(got, want))
}

func TestEncodeDatetimesAsQuotedISO8601(t *testing.T) {
	root, errs := parser.Parse("a = 1979-05-27T07:32:00-08:00\nb = 1979-05-27\nc = 07:32:00\n", version.Default)
	qt.Assert(t, qt.HasLen(errs, 0))
	got := tojson.Encode(root)
	want := "{\n  \"a\" : \"1979-05-27T07:32:00-08:00\",\n  \"b\" : \"1979-05-27\",\n  \"c\" : \"07:32:00\"\n}\n"
	qt.Assert(t, qt.Equals(got, want))
}

func TestEncodeStringEscaping(t *testing.T) {
	root, errs := parser.Parse(`s = "a\"b\\c\nd"`, version.Default)
	qt.Assert(t, qt.HasLen(errs, 0))
	got := tojson.Encode(root)
	want := "{\n  \"s\" : \"a\\\"b\\\\c\\nd\"\n}\n"
	qt.Assert(t, qt.Equals(got, want))
}
