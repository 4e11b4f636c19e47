package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectorString(t *testing.T) {
	assert.Equal(t, "*", WildcardSelector().String())
	assert.Equal(t, "Foo", Selector{Type: "Foo"}.String())
	assert.Equal(t, "Foo.bar", Selector{Type: "Foo", Field: "bar"}.String())
}

func TestImportRecordIsWildcard(t *testing.T) {
	assert.True(t, ImportRecord{Imports: []Selector{WildcardSelector()}}.IsWildcard())
	assert.False(t, ImportRecord{Imports: []Selector{WildcardSelector(), {Type: "Foo"}}}.IsWildcard(),
		"a mixed list is not the true wildcard")
	assert.False(t, ImportRecord{Imports: []Selector{{Type: "Foo"}}}.IsWildcard())
}

func TestImportRecordKey(t *testing.T) {
	a := ImportRecord{Imports: []Selector{{Type: "Foo"}, {Type: "Bar", Field: "x"}}, From: "b.graphql"}
	b := ImportRecord{Imports: []Selector{{Type: "Foo"}, {Type: "Bar", Field: "x"}}, From: "b.graphql"}
	c := ImportRecord{Imports: []Selector{{Type: "Foo"}}, From: "b.graphql"}
	d := ImportRecord{Imports: []Selector{{Type: "Foo"}, {Type: "Bar", Field: "x"}}, From: "c.graphql"}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.NotEqual(t, a.Key(), d.Key())
}
