// Copyright (c) 2026 WebNDB. All rights reserved.

package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/webndb/webndb/internal/search/filter"
)

/*
TestTagState_CycleLength confirms the tri-state cycle has length three
from any starting point.
*/
func TestTagState_CycleLength(t *testing.T) {
	for _, start := range []filter.TagState{filter.TagNeither, filter.TagIncluded, filter.TagExcluded} {
		assert.Equal(t, start, start.Next().Next().Next())
	}
}

/*
TestEnums_Validity checks membership reporting for each closed vocabulary.
*/
func TestEnums_Validity(t *testing.T) {
	for _, c := range filter.Categories() {
		assert.True(t, c.IsValid(), "category %s", c)
	}
	assert.False(t, filter.Category("genre").IsValid())
	assert.False(t, filter.Category("").IsValid())

	for _, c := range filter.Criteria() {
		assert.True(t, c.IsValid(), "criterion %s", c)
	}
	assert.False(t, filter.Criterion("words").IsValid())

	for _, k := range filter.SortKeys() {
		assert.True(t, k.IsValid(), "sort key %s", k)
	}
	assert.False(t, filter.SortKey("random").IsValid())
}

/*
TestBoundMode_Toggle verifies the binary flip.
*/
func TestBoundMode_Toggle(t *testing.T) {
	assert.Equal(t, filter.BoundMax, filter.BoundMin.Toggle())
	assert.Equal(t, filter.BoundMin, filter.BoundMax.Toggle())
}
