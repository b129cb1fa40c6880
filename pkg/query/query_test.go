// Copyright (c) 2026 WebNDB. All rights reserved.

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/webndb/webndb/pkg/query"
)

/*
TestStringSlice covers the comma-splitting conventions relied on by the
novel list filters and the CORS origin allowlist.
*/
func TestStringSlice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "ongoing", []string{"ongoing"}},
		{"multiple", "ongoing,completed", []string{"ongoing", "completed"}},
		{"whitespace_trimmed", " ja , ko ", []string{"ja", "ko"}},
		{"empty_parts_dropped", "ja,,ko,", []string{"ja", "ko"}},
		{"only_separators", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.StringSlice(tt.input))
		})
	}
}
