// Copyright (c) 2026 WebNDB. All rights reserved.

// Package query parses the loosely structured values that arrive in URL
// query strings before they are handed to typed domain filters.
//
// The search form and configuration both transport multi-valued settings as
// a single comma-separated string (e.g. ?status=ongoing,completed), so the
// split-and-trim step lives here rather than being repeated per handler.
package query

import "strings"

// StringSlice splits a comma-separated value into its trimmed, non-empty
// parts. An empty input yields nil, which downstream filters treat as
// "no constraint".
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}

	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}

	return res
}
