// Copyright (c) 2026 WebNDB. All rights reserved.

package search

import (
	"context"
	"time"

	"github.com/webndb/webndb/internal/core/novel"
	"github.com/webndb/webndb/internal/search/filter"
)

// Result is one row of a search response: the catalog summary the results
// list renders, without the heavy per-novel associations.
type Result struct {
	NovelID          int64           `json:"novel_id,string"`
	Title            string          `json:"title"`
	OriginalLanguage *novel.Language `json:"original_language"`
	Status           novel.Status    `json:"status"`
	StartReleaseDate *time.Time      `json:"start_release_date,omitempty"`
	Stats            novel.Stats     `json:"stats"`
}

// Repository executes compiled filter queries against the catalog.
type Repository interface {
	Search(context context.Context, snap filter.Snapshot, limit, offset int) ([]Result, int, error)
}
