// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/case-tracker/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.StoreConfig{
		Path:       filepath.Join(t.TempDir(), "cases.db"),
		MaxResults: 50,
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecords() []types.CaseRecord {
	return []types.CaseRecord{
		{
			Title:    "Bartz v Anthropic",
			Headline: "Bartz v Anthropic – announces settlement in AI/IP dispute.",
			Summary:  "the parties settled the copyright claims over pirated books",
			Takeaway: "settlements set practical ranges",
			Status:   types.StatusSettled,
			Outcome:  "Settlement",
			Source:   "WIRED",
			URL:      "https://example.com/bartz",
			CaseRef:  "3:24-cv-05417",
		},
		{
			Title:   "Kadrey v Meta Platforms",
			Summary: "summary judgment for Meta on fair use grounds",
			Status:  types.StatusJudgment,
			Outcome: "Fair use (SJ)",
			Source:  "BakerHostetler",
			URL:     "https://example.com/kadrey",
		},
		{
			Title:   "Getty Images v Stability AI",
			Summary: "claims over training on twelve million photographs",
			Status:  types.StatusOpenActive,
			Outcome: "Update",
			Source:  "WIRED",
			URL:     "https://example.com/getty",
		},
	}
}

func TestReplaceAndCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	n, err := s.Replace(ctx, testRecords())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestReplaceIsWholesale(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Replace(ctx, testRecords())
	require.NoError(t, err)

	// A second ingest replaces the previous run entirely.
	_, err = s.Replace(ctx, testRecords()[:1])
	require.NoError(t, err)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	results, err := s.Retrieve(ctx, QueryOptions{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Bartz v Anthropic", results[0].Title)
}

func TestReplaceRejectsEmptyTitle(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Replace(context.Background(), []types.CaseRecord{{Status: types.StatusOpenActive}})
	assert.Error(t, err)
}

func TestRetrieveAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, err := s.Replace(ctx, testRecords())
	require.NoError(t, err)

	results, err := s.Retrieve(ctx, QueryOptions{})
	require.NoError(t, err)
	require.Len(t, results, 3)
	// Filter-only queries come back sorted by title.
	assert.Equal(t, "Bartz v Anthropic", results[0].Title)
	assert.Equal(t, "Getty Images v Stability AI", results[1].Title)
	assert.Equal(t, "Kadrey v Meta Platforms", results[2].Title)
	// Round trip preserves the full record.
	assert.Equal(t, testRecords()[0], results[0])
}

func TestRetrieveFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, err := s.Replace(ctx, testRecords())
	require.NoError(t, err)

	byStatus, err := s.Retrieve(ctx, QueryOptions{Status: types.StatusJudgment})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Kadrey v Meta Platforms", byStatus[0].Title)

	bySource, err := s.Retrieve(ctx, QueryOptions{Source: "WIRED"})
	require.NoError(t, err)
	assert.Len(t, bySource, 2)

	both, err := s.Retrieve(ctx, QueryOptions{Status: types.StatusSettled, Source: "WIRED"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Bartz v Anthropic", both[0].Title)

	none, err := s.Retrieve(ctx, QueryOptions{Source: "Unknown"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRetrieveFullText(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, err := s.Replace(ctx, testRecords())
	require.NoError(t, err)

	results, err := s.Retrieve(ctx, QueryOptions{Query: "photographs"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Getty Images v Stability AI", results[0].Title)

	// FTS index follows deletes: after a wholesale replace the old text
	// must stop matching.
	_, err = s.Replace(ctx, testRecords()[:1])
	require.NoError(t, err)
	results, err = s.Retrieve(ctx, QueryOptions{Query: "photographs"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRetrieveFullTextWithFilter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, err := s.Replace(ctx, testRecords())
	require.NoError(t, err)

	results, err := s.Retrieve(ctx, QueryOptions{Query: "copyright OR fair", Status: types.StatusJudgment})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Kadrey v Meta Platforms", results[0].Title)
}

func TestRetrieveLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, err := s.Replace(ctx, testRecords())
	require.NoError(t, err)

	results, err := s.Retrieve(ctx, QueryOptions{MaxResults: 2})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestQueryOptionsIsEmpty(t *testing.T) {
	assert.True(t, QueryOptions{}.IsEmpty())
	assert.True(t, QueryOptions{MaxResults: 10}.IsEmpty())
	assert.False(t, QueryOptions{Query: "fair use"}.IsEmpty())
	assert.False(t, QueryOptions{Status: types.StatusSettled}.IsEmpty())
	assert.False(t, QueryOptions{Source: "WIRED"}.IsEmpty())
}
