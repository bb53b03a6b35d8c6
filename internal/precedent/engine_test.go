package precedent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/model"
	"github.com/Veraticus/aduana/internal/service"
)

var testNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

type fakeSource struct {
	err        error
	precedents []model.Precedent
	calls      int
}

func (s *fakeSource) ActivePrecedents(_ context.Context, r model.Region) ([]model.Precedent, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	var out []model.Precedent
	for _, p := range s.precedents {
		if p.Region == r {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestEngine(opts ...Option) *Engine {
	base := []Option{
		WithClock(func() time.Time { return testNow }),
		WithRetry(service.RetryOptions{MaxAttempts: 2, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond}),
	}
	return NewEngine(append(base, opts...)...)
}

func TestSearchPrecedents_Scoring(t *testing.T) {
	e := newTestEngine()

	result := e.SearchPrecedents(context.Background(), "Amoxicillin 500mg capsules", model.RegionPanama, "3004.10.00")

	assert.Equal(t, SourceCache, result.Source)
	assert.NoError(t, result.LookupErr)
	require.Len(t, result.Matches, 1)
	m := result.Matches[0]
	assert.Equal(t, "ANA-RA-2021-0147", m.Precedent.RulingID)
	assert.Equal(t, ScoreHeading+ScoreExactCode+ScoreKeyword, m.RelevanceScore)
	assert.Equal(t, []string{"amoxicillin"}, m.MatchedKeywords)
}

func TestSearchPrecedents_HeadingOnlyAndPartialTokens(t *testing.T) {
	e := newTestEngine(WithSeeds([]model.Precedent{
		{RulingID: "R-1", Region: model.RegionCostaRica, HSCode: "6109.90.00", Active: true,
			Keywords: []string{"camiseta de algodon", "polo"}},
	}))

	result := e.SearchPrecedents(context.Background(), "camisetas deportivas", model.RegionCostaRica, "6109.10.00")

	require.Len(t, result.Matches, 1)
	// Same heading, different subheading, and "camisetas" shares a prefix with "camiseta".
	assert.Equal(t, ScoreHeading+ScorePartialToken, result.Matches[0].RelevanceScore)
	assert.Empty(t, result.Matches[0].MatchedKeywords)
}

func TestSearchPrecedents_FiltersRegionAndValidity(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		region model.Region
		desc   string
		want   int
	}{
		{"expired ruling", testNow, model.RegionPanama, "juguete de plastico", 0},
		{"ruling in force", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), model.RegionPanama, "juguete de plastico", 1},
		{"inactive ruling", testNow, model.RegionCostaRica, "router wifi", 0},
		{"other region", testNow, model.RegionGuatemala, "amoxicillin", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := tt.now
			e := newTestEngine(WithClock(func() time.Time { return now }))
			result := e.SearchPrecedents(context.Background(), tt.desc, tt.region, "")
			assert.Len(t, result.Matches, tt.want)
		})
	}
}

func TestSearchPrecedents_SortedAndCapped(t *testing.T) {
	var seeds []model.Precedent
	for i := 0; i < 8; i++ {
		kws := []string{"lampara"}
		for j := 0; j < i; j++ {
			kws = append(kws, fmt.Sprintf("extra%d", j))
		}
		seeds = append(seeds, model.Precedent{
			RulingID: fmt.Sprintf("R-%d", i), Region: model.RegionPanama, HSCode: "9405.10.00",
			Keywords: kws, Active: true,
		})
	}
	e := newTestEngine(WithSeeds(seeds))

	result := e.SearchPrecedents(context.Background(),
		"lampara extra0 extra1 extra2 extra3 extra4 extra5 extra6", model.RegionPanama, "")

	require.Len(t, result.Matches, MaxResults)
	for i := 1; i < len(result.Matches); i++ {
		assert.Greater(t, result.Matches[i-1].RelevanceScore, result.Matches[i].RelevanceScore)
	}
	assert.Equal(t, "R-7", result.Matches[0].Precedent.RulingID)
}

func TestSearchPrecedents_RemoteOverridesSeeds(t *testing.T) {
	source := &fakeSource{precedents: []model.Precedent{
		{RulingID: "ANA-RA-2021-0147", Region: model.RegionPanama, HSCode: "3004.20.00",
			Keywords: []string{"amoxicillin"}, Active: true},
		{RulingID: "ANA-RA-2024-0001", Region: model.RegionPanama, HSCode: "3004.10.00",
			Keywords: []string{"capsules"}, Active: true},
	}}
	e := newTestEngine(WithSource(source))

	result := e.SearchPrecedents(context.Background(), "Amoxicillin 500mg capsules", model.RegionPanama, "3004.10.00")

	assert.Equal(t, SourceRemote, result.Source)
	assert.NoError(t, result.LookupErr)
	require.Len(t, result.Matches, 2)
	assert.Equal(t, "ANA-RA-2024-0001", result.Matches[0].Precedent.RulingID)
	assert.Equal(t, 95, result.Matches[0].RelevanceScore)
	assert.Equal(t, "3004.20.00", result.Matches[1].Precedent.HSCode)
	assert.Equal(t, 65, result.Matches[1].RelevanceScore)
}

func TestSearchPrecedents_RemoteFailureFallsBackToCache(t *testing.T) {
	source := &fakeSource{err: fmt.Errorf("%w: connection refused", common.ErrLookupUnavailable)}
	e := newTestEngine(WithSource(source))

	result := e.SearchPrecedents(context.Background(), "Amoxicillin 500mg capsules", model.RegionPanama, "3004.10.00")

	assert.Equal(t, SourceCache, result.Source)
	assert.True(t, result.Unavailable())
	assert.ErrorIs(t, result.LookupErr, common.ErrLookupUnavailable)
	assert.Equal(t, 2, source.calls)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "ANA-RA-2021-0147", result.Matches[0].Precedent.RulingID)
}

func TestSearchPrecedents_NonRetryableFailureIsNotRetried(t *testing.T) {
	source := &fakeSource{err: errors.New("permission denied")}
	e := newTestEngine(WithSource(source))

	result := e.SearchPrecedents(context.Background(), "laptop", model.RegionPanama, "")

	assert.True(t, result.Unavailable())
	assert.Equal(t, 1, source.calls)
	assert.Len(t, result.Matches, 1)
}

func TestValidateByPrecedent(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	t.Run("endorsed", func(t *testing.T) {
		v := e.ValidateByPrecedent(ctx, "3004.10.00", "Amoxicillin 500mg capsules", model.RegionPanama)
		assert.Equal(t, VerdictEndorsed, v.Kind)
		require.NotNil(t, v.Precedent)
		assert.Equal(t, "ANA-RA-2021-0147", v.Precedent.RulingID)
		require.NotNil(t, v.GRI)
		assert.Equal(t, model.GRI1, v.GRI.Rule)
		assert.Contains(t, v.GRI.Justification, "3004.10.00")
	})

	t.Run("needs review", func(t *testing.T) {
		v := e.ValidateByPrecedent(ctx, "8525.80.00", "smartphone celular iphone 128gb", model.RegionPanama)
		assert.Equal(t, VerdictNeedsReview, v.Kind)
		require.NotNil(t, v.Precedent)
		assert.Equal(t, "ANA-RA-2022-0033", v.Precedent.RulingID)
		assert.Equal(t, 45, v.Score)
		assert.Contains(t, v.Rationale, "8517.13.00")
	})

	t.Run("weak unrelated match falls back to GRI", func(t *testing.T) {
		v := e.ValidateByPrecedent(ctx, "8525.80.00", "funda para celular", model.RegionPanama)
		assert.Equal(t, VerdictGRIOnly, v.Kind)
		assert.Nil(t, v.Precedent)
		require.NotNil(t, v.GRI)
		// The container signal in the description outranks competing headings.
		assert.Equal(t, model.GRI5A, v.GRI.Rule)
	})

	t.Run("no precedent", func(t *testing.T) {
		v := e.ValidateByPrecedent(ctx, "8479.89.00", "widget", model.RegionPanama)
		assert.Equal(t, VerdictGRIOnly, v.Kind)
		require.NotNil(t, v.GRI)
		assert.Equal(t, model.GRI1, v.GRI.Rule)
		assert.InDelta(t, 0.85, v.GRI.Confidence, 1e-9)
	})
}

func TestFormatAdvisory(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	endorsed := FormatAdvisory(e.ValidateByPrecedent(ctx, "3004.10.00", "Amoxicillin 500mg capsules", model.RegionPanama))
	assert.True(t, strings.HasPrefix(endorsed, "Clasificación respaldada"))
	assert.Contains(t, endorsed, "ANA-RA-2021-0147")
	assert.Contains(t, endorsed, "01/06/2021")

	review := FormatAdvisory(e.ValidateByPrecedent(ctx, "8525.80.00", "smartphone celular iphone", model.RegionPanama))
	assert.True(t, strings.HasPrefix(review, "Revisión recomendada"))

	gri := FormatAdvisory(e.ValidateByPrecedent(ctx, "8479.89.00", "widget", model.RegionPanama))
	assert.True(t, strings.HasPrefix(gri, "Sin precedente aplicable."))
	assert.Contains(t, gri, "GRI 1 (confianza 85%)")

	failing := newTestEngine(WithSource(&fakeSource{err: common.ErrLookupUnavailable}))
	degraded := FormatAdvisory(failing.ValidateByPrecedent(ctx, "8479.89.00", "widget", model.RegionPanama))
	assert.Contains(t, degraded, "caché local")
}

func TestAddSeeds(t *testing.T) {
	e := newTestEngine(WithSeeds(nil))

	e.AddSeeds(
		model.Precedent{RulingID: "R-1", HSCode: "0101.21.00"},
		model.Precedent{RulingID: "R-2", HSCode: "0101.29.00"},
	)
	e.AddSeeds(model.Precedent{RulingID: "R-1", HSCode: "0101.30.00"})

	assert.Equal(t, 2, e.SeedCount())
}
