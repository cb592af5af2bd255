package overrides_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratecard/dto"
	"ratecard/models"
	"ratecard/services/overrides"
	"ratecard/types"
)

func price(v int64) *int64 { return &v }
func note(v string) *string { return &v }

func priced(id uint, date string, p int64) models.DateOverride {
	return models.DateOverride{ID: id, Date: date, Price: price(p)}
}

func blocked(id uint, date string) models.DateOverride {
	return models.DateOverride{ID: id, Date: date, IsBlocked: true}
}

func TestCoalesce_Scenarios(t *testing.T) {
	t.Run("merge then split on block", func(t *testing.T) {
		ranges := overrides.Coalesce([]models.DateOverride{
			priced(1, "2025-02-14", 200),
			priced(2, "2025-02-15", 200),
			blocked(3, "2025-02-16"),
		})

		require.Len(t, ranges, 2)
		assert.Equal(t, "2025-02-14", ranges[0].StartDate)
		assert.Equal(t, "2025-02-15", ranges[0].EndDate)
		assert.Equal(t, []uint{1, 2}, ranges[0].IDs)
		assert.False(t, ranges[0].IsBlocked)
		require.NotNil(t, ranges[0].Price)
		assert.Equal(t, int64(200), *ranges[0].Price)

		assert.Equal(t, "2025-02-16", ranges[1].StartDate)
		assert.Empty(t, ranges[1].EndDate)
		assert.Equal(t, []uint{3}, ranges[1].IDs)
		assert.True(t, ranges[1].IsBlocked)
		assert.Nil(t, ranges[1].Price)
	})

	t.Run("empty input", func(t *testing.T) {
		ranges := overrides.Coalesce(nil)
		assert.NotNil(t, ranges)
		assert.Empty(t, ranges)

		assert.Empty(t, overrides.Coalesce([]models.DateOverride{}))
	})

	t.Run("single record", func(t *testing.T) {
		ranges := overrides.Coalesce([]models.DateOverride{blocked(9, "2025-03-01")})

		require.Len(t, ranges, 1)
		assert.Equal(t, "override-9", ranges[0].Key)
		assert.Equal(t, "2025-03-01", ranges[0].StartDate)
		assert.Empty(t, ranges[0].EndDate)
		assert.Equal(t, []uint{9}, ranges[0].IDs)
		assert.True(t, ranges[0].IsBlocked)
	})
}

func TestCoalesce_Rules(t *testing.T) {
	t.Run("different price splits", func(t *testing.T) {
		ranges := overrides.Coalesce([]models.DateOverride{
			priced(1, "2025-02-14", 200),
			priced(2, "2025-02-15", 250),
		})
		require.Len(t, ranges, 2)
		assert.Empty(t, ranges[0].EndDate)
		assert.Empty(t, ranges[1].EndDate)
	})

	t.Run("gap splits", func(t *testing.T) {
		ranges := overrides.Coalesce([]models.DateOverride{
			priced(1, "2025-02-10", 200),
			priced(2, "2025-02-12", 200),
		})
		require.Len(t, ranges, 2)
		assert.Equal(t, []uint{1}, ranges[0].IDs)
		assert.Equal(t, []uint{2}, ranges[1].IDs)
	})

	t.Run("different note splits", func(t *testing.T) {
		a := priced(1, "2025-02-14", 200)
		a.Note = note("festival")
		ranges := overrides.Coalesce([]models.DateOverride{a, priced(2, "2025-02-15", 200)})
		require.Len(t, ranges, 2)
		require.NotNil(t, ranges[0].Note)
		assert.Equal(t, "festival", *ranges[0].Note)
	})

	t.Run("nil note equals empty note", func(t *testing.T) {
		a := priced(1, "2025-02-14", 200)
		a.Note = note("")
		ranges := overrides.Coalesce([]models.DateOverride{a, priced(2, "2025-02-15", 200)})
		require.Len(t, ranges, 1)
		assert.Equal(t, []uint{1, 2}, ranges[0].IDs)
	})

	t.Run("missing price equals zero", func(t *testing.T) {
		ranges := overrides.Coalesce([]models.DateOverride{
			{ID: 1, Date: "2025-02-14"},
			priced(2, "2025-02-15", 0),
		})
		require.Len(t, ranges, 1)
		assert.Nil(t, ranges[0].Price, "attributes come from the first member")
	})

	t.Run("blocked never merges with priced zero", func(t *testing.T) {
		ranges := overrides.Coalesce([]models.DateOverride{
			blocked(1, "2025-02-14"),
			priced(2, "2025-02-15", 0),
		})
		assert.Len(t, ranges, 2)
	})

	t.Run("merges across month and year boundaries", func(t *testing.T) {
		ranges := overrides.Coalesce([]models.DateOverride{
			priced(1, "2024-12-31", 100),
			priced(2, "2025-01-01", 100),
			priced(3, "2024-02-28", 100),
			priced(4, "2024-02-29", 100),
			priced(5, "2024-03-01", 100),
		})
		require.Len(t, ranges, 2)
		assert.Equal(t, []uint{3, 4, 5}, ranges[0].IDs)
		assert.Equal(t, "2024-03-01", ranges[0].EndDate)
		assert.Equal(t, []uint{1, 2}, ranges[1].IDs)
	})

	t.Run("broken run is not re-merged", func(t *testing.T) {
		ranges := overrides.Coalesce([]models.DateOverride{
			priced(1, "2025-02-14", 100),
			priced(2, "2025-02-15", 300),
			priced(3, "2025-02-16", 100),
		})
		require.Len(t, ranges, 3)
	})

	t.Run("unordered input", func(t *testing.T) {
		ranges := overrides.Coalesce([]models.DateOverride{
			priced(3, "2025-02-16", 100),
			priced(1, "2025-02-14", 100),
			priced(2, "2025-02-15", 100),
		})
		require.Len(t, ranges, 1)
		assert.Equal(t, "override-1", ranges[0].Key)
		assert.Equal(t, []uint{1, 2, 3}, ranges[0].IDs)
		assert.Equal(t, "2025-02-16", ranges[0].EndDate)
	})

	t.Run("duplicate dates stay apart", func(t *testing.T) {
		ranges := overrides.Coalesce([]models.DateOverride{
			priced(2, "2025-02-14", 100),
			priced(1, "2025-02-14", 100),
		})
		require.Len(t, ranges, 2)
		assert.Equal(t, []uint{1}, ranges[0].IDs)
		assert.Equal(t, []uint{2}, ranges[1].IDs)
	})

	t.Run("malformed date never merges", func(t *testing.T) {
		ranges := overrides.Coalesce([]models.DateOverride{
			priced(1, "2025-02-14", 100),
			priced(2, "2025-02-15x", 100),
			priced(3, "2025-02-16", 100),
		})
		require.Len(t, ranges, 3)
		assert.Equal(t, []uint{1, 2, 3}, overrides.RangeIDs(ranges))
	})
}

func TestCoalesce_DoesNotMutateInput(t *testing.T) {
	input := []models.DateOverride{
		priced(2, "2025-02-15", 100),
		priced(1, "2025-02-14", 100),
	}
	ranges := overrides.Coalesce(input)

	assert.Equal(t, uint(2), input[0].ID)
	assert.Equal(t, uint(1), input[1].ID)

	*ranges[0].Price = 999
	assert.Equal(t, int64(100), *input[1].Price)
}

func TestCoalesce_Properties(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for iter := 0; iter < 200; iter++ {
		var input []models.DateOverride
		day := 0
		n := uint(rnd.Intn(40))
		for id := uint(1); id <= n; id++ {
			day += 1 + rnd.Intn(2)
			date := dateFromOffset(day)
			switch rnd.Intn(3) {
			case 0:
				input = append(input, blocked(id, date))
			case 1:
				input = append(input, priced(id, date, int64(100*rnd.Intn(3))))
			default:
				o := priced(id, date, 100)
				o.Note = note([]string{"", "promo"}[rnd.Intn(2)])
				input = append(input, o)
			}
		}
		rnd.Shuffle(len(input), func(i, j int) { input[i], input[j] = input[j], input[i] })

		ranges := overrides.Coalesce(input)

		// completeness
		ids := overrides.RangeIDs(ranges)
		want := make([]uint, 0, len(input))
		for _, o := range input {
			want = append(want, o.ID)
		}
		assert.ElementsMatch(t, want, ids)

		// order: ids were assigned in date order, so they must come out ascending
		assert.True(t, sort.SliceIsSorted(ids, func(i, j int) bool { return ids[i] < ids[j] }))
		for i := 1; i < len(ranges); i++ {
			assert.Less(t, ranges[i-1].StartDate, ranges[i].StartDate)
		}

		// idempotence
		assert.Equal(t, ranges, overrides.Coalesce(input))

		// maximal: neighbouring ranges could not have been merged
		for i := 1; i < len(ranges); i++ {
			assert.False(t, mergeable(ranges[i-1], ranges[i]), "ranges %d and %d should have merged", i-1, i)
		}
	}
}

var startDate = types.MustParseDate("2024-12-20")

func dateFromOffset(day int) string {
	return startDate.AddDays(day).String()
}

func mergeable(a, b dto.OverrideRange) bool {
	an := models.DateOverride{Date: a.CurrentEnd(), IsBlocked: a.IsBlocked, Price: a.Price, Note: a.Note}
	bn := models.DateOverride{Date: b.StartDate, IsBlocked: b.IsBlocked, Price: b.Price, Note: b.Note}
	if !overrides.MatchAttributes(an, bn) {
		return false
	}
	return len(overrides.Coalesce([]models.DateOverride{an, bn})) == 1
}
