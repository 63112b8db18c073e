package recommend

import (
	"errors"
	"sort"

	"github.com/julianstephens/smartygym/internal/models"
)

// ErrNoSuitableContent is returned when the catalog has nothing to suggest.
var ErrNoSuitableContent = errors.New("no suitable content")

// TimeTolerance is how far past the time budget an item may run before the
// hard filter drops it.
const TimeTolerance = 15

// Filters that can be relaxed when they leave nothing to suggest.
const (
	FilterTime      = "time"
	FilterEquipment = "equipment"
)

// Result is the outcome of one recommendation pass.
type Result struct {
	Suggestion models.ScoredContent
	Ranked     []models.ScoredContent // full pool, best first
	Relaxed    []string               // hard filters dropped to find content
	Note       *models.AdvisoryNote
}

// Filter drops items that break a hard constraint. skip names filters to
// leave out.
func Filter(p Profile, catalog []models.ContentItem, skip ...string) []models.ContentItem {
	skipped := make(map[string]bool, len(skip))
	for _, s := range skip {
		skipped[s] = true
	}

	pool := make([]models.ContentItem, 0, len(catalog))
	for _, item := range catalog {
		if !skipped[FilterEquipment] && p.Equipment == EquipmentBodyweight &&
			hasEquipmentField(item) && !isBodyweight(item) {
			continue
		}
		if !skipped[FilterTime] && p.TimeAvailable != nil {
			if minutes, ok := ParseDurationMinutes(item.Duration); ok && minutes > *p.TimeAvailable+TimeTolerance {
				continue
			}
		}
		pool = append(pool, item)
	}
	return pool
}

// Rank scores every item in pool and orders them best first. Items with
// equal scores keep their pool order.
func Rank(p Profile, pool []models.ContentItem) []models.ScoredContent {
	ranked := make([]models.ScoredContent, 0, len(pool))
	for _, item := range pool {
		ranked = append(ranked, ScoreItem(p, item))
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Recommend filters, ranks and selects the single best item for p. When the
// hard filters remove everything, the time filter is relaxed first and then
// the equipment filter.
func Recommend(p Profile, catalog []models.ContentItem) (Result, error) {
	if len(catalog) == 0 {
		return Result{}, ErrNoSuitableContent
	}

	relaxations := [][]string{
		nil,
		{FilterTime},
		{FilterTime, FilterEquipment},
	}
	for _, skip := range relaxations {
		pool := Filter(p, catalog, skip...)
		if len(pool) == 0 {
			continue
		}
		ranked := Rank(p, pool)
		res := Result{
			Suggestion: ranked[0],
			Ranked:     ranked,
			Relaxed:    skip,
		}
		res.Note = GenerateNote(p, &res.Suggestion)
		return res, nil
	}
	return Result{}, ErrNoSuitableContent
}

// RecommendFor resolves ctx and answers into a profile and recommends from
// catalog.
func RecommendFor(ctx models.SmartyContext, answers models.QuestionAnswers, catalog []models.ContentItem) (Result, error) {
	return Recommend(Resolve(ctx, answers), catalog)
}
