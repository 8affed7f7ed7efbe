package services

import (
	"sort"

	"github.com/duet-app/duet/internal/models"
)

const (
	AidSourceCurated = "curated"
	AidSourceCustom  = "custom"
)

// RecommendedAidDisplayLimit is the display cap clients are expected to
// apply per problem. The engine returns the full ranked list.
const RecommendedAidDisplayLimit = 5

// AidEntry is the tagged merge of curated and custom advice sharing the
// {problem, title, description} surface. Source tells the variants apart.
type AidEntry struct {
	ID          uint   `json:"id"`
	Source      string `json:"source"`
	Problem     string `json:"problem"`
	Category    string `json:"category,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    int    `json:"priority"`
}

// RankAids merges curated and custom advice for one problem: curated rows
// scoped to another account are dropped, inactive custom rows are dropped,
// duplicates collapse, and the result orders curated before custom with
// priority descending and insertion order preserved on ties.
func RankAids(curated []models.CuratedAid, custom []models.CustomAid, accountID uint) []AidEntry {
	entries := make([]AidEntry, 0, len(curated)+len(custom))
	seenCurated := make(map[uint]struct{}, len(curated))
	seenCustom := make(map[uint]struct{}, len(custom))

	for _, aid := range curated {
		if aid.ForAccountID != nil && *aid.ForAccountID != accountID {
			continue
		}
		if _, seen := seenCurated[aid.ID]; seen {
			continue
		}
		seenCurated[aid.ID] = struct{}{}
		entries = append(entries, AidEntry{
			ID:          aid.ID,
			Source:      AidSourceCurated,
			Problem:     aid.Problem,
			Category:    aid.Category,
			Title:       aid.Title,
			Description: aid.Description,
			Priority:    aid.Priority,
		})
	}

	for _, aid := range custom {
		if !aid.IsActive || aid.AccountID != accountID {
			continue
		}
		if _, seen := seenCustom[aid.ID]; seen {
			continue
		}
		seenCustom[aid.ID] = struct{}{}
		entries = append(entries, AidEntry{
			ID:          aid.ID,
			Source:      AidSourceCustom,
			Problem:     aid.Problem,
			Title:       aid.Title,
			Description: aid.Description,
			Priority:    aid.Priority,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		left := entries[i]
		right := entries[j]
		if left.Source != right.Source {
			return left.Source == AidSourceCurated
		}
		return left.Priority > right.Priority
	})

	return entries
}

type MatcherAidRepository interface {
	ListCuratedByProblem(problem string) ([]models.CuratedAid, error)
	ListCustomByAccountAndProblem(accountID uint, problem string) ([]models.CustomAid, error)
}

type AidMatcher struct {
	aids MatcherAidRepository
}

func NewAidMatcher(aids MatcherAidRepository) *AidMatcher {
	return &AidMatcher{aids: aids}
}

// MatchForIssues ranks advice for each distinct problem reported in the
// given issues. Empty input yields an empty map.
func (matcher *AidMatcher) MatchForIssues(accountID uint, issues []models.Issue) (map[string][]AidEntry, error) {
	matched := make(map[string][]AidEntry)
	for _, issue := range issues {
		if _, done := matched[issue.Problem]; done {
			continue
		}

		curated, err := matcher.aids.ListCuratedByProblem(issue.Problem)
		if err != nil {
			return nil, err
		}
		custom, err := matcher.aids.ListCustomByAccountAndProblem(accountID, issue.Problem)
		if err != nil {
			return nil, err
		}
		matched[issue.Problem] = RankAids(curated, custom, accountID)
	}
	return matched, nil
}
