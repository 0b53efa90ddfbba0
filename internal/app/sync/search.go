package sync

import (
	"strings"

	"eastask/internal/core/domain"
)

// SearchTasks matches the query case-insensitively against title,
// description and tags across the unassigned collection and every page,
// deduplicated by id. An empty query returns exactly the unassigned
// collection; callers that want everything must search per page.
func (s *Syncer) SearchTasks(query string) []domain.Task {
	current := s.store.GetState()
	if strings.TrimSpace(query) == "" {
		return current.UnassignedTasks
	}

	needle := strings.ToLower(query)
	seen := make(map[string]struct{})
	var results []domain.Task

	consider := func(t domain.Task) {
		if _, ok := seen[t.ID]; ok {
			return
		}
		if taskMatches(t, needle) {
			seen[t.ID] = struct{}{}
			results = append(results, t)
		}
	}

	for _, t := range current.UnassignedTasks {
		consider(t)
	}
	for _, p := range current.Pages {
		for _, t := range p.Tasks {
			consider(t)
		}
	}
	return results
}

func taskMatches(t domain.Task, needle string) bool {
	if strings.Contains(strings.ToLower(t.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), needle) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
