package scanner

import "deskmenu/internal/models"

// GroupByCategory buckets entries by their declared categories.
// Entries without a launch command are dropped. Entries without a
// Categories key go to the uncategorized bucket; an entry declaring
// several categories is added to each of them.
func GroupByCategory(entries []*models.Entry) models.CategoryIndex {
	groups := make(models.CategoryIndex)

	for _, entry := range entries {
		if !entry.HasExec() {
			continue
		}

		cats, declared := entry.Categories()
		if !declared {
			groups.Add(models.Uncategorized(), entry)
			continue
		}

		for _, cat := range cats {
			groups.Add(models.Named(cat), entry)
		}
	}

	return groups
}
