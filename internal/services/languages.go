package services

import (
	"sort"

	"console/internal/domain/models"
	"console/internal/utils"
)

// ArrangeLanguages sorts by display order and keeps the languages whose name
// or culture contains term, ignoring case. The input is not modified.
func ArrangeLanguages(langs []models.Language, term string) []models.Language {
	term = utils.TrimOrEmpty(term)
	out := make([]models.Language, 0, len(langs))
	for _, l := range langs {
		if term == "" || utils.ContainsFold(l.Name, term) || utils.ContainsFold(l.LanguageCulture, term) {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out
}
