// Package catalog holds the static POZ drug reference data and its
// read-only query surface. The data is loaded once at startup and never
// mutated; every function here is safe for concurrent use.
package catalog

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Category is a closed set of drug categories. Values double as the
// Polish display labels shown to patients.
type Category string

const (
	CategoryAntihypertensive Category = "Leki przeciwnadciśnieniowe"
	CategoryBetaBlocker      Category = "Beta-blokery"
	CategoryDiuretic         Category = "Diuretyki"
	CategoryAntidiabetic     Category = "Leki przeciwcukrzycowe"
	CategoryInsulin          Category = "Insuliny"
	CategoryAnticoagulant    Category = "Antykoagulanty"
	CategoryAntiplatelet     Category = "Leki przeciwpłytkowe"
	CategoryHeparin          Category = "Heparyny"
	CategoryAnalgesic        Category = "Analgetyki"
	CategoryNSAID            Category = "NLPZ"
	CategoryOpioid           Category = "Opioidy"
	CategoryPPI              Category = "Inhibitory pompy protonowej"
	CategoryH2Blocker        Category = "Blokery H2"
	CategoryGastroprotective Category = "Leki ochronne żołądka"
	CategoryAntiemetic       Category = "Leki przeciwwymiotne"
	CategoryAntibiotic       Category = "Antybiotyki"
	CategoryStatin           Category = "Statyny"
	CategoryThyroidHormone   Category = "Hormony tarczycy"
	CategoryAntithyroid      Category = "Leki antytyreoidalne"
	CategoryAntidepressant   Category = "Antydepresanty"
	CategoryBenzodiazepine   Category = "Benzodiazepiny"
	CategoryAntihistamine    Category = "Antyhistaminowe"
	CategoryVitamin          Category = "Witaminy"
	CategoryAntitussive      Category = "Leki przeciwkaszlowe"
	CategoryMucolytic        Category = "Mukolityki"
	CategoryProstate         Category = "Leki na prostatę"
	CategoryTopicalSteroid   Category = "Steroidy miejscowe"
	CategoryOphthalmic       Category = "Leki okulistyczne"
	CategoryAntifungal       Category = "Leki przeciwgrzybicze"
	CategoryAntidiarrheal    Category = "Leki przeciwbiegunkowe"
	CategoryAntiflatulent    Category = "Leki na wzdęcia"
	CategoryHypnotic         Category = "Leki nasenne"
	CategoryAntigout         Category = "Leki na podagrę"

	// CategoryCustom marks drugs entered manually by the patient,
	// outside the reference catalog.
	CategoryCustom Category = "Lek własny"
)

type Drug struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	ActiveIngredient string   `json:"activeIngredient"`
	Category         Category `json:"category"`
	CommonDosages    []string `json:"commonDosages"`
	SearchTerms      []string `json:"searchTerms"`
}

// DefaultSearchLimit caps Search results when the caller passes no limit.
const DefaultSearchLimit = 10

const minQueryLen = 2

// Search returns drugs whose search terms contain query, case-insensitive.
// Terms that start with the query rank before interior matches; within a
// tier results sort by lowercased display name. Queries shorter than two
// characters yield no results.
func Search(query string, limit int) []Drug {
	query = strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(query) < minQueryLen {
		return []Drug{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	type match struct {
		drug   Drug
		prefix bool
	}
	matches := []match{}
	for _, d := range drugs {
		found, prefix := false, false
		for _, term := range d.SearchTerms {
			term = strings.ToLower(term)
			if strings.HasPrefix(term, query) {
				found, prefix = true, true
				break
			}
			if strings.Contains(term, query) {
				found = true
			}
		}
		if found {
			matches = append(matches, match{d, prefix})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].prefix != matches[j].prefix {
			return matches[i].prefix
		}
		return strings.ToLower(matches[i].drug.Name) < strings.ToLower(matches[j].drug.Name)
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	results := make([]Drug, len(matches))
	for i, m := range matches {
		results[i] = m.drug
	}
	return results
}

// ByID looks a drug up by its catalog identifier.
func ByID(id string) (Drug, bool) {
	for _, d := range drugs {
		if d.ID == id {
			return d, true
		}
	}
	return Drug{}, false
}

// ByCategory returns all drugs with exactly the given category, in
// catalog order. An unknown category yields an empty slice.
func ByCategory(category Category) []Drug {
	results := []Drug{}
	for _, d := range drugs {
		if d.Category == category {
			results = append(results, d)
		}
	}
	return results
}

// Categories returns the sorted set of distinct categories present in
// the catalog.
func Categories() []Category {
	seen := map[Category]bool{}
	for _, d := range drugs {
		seen[d.Category] = true
	}
	categories := make([]Category, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	return categories
}
