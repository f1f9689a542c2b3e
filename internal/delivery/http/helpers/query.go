package helpers

import (
	"net/http"
	"strconv"
	"strings"

	"multaqa/internal/domain"
)

// ParsePage reads the page query parameter. Invalid or missing values
// fall back to 1; the triage engine clamps the upper bound.
func ParsePage(r *http.Request) int {
	if s := r.URL.Query().Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			return v
		}
	}
	return 1
}

// ParseLang reads the lang query parameter ("ar" or "en").
func ParseLang(r *http.Request) domain.Lang {
	return domain.ParseLang(r.URL.Query().Get("lang"))
}

// ParseTriageOptions reads the triage list query parameters: section,
// status, event_id, search, sort, dir, and page. Unknown sort fields and
// directions are left for the triage engine to default.
func ParseTriageOptions(r *http.Request) domain.TriageOptions {
	q := r.URL.Query()
	return domain.TriageOptions{
		Section:   domain.SectionSlug(q.Get("section")),
		Status:    domain.SubmissionStatus(q.Get("status")),
		EventID:   q.Get("event_id"),
		Search:    strings.TrimSpace(q.Get("search")),
		SortField: domain.TriageSortField(q.Get("sort")),
		SortDir:   domain.SortDir(q.Get("dir")),
		Page:      ParsePage(r),
	}
}
