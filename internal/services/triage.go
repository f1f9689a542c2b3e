package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"multaqa/internal/domain"
)

// The triage engine is the in-memory half of the submission review
// workflow: it filters, searches, sorts, and pages a fetched list of
// enriched submissions, and renders the filtered set as CSV. It is kept
// as pure functions so the whole workflow is testable without a store.

// FilterTriageItems returns the items matching every active filter in
// opts (AND semantics). The free-text search matches case-insensitively
// against every stringified data value and the section/category label.
func FilterTriageItems(items []*domain.TriageItem, opts domain.TriageOptions) []*domain.TriageItem {
	out := make([]*domain.TriageItem, 0, len(items))
	needle := strings.ToLower(strings.TrimSpace(opts.Search))
	for _, it := range items {
		if opts.Section != "" && it.Submission.Owner.Section != opts.Section {
			continue
		}
		if opts.Status != "" && it.Submission.Status != opts.Status {
			continue
		}
		if opts.EventID != "" && !ownedByEvent(it, opts.EventID) {
			continue
		}
		if needle != "" && !matchesSearch(it, needle) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func ownedByEvent(it *domain.TriageItem, eventID string) bool {
	return it.Submission.Owner.Kind == domain.OwnerEventSection && it.Submission.Owner.OwnerID == eventID
}

func matchesSearch(it *domain.TriageItem, needle string) bool {
	if strings.Contains(strings.ToLower(it.SectionLabel), needle) {
		return true
	}
	for _, v := range it.Submission.Data {
		if strings.Contains(strings.ToLower(v.String()), needle) {
			return true
		}
	}
	return false
}

// primaryValue is the record's first data value in resolved-form order,
// used as the display column the list leads with.
func primaryValue(it *domain.TriageItem) string {
	for _, f := range it.Form {
		if v, ok := it.Submission.Data[f.ID]; ok && !v.IsBlank() {
			return v.String()
		}
	}
	// No schema match; fall back to the lexicographically first key so the
	// value is at least stable.
	keys := make([]string, 0, len(it.Submission.Data))
	for k := range it.Submission.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := it.Submission.Data[k]; !v.IsBlank() {
			return v.String()
		}
	}
	return ""
}

// SortTriageItems orders items by the given field and direction. Sorting
// descending yields the exact reverse of ascending for the same field.
// String fields compare case-insensitively; status uses the fixed
// pending < approved < rejected priority.
func SortTriageItems(items []*domain.TriageItem, field domain.TriageSortField, dir domain.SortDir) {
	less := func(a, b *domain.TriageItem) int {
		switch field {
		case domain.SortByCreatedAt:
			return a.Submission.CreatedAt.Compare(b.Submission.CreatedAt)
		case domain.SortByStatus:
			return a.Submission.Status.Priority() - b.Submission.Status.Priority()
		case domain.SortBySection:
			return strings.Compare(string(a.Submission.Owner.Section), string(b.Submission.Owner.Section))
		case domain.SortByEventTitle:
			return strings.Compare(strings.ToLower(a.EventTitle), strings.ToLower(b.EventTitle))
		default:
			return strings.Compare(strings.ToLower(primaryValue(a)), strings.ToLower(primaryValue(b)))
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		c := less(items[i], items[j])
		if dir == domain.SortDesc {
			return c > 0
		}
		return c < 0
	})
}

// PaginateTriageItems clamps page to [1, totalPages] and returns the
// 25-row window plus the clamped page number and total page count.
// totalPages is never less than 1, even for an empty set.
func PaginateTriageItems(items []*domain.TriageItem, page int) (window []*domain.TriageItem, clampedPage, totalPages int) {
	totalPages = (len(items) + domain.TriagePageSize - 1) / domain.TriagePageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * domain.TriagePageSize
	end := start + domain.TriagePageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page, totalPages
}

// BuildTriageResult runs the full engine: filter, sort, paginate.
func BuildTriageResult(items []*domain.TriageItem, opts domain.TriageOptions) *domain.TriageResult {
	filtered := FilterTriageItems(items, opts)
	field := opts.SortField
	if !domain.ValidTriageSortField(field) {
		field = domain.SortByCreatedAt
	}
	dir := opts.SortDir
	if dir != domain.SortDesc {
		dir = domain.SortAsc
	}
	SortTriageItems(filtered, field, dir)
	window, page, totalPages := PaginateTriageItems(filtered, opts.Page)
	return &domain.TriageResult{
		Items:      window,
		Total:      len(filtered),
		Page:       page,
		TotalPages: totalPages,
	}
}

// exportBaseHeader is the fixed leading columns of a triage export.
var exportBaseHeader = []string{"section", "event", "created_at", "status"}

// WriteTriageCSV writes the filtered, sorted (unpaged) set as CSV: the
// fixed columns followed by one column per distinct field label
// encountered across the set, in first-encountered form order. A record
// missing a field gets "-" in that column.
func WriteTriageCSV(w io.Writer, items []*domain.TriageItem, lang domain.Lang) error {
	// Collect the distinct field labels, keyed by label so two owners
	// sharing a label share a column.
	var labels []string
	seen := make(map[string]struct{})
	for _, it := range items {
		for _, f := range it.Form {
			label := f.Label(lang)
			if label == "" {
				label = f.ID
			}
			if _, dup := seen[label]; !dup {
				seen[label] = struct{}{}
				labels = append(labels, label)
			}
		}
	}

	cw := csv.NewWriter(w)
	header := append(append([]string{}, exportBaseHeader...), labels...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, it := range items {
		row := []string{
			it.SectionLabel,
			it.EventTitle,
			it.Submission.CreatedAt.Format("2006-01-02 15:04"),
			it.Submission.Status.Label(lang),
		}
		byLabel := make(map[string]string, len(it.Submission.Data))
		for _, f := range it.Form {
			if v, ok := it.Submission.Data[f.ID]; ok {
				label := f.Label(lang)
				if label == "" {
					label = f.ID
				}
				byLabel[label] = v.String()
			}
		}
		for _, label := range labels {
			if v, ok := byLabel[label]; ok {
				row = append(row, v)
			} else {
				row = append(row, "-")
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
