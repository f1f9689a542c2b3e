package domain

import (
	"fmt"
	"regexp"
	"time"
)

// FieldType is the closed set of input types a form builder may use.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldEmail    FieldType = "email"
	FieldPhone    FieldType = "phone"
	FieldNumber   FieldType = "number"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
	FieldDate     FieldType = "date"
)

// ValidFieldType reports whether t is one of the supported field types.
func ValidFieldType(t FieldType) bool {
	switch t {
	case FieldText, FieldTextarea, FieldEmail, FieldPhone, FieldNumber, FieldSelect, FieldCheckbox, FieldDate:
		return true
	}
	return false
}

// FieldOption is one selectable option of a select field.
type FieldOption struct {
	Value   string `json:"value"`
	LabelAr string `json:"label_ar"`
	LabelEn string `json:"label_en"`
}

// FieldSchema describes one configurable form input. Its ID is the storage
// key for collected values and must be unique within a form.
// swagger:model FieldSchema
type FieldSchema struct {
	ID       string        `json:"id"`
	Type     FieldType     `json:"type"`
	LabelAr  string        `json:"label_ar"`
	LabelEn  string        `json:"label_en"`
	Required bool          `json:"required"`
	Options  []FieldOption `json:"options,omitempty"`
}

// Label returns the field's display label for the given language.
func (f FieldSchema) Label(lang Lang) string {
	return Localized(lang, f.LabelAr, f.LabelEn)
}

// FormDefinition is an ordered list of field schemas. Order is display
// order. A definition is always embedded in its owner (event section,
// sector, or partner opportunity); it has no identity of its own.
type FormDefinition []FieldSchema

// fieldIDPattern keeps ids safe as JSON object keys.
var fieldIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// FieldError reports which field failed form validation and why.
type FieldError struct {
	FieldID string
	Reason  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.FieldID, e.Reason)
}

// Unwrap makes FieldError match ErrInvalidInput in errors.Is checks.
func (e *FieldError) Unwrap() error { return ErrInvalidInput }

// Validate checks the definition against the builder rules: every field
// has a non-empty id matching [a-zA-Z0-9_]+ that is unique within the
// list, a supported type, at least one label, and select fields carry at
// least one option with unique option values. The first violation is
// returned as a *FieldError; a valid definition returns nil. Validation
// is all-or-nothing: callers must not persist a definition that fails.
func (d FormDefinition) Validate() error {
	seen := make(map[string]struct{}, len(d))
	for _, f := range d {
		if f.ID == "" {
			return &FieldError{FieldID: f.ID, Reason: "id is required"}
		}
		if !fieldIDPattern.MatchString(f.ID) {
			return &FieldError{FieldID: f.ID, Reason: "id may only contain letters, digits, and underscores"}
		}
		if _, dup := seen[f.ID]; dup {
			return &FieldError{FieldID: f.ID, Reason: "duplicate id"}
		}
		seen[f.ID] = struct{}{}
		if !ValidFieldType(f.Type) {
			return &FieldError{FieldID: f.ID, Reason: fmt.Sprintf("unsupported type %q", f.Type)}
		}
		if f.LabelAr == "" && f.LabelEn == "" {
			return &FieldError{FieldID: f.ID, Reason: "at least one label is required"}
		}
		if f.Type == FieldSelect {
			if len(f.Options) == 0 {
				return &FieldError{FieldID: f.ID, Reason: "select field needs at least one option"}
			}
			values := make(map[string]struct{}, len(f.Options))
			for _, o := range f.Options {
				if _, dup := values[o.Value]; dup {
					return &FieldError{FieldID: f.ID, Reason: fmt.Sprintf("duplicate option value %q", o.Value)}
				}
				values[o.Value] = struct{}{}
			}
		} else if len(f.Options) > 0 {
			return &FieldError{FieldID: f.ID, Reason: "options are only allowed on select fields"}
		}
	}
	return nil
}

// FieldByID returns the schema for the given field id, if present.
func (d FormDefinition) FieldByID(id string) (FieldSchema, bool) {
	for _, f := range d {
		if f.ID == id {
			return f, true
		}
	}
	return FieldSchema{}, false
}

// SectionTemplate is a cross-event default form for one section slug.
// It is used whenever an event's own section form has zero fields.
type SectionTemplate struct {
	Section   SectionSlug    `json:"section"`
	Fields    FormDefinition `json:"fields"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ResolveForm applies the template fallback rule: the owner's fields win
// whenever non-empty; otherwise the template's fields are used as a whole.
// Fields are never merged field-by-field.
func ResolveForm(own, template FormDefinition) FormDefinition {
	if len(own) > 0 {
		return own
	}
	return template
}
