package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"multaqa/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubmissionService implements domain.SubmissionService for handler tests.
type fakeSubmissionService struct {
	submitErr    error
	statusErr    error
	contactsInfo *domain.ContactInfo
	contactsErr  error
	triageErr    error

	lastOwner   domain.OwnerRef
	lastPayload map[string]any
	lastStatus  domain.SubmissionStatus
	lastKind    domain.OwnerKind
	lastOpts    domain.TriageOptions
}

func (f *fakeSubmissionService) Submit(_ context.Context, owner domain.OwnerRef, payload map[string]any) (*domain.Submission, error) {
	f.lastOwner = owner
	f.lastPayload = payload
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &domain.Submission{
		ID:     "sub-created",
		Owner:  owner,
		Data:   map[string]domain.FieldValue{"full_name": domain.StringValue("Alia")},
		Status: domain.StatusPending,
	}, nil
}

func (f *fakeSubmissionService) GetByID(_ context.Context, id string) (*domain.Submission, error) {
	if id != "sub-1" {
		return nil, domain.ErrNotFound
	}
	return &domain.Submission{ID: id, Status: domain.StatusPending}, nil
}

func (f *fakeSubmissionService) UpdateStatus(_ context.Context, id string, status domain.SubmissionStatus) (*domain.Submission, error) {
	f.lastStatus = status
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &domain.Submission{ID: id, Status: status}, nil
}

func (f *fakeSubmissionService) Triage(_ context.Context, kind domain.OwnerKind, _ domain.Lang, opts domain.TriageOptions) (*domain.TriageResult, error) {
	f.lastKind = kind
	f.lastOpts = opts
	if f.triageErr != nil {
		return nil, f.triageErr
	}
	return &domain.TriageResult{Items: []*domain.TriageItem{}, Total: 0, Page: 1, TotalPages: 1}, nil
}

func (f *fakeSubmissionService) ExportCSV(_ context.Context, w io.Writer, kind domain.OwnerKind, _ domain.Lang, _ domain.TriageOptions) error {
	f.lastKind = kind
	_, err := w.Write([]byte("section,event,created_at,status\n"))
	return err
}

func (f *fakeSubmissionService) Contacts(_ context.Context, _ string) (*domain.ContactInfo, error) {
	if f.contactsErr != nil {
		return nil, f.contactsErr
	}
	return f.contactsInfo, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSubmissionController_Submit(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"kind":"event_section","owner_id":"evt-1","section":"registration","data":{"full_name":"Alia"}}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:           "bad request invalid json",
			body:           `{invalid`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "bad_request",
		},
		{
			name:           "unknown owner kind",
			body:           `{"kind":"mystery","owner_id":"x","data":{"a":"b"}}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "kind",
		},
		{
			name:           "missing section for event submissions",
			body:           `{"kind":"event_section","owner_id":"evt-1","data":{"a":"b"}}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "section",
		},
		{
			name:           "missing required fields",
			body:           `{"kind":"sector","owner_id":"sec-1","data":{"other":"x"}}`,
			fakeErr:        &domain.MissingFieldsError{FieldIDs: []string{"full_name"}},
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "full_name",
		},
		{
			name:           "closed owner",
			body:           `{"kind":"opportunity","owner_id":"opp-1","data":{"a":"b"}}`,
			fakeErr:        domain.ErrForbidden,
			wantStatus:     http.StatusForbidden,
			wantBodySubstr: "forbidden",
		},
		{
			name:           "owner not found",
			body:           `{"kind":"sector","owner_id":"missing","data":{"a":"b"}}`,
			fakeErr:        domain.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSubmissionService{submitErr: tt.fakeErr}
			ctrl := NewSubmissionController(testLogger(), fake)
			req := httptest.NewRequest(http.MethodPost, "/submissions", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.Submit(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantBodySubstr != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBodySubstr, "response body")
			}
			if tt.wantStatus == http.StatusCreated {
				var resp struct {
					Data domain.Submission `json:"data"`
				}
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "sub-created", resp.Data.ID)
				assert.Equal(t, domain.StatusPending, resp.Data.Status)
				assert.Equal(t, domain.OwnerEventSection, fake.lastOwner.Kind)
				assert.Equal(t, domain.SectionRegistration, fake.lastOwner.Section)
			}
		})
	}
}

func TestSubmissionController_UpdateStatus(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"status":"approved"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:           "unknown status",
			body:           `{"status":"archived"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "status",
		},
		{
			name:           "no-op transition",
			body:           `{"status":"pending"}`,
			fakeErr:        domain.ErrInvalidTransition,
			wantStatus:     http.StatusConflict,
			wantBodySubstr: "conflict",
		},
		{
			name:           "not found",
			body:           `{"status":"approved"}`,
			fakeErr:        domain.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSubmissionService{statusErr: tt.fakeErr}
			ctrl := NewSubmissionController(testLogger(), fake)
			req := httptest.NewRequest(http.MethodPatch, "/admin/submissions/sub-1/status", bytes.NewBufferString(tt.body))
			req.SetPathValue("submissionID", "sub-1")
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.UpdateStatus(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantBodySubstr != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBodySubstr, "response body")
			}
		})
	}
}

func TestSubmissionController_Triage(t *testing.T) {
	t.Run("parses filters and forwards them", func(t *testing.T) {
		fake := &fakeSubmissionService{}
		ctrl := NewSubmissionController(testLogger(), fake)
		req := httptest.NewRequest(http.MethodGet,
			"/admin/triage/event_section?section=registration&status=pending&search=alia&sort=status&dir=desc&page=2", nil)
		req.SetPathValue("kind", "event_section")
		rr := httptest.NewRecorder()

		ctrl.Triage(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, domain.OwnerEventSection, fake.lastKind)
		assert.Equal(t, domain.SectionRegistration, fake.lastOpts.Section)
		assert.Equal(t, domain.StatusPending, fake.lastOpts.Status)
		assert.Equal(t, "alia", fake.lastOpts.Search)
		assert.Equal(t, domain.SortByStatus, fake.lastOpts.SortField)
		assert.Equal(t, domain.SortDesc, fake.lastOpts.SortDir)
		assert.Equal(t, 2, fake.lastOpts.Page)
	})

	t.Run("unknown kind", func(t *testing.T) {
		ctrl := NewSubmissionController(testLogger(), &fakeSubmissionService{})
		req := httptest.NewRequest(http.MethodGet, "/admin/triage/mystery", nil)
		req.SetPathValue("kind", "mystery")
		rr := httptest.NewRecorder()

		ctrl.Triage(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "unknown owner kind")
	})
}

func TestSubmissionController_ExportCSV(t *testing.T) {
	fake := &fakeSubmissionService{}
	ctrl := NewSubmissionController(testLogger(), fake)
	req := httptest.NewRequest(http.MethodGet, "/admin/triage/sector/export", nil)
	req.SetPathValue("kind", "sector")
	rr := httptest.NewRecorder()

	ctrl.ExportCSV(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rr.Body.String(), "section,event,created_at,status")
	assert.Equal(t, domain.OwnerSector, fake.lastKind)
}

func TestSubmissionController_Contacts(t *testing.T) {
	fake := &fakeSubmissionService{contactsInfo: &domain.ContactInfo{
		Phones: []string{"07701234567"},
		Emails: []string{"alia@example.com"},
	}}
	ctrl := NewSubmissionController(testLogger(), fake)
	req := httptest.NewRequest(http.MethodGet, "/admin/submissions/sub-1/contacts", nil)
	req.SetPathValue("submissionID", "sub-1")
	rr := httptest.NewRecorder()

	ctrl.Contacts(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Data ContactsResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Data.Phones, 1)
	assert.Equal(t, "07701234567", resp.Data.Phones[0].Number)
	assert.Equal(t, "9647701234567", resp.Data.Phones[0].WhatsApp)
	assert.Equal(t, []string{"alia@example.com"}, resp.Data.Emails)
}
