package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/motorent/internal/model"
	"github.com/motorent/internal/store"
)

func TestSubmitBookingSendsMultipartFieldsAndAttachments(t *testing.T) {
	type captured struct {
		fields map[string]string
		files  map[string]string
	}
	var got captured

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(4 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		got.fields = make(map[string]string)
		for name, values := range r.MultipartForm.Value {
			got.fields[name] = values[0]
		}
		got.files = make(map[string]string)
		for name, headers := range r.MultipartForm.File {
			got.files[name] = headers[0].Filename
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	svc := NewBookingService(store.New(server.URL))
	err := svc.Submit(context.Background(), BookingRequest{
		Name:         "Alex Doe",
		Email:        "alex@example.com",
		Phone:        "07700900000",
		Vehicle:      "ktm-duke-390",
		StartDate:    "2026-09-01",
		EndDate:      "2026-09-08",
		LicenseType:  "full",
		HasCBT:       true,
		Note:         "Pick up after 10am please",
		LicenseFront: &Attachment{Filename: "front.jpg", Data: []byte("front")},
		LicenseBack:  &Attachment{Filename: "back.jpg", Data: []byte("back")},
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if got.fields["name"] != "Alex Doe" || got.fields["vehicle"] != "ktm-duke-390" {
		t.Fatalf("unexpected fields: %v", got.fields)
	}
	if got.fields["has_cbt"] != "true" {
		t.Fatalf("expected has_cbt=true, got %q", got.fields["has_cbt"])
	}
	if got.files["license_front"] != "front.jpg" || got.files["license_back"] != "back.jpg" {
		t.Fatalf("expected both license photos, got %v", got.files)
	}
}

func TestSubmitBookingAttachmentsAreOptional(t *testing.T) {
	var fileCount int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseMultipartForm(1 << 20)
		fileCount = len(r.MultipartForm.File)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	svc := NewBookingService(store.New(server.URL))
	if err := svc.Submit(context.Background(), BookingRequest{Name: "Alex"}); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if fileCount != 0 {
		t.Fatalf("expected no file parts, got %d", fileCount)
	}
}

func TestSubmitBookingFailureIsSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"dates overlap an existing booking"}`))
	}))
	defer server.Close()

	svc := NewBookingService(store.New(server.URL))
	err := svc.Submit(context.Background(), BookingRequest{Name: "Alex"})
	if err == nil {
		t.Fatal("expected submission failure")
	}
	if err.Error() != "dates overlap an existing booking" {
		t.Fatalf("expected verbatim detail, got %q", err.Error())
	}
}

func TestContactFormKeysStateByIdNotLabel(t *testing.T) {
	fields := []model.ContactField{
		{ID: 1, Label: "Message", FieldType: model.FieldTypeText},
		{ID: 2, Label: "Message", FieldType: model.FieldTypeTextarea},
	}
	form := NewContactForm(fields)
	form.Set(1, "first")
	form.Set(2, "second")

	// 编辑状态按 id 区分，两个同名字段互不覆盖
	if form.Value(1) != "first" || form.Value(2) != "second" {
		t.Fatalf("expected id-keyed state, got %q / %q", form.Value(1), form.Value(2))
	}

	// 序列化时才按 label 折叠
	payload := form.Payload()
	if len(payload) != 1 {
		t.Fatalf("expected label collapse at serialization, got %v", payload)
	}
	if payload["Message"] != "second" {
		t.Fatalf("expected the later field to win, got %q", payload["Message"])
	}
}

func TestSubmitContactPostsLabelKeyedJSON(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}
		json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	fields := []model.ContactField{
		{ID: 1, Label: "Name", FieldType: model.FieldTypeText, IsRequired: true},
		{ID: 2, Label: "Email", FieldType: model.FieldTypeEmail, IsRequired: true},
	}
	form := NewContactForm(fields)
	form.Set(1, "Alex Doe")
	form.Set(2, "alex@example.com")

	svc := NewBookingService(store.New(server.URL))
	if err := svc.SubmitContact(context.Background(), form); err != nil {
		t.Fatalf("SubmitContact returned error: %v", err)
	}

	if received["Name"] != "Alex Doe" || received["Email"] != "alex@example.com" {
		t.Fatalf("unexpected payload: %v", received)
	}
}

func TestSubmitContactBlocksOnMissingRequiredFields(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	fields := []model.ContactField{
		{ID: 1, Label: "Email", FieldType: model.FieldTypeEmail, IsRequired: true},
	}
	form := NewContactForm(fields)

	svc := NewBookingService(store.New(server.URL))
	if err := svc.SubmitContact(context.Background(), form); err != ErrContactFieldsMissing {
		t.Fatalf("expected ErrContactFieldsMissing, got %v", err)
	}
	if requests != 0 {
		t.Fatal("presence failure must pre-empt the network call")
	}
	if missing := form.MissingRequired(); len(missing) != 1 || missing[0] != "Email" {
		t.Fatalf("expected missing label 'Email', got %v", missing)
	}
}
