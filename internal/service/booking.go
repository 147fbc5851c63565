package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/motorent/internal/model"
	"github.com/motorent/internal/store"
)

// ErrContactFieldsMissing 表示必填的联系表单字段未填写。
var ErrContactFieldsMissing = errors.New("required contact fields are missing")

// Attachment is one optional binary attached to a booking, a license photo.
type Attachment struct {
	Filename string
	Data     []byte
}

// BookingRequest carries the fixed booking field set plus up to two optional
// license photos. Nothing here is re-validated beyond what the form already
// required; the store has the final say.
type BookingRequest struct {
	Name         string
	Email        string
	Phone        string
	Vehicle      string
	StartDate    string
	EndDate      string
	LicenseType  string
	HasCBT       bool
	Note         string
	LicenseFront *Attachment
	LicenseBack  *Attachment
}

// BookingService forwards booking and contact submissions to the store.
// Fire-and-forget: success is terminal for the caller, failure leaves the
// form intact for resubmission.
type BookingService struct {
	store *store.Client
}

// NewBookingService constructs a BookingService. Submissions are public, so
// the client should carry no token.
func NewBookingService(client *store.Client) *BookingService {
	return &BookingService{store: client}
}

// Submit assembles the booking into one multipart request and sends it.
func (s *BookingService) Submit(ctx context.Context, req BookingRequest) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fields := map[string]string{
		"name":         req.Name,
		"email":        req.Email,
		"phone":        req.Phone,
		"vehicle":      req.Vehicle,
		"start_date":   req.StartDate,
		"end_date":     req.EndDate,
		"license_type": req.LicenseType,
		"has_cbt":      fmt.Sprintf("%t", req.HasCBT),
		"note":         req.Note,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("write booking field %s: %w", name, err)
		}
	}

	if err := attach(writer, "license_front", req.LicenseFront); err != nil {
		return err
	}
	if err := attach(writer, "license_back", req.LicenseBack); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finish booking form: %w", err)
	}

	return s.store.PostMultipart(ctx, model.PathBookings, &body, writer.FormDataContentType(), nil)
}

func attach(writer *multipart.Writer, field string, a *Attachment) error {
	if a == nil {
		return nil
	}
	part, err := writer.CreateFormFile(field, a.Filename)
	if err != nil {
		return fmt.Errorf("attach %s: %w", field, err)
	}
	if _, err := part.Write(a.Data); err != nil {
		return fmt.Errorf("write %s: %w", field, err)
	}
	return nil
}

// ContactForm is the contact page's dynamically generated form. State is
// keyed by the field's stable id, so two fields sharing a display label never
// collide while editing; the label only becomes the submission key when the
// payload is serialized.
type ContactForm struct {
	fields []model.ContactField
	values map[int]string
}

// NewContactForm builds an empty form over the configured field set.
func NewContactForm(fields []model.ContactField) *ContactForm {
	return &ContactForm{fields: fields, values: make(map[int]string, len(fields))}
}

// Fields returns the field definitions in display order.
func (f *ContactForm) Fields() []model.ContactField { return f.fields }

// Set records the value typed into the field with the given id.
func (f *ContactForm) Set(fieldID int, value string) {
	f.values[fieldID] = value
}

// Value returns the current value for a field id.
func (f *ContactForm) Value(fieldID int) string { return f.values[fieldID] }

// MissingRequired lists the labels of required fields that are still blank.
func (f *ContactForm) MissingRequired() []string {
	var missing []string
	for _, field := range f.fields {
		if field.IsRequired && strings.TrimSpace(f.values[field.ID]) == "" {
			missing = append(missing, field.Label)
		}
	}
	return missing
}

// Payload resolves field ids to submission keys. Later fields with a
// duplicate label overwrite earlier ones here, at serialization time only.
func (f *ContactForm) Payload() map[string]string {
	payload := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		payload[field.Label] = f.values[field.ID]
	}
	return payload
}

// SubmitContact performs the presence check and posts the label-keyed payload
// as JSON. The contact variant is plain JSON, not multipart.
func (s *BookingService) SubmitContact(ctx context.Context, form *ContactForm) error {
	if len(form.MissingRequired()) > 0 {
		return ErrContactFieldsMissing
	}
	return s.store.PostJSON(ctx, model.PathContact, form.Payload(), nil)
}
