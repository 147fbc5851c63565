package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/motorent/internal/model"
	"github.com/motorent/internal/service"
	"github.com/motorent/internal/store"
)

// SubmitBooking forwards a public booking inquiry to the store as one
// multipart request. The license photos are optional; no field is
// re-validated here beyond what the form already required.
func (a *API) SubmitBooking(c *gin.Context) {
	req := service.BookingRequest{
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
		Vehicle:     c.PostForm("vehicle"),
		StartDate:   c.PostForm("start_date"),
		EndDate:     c.PostForm("end_date"),
		LicenseType: c.PostForm("license_type"),
		HasCBT:      c.PostForm("has_cbt") == "true",
		Note:        c.PostForm("note"),
	}

	var err error
	if req.LicenseFront, err = formAttachment(c, "license_front"); err != nil {
		respondError(c, http.StatusBadRequest, "failed to read the license photo")
		return
	}
	if req.LicenseBack, err = formAttachment(c, "license_back"); err != nil {
		respondError(c, http.StatusBadRequest, "failed to read the license photo")
		return
	}

	if err := a.booking.Submit(c.Request.Context(), req); err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "booking received"})
}

// formAttachment 读取可选的表单附件，未附带时返回 nil。
func formAttachment(c *gin.Context, field string) (*service.Attachment, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, multipart.ErrMessageTooLarge) {
			return nil, nil
		}
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &service.Attachment{Filename: fileHeader.Filename, Data: data}, nil
}

type contactSubmission struct {
	// Values 以字段 id 为键，序列化为提交负载时才换成 label
	Values map[string]string `json:"values"`
}

// SubmitContactForm forwards a public contact submission as JSON.
func (a *API) SubmitContactForm(c *gin.Context) {
	var payload contactSubmission
	if !bindJSON(c, &payload, "invalid contact submission") {
		return
	}

	fields, err := store.List[model.ContactField](c.Request.Context(), a.store, model.PathContactFields)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}

	form := service.NewContactForm(fields)
	for rawID, value := range payload.Values {
		id, err := strconv.Atoi(rawID)
		if err != nil {
			continue
		}
		form.Set(id, value)
	}

	if err := a.booking.SubmitContact(c.Request.Context(), form); err != nil {
		if errors.Is(err, service.ErrContactFieldsMissing) {
			respondError(c, http.StatusBadRequest,
				"please fill in: "+strings.Join(form.MissingRequired(), ", "))
			return
		}
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "message sent"})
}
