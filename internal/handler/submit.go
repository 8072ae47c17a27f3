package handler

import (
	"encoding/json"
	"mime"
	"net/http"
	"net/url"

	iv "github.com/Gobd/intakevalidation"
	"github.com/Gobd/intakevalidation/internal/logger"
	"github.com/Gobd/intakevalidation/openapi"
)

const maxBodyBytes = 1 << 20

// rejection is the body of a 422 response: the message to show and the
// control to focus.
type rejection struct {
	Message string       `json:"message"`
	Focus   *iv.FieldRef `json:"focus,omitempty"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// responsePresenter collects what the form page should present.
type responsePresenter struct {
	message string
	focus   *iv.FieldRef
}

func (p *responsePresenter) Alert(message string) {
	p.message = message
}

func (p *responsePresenter) Focus(ref iv.FieldRef) {
	p.focus = &ref
}

func (p *responsePresenter) response() rejection {
	return rejection{Message: p.message, Focus: p.focus}
}

func (h *Handler) submitPatientForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	form, err := decodePatientForm(r)
	if err != nil {
		log.Debug().Err(err).Msg("patient form could not be decoded")
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	p := &responsePresenter{}
	if !iv.Submit(form, p) {
		focus := ""
		if p.focus != nil {
			focus = p.focus.String()
		}
		log.Info().Str("focus", focus).Msg("patient form rejected")
		writeJSON(w, http.StatusUnprocessableEntity, p.response())
		return
	}

	log.Info().Msg("patient form accepted")
	http.Redirect(w, r, h.thankYouURL, http.StatusSeeOther)
}

// decodePatientForm reads the form from a JSON document, a multipart body,
// or url-encoded form values, depending on the request content type.
func decodePatientForm(r *http.Request) (*iv.PatientForm, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case openapi.ContentTypeJSON:
		form := &iv.PatientForm{}
		if err := json.NewDecoder(r.Body).Decode(form); err != nil {
			return nil, err
		}
		return form, nil
	case openapi.ContentTypeMultipart:
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return nil, err
		}
	default:
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
	}
	return patientFormFromValues(r.PostForm), nil
}

// patientFormFromValues maps submitted control values onto the form. A radio
// group only submits its checked value, so each group is rebuilt from its
// option list.
func patientFormFromValues(vals url.Values) *iv.PatientForm {
	return &iv.PatientForm{
		UserID:          vals.Get("userid"),
		Password:        vals.Get("passid"),
		PasswordConfirm: vals.Get("passid2"),
		FirstName:       vals.Get("fname"),
		LastName:        vals.Get("lname"),
		DOB:             vals.Get("dob"),
		SSN:             vals.Get("ssn"),
		Address1:        vals.Get("addr1"),
		City:            vals.Get("city"),
		State:           vals.Get("state"),
		ZIP:             vals.Get("zip"),
		Email:           vals.Get("email"),
		Gender:          iv.NewRadioGroup(iv.GenderOptions, vals.Get("gender")),
		Vaccinated:      iv.NewRadioGroup(iv.VaccinatedOptions, vals.Get("vaccinated")),
		Insurance:       iv.NewRadioGroup(iv.InsuranceOptions, vals.Get("insurance")),
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
