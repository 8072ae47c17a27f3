// Package handler serves the patient intake form submission over HTTP.
//
// POST /patient-form plays the part of the form's submit handler: the
// submitted values are run through the check battery, a failure is answered
// with the message and the control to focus, and a valid submission is
// redirected to the thank-you page.
package handler

import (
	"net/http"

	iv "github.com/Gobd/intakevalidation"
	"github.com/Gobd/intakevalidation/internal/logger"
	"github.com/Gobd/intakevalidation/openapi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Route paths.
const (
	PathPatientForm = "/patient-form"
	PathOpenAPI     = "/openapi.json"
	PathHealth      = "/healthz"
)

// Handler holds the dependencies of the HTTP routes.
type Handler struct {
	logger      *logger.Logger
	thankYouURL string
	docJSON     []byte
}

// New builds a Handler and the OpenAPI document it serves.
func New(log *logger.Logger, thankYouURL string) (*Handler, error) {
	doc := openapi.DocBase("intake", "Patient intake form submission", "1.0.0")
	openapi.Post(doc, PathPatientForm, "submitPatientForm", openapi.Endpoint{
		Summary:      "Submit the patient intake form",
		Description:  "Checks run in a fixed order; only the first failure is reported.",
		Request:      iv.PatientForm{},
		ContentTypes: []string{openapi.ContentTypeForm, openapi.ContentTypeMultipart, openapi.ContentTypeJSON},
		Responses: map[string]openapi.Response{
			"303": {Desc: "Accepted, redirect to the thank-you page"},
			"400": {Desc: "Malformed request body", Bodies: []any{errorResponse{}}},
			"422": {Desc: "A field is invalid", Bodies: []any{rejection{}}},
		},
	})
	openapi.Get(doc, PathHealth, "health", openapi.Endpoint{
		Responses: map[string]openapi.Response{"200": {Desc: "OK"}},
	})

	docJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}

	return &Handler{
		logger:      log,
		thankYouURL: thankYouURL,
		docJSON:     docJSON,
	}, nil
}

// Init returns the router with all routes and middleware mounted.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post(PathPatientForm, h.submitPatientForm)
	router.Get(PathOpenAPI, h.openAPI)
	router.Get(PathHealth, h.health)

	return router
}

func (h *Handler) openAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(h.docJSON)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok"))
}
