// Package openapi builds OpenAPI 3 documents for form submission endpoints.
// Request schemas come from types that implement
// [intakevalidation.Checker], so the documented constraints are the ones the
// checks enforce.
//
// Use [DocBase] to create a base document and register endpoints with [Get]
// or [Post]:
//
//	doc := openapi.DocBase("intake", "Patient intake", "1.0")
//	openapi.Post(doc, "/patient-form", "submitPatientForm", openapi.Endpoint{
//	    Request: intakevalidation.PatientForm{},
//	})
package openapi
