package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andrewpaige1/studynote-api/logger"
	"github.com/andrewpaige1/studynote-api/middleware"
)

type FailureKind string

const (
	FailStore    FailureKind = "store"
	FailNotFound FailureKind = "not_found"
	FailIO       FailureKind = "io"
	FailBadInput FailureKind = "bad_input"
)

// Failure is the single error type handlers return. The route decides how it
// reaches the client.
type Failure struct {
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return string(f.Kind)
	}
	return f.Err.Error()
}

func (f *Failure) Unwrap() error { return f.Err }

func storeFailure(err error) *Failure { return &Failure{Kind: FailStore, Err: err} }
func ioFailure(err error) *Failure { return &Failure{Kind: FailIO, Err: err} }
func badInput(err error) *Failure { return &Failure{Kind: FailBadInput, Err: err} }
func notFound(msg string) *Failure { return &Failure{Kind: FailNotFound, Err: errors.New(msg)} }

// policy picks the transport for non-input failures.
type policy int

const (
	// payloadPolicy answers 200 with {"status":"error","detail":...}.
	payloadPolicy policy = iota
	// transportPolicy answers 500 (404 for not found) with {"detail":...}.
	transportPolicy
)

type statusResponse struct {
	Status string `json:"status"`
}

type errorPayload struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}

type errorDetail struct {
	Detail string `json:"detail"`
}

type operation func(r *http.Request) (any, error)

func (db *DBHandler) serve(p policy, op operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := op(r)
		if err != nil {
			db.fail(w, r, p, err)
			return
		}
		writeJSON(w, http.StatusOK, payload)
	}
}

func (db *DBHandler) fail(w http.ResponseWriter, r *http.Request, p policy, err error) {
	var f *Failure
	if !errors.As(err, &f) {
		f = storeFailure(err)
	}

	db.requestLog(r).Error("request failed", "kind", string(f.Kind), "error", f.Error())

	switch {
	case f.Kind == FailBadInput:
		writeJSON(w, http.StatusUnprocessableEntity, errorDetail{Detail: f.Error()})
	case p == payloadPolicy:
		writeJSON(w, http.StatusOK, errorPayload{Status: "error", Detail: f.Error()})
	case f.Kind == FailNotFound:
		writeJSON(w, http.StatusNotFound, errorDetail{Detail: f.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorDetail{Detail: f.Error()})
	}
}

// requestLog scopes the handler logger to one request.
func (db *DBHandler) requestLog(r *http.Request) *logger.Logger {
	return db.Log.With(
		"request_id", middleware.RequestIDFromContext(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
	)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
