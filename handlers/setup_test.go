package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/andrewpaige1/studynote-api/logger"
	"github.com/andrewpaige1/studynote-api/media"
	"github.com/andrewpaige1/studynote-api/schema"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var testNow = time.Date(2025, 5, 2, 14, 3, 9, 0, time.UTC)

type testEnv struct {
	h   *DBHandler
	mux *http.ServeMux
}

// newTestEnv wires a handler to a fresh sqlite file and temp media dirs.
// evolve runs the study_materials evolution first.
func newTestEnv(t *testing.T, evolve bool) *testEnv {
	t.Helper()
	dir := t.TempDir()

	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	ctx := context.Background()
	if err := schema.Bootstrap(ctx, db); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if evolve {
		if _, err := schema.EvolveStudyMaterials(ctx, db); err != nil {
			t.Fatalf("evolve: %v", err)
		}
	}

	store, err := media.New(filepath.Join(dir, "uploads"), filepath.Join(dir, "static", "audio"), "http://localhost:8000")
	if err != nil {
		t.Fatalf("media: %v", err)
	}
	store.Now = func() time.Time { return testNow }

	logg, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	h := &DBHandler{DB: db, Log: logg, Media: store}
	mux := http.NewServeMux()
	h.Register(mux)
	return &testEnv{h: h, mux: mux}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.mux.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) postForm(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(req)
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	return e.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (e *testEnv) postMultipart(t *testing.T, path string, fields map[string]string, fileName, content string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return e.do(req)
}

func decodeInto(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
}

func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	m := map[string]any{}
	decodeInto(t, rr, &m)
	return m
}
