package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName, fileContent string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			t.Fatalf("write field %s: %v", name, err)
		}
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte(fileContent)); err != nil {
			t.Fatalf("write file content: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestContestFormShowsCurrentPeriod(t *testing.T) {
	engine := newTestEngine(t, nil, nil, "")

	w := doRequest(engine, httptest.NewRequest(http.MethodGet, "/contest/vacation-photo", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /contest/vacation-photo = %d, want 200", w.Code)
	}

	now := time.Now()
	wantAction := fmt.Sprintf("/contest/vacation-photo/%d/%d", now.Year(), int(now.Month())-1)
	if !strings.Contains(w.Body.String(), wantAction) {
		t.Errorf("form does not post to %q", wantAction)
	}
}

func TestContestEntryStoresFileAndRedirects(t *testing.T) {
	uploadDir := t.TempDir()
	engine := newTestEngine(t, nil, nil, uploadDir)

	body, contentType := multipartBody(t,
		map[string]string{"name": "Joe", "email": "joe@example.com"},
		"photo", "gorge-sunset.dat", "not really a photo")

	req := httptest.NewRequest(http.MethodPost, "/contest/vacation-photo/2026/7", body)
	req.Header.Set("Content-Type", contentType)

	w := doRequest(engine, req)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("POST contest entry = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/thank-you" {
		t.Errorf("Location = %q, want /thank-you", loc)
	}

	stored := filepath.Join(uploadDir, "contest", "2026", "7", "gorge-sunset.dat")
	data, err := os.ReadFile(stored)
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "not really a photo" {
		t.Error("stored file content differs from the upload")
	}
}

func TestContestEntryMalformedSubmission(t *testing.T) {
	engine := newTestEngine(t, nil, nil, "")

	// No multipart body at all
	req := httptest.NewRequest(http.MethodPost, "/contest/vacation-photo/2026/7", strings.NewReader("name=Joe"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := doRequest(engine, req)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("POST malformed entry = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/error" {
		t.Errorf("Location = %q, want /error", loc)
	}
}

func TestUploadEndpoint(t *testing.T) {
	t.Run("stores files in a timestamped directory", func(t *testing.T) {
		uploadDir := t.TempDir()
		engine := newTestEngine(t, nil, nil, uploadDir)

		body, contentType := multipartBody(t, nil, "files[]", "photo.dat", "payload")
		req := httptest.NewRequest(http.MethodPost, "/upload/browser", body)
		req.Header.Set("Content-Type", contentType)

		w := doRequest(engine, req)
		if w.Code != http.StatusOK {
			t.Fatalf("POST /upload = %d, want 200: %s", w.Code, w.Body.String())
		}

		var payload struct {
			Files []struct {
				Name string `json:"name"`
				Size int64  `json:"size"`
				URL  string `json:"url"`
			} `json:"files"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}
		if len(payload.Files) != 1 {
			t.Fatalf("response lists %d files, want 1", len(payload.Files))
		}
		file := payload.Files[0]
		if file.Name != "photo.dat" {
			t.Errorf("file name = %q, want photo.dat", file.Name)
		}
		if file.Size != int64(len("payload")) {
			t.Errorf("file size = %d, want %d", file.Size, len("payload"))
		}
		if !strings.HasPrefix(file.URL, "/uploads/") {
			t.Errorf("file URL %q not under /uploads/", file.URL)
		}
	})

	t.Run("rejects a non-multipart request", func(t *testing.T) {
		engine := newTestEngine(t, nil, nil, "")

		req := httptest.NewRequest(http.MethodPost, "/upload/browser", strings.NewReader("plain"))
		req.Header.Set("Content-Type", "text/plain")

		w := doRequest(engine, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("POST /upload = %d, want 400", w.Code)
		}
	})
}
