package stt_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"scribe/internal/apperr"
	"scribe/internal/stt"
)

func writeAudioFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memo.mp3")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("write audio file: %v", err)
	}
	return path
}

func TestDeepInfra_Success(t *testing.T) {
	audioPath := writeAudioFile(t, []byte("fake-audio-bytes"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected Authorization header: %q", got)
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("parse multipart form: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("missing file field: %v", err)
		} else {
			file.Close()
			if header.Filename != "memo.mp3" {
				t.Errorf("unexpected upload filename: %q", header.Filename)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"hello from whisper"}`))
	}))
	defer srv.Close()

	p := stt.NewDeepInfraProvider("test-key", srv.URL)
	text, err := p.Transcribe(t.Context(), audioPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "hello from whisper" {
		t.Fatalf("unexpected transcript: %q", text)
	}
}

func TestDeepInfra_EmptyTranscript(t *testing.T) {
	audioPath := writeAudioFile(t, []byte("silence"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"text":""}`))
	}))
	defer srv.Close()

	p := stt.NewDeepInfraProvider("test-key", srv.URL)
	text, err := p.Transcribe(t.Context(), audioPath)
	if err != nil {
		t.Fatalf("empty but present transcript should not fail: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty transcript, got %q", text)
	}
}

func TestDeepInfra_MissingTextField(t *testing.T) {
	audioPath := writeAudioFile(t, []byte("fake-audio"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"task":"transcribe"}`))
	}))
	defer srv.Close()

	p := stt.NewDeepInfraProvider("test-key", srv.URL)
	if _, err := p.Transcribe(t.Context(), audioPath); !apperr.IsKind(err, apperr.KindTranscription) {
		t.Fatalf("expected transcription error, got %v", err)
	}
}

func TestDeepInfra_RemoteError(t *testing.T) {
	audioPath := writeAudioFile(t, []byte("fake-audio"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"model overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := stt.NewDeepInfraProvider("test-key", srv.URL)
	if _, err := p.Transcribe(t.Context(), audioPath); !apperr.IsKind(err, apperr.KindTranscription) {
		t.Fatalf("expected transcription error, got %v", err)
	}
}

func TestDeepInfra_MissingKey(t *testing.T) {
	audioPath := writeAudioFile(t, []byte("fake-audio"))

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Write([]byte(`{"text":"should never happen"}`))
	}))
	defer srv.Close()

	p := stt.NewDeepInfraProvider("", srv.URL)
	if _, err := p.Transcribe(t.Context(), audioPath); !apperr.IsKind(err, apperr.KindConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if calls != 0 {
		t.Fatal("no request should be made without an API key")
	}
}

func TestDeepInfra_UnreadableFile(t *testing.T) {
	p := stt.NewDeepInfraProvider("test-key", "http://localhost:0")
	if _, err := p.Transcribe(t.Context(), filepath.Join(t.TempDir(), "missing.mp3")); !apperr.IsKind(err, apperr.KindTranscription) {
		t.Fatalf("expected transcription error, got %v", err)
	}
}
