package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_DefaultStatus(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())

	if rw.statusCode != http.StatusOK {
		t.Errorf("default statusCode = %d, want %d", rw.statusCode, http.StatusOK)
	}
	if rw.headerWritten {
		t.Error("headerWritten = true before any write")
	}
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusConflict)

	if rw.statusCode != http.StatusConflict {
		t.Errorf("statusCode = %d, want %d", rw.statusCode, http.StatusConflict)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("recorder Code = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestResponseWriter_SecondWriteHeaderIgnored(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusNotFound)

	if rw.statusCode != http.StatusCreated {
		t.Errorf("statusCode = %d, want %d after second WriteHeader", rw.statusCode, http.StatusCreated)
	}
}

func TestResponseWriter_WriteCountsBytes(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	n, err := rw.Write([]byte(`{"status":"available"}`))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 22 || rw.written != 22 {
		t.Errorf("Write() = %d, written = %d, want 22", n, rw.written)
	}
	if !rw.headerWritten {
		t.Error("headerWritten = false after Write")
	}
	if _, _ = rw.Write([]byte("ok")); rw.written != 24 {
		t.Errorf("written = %d after second Write, want 24", rw.written)
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	if rw.Unwrap() != rec {
		t.Error("Unwrap() did not return the wrapped writer")
	}
}
