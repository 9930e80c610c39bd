package fetch

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestReport_SuccessfulFetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><head><script>var x=1;</script></head>" +
			"<body><h1>Test Page</h1><p>This is content</p></body></html>"))
	}))
	defer srv.Close()

	got := New().Report(t.Context(), srv.URL)
	if !strings.Contains(got, "Test Page") || !strings.Contains(got, "This is content") {
		t.Fatalf("Report = %q", got)
	}
	if strings.Contains(got, "var x=1") {
		t.Fatalf("Report leaked script content: %q", got)
	}
}

func TestReport_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	got := New().Report(t.Context(), srv.URL+"/notfound")
	if !strings.Contains(got, "Error fetching") || !strings.Contains(got, "HTTP status code 404") {
		t.Fatalf("Report = %q", got)
	}
}

func TestReport_ConnectionError(t *testing.T) {
	t.Parallel()

	// Reserved TEST-NET address; nothing listens there.
	got := New().Report(t.Context(), "http://127.0.0.1:1/")
	if !strings.Contains(got, "Error fetching") {
		t.Fatalf("Report = %q", got)
	}
}

func TestReport_NonHTMLPassthrough(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	got := New().Report(t.Context(), srv.URL)
	if got != `{"ok": true}` {
		t.Fatalf("Report = %q", got)
	}
}

func TestHTMLToText_BlockSeparation(t *testing.T) {
	t.Parallel()

	got := htmlToText("<div>one</div><div>two</div><span>three</span>")
	if !strings.Contains(got, "one\n") || !strings.Contains(got, "two") {
		t.Fatalf("htmlToText = %q", got)
	}
	if strings.Contains(got, "onetwo") {
		t.Fatalf("blocks not separated: %q", got)
	}
}
