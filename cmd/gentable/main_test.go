package main

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	retryBaseDelay = 0 // Eliminate sleep in retry loops for all tests.
	os.Exit(m.Run())
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newHTTPResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

// closedServerURL returns the URL of an already-closed httptest server (connection refused).
func closedServerURL() string {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()
	return ts.URL
}

const sampleTable = `# Hijrah variant sample
id=Hijrah-sample
type=islamic-sample
version=1.0
iso-start=2021-08-10

1443=30 29 30 29 30 29 30 29 30 29 30 29
1444=30 29 30 29 30 29 30 29 30 29 30 30
`

// --- validateURL ---

func TestValidateURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"allowed raw github", primaryURL, false},
		{"allowed fallback", fallbackURL, false},
		{"allowed github.com", "https://github.com/openjdk/jdk/raw/master/table.properties", false},
		{"blocked evil host", "https://evil.example.com/table.properties", true},
		{"blocked localhost", "https://localhost/table.properties", true},
		{"blocked internal IP", "https://192.168.1.1/table.properties", true},
		{"blocked similar domain", "https://raw.githubusercontent.com.evil.com/t.properties", true},
		{"blocked HTTP", "http://raw.githubusercontent.com/t.properties", true},
		{"blocked FTP", "ftp://raw.githubusercontent.com/t.properties", true},
		{"blocked empty URL", "", true},
		{"invalid URL parse", "://invalid", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateURL(%q) error = %v, wantErr = %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

// --- parseVariant ---

func TestParseVariant_Valid(t *testing.T) {
	t.Parallel()

	v, err := parseVariant(strings.NewReader(sampleTable))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.id != "Hijrah-sample" || v.typ != "islamic-sample" || v.version != "1.0" {
		t.Errorf("header = %q %q %q", v.id, v.typ, v.version)
	}
	if v.isoStart != "2021-08-10" {
		t.Errorf("isoStart = %q, want 2021-08-10", v.isoStart)
	}
	if v.startYear != 1443 || len(v.months) != 2 {
		t.Fatalf("years = %d+%d, want 1443+2", v.startYear, len(v.months))
	}
	if v.months[1][11] != 30 {
		t.Errorf("1444 month 12 = %d, want 30", v.months[1][11])
	}
}

func TestParseVariant_ColonSeparatorAndUnorderedYears(t *testing.T) {
	t.Parallel()

	table := "id: X\niso-start: 2021-08-10\n1444: 30 29 30 29 30 29 30 29 30 29 30 29\n1443: 29 30 29 30 29 30 29 30 29 30 29 30\n"
	v, err := parseVariant(strings.NewReader(table))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.startYear != 1443 || v.months[0][0] != 29 {
		t.Errorf("rows not sorted by year: start=%d first=%d", v.startYear, v.months[0][0])
	}
}

func TestParseVariant_Errors(t *testing.T) {
	t.Parallel()

	row := "30 29 30 29 30 29 30 29 30 29 30 29"
	tests := []struct {
		name    string
		table   string
		wantErr string
	}{
		{"missing id", "iso-start=2021-08-10\n1443=" + row, "missing id"},
		{"missing iso-start", "id=X\n1443=" + row, "missing iso-start"},
		{"invalid iso-start", "id=X\niso-start=2021/08/10\n1443=" + row, "invalid iso-start"},
		{"no rows", "id=X\niso-start=2021-08-10\n", "no year rows"},
		{"short row", "id=X\niso-start=2021-08-10\n1443=30 29", "expected 12 month lengths"},
		{"bad length", "id=X\niso-start=2021-08-10\n1443=31 29 30 29 30 29 30 29 30 29 30 29", "must be 29 or 30"},
		{"unknown key", "id=X\niso-start=2021-08-10\nfoo=bar", "unknown key"},
		{"no separator", "id=X\njunk", "expected key=value"},
		{"duplicate year", "id=X\niso-start=2021-08-10\n1443=" + row + "\n1443=" + row, "duplicate year"},
		{"gap", "id=X\niso-start=2021-08-10\n1443=" + row + "\n1445=" + row, "not contiguous"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := parseVariant(strings.NewReader(tt.table))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

// --- decode ---

func TestDecode_ISO8859_1(t *testing.T) {
	t.Parallel()

	// 0xE9 is é in ISO-8859-1 and invalid as UTF-8 on its own.
	got, err := decode(strings.NewReader("# caf\xe9\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "# café\n" {
		t.Errorf("decode = %q, want %q", got, "# café\n")
	}
}

// --- readInput ---

func TestReadInput_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "table.properties")
	if err := os.WriteFile(path, []byte(sampleTable), 0o600); err != nil {
		t.Fatal(err)
	}
	data, err := readInput(http.DefaultClient, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != sampleTable {
		t.Errorf("readInput returned %q", data)
	}
}

func TestReadInput_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := readInput(http.DefaultClient, filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadInput_DisallowedURL(t *testing.T) {
	t.Parallel()

	if _, err := readInput(http.DefaultClient, "https://evil.example.com/t.properties"); err == nil {
		t.Fatal("expected error for disallowed host")
	}
}

func TestReadInput_DefaultURLs(t *testing.T) {
	t.Parallel()

	client := &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if got := req.Header.Get("User-Agent"); got != userAgent {
				t.Errorf("User-Agent = %q, want %q", got, userAgent)
			}
			switch req.URL.String() {
			case primaryURL:
				return newHTTPResponse(http.StatusNotFound, ""), nil
			case fallbackURL:
				return newHTTPResponse(http.StatusOK, sampleTable), nil
			}
			return nil, fmt.Errorf("unexpected request URL: %s", req.URL)
		}),
	}

	data, err := readInput(client, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != sampleTable {
		t.Errorf("readInput returned %q", data)
	}
}

// --- fetchWithRetry ---

func TestFetchWithRetry_Success(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != userAgent {
			t.Errorf("User-Agent = %q, want %q", got, userAgent)
		}
		w.Write([]byte("data"))
	}))
	defer ts.Close()

	data, err := fetchWithRetry(ts.Client(), ts.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "data" {
		t.Errorf("response body = %q, want %q", data, "data")
	}
}

func TestFetchWithRetry_404_NoRetry(t *testing.T) {
	t.Parallel()

	attempts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	if _, err := fetchWithRetry(ts.Client(), ts.URL); err == nil {
		t.Fatal("expected error for 404")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestFetchWithRetry_ServerError_RetriesThenSucceeds(t *testing.T) {
	t.Parallel()

	attempts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("data"))
	}))
	defer ts.Close()

	data, err := fetchWithRetry(ts.Client(), ts.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "data" {
		t.Errorf("response body = %q, want %q", data, "data")
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestFetchWithRetry_429_RetriesThenSucceeds(t *testing.T) {
	t.Parallel()

	attempts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte("data"))
	}))
	defer ts.Close()

	if _, err := fetchWithRetry(ts.Client(), ts.URL); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFetchWithRetry_AllRetriesFail_503(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	if _, err := fetchWithRetry(ts.Client(), ts.URL); err == nil {
		t.Fatal("expected error after all retries fail")
	}
}

func TestFetchWithRetry_NetworkError(t *testing.T) {
	t.Parallel()

	if _, err := fetchWithRetry(&http.Client{Timeout: 1 * time.Second}, closedServerURL()); err == nil {
		t.Fatal("expected error for network failure")
	}
}

// --- fetchWithFallbacks ---

func TestFetchWithFallbacks_FirstFails_SecondSucceeds(t *testing.T) {
	t.Parallel()

	fail := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer fail.Close()

	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("table"))
	}))
	defer ok.Close()

	data, err := fetchWithFallbacks(&http.Client{Timeout: 5 * time.Second}, fail.URL, ok.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "table" {
		t.Errorf("response body = %q, want %q", data, "table")
	}
}

func TestFetchWithFallbacks_AllFail(t *testing.T) {
	t.Parallel()

	fail := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer fail.Close()

	_, err := fetchWithFallbacks(&http.Client{Timeout: 5 * time.Second}, fail.URL, fail.URL)
	if err == nil {
		t.Fatal("expected error when all URLs fail")
	}
	if !strings.Contains(err.Error(), "all URLs failed") {
		t.Errorf("error should mention all URLs failed, got: %v", err)
	}
}

// --- generate ---

func TestGenerate(t *testing.T) {
	t.Parallel()

	v, err := parseVariant(strings.NewReader(sampleTable))
	if err != nil {
		t.Fatal(err)
	}
	src, err := generate(v, "umalqura", "Sample")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	// Compare with whitespace collapsed; gofmt decides the alignment.
	code := strings.Join(strings.Fields(string(src)), " ")
	for _, want := range []string{
		"Code generated by cmd/gentable; DO NOT EDIT.",
		"package umalqura",
		`hijrah "github.com/rabitt1ove/hijrah-datetime"`,
		"var Sample = hijrah.MustTableChronology(hijrah.TableConfig{",
		`ISOStart: "2021-08-10"`,
		"StartYear: 1443",
		"{30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 30, 30}, // 1444",
		"(islamic-sample, version 1.0)",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("generated code missing %q:\n%s", want, src)
		}
	}
}

func TestGenerate_InsidePackageHijrah(t *testing.T) {
	t.Parallel()

	v, err := parseVariant(strings.NewReader(sampleTable))
	if err != nil {
		t.Fatal(err)
	}
	src, err := generate(v, "hijrah", "sample")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	code := string(src)
	if strings.Contains(code, "import") || strings.Contains(code, "hijrah.") {
		t.Errorf("package hijrah output should not import itself:\n%s", code)
	}
	if !strings.Contains(code, "var sample = MustTableChronology(TableConfig{") {
		t.Errorf("unexpected declaration:\n%s", code)
	}
}
