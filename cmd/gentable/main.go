// Command gentable reads a Hijrah calendar variant table and generates a Go
// source file declaring it as a hijrah.TableChronology.
//
// The table uses the layout of the variant property files shipped with the
// JDK: an id, a calendar type, a version, the ISO date of the first day of the
// table and one line of twelve month lengths per Hijrah year.
//
//	id=Hijrah-umalqura
//	type=islamic-umalqura
//	version=1.8.0_1
//	iso-start=1882-11-12
//	1300=30 29 30 29 30 29 30 29 30 29 30 29
//
// The input is a local file or an HTTPS URL on an allowed host. Without
// -input the Umm al-Qura table is downloaded from the OpenJDK repository,
// with a mirror as fallback.
//
// Usage:
//
//	go run main.go -output ../../umalqura/umalqura_data.go -package umalqura -var UmmAlQura
package main

import (
	"bufio"
	"bytes"
	"context"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const (
	primaryURL  = "https://raw.githubusercontent.com/openjdk/jdk/master/src/java.base/share/classes/java/time/chrono/hijrah-config-Hijrah-umalqura_islamic-umalqura.properties"
	fallbackURL = "https://raw.githubusercontent.com/openjdk/jdk21u/master/src/java.base/share/classes/java/time/chrono/hijrah-config-Hijrah-umalqura_islamic-umalqura.properties"

	hijrahImportPath = "github.com/rabitt1ove/hijrah-datetime"

	httpTimeout = 30 * time.Second
	maxRetries  = 3

	// Maximum response size to prevent memory exhaustion.
	maxTableSize = 1 * 1024 * 1024

	userAgent = "hijrah-gentable/1.0 (https://github.com/rabitt1ove/hijrah-datetime)"
)

// retryBaseDelay is the base delay between retry attempts (variable for testing).
var retryBaseDelay = 2 * time.Second

// allowedHosts is the set of hostnames tables may be downloaded from.
var allowedHosts = map[string]bool{
	"raw.githubusercontent.com": true,
	"github.com":                true,
}

// variant is a parsed Hijrah variant table.
type variant struct {
	id        string
	typ       string
	version   string
	isoStart  string
	startYear int
	months    [][12]int
}

func main() {
	input := flag.String("input", "", "variant table file or HTTPS URL (default: OpenJDK Umm al-Qura table)")
	output := flag.String("output", "umalqura_data.go", "output file path")
	pkg := flag.String("package", "umalqura", "package name of the generated file")
	varName := flag.String("var", "UmmAlQura", "name of the generated variable")
	minYears := flag.Int("min-years", 100, "minimum number of years the table must contain")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("gentable: ")

	client := &http.Client{Timeout: httpTimeout}

	data, err := readInput(client, *input)
	if err != nil {
		log.Fatalf("failed to read table: %v", err)
	}

	v, err := parseVariant(bytes.NewReader(data))
	if err != nil {
		log.Fatalf("failed to parse table: %v", err)
	}

	if len(v.months) < *minYears {
		log.Fatalf("validation failed: expected at least %d years, got %d", *minYears, len(v.months))
	}

	src, err := generate(v, *pkg, *varName)
	if err != nil {
		log.Fatalf("failed to generate source: %v", err)
	}

	if err := os.WriteFile(*output, src, 0644); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}

	log.Printf("wrote %s (%d-%d) to %s", v.id, v.startYear, v.startYear+len(v.months)-1, *output)
}

// readInput returns the decoded table from a local file or, for https
// inputs, from the network. An empty input downloads the default table.
func readInput(client *http.Client, input string) ([]byte, error) {
	switch {
	case input == "":
		return fetchWithFallbacks(client, primaryURL, fallbackURL)
	case strings.Contains(input, "://"):
		if err := validateURL(input); err != nil {
			return nil, err
		}
		return fetchWithFallbacks(client, input)
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decode(io.LimitReader(f, maxTableSize))
}

// decode converts the ISO-8859-1 property file encoding to UTF-8.
func decode(r io.Reader) ([]byte, error) {
	return io.ReadAll(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
}

// validateURL checks that a URL points to an allowed host (SSRF prevention).
func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if parsed.Scheme != "https" {
		return fmt.Errorf("URL %q: only HTTPS is allowed", rawURL)
	}
	if !allowedHosts[parsed.Hostname()] {
		return fmt.Errorf("URL %q: host %q is not in the allowed list", rawURL, parsed.Hostname())
	}
	return nil
}

// fetchWithFallbacks tries each URL in turn until one succeeds.
func fetchWithFallbacks(client *http.Client, urls ...string) ([]byte, error) {
	var lastErr error
	for _, u := range urls {
		data, err := fetchWithRetry(client, u)
		if err != nil {
			log.Printf("  %s failed: %v", u, err)
			lastErr = err
			continue
		}
		return data, nil
	}
	return nil, fmt.Errorf("all URLs failed, last error: %w", lastErr)
}

// fetchWithRetry fetches a URL with exponential backoff retries.
func fetchWithRetry(client *http.Client, url string) ([]byte, error) {
	var lastErr error
	for attempt := range maxRetries {
		if attempt > 0 {
			delay := retryBaseDelay * time.Duration(1<<(attempt-1))
			log.Printf("  retrying in %v (attempt %d/%d)", delay, attempt+1, maxRetries)
			time.Sleep(delay)
		}

		log.Printf("fetching %s", url)
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("GET %s: %w", url, err)
			log.Printf("  failed: %v", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
			log.Printf("  failed: status %d (retryable)", resp.StatusCode)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
		}

		data, err := decode(io.LimitReader(resp.Body, maxTableSize))
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("GET %s: reading body: %w", url, err)
		}
		return data, nil
	}
	return nil, lastErr
}

// parseVariant parses a variant property file and validates its contents.
func parseVariant(r io.Reader) (*variant, error) {
	v := &variant{}
	years := map[int][12]int{}
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}
		key, value, ok := cutProperty(line)
		if !ok {
			return nil, fmt.Errorf("line %d: expected key=value, got %q", lineNum, line)
		}
		switch key {
		case "id":
			v.id = value
		case "type":
			v.typ = value
		case "version":
			v.version = value
		case "iso-start":
			if _, err := time.Parse(time.DateOnly, value); err != nil {
				return nil, fmt.Errorf("line %d: invalid iso-start %q: %w", lineNum, value, err)
			}
			v.isoStart = value
		default:
			year, err := strconv.Atoi(key)
			if err != nil {
				return nil, fmt.Errorf("line %d: unknown key %q", lineNum, key)
			}
			row, err := parseMonths(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: year %d: %w", lineNum, year, err)
			}
			if _, dup := years[year]; dup {
				return nil, fmt.Errorf("line %d: duplicate year %d", lineNum, year)
			}
			years[year] = row
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}

	switch {
	case v.id == "":
		return nil, fmt.Errorf("missing id")
	case v.isoStart == "":
		return nil, fmt.Errorf("missing iso-start")
	case len(years) == 0:
		return nil, fmt.Errorf("no year rows")
	}

	keys := make([]int, 0, len(years))
	for y := range years {
		keys = append(keys, y)
	}
	sort.Ints(keys)
	v.startYear = keys[0]
	for i, y := range keys {
		if y != v.startYear+i {
			return nil, fmt.Errorf("years are not contiguous: missing %d", v.startYear+i)
		}
		v.months = append(v.months, years[y])
	}
	return v, nil
}

func cutProperty(line string) (key, value string, ok bool) {
	i := strings.IndexAny(line, "=:")
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), true
}

func parseMonths(value string) ([12]int, error) {
	var row [12]int
	fields := strings.Fields(value)
	if len(fields) != 12 {
		return row, fmt.Errorf("expected 12 month lengths, got %d", len(fields))
	}
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || (n != 29 && n != 30) {
			return row, fmt.Errorf("month %d: length %q must be 29 or 30", i+1, f)
		}
		row[i] = n
	}
	return row, nil
}

// generate produces a formatted Go source file declaring the variant.
func generate(v *variant, pkg, varName string) ([]byte, error) {
	qual := "hijrah."
	var b strings.Builder
	b.WriteString("// Code generated by cmd/gentable; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	if pkg == "hijrah" {
		qual = ""
	} else {
		fmt.Fprintf(&b, "import hijrah %q\n\n", hijrahImportPath)
	}
	fmt.Fprintf(&b, "// %s is the %s calendar variant", varName, v.id)
	if v.typ != "" {
		fmt.Fprintf(&b, " (%s", v.typ)
		if v.version != "" {
			fmt.Fprintf(&b, ", version %s", v.version)
		}
		b.WriteString(")")
	}
	b.WriteString(".\n")
	fmt.Fprintf(&b, "var %s = %sMustTableChronology(%sTableConfig{\n", varName, qual, qual)
	fmt.Fprintf(&b, "\tID: %q,\n\tType: %q,\n\tVersion: %q,\n", v.id, v.typ, v.version)
	fmt.Fprintf(&b, "\tISOStart: %q,\n\tStartYear: %d,\n", v.isoStart, v.startYear)
	b.WriteString("\tMonthLengths: [][12]int{\n")
	for i, row := range v.months {
		parts := make([]string, len(row))
		for j, n := range row {
			parts[j] = strconv.Itoa(n)
		}
		fmt.Fprintf(&b, "\t\t{%s}, // %d\n", strings.Join(parts, ", "), v.startYear+i)
	}
	b.WriteString("\t},\n})\n")

	return format.Source([]byte(b.String()))
}
