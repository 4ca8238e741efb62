package importer

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/pfrederiksen/eventbook/internal/event"
)

const (
	UserAgent = "eventbook-importer/1.0"
	Timeout   = 30 * time.Second
)

// RowError describes a table row that could not be imported
type RowError struct {
	Row int // 1-based position among data rows
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Result holds the events read from a document and the rows that were skipped
type Result struct {
	Events  []*event.Event
	Skipped []*RowError
}

// Importer parses event tables from files, URLs or readers
type Importer struct {
	client *http.Client
	newID  func() uuid.UUID
}

// New creates an Importer
func New() *Importer {
	return &Importer{
		client: &http.Client{
			Timeout: Timeout,
		},
		newID: uuid.New,
	}
}

// Import reads source as a URL when it starts with http:// or https://,
// and as a local file otherwise.
func (im *Importer) Import(source string) (*Result, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return im.FromURL(source)
	}
	return im.FromFile(source)
}

// FromFile parses the HTML file at path
func (im *Importer) FromFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return im.FromReader(f)
}

// FromURL fetches url and parses the response body
func (im *Importer) FromURL(url string) (*Result, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := im.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return im.FromReader(resp.Body)
}

// FromReader parses an HTML document
func (im *Importer) FromReader(r io.Reader) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	result := &Result{Events: make([]*event.Event, 0)}
	row := 0

	doc.Find("table tr").Each(func(_ int, tr *goquery.Selection) {
		// Rows of a table nested in a cell are already part of that cell's text
		if tr.ParentsFiltered("table").Length() > 1 {
			return
		}
		cells := tr.ChildrenFiltered("td")
		if cells.Length() == 0 {
			return
		}
		row++

		texts := cells.Map(func(_ int, td *goquery.Selection) string {
			return strings.TrimSpace(td.Text())
		})

		evt, err := im.parseRow(texts)
		if err != nil {
			result.Skipped = append(result.Skipped, &RowError{Row: row, Err: err})
			return
		}

		for _, existing := range result.Events {
			if existing.SameEvent(evt) {
				return
			}
		}
		result.Events = append(result.Events, evt)
	})

	return result, nil
}

func (im *Importer) parseRow(cells []string) (*event.Event, error) {
	if len(cells) < 3 {
		return nil, fmt.Errorf("expected at least 3 cells (name, start, end), got %d", len(cells))
	}

	start, err := event.ParseDateTime(cells[1])
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := event.ParseDateTime(cells[2])
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	var location, description string
	if len(cells) > 3 {
		location = cells[3]
	}
	if len(cells) > 4 {
		description = cells[4]
	}

	return event.NewEvent(im.newID(), cells[0], start, end, location, description)
}
