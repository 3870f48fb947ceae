package render

import (
	"encoding/csv"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/pagescrape/core"
)

func TestToTable_RejectsEmptyRowSet(t *testing.T) {
	data, err := ToTable(nil)
	if !errors.Is(err, ErrNoRows) {
		t.Fatalf("err = %v, want ErrNoRows", err)
	}
	if data != nil {
		t.Errorf("expected no output bytes, got %q", data)
	}
}

func TestToTable_HeaderFromFirstRow(t *testing.T) {
	rows := []core.Row{
		core.LinkRecord{Text: "One", URL: "https://example.com/1"}.Row(),
		core.LinkRecord{Text: "Two, with comma", URL: "https://example.com/2"}.Row(),
	}
	data, err := ToTable(rows)
	if err != nil {
		t.Fatalf("ToTable: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	want := [][]string{
		{"text", "url"},
		{"One", "https://example.com/1"},
		{"Two, with comma", "https://example.com/2"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("records = %v, want %v", records, want)
	}
}

func TestToTable_MixedKeySets(t *testing.T) {
	// The header is fixed by the first row: missing keys become empty
	// cells, keys outside the header are dropped.
	rows := []core.Row{
		{{Key: "text", Value: "One"}, {Key: "url", Value: "https://example.com/1"}},
		{{Key: "url", Value: "https://example.com/2"}},
		{{Key: "text", Value: "Three"}, {Key: "url", Value: "https://example.com/3"}, {Key: "extra", Value: "dropped"}},
	}
	data, err := ToTable(rows)
	if err != nil {
		t.Fatalf("ToTable: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	want := [][]string{
		{"text", "url"},
		{"One", "https://example.com/1"},
		{"", "https://example.com/2"},
		{"Three", "https://example.com/3"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("records = %v, want %v", records, want)
	}
}

func TestCSVRenderer(t *testing.T) {
	res := &core.ScrapeResult{
		URL: "https://example.com",
		Links: []core.LinkRecord{
			{Text: "Home", URL: "https://example.com/"},
		},
	}
	data, err := NewCSVRenderer().Render(res)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(string(data), "text,url\n") {
		t.Errorf("missing header row:\n%s", data)
	}
}

func TestCSVRenderer_NoLinks(t *testing.T) {
	_, err := NewCSVRenderer().Render(&core.ScrapeResult{URL: "https://example.com"})
	if !errors.Is(err, ErrNoRows) {
		t.Errorf("err = %v, want ErrNoRows", err)
	}
}
