package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wishwaD7/digital-books-store/internal/domain"
)

// CatalogWriter persists an imported batch of products.
type CatalogWriter interface {
	Write(products []domain.Product) error
}

// CSVImporter reads a book-catalog CSV export and writes the products out as
// one batch. Rows missing an id get a generated one.
type CSVImporter struct {
	reader *csv.Reader
	writer CatalogWriter
}

func NewCSVImporter(r io.Reader, w CatalogWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{reader: csvr, writer: w}
}

// Run parses all rows and writes the resulting products. It returns the
// number of imported products.
func (i *CSVImporter) Run() (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var products []domain.Product
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read row: %w", err)
		}
		line++

		p, err := parseRow(record, index)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", line, err)
		}
		products = append(products, p)
	}

	if err := i.writer.Write(products); err != nil {
		return 0, fmt.Errorf("write catalog: %w", err)
	}
	return len(products), nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (domain.Product, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	p := domain.Product{
		ID:          field("id"),
		Title:       field("title"),
		Author:      field("author"),
		Genre:       field("genre"),
		Description: field("description"),
		CoverImage:  field("coverimage"),
		Language:    field("language"),
		ReleaseDate: field("releasedate"),
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Title == "" {
		return domain.Product{}, errors.New("title required")
	}

	price, err := decimal.NewFromString(field("price"))
	if err != nil {
		return domain.Product{}, fmt.Errorf("parse price: %w", err)
	}
	p.Price = price

	if v := field("discount"); v != "" {
		discount, err := decimal.NewFromString(v)
		if err != nil {
			return domain.Product{}, fmt.Errorf("parse discount: %w", err)
		}
		p.Discount = discount
	}

	p.Format = domain.Format(strings.ToUpper(field("format")))
	if !p.Format.Valid() {
		return domain.Product{}, fmt.Errorf("unknown format %q", field("format"))
	}

	if v := field("rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.Product{}, fmt.Errorf("parse rating: %w", err)
		}
		p.Rating = rating
	}

	if v := field("pages"); v != "" {
		pages, err := strconv.Atoi(v)
		if err != nil {
			return domain.Product{}, fmt.Errorf("parse pages: %w", err)
		}
		p.Pages = pages
	}

	return p, nil
}
