// Package csvfile loads the catalog from an 8-column CSV export:
//
//	item_id,item_name,item_description,current_price,store,category_tags,image_url,price_date
//
// The first row is a header. category_tags is a quoted, comma-separated list.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ghuser/budgeteer/pkg/logger"
	catalogdomain "github.com/ghuser/budgeteer/services/catalog/domain"
	"github.com/ghuser/budgeteer/services/catalog/domain/models"
)

// SourceName identifies CSV data in snapshots and logs.
const SourceName = "csv"

const fieldCount = 8

// Source reads price records from a CSV file on every Items call.
type Source struct {
	path string
	log  logger.Logger
}

// NewSource returns a Source reading path.
func NewSource(path string, log logger.Logger) *Source {
	return &Source{path: path, log: log}
}

// Items implements repositories.CatalogSource.
func (s *Source) Items(ctx context.Context) ([]models.PriceRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", catalogdomain.ErrCatalogUnavailable, s.path, err)
	}
	defer f.Close()

	records, err := Parse(ctx, f, s.log)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", catalogdomain.ErrCatalogUnavailable, s.path, err)
	}
	s.log.InfoContext(ctx, "catalog loaded from csv", "path", s.path, "records", len(records))
	return records, nil
}

// Parse decodes CSV rows from r. Rows with the wrong field count or
// unparseable values are skipped with a warning; only I/O errors fail.
func Parse(ctx context.Context, r io.Reader, log logger.Logger) ([]models.PriceRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	out := make([]models.PriceRecord, 0)
	for line := 1; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				log.WarnContext(ctx, "skipping malformed csv line", "line", line, "error", err)
				continue
			}
			return nil, err
		}
		if line == 1 {
			continue // header
		}
		if len(row) != fieldCount {
			log.WarnContext(ctx, "skipping csv line with wrong field count",
				"line", line, "expected", fieldCount, "got", len(row))
			continue
		}
		rec, err := parseRow(row)
		if err != nil {
			log.WarnContext(ctx, "skipping invalid csv line", "line", line, "error", err)
			continue
		}
		out = append(out, rec)
	}
}

func parseRow(row []string) (models.PriceRecord, error) {
	id, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return models.PriceRecord{}, fmt.Errorf("item_id: %w", err)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(row[3]))
	if err != nil {
		return models.PriceRecord{}, fmt.Errorf("current_price: %w", err)
	}
	date, err := models.ParseDate(strings.TrimSpace(row[7]))
	if err != nil {
		return models.PriceRecord{}, fmt.Errorf("price_date: %w", err)
	}

	rec := models.PriceRecord{
		ItemID:          id,
		ItemName:        strings.TrimSpace(row[1]),
		ItemDescription: strings.TrimSpace(row[2]),
		CurrentPrice:    price,
		Store:           strings.TrimSpace(row[4]),
		CategoryTags:    splitTags(row[5]),
		ImageURL:        strings.TrimSpace(row[6]),
		PriceDate:       date,
	}
	return rec, rec.Validate()
}

func splitTags(s string) []string {
	tags := make([]string, 0)
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
