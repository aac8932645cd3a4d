package bulkimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
)

// Row is one parsed CSV line. Malformed price and stock values default to
// zero rather than failing the row.
type Row struct {
	Handle     string
	Title      string
	Vendor     string
	CategoryID uuid.UUID
	SKU        string
	Price      decimal.Decimal
	Stock      int
	Size       string
	Color      string
	ImageURL   string
}

var requiredColumns = []string{"handle", "title", "category_id", "sku"}

// ParseCSV reads the whole file into rows before any database work. Columns
// are matched by header name, so column order does not matter.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "CSV file is empty or unreadable")
	}

	index := map[string]int{}
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("CSV is missing required column %q", col))
		}
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []Row
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err,
				fmt.Sprintf("malformed CSV at line %d", line))
		}

		row := Row{
			Handle:   field(record, "handle"),
			Title:    field(record, "title"),
			Vendor:   field(record, "vendor"),
			SKU:      field(record, "sku"),
			Size:     field(record, "size"),
			Color:    field(record, "color"),
			ImageURL: field(record, "image_url"),
		}
		if row.Handle == "" || row.SKU == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("row %d is missing handle or sku", line))
		}

		categoryID, err := uuid.Parse(field(record, "category_id"))
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("row %d has an invalid category_id", line))
		}
		row.CategoryID = categoryID

		row.Price = parsePrice(field(record, "price"))
		row.Stock = parseStock(field(record, "stock"))

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "CSV contains no data rows")
	}
	return rows, nil
}

func parsePrice(raw string) decimal.Decimal {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return price
}

func parseStock(raw string) int {
	stock, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return stock
}
