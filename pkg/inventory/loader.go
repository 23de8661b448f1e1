package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column headers expected in the inventory file. Category is optional.
const (
	headerProductName = "Product Name"
	headerPrice       = "Price"
	headerCategory    = "Category"
)

// LoadCSVFile reads the inventory file at path into raw rows.
func LoadCSVFile(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open inventory file: %w", err)
	}
	defer file.Close()

	return ReadRows(file)
}

// ReadRows parses tabular inventory rows from r. The first line must be a
// header containing at least "Product Name" and "Price".
func ReadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read inventory header: %w", err)
	}

	nameIdx, priceIdx, categoryIdx := -1, -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case headerProductName:
			nameIdx = i
		case headerPrice:
			priceIdx = i
		case headerCategory:
			categoryIdx = i
		}
	}
	if nameIdx == -1 || priceIdx == -1 {
		return nil, fmt.Errorf("inventory header missing %q or %q column", headerProductName, headerPrice)
	}

	var rows []Row
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read inventory row: %w", err)
		}
		row := Row{
			Name:  fields[nameIdx],
			Price: fields[priceIdx],
		}
		if categoryIdx >= 0 && categoryIdx < len(fields) {
			row.Category = fields[categoryIdx]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
