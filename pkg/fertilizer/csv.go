package fertilizer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Text columns of a candidate CSV; everything else must parse as a number.
var textColumns = map[string]bool{
	"Name":     true,
	"Formula":  true,
	"Source":   true,
	"ConcType": true,
}

// ParseCSV reads candidate records from delimited text. The first row is a
// header naming table columns (Name, Formula, Source, Purity, the element
// keys, isLiquid, Density, Cost, ConcType); unknown columns are rejected so
// a typo cannot silently drop a nutrient. Name is required per row.
func ParseCSV(r io.Reader) ([]Fertilizer, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		if !knownColumn(header[i]) {
			return nil, fmt.Errorf("unknown csv column %q", header[i])
		}
	}

	var candidates []Fertilizer
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		fert, err := fromRow(header, row)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		candidates = append(candidates, fert)
	}

	return candidates, nil
}

func fromRow(header, row []string) (Fertilizer, error) {
	fert := Fertilizer{Nutrients: make(map[string]float64)}

	for i, column := range header {
		if i >= len(row) {
			break
		}
		cell := strings.TrimSpace(row[i])

		switch column {
		case "Name":
			fert.Name = cell
		case "Formula":
			fert.Formula = cell
		case "Source":
			fert.Source = cell
		case "ConcType":
			fert.ConcType = cell
		case "Purity":
			num, err := parseNumber(column, cell)
			if err != nil {
				return Fertilizer{}, err
			}
			fert.Purity = num
		case "isLiquid":
			liquid, err := parseBool(cell)
			if err != nil {
				return Fertilizer{}, err
			}
			fert.IsLiquid = liquid
		case "Density":
			num, err := parseNumber(column, cell)
			if err != nil {
				return Fertilizer{}, err
			}
			fert.Density = num
		case "Cost":
			num, err := parseNumber(column, cell)
			if err != nil {
				return Fertilizer{}, err
			}
			fert.Cost = num
		default:
			// Remaining known columns are element keys.
			num, err := parseNumber(column, cell)
			if err != nil {
				return Fertilizer{}, err
			}
			fert.Nutrients[column] = num
		}
	}

	if fert.Name == "" {
		return Fertilizer{}, fmt.Errorf("missing Name")
	}
	return fert, nil
}

func knownColumn(name string) bool {
	switch name {
	case "Name", "Formula", "Source", "Purity", "isLiquid", "Density", "Cost", "ConcType":
		return true
	}
	for _, key := range ElementKeys {
		if name == key {
			return true
		}
	}
	return false
}

func parseNumber(column, cell string) (float64, error) {
	if cell == "" {
		return 0, nil
	}
	num, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %q is not a number", column, cell)
	}
	return num, nil
}

func parseBool(cell string) (bool, error) {
	switch strings.ToLower(cell) {
	case "", "0", "false", "f":
		return false, nil
	case "1", "true", "t":
		return true, nil
	}
	return false, fmt.Errorf("column \"isLiquid\": %q is not a flag", cell)
}
