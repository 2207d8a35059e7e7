package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/template"
)

type denom struct {
	Name     string
	Type     string
	Denom    string
	Decimals uint8
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "denom", "denom_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of denom objects
	denoms, err := convertDataToDenoms(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the denom objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "denom", "denom_data.tmpl"), denoms)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("denom_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

// convertDataToDenoms sorts records by type name and rejects duplicate
// type names or denominations.
func convertDataToDenoms(data [][]string) ([]denom, error) {
	// Sort the CSV records by type name
	sort.Slice(data, func(i, j int) bool {
		return data[i][1] < data[j][1]
	})

	// Convert the CSV records to denom objects
	types := make(map[string]bool, len(data))
	seen := make(map[string]bool, len(data))
	denoms := make([]denom, 0, len(data))
	for _, rec := range data {
		dec, err := strconv.ParseUint(rec[3], 10, 8)
		if err != nil {
			return nil, fmt.Errorf("decimals of %q: %w", rec[2], err)
		}
		if types[rec[1]] {
			return nil, fmt.Errorf("duplicate type %q", rec[1])
		}
		if seen[rec[2]] {
			return nil, fmt.Errorf("duplicate denomination %q", rec[2])
		}
		types[rec[1]] = true
		seen[rec[2]] = true
		denoms = append(denoms, denom{
			Name:     rec[0],
			Type:     rec[1],
			Denom:    rec[2],
			Decimals: uint8(dec),
		})
	}
	return denoms, nil
}

func generateGoCode(filename string, denoms []denom) ([]byte, error) {
	// Create a new template object from the template file
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, denoms)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
