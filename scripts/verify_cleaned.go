package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Checks that a cleaned workbook has a "text" column and no row with a blank text cell.
// Usage: go run scripts/verify_cleaned.go dataset/kertagosa_cleaned.xlsx
func main() {
	filename := "dataset/kertagosa_cleaned.xlsx"
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	f, err := excelize.OpenFile(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 {
		fmt.Printf("❌ FAILED: expected 1 sheet, found %d\n", len(sheets))
		os.Exit(1)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("=== BLANK TEXT CHECK: %s ===\n", filename)
	fmt.Printf("Checking sheet: %s\n", sheets[0])
	fmt.Printf("Total rows: %d\n\n", len(rows))

	if len(rows) == 0 {
		fmt.Println("❌ FAILED: header row missing")
		os.Exit(1)
	}

	textCol := -1
	for i, name := range rows[0] {
		if name == "text" {
			textCol = i
			break
		}
	}
	if textCol < 0 {
		fmt.Println("❌ FAILED: no 'text' column in header")
		os.Exit(1)
	}

	blankCount := 0
	for i, row := range rows {
		if i == 0 {
			continue // Skip header
		}

		value := ""
		if len(row) > textCol {
			value = row[textCol]
		}
		if strings.TrimSpace(value) == "" {
			fmt.Printf("❌ BLANK TEXT at row %d\n", i+1)
			blankCount++
		}
	}

	fmt.Printf("\nChecked %d data rows\n", len(rows)-1)

	if blankCount > 0 {
		fmt.Printf("❌ FAILED: Found %d blank text cells!\n", blankCount)
		os.Exit(1)
	}
	fmt.Printf("✅ PASSED: No blank text cells found!\n")
}
