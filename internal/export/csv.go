package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"familygarden/internal/fileutil"
	"familygarden/internal/gedcom"
)

const childSeparator = ";"

// Bundle file names.
const (
	IndividualsFile = "individuals.csv"
	FamiliesFile    = "families.csv"
	IssuesFile      = "issues.csv"
)

// WriteCSVBundle writes individuals.csv, families.csv and issues.csv to outputDir.
func WriteCSVBundle(result *gedcom.ParseResult, outputDir string) error {
	if result == nil {
		return fmt.Errorf("export: result is nil")
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := writeIndividuals(filepath.Join(outputDir, IndividualsFile), result.Individuals); err != nil {
		return err
	}
	if err := writeFamilies(filepath.Join(outputDir, FamiliesFile), result.Families); err != nil {
		return err
	}
	return writeIssues(filepath.Join(outputDir, IssuesFile), result.Errors, result.Warnings)
}

func writeIndividuals(path string, rows []gedcom.ParsedIndividual) error {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{
			row.ID,
			row.FirstName,
			row.LastName,
			row.MaidenName,
			string(row.Gender),
			row.BirthDate,
			row.BirthPlace,
			row.DeathDate,
			row.DeathPlace,
			row.Occupation,
			row.Notes,
		})
	}
	return writeCSV(path, []string{"id", "first_name", "last_name", "maiden_name", "gender", "birth_date", "birth_place", "death_date", "death_place", "occupation", "notes"}, data)
}

func writeFamilies(path string, rows []gedcom.ParsedFamily) error {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{
			row.ID,
			row.HusbandID,
			row.WifeID,
			strings.Join(row.ChildrenIDs, childSeparator),
			strconv.Itoa(len(row.ChildrenIDs)),
			row.MarriageDate,
			row.MarriagePlace,
			row.DivorceDate,
		})
	}
	return writeCSV(path, []string{"id", "husband_id", "wife_id", "children_ids", "children_count", "marriage_date", "marriage_place", "divorce_date"}, data)
}

// writeIssues lists errors before warnings, each in parse order.
func writeIssues(path string, errs, warnings []string) error {
	data := make([][]string, 0, len(errs)+len(warnings))
	for _, msg := range errs {
		data = append(data, []string{"error", msg})
	}
	for _, msg := range warnings {
		data = append(data, []string{"warning", msg})
	}
	return writeCSV(path, []string{"severity", "message"}, data)
}

func writeCSV(path string, header []string, rows [][]string) error {
	return fileutil.WriteFileAtomic(path, 0o644, func(w io.Writer) error {
		writer := csv.NewWriter(w)
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("write header %s: %w", path, err)
		}
		if err := writer.WriteAll(rows); err != nil {
			return fmt.Errorf("write rows %s: %w", path, err)
		}
		return nil
	})
}
