package quizbank

import (
	"fmt"
	"io"
	"strings"

	"naplan-prep/internal/domain"

	"github.com/xuri/excelize/v2"
)

// BundleSheet is the sheet written by WriteBundles.
const BundleSheet = "Bundles"

var bundleHeader = []interface{}{
	"bundle_id", "bundle_name", "year_level", "tier", "subjects",
	"price_cents", "quiz_count", "quiz_ids_own", "quiz_ids_with_lower",
}

// WriteBundles writes one row per bundle to an XLSX workbook on w.
func WriteBundles(w io.Writer, bundles []*domain.Bundle) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", BundleSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(BundleSheet, "A1", &bundleHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, b := range bundles {
		row := []interface{}{
			b.BundleID,
			b.BundleName,
			b.YearLevel,
			string(b.Tier),
			strings.Join(b.Subjects, ", "),
			b.PriceCents,
			b.QuizCount,
			strings.Join(b.QuizIDsOwn, ", "),
			strings.Join(b.QuizIDsWithLower, ", "),
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(BundleSheet, axis, &row); err != nil {
			return fmt.Errorf("failed to write bundle %s: %w", b.BundleID, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
