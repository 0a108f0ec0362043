package output

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/sheet"
)

// Number format strings per display tag. Percent cells store the raw
// percentage figure (2.5 means 2.5%), so the format appends a literal sign
// instead of using Excel's scaling percent format.
var excelNumFmt = map[sheet.FormatTag]string{
	sheet.FormatCurrency:  "$#,##0.00",
	sheet.FormatCurrency4: "$#,##0.0000",
	sheet.FormatPercent:   `0.00"%"`,
	sheet.FormatInteger:   "#,##0",
	sheet.FormatNumber:    "#,##0.00",
}

// ExcelFormat writes the reports as a formula-linked workbook at path. Each
// report becomes one worksheet; literal cells hold editable values and
// formula cells hold live spreadsheet formulas referencing them, so the
// workbook recalculates when an assumption is changed.
func ExcelFormat(path string, reports []*sheet.Report) error {
	f, err := BuildWorkbook(reports)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook to %s, %s", path, err)
	}
	return nil
}

// BuildWorkbook renders the reports into an in-memory workbook.
func BuildWorkbook(reports []*sheet.Report) (*excelize.File, error) {
	f := excelize.NewFile()

	styles, err := newWorkbookStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	for i, report := range reports {
		name := worksheetName(report.Name)
		if i == 0 {
			f.SetSheetName("Sheet1", name)
		} else {
			if _, err := f.NewSheet(name); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to create worksheet %s, %s", name, err)
			}
		}
		if err := renderWorksheet(f, name, report, styles); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

type workbookStyles struct {
	title    int
	section  int
	input    int
	inputFmt map[sheet.FormatTag]int
	numFmt   map[sheet.FormatTag]int
}

func newWorkbookStyles(f *excelize.File) (workbookStyles, error) {
	var s workbookStyles
	var err error

	s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return s, fmt.Errorf("failed to create title style, %s", err)
	}
	s.section, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return s, fmt.Errorf("failed to create section style, %s", err)
	}

	// Editable assumption cells are highlighted yellow; every tag gets one
	// plain style for formula cells and one highlighted style for inputs.
	inputFill := excelize.Fill{Type: "pattern", Color: []string{"#FFF2CC"}, Pattern: 1}
	s.numFmt = make(map[sheet.FormatTag]int)
	s.inputFmt = make(map[sheet.FormatTag]int)
	for tag, numFmt := range excelNumFmt {
		fmtCopy := numFmt
		id, err := f.NewStyle(&excelize.Style{CustomNumFmt: &fmtCopy})
		if err != nil {
			return s, fmt.Errorf("failed to create number format style, %s", err)
		}
		s.numFmt[tag] = id
		id, err = f.NewStyle(&excelize.Style{Fill: inputFill, CustomNumFmt: &fmtCopy})
		if err != nil {
			return s, fmt.Errorf("failed to create input style, %s", err)
		}
		s.inputFmt[tag] = id
	}
	s.input, err = f.NewStyle(&excelize.Style{Fill: inputFill})
	if err != nil {
		return s, fmt.Errorf("failed to create input style, %s", err)
	}

	return s, nil
}

func renderWorksheet(f *excelize.File, name string, report *sheet.Report, styles workbookStyles) error {
	f.SetCellValue(name, "A1", report.Name)
	f.SetCellStyle(name, "A1", "B1", styles.title)
	f.SetColWidth(name, "A", "A", 42)
	f.SetColWidth(name, "B", "B", 18)

	rows := report.Flatten()

	// First pass assigns a worksheet row to every cell address so formulas
	// can reference assumptions defined anywhere on the sheet.
	location := make(map[sheet.Address]string, len(rows))
	rowNum := 2
	section := ""
	for _, row := range rows {
		if row.Section != section {
			section = row.Section
			rowNum += 2
		}
		location[row.Address] = fmt.Sprintf("B%d", rowNum)
		rowNum++
	}

	ref := func(addr sheet.Address) string { return location[addr] }

	rowNum = 2
	section = ""
	for _, row := range rows {
		if row.Section != section {
			section = row.Section
			rowNum++
			f.SetCellValue(name, fmt.Sprintf("A%d", rowNum), section)
			f.SetCellStyle(name, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("B%d", rowNum), styles.section)
			rowNum++
		}
		labelCell := fmt.Sprintf("A%d", rowNum)
		valueCell := location[row.Address]
		f.SetCellValue(name, labelCell, row.Label)

		cell, err := report.Get(row.Address)
		if err != nil {
			return err
		}
		switch cell.Kind {
		case sheet.KindLiteral:
			if row.Value.IsText {
				f.SetCellValue(name, valueCell, row.Value.Text)
			} else {
				f.SetCellValue(name, valueCell, row.Value.Number)
				if id, ok := styles.inputFmt[row.Format]; ok {
					f.SetCellStyle(name, valueCell, valueCell, id)
				} else {
					f.SetCellStyle(name, valueCell, valueCell, styles.input)
				}
			}
		case sheet.KindFormula:
			formula := sheet.EncodeFormula(cell.Expr, ref)
			if err := f.SetCellFormula(name, valueCell, formula); err != nil {
				return fmt.Errorf("failed to set formula for %s, %s", row.Address, err)
			}
			if id, ok := styles.numFmt[row.Format]; ok {
				f.SetCellStyle(name, valueCell, valueCell, id)
			}
		}
		rowNum++
	}

	return nil
}

// worksheetName sanitizes a report name into a legal worksheet name, which
// disallows several characters and caps length at 31.
func worksheetName(name string) string {
	replacer := strings.NewReplacer(":", "-", "\\", "-", "/", "-", "?", "", "*", "", "[", "(", "]", ")")
	name = replacer.Replace(name)
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
