package ioreport

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gnames/cfazone/pkg/median"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
	"github.com/xuri/excelize/v2"
)

// sectionExport is the JSON form of a report section.
type sectionExport struct {
	Indicator string         `json:"indicator"`
	Label     string         `json:"label"`
	Unit      string         `json:"unit,omitempty"`
	Verdict   median.Verdict `json:"verdict"`
	Rows      []median.Row   `json:"rows"`
}

// Export saves median tables of all sections in the configured format
// and keeps paths of created files in the report.
func (r *Reporter) Export(rep *Report) error {
	format := r.cfg.Report.Export
	if format == "" || format == "none" {
		return nil
	}

	dir := r.cfg.ReportDir()
	if err := gnsys.MakeDir(dir); err != nil {
		return ExportError(dir, err)
	}

	var paths []string
	var err error
	switch format {
	case "csv":
		paths, err = exportDelimited(dir, rep.Sections, ',', "csv")
	case "tsv":
		paths, err = exportDelimited(dir, rep.Sections, '\t', "tsv")
	case "json":
		paths, err = exportJSON(dir, rep.Sections)
	case "xlsx":
		paths, err = exportXLSX(dir, rep.Sections)
	default:
		return ExportError(format, ErrExportFormat)
	}
	if err != nil {
		return err
	}

	rep.Exports = paths
	return nil
}

func exportName(code, ext string) string {
	return strings.ToLower(code) + "_medians." + ext
}

func exportDelimited(
	dir string,
	secs []Section,
	sep rune,
	ext string,
) ([]string, error) {
	var res []string
	for _, s := range secs {
		path := filepath.Join(dir, exportName(s.Indicator.Code, ext))
		f, err := os.Create(path)
		if err != nil {
			return nil, ExportError(path, err)
		}

		err = writeDelimited(f, s.Rows, sep)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, ExportError(path, err)
		}
		res = append(res, path)
	}
	return res, nil
}

// writeDelimited writes the header and median rows with the separator.
func writeDelimited(w io.Writer, rows []median.Row, sep rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = sep
	if err := cw.Write(median.ColumnNames); err != nil {
		return err
	}
	for _, row := range rows {
		vals := row.Values()
		rec := make([]string, len(vals))
		rec[0] = strconv.Itoa(row.Year)
		for i := 1; i < len(vals); i++ {
			rec[i] = strconv.FormatFloat(vals[i], 'f', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportJSON(dir string, secs []Section) ([]string, error) {
	out := make([]sectionExport, len(secs))
	for i, s := range secs {
		out[i] = sectionExport{
			Indicator: s.Indicator.Code,
			Label:     s.Indicator.Title(),
			Unit:      s.Indicator.Unit,
			Verdict:   s.Verdict,
			Rows:      s.Rows,
		}
	}

	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(out)
	path := filepath.Join(dir, "medians.json")
	if err != nil {
		return nil, ExportError(path, err)
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return nil, ExportError(path, err)
	}
	return []string{path}, nil
}

func exportXLSX(dir string, secs []Section) ([]string, error) {
	path := filepath.Join(dir, "medians.xlsx")
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range secs {
		sheet := sheetName(s.Indicator.Code)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, ExportError(path, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, ExportError(path, err)
		}

		for j, h := range median.ColumnNames {
			cell, _ := excelize.CoordinatesToCellName(j+1, 1)
			f.SetCellValue(sheet, cell, h)
		}
		for j, row := range s.Rows {
			for k, v := range row.Values() {
				cell, _ := excelize.CoordinatesToCellName(k+1, j+2)
				if k == 0 {
					f.SetCellValue(sheet, cell, row.Year)
					continue
				}
				f.SetCellValue(sheet, cell, v)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return nil, ExportError(path, err)
	}
	return []string{path}, nil
}

// sheetName makes a valid Excel sheet name from an indicator code.
func sheetName(code string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, code)
	if len(name) > 31 {
		name = name[:31]
	}
	if name == "" {
		name = "Sheet"
	}
	return name
}
