package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/leadqual/internal/model"
)

// ReadLeadsCSV reads a lead CSV from disk.
func ReadLeadsCSV(path string) ([]model.Lead, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: open csv")
	}
	defer f.Close()

	return ParseLeadsCSV(f)
}

// ParseLeadsCSV parses lead records from CSV content. Headers are matched
// case-insensitively downstream; ragged rows are tolerated, short rows
// leave trailing columns empty. A file without a header row is an error;
// a header-only file yields zero leads.
func ParseLeadsCSV(r io.Reader) ([]model.Lead, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: read csv")
	}
	if len(records) == 0 {
		return nil, eris.New("pipeline: csv has no header row")
	}

	header := records[0]
	var leads []model.Lead
	for _, row := range records[1:] {
		m := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				m[col] = row[i]
			} else {
				m[col] = ""
			}
		}
		leads = append(leads, model.LeadFromRow(m))
	}
	return leads, nil
}

// WriteScoredCSV writes scored leads to a CSV file: the recognized columns
// in canonical order, any passthrough extra columns, then score and the
// JSON-encoded score_breakdown. Writing zero records is a logged no-op.
func WriteScoredCSV(path string, leads []model.ScoredLead) error {
	if len(leads) == 0 {
		zap.L().Info("pipeline: no rows to write", zap.String("path", path))
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "pipeline: create output file")
	}
	defer f.Close()

	if err := writeScored(f, leads); err != nil {
		return err
	}
	return nil
}

// writeScored does the actual CSV encoding to any writer.
func writeScored(w io.Writer, leads []model.ScoredLead) error {
	extraCols := collectExtraColumns(leads)
	header := make([]string, 0, len(model.RecognizedFields)+len(extraCols)+2)
	header = append(header, model.RecognizedFields...)
	header = append(header, extraCols...)
	header = append(header, "score", "score_breakdown")

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "pipeline: write csv header")
	}

	for _, lead := range leads {
		row := make([]string, 0, len(header))
		for _, col := range model.RecognizedFields {
			row = append(row, lead.Field(col))
		}
		for _, col := range extraCols {
			row = append(row, lead.Extra[col])
		}
		breakdown, err := json.Marshal(lead.Breakdown)
		if err != nil {
			return eris.Wrap(err, "pipeline: encode breakdown")
		}
		row = append(row, strconv.Itoa(lead.Score), string(breakdown))
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "pipeline: write csv row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "pipeline: flush csv")
	}
	return nil
}

// collectExtraColumns returns the union of extra column names across all
// leads, sorted for deterministic output.
func collectExtraColumns(leads []model.ScoredLead) []string {
	seen := make(map[string]struct{})
	for _, lead := range leads {
		for k := range lead.Extra {
			seen[strings.ToLower(k)] = struct{}{}
		}
	}
	cols := make([]string, 0, len(seen))
	for k := range seen {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}
