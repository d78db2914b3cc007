package spreadsheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"rotaclick/internal/domain/entities"
	"rotaclick/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// Column aliases, matched after lowercasing, trimming and stripping accents.
var headerAliases = map[string]string{
	"origem":        colOrigin,
	"origin":        colOrigin,
	"cep_origem":    colOrigin,
	"origem_inicio": colOrigin,
	"origin_start":  colOrigin,

	"origem_fim": colOriginEnd,
	"origin_end": colOriginEnd,

	"destino":        colDest,
	"destination":    colDest,
	"cep_destino":    colDest,
	"destino_inicio": colDest,
	"dest_start":     colDest,

	"destino_fim":     colDestEnd,
	"destination_end": colDestEnd,
	"dest_end":        colDestEnd,

	"custo_kg":     colCost,
	"custo_por_kg": colCost,
	"cost_per_kg":  colCost,
	"cost_kg":      colCost,
	"custo_r_kg":   colCost,

	"custo_minimo":   colMin,
	"minimo":         colMin,
	"min_price":      colMin,
	"minimum":        colMin,
	"custo_minimo_r": colMin,

	"prazo":         colDeadline,
	"prazo_dias":    colDeadline,
	"deadline":      colDeadline,
	"deadline_days": colDeadline,
}

const (
	colOrigin    = "origin"
	colOriginEnd = "origin_end"
	colDest      = "destination"
	colDestEnd   = "destination_end"
	colCost      = "cost"
	colMin       = "min"
	colDeadline  = "deadline"
)

var requiredColumns = []string{colOrigin, colDest, colCost}

// RateSheetReader reads rate tables uploaded as .xlsx or .csv. Only the
// first worksheet of a workbook is considered.
type RateSheetReader struct{}

var _ interfaces.IRateSheetReader = RateSheetReader{}

func NewRateSheetReader() RateSheetReader {
	return RateSheetReader{}
}

func (RateSheetReader) Read(filename string, r io.Reader) ([]entities.RateSheetRow, error) {
	var (
		raw [][]string
		err error
	)
	switch strings.ToLower(filepath.Ext(strings.TrimSpace(filename))) {
	case ".xlsx", ".xlsm":
		raw, err = readWorkbook(r)
	case ".csv", ".txt":
		raw, err = readCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", interfaces.ErrUnsupportedSheetFormat, filename)
	}
	if err != nil {
		return nil, err
	}
	return toRows(raw)
}

func readWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// readCSV accepts comma or semicolon separated files; spreadsheets exported
// with a Brazilian locale use ';' because ',' is the decimal separator.
func readCSV(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(4096)
	// Skip a UTF-8 BOM.
	if bytes.HasPrefix(head, []byte{0xEF, 0xBB, 0xBF}) {
		_, _ = br.Discard(3)
		head = head[3:]
	}

	cr := csv.NewReader(br)
	cr.Comma = sniffDelimiter(head)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

func sniffDelimiter(head []byte) rune {
	line := head
	if i := bytes.IndexByte(head, '\n'); i >= 0 {
		line = head[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}

func toRows(raw [][]string) ([]entities.RateSheetRow, error) {
	headerIdx := -1
	for i, r := range raw {
		if !blank(r) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, nil
	}

	cols := map[string]int{}
	for i, h := range raw[headerIdx] {
		if key, ok := headerAliases[normalizeHeader(h)]; ok {
			if _, seen := cols[key]; !seen {
				cols[key] = i
			}
		}
	}
	var missing []string
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrMissingSheetColumns, strings.Join(missing, ", "))
	}

	var out []entities.RateSheetRow
	for i := headerIdx + 1; i < len(raw); i++ {
		r := raw[i]
		if blank(r) {
			continue
		}
		out = append(out, entities.RateSheetRow{
			Line:           i + 1,
			Origin:         zipCell(r, cols, colOrigin),
			OriginEnd:      zipCell(r, cols, colOriginEnd),
			Destination:    zipCell(r, cols, colDest),
			DestinationEnd: zipCell(r, cols, colDestEnd),
			CostPerKg:      cell(r, cols, colCost),
			MinPrice:       cell(r, cols, colMin),
			DeadlineDays:   cell(r, cols, colDeadline),
		})
	}
	return out, nil
}

func cell(r []string, cols map[string]int, key string) string {
	i, ok := cols[key]
	if !ok || i >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[i])
}

// zipCell restores the leading zero of a CEP typed as a number, which
// spreadsheets drop: 01310100 comes back as 1310100.
func zipCell(r []string, cols map[string]int, key string) string {
	v := cell(r, cols, key)
	if len(v) == 7 && strings.Trim(v, "0123456789") == "" {
		return "0" + v
	}
	return v
}

func blank(r []string) bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	var b strings.Builder
	for _, r := range norm.NFD.String(h) {
		switch {
		case r >= 0x300 && r <= 0x36f:
			// combining accent
		case r == ' ' || r == '-' || r == '/':
			b.WriteRune('_')
		case r == '(' || r == ')' || r == '$' || r == '.':
		default:
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "_")
}
