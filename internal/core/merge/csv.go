package merge

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xyian/lorebase/internal/core/model"
)

// ReadTable parses a structured table from CSV. The header row names the
// columns; recognized columns are name, set, piece_type, mention_count,
// best_context, effects (JSON array cell), and sources (JSON array cell).
// Unknown columns are ignored so extraction passes can carry extra fields.
func ReadTable(r io.Reader) ([]model.TableRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read table header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []model.TableRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read table row: %w", err)
		}

		row := model.TableRow{
			Name:      field(record, "name"),
			Set:       field(record, "set"),
			PieceType: field(record, "piece_type"),
			Context:   field(record, "best_context"),
			Effects:   parseListCell(field(record, "effects")),
			Sources:   parseListCell(field(record, "sources")),
		}
		if n, err := strconv.Atoi(field(record, "mention_count")); err == nil {
			row.Mentions = n
		}
		if row.Name == "" && row.Set == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadTableFile reads a CSV table from disk.
func ReadTableFile(path string) ([]model.TableRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table %s: %w", path, err)
	}
	defer f.Close()
	return ReadTable(f)
}

// parseListCell decodes a JSON-array cell. Malformed cells yield nil rather
// than failing the whole table; list cells are best-effort provenance.
func parseListCell(cell string) []string {
	if cell == "" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(cell), &items); err != nil {
		return nil
	}
	return items
}
