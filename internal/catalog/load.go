// Package catalog provides the local parts catalog: CSV loading with
// deterministic built-in fallbacks, and an atomically swappable in-memory
// snapshot shared by concurrent recommendation queries.
package catalog

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/powercrux/part-advisor/internal/types"
	"go.uber.org/zap"
)

// CSV file names per part family. Column names inside each file are stable
// across reloads; the loaders index columns by header, not position.
const (
	MOSFETFile          = "mosfets.csv"
	OutputCapacitorFile = "output_capacitors.csv"
	InputCapacitorFile  = "input_capacitors.csv"
	InductorFile        = "inductors.csv"
)

// LoadWarning describes a degraded (but recovered) catalog load. A load never
// fails: on any problem the built-in fallback list is substituted and the
// warning records what happened so callers can log or surface it.
type LoadWarning struct {
	Kind         types.ComponentKind
	Path         string // the file actually read, "" if none was found
	SkippedRows  int    // malformed rows skipped during parse
	UsedFallback bool
	Err          error // the underlying cause when UsedFallback is true
}

func (w *LoadWarning) String() string {
	if w == nil {
		return ""
	}
	if w.UsedFallback {
		return fmt.Sprintf("%s: using built-in fallback list (%v)", w.Kind, w.Err)
	}
	return fmt.Sprintf("%s: loaded %s, skipped %d malformed rows", w.Kind, w.Path, w.SkippedRows)
}

// Loader reads part family CSV files from a data directory.
type Loader struct {
	dir    string
	logger *zap.Logger
}

// NewLoader creates a Loader rooted at dir. An empty dir means "search the
// default asset locations only".
func NewLoader(dir string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{dir: dir, logger: logger}
}

// resolveDataFile returns the first existing candidate path. An explicitly
// configured dir is authoritative: nothing outside it is consulted. With no
// dir configured the default asset locations are tried, tolerating commands
// run from the repo root or a subdirectory.
func (l *Loader) resolveDataFile(filename string) string {
	if l.dir != "" {
		if abs, err := filepath.Abs(filepath.Join(l.dir, filename)); err == nil {
			if _, err := os.Stat(abs); err == nil {
				return abs
			}
		}
		return ""
	}

	candidates := []string{
		filepath.Join("assets", "component_data", filename),
		filepath.Join("..", "assets", "component_data", filename),
		filepath.Join("..", "..", "assets", "component_data", filename),
	}

	for _, candidate := range candidates {
		if abs, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(abs); err == nil {
				return abs
			}
		}
	}
	return ""
}

// readRows opens and fully parses a CSV file, returning the header index and
// data rows. Rows with the wrong field count are returned as-is for the
// caller to count and skip (csv.Reader with FieldsPerRecord = -1).
func (l *Loader) readRows(path string) (map[string]int, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open catalog file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	if len(records) < 1 {
		return nil, nil, fmt.Errorf("catalog file %s has no header row", path)
	}

	header := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		header[strings.ToLower(strings.TrimSpace(col))] = i
	}
	return header, records[1:], nil
}

// cell returns the trimmed value of a named column in a row, or "" when the
// column is absent or out of range.
func cell(header map[string]int, row []string, name string) string {
	idx, ok := header[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// coerceFloat converts a CSV cell to a float, mapping unknown markers and
// unparseable values to the 0 sentinel. Negative and NaN values also coerce
// to 0: part ratings are non-negative by invariant.
func coerceFloat(s string) float64 {
	s = strings.TrimSpace(strings.TrimPrefix(s, "~"))
	switch strings.ToLower(s) {
	case "", "n/a", "na", "-", "nan", "unknown":
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// coerceBool reads yes/true/1 style cells.
func coerceBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "y", "shielded":
		return true
	}
	return false
}

// LoadMOSFETs loads the MOSFET family, falling back to the built-in list on
// any failure. The returned warning is never nil.
func (l *Loader) LoadMOSFETs() ([]types.MOSFET, *LoadWarning) {
	warning := &LoadWarning{Kind: types.KindMOSFET}

	path := l.resolveDataFile(MOSFETFile)
	if path == "" {
		warning.UsedFallback = true
		warning.Err = fmt.Errorf("no catalog file found for %s", MOSFETFile)
		l.logger.Warn("catalog file missing, using fallback", zap.String("file", MOSFETFile))
		return FallbackMOSFETs(), warning
	}
	warning.Path = path

	header, rows, err := l.readRows(path)
	if err != nil {
		warning.UsedFallback = true
		warning.Err = err
		l.logger.Warn("catalog parse failed, using fallback", zap.String("file", path), zap.Error(err))
		return FallbackMOSFETs(), warning
	}

	parts := make([]types.MOSFET, 0, len(rows))
	for _, row := range rows {
		name := cell(header, row, "name")
		if name == "" {
			name = cell(header, row, "part_number")
		}
		if name == "" {
			warning.SkippedRows++
			continue
		}
		parts = append(parts, types.MOSFET{
			Name:            name,
			Manufacturer:    cell(header, row, "manufacturer"),
			Vds:             coerceFloat(cell(header, row, "vds_v")),
			Id:              coerceFloat(cell(header, row, "id_a")),
			RdsOn:           coerceFloat(cell(header, row, "rdson_mohm")),
			Qg:              coerceFloat(cell(header, row, "qg_nc")),
			Package:         cell(header, row, "package"),
			TypicalUse:      cell(header, row, "typical_use"),
			EfficiencyRange: cell(header, row, "efficiency_range"),
		})
	}

	if len(parts) == 0 {
		warning.UsedFallback = true
		warning.Err = fmt.Errorf("catalog file %s yielded no usable rows", path)
		l.logger.Warn("catalog empty after parse, using fallback", zap.String("file", path))
		return FallbackMOSFETs(), warning
	}

	l.logger.Debug("loaded mosfets",
		zap.String("file", path), zap.Int("count", len(parts)), zap.Int("skipped", warning.SkippedRows))
	return parts, warning
}

// LoadOutputCapacitors loads the output capacitor family.
func (l *Loader) LoadOutputCapacitors() ([]types.Capacitor, *LoadWarning) {
	warning := &LoadWarning{Kind: types.KindOutputCapacitor}

	path := l.resolveDataFile(OutputCapacitorFile)
	if path == "" {
		warning.UsedFallback = true
		warning.Err = fmt.Errorf("no catalog file found for %s", OutputCapacitorFile)
		l.logger.Warn("catalog file missing, using fallback", zap.String("file", OutputCapacitorFile))
		return FallbackOutputCapacitors(), warning
	}
	warning.Path = path

	header, rows, err := l.readRows(path)
	if err != nil {
		warning.UsedFallback = true
		warning.Err = err
		l.logger.Warn("catalog parse failed, using fallback", zap.String("file", path), zap.Error(err))
		return FallbackOutputCapacitors(), warning
	}

	parts := make([]types.Capacitor, 0, len(rows))
	for _, row := range rows {
		part := cell(header, row, "part_number")
		if part == "" {
			warning.SkippedRows++
			continue
		}
		parts = append(parts, types.Capacitor{
			Part:          part,
			Manufacturer:  cell(header, row, "manufacturer"),
			CapacitanceUF: coerceFloat(cell(header, row, "capacitance_uf")),
			Voltage:       coerceFloat(cell(header, row, "voltage_v")),
			Dielectric:    cell(header, row, "type"),
			ESR:           cell(header, row, "esr_mohm"),
			PrimaryUse:    cell(header, row, "primary_use"),
			TempRange:     cell(header, row, "temp_range"),
		})
	}

	if len(parts) == 0 {
		warning.UsedFallback = true
		warning.Err = fmt.Errorf("catalog file %s yielded no usable rows", path)
		l.logger.Warn("catalog empty after parse, using fallback", zap.String("file", path))
		return FallbackOutputCapacitors(), warning
	}

	l.logger.Debug("loaded output capacitors",
		zap.String("file", path), zap.Int("count", len(parts)), zap.Int("skipped", warning.SkippedRows))
	return parts, warning
}

// LoadInputCapacitors loads the input capacitor family.
func (l *Loader) LoadInputCapacitors() ([]types.InputCapacitor, *LoadWarning) {
	warning := &LoadWarning{Kind: types.KindInputCapacitor}

	path := l.resolveDataFile(InputCapacitorFile)
	if path == "" {
		warning.UsedFallback = true
		warning.Err = fmt.Errorf("no catalog file found for %s", InputCapacitorFile)
		l.logger.Warn("catalog file missing, using fallback", zap.String("file", InputCapacitorFile))
		return FallbackInputCapacitors(), warning
	}
	warning.Path = path

	header, rows, err := l.readRows(path)
	if err != nil {
		warning.UsedFallback = true
		warning.Err = err
		l.logger.Warn("catalog parse failed, using fallback", zap.String("file", path), zap.Error(err))
		return FallbackInputCapacitors(), warning
	}

	parts := make([]types.InputCapacitor, 0, len(rows))
	for _, row := range rows {
		part := cell(header, row, "part_number")
		if part == "" {
			warning.SkippedRows++
			continue
		}
		parts = append(parts, types.InputCapacitor{
			Part:          part,
			Manufacturer:  cell(header, row, "manufacturer"),
			Category:      cell(header, row, "category"),
			Dielectric:    cell(header, row, "dielectric"),
			CapacitanceUF: coerceFloat(cell(header, row, "capacitance_uf")),
			Voltage:       coerceFloat(cell(header, row, "voltage_v")),
			ESR:           coerceFloat(cell(header, row, "esr_mohm")),
			ESL:           coerceFloat(cell(header, row, "esl_nh")),
			RippleRating:  coerceFloat(cell(header, row, "ripple_a")),
			LifetimeHours: coerceFloat(cell(header, row, "lifetime_hours")),
			Package:       cell(header, row, "package"),
			CostUSD:       coerceFloat(cell(header, row, "cost_usd")),
			Availability:  cell(header, row, "availability"),
			Notes:         cell(header, row, "notes"),
		})
	}

	if len(parts) == 0 {
		warning.UsedFallback = true
		warning.Err = fmt.Errorf("catalog file %s yielded no usable rows", path)
		l.logger.Warn("catalog empty after parse, using fallback", zap.String("file", path))
		return FallbackInputCapacitors(), warning
	}

	l.logger.Debug("loaded input capacitors",
		zap.String("file", path), zap.Int("count", len(parts)), zap.Int("skipped", warning.SkippedRows))
	return parts, warning
}

// LoadInductors loads the inductor family.
func (l *Loader) LoadInductors() ([]types.Inductor, *LoadWarning) {
	warning := &LoadWarning{Kind: types.KindInductor}

	path := l.resolveDataFile(InductorFile)
	if path == "" {
		warning.UsedFallback = true
		warning.Err = fmt.Errorf("no catalog file found for %s", InductorFile)
		l.logger.Warn("catalog file missing, using fallback", zap.String("file", InductorFile))
		return FallbackInductors(), warning
	}
	warning.Path = path

	header, rows, err := l.readRows(path)
	if err != nil {
		warning.UsedFallback = true
		warning.Err = err
		l.logger.Warn("catalog parse failed, using fallback", zap.String("file", path), zap.Error(err))
		return FallbackInductors(), warning
	}

	parts := make([]types.Inductor, 0, len(rows))
	for _, row := range rows {
		part := cell(header, row, "part_number")
		if part == "" {
			warning.SkippedRows++
			continue
		}
		parts = append(parts, types.Inductor{
			Part:         part,
			Manufacturer: cell(header, row, "manufacturer"),
			InductanceUH: coerceFloat(cell(header, row, "inductance_uh")),
			Current:      coerceFloat(cell(header, row, "current_a")),
			DCR:          coerceFloat(cell(header, row, "dcr_mohm")),
			SatCurrent:   coerceFloat(cell(header, row, "sat_current_a")),
			Package:      cell(header, row, "package"),
			Shielded:     coerceBool(cell(header, row, "shielded")),
			CoreMaterial: cell(header, row, "core_material"),
			TempRange:    cell(header, row, "temp_range"),
		})
	}

	if len(parts) == 0 {
		warning.UsedFallback = true
		warning.Err = fmt.Errorf("catalog file %s yielded no usable rows", path)
		l.logger.Warn("catalog empty after parse, using fallback", zap.String("file", path))
		return FallbackInductors(), warning
	}

	l.logger.Debug("loaded inductors",
		zap.String("file", path), zap.Int("count", len(parts)), zap.Int("skipped", warning.SkippedRows))
	return parts, warning
}
