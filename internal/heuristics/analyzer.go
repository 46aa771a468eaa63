// Package heuristics extracts human-authored selection guidance from design
// documents and turns it into adjustable scoring parameters. The whole
// package is advisory: every failure degrades to defaults and nothing here
// ever returns an error to a caller.
package heuristics

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/powercrux/part-advisor/internal/types"
)

// Bucket names shared across families.
const (
	BucketVoltageDerating = "voltage_derating"
	BucketCurrentDerating = "current_derating"
	BucketLossOptimize    = "loss_optimization" // RDS(on) / ESR / DCR guidance
	BucketGateCharge      = "gate_charge"
	BucketInductance      = "inductance_selection"
	BucketCapacitance     = "capacitance_tolerance"
	BucketCoreMaterial    = "core_material"
	BucketRipple          = "ripple_current"
	BucketThermal         = "thermal"
	BucketPackage         = "package"
	BucketFrequency       = "frequency"
	BucketApplication     = "application_specific"
	BucketGeneral         = "general"
)

// Buckets holds the classified lines of one document, keyed by bucket name.
type Buckets map[string][]string

// Result is the outcome of analyzing a family's guidance directory. A
// missing directory or empty document set is not an error: Updated is false
// and everything else is empty.
type Result struct {
	DocumentsFound  []string
	Criteria        map[string]Buckets // document name -> classified lines
	Recommendations []string
	Updated         bool
}

// AllLines returns every classified line across all documents and buckets,
// in deterministic (document, bucket, line) order.
func (r Result) AllLines() []string {
	var lines []string
	for _, doc := range r.DocumentsFound {
		buckets := r.Criteria[doc]
		names := make([]string, 0, len(buckets))
		for name := range buckets {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			lines = append(lines, buckets[name]...)
		}
	}
	return lines
}

// Lines returns all lines filed under the given bucket, across documents.
func (r Result) Lines(bucket string) []string {
	var lines []string
	for _, doc := range r.DocumentsFound {
		lines = append(lines, r.Criteria[doc][bucket]...)
	}
	return lines
}

// MentionsManufacturer reports whether any guidance line names the given
// manufacturer. Matching is case-insensitive on the first word of the
// manufacturer name so "Infineon Technologies" matches a line saying
// "prefer Infineon parts".
func (r Result) MentionsManufacturer(manufacturer string) bool {
	fields := strings.Fields(manufacturer)
	if len(fields) == 0 {
		return false
	}
	needle := strings.ToLower(fields[0])
	for _, line := range r.AllLines() {
		if strings.Contains(strings.ToLower(line), needle) {
			return true
		}
	}
	return false
}

// guidance documents are plain text; each nonblank line is classified
// independently.
var docExtensions = []string{".txt", ".md"}

// familyDir maps a component family to its directory name under the
// heuristics root.
func familyDir(kind types.ComponentKind) string {
	switch kind {
	case types.KindMOSFET:
		return "mosfets"
	case types.KindOutputCapacitor, types.KindInputCapacitor:
		return "capacitors"
	case types.KindInductor:
		return "inductors"
	}
	return string(kind)
}

// Analyze scans dir/<family>/ for guidance documents and classifies their
// contents. It never fails: unreadable directories or documents simply
// contribute nothing.
func Analyze(dir string, kind types.ComponentKind) Result {
	result := Result{Criteria: make(map[string]Buckets)}
	if dir == "" {
		return result
	}

	path := filepath.Join(dir, familyDir(kind))
	entries, err := os.ReadDir(path)
	if err != nil {
		return result
	}

	for _, entry := range entries {
		if entry.IsDir() || !hasDocExtension(entry.Name()) {
			continue
		}
		content, err := os.ReadFile(filepath.Join(path, entry.Name()))
		if err != nil {
			continue
		}
		result.DocumentsFound = append(result.DocumentsFound, entry.Name())
		result.Criteria[entry.Name()] = classify(string(content), kind)
	}
	sort.Strings(result.DocumentsFound)

	if len(result.DocumentsFound) > 0 {
		result.Updated = true
		result.Recommendations = summarize(result, kind)
	}
	return result
}

func hasDocExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range docExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// classify files each nonblank line of a document into the first matching
// topic bucket. The keyword sets mirror the selection topics the guidance
// documents actually discuss per family.
func classify(content string, kind types.ComponentKind) Buckets {
	buckets := make(Buckets)

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		bucket := classifyLine(strings.ToLower(line), kind)
		if bucket == BucketGeneral && len(line) <= 20 {
			// short leftover lines carry no usable guidance
			continue
		}
		buckets[bucket] = append(buckets[bucket], line)
	}
	return buckets
}

func classifyLine(lower string, kind types.ComponentKind) string {
	type rule struct {
		bucket   string
		keywords []string
	}

	var rules []rule
	switch kind {
	case types.KindMOSFET:
		rules = []rule{
			// current first: "current margin" lines must not be swallowed by
			// the voltage bucket's margin/derating keywords
			{BucketCurrentDerating, []string{"current", "id ", "ampere", "amp"}},
			{BucketVoltageDerating, []string{"voltage", "vds", "derating", "margin", "breakdown"}},
			{BucketLossOptimize, []string{"rdson", "rds(on)", "resistance", "efficiency", "loss"}},
			{BucketGateCharge, []string{"gate", "qg", "qgs", "qgd", "charge", "driver"}},
			{BucketThermal, []string{"thermal", "temperature", "heat", "cooling", "junction"}},
			{BucketPackage, []string{"package", "so-8", "to-220", "d2pak", "surface mount"}},
			{BucketApplication, []string{"buck", "boost", "converter", "pfc", "application"}},
		}
	case types.KindOutputCapacitor, types.KindInputCapacitor:
		rules = []rule{
			{BucketVoltageDerating, []string{"voltage", "derating", "margin", "breakdown", "rating"}},
			{BucketLossOptimize, []string{"esr", "resistance", "impedance", "loss"}},
			{BucketRipple, []string{"ripple", "current", "rms", "heating"}},
			{BucketThermal, []string{"temperature", "temp", "thermal", "coefficient"}},
			{BucketPackage, []string{"mlcc", "ceramic", "electrolytic", "polymer", "tantalum", "film"}},
			{BucketCapacitance, []string{"capacitance", "tolerance", "variation", "µf", "uf"}},
			{BucketFrequency, []string{"frequency", "freq", "khz", "mhz", "resonant"}},
			{BucketApplication, []string{"buck", "boost", "converter", "pfc", "filter", "decoupling"}},
		}
	case types.KindInductor:
		rules = []rule{
			{BucketCurrentDerating, []string{"current", "ampere", "amp", "rating", "isat", "saturation", "margin", "derating"}},
			{BucketInductance, []string{"inductance", "henry", "µh", "uh", "ripple", "l="}},
			{BucketCoreMaterial, []string{"core", "ferrite", "powder", "material", "iron"}},
			{BucketFrequency, []string{"frequency", "khz", "mhz", "switching", "freq"}},
			{BucketThermal, []string{"thermal", "temperature", "heat", "cooling", "temp"}},
			{BucketApplication, []string{"buck", "boost", "converter", "pfc", "application"}},
		}
	}

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.bucket
			}
		}
	}
	return BucketGeneral
}

// summarize builds the human-readable recommendation list from the merged
// criteria, two example lines per populated bucket.
func summarize(result Result, kind types.ComponentKind) []string {
	order := []struct {
		bucket string
		label  string
	}{
		{BucketVoltageDerating, "Voltage Derating"},
		{BucketCurrentDerating, "Current Derating"},
		{BucketLossOptimize, "Loss Optimization"},
		{BucketGateCharge, "Gate Charge"},
		{BucketInductance, "Inductance Selection"},
		{BucketCapacitance, "Capacitance Tolerance"},
		{BucketCoreMaterial, "Core Material"},
		{BucketRipple, "Ripple Current"},
		{BucketFrequency, "Frequency"},
		{BucketApplication, "Applications"},
	}

	var recs []string
	for _, o := range order {
		lines := result.Lines(o.bucket)
		if len(lines) == 0 {
			continue
		}
		if len(lines) > 2 {
			lines = lines[:2]
		}
		recs = append(recs, fmt.Sprintf("%s: %s", o.label, strings.Join(lines, "; ")))
	}
	return recs
}
