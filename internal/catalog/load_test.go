package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/powercrux/part-advisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadMOSFETs_MissingFileReturnsFallback(t *testing.T) {
	l := NewLoader(t.TempDir(), zap.NewNop())

	parts, warning := l.LoadMOSFETs()

	require.NotEmpty(t, parts)
	assert.Equal(t, FallbackMOSFETs(), parts)
	assert.True(t, warning.UsedFallback)
	assert.Error(t, warning.Err)
}

func TestLoadMOSFETs_ParsesRowsAndCoercesSentinels(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, MOSFETFile,
		"name,manufacturer,vds_v,id_a,rdson_mohm,qg_nc,package,typical_use,efficiency_range\n"+
			"IRLZ44N,Infineon,55,47,22,67,TO-220,Benchmark,90-92%\n"+
			"AOZ5332QI,Alpha & Omega,60,25,8,N/A,QFN,Integrated stage,94-96%\n")

	l := NewLoader(dir, zap.NewNop())
	parts, warning := l.LoadMOSFETs()

	require.Len(t, parts, 2)
	assert.False(t, warning.UsedFallback)
	assert.Equal(t, 0, warning.SkippedRows)

	assert.Equal(t, "IRLZ44N", parts[0].Name)
	assert.Equal(t, 55.0, parts[0].Vds)
	// N/A gate charge coerces to the unknown sentinel, not an error
	assert.Equal(t, 0.0, parts[1].Qg)
}

func TestLoadInductors_SkipsMalformedRowsAndCounts(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, InductorFile,
		"part_number,manufacturer,inductance_uh,current_a,dcr_mohm,sat_current_a,package,shielded,core_material,temp_range\n"+
			"744 043 47,Würth Elektronik,470,2.1,105,3.0,WE-PD,yes,Ferrite,-40..125\n"+
			",missing part number,220,3.2,48,4.5,WE-PD,yes,Ferrite,-40..125\n"+
			"78F102J-RC,Murata,1000,1.5,280,2.2,Radial,no,Iron Powder,-40..85\n")

	l := NewLoader(dir, zap.NewNop())
	parts, warning := l.LoadInductors()

	require.Len(t, parts, 2)
	assert.Equal(t, 1, warning.SkippedRows)
	assert.False(t, warning.UsedFallback)
	assert.True(t, parts[0].Shielded)
	assert.False(t, parts[1].Shielded)
}

func TestLoadOutputCapacitors_CorruptFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	// Unterminated quote makes the whole file unparseable.
	writeCSV(t, dir, OutputCapacitorFile, "part_number,manufacturer\n\"broken,row\n")

	l := NewLoader(dir, zap.NewNop())
	parts, warning := l.LoadOutputCapacitors()

	assert.Equal(t, FallbackOutputCapacitors(), parts)
	assert.True(t, warning.UsedFallback)
}

func TestLoadInputCapacitors_UnknownNumericCellsCoerceToZero(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, InputCapacitorFile,
		"part_number,manufacturer,category,dielectric,capacitance_uf,voltage_v,esr_mohm,esl_nh,ripple_a,lifetime_hours,package,cost_usd,availability,notes\n"+
			"GRM32ER71H106KA12,Murata,MLCC,X7R,10,50,4,1.0,-,nan,1210,,In Stock,decoupling\n")

	l := NewLoader(dir, zap.NewNop())
	parts, warning := l.LoadInputCapacitors()

	require.Len(t, parts, 1)
	assert.False(t, warning.UsedFallback)
	assert.Equal(t, 0.0, parts[0].RippleRating)
	assert.Equal(t, 0.0, parts[0].LifetimeHours)
	assert.Equal(t, 0.0, parts[0].CostUSD)
}

func TestFallbackLists_NonEmptyAndNonNegative(t *testing.T) {
	require.NotEmpty(t, FallbackMOSFETs())
	require.NotEmpty(t, FallbackOutputCapacitors())
	require.NotEmpty(t, FallbackInputCapacitors())
	require.NotEmpty(t, FallbackInductors())

	for _, m := range FallbackMOSFETs() {
		assert.GreaterOrEqual(t, m.Vds, 0.0)
		assert.GreaterOrEqual(t, m.Id, 0.0)
		assert.GreaterOrEqual(t, m.Qg, 0.0)
	}
	for _, l := range FallbackInductors() {
		assert.GreaterOrEqual(t, l.InductanceUH, 0.0)
		assert.GreaterOrEqual(t, l.SatCurrent, 0.0)
	}
}

func TestRepository_ReloadSwapsSnapshotAtomically(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(dir, zap.NewNop())
	repo := NewRepository(l, zap.NewNop())

	first := repo.Snapshot()
	require.NotNil(t, first)
	assert.True(t, first.UsedFallback(types.KindInductor))
	assert.Equal(t, types.SourceFallback, first.SourceFor(types.KindInductor))

	// Drop a real file in and reload: a new snapshot replaces the old one,
	// and the old pointer is untouched.
	writeCSV(t, dir, InductorFile,
		"part_number,manufacturer,inductance_uh,current_a,dcr_mohm,sat_current_a,package,shielded,core_material,temp_range\n"+
			"TEST-470,TestCo,470,2.5,280,3.0,SMD,yes,Ferrite,-40..125\n")
	second := repo.Reload()

	assert.NotSame(t, first, second)
	assert.True(t, first.UsedFallback(types.KindInductor))
	assert.False(t, second.UsedFallback(types.KindInductor))
	assert.Equal(t, types.SourceCatalog, second.SourceFor(types.KindInductor))
	require.Len(t, second.Inductors, 1)
	assert.Equal(t, "TEST-470", second.Inductors[0].Part)
	assert.Same(t, second, repo.Snapshot())
}
