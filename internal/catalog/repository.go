package catalog

import (
	"sync/atomic"
	"time"

	"github.com/powercrux/part-advisor/internal/types"
	"go.uber.org/zap"
)

// Snapshot is one immutable view of the whole catalog. A reader takes a
// snapshot once per query and works against it; reloads build a new one off
// to the side, so readers never observe a half-updated catalog.
type Snapshot struct {
	MOSFETs          []types.MOSFET
	OutputCapacitors []types.Capacitor
	InputCapacitors  []types.InputCapacitor
	Inductors        []types.Inductor
	Warnings         []*LoadWarning
	LoadedAt         time.Time
}

// UsedFallback reports whether the given family came from the built-in
// fallback dataset rather than a CSV file.
func (s *Snapshot) UsedFallback(kind types.ComponentKind) bool {
	for _, w := range s.Warnings {
		if w != nil && w.Kind == kind {
			return w.UsedFallback
		}
	}
	return false
}

// SourceFor returns the suggestion source tag for a family in this snapshot.
func (s *Snapshot) SourceFor(kind types.ComponentKind) types.SourceTag {
	if s.UsedFallback(kind) {
		return types.SourceFallback
	}
	return types.SourceCatalog
}

// Repository owns the current catalog snapshot. Load and Reload build a
// complete snapshot before publishing it with a single atomic pointer swap.
type Repository struct {
	loader   *Loader
	snapshot atomic.Pointer[Snapshot]
	logger   *zap.Logger
}

// NewRepository creates a repository and performs the initial load. The
// repository is always usable afterwards: every family degrades to its
// fallback list rather than staying empty.
func NewRepository(loader *Loader, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Repository{loader: loader, logger: logger}
	r.Reload()
	return r
}

// Snapshot returns the current immutable catalog view.
func (r *Repository) Snapshot() *Snapshot {
	return r.snapshot.Load()
}

// Reload rebuilds the catalog from the tabular sources and atomically swaps
// it in. Concurrent readers see either the old or the new snapshot in full.
func (r *Repository) Reload() *Snapshot {
	mosfets, mw := r.loader.LoadMOSFETs()
	outputCaps, ow := r.loader.LoadOutputCapacitors()
	inputCaps, iw := r.loader.LoadInputCapacitors()
	inductors, lw := r.loader.LoadInductors()

	snap := &Snapshot{
		MOSFETs:          mosfets,
		OutputCapacitors: outputCaps,
		InputCapacitors:  inputCaps,
		Inductors:        inductors,
		Warnings:         []*LoadWarning{mw, ow, iw, lw},
		LoadedAt:         time.Now(),
	}
	r.snapshot.Store(snap)

	r.logger.Info("catalog loaded",
		zap.Int("mosfets", len(mosfets)),
		zap.Int("output_capacitors", len(outputCaps)),
		zap.Int("input_capacitors", len(inputCaps)),
		zap.Int("inductors", len(inductors)),
	)
	return snap
}
