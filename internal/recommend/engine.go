package recommend

import (
	"context"
	"fmt"
	"sort"

	"github.com/powercrux/part-advisor/internal/catalog"
	"github.com/powercrux/part-advisor/internal/distributor"
	"github.com/powercrux/part-advisor/internal/heuristics"
	"github.com/powercrux/part-advisor/internal/types"
	"go.uber.org/zap"
)

const (
	maxSuggestions    = 5
	maxWebSuggestions = 10

	// webScore is the flat score for distributor listings. Their electrical
	// parameters are unknown, so they cannot be ranked against catalog data.
	webScore = 50.0
)

// SnapshotProvider yields the current immutable catalog snapshot.
type SnapshotProvider interface {
	Snapshot() *catalog.Snapshot
}

// Searcher performs distributor lookups.
type Searcher interface {
	Search(ctx context.Context, term string, kind types.ComponentKind) map[string][]types.WebComponent
}

var _ SnapshotProvider = (*catalog.Repository)(nil)
var _ Searcher = (*distributor.Client)(nil)

// Engine produces ranked component suggestions. Local mode scores the
// catalog snapshot under heuristics guidance; web mode returns distributor
// listings unscored.
type Engine struct {
	repo          SnapshotProvider
	heuristicsDir string
	dist          Searcher
	logger        *zap.Logger
}

// NewEngine creates a suggestion engine. dist may be nil when web mode is
// never requested.
func NewEngine(repo SnapshotProvider, heuristicsDir string, dist Searcher, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{repo: repo, heuristicsDir: heuristicsDir, dist: dist, logger: logger}
}

// SuggestMOSFETs returns ranked switch candidates for the requirement.
func (e *Engine) SuggestMOSFETs(ctx context.Context, req types.MOSFETRequirements) ([]types.Suggestion, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid MOSFET requirements: %w", err)
	}
	if req.Mode == types.SourceModeWeb {
		term := fmt.Sprintf("MOSFET N-Channel %dV %dA TO-220", int(req.MaxVoltage*1.5), int(req.MaxCurrent*2))
		return e.webSuggestions(ctx, types.KindMOSFET, term)
	}

	snap := e.repo.Snapshot()
	analysis := heuristics.Analyze(e.heuristicsDir, types.KindMOSFET)
	margins := heuristics.DefaultMargins(types.KindMOSFET)
	margins.ApplyGuidance(analysis)

	var suggestions []types.Suggestion
	for _, m := range snap.MOSFETs {
		score, reason, applied, ok := scoreMOSFET(m, req, margins)
		if !ok {
			continue
		}
		suggestions = append(suggestions, e.build(m, score, reason, margins, applied, analysis, snap.SourceFor(types.KindMOSFET)))
	}
	return e.finalize(types.KindMOSFET, suggestions, analysis), nil
}

// SuggestOutputCapacitors returns ranked output filter candidates.
func (e *Engine) SuggestOutputCapacitors(ctx context.Context, req types.CapacitorRequirements) ([]types.Suggestion, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid output capacitor requirements: %w", err)
	}
	if req.Mode == types.SourceModeWeb {
		term := fmt.Sprintf("Ceramic Capacitor %dV %duF X7R", int(req.MaxVoltage*1.5), int(req.CapacitanceUF))
		return e.webSuggestions(ctx, types.KindOutputCapacitor, term)
	}

	snap := e.repo.Snapshot()
	analysis := heuristics.Analyze(e.heuristicsDir, types.KindOutputCapacitor)
	margins := heuristics.DefaultMargins(types.KindOutputCapacitor)
	margins.ApplyGuidance(analysis)

	var suggestions []types.Suggestion
	for _, c := range snap.OutputCapacitors {
		score, reason, applied, ok := scoreOutputCapacitor(c, req, margins)
		if !ok {
			continue
		}
		suggestions = append(suggestions, e.build(c, score, reason, margins, applied, analysis, snap.SourceFor(types.KindOutputCapacitor)))
	}
	return e.finalize(types.KindOutputCapacitor, suggestions, analysis), nil
}

// SuggestInputCapacitors returns ranked input-side bulk candidates.
func (e *Engine) SuggestInputCapacitors(ctx context.Context, req types.InputCapacitorRequirements) ([]types.Suggestion, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid input capacitor requirements: %w", err)
	}
	if req.Mode == types.SourceModeWeb {
		term := fmt.Sprintf("Electrolytic Capacitor %dV %duF Low ESR", int(req.MaxVoltage*1.2), int(req.CapacitanceUF))
		return e.webSuggestions(ctx, types.KindInputCapacitor, term)
	}

	snap := e.repo.Snapshot()
	analysis := heuristics.Analyze(e.heuristicsDir, types.KindInputCapacitor)
	margins := heuristics.DefaultMargins(types.KindInputCapacitor)
	margins.ApplyGuidance(analysis)

	var suggestions []types.Suggestion
	for _, c := range snap.InputCapacitors {
		score, reason, applied, ok := scoreInputCapacitor(c, req, margins)
		if !ok {
			continue
		}
		suggestions = append(suggestions, e.build(c, score, reason, margins, applied, analysis, snap.SourceFor(types.KindInputCapacitor)))
	}
	return e.finalize(types.KindInputCapacitor, suggestions, analysis), nil
}

// SuggestInductors returns ranked inductor candidates.
func (e *Engine) SuggestInductors(ctx context.Context, req types.InductorRequirements) ([]types.Suggestion, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid inductor requirements: %w", err)
	}
	if req.Mode == types.SourceModeWeb {
		term := fmt.Sprintf("Power Inductor %duH %dA Shielded", int(req.InductanceUH), int(req.MaxCurrent*1.3))
		return e.webSuggestions(ctx, types.KindInductor, term)
	}

	snap := e.repo.Snapshot()
	analysis := heuristics.Analyze(e.heuristicsDir, types.KindInductor)
	margins := heuristics.DefaultMargins(types.KindInductor)
	margins.ApplyGuidance(analysis)

	var suggestions []types.Suggestion
	for _, l := range snap.Inductors {
		score, reason, applied, ok := scoreInductor(l, req, margins)
		if !ok {
			continue
		}
		suggestions = append(suggestions, e.build(l, score, reason, margins, applied, analysis, snap.SourceFor(types.KindInductor)))
	}
	return e.finalize(types.KindInductor, suggestions, analysis), nil
}

// build assembles one suggestion, layering the manufacturer-mention bonus
// on top of the part score.
func (e *Engine) build(part types.Part, score float64, reason string, margins heuristics.Margins, applied []string, analysis heuristics.Result, source types.SourceTag) types.Suggestion {
	tags := make([]string, 0, len(margins.Applied)+len(applied)+1)
	tags = append(tags, margins.Applied...)
	tags = append(tags, applied...)

	if analysis.MentionsManufacturer(part.Maker()) {
		score += mentionBonus
		tags = append(tags, fmt.Sprintf("%s favored in design guidance", part.Maker()))
	}

	return types.Suggestion{
		Component:         part,
		Reason:            reason,
		Score:             score,
		HeuristicsApplied: tags,
		Source:            source,
	}
}

// finalize sorts by descending score with stable tie-break on catalog order,
// truncates to the top candidates, and tags the winner with document
// provenance for the run.
func (e *Engine) finalize(kind types.ComponentKind, suggestions []types.Suggestion, analysis heuristics.Result) []types.Suggestion {
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	if len(suggestions) > 0 {
		provenance := "No design documents found, defaults applied"
		if len(analysis.DocumentsFound) > 0 {
			provenance = fmt.Sprintf("Ranked with guidance from %d design document(s)", len(analysis.DocumentsFound))
		}
		suggestions[0].HeuristicsApplied = append(suggestions[0].HeuristicsApplied, provenance)
	}

	e.logger.Debug("suggestions ranked",
		zap.String("kind", string(kind)),
		zap.Int("count", len(suggestions)),
		zap.Int("documents", len(analysis.DocumentsFound)))
	return suggestions
}

// webSuggestions adapts distributor listings into suggestions. Mouser
// results order before Digikey for a stable presentation.
func (e *Engine) webSuggestions(ctx context.Context, kind types.ComponentKind, term string) ([]types.Suggestion, error) {
	if e.dist == nil {
		return nil, fmt.Errorf("web mode requested but no distributor client configured")
	}

	results := e.dist.Search(ctx, term, kind)

	var suggestions []types.Suggestion
	for _, dist := range []string{types.DistributorMouser, types.DistributorDigikey} {
		for _, comp := range results[dist] {
			if len(suggestions) == maxWebSuggestions {
				return suggestions, nil
			}
			suggestions = append(suggestions, types.Suggestion{
				Component: types.WebPart{WebComponent: comp, ComponentKind: kind},
				Reason:    webReason(comp),
				Score:     webScore,
				Source:    types.SourceWeb,
			})
		}
	}
	return suggestions, nil
}

func webReason(comp types.WebComponent) string {
	reason := fmt.Sprintf("%s via %s. %s, %s", comp.Description, comp.Distributor, comp.Price, comp.Availability)
	if comp.FromFallback {
		reason += " (known-good fallback listing)"
	}
	return reason
}
