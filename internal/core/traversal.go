package core

import (
	"context"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"graphql-import/internal/ports"
	"graphql-import/internal/types"
)

// ResolverCore walks the import graph from an entry document,
// accumulating the full and the projected definition set of every
// visited document.
type ResolverCore struct {
	Loader    ports.DocumentLoaderPort
	Paths     PathResolver
	Projector Projector
}

// ImportEdge is one traversed import, recorded for inspection.
type ImportEdge struct {
	From   string
	To     string
	Record types.ImportRecord
}

// ResolveResult carries the accumulated sequences of one resolution
// pass, in visitation order. TypeDefinitions[0] belongs to the entry
// document.
type ResolveResult struct {
	AllDefinitions  []types.DefinitionList
	TypeDefinitions []types.DefinitionList
	Edges           []ImportEdge
	Documents       int
}

// resolutionState is created fresh per resolution pass and threaded
// explicitly through the traversal, so independent passes can never
// interfere through captured state. The mutex guards every append and
// the check-then-record on processedImports: sibling loads run
// concurrently, and the at-most-once-per-edge guarantee depends on that
// check being atomic.
type resolutionState struct {
	mu               sync.Mutex
	allDefinitions   []types.DefinitionList
	typeDefinitions  []types.DefinitionList
	processedImports map[string][]types.ImportRecord
	edges            []ImportEdge
}

func newResolutionState() *resolutionState {
	return &resolutionState{
		processedImports: make(map[string][]types.ImportRecord),
	}
}

// snapshotAndAppend records a document's full definitions and returns
// the sets of all strictly earlier documents, which the projector's
// wildcard rule needs.
func (s *resolutionState) snapshotAndAppend(defs types.DefinitionList) []types.DefinitionList {
	s.mu.Lock()
	defer s.mu.Unlock()
	earlier := make([]types.DefinitionList, len(s.allDefinitions))
	copy(earlier, s.allDefinitions)
	s.allDefinitions = append(s.allDefinitions, defs)
	return earlier
}

func (s *resolutionState) appendProjection(defs types.DefinitionList) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.typeDefinitions = append(s.typeDefinitions, defs)
}

// markProcessed records an (canonical path, import record) edge and
// reports whether it was fresh. An equal record already issued against
// the same file means the edge is satisfied and must not be traversed
// again; this is the sole cycle-breaking mechanism.
func (s *resolutionState) markProcessed(path string, record types.ImportRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, processed := range s.processedImports[path] {
		if processed.Key() == record.Key() {
			return false
		}
	}
	s.processedImports[path] = append(s.processedImports[path], record)
	return true
}

func (s *resolutionState) addEdge(edge ImportEdge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edges = append(s.edges, edge)
}

func NewResolverCore(loader ports.DocumentLoaderPort, paths PathResolver, projector Projector) ResolverCore {
	return ResolverCore{
		Loader:    loader,
		Paths:     paths,
		Projector: projector,
	}
}

// Resolve runs one resolution pass from the entry document. Any
// grammar, path-resolution, or loader failure aborts the whole pass;
// there is no partial success and no retry.
func (r ResolverCore) Resolve(ctx context.Context, entryPath string) (ResolveResult, error) {
	if r.Loader == nil {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolver requires a document loader port")
	}

	entry, err := r.Loader.Load(entryPath)
	if err != nil {
		return ResolveResult{}, err
	}

	state := newResolutionState()
	entryRecord := types.ImportRecord{
		Imports: []types.Selector{types.WildcardSelector()},
		From:    entryPath,
	}
	state.markProcessed(entry.Location, entryRecord)

	if err := r.visit(ctx, state, entry, entryRecord); err != nil {
		return ResolveResult{}, err
	}

	log.Ctx(ctx).Debug().
		Int("documents", len(state.allDefinitions)).
		Int("edges", len(state.edges)).
		Msg("resolution pass completed")

	return ResolveResult{
		AllDefinitions:  state.allDefinitions,
		TypeDefinitions: state.typeDefinitions,
		Edges:           state.edges,
		Documents:       len(state.allDefinitions),
	}, nil
}

// visit processes one document: accumulate, project, then follow fresh
// import edges. Sibling loads fan out concurrently and are awaited
// before recursing in source order, so append order stays deterministic
// and merge priority is reproducible.
func (r ResolverCore) visit(ctx context.Context, state *resolutionState, doc types.SchemaDocument, record types.ImportRecord) error {
	earlier := state.snapshotAndAppend(doc.Definitions)
	projected := r.Projector.Project(record, doc.Definitions, earlier)
	state.appendProjection(projected)

	log.Ctx(ctx).Debug().
		Str("document", doc.Location).
		Int("definitions", len(doc.Definitions)).
		Int("projected", len(projected)).
		Msg("document visited")

	records, err := ScanImportLines(doc.RawText)
	if err != nil {
		return err
	}

	type pendingVisit struct {
		record types.ImportRecord
		path   string
		doc    types.SchemaDocument
		err    error
	}
	var fresh []*pendingVisit
	for _, imported := range records {
		target, err := r.Paths.Resolve(doc.Location, imported.From)
		if err != nil {
			return err
		}
		if !state.markProcessed(target, imported) {
			continue
		}
		state.addEdge(ImportEdge{From: doc.Location, To: target, Record: imported})
		fresh = append(fresh, &pendingVisit{record: imported, path: target})
	}

	var wg sync.WaitGroup
	for _, pending := range fresh {
		wg.Add(1)
		go func(pending *pendingVisit) {
			defer wg.Done()
			pending.doc, pending.err = r.Loader.Load(pending.path)
		}(pending)
	}
	wg.Wait()

	for _, pending := range fresh {
		if pending.err != nil {
			return pending.err
		}
		if err := r.visit(ctx, state, pending.doc, pending.record); err != nil {
			return err
		}
	}
	return nil
}
