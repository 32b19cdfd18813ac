// Package store provides the in-memory graph storage backing the pipeline
// drawer. It extends the stock store with in-place vertex property updates so
// stage annotations can be attached after the graph is built.
package store

import (
	"sync"

	"github.com/dominikbraun/graph"
)

// CustomStore is a stage-graph store whose vertex properties can be updated
// after the vertex was added.
type CustomStore interface {
	graph.Store[string, string]
	UpdateVertex(name string, options ...func(*graph.VertexProperties))
}

// MemoryStore holds the stage graph in maps guarded by a single lock. Stages
// are keyed by name, so vertex hash and value coincide.
type MemoryStore struct {
	lock            sync.RWMutex
	stages          map[string]string
	stageProperties map[string]*graph.VertexProperties

	// outEdges and inEdges hold the links between stages in both directions,
	// keyed by stage name for O(1) access.
	outEdges map[string]map[string]graph.Edge[string] // source -> target
	inEdges  map[string]map[string]graph.Edge[string] // target -> source
}

// NewMemoryStore initialises an empty MemoryStore.
func NewMemoryStore() CustomStore {
	return &MemoryStore{
		stages:          make(map[string]string),
		stageProperties: make(map[string]*graph.VertexProperties),
		outEdges:        make(map[string]map[string]graph.Edge[string]),
		inEdges:         make(map[string]map[string]graph.Edge[string]),
	}
}

func (s *MemoryStore) AddVertex(name, value string, properties graph.VertexProperties) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.stages[name]; ok {
		return graph.ErrVertexAlreadyExists
	}

	s.stages[name] = value
	s.stageProperties[name] = &properties

	return nil
}

// UpdateVertex applies the options to the stored properties of the stage.
// Unknown stages are ignored.
func (s *MemoryStore) UpdateVertex(name string, options ...func(*graph.VertexProperties)) {
	s.lock.Lock()
	defer s.lock.Unlock()

	properties, ok := s.stageProperties[name]
	if !ok {
		return
	}

	for _, option := range options {
		option(properties)
	}
}

func (s *MemoryStore) ListVertices() ([]string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	names := make([]string, 0, len(s.stages))
	for name := range s.stages {
		names = append(names, name)
	}

	return names, nil
}

func (s *MemoryStore) VertexCount() (int, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.stages), nil
}

func (s *MemoryStore) Vertex(name string) (string, graph.VertexProperties, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	value, ok := s.stages[name]
	if !ok {
		return value, graph.VertexProperties{}, graph.ErrVertexNotFound
	}

	return value, *s.stageProperties[name], nil
}

func (s *MemoryStore) RemoveVertex(name string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.stages[name]; !ok {
		return graph.ErrVertexNotFound
	}

	if edges, ok := s.inEdges[name]; ok {
		if len(edges) > 0 {
			return graph.ErrVertexHasEdges
		}
		delete(s.inEdges, name)
	}

	if edges, ok := s.outEdges[name]; ok {
		if len(edges) > 0 {
			return graph.ErrVertexHasEdges
		}
		delete(s.outEdges, name)
	}

	delete(s.stages, name)
	delete(s.stageProperties, name)

	return nil
}

func (s *MemoryStore) AddEdge(source, target string, edge graph.Edge[string]) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.outEdges[source]; !ok {
		s.outEdges[source] = make(map[string]graph.Edge[string])
	}

	s.outEdges[source][target] = edge

	if _, ok := s.inEdges[target]; !ok {
		s.inEdges[target] = make(map[string]graph.Edge[string])
	}

	s.inEdges[target][source] = edge

	return nil
}

func (s *MemoryStore) UpdateEdge(source, target string, edge graph.Edge[string]) error {
	if _, err := s.Edge(source, target); err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.outEdges[source][target] = edge
	s.inEdges[target][source] = edge

	return nil
}

func (s *MemoryStore) RemoveEdge(source, target string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	delete(s.inEdges[target], source)
	delete(s.outEdges[source], target)

	return nil
}

func (s *MemoryStore) Edge(source, target string) (graph.Edge[string], error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	sourceEdges, ok := s.outEdges[source]
	if !ok {
		return graph.Edge[string]{}, graph.ErrEdgeNotFound
	}

	edge, ok := sourceEdges[target]
	if !ok {
		return graph.Edge[string]{}, graph.ErrEdgeNotFound
	}

	return edge, nil
}

func (s *MemoryStore) ListEdges() ([]graph.Edge[string], error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	edges := make([]graph.Edge[string], 0)
	for _, targets := range s.outEdges {
		for _, edge := range targets {
			edges = append(edges, edge)
		}
	}

	return edges, nil
}
