package client

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

// Mirror caches one backend collection. Different deployments of the
// backend have wrapped list responses differently over time, so Load
// tolerates three shapes: {"services": [...]}, {"data": [...]}, and a bare
// array. Anything else is treated as an empty collection and logged, not
// surfaced as an error.
type Mirror[T any] struct {
	c    *Client
	path string
	id   func(T) int64

	mu    sync.Mutex
	items []T
}

func NewMirror[T any](c *Client, path string, id func(T) int64) *Mirror[T] {
	return &Mirror[T]{c: c, path: path, id: id, items: []T{}}
}

// Items returns the collection as of the last successful load or mutation.
func (m *Mirror[T]) Items() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

func (m *Mirror[T]) Load(ctx context.Context) error {
	var raw json.RawMessage
	if err := m.c.do(ctx, http.MethodGet, m.path, nil, &raw); err != nil {
		return err
	}

	items, ok := normalizeList[T](raw)
	if !ok {
		zap.S().Warnw("catalog response is not a list", "path", m.path)
	}
	m.replace(items)
	return nil
}

// Add posts the record. When the backend echoes the refreshed full
// collection the mirror adopts it; when it returns the single created
// record the mirror appends.
func (m *Mirror[T]) Add(ctx context.Context, record any) error {
	var raw json.RawMessage
	if err := m.c.do(ctx, http.MethodPost, m.path, record, &raw); err != nil {
		return err
	}

	if items, ok := normalizeList[T](raw); ok {
		m.replace(items)
		return nil
	}

	var one T
	if err := json.Unmarshal(raw, &one); err != nil {
		// response shape unknown; fall back to a full reload
		return m.Load(ctx)
	}
	m.mu.Lock()
	m.items = append(m.items, one)
	m.mu.Unlock()
	return nil
}

// Update PUTs a partial record, then re-fetches the whole collection.
// Patching locally can drift from server-derived fields, so the reload is
// the contract here.
func (m *Mirror[T]) Update(ctx context.Context, id int64, partial any) error {
	path := m.path + "/" + strconv.FormatInt(id, 10)
	if err := m.c.do(ctx, http.MethodPut, path, partial, nil); err != nil {
		return err
	}
	return m.Load(ctx)
}

// Remove deletes on the server, then filters the id out locally.
func (m *Mirror[T]) Remove(ctx context.Context, id int64) error {
	path := m.path + "/" + strconv.FormatInt(id, 10)
	if err := m.c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}

	m.mu.Lock()
	kept := m.items[:0]
	for _, it := range m.items {
		if m.id(it) != id {
			kept = append(kept, it)
		}
	}
	m.items = kept
	m.mu.Unlock()
	return nil
}

// SortBy orders the cached collection in place, used by layout lists that
// must render in ascending display order.
func (m *Mirror[T]) SortBy(less func(a, b T) bool) {
	m.mu.Lock()
	sort.SliceStable(m.items, func(i, j int) bool { return less(m.items[i], m.items[j]) })
	m.mu.Unlock()
}

func (m *Mirror[T]) replace(items []T) {
	if items == nil {
		items = []T{}
	}
	m.mu.Lock()
	m.items = items
	m.mu.Unlock()
}

// normalizeList tries the known list shapes in order.
func normalizeList[T any](raw json.RawMessage) ([]T, bool) {
	var direct []T
	if err := json.Unmarshal(raw, &direct); err == nil {
		return direct, true
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return []T{}, false
	}
	for _, key := range []string{"services", "data", "items"} {
		inner, ok := wrapped[key]
		if !ok {
			continue
		}
		var list []T
		if err := json.Unmarshal(inner, &list); err == nil {
			return list, true
		}
	}
	return []T{}, false
}

