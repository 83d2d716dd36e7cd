package preferences

import (
	"context"
	"sync"

	"github.com/frckit/pitcrew/internal/workspace"
)

// Picker presents a single-select list and returns the chosen item. The
// second return is false when the user dismissed the picker; dismissal is an
// absent result, never an error.
type Picker interface {
	Pick(ctx context.Context, items []string, placeholder string) (string, bool, error)
}

// Pair associates a Store with the folder it was built for. Change events
// carry the complete new set of pairs.
type Pair struct {
	Store  *Store
	Folder workspace.Folder
}

// ChangeEvent is emitted once per folder-set mutation after the registry has
// rebuilt every store. Store references held from before the event are
// invalid; consumers must re-fetch via Preferences.
type ChangeEvent struct {
	Pairs []Pair
}

// Registry owns one Store per open workspace folder. On every folder-set
// change it closes all existing stores, rebuilds the collection from scratch,
// and emits a single ChangeEvent with the new set. There is no incremental
// diffing: a full rebuild keeps the invariant simple under concurrent folder
// operations.
type Registry struct {
	source workspace.Source
	picker Picker

	mu          sync.RWMutex
	stores      []*Store
	subs        map[int]func(ChangeEvent)
	nextID      int
	unsubscribe func()
}

// NewRegistry enumerates the source's current folders, builds one Store per
// folder, and subscribes to folder-set changes. The returned registry is
// fully initialized; there is no separate initialization step to forget.
func NewRegistry(source workspace.Source, picker Picker) *Registry {
	r := &Registry{
		source: source,
		picker: picker,
		subs:   make(map[int]func(ChangeEvent)),
	}
	r.mu.Lock()
	r.stores = buildStores(source.Folders())
	r.mu.Unlock()
	r.unsubscribe = source.Subscribe(r.handleFolderChange)
	return r
}

func buildStores(folders []workspace.Folder) []*Store {
	stores := make([]*Store, 0, len(folders))
	for _, f := range folders {
		stores = append(stores, LoadStore(f))
	}
	return stores
}

// handleFolderChange tears down every store and rebuilds from the source's
// current folder set, then emits exactly one ChangeEvent.
func (r *Registry) handleFolderChange() {
	folders := r.source.Folders()

	r.mu.Lock()
	for _, s := range r.stores {
		s.Close()
	}
	r.stores = buildStores(folders)
	pairs := make([]Pair, 0, len(r.stores))
	for _, s := range r.stores {
		pairs = append(pairs, Pair{Store: s, Folder: s.Folder()})
	}
	subs := make([]func(ChangeEvent), 0, len(r.subs))
	for _, fn := range r.subs {
		subs = append(subs, fn)
	}
	r.mu.Unlock()

	event := ChangeEvent{Pairs: pairs}
	for _, fn := range subs {
		fn(event)
	}
}

// Preferences returns the store for the given folder. When no store matches
// the folder's identity it falls back to the first store in the current
// sequence; with no stores at all it returns nil and the caller must treat
// that as "use defaults".
//
// TODO: decide whether the first-store fallback masks folder-mismatch bugs;
// it is kept because callers rely on it for single-folder sessions.
func (r *Registry) Preferences(folder workspace.Folder) *Store {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.stores {
		if s.Folder().Equal(folder) {
			return s
		}
	}
	if len(r.stores) > 0 {
		return r.stores[0]
	}
	return nil
}

// FirstOrSelectedWorkspace resolves the workspace folder a command should
// act on. Zero open folders yields ok=false with no prompt; exactly one is
// returned directly; with two or more the user picks, and dismissing the
// picker yields ok=false.
func (r *Registry) FirstOrSelectedWorkspace(ctx context.Context) (workspace.Folder, bool, error) {
	folders := r.source.Folders()
	switch len(folders) {
	case 0:
		return workspace.Folder{}, false, nil
	case 1:
		return folders[0], true, nil
	}

	names := make([]string, len(folders))
	for i, f := range folders {
		names[i] = f.String()
	}
	chosen, ok, err := r.picker.Pick(ctx, names, "Select a workspace folder")
	if err != nil {
		return workspace.Folder{}, false, err
	}
	if !ok {
		return workspace.Folder{}, false, nil
	}
	for i, name := range names {
		if name == chosen {
			return folders[i], true, nil
		}
	}
	return workspace.Folder{}, false, nil
}

// OnChange registers a callback for folder-set change events. The returned
// cancel function removes the subscription.
func (r *Registry) OnChange(fn func(ChangeEvent)) (cancel func()) {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.subs[id] = fn
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

// Close unsubscribes from the folder source and closes every store. Closing
// twice re-closes the stores, which is safe because store close is
// idempotent.
func (r *Registry) Close() error {
	if r.unsubscribe != nil {
		r.unsubscribe()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.stores {
		s.Close()
	}
	r.subs = make(map[int]func(ChangeEvent))
	return nil
}
