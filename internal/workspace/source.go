package workspace

import "sync"

// Source enumerates the currently open workspace folders and notifies
// subscribers when the folder set changes. Notifications carry no payload;
// consumers re-enumerate with Folders on receipt.
type Source interface {
	Folders() []Folder
	Subscribe(fn func()) (cancel func())
}

// DirSource is a Source backed by an explicit list of directories. The CLI
// seeds it from --dir flags (or the detected project root) and mutates it
// when the user opens or closes folders; every mutation fires one
// notification.
type DirSource struct {
	mu      sync.Mutex
	folders []Folder
	subs    map[int]func()
	nextID  int
}

// NewDirSource creates a DirSource holding one Folder per path, in order.
func NewDirSource(paths ...string) *DirSource {
	s := &DirSource{subs: make(map[int]func())}
	for _, p := range paths {
		s.folders = append(s.folders, NewFolder(p))
	}
	return s
}

// Folders returns a copy of the current folder set in discovery order.
func (s *DirSource) Folders() []Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Folder, len(s.folders))
	copy(out, s.folders)
	return out
}

// SetFolders replaces the entire folder set and fires one notification.
func (s *DirSource) SetFolders(paths ...string) {
	s.mu.Lock()
	s.folders = s.folders[:0]
	for _, p := range paths {
		s.folders = append(s.folders, NewFolder(p))
	}
	subs := s.snapshotSubs()
	s.mu.Unlock()
	notify(subs)
}

// Add appends one folder and fires one notification.
func (s *DirSource) Add(path string) {
	s.mu.Lock()
	s.folders = append(s.folders, NewFolder(path))
	subs := s.snapshotSubs()
	s.mu.Unlock()
	notify(subs)
}

// Remove drops the folder with the given path, if present, and fires one
// notification. Removing an absent folder still counts as a mutation.
func (s *DirSource) Remove(path string) {
	target := NewFolder(path)
	s.mu.Lock()
	kept := s.folders[:0]
	for _, f := range s.folders {
		if !f.Equal(target) {
			kept = append(kept, f)
		}
	}
	s.folders = kept
	subs := s.snapshotSubs()
	s.mu.Unlock()
	notify(subs)
}

// Subscribe registers a no-payload change callback. The returned cancel
// function removes the subscription and is safe to call more than once.
func (s *DirSource) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// snapshotSubs must be called with the mutex held.
func (s *DirSource) snapshotSubs() []func() {
	out := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
