package passimages

import "fmt"

// Option configures a Store.
type Option func(*Store)

// WithVocabulary sets the roles and densities a Store accepts.
// Panics if v is nil (programmer error).
func WithVocabulary(v *Vocabulary) Option {
	if v == nil {
		panic("passimages: WithVocabulary vocabulary must not be nil")
	}
	return func(s *Store) {
		s.vocab = v
	}
}

// Entry is one present (role, density) pair and its path.
type Entry struct {
	Role    Role    `yaml:"role"`
	Density Density `yaml:"density"`
	Path    string  `yaml:"path"`
}

// Store maps (role, density) pairs to file paths.
//
// Every key is validated against the store's Vocabulary, so a traversal of
// the store never yields an unknown role or density. An unset pair is
// reported as absent rather than as an empty path. Entries are never
// removed; the last Set for a pair wins.
//
// A Store is not safe for concurrent mutation; give each pass its own.
type Store struct {
	vocab  *Vocabulary
	images map[Role]map[Density]string
}

// NewStore creates an empty Store. Without options it accepts the default
// vocabulary (see DefaultVocabulary).
func NewStore(opts ...Option) *Store {
	s := &Store{
		images: make(map[Role]map[Density]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.vocab == nil {
		s.vocab = DefaultVocabulary()
	}
	return s
}

// Vocabulary returns the roles and densities this store accepts.
func (s *Store) Vocabulary() *Vocabulary {
	return s.vocab
}

// Get returns the path stored for role at density. An empty density means
// BaseDensity. When nothing was set, ok is false and err is nil; there is no
// fallback to another density or role.
// Returns ErrInvalidRole or ErrInvalidDensity for keys outside the vocabulary.
func (s *Store) Get(role Role, density Density) (path string, ok bool, err error) {
	density, err = s.validate(role, density)
	if err != nil {
		return "", false, err
	}
	path, ok = s.images[role][density]
	return path, ok, nil
}

// Set stores path for role at density, replacing any previous value.
// An empty density means BaseDensity. The path itself is not checked.
// Returns ErrInvalidRole or ErrInvalidDensity for keys outside the vocabulary.
func (s *Store) Set(role Role, density Density, path string) error {
	density, err := s.validate(role, density)
	if err != nil {
		return err
	}
	byDensity, ok := s.images[role]
	if !ok {
		byDensity = make(map[Density]string, len(s.vocab.densities))
		s.images[role] = byDensity
	}
	byDensity[density] = path
	return nil
}

// Len returns the number of present entries.
func (s *Store) Len() int {
	n := 0
	for _, byDensity := range s.images {
		n += len(byDensity)
	}
	return n
}

// Entries returns a snapshot of the present entries, ordered by the
// vocabulary's role order and then density order.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, 0, s.Len())
	for _, r := range s.vocab.roles {
		byDensity, ok := s.images[r]
		if !ok {
			continue
		}
		for _, d := range s.vocab.densities {
			if p, ok := byDensity[d]; ok {
				entries = append(entries, Entry{Role: r, Density: d, Path: p})
			}
		}
	}
	return entries
}

// LoadFromDirectory scans dir and registers every asset it recognizes.
// See DirectoryLoader.LoadFromDirectory.
func (s *Store) LoadFromDirectory(dir string) (*Store, error) {
	return NewDirectoryLoader(s).LoadFromDirectory(dir)
}

// validate checks role first, then the normalized density.
func (s *Store) validate(role Role, density Density) (Density, error) {
	if !s.vocab.HasRole(role) {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	density = s.vocab.normalize(density)
	if !s.vocab.HasDensity(density) {
		return "", fmt.Errorf("%w: %q for role %q", ErrInvalidDensity, density, role)
	}
	return density, nil
}
