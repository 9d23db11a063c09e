package graph

// Matrix is a dense N x N table of relationship kinds between the analysed classes,
// indexed by the position of each class in the analysed set.
type Matrix struct {
	names   []string
	index   map[string]int
	entries []RelationshipKind // row-major, size*size
	size    int
}

// NewMatrix creates an all-NONE matrix over the given class names.
// Duplicate names keep their first position.
func NewMatrix(names []string) *Matrix {
	m := &Matrix{
		names:   make([]string, len(names)),
		index:   make(map[string]int, len(names)),
		entries: make([]RelationshipKind, len(names)*len(names)),
		size:    len(names),
	}
	copy(m.names, names)
	for i, name := range names {
		if _, exists := m.index[name]; !exists {
			m.index[name] = i
		}
	}
	return m
}

func (m *Matrix) Size() int {
	return m.size
}

// Index returns the position of a class, or -1 when it is not analysed
func (m *Matrix) Index(name string) int {
	if i, ok := m.index[name]; ok {
		return i
	}
	return -1
}

// Name returns the class name at position i
func (m *Matrix) Name(i int) string {
	return m.names[i]
}

func (m *Matrix) Contains(name string) bool {
	_, ok := m.index[name]
	return ok
}

// Get returns the relationship from one class to another. Unknown names yield NONE.
func (m *Matrix) Get(from, to string) RelationshipKind {
	i, ok := m.index[from]
	if !ok {
		return NONE
	}
	j, ok := m.index[to]
	if !ok {
		return NONE
	}
	return m.At(i, j)
}

// At returns the relationship between two positions without name lookups
func (m *Matrix) At(i, j int) RelationshipKind {
	return m.entries[i*m.size+j]
}

// set records a relationship. Self pairs and unknown names are ignored.
func (m *Matrix) set(from, to string, kind RelationshipKind) bool {
	i, ok := m.index[from]
	if !ok {
		return false
	}
	j, ok := m.index[to]
	if !ok || i == j {
		return false
	}
	m.entries[i*m.size+j] = kind
	return true
}

// Edge is one non-NONE matrix entry
type Edge struct {
	From string           `json:"from"`
	To   string           `json:"to"`
	Kind RelationshipKind `json:"kind"`
}

// Edges lists every non-NONE entry in row-major order
func (m *Matrix) Edges() []Edge {
	var edges []Edge
	for i := 0; i < m.size; i++ {
		for j := 0; j < m.size; j++ {
			if kind := m.At(i, j); kind != NONE {
				edges = append(edges, Edge{From: m.names[i], To: m.names[j], Kind: kind})
			}
		}
	}
	return edges
}

// Outgoing lists the non-NONE relationships starting at the named class
func (m *Matrix) Outgoing(name string) []Edge {
	i := m.Index(name)
	if i < 0 {
		return nil
	}
	var edges []Edge
	for j := 0; j < m.size; j++ {
		if kind := m.At(i, j); kind != NONE {
			edges = append(edges, Edge{From: name, To: m.names[j], Kind: kind})
		}
	}
	return edges
}
