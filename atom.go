package tagsoup

func NewNameTable() *NameTable {
	return &NameTable{atoms: make(map[string]*Atom)}
}

// Add interns s.
func (t *NameTable) Add(s string) *Atom {
	if a, ok := t.atoms[s]; ok {
		return a
	}
	a := &Atom{s: s}
	t.atoms[s] = a
	return a
}

// Get returns the atom for s, or nil if s was never added.
func (t *NameTable) Get(s string) *Atom {
	return t.atoms[s]
}

func (t *NameTable) Len() int {
	return len(t.atoms)
}

func (a *Atom) String() string {
	if a == nil {
		return ""
	}
	return a.s
}
