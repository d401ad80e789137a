package envfile

// Entry is one key parsed from a single env file
type Entry struct {
	Key      string
	Value    string // Unquoted value
	HasValue bool   // Value is non-empty
}

// Vars is the parsed content of one env file. A key declared twice keeps the
// position of its first line and the value of its last.
type Vars struct {
	entries []Entry
	index   map[string]int
}

func newVars() *Vars {
	return &Vars{index: make(map[string]int)}
}

func (v *Vars) set(key, value string) {
	entry := Entry{Key: key, Value: value, HasValue: value != ""}
	if i, ok := v.index[key]; ok {
		v.entries[i] = entry
		return
	}
	v.index[key] = len(v.entries)
	v.entries = append(v.entries, entry)
}

// Entries returns the keys in declaration order
func (v *Vars) Entries() []Entry {
	out := make([]Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Get returns the entry for key
func (v *Vars) Get(key string) (Entry, bool) {
	i, ok := v.index[key]
	if !ok {
		return Entry{}, false
	}
	return v.entries[i], true
}

// Len returns the number of distinct keys
func (v *Vars) Len() int {
	return len(v.entries)
}

// Declaration is one variable merged across every env file that declares it
type Declaration struct {
	Name     string
	Value    string   // First non-empty value in file order
	HasValue bool     // True if any file gave a non-empty value
	File     string   // First declaring file
	Sources  []string // Every declaring file, in processing order
}

// Table is the merged view of all env files that were found
type Table struct {
	Files  []string         // Found files, relative to the root, in processing order
	ByFile map[string]*Vars // Parsed content per found file

	order []string
	decls map[string]*Declaration
}

// NewTable returns an empty table
func NewTable() *Table {
	return &Table{
		ByFile: make(map[string]*Vars),
		decls:  make(map[string]*Declaration),
	}
}

// merge adds one file's variables. The first file to declare a key creates
// its record; later files are appended to Sources and only supply the value
// when the record has none yet.
func (t *Table) merge(file string, vars *Vars) {
	t.Files = append(t.Files, file)
	t.ByFile[file] = vars

	for _, e := range vars.entries {
		d, ok := t.decls[e.Key]
		if !ok {
			t.decls[e.Key] = &Declaration{
				Name:     e.Key,
				Value:    e.Value,
				HasValue: e.HasValue,
				File:     file,
				Sources:  []string{file},
			}
			t.order = append(t.order, e.Key)
			continue
		}

		d.Sources = append(d.Sources, file)
		if e.HasValue && !d.HasValue {
			d.Value = e.Value
			d.HasValue = true
		}
	}
}

// Names returns declared variable names in first-declaration order
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Lookup returns the merged declaration for name
func (t *Table) Lookup(name string) (Declaration, bool) {
	d, ok := t.decls[name]
	if !ok {
		return Declaration{}, false
	}
	return copyDeclaration(d), true
}

// Declarations returns all merged declarations in first-declaration order
func (t *Table) Declarations() []Declaration {
	out := make([]Declaration, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, copyDeclaration(t.decls[name]))
	}
	return out
}

// Len returns the number of distinct declared variables
func (t *Table) Len() int {
	return len(t.order)
}

func copyDeclaration(d *Declaration) Declaration {
	c := *d
	c.Sources = append([]string(nil), d.Sources...)
	return c
}
