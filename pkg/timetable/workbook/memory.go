package workbook

type cellKey struct {
	row, col int
}

// MemorySheet is a sheet held entirely in memory.
type MemorySheet struct {
	name  string
	cells map[cellKey]Value
}

// NewMemorySheet creates an empty sheet.
func NewMemorySheet(name string) *MemorySheet {
	return &MemorySheet{name: name, cells: make(map[cellKey]Value)}
}

// Name returns the sheet name.
func (s *MemorySheet) Name() string { return s.name }

// Set stores v at (row, col). A nil or empty v clears the cell.
func (s *MemorySheet) Set(row, col int, v interface{}) *MemorySheet {
	val := ValueOf(v)
	if val.IsEmpty() {
		delete(s.cells, cellKey{row, col})
		return s
	}
	s.cells[cellKey{row, col}] = val
	return s
}

// Cell returns the value at (row, col).
func (s *MemorySheet) Cell(row, col int) Value {
	return s.cells[cellKey{row, col}]
}

// Memory is a Workbook backed by MemorySheets.
type Memory struct {
	order  []string
	sheets map[string]*MemorySheet
}

// NewMemory creates a workbook from sheets, keeping their order.
func NewMemory(sheets ...*MemorySheet) *Memory {
	m := &Memory{sheets: make(map[string]*MemorySheet)}
	for _, s := range sheets {
		m.Add(s)
	}
	return m
}

// Add appends a sheet, replacing any sheet with the same name.
func (m *Memory) Add(s *MemorySheet) {
	if _, ok := m.sheets[s.name]; !ok {
		m.order = append(m.order, s.name)
	}
	m.sheets[s.name] = s
}

func (m *Memory) SheetNames() []string {
	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

func (m *Memory) Sheet(name string) (Sheet, bool) {
	s, ok := m.sheets[name]
	if !ok {
		return nil, false
	}
	return s, true
}

func (m *Memory) Close() error { return nil }
