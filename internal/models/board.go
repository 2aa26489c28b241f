package models

// BoardData is the persisted shape of one project: its ordered columns and
// its ordered tasks.
type BoardData struct {
	Columns []Column `json:"columns"`
	Tasks   []Task   `json:"tasks"`
}

// Clone returns a deep copy of the board data.
func (b BoardData) Clone() BoardData {
	out := BoardData{
		Columns: make([]Column, len(b.Columns)),
		Tasks:   make([]Task, len(b.Tasks)),
	}
	copy(out.Columns, b.Columns)
	copy(out.Tasks, b.Tasks)
	return out
}
