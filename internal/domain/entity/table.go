package entity

import "encoding/json"

// Cell é o valor de uma célula de tabela. Valid=false representa um valor ausente (NULL).
type Cell struct {
	Value string
	Valid bool
}

// Text cria uma célula preenchida.
func Text(value string) Cell {
	return Cell{Value: value, Valid: true}
}

// Null cria uma célula ausente.
func Null() Cell {
	return Cell{}
}

// String devolve o texto da célula, ou "" quando ausente.
func (c Cell) String() string {
	if !c.Valid {
		return ""
	}
	return c.Value
}

// MarshalJSON serializa células ausentes como null.
func (c Cell) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

// Row é uma linha de tabela, alinhada com Table.Columns.
type Row []Cell

// Table é uma tabela em memória com colunas ordenadas.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// NewTable cria uma tabela vazia com as colunas informadas.
func NewTable(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols, Rows: []Row{}}
}

// ColumnIndex retorna a posição da coluna pelo nome exato, ou -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn informa se a tabela possui a coluna.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Len retorna o número de linhas.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// AppendRow adiciona uma linha ajustando-a à largura da tabela.
func (t *Table) AppendRow(row Row) {
	t.Rows = append(t.Rows, fitRow(row, len(t.Columns)))
}

// Value retorna a célula (linha, coluna); fora dos limites devolve NULL.
func (t *Table) Value(row, col int) Cell {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return Null()
	}
	return t.Rows[row][col]
}

// Clone faz uma cópia profunda da tabela.
func (t *Table) Clone() *Table {
	out := NewTable(t.Columns)
	out.Rows = make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		cp := make(Row, len(r))
		copy(cp, r)
		out.Rows[i] = cp
	}
	return out
}

// Strings converte a linha em strings, com células ausentes vazias.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.String()
	}
	return out
}

func fitRow(row Row, width int) Row {
	if len(row) == width {
		return row
	}
	out := make(Row, width)
	copy(out, row)
	return out
}
