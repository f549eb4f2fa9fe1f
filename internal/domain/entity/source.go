package entity

// SourceFile é um arquivo de entrada já lido: nome (usado para detectar o formato) e conteúdo bruto.
type SourceFile struct {
	Name     string
	Location string
	Content  []byte
}
