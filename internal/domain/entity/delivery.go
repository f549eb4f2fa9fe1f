package entity

// Colunas fixas do arquivo de entregas (sem cabeçalho, posicional).
const (
	ColData        = "Data"
	ColPedido      = "N_Pedido"
	ColNotaFiscal  = "N_NF"
	ColTV          = "TV"
	ColCarga       = "N_Car"
	ColPosicao     = "pos"
	ColCodigo      = "Código"
	ColCliente     = "Cliente"
	ColCidade      = "Cidade"
	ColPraca       = "Praca"
	ColRCA         = "RCA"
	ColVlrAtendido = "Vlr_Atendido"
	ColPesoTotal   = "Peso_Total"
)

// DeliveryColumns é o esquema das entregas, na ordem em que aparecem no arquivo.
var DeliveryColumns = []string{
	ColData, ColPedido, ColNotaFiscal, ColTV, ColCarga, ColPosicao, ColCodigo,
	ColCliente, ColCidade, ColPraca, ColRCA, ColVlrAtendido, ColPesoTotal,
}

// DefaultRegionColumn é a coluna de região consumida pelos filtros e pelo resumo.
const DefaultRegionColumn = "Região"

// MunicipalityAliases são os nomes normalizados aceitos para a coluna de município.
var MunicipalityAliases = []string{"MUNICIPIO", "MUNICIPIOS", "CIDADE", "CIDADES"}
