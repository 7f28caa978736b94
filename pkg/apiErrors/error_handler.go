package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação
	ErrNotFound         = "VAL_001" // Rota inexistente
	ErrMethodNotAllowed = "VAL_002" // Método não suportado

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrDatabaseOffline   = "SRV_003" // Banco de dados inacessível
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrNotFound:          http.StatusNotFound,
	ErrMethodNotAllowed:  http.StatusMethodNotAllowed,
	ErrInternalServer:    http.StatusInternalServerError,
	ErrDatabaseOperation: http.StatusInternalServerError,
	ErrDatabaseOffline:   http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Detail string `json:"detail"`         // Mensagem legível para o cliente
	Code   string `json:"code,omitempty"` // Código de erro interno
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, detail string) {
	apiErr := APIError{
		Detail: detail,
		Code:   code,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:   ErrInternalServer,
			Detail: "Erro desconhecido",
		}
	}

	return APIError{
		Code:   code,
		Detail: err.Error(),
	}
}
