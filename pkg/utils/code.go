package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	CodeLength = 12
)

// GenerateCode gera um código externo no formato PREFIX-xxxxxxxxxxxx.
// Sem prefixo, devolve apenas o identificador.
func GenerateCode(prefix string) (string, error) {
	id, err := gonanoid.Generate(characters, CodeLength)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar código: %w", err)
	}

	if prefix == "" {
		return id, nil
	}

	return prefix + "-" + id, nil
}
