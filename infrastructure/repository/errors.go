package repository

import (
	"fmt"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// ErrNotYetSeeded indica que as tabelas consultadas ainda não foram criadas pela carga de dados
var ErrNotYetSeeded = errors.New("tabelas de analytics ainda não provisionadas")

// Códigos SQLSTATE tratados como schema ainda não provisionado
var notYetSeededCodes = map[pq.ErrorCode]struct{}{
	"42P01": {}, // undefined_table
	"3F000": {}, // invalid_schema_name
}

// SchemaError envolve um erro do Postgres causado por relação inexistente
type SchemaError struct {
	Op  string
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrNotYetSeeded
}

func classifyError(op string, err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if _, ok := notYetSeededCodes[pqErr.Code]; ok {
			return &SchemaError{Op: op, Err: err}
		}
	}

	return errors.Wrap(err, op)
}
