package repository

import (
	"database/sql"
	"testing"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		notYetSeeded bool
	}{
		{"Tabela inexistente", &pq.Error{Code: "42P01"}, true},
		{"Schema inexistente", &pq.Error{Code: "3F000"}, true},
		{"Tabela inexistente embrulhada", errors.Wrap(&pq.Error{Code: "42P01"}, "scan"), true},
		{"Erro de sintaxe", &pq.Error{Code: "42601"}, false},
		{"Conexão recusada", sql.ErrConnDone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyError("op", tt.err)

			assert.Error(t, err)
			assert.Equal(t, tt.notYetSeeded, errors.Is(err, ErrNotYetSeeded))
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.NoError(t, classifyError("op", nil))
}
