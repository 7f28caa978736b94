package domain

type ResultStatus string

const (
	ResultOK                ResultStatus = "ok"
	ResultNotYetSeeded      ResultStatus = "not_yet_seeded"
	ResultConnectivityError ResultStatus = "connectivity_error"
)

// Result carrega o desfecho de uma consulta do façade sem depender de
// inspeção de erro no handler: Ok, tabelas ainda não provisionadas ou falha de infraestrutura.
type Result[T any] struct {
	Status ResultStatus
	Data   T
	Err    error
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Status: ResultOK, Data: data}
}

func NotYetSeeded[T any](err error) Result[T] {
	return Result[T]{Status: ResultNotYetSeeded, Err: err}
}

func ConnectivityError[T any](err error) Result[T] {
	return Result[T]{Status: ResultConnectivityError, Err: err}
}

// Message retorna a mensagem do erro subjacente, vazia quando Ok
func (r Result[T]) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
