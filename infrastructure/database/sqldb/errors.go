package sqldb

import "fmt"

// ConnectivityError indica que a fonte de dados não conseguiu alcançar o banco
// ou executar a consulta. Não é tratado pelo núcleo: sobe até o chamador.
type ConnectivityError struct {
	Op  string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("falha de conectividade (%s): %v", e.Op, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}
