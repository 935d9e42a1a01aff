package domain

import (
	"errors"
	"fmt"
)

// Erros fatais do pipeline. Ambos abortam a execução inteira: a tabela mart
// anterior permanece intacta até uma execução terminar com sucesso.
var (
	// ErrMalformedDate indica um token de event_date que não é YYYY-MM-DD
	ErrMalformedDate = errors.New("token de event_date inválido")

	// ErrSchemaMismatch indica uma coleção raw sem um campo esperado
	ErrSchemaMismatch = errors.New("schema da coleção raw incompatível")
)

// ErrPipelineRunning indica que já existe uma execução do pipeline em
// andamento. A tabela mart tem um único escritor por vez.
var ErrPipelineRunning = errors.New("execução do pipeline já em andamento")

// MalformedDateError carrega o token rejeitado e a tabela de origem.
// Não existe política de skip ou data default: qualquer token inválido
// derruba a execução.
type MalformedDateError struct {
	Table string
	Value string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("event_date inválido em %s: %q (esperado YYYY-MM-DD)", e.Table, e.Value)
}

func (e *MalformedDateError) Unwrap() error {
	return ErrMalformedDate
}

// SchemaMismatchError carrega a tabela e a coluna ausente
type SchemaMismatchError struct {
	Table  string
	Column string
}

func (e *SchemaMismatchError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("coluna %q ausente em %s", e.Column, e.Table)
	}
	return fmt.Sprintf("schema incompatível em %s", e.Table)
}

func (e *SchemaMismatchError) Unwrap() error {
	return ErrSchemaMismatch
}
