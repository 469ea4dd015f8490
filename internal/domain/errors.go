package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("utilizador não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está registado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado actual")

	// ErrDocumentBuild é o único erro terminal da geração de recibos: a
	// incapacidade de construir o documento em si. Tudo o resto degrada
	// para omissões ou valores por omissão.
	ErrDocumentBuild = errors.New("falha na construção do documento")
)
