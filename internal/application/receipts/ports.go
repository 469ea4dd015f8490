package receipts

import (
	"context"
	"errors"

	"github.com/kitadi/kitadi-pos/internal/domain/entity"
	"github.com/kitadi/kitadi-pos/internal/domain/receipt"
)

// ErrShareUnavailable indica que o destino de saída não tem mecanismo de
// partilha configurado. Não é um erro terminal: o caso de uso degrada para
// download e reporta o fallback.
var ErrShareUnavailable = errors.New("partilha indisponível na plataforma")

// Document documento vectorial gerado, pronto a serializar ou persistir.
type Document interface {
	Bytes() ([]byte, error)
	SaveTo(path string) error
}

// PDFGenerator renderiza o recibo paginado/vectorial de uma venda.
// Recebe sempre um perfil já resolvido (nunca entradas opcionais em bruto).
type PDFGenerator interface {
	Generate(ctx context.Context, sale *entity.Sale, cfg receipt.Config) (Document, error)
}

// ThermalRenderer renderiza o recibo de largura fixa (32 colunas).
type ThermalRenderer interface {
	Render(sale *entity.Sale, cfg receipt.Config) string
}

// Sink destino de saída dos documentos gerados. Isola o motor de layout da
// plataforma de I/O: uma implementação por alvo (disco, spool de impressão,
// serviço de partilha).
type Sink interface {
	// Persist grava os bytes com o nome de ficheiro dado.
	Persist(data []byte, filename string) error
	// Present envia o texto ao mecanismo de impressão. A recusa do
	// utilizador no diálogo de impressão não é um erro.
	Present(ctx context.Context, text string) error
	// Share entrega o documento ao mecanismo de partilha da plataforma.
	// Devolve ErrShareUnavailable quando não existe mecanismo configurado.
	Share(ctx context.Context, data []byte, filename, caption string) error
}
