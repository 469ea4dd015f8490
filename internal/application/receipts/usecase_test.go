package receipts_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitadi/kitadi-pos/internal/application/receipts"
	"github.com/kitadi/kitadi-pos/internal/domain"
	"github.com/kitadi/kitadi-pos/internal/domain/entity"
	"github.com/kitadi/kitadi-pos/internal/domain/receipt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
}

func (r *fakeSaleRepo) Create(*entity.Sale) error { return nil }
func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.sales[id], nil
}
func (r *fakeSaleRepo) ListByCompany(string, int, int) ([]*entity.Sale, error) {
	return nil, nil
}

type fakeProfileRepo struct {
	profile *receipt.Config
	err     error
}

func (r *fakeProfileRepo) GetByCompany(string) (*receipt.Config, error) {
	return r.profile, r.err
}
func (r *fakeProfileRepo) Upsert(string, *receipt.Config) error { return nil }

type fakeDocument struct {
	data []byte
	err  error
}

func (d *fakeDocument) Bytes() ([]byte, error) { return d.data, d.err }
func (d *fakeDocument) SaveTo(string) error    { return nil }

type fakePDF struct {
	doc     *fakeDocument
	err     error
	lastCfg receipt.Config
}

func (g *fakePDF) Generate(_ context.Context, _ *entity.Sale, cfg receipt.Config) (receipts.Document, error) {
	g.lastCfg = cfg
	if g.err != nil {
		return nil, g.err
	}
	return g.doc, nil
}

type fakeThermal struct{ out string }

func (f *fakeThermal) Render(*entity.Sale, receipt.Config) string { return f.out }

type fakeSink struct {
	persisted map[string][]byte
	presented []string
	shared    map[string][]byte
	shareErr  error
}

func newFakeSink() *fakeSink {
	return &fakeSink{persisted: map[string][]byte{}, shared: map[string][]byte{}}
}

func (s *fakeSink) Persist(data []byte, filename string) error {
	s.persisted[filename] = data
	return nil
}

func (s *fakeSink) Present(_ context.Context, text string) error {
	s.presented = append(s.presented, text)
	return nil
}

func (s *fakeSink) Share(_ context.Context, data []byte, filename, _ string) error {
	if s.shareErr != nil {
		return s.shareErr
	}
	s.shared[filename] = data
	return nil
}

func buildUseCase(sale *entity.Sale) (*receipts.UseCase, *fakePDF, *fakeSink) {
	repo := &fakeSaleRepo{sales: map[string]*entity.Sale{}}
	if sale != nil {
		repo.sales[sale.ID] = sale
	}
	pdf := &fakePDF{doc: &fakeDocument{data: []byte("%PDF-fake")}}
	sink := newFakeSink()
	uc := receipts.NewUseCase(repo, &fakeProfileRepo{}, pdf, &fakeThermal{out: "RECIBO"}, sink)
	return uc, pdf, sink
}

func testSale() *entity.Sale {
	return &entity.Sale{ID: "a1b2c3d4e5", CompanyID: "loja-1"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Operações
// ──────────────────────────────────────────────────────────────────────────────

func TestDownload_DevolveBytesENomeDeFicheiro(t *testing.T) {
	uc, _, _ := buildUseCase(testSale())

	data, filename, err := uc.Download(context.Background(), "loja-1", "a1b2c3d4e5")

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), data)
	assert.Equal(t, "receipt-sale-a1b2c3d4e5.pdf", filename)
}

func TestDownload_VendaInexistente(t *testing.T) {
	uc, _, _ := buildUseCase(nil)

	_, _, err := uc.Download(context.Background(), "loja-1", "nao-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownload_VendaDeOutraLoja(t *testing.T) {
	uc, _, _ := buildUseCase(testSale())

	_, _, err := uc.Download(context.Background(), "loja-2", "a1b2c3d4e5")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDownload_FalhaDoGeradorViraErrDocumentBuild(t *testing.T) {
	uc, pdf, _ := buildUseCase(testSale())
	pdf.err = errors.New("sem memória para o canvas")

	_, _, err := uc.Download(context.Background(), "loja-1", "a1b2c3d4e5")

	assert.ErrorIs(t, err, domain.ErrDocumentBuild)
}

func TestDownload_FalhaDeSerializacaoViraErrDocumentBuild(t *testing.T) {
	uc, pdf, _ := buildUseCase(testSale())
	pdf.doc = &fakeDocument{err: errors.New("buffer corrompido")}

	_, _, err := uc.Download(context.Background(), "loja-1", "a1b2c3d4e5")

	assert.ErrorIs(t, err, domain.ErrDocumentBuild)
}

func TestPrint_EnviaTextoTermicoAoSink(t *testing.T) {
	uc, _, sink := buildUseCase(testSale())

	err := uc.Print(context.Background(), "loja-1", "a1b2c3d4e5")

	require.NoError(t, err)
	require.Len(t, sink.presented, 1)
	assert.Equal(t, "RECIBO", sink.presented[0])
}

func TestThermalDownload_TextoENomeDeFicheiro(t *testing.T) {
	uc, _, _ := buildUseCase(testSale())

	text, filename, err := uc.ThermalDownload(context.Background(), "loja-1", "a1b2c3d4e5")

	require.NoError(t, err)
	assert.Equal(t, "RECIBO", text)
	assert.Equal(t, "receipt-thermal-a1b2c3d4e5.txt", filename)
}

func TestShare_ComPartilhaDisponivel(t *testing.T) {
	uc, _, sink := buildUseCase(testSale())

	fellBack, filename, err := uc.Share(context.Background(), "loja-1", "a1b2c3d4e5")

	require.NoError(t, err)
	assert.False(t, fellBack)
	assert.Contains(t, sink.shared, filename)
	assert.Empty(t, sink.persisted, "sem fallback não deve haver download")
}

func TestShare_IndisponivelFazFallbackParaDownload(t *testing.T) {
	uc, _, sink := buildUseCase(testSale())
	sink.shareErr = receipts.ErrShareUnavailable

	fellBack, filename, err := uc.Share(context.Background(), "loja-1", "a1b2c3d4e5")

	require.NoError(t, err, "o fallback é um resultado, não uma excepção")
	assert.True(t, fellBack)
	assert.Contains(t, sink.persisted, filename)
}

func TestShare_ErroRealDePartilhaPropaga(t *testing.T) {
	uc, _, sink := buildUseCase(testSale())
	sink.shareErr = errors.New("ligação recusada")

	_, _, err := uc.Share(context.Background(), "loja-1", "a1b2c3d4e5")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, receipts.ErrShareUnavailable)
}

func TestPerfilIlegivelUsaDefaults(t *testing.T) {
	repo := &fakeSaleRepo{sales: map[string]*entity.Sale{"s1": {ID: "s1", CompanyID: "loja-1"}}}
	pdf := &fakePDF{doc: &fakeDocument{data: []byte("x")}}
	profiles := &fakeProfileRepo{err: errors.New("db em baixo")}
	uc := receipts.NewUseCase(repo, profiles, pdf, &fakeThermal{}, newFakeSink())

	_, _, err := uc.Download(context.Background(), "loja-1", "s1")

	require.NoError(t, err, "perfil ilegível nunca impede a geração")
	assert.Equal(t, receipt.DefaultCompanyName, pdf.lastCfg.CompanyName)
	assert.Equal(t, receipt.DefaultCurrency, pdf.lastCfg.Currency)
}
