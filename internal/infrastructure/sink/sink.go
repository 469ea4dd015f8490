// Package sink implementa o destino de saída dos recibos no servidor:
// persistência em disco, spool de impressão do sistema e partilha por
// webhook HTTP.
package sink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/kitadi/kitadi-pos/internal/application/receipts"
	"github.com/kitadi/kitadi-pos/pkg/config"
	"github.com/kitadi/kitadi-pos/pkg/logger"
)

// Platform implementa receipts.Sink sobre o sistema de ficheiros, o comando
// de spool configurado e um webhook de partilha opcional.
type Platform struct {
	outputDir   string
	spoolCmd    string
	spoolDevice string
	shareURL    string
	client      *http.Client
	log         *logger.Logger
}

// New constrói o sink a partir da configuração de recibos.
func New(cfg config.ReceiptConfig, log *logger.Logger) *Platform {
	return &Platform{
		outputDir:   cfg.OutputDir,
		spoolCmd:    cfg.SpoolCmd,
		spoolDevice: cfg.SpoolDevice,
		shareURL:    cfg.ShareURL,
		client:      &http.Client{Timeout: 30 * time.Second},
		log:         log,
	}
}

// Persist grava o documento no directório de saída, criando-o se necessário.
func (p *Platform) Persist(data []byte, filename string) error {
	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return fmt.Errorf("criar directório de recibos: %w", err)
	}
	path := filepath.Join(p.outputDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("gravar recibo: %w", err)
	}
	p.log.Debug().Str("path", path).Int("bytes", len(data)).Msg("Recibo persistido")
	return nil
}

// Present envia o texto ao comando de spool (por omissão, lp). O ficheiro
// temporário é removido em qualquer desfecho.
func (p *Platform) Present(ctx context.Context, text string) error {
	tmp, err := os.CreateTemp("", "recibo-*.txt")
	if err != nil {
		return fmt.Errorf("criar ficheiro de spool: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return fmt.Errorf("escrever ficheiro de spool: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("fechar ficheiro de spool: %w", err)
	}

	args := []string{}
	if p.spoolDevice != "" {
		args = append(args, "-d", p.spoolDevice)
	}
	args = append(args, tmp.Name())

	cmd := exec.CommandContext(ctx, p.spoolCmd, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("comando de spool %q: %w: %s", p.spoolCmd, err, bytes.TrimSpace(out))
	}
	p.log.Debug().Str("device", p.spoolDevice).Msg("Recibo enviado para impressão")
	return nil
}

// Share publica o documento no webhook configurado como multipart/form-data.
// Sem webhook configurado devolve ErrShareUnavailable para o caso de uso
// degradar para download.
func (p *Platform) Share(ctx context.Context, data []byte, filename, caption string) error {
	if p.shareURL == "" {
		return receipts.ErrShareUnavailable
	}

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("document", filename)
	if err != nil {
		return fmt.Errorf("montar pedido de partilha: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("montar pedido de partilha: %w", err)
	}
	if err := mw.WriteField("caption", caption); err != nil {
		return fmt.Errorf("montar pedido de partilha: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("montar pedido de partilha: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.shareURL, body)
	if err != nil {
		return fmt.Errorf("montar pedido de partilha: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("enviar partilha: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook de partilha devolveu %d", resp.StatusCode)
	}
	p.log.Debug().Str("filename", filename).Msg("Recibo partilhado")
	return nil
}
