// Package backend implementa el Remote Ledger Gateway: el cliente HTTP
// tipado contra el backend de negocio (stock, saldos, finanzas, reportes).
//
// Normaliza el sobre {success, data?, message?} del backend en dto.Result:
// un status no-2xx y un success=false son ambos fallos, pero solo los fallos
// de transporte (red caída, JSON malformado) viajan como error de Go.
// El cliente no guarda estado más allá de la conexión.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/pkg/logger"
)

// Config parámetros de conexión al backend.
type Config struct {
	BaseURL   string
	Timeout   time.Duration // timeout por llamada; 0 usa el default
	AuthToken string        // token de servicio opcional (Bearer)
}

const defaultTimeout = 15 * time.Second

// Client cliente HTTP del backend. Una instancia por proceso; segura para
// uso concurrente (resty lo es).
type Client struct {
	http *resty.Client
	log  *logger.Logger
}

// NewClient construye el cliente con base URL, timeout y JSON por defecto.
func NewClient(cfg Config, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.AuthToken != "" {
		rc.SetAuthToken(cfg.AuthToken)
	}

	return &Client{
		http: rc,
		log:  log.Component("backend-client"),
	}
}

// envelope sobre estándar de toda respuesta del backend.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// call ejecuta una petición y normaliza la respuesta en dto.Result[T].
// Los métodos del gateway son envoltorios finos sobre esta función.
func call[T any](ctx context.Context, c *Client, method, path string, body any, query map[string]string) (dto.Result[T], error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return dto.Result[T]{}, fmt.Errorf("backend: %s %s: %w", method, path, err)
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return dto.Result[T]{}, fmt.Errorf("backend: respuesta malformada de %s %s (status %d): %w",
			method, path, resp.StatusCode(), err)
	}

	if resp.IsError() || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("el backend respondió %d", resp.StatusCode())
		}
		c.log.Debug().Str("path", path).Int("status", resp.StatusCode()).Str("message", msg).Msg("rechazo del backend")
		return dto.Failure[T](msg), nil
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		// Éxito sin payload: válido en varias operaciones (ej. transición sin
		// efecto sobre el saldo).
		return dto.Result[T]{OK: true, Message: env.Message}, nil
	}

	var data T
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return dto.Result[T]{}, fmt.Errorf("backend: payload inesperado de %s %s: %w", method, path, err)
	}
	return dto.Result[T]{OK: true, Data: &data, Message: env.Message}, nil
}
