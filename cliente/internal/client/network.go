package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"BlockScene/shared/mapfile"
	"BlockScene/shared/protocol"

	"github.com/gorilla/websocket"
)

// ErrNotConnected indica uso do cliente sem conexão ativa.
var ErrNotConnected = errors.New("cliente não conectado")

// ServerError é uma mensagem ERROR recebida do servidor.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return "servidor: " + e.Message
}

// MapClient busca mapas no servidor de mapas.
type MapClient struct {
	conn *websocket.Conn
	url  string
	mu   sync.Mutex

	MaxRetries int
	RetryDelay time.Duration
}

// NewMapClient cria um cliente para a URL do servidor (ws://host:porta/ws).
func NewMapClient(url string) *MapClient {
	return &MapClient{
		url:        url,
		MaxRetries: 10,
		RetryDelay: 2 * time.Second,
	}
}

// Connect abre a conexão, tentando de novo enquanto o servidor não responde.
func (c *MapClient) Connect(ctx context.Context) error {
	dialer := websocket.Dialer{
		HandshakeTimeout: 5 * time.Second,
	}

	var err error
	for i := 0; i < c.MaxRetries; i++ {
		log.Printf("[Network] Tentativa de conexão %d/%d em %s...", i+1, c.MaxRetries, c.url)
		var conn *websocket.Conn
		conn, _, err = dialer.DialContext(ctx, c.url, nil)
		if err == nil {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
			return nil
		}
		if i == c.MaxRetries-1 {
			break
		}
		log.Printf("[Network] Servidor ainda não está pronto: %v. Aguardando...", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.RetryDelay):
		}
	}

	log.Printf("[Network] ERRO CRÍTICO após %d tentativas: %v", c.MaxRetries, err)
	return fmt.Errorf("falha ao conectar em %s: %w", c.url, err)
}

// IsConnected informa se há conexão aberta.
func (c *MapClient) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// roundTrip envia uma mensagem e espera o envelope de resposta.
func (c *MapClient) roundTrip(ctx context.Context, data []byte) (*protocol.Envelope, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, ErrNotConnected
	}

	if deadline, ok := ctx.Deadline(); ok {
		c.conn.SetWriteDeadline(deadline)
		c.conn.SetReadDeadline(deadline)
		defer func() {
			c.conn.SetWriteDeadline(time.Time{})
			c.conn.SetReadDeadline(time.Time{})
		}()
	}

	if err := c.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		return nil, fmt.Errorf("falha ao enviar: %w", err)
	}

	_, message, err := c.conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("conexão perdida: %w", err)
	}

	env, err := protocol.Decode(message)
	if err != nil {
		return nil, fmt.Errorf("falha ao desempacotar envelope: %w", err)
	}

	if env.Type == protocol.TypeError {
		var msg protocol.ErrorMessage
		if err := msg.Unmarshal(env.Payload); err != nil {
			return nil, err
		}
		return nil, &ServerError{Message: msg.Message}
	}
	return env, nil
}

// RequestMap pede um mapa pelo nome.
func (c *MapClient) RequestMap(ctx context.Context, name string) (*mapfile.Document, error) {
	env, err := c.roundTrip(ctx, protocol.Encode(protocol.TypeMapRequest, &protocol.MapRequest{Name: name}))
	if err != nil {
		return nil, err
	}
	if env.Type != protocol.TypeMapResponse {
		return nil, fmt.Errorf("resposta inesperada: %v", env.Type)
	}

	var resp protocol.MapResponse
	if err := resp.Unmarshal(env.Payload); err != nil {
		return nil, err
	}
	log.Printf("[Network] Mapa %q recebido: %d blocos", resp.Name, len(resp.Document.Blocks))
	return resp.Document, nil
}

// ListMaps pede a lista de mapas do servidor.
func (c *MapClient) ListMaps(ctx context.Context) ([]string, error) {
	env, err := c.roundTrip(ctx, protocol.Encode(protocol.TypeMapListRequest, nil))
	if err != nil {
		return nil, err
	}
	if env.Type != protocol.TypeMapList {
		return nil, fmt.Errorf("resposta inesperada: %v", env.Type)
	}

	var list protocol.MapList
	if err := list.Unmarshal(env.Payload); err != nil {
		return nil, err
	}
	return list.Names, nil
}

// Close fecha a conexão.
func (c *MapClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	err := c.conn.Close()
	c.conn = nil
	return err
}
