package mapserver

import (
	"errors"
	"log"
	"net/http"

	"BlockScene/shared/mapdata"
	"BlockScene/shared/mapfile"
	"BlockScene/shared/protocol"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// MapStore é a origem dos mapas servidos.
type MapStore interface {
	LoadMap(name string) (*mapfile.Document, error)
	ListMaps() ([]mapdata.MapInfo, error)
}

// Server responde pedidos de mapa por WebSocket.
type Server struct {
	store MapStore
	Hub   *Hub
}

// New cria um servidor sobre a biblioteca de mapas.
func New(store MapStore) *Server {
	return &Server{
		store: store,
		Hub:   newHub(),
	}
}

// ServeHTTP faz o upgrade para WebSocket e atende o cliente até ele sair.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Erro no upgrade do WebSocket: %v", err)
		return
	}

	s.Hub.register(conn)
	defer s.Hub.unregister(conn)

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Erro ao ler mensagem: %v", err)
			}
			return
		}

		env, err := protocol.Decode(message)
		if err != nil {
			log.Printf("Erro ao desempacotar envelope: %v", err)
			s.reply(conn, protocol.Encode(protocol.TypeError, &protocol.ErrorMessage{Message: err.Error()}))
			continue
		}

		s.reply(conn, s.Handle(env))
	}
}

func (s *Server) reply(conn *websocket.Conn, data []byte) {
	if err := s.Hub.WriteSafe(conn, data); err != nil {
		log.Printf("Erro ao enviar para cliente %s: %v", conn.RemoteAddr(), err)
	}
}

// Handle produz a resposta (já empacotada) para um envelope recebido.
func (s *Server) Handle(env *protocol.Envelope) []byte {
	switch env.Type {
	case protocol.TypeMapRequest:
		var req protocol.MapRequest
		if err := req.Unmarshal(env.Payload); err != nil {
			return errorReply(err.Error())
		}
		doc, err := s.store.LoadMap(req.Name)
		if err != nil {
			if !errors.Is(err, mapdata.ErrMapNotFound) {
				log.Printf("[Network] Erro ao carregar mapa %q: %v", req.Name, err)
			}
			return errorReply(err.Error())
		}
		log.Printf("[Network] Mapa %q enviado (%d blocos)", req.Name, len(doc.Blocks))
		return protocol.Encode(protocol.TypeMapResponse, &protocol.MapResponse{Name: req.Name, Document: doc})

	case protocol.TypeMapListRequest:
		infos, err := s.store.ListMaps()
		if err != nil {
			log.Printf("[Network] Erro ao listar mapas: %v", err)
			return errorReply(err.Error())
		}
		list := &protocol.MapList{Names: make([]string, 0, len(infos))}
		for _, info := range infos {
			list.Names = append(list.Names, info.Name)
		}
		return protocol.Encode(protocol.TypeMapList, list)
	}

	return errorReply("tipo de mensagem não suportado: " + env.Type.String())
}

func errorReply(msg string) []byte {
	return protocol.Encode(protocol.TypeError, &protocol.ErrorMessage{Message: msg})
}
