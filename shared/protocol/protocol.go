// Package protocol define as mensagens trocadas entre servidor e cliente de
// mapas. Cada mensagem WebSocket binária é um Envelope no formato wire do
// protobuf: campo 1 = tipo (varint), campo 2 = payload (bytes).
package protocol

import (
	"errors"
	"fmt"

	"BlockScene/shared/mapfile"

	"google.golang.org/protobuf/encoding/protowire"
)

// MessageType identifica o conteúdo do payload.
type MessageType int32

const (
	TypeUnknown MessageType = iota
	TypeMapRequest
	TypeMapListRequest
	TypeMapResponse
	TypeMapList
	TypeError
)

func (t MessageType) String() string {
	switch t {
	case TypeMapRequest:
		return "MAP_REQUEST"
	case TypeMapListRequest:
		return "MAP_LIST_REQUEST"
	case TypeMapResponse:
		return "MAP_RESPONSE"
	case TypeMapList:
		return "MAP_LIST"
	case TypeError:
		return "ERROR"
	}
	return fmt.Sprintf("UNKNOWN(%d)", int32(t))
}

// Envelope embrulha qualquer mensagem do protocolo.
type Envelope struct {
	Type    MessageType
	Payload []byte
}

// MapRequest pede um mapa pelo nome.
type MapRequest struct {
	Name string
}

// MapResponse carrega um mapa completo.
type MapResponse struct {
	Name     string
	Document *mapfile.Document
}

// MapList lista os mapas disponíveis no servidor.
type MapList struct {
	Names []string
}

// ErrorMessage informa uma falha ao cliente.
type ErrorMessage struct {
	Message string
}

var errMalformed = errors.New("mensagem malformada")

func parseErr(n int) error {
	return fmt.Errorf("%w: %v", errMalformed, protowire.ParseError(n))
}

// --- Envelope ---

func (e *Envelope) Marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(e.Type))
	if len(e.Payload) > 0 {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, e.Payload)
	}
	return b
}

func (e *Envelope) Unmarshal(b []byte) error {
	*e = Envelope{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			e.Type = MessageType(v)
			return n, nil
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			e.Payload = append([]byte(nil), v...)
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

// --- MapRequest ---

func (m *MapRequest) Marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, m.Name)
	return b
}

func (m *MapRequest) Unmarshal(b []byte) error {
	*m = MapRequest{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeString(b)
			m.Name = v
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

// --- MapResponse ---
//
// Campos: 1 = nome, 2 = bloco (submensagem repetida), 3 = cor (fixed32 RGBA
// repetido). No bloco: 1..3 = x, y, z em zigzag; 4 = c+1 (0 = sem cor).

func (m *MapResponse) Marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, m.Name)

	if m.Document == nil {
		return b
	}
	for _, blk := range m.Document.Blocks {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, marshalBlock(blk))
	}
	for _, c := range m.Document.Colors {
		b = protowire.AppendTag(b, 3, protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, uint32(c.R)<<24|uint32(c.G)<<16|uint32(c.B)<<8|uint32(c.A))
	}
	return b
}

func (m *MapResponse) Unmarshal(b []byte) error {
	*m = MapResponse{Document: &mapfile.Document{Blocks: make([]mapfile.BlockDescriptor, 0)}}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.Name = v
			return n, nil
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			blk, err := unmarshalBlock(v)
			if err != nil {
				return 0, err
			}
			m.Document.Blocks = append(m.Document.Blocks, blk)
			return n, nil
		case num == 3 && typ == protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(b)
			m.Document.Colors = append(m.Document.Colors, mapfile.RGBA{
				R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v),
			})
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

func marshalBlock(blk mapfile.BlockDescriptor) []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(blk.X)))
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(blk.Y)))
	b = protowire.AppendTag(b, 3, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(blk.Z)))
	if blk.C != nil {
		b = protowire.AppendTag(b, 4, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(*blk.C)+1)
	}
	return b
}

func unmarshalBlock(b []byte) (mapfile.BlockDescriptor, error) {
	var blk mapfile.BlockDescriptor
	err := walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.VarintType {
			return protowire.ConsumeFieldValue(num, typ, b), nil
		}
		v, n := protowire.ConsumeVarint(b)
		switch num {
		case 1:
			blk.X = int(protowire.DecodeZigZag(v))
		case 2:
			blk.Y = int(protowire.DecodeZigZag(v))
		case 3:
			blk.Z = int(protowire.DecodeZigZag(v))
		case 4:
			if v > 0 {
				c := int(v - 1)
				blk.C = &c
			}
		}
		return n, nil
	})
	return blk, err
}

// --- MapList ---

func (m *MapList) Marshal() []byte {
	var b []byte
	for _, name := range m.Names {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, name)
	}
	return b
}

func (m *MapList) Unmarshal(b []byte) error {
	*m = MapList{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeString(b)
			m.Names = append(m.Names, v)
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

// --- ErrorMessage ---

func (m *ErrorMessage) Marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, m.Message)
	return b
}

func (m *ErrorMessage) Unmarshal(b []byte) error {
	*m = ErrorMessage{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeString(b)
			m.Message = v
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

// walk percorre os campos de uma mensagem. field recebe os bytes a partir do
// valor do campo e devolve quantos consumiu (negativo = erro do protowire).
func walk(b []byte, field func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return parseErr(n)
		}
		b = b[n:]

		n, err := field(num, typ, b)
		if err != nil {
			return err
		}
		if n < 0 {
			return parseErr(n)
		}
		b = b[n:]
	}
	return nil
}

// Message é qualquer payload do protocolo.
type Message interface {
	Marshal() []byte
}

// Encode embrulha uma mensagem num envelope pronto para envio.
func Encode(t MessageType, msg Message) []byte {
	env := Envelope{Type: t}
	if msg != nil {
		env.Payload = msg.Marshal()
	}
	return env.Marshal()
}

// Decode desembrulha um envelope recebido.
func Decode(data []byte) (*Envelope, error) {
	var env Envelope
	if err := env.Unmarshal(data); err != nil {
		return nil, err
	}
	return &env, nil
}
