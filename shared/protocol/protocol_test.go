package protocol

import (
	"testing"

	"BlockScene/shared/mapfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapResponseThroughEnvelope(t *testing.T) {
	resp := &MapResponse{
		Name: "castelo",
		Document: &mapfile.Document{
			Blocks: []mapfile.BlockDescriptor{
				mapfile.ColoredBlock(-3, 0, 12, 0),
				mapfile.Block(1000, -1000, 0),
				mapfile.ColoredBlock(0, 0, 0, 1),
			},
			Colors: []mapfile.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 255, G: 128, B: 0, A: 255}},
		},
	}

	env, err := Decode(Encode(TypeMapResponse, resp))
	require.NoError(t, err)
	assert.Equal(t, TypeMapResponse, env.Type)

	var got MapResponse
	require.NoError(t, got.Unmarshal(env.Payload))
	assert.Equal(t, resp, &got)
}

func TestMapResponseEmptyMap(t *testing.T) {
	resp := &MapResponse{Name: "vazio", Document: &mapfile.Document{Blocks: []mapfile.BlockDescriptor{}}}

	var got MapResponse
	require.NoError(t, got.Unmarshal(resp.Marshal()))
	assert.Equal(t, "vazio", got.Name)
	assert.Empty(t, got.Document.Blocks)
	assert.Nil(t, got.Document.Colors)
}

func TestSmallMessages(t *testing.T) {
	req := &MapRequest{Name: "file"}
	var gotReq MapRequest
	require.NoError(t, gotReq.Unmarshal(req.Marshal()))
	assert.Equal(t, *req, gotReq)

	list := &MapList{Names: []string{"a", "b", "c"}}
	var gotList MapList
	require.NoError(t, gotList.Unmarshal(list.Marshal()))
	assert.Equal(t, *list, gotList)

	msg := &ErrorMessage{Message: "mapa não encontrado"}
	var gotMsg ErrorMessage
	require.NoError(t, gotMsg.Unmarshal(msg.Marshal()))
	assert.Equal(t, *msg, gotMsg)
}

func TestEnvelopeWithoutPayload(t *testing.T) {
	env, err := Decode(Encode(TypeMapListRequest, nil))
	require.NoError(t, err)
	assert.Equal(t, TypeMapListRequest, env.Type)
	assert.Empty(t, env.Payload)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"tag truncada", []byte{0x80}},
		{"bytes truncados", []byte{0x12, 0x05, 0x01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			assert.ErrorIs(t, err, errMalformed)
		})
	}
}

func TestUnknownFieldsSkipped(t *testing.T) {
	// Campo 9 (varint) desconhecido antes do nome.
	data := append([]byte{0x48, 0x07}, (&MapRequest{Name: "x"}).Marshal()...)
	var req MapRequest
	require.NoError(t, req.Unmarshal(data))
	assert.Equal(t, "x", req.Name)
}

func TestMessageTypeString(t *testing.T) {
	assert.Equal(t, "MAP_RESPONSE", TypeMapResponse.String())
	assert.Equal(t, "UNKNOWN(42)", MessageType(42).String())
}
