package events

import (
	"encoding/json"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

type Packet struct {
	Cmd string      `json:"cmd" msgpack:"cmd"`
	Val interface{} `json:"val" msgpack:"val"`
}

// EncodedPacket carries a packet pre-encoded in both supported session
// formats so it is marshaled once per event, not once per session.
type EncodedPacket struct {
	CreatedAt int64

	JsonEncoded    []byte
	MsgpackEncoded []byte
}

func createPacket(cmd string, val interface{}) (*EncodedPacket, error) {
	p := EncodedPacket{
		CreatedAt: time.Now().UnixMilli(),
	}
	packet := Packet{
		Cmd: cmd,
		Val: val,
	}
	var err error

	// json
	p.JsonEncoded, err = json.Marshal(&packet)
	if err != nil {
		return nil, err
	}

	// msgpack
	p.MsgpackEncoded, err = msgpack.Marshal(&packet)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
