package seqmark

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// JSON layout: a normal value encodes as {"Normal":<payload>}, a tombstone as
// the bare string "TombStone". Sequenced shapes wrap that in
// {"seq":N,"marked":...} and {"seq":N,"data":...}.

var tombstoneJSON = []byte(`"TombStone"`)

type markedEnvelope[D any] struct {
	Normal *D `json:"Normal"`
}

func (m Marked[D]) MarshalJSON() ([]byte, error) {
	if m.tombstone {
		return tombstoneJSON, nil
	}
	return json.Marshal(markedEnvelope[D]{Normal: &m.data})
}

func (m *Marked[D]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), tombstoneJSON) {
		*m = Tombstone[D]()
		return nil
	}
	var env markedEnvelope[D]
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	if env.Normal == nil {
		return errors.Wrap(ErrInvalidData, "marked value is neither Normal nor TombStone")
	}
	*m = Normal(*env.Normal)
	return nil
}

type seqMarkedEnvelope[D any] struct {
	Seq    uint64    `json:"seq"`
	Marked Marked[D] `json:"marked"`
}

func (sm SeqMarked[D]) MarshalJSON() ([]byte, error) {
	return json.Marshal(seqMarkedEnvelope[D]{Seq: sm.seq, Marked: sm.marked})
}

func (sm *SeqMarked[D]) UnmarshalJSON(b []byte) error {
	var env seqMarkedEnvelope[D]
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	sm.seq = env.Seq
	sm.marked = env.Marked
	return nil
}

type seqDataEnvelope[D any] struct {
	Seq  uint64 `json:"seq"`
	Data D      `json:"data"`
}

func (sd SeqData[D]) MarshalJSON() ([]byte, error) {
	return json.Marshal(seqDataEnvelope[D]{Seq: sd.seq, Data: sd.data})
}

func (sd *SeqData[D]) UnmarshalJSON(b []byte) error {
	var env seqDataEnvelope[D]
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	sd.seq = env.Seq
	sd.data = env.Data
	return nil
}
