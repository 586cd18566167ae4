package seqmark

import (
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"github.com/samber/mo"
)

// YAML mirrors the JSON layout: Normal:<payload> mappings, the scalar
// TombStone for deletions, and seq/marked, seq/data envelopes.

const tombstoneYAML = "TombStone"

func (m Marked[D]) MarshalYAML() (any, error) {
	if m.tombstone {
		return tombstoneYAML, nil
	}
	return map[string]D{"Normal": m.data}, nil
}

func (m *Marked[D]) UnmarshalYAML(b []byte) error {
	var s string
	if err := yaml.Unmarshal(b, &s); err == nil {
		if s != tombstoneYAML {
			return errors.Wrapf(ErrInvalidData, "unknown marked state %q", s)
		}
		*m = Tombstone[D]()
		return nil
	}
	var env struct {
		Normal *D `yaml:"Normal"`
	}
	if err := yaml.Unmarshal(b, &env); err != nil {
		return err
	}
	if env.Normal == nil {
		return errors.Wrap(ErrInvalidData, "marked value is neither Normal nor TombStone")
	}
	*m = Normal(*env.Normal)
	return nil
}

type seqMarkedYAML[D any] struct {
	Seq    uint64    `yaml:"seq"`
	Marked Marked[D] `yaml:"marked"`
}

func (sm SeqMarked[D]) MarshalYAML() (any, error) {
	return seqMarkedYAML[D]{Seq: sm.seq, Marked: sm.marked}, nil
}

func (sm *SeqMarked[D]) UnmarshalYAML(b []byte) error {
	var env seqMarkedYAML[D]
	if err := yaml.Unmarshal(b, &env); err != nil {
		return err
	}
	sm.seq = env.Seq
	sm.marked = env.Marked
	return nil
}

type seqDataYAML[D any] struct {
	Seq  uint64 `yaml:"seq"`
	Data D      `yaml:"data"`
}

func (sd SeqData[D]) MarshalYAML() (any, error) {
	return seqDataYAML[D]{Seq: sd.seq, Data: sd.data}, nil
}

func (sd *SeqData[D]) UnmarshalYAML(b []byte) error {
	var env seqDataYAML[D]
	if err := yaml.Unmarshal(b, &env); err != nil {
		return err
	}
	sd.seq = env.Seq
	sd.data = env.Data
	return nil
}

// MarshalYAML flattens the optional metadata to a pointer so absent metadata
// renders as null.
func (mv MetaValue[M, T]) MarshalYAML() (any, error) {
	var env struct {
		Meta  *M `yaml:"meta"`
		Value T  `yaml:"value"`
	}
	if m, ok := mv.Meta.Get(); ok {
		env.Meta = &m
	}
	env.Value = mv.Value
	return env, nil
}

func (mv *MetaValue[M, T]) UnmarshalYAML(b []byte) error {
	var env struct {
		Meta  *M `yaml:"meta"`
		Value T  `yaml:"value"`
	}
	if err := yaml.Unmarshal(b, &env); err != nil {
		return err
	}
	if env.Meta == nil {
		mv.Meta = mo.None[M]()
	} else {
		mv.Meta = mo.Some(*env.Meta)
	}
	mv.Value = env.Value
	return nil
}
