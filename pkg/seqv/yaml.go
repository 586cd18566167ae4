package seqv

import (
	"github.com/goccy/go-yaml"
	"github.com/samber/mo"
)

type seqVYAML[M, T any] struct {
	Seq  uint64 `yaml:"seq"`
	Meta *M     `yaml:"meta"`
	Data T      `yaml:"data"`
}

// MarshalYAML renders the record as seq/meta/data, with null for absent
// metadata.
func (sv SeqV[M, T]) MarshalYAML() (any, error) {
	env := seqVYAML[M, T]{Seq: sv.Seq, Data: sv.Data}
	if m, ok := sv.Meta.Get(); ok {
		env.Meta = &m
	}
	return env, nil
}

func (sv *SeqV[M, T]) UnmarshalYAML(b []byte) error {
	var env seqVYAML[M, T]
	if err := yaml.Unmarshal(b, &env); err != nil {
		return err
	}
	sv.Seq = env.Seq
	if env.Meta == nil {
		sv.Meta = mo.None[M]()
	} else {
		sv.Meta = mo.Some(*env.Meta)
	}
	sv.Data = env.Data
	return nil
}
