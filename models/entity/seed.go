package entity

import (
	"chainwalk/gates/storage"
	"errors"
	"fmt"
	"strconv"
)

var ErrEmptySeed = errors.New("seed has no values")

// Seed это упорядоченный набор значений, из которых строится цепочка
type Seed []int64

// DefaultSeed возвращает цепочку из трех узлов 37 <-> 38 <-> 39
func DefaultSeed() Seed {
	return Seed{37, 38, 39}
}

// ParseSeed разбирает значения из аргументов командной строки
func ParseSeed(args []string) (Seed, error) {
	seed := make(Seed, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", arg, err)
		}
		seed = append(seed, v)
	}
	return seed, nil
}

// Populate добавляет значения в хранилище по порядку и возвращает их идентификаторы.
// Первый узел остается без предыдущего, последний без следующего.
func (s Seed) Populate(st storage.Storage) ([]int64, error) {
	if len(s) == 0 {
		return nil, ErrEmptySeed
	}

	ids := make([]int64, 0, len(s))
	for _, v := range s {
		id, err := st.Add(v)
		if err != nil {
			return ids, fmt.Errorf("add %d: %w", v, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
