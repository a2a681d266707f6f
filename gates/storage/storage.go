package storage

import (
	"errors"
	"io"
)

var (
	ErrNotFound   = errors.New("node not found")
	ErrEmpty      = errors.New("chain is empty")
	ErrBrokenLink = errors.New("broken link")
)

// Storage описывает двусвязную цепочку узлов с целочисленной нагрузкой.
// Узлы адресуются идентификаторами, которые выдает само хранилище.
type Storage interface {
	Len() int64
	Add(value int64) (id int64, err error)
	InsertAfter(id int64, value int64) (newID int64, err error)
	RemoveByID(id int64) error
	GetByID(id int64) (value int64, ok bool)
	Head() (id int64, ok bool)
	Tail() (id int64, ok bool)
	Next(id int64) (nextID int64, ok bool)
	Prev(id int64) (prevID int64, ok bool)
	Clear()
	Print(w io.Writer)
}
