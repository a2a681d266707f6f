package list

import (
	"chainwalk/gates/storage"
	"fmt"
	"io"
	"iter"
	"sync"
)

type List struct {
	length    int64 // Текущая длина списка (количество достижимых от головы узлов)
	firstNode *node // Указатель на первый узел
	lastNode  *node // Указатель на последний узел (для обратного обхода и вставки в конец)
	index     map[int64]*node
	idInitial int64
	idCounter int64
	mu        sync.RWMutex
}

// NewList создает новый пустой двусвязный список, первый узел которого получит идентификатор initID
func NewList(initID int64) (l *List) {
	return &List{index: make(map[int64]*node), idInitial: initID, idCounter: initID}
}

// Len возвращает количество элементов в списке
func (l *List) Len() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.length
}

// Add добавляет элемент в конец списка, возвращает идентификатор добавленного элемента
func (l *List) Add(value int64) (id int64, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	newNode := l.newNodeUnsafely(value)
	// Случай вставки первого элемента, когда не определены первый и последний узлы
	if l.firstNode == nil {
		l.firstNode = newNode
		l.lastNode = newNode
		return newNode.id, nil
	}
	newNode.prevNode = l.lastNode
	l.lastNode.nextNode = newNode
	l.lastNode = newNode
	return newNode.id, nil
}

// InsertAfter вставляет элемент сразу после узла с идентификатором id
func (l *List) InsertAfter(id int64, value int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	prevNode, ok := l.index[id]
	if !ok {
		return 0, fmt.Errorf("insert after %d: %w", id, storage.ErrNotFound)
	}

	newNode := l.newNodeUnsafely(value)
	newNode.prevNode = prevNode
	newNode.nextNode = prevNode.nextNode
	if prevNode.nextNode != nil {
		prevNode.nextNode.prevNode = newNode
	} else {
		l.lastNode = newNode
	}
	prevNode.nextNode = newNode
	return newNode.id, nil
}

func (l *List) newNodeUnsafely(value int64) *node {
	newNode := &node{id: l.idCounter, value: value}
	l.idCounter++
	l.length++
	l.index[newNode.id] = newNode
	return newNode
}

// RemoveByID удаляет элемент по уникальному идентификатору и связывает его соседей
func (l *List) RemoveByID(id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Случай out-of-range идентификатора
	if id >= l.idCounter || id < l.idInitial {
		return fmt.Errorf("remove %d: %w", id, storage.ErrNotFound)
	}

	removable, ok := l.index[id]
	if !ok {
		return fmt.Errorf("remove %d: %w", id, storage.ErrNotFound)
	}

	// Случай удаления первого элемента
	if removable.prevNode == nil {
		l.firstNode = removable.nextNode
	} else {
		removable.prevNode.nextNode = removable.nextNode
	}
	// Случай удаления последнего элемента
	if removable.nextNode == nil {
		l.lastNode = removable.prevNode
	} else {
		removable.nextNode.prevNode = removable.prevNode
	}

	removable.prevNode = nil
	removable.nextNode = nil
	delete(l.index, id)
	l.length--
	return nil
}

// GetByID возвращает значение элемента с данным идентификатором
func (l *List) GetByID(id int64) (value int64, ok bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n, ok := l.index[id]
	if !ok {
		return 0, false
	}
	return n.value, true
}

// Head возвращает идентификатор первого узла
func (l *List) Head() (int64, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.firstNode == nil {
		return 0, false
	}
	return l.firstNode.id, true
}

// Tail возвращает идентификатор последнего узла
func (l *List) Tail() (int64, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.lastNode == nil {
		return 0, false
	}
	return l.lastNode.id, true
}

// Next возвращает идентификатор следующего узла. Если ссылки нет, возвращает 0 и false
func (l *List) Next(id int64) (int64, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n, ok := l.index[id]
	if !ok || n.nextNode == nil {
		return 0, false
	}
	return n.nextNode.id, true
}

// Prev возвращает идентификатор предыдущего узла. Если ссылки нет, возвращает 0 и false
func (l *List) Prev(id int64) (int64, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n, ok := l.index[id]
	if !ok || n.prevNode == nil {
		return 0, false
	}
	return n.prevNode.id, true
}

// All возвращает итератор по парам (идентификатор, значение) от головы к хвосту.
// Итератор держит блокировку на чтение, поэтому изменять список внутри цикла нельзя.
func (l *List) All() iter.Seq2[int64, int64] {
	return func(yield func(int64, int64) bool) {
		l.mu.RLock()
		defer l.mu.RUnlock()

		for currentNode := l.firstNode; currentNode != nil; currentNode = currentNode.nextNode {
			if !yield(currentNode.id, currentNode.value) {
				return
			}
		}
	}
}

// Backward аналогичен All, но идет от хвоста к голове
func (l *List) Backward() iter.Seq2[int64, int64] {
	return func(yield func(int64, int64) bool) {
		l.mu.RLock()
		defer l.mu.RUnlock()

		for currentNode := l.lastNode; currentNode != nil; currentNode = currentNode.prevNode {
			if !yield(currentNode.id, currentNode.value) {
				return
			}
		}
	}
}

// Clear удаляет все элементы из списка
func (l *List) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.length = 0
	l.firstNode = nil
	l.lastNode = nil
	l.index = make(map[int64]*node)
	l.idCounter = l.idInitial
}

// Print выводит список в w
func (l *List) Print(w io.Writer) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	// Случай пустого списка
	if l.length == int64(0) {
		fmt.Fprintf(w, "[]\n")
		return
	}

	fmt.Fprintf(w, "[")
	currentNode := l.firstNode
	for ; currentNode.nextNode != nil; currentNode = currentNode.nextNode {
		fmt.Fprintf(w, "{%d: %d}, ", currentNode.id, currentNode.value)
	}
	fmt.Fprintf(w, "{%d: %d}]\n", currentNode.id, currentNode.value)
}
