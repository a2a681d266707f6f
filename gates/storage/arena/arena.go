package arena

import (
	"chainwalk/gates/storage"
	"fmt"
	"io"
	"strings"
	"sync"
)

const none = -1 // индекс отсутствующей ссылки

type slot struct {
	id    int64
	value int64
	prev  int
	next  int
}

// Arena хранит узлы цепочки в срезе, ссылки между узлами это индексы в срезе.
// Освобожденные ячейки попадают в список свободных и переиспользуются при добавлении.
type Arena struct {
	slots     []slot
	free      []int         // индексы свободных ячеек (стек)
	slotOf    map[int64]int // идентификатор -> индекс ячейки
	head      int
	tail      int
	idInitial int64 // идентификатор первого добавляемого элемента
	idCounter int64 // идентификатор следующего добавляемого элемента
	mu        sync.RWMutex
}

// NewArena возвращает новую пустую арену, первый элемент которой будет иметь идентификатор initID
func NewArena(initID int64) *Arena {
	return &Arena{
		slotOf:    make(map[int64]int),
		head:      none,
		tail:      none,
		idInitial: initID,
		idCounter: initID,
	}
}

// Len возвращает количество элементов в арене
func (a *Arena) Len() int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return int64(len(a.slotOf))
}

// Cap возвращает количество занятых и свободных ячеек
func (a *Arena) Cap() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.slots)
}

// Add добавляет значение в конец цепочки и возвращает его идентификатор
func (a *Arena) Add(value int64) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx := a.allocUnsafely(value)
	if a.tail == none {
		a.head = idx
		a.tail = idx
		return a.slots[idx].id, nil
	}
	a.slots[idx].prev = a.tail
	a.slots[a.tail].next = idx
	a.tail = idx
	return a.slots[idx].id, nil
}

// InsertAfter вставляет значение сразу после элемента с идентификатором id
func (a *Arena) InsertAfter(id int64, value int64) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	prevIdx, ok := a.slotOf[id]
	if !ok {
		return 0, fmt.Errorf("insert after %d: %w", id, storage.ErrNotFound)
	}

	idx := a.allocUnsafely(value)
	nextIdx := a.slots[prevIdx].next
	a.slots[idx].prev = prevIdx
	a.slots[idx].next = nextIdx
	if nextIdx == none {
		a.tail = idx
	} else {
		a.slots[nextIdx].prev = idx
	}
	a.slots[prevIdx].next = idx
	return a.slots[idx].id, nil
}

// allocUnsafely занимает ячейку (свободную или новую) и выдает ей идентификатор
func (a *Arena) allocUnsafely(value int64) int {
	s := slot{id: a.idCounter, value: value, prev: none, next: none}
	a.idCounter++

	var idx int
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx] = s
	} else {
		idx = len(a.slots)
		a.slots = append(a.slots, s)
	}
	a.slotOf[s.id] = idx
	return idx
}

// RemoveByID удаляет элемент из арены по идентификатору, ячейка становится свободной
func (a *Arena) RemoveByID(id int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx, ok := a.slotOf[id]
	if !ok {
		return fmt.Errorf("remove %d: %w", id, storage.ErrNotFound)
	}

	s := a.slots[idx]
	if s.prev == none {
		a.head = s.next
	} else {
		a.slots[s.prev].next = s.next
	}
	if s.next == none {
		a.tail = s.prev
	} else {
		a.slots[s.next].prev = s.prev
	}

	a.slots[idx] = slot{prev: none, next: none}
	delete(a.slotOf, id)
	a.free = append(a.free, idx)
	return nil
}

// GetByID возвращает значение элемента по идентификатору.
// Если элемента с таким идентификатором нет, то возвращается 0 и false.
func (a *Arena) GetByID(id int64) (int64, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	idx, ok := a.slotOf[id]
	if !ok {
		return 0, false
	}
	return a.slots[idx].value, true
}

func (a *Arena) Head() (int64, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.idAtUnsafely(a.head)
}

func (a *Arena) Tail() (int64, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.idAtUnsafely(a.tail)
}

func (a *Arena) Next(id int64) (int64, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	idx, ok := a.slotOf[id]
	if !ok {
		return 0, false
	}
	return a.idAtUnsafely(a.slots[idx].next)
}

func (a *Arena) Prev(id int64) (int64, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	idx, ok := a.slotOf[id]
	if !ok {
		return 0, false
	}
	return a.idAtUnsafely(a.slots[idx].prev)
}

func (a *Arena) idAtUnsafely(idx int) (int64, bool) {
	if idx == none {
		return 0, false
	}
	return a.slots[idx].id, true
}

// Clear очищает арену
func (a *Arena) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.slots = nil
	a.free = nil
	a.slotOf = make(map[int64]int)
	a.head = none
	a.tail = none
	a.idCounter = a.idInitial
}

// Print выводит цепочку в w в виде таблицы, от головы к хвосту
func (a *Arena) Print(w io.Writer) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	// Определяем максимальные длины строковых представлений ключей и значений
	maxKeyLen := len("ID")
	if l := len(fmt.Sprint(a.idCounter - 1)); l > maxKeyLen {
		maxKeyLen = l
	}
	maxValLen := len("Value")
	for idx := a.head; idx != none; idx = a.slots[idx].next {
		if l := len(fmt.Sprint(a.slots[idx].value)); l > maxValLen {
			maxValLen = l
		}
	}

	// Печатаем шапку таблицы
	fmt.Fprintf(w, "%-*s | %-*s\n", maxKeyLen, "ID", maxValLen, "Value")
	fmt.Fprintln(w, strings.Repeat("-", maxKeyLen+3+maxValLen))

	// Печатаем тело таблицы
	for idx := a.head; idx != none; idx = a.slots[idx].next {
		fmt.Fprintf(w, "%-*d | %-*d\n", maxKeyLen, a.slots[idx].id, maxValLen, a.slots[idx].value)
	}
}
