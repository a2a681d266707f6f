package storage

import "fmt"

// Verify проходит цепочку в обе стороны и проверяет согласованность ссылок.
// Пустая цепочка считается корректной.
func Verify(st Storage) error {
	length := st.Len()

	head, ok := st.Head()
	if !ok {
		if length != 0 {
			return fmt.Errorf("%w: no head but length is %d", ErrBrokenLink, length)
		}
		return nil
	}
	if _, ok := st.Prev(head); ok {
		return fmt.Errorf("%w: head %d has a previous node", ErrBrokenLink, head)
	}

	var count int64
	current := head
	for {
		count++
		if count > length {
			return fmt.Errorf("%w: more than %d nodes reachable from head", ErrBrokenLink, length)
		}
		next, ok := st.Next(current)
		if !ok {
			break
		}
		if back, ok := st.Prev(next); !ok || back != current {
			return fmt.Errorf("%w: node %d does not point back to %d", ErrBrokenLink, next, current)
		}
		current = next
	}

	tail, ok := st.Tail()
	if !ok || tail != current {
		return fmt.Errorf("%w: forward walk ended at %d, tail is %d", ErrBrokenLink, current, tail)
	}
	if count != length {
		return fmt.Errorf("%w: %d nodes reachable, length is %d", ErrBrokenLink, count, length)
	}

	// Обратный проход должен вернуться к голове за то же число шагов
	var backCount int64
	for current = tail; ; {
		backCount++
		if backCount > length {
			return fmt.Errorf("%w: more than %d nodes reachable from tail", ErrBrokenLink, length)
		}
		prev, ok := st.Prev(current)
		if !ok {
			break
		}
		if fwd, ok := st.Next(prev); !ok || fwd != current {
			return fmt.Errorf("%w: node %d does not point forward to %d", ErrBrokenLink, prev, current)
		}
		current = prev
	}
	if current != head || backCount != count {
		return fmt.Errorf("%w: backward walk ended at %d after %d steps", ErrBrokenLink, current, backCount)
	}
	return nil
}
