package list

type node struct {
	id       int64 // Уникальный идентификатор узла, может не совпадать с порядковым номером (индексом)
	value    int64
	prevNode *node // nil у первого узла
	nextNode *node // nil у последнего узла
}
