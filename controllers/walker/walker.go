package walker

import (
	"chainwalk/gates/storage"
	"chainwalk/models/dto"
	"chainwalk/pkg"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Mode string

const (
	ModeForward  Mode = "forward"
	ModeBackward Mode = "backward"
	ModeBoth     Mode = "both"
)

var ErrUnknownMode = errors.New("unknown walk mode")

// ParseMode проверяет режим обхода, пустая строка означает ModeBoth
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "":
		return ModeBoth, nil
	case ModeForward, ModeBackward, ModeBoth:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Visitor вызывается для каждого посещенного узла. Ошибка прерывает обход.
type Visitor func(step dto.Step) error

// LinePrinter печатает значение узла десятичным числом, по одному на строку
func LinePrinter(out io.Writer) Visitor {
	return func(step dto.Step) error {
		_, err := fmt.Fprintf(out, "%d\n", step.Value)
		return err
	}
}

// JSONPrinter печатает каждый шаг отдельной JSON-строкой
func JSONPrinter(out io.Writer) Visitor {
	enc := json.NewEncoder(out)
	return func(step dto.Step) error {
		return enc.Encode(step)
	}
}

type Walker struct {
	storage storage.Storage
	visit   Visitor
	verify  bool
	logger  *zap.Logger
}

// NewWalker создает обходчик цепочки st. Каждый экземпляр получает свой run_id в логах.
func NewWalker(st storage.Storage, visit Visitor, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{
		storage: st,
		visit:   visit,
		logger:  logger.With(zap.String("run_id", uuid.NewString())),
	}
}

// WithVerify включает проверку ссылок перед обходом
func (w *Walker) WithVerify(verify bool) *Walker {
	w.verify = verify
	return w
}

// Forward идет от головы по ссылкам next и возвращает идентификатор узла, на котором остановился (хвост)
func (w *Walker) Forward() (int64, error) {
	head, ok := w.storage.Head()
	if !ok {
		return 0, storage.ErrEmpty
	}
	return w.walk(dto.Forward, head, w.storage.Next)
}

// Backward идет от узла from по ссылкам prev до головы
func (w *Walker) Backward(from int64) error {
	_, err := w.walk(dto.Backward, from, w.storage.Prev)
	return err
}

// Run выполняет обход в заданном режиме. В режиме ModeBoth обратный обход
// начинается с узла, на котором закончился прямой.
func (w *Walker) Run(mode Mode) error {
	wErr := pkg.NewWrappedError("(w *Walker) Run()").WithLogger(w.logger)

	if w.verify {
		if err := storage.Verify(w.storage); err != nil {
			return wErr.Specify(err, "storage.Verify(w.storage)").LogError()
		}
	}

	switch mode {
	case ModeForward:
		if _, err := w.Forward(); err != nil {
			return wErr.Specify(err, "w.Forward()").LogError()
		}
	case ModeBackward:
		tail, ok := w.storage.Tail()
		if !ok {
			return wErr.Specify(storage.ErrEmpty, "w.storage.Tail()").LogError()
		}
		if err := w.Backward(tail); err != nil {
			return wErr.Specify(err, "w.Backward(tail)").LogError()
		}
	case ModeBoth:
		end, err := w.Forward()
		if err != nil {
			return wErr.Specify(err, "w.Forward()").LogError()
		}
		if err := w.Backward(end); err != nil {
			return wErr.Specify(err, "w.Backward(end)").LogError()
		}
	default:
		return wErr.Specify(fmt.Errorf("%w: %q", ErrUnknownMode, mode), "mode").LogError()
	}

	wErr.LogMsg("walk finished", zap.String("mode", string(mode)), zap.Int64("length", w.storage.Len()))
	return nil
}

// walk посещает узлы начиная со start, переходя по step, пока ссылка не отсутствует.
// Узлов посещается не больше Len(), иначе цепочка считается зацикленной.
func (w *Walker) walk(direction dto.Direction, start int64, step func(int64) (int64, bool)) (int64, error) {
	limit := w.storage.Len()
	current := start

	for visited := int64(1); ; visited++ {
		if visited > limit {
			return 0, fmt.Errorf("%w: %s walk visited more than %d nodes", storage.ErrBrokenLink, direction, limit)
		}

		value, ok := w.storage.GetByID(current)
		if !ok {
			return 0, fmt.Errorf("%s walk reached %d: %w", direction, current, storage.ErrNotFound)
		}
		w.logger.Debug("visit", zap.String("direction", string(direction)), zap.Int64("id", current), zap.Int64("value", value))
		if err := w.visit(dto.NewStep(direction, current, value)); err != nil {
			return 0, fmt.Errorf("visit %d: %w", current, err)
		}

		next, ok := step(current)
		if !ok {
			return current, nil
		}
		current = next
	}
}
