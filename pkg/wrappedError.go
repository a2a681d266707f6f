package pkg

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// WrappedError представляет собой структуру для обертывания ошибки и записи ее в логи.
// Реализует интерфейс error.
// Дополнительно реализует функционал вывода сообщений (не ошибок) в лог.
type WrappedError struct {
	functionName string      // Имя функции (где произошла ошибка?)
	comment      string      // Комментарий к ошибке (что именно вызвало ошибку?)
	err          error       // Ошибка, которая будет обернута
	timestamp    time.Time   // Время последнего обновления ошибки методом Specify()
	logger       *zap.Logger // Логгер, в который пишутся ошибки и сообщения
}

// NewWrappedError создает новый экземпляр WrappedError с именем функции, но без комментария.
// То есть уже известно, где ошибка может произойти, но что именно за ошибка еще неизвестно.
func NewWrappedError(funcName string) *WrappedError {
	return &WrappedError{functionName: funcName, logger: zap.NewNop()}
}

// WithLogger задает логгер. nil заменяется на zap.NewNop().
func (e *WrappedError) WithLogger(logger *zap.Logger) *WrappedError {
	if logger == nil {
		logger = zap.NewNop()
	}
	e.logger = logger
	return e
}

// Specify обновляет экземпляр, если переданная ошибка не nil. Перезаписываются err и comment.
// То есть уже известно, что это за ошибка. Функция, в которой появляется ошибка, указывается при создании.
func (e *WrappedError) Specify(err error, comment string) *WrappedError {
	if err != nil {
		e.err = err
		e.comment = comment
		e.timestamp = time.Now()
	}
	return e
}

// Err возвращает сам экземпляр, если ошибка задана, иначе nil.
// Нужна, чтобы не вернуть типизированный nil в качестве error.
func (e *WrappedError) Err() error {
	if e.err == nil {
		return nil
	}
	return e
}

// Error возвращает строковое представление ошибки с комментарием и именем функции.
func (e *WrappedError) Error() string {
	if e.err == nil {
		return ""
	}
	return fmt.Sprintf("'%s' in function '%s' invoked '%s'", e.comment, e.functionName, e.err.Error())
}

// Unwrap позволяет errors.Is и errors.As добраться до исходной ошибки
func (e *WrappedError) Unwrap() error {
	return e.err
}

// LogError пишет ошибку в лог. Если ошибки нет, то ничего не делает.
func (e *WrappedError) LogError() *WrappedError {
	if e.err != nil {
		e.logger.Error(e.comment,
			zap.String("function", e.functionName),
			zap.Time("specified_at", e.timestamp),
			zap.Error(e.err))
	}
	return e
}

// LogMsg пишет в лог сообщение, которое не является ошибкой
func (e *WrappedError) LogMsg(msg string, fields ...zap.Field) {
	e.logger.Debug(msg, append([]zap.Field{zap.String("function", e.functionName)}, fields...)...)
}
