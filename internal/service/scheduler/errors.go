package scheduler

import "errors"

var (
	// ErrStaleResolve возвращается, когда результат выборки устарел:
	// за время запроса была выбрана другая дата
	ErrStaleResolve = errors.New("availability resolve superseded by a newer selection")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
