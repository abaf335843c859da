package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/ATL-SchedulingService/internal/usecase/get_available_times"
)

// AvailabilitySession упорядочивает выборки доступных слотов для одного
// календаря. Каждый Resolve повышает поколение сессии; результат применяется,
// только если за время запроса не была выбрана другая дата. Обгоняющие запросы
// не отменяются, их результаты просто отбрасываются.
type AvailabilitySession struct {
	mu         sync.Mutex
	generation uint64

	resolver AvailabilityResolver
	logger   Logger
}

// NewAvailabilitySession создает сессию поверх резолвера доступных слотов
func NewAvailabilitySession(resolver AvailabilityResolver, logger Logger) *AvailabilitySession {
	return &AvailabilitySession{
		resolver: resolver,
		logger:   logger,
	}
}

// Resolve получает доступные слоты на дату.
// Возвращает ErrStaleResolve, если до завершения запроса была запрошена
// другая дата и этот результат уже не должен попасть в интерфейс.
func (s *AvailabilitySession) Resolve(ctx context.Context, date time.Time) (*get_available_times.Response, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	resp, err := s.resolver.Execute(ctx, &get_available_times.Request{Date: date})

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Info("Resolve: discarding stale result, generation %d < %d", gen, s.generation)
		return nil, ErrStaleResolve
	}

	if err != nil {
		s.logger.Error("Resolve - resolver.Execute: %v", err)
		return nil, fmt.Errorf("%w: Resolve - resolver.Execute: %v", ErrInternal, err)
	}
	return resp, nil
}

// Generation возвращает текущее поколение сессии
func (s *AvailabilitySession) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}
