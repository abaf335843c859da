package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/ATL-SchedulingService/internal/usecase/get_available_times"
)

// Сессии нужны только как барьер от устаревших ответов, их потеря лишь
// сбрасывает счетчики поколений. При переполнении реестр очищается целиком.
const maxSessions = 10000

// SessionRegistry раздает сессии выборки слотов по ключу клиентского
// календаря. Запросы одного календаря упорядочиваются его сессией,
// разные календари друг другу не мешают.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*AvailabilitySession

	resolver AvailabilityResolver
	logger   Logger
}

// NewSessionRegistry создает реестр поверх резолвера доступных слотов
func NewSessionRegistry(resolver AvailabilityResolver, logger Logger) *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*AvailabilitySession),
		resolver: resolver,
		logger:   logger,
	}
}

// Resolve получает доступные слоты на дату в рамках сессии sessionKey.
// Пустой ключ означает клиента без сессии календаря: запрос уходит в
// резолвер напрямую, упорядочивать нечего.
func (r *SessionRegistry) Resolve(ctx context.Context, sessionKey string, date time.Time) (*get_available_times.Response, error) {
	if sessionKey == "" {
		resp, err := r.resolver.Execute(ctx, &get_available_times.Request{Date: date})
		if err != nil {
			r.logger.Error("Resolve - resolver.Execute: %v", err)
			return nil, fmt.Errorf("%w: Resolve - resolver.Execute: %v", ErrInternal, err)
		}
		return resp, nil
	}

	return r.session(sessionKey).Resolve(ctx, date)
}

func (r *SessionRegistry) session(key string) *AvailabilitySession {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[key]
	if !ok {
		if len(r.sessions) >= maxSessions {
			r.logger.Warn("session: registry full, resetting %d sessions", len(r.sessions))
			r.sessions = make(map[string]*AvailabilitySession)
		}
		s = NewAvailabilitySession(r.resolver, r.logger)
		r.sessions[key] = s
	}
	return s
}
