package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolve_IndependentKeys(t *testing.T) {
	registry := NewSessionRegistry(&blockingResolver{}, nopLogger{})

	d1 := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC)

	resp, err := registry.Resolve(context.Background(), "picker-a", d1)
	require.NoError(t, err)
	assert.Equal(t, d1, resp.Date)

	resp, err = registry.Resolve(context.Background(), "picker-b", d2)
	require.NoError(t, err)
	assert.Equal(t, d2, resp.Date)
}

func TestRegistryResolve_SameKeyDiscardsStale(t *testing.T) {
	resolver := &blockingResolver{
		release: make(chan struct{}),
		started: make(chan struct{}, 2),
	}
	registry := NewSessionRegistry(resolver, nopLogger{})

	firstDate := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	secondDate := time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC)

	firstDone := make(chan error, 1)
	go func() {
		_, err := registry.Resolve(context.Background(), "picker-a", firstDate)
		firstDone <- err
	}()
	<-resolver.started

	secondDone := make(chan error, 1)
	var secondResp time.Time
	go func() {
		resp, err := registry.Resolve(context.Background(), "picker-a", secondDate)
		if resp != nil {
			secondResp = resp.Date
		}
		secondDone <- err
	}()
	<-resolver.started

	close(resolver.release)

	assert.ErrorIs(t, <-firstDone, ErrStaleResolve)
	require.NoError(t, <-secondDone)
	assert.Equal(t, secondDate, secondResp)
}

func TestRegistryResolve_OtherKeyUnaffectedByStaleRace(t *testing.T) {
	resolver := &blockingResolver{
		release: make(chan struct{}),
		started: make(chan struct{}, 3),
	}
	registry := NewSessionRegistry(resolver, nopLogger{})

	dateA := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	dateB := time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC)

	// Два запроса одного календаря: первый устареет
	firstDone := make(chan error, 1)
	go func() {
		_, err := registry.Resolve(context.Background(), "picker-a", dateA)
		firstDone <- err
	}()
	<-resolver.started

	secondDone := make(chan error, 1)
	go func() {
		_, err := registry.Resolve(context.Background(), "picker-a", dateA.AddDate(0, 0, 1))
		secondDone <- err
	}()
	<-resolver.started

	// Параллельный запрос другого календаря
	otherDone := make(chan error, 1)
	go func() {
		_, err := registry.Resolve(context.Background(), "picker-b", dateB)
		otherDone <- err
	}()
	<-resolver.started

	close(resolver.release)

	assert.ErrorIs(t, <-firstDone, ErrStaleResolve)
	require.NoError(t, <-secondDone)
	require.NoError(t, <-otherDone, "unrelated picker must not be superseded")
}

func TestRegistryResolve_EmptyKeyBypassesSessions(t *testing.T) {
	resolver := &blockingResolver{
		release: make(chan struct{}),
		started: make(chan struct{}, 2),
	}
	registry := NewSessionRegistry(resolver, nopLogger{})

	d := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	firstDone := make(chan error, 1)
	go func() {
		_, err := registry.Resolve(context.Background(), "", d)
		firstDone <- err
	}()
	<-resolver.started

	secondDone := make(chan error, 1)
	go func() {
		_, err := registry.Resolve(context.Background(), "", d.AddDate(0, 0, 1))
		secondDone <- err
	}()
	<-resolver.started

	close(resolver.release)

	// Без ключа нет сессии, оба ответа применяются
	require.NoError(t, <-firstDone)
	require.NoError(t, <-secondDone)
}
