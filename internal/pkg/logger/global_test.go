package logger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLogger() *ZapLogger {
	nop := zap.NewNop()
	return &ZapLogger{Logger: nop, sugar: nop.Sugar()}
}

func TestGetGlobalLogger_FallbackInstalledOnce(t *testing.T) {
	mu.Lock()
	globalLogger = nil
	mu.Unlock()

	first := GetGlobalLogger()
	require.NotNil(t, first)
	assert.Same(t, first, GetGlobalLogger())
}

func TestGlobalLogger_ConcurrentGetAndSet(t *testing.T) {
	mu.Lock()
	globalLogger = nil
	mu.Unlock()

	replacement := newTestLogger()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NotNil(t, GetGlobalLogger())
		}()
		go func() {
			defer wg.Done()
			SetGlobalLogger(replacement)
		}()
	}
	wg.Wait()

	assert.Same(t, replacement, GetGlobalLogger())
}
