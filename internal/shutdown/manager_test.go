package shutdown

import (
	"sync"
	"testing"
	"time"

	"yargizeka/internal/logger"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu    *sync.Mutex
	order *[]int
	id    int
}

func (r recorder) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.order = append(*r.order, r.id)
}

type blocker struct{}

func (blocker) Shutdown() {
	select {}
}

func TestManager_ReverseOrderOnce(t *testing.T) {
	var mu sync.Mutex
	var order []int
	m := NewManager(logger.Nop{})
	for i := 1; i <= 3; i++ {
		m.Register(recorder{mu: &mu, order: &order, id: i})
	}

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []int{3, 2, 1}, order)
	select {
	case <-m.Done():
	default:
		t.Fatal("Done channel should be closed")
	}
}

func TestManager_ComponentTimeout(t *testing.T) {
	var mu sync.Mutex
	var order []int
	m := NewManager(logger.Nop{})
	m.timeout = 10 * time.Millisecond
	m.Register(recorder{mu: &mu, order: &order, id: 1})
	m.Register(blocker{})

	m.Shutdown()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1}, order)
}

func TestManager_StopSkipsComponents(t *testing.T) {
	var mu sync.Mutex
	var order []int
	m := NewManager(logger.Nop{})
	m.Register(recorder{mu: &mu, order: &order, id: 1})
	m.Listen()

	m.Stop()
	m.Shutdown()

	assert.Empty(t, order)
}
