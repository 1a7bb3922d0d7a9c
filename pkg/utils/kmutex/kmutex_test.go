package kmutex_test

import (
	"sync"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/forge-lab/daedalus/pkg/utils/kmutex"
)

func TestKMutex_SerializesSameKey(t *testing.T) {
	km := kmutex.New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("proj-001")
			counter++
			km.Unlock("proj-001")
		}()
	}
	wg.Wait()

	gt.Number(t, counter).Equal(100)
}

func TestKMutex_IndependentKeys(t *testing.T) {
	km := kmutex.New()

	km.Lock("proj-001")
	done := make(chan struct{})
	go func() {
		// Must not block on a different key
		km.Lock("proj-002")
		km.Unlock("proj-002")
		close(done)
	}()
	<-done
	km.Unlock("proj-001")
}
