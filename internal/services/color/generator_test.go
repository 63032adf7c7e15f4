package color

import (
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/thenoetrevino/swatch/internal/models"
)

func TestGenerate_CodeFormat(t *testing.T) {
	t.Parallel()
	gen := NewGenerator()

	for i := 0; i < 1000; i++ {
		record := gen.Generate()
		if !models.ValidCode(record.Code) {
			t.Fatalf("Generated invalid code %q", record.Code)
		}
		if record.ID != 0 {
			t.Fatalf("Generated record should not carry an ID, got %d", record.ID)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := func() time.Time { return now }

	a := NewGenerator(WithRand(rand.New(rand.NewPCG(7, 7))), WithClock(clock))
	b := NewGenerator(WithRand(rand.New(rand.NewPCG(7, 7))), WithClock(clock))

	for i := 0; i < 10; i++ {
		ra, rb := a.Generate(), b.Generate()
		if ra.Code != rb.Code {
			t.Fatalf("Same seed produced %q and %q", ra.Code, rb.Code)
		}
		if ra.Time != now.UnixMilli() {
			t.Fatalf("Expected time %d, got %d", now.UnixMilli(), ra.Time)
		}
	}
}

func TestGenerate_CoversChannelRange(t *testing.T) {
	t.Parallel()
	gen := NewGenerator(WithRand(rand.New(rand.NewPCG(42, 99))))

	var sawLow, sawHigh bool
	for i := 0; i < 5000; i++ {
		r, _, _, err := gen.Generate().RGB()
		if err != nil {
			t.Fatalf("RGB failed: %v", err)
		}
		if r < 16 {
			sawLow = true
		}
		if r > 239 {
			sawHigh = true
		}
	}
	if !sawLow || !sawHigh {
		t.Errorf("Red channel did not span its range (low=%v high=%v)", sawLow, sawHigh)
	}
}

func TestGenerate_ConcurrentPinnedRand(t *testing.T) {
	t.Parallel()
	gen := NewGenerator(WithRand(rand.New(rand.NewPCG(1, 2))))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if code := gen.Generate().Code; !models.ValidCode(code) {
					t.Errorf("Generated invalid code %q", code)
					return
				}
			}
		}()
	}
	wg.Wait()
}
