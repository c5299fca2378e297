// ABOUTME: Tests for the process-wide defaults: lazy initialisation, swap, concurrent reads
// ABOUTME: Mutating tests restore the previous value before returning

package style

import (
	"sync"
	"testing"
)

func TestCurrent_StartsFromBuiltin(t *testing.T) {
	d := Current()
	if d.Font == "" || d.Border.Name == "" {
		t.Fatalf("Current() not initialised: %+v", d)
	}
}

func TestSetCurrent(t *testing.T) {
	old := Current()
	defer SetCurrent(old)

	d := Builtin()
	d.Font = "small"
	d.Border, _ = Border("heavy")
	SetCurrent(d)

	got := Current()
	if got.Font != "small" || got.Border.Name != "heavy" {
		t.Errorf("Current() = %+v after SetCurrent", got)
	}
}

func TestBuiltin(t *testing.T) {
	t.Parallel()

	d := Builtin()
	if !d.Style.UseColor || d.Font != DefaultFont || d.Border != SingleBorder() {
		t.Errorf("Builtin() = %+v", d)
	}
	if !d.Style.Colors.Foreground.IsDefault() || !d.Style.Colors.Background.IsDefault() {
		t.Error("builtin colours should be the terminal defaults")
	}
}

func TestCurrent_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = Current()
		}()
	}
	wg.Wait()
}
