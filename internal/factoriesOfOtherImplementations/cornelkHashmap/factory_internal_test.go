package cornelkHashmap

import (
	"strconv"
	"testing"
)

func TestBulkSetIsVisible(t *testing.T) {
	for iteration := 0; iteration < 20; iteration++ {
		m := NewWithArgs(0.75, 16)
		for i := 0; i < 1024*16; i++ {
			if err := m.Set(strconv.Itoa(i*6000), i); err != nil {
				t.Fatalf("Cannot set %v: %v", i*6000, err)
			}
		}
		for i := 0; i < 1024*16; i++ {
			r, err := m.Get(strconv.Itoa(i * 6000))
			if err != nil {
				t.Fatalf("iteration %v: %v not found", iteration, i*6000)
			}
			if r.(int) != i {
				t.Fatalf("%v != %v", r, i)
			}
		}
		if m.Len() != 1024*16 {
			t.Fatalf("m.Len() is not %v: %v", 1024*16, m.Len())
		}
	}
}
