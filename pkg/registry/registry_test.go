package registry

import (
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/arthur-debert/zenith/pkg/errors"
)

// TestItem is a simple type for testing
type TestItem struct {
	ID    int
	Name  string
	Value string
}

func TestNew(t *testing.T) {
	reg := New[TestItem]()

	if reg == nil {
		t.Fatal("New() returned nil")
	}

	if reg.Count() != 0 {
		t.Errorf("New registry should be empty, got count %d", reg.Count())
	}

	if reg.Generation() != 0 {
		t.Errorf("New registry should have generation 0, got %d", reg.Generation())
	}
}

func TestRegister(t *testing.T) {
	reg := New[TestItem]()

	t.Run("register valid item", func(t *testing.T) {
		item := TestItem{ID: 1, Name: "test", Value: "value1"}
		err := reg.Register("item1", item)

		if err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}

		if reg.Count() != 1 {
			t.Errorf("Count() = %d, want 1", reg.Count())
		}
	})

	t.Run("register with empty name", func(t *testing.T) {
		item := TestItem{ID: 2, Name: "test2", Value: "value2"}
		err := reg.Register("", item)

		if !errors.IsErrorCode(err, errors.ErrInvalidInput) {
			t.Errorf("Register() with empty name should return ErrInvalidInput, got %v", err)
		}
	})

	t.Run("register duplicate", func(t *testing.T) {
		item := TestItem{ID: 3, Name: "test3", Value: "value3"}
		err := reg.Register("item1", item)

		if !errors.IsErrorCode(err, errors.ErrAlreadyExists) {
			t.Errorf("Register() duplicate should return ErrAlreadyExists, got %v", err)
		}
	})
}

func TestSet(t *testing.T) {
	reg := New[TestItem]()

	reg.Set("item1", TestItem{ID: 1, Name: "first"})
	reg.Set("item1", TestItem{ID: 2, Name: "second"})

	got, err := reg.Get("item1")
	if err != nil {
		t.Fatalf("Get() error = %v, want nil", err)
	}

	if got.ID != 2 || got.Name != "second" {
		t.Errorf("Set() should overwrite, got %+v", got)
	}

	if reg.Count() != 1 {
		t.Errorf("Count() = %d, want 1", reg.Count())
	}
}

func TestGet(t *testing.T) {
	reg := New[TestItem]()
	item := TestItem{ID: 1, Name: "test", Value: "value1"}
	_ = reg.Register("item1", item)

	t.Run("get existing item", func(t *testing.T) {
		got, err := reg.Get("item1")

		if err != nil {
			t.Fatalf("Get() error = %v, want nil", err)
		}

		if got.ID != item.ID || got.Name != item.Name || got.Value != item.Value {
			t.Errorf("Get() = %+v, want %+v", got, item)
		}
	})

	t.Run("get non-existing item", func(t *testing.T) {
		_, err := reg.Get("nonexistent")

		if !errors.IsErrorCode(err, errors.ErrNotFound) {
			t.Errorf("Get() non-existing should return ErrNotFound, got %v", err)
		}
	})
}

func TestRemove(t *testing.T) {
	reg := New[TestItem]()
	_ = reg.Register("item1", TestItem{ID: 1})

	t.Run("remove existing item", func(t *testing.T) {
		if err := reg.Remove("item1"); err != nil {
			t.Fatalf("Remove() error = %v, want nil", err)
		}

		if reg.Has("item1") {
			t.Error("Remove() should delete the item")
		}
	})

	t.Run("remove non-existing item", func(t *testing.T) {
		err := reg.Remove("item1")

		if !errors.IsErrorCode(err, errors.ErrNotFound) {
			t.Errorf("Remove() non-existing should return ErrNotFound, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	reg := New[TestItem]()

	names := []string{"zeta", "alpha", "mid"}
	for i, name := range names {
		_ = reg.Register(name, TestItem{ID: i})
	}

	got := reg.List()

	want := append([]string{}, names...)
	sort.Strings(want)

	if len(got) != len(want) {
		t.Fatalf("List() returned %d names, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestClear(t *testing.T) {
	reg := New[TestItem]()
	_ = reg.Register("item1", TestItem{ID: 1})
	_ = reg.Register("item2", TestItem{ID: 2})

	reg.Clear()

	if reg.Count() != 0 {
		t.Errorf("Count() after Clear() = %d, want 0", reg.Count())
	}
}

func TestGeneration(t *testing.T) {
	reg := New[TestItem]()

	gen := reg.Generation()
	_ = reg.Register("item1", TestItem{ID: 1})

	if reg.Generation() <= gen {
		t.Error("Register() should bump the generation")
	}

	gen = reg.Generation()
	reg.Set("item1", TestItem{ID: 2})

	if reg.Generation() <= gen {
		t.Error("Set() should bump the generation")
	}

	gen = reg.Generation()
	if _, err := reg.Get("item1"); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if reg.Generation() != gen {
		t.Error("Get() must not bump the generation")
	}
}

func TestConcurrentAccess(t *testing.T) {
	reg := New[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			reg.Set(fmt.Sprintf("item%d", n), n)
			_ = reg.Has(fmt.Sprintf("item%d", n))
			_ = reg.List()
		}(i)
	}
	wg.Wait()

	if reg.Count() != 50 {
		t.Errorf("Count() = %d, want 50", reg.Count())
	}
}

func TestMustRegister(t *testing.T) {
	reg := New[TestItem]()

	MustRegister(reg, "item1", TestItem{ID: 1})

	defer func() {
		if recover() == nil {
			t.Error("MustRegister() with duplicate should panic")
		}
	}()
	MustRegister(reg, "item1", TestItem{ID: 2})
}

func TestMustGet(t *testing.T) {
	reg := New[TestItem]()
	_ = reg.Register("item1", TestItem{ID: 1})

	got := MustGet(reg, "item1")
	if got.ID != 1 {
		t.Errorf("MustGet() = %+v, want ID 1", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustGet() missing item should panic")
		}
	}()
	MustGet(reg, "missing")
}
