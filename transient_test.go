package pvector

import (
	"slices"
	"testing"
)

func TestTransientBuildThenFreeze(t *testing.T) {
	tv := New[int]().ToTransient()
	for i := 0; i < 500; i++ {
		if err := tv.PushBack(i); err != nil {
			t.Fatalf("PushBack(%d): %v", i, err)
		}
	}
	if tv.Len() != 500 {
		t.Fatalf("Len() = %d, want 500", tv.Len())
	}
	v := tv.ToPersistent()
	if v.Len() != 500 {
		t.Fatalf("Len() = %d, want 500", v.Len())
	}
	for i := 0; i < 500; i++ {
		if v.Get(i) != i {
			t.Fatalf("Get(%d) = %d, want %d", i, v.Get(i), i)
		}
	}
}

func TestTransientMethodsAfterToPersistentFail(t *testing.T) {
	tv := New[int]().ToTransient()
	_ = tv.PushBack(1)
	tv.ToPersistent()
	if err := tv.PushBack(2); err != ErrDiscarded {
		t.Errorf("PushBack after ToPersistent: got %v, want ErrDiscarded", err)
	}
}

func TestTransientSetUpdateTake(t *testing.T) {
	tv := Of(10, 20, 30, 40, 50).ToTransient()
	if err := tv.Set(1, 200); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := tv.Update(0, func(v int) int { return v + 1 }); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := tv.Take(3); err != nil {
		t.Fatalf("Take: %v", err)
	}
	v := tv.ToPersistent()
	if !slices.Equal(v.Slice(), []int{11, 200, 30}) {
		t.Errorf("Slice() = %v, want [11 200 30]", v.Slice())
	}
}

func TestSourceVectorUnaffectedByTransient(t *testing.T) {
	src := Of(1, 2, 3)
	tv := src.ToTransient()
	if err := tv.PushBack(4); err != nil {
		t.Fatalf("PushBack: %v", err)
	}
	if err := tv.Set(0, 100); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !slices.Equal(src.Slice(), []int{1, 2, 3}) {
		t.Errorf("source mutated: %v", src.Slice())
	}
}

func TestDiscardIsIdempotentAndSafe(t *testing.T) {
	tv := Of(1, 2, 3).ToTransient()
	_ = tv.PushBack(4)
	tv.Discard()
	tv.Discard()
	if err := tv.Set(0, 0); err != ErrDiscarded {
		t.Errorf("Set after Discard: got %v, want ErrDiscarded", err)
	}
}

func TestTransientGet(t *testing.T) {
	tv := Of(5, 6, 7).ToTransient()
	if tv.Get(1) != 6 {
		t.Errorf("Get(1) = %d, want 6", tv.Get(1))
	}
}
