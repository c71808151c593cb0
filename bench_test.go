package pvector

import "testing"

func BenchmarkPushBackPersistent(b *testing.B) {
	v := New[int]()
	for i := 0; i < b.N; i++ {
		var err error
		v, err = v.PushBack(i)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPushBackTransient(b *testing.B) {
	tv := New[int]().ToTransient()
	for i := 0; i < b.N; i++ {
		if err := tv.PushBack(i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGet(b *testing.B) {
	v := New[int]()
	for i := 0; i < 100000; i++ {
		var err error
		v, err = v.PushBack(i)
		if err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Get(i % 100000)
	}
}

func BenchmarkSet(b *testing.B) {
	v := New[int]()
	for i := 0; i < 100000; i++ {
		var err error
		v, err = v.PushBack(i)
		if err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		v, err = v.Set(i%100000, i)
		if err != nil {
			b.Fatal(err)
		}
	}
}
