package benchmarks

import (
	"context"
	"testing"

	"github.com/zoobzio/inputmask"
	masktest "github.com/zoobzio/inputmask/testing"
)

func BenchmarkCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = inputmask.Compile("(999) 999-9999")
	}
}

func BenchmarkUse_Cached(b *testing.B) {
	cfg := inputmask.Config{PlaceholderChar: "X"}
	_, _ = inputmask.Use("phone", cfg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = inputmask.Use("phone", cfg)
	}
}

func BenchmarkApply(b *testing.B) {
	for _, sc := range masktest.Scenarios() {
		m := masktest.MustCompile(b, sc.Pattern, sc.Opts...)
		b.Run(sc.Name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = m.Apply(sc.Input)
			}
		})
	}
}

func BenchmarkApply_ClassDefinition(b *testing.B) {
	upper, _ := inputmask.Class("[A-Z]")
	m := masktest.MustCompile(b, "@AA-999", inputmask.WithDefinition('@', upper))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Apply("Xab123")
	}
}

func BenchmarkField_Type(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		f := inputmask.NewField(ctx, "phone", inputmask.Config{})
		_ = masktest.Type(ctx, f, "5551234567")
		_ = f.Blur(ctx)
	}
}

func BenchmarkBinder_View(b *testing.B) {
	binder, err := inputmask.UseBinder[masktest.Contact]()
	if err != nil {
		b.Fatal(err)
	}
	contact := masktest.SampleContact()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = binder.View(context.Background(), &contact)
	}
}

func BenchmarkBinder_Model(b *testing.B) {
	binder, err := inputmask.UseBinder[masktest.Contact]()
	if err != nil {
		b.Fatal(err)
	}
	src := masktest.SampleContact()
	view, _ := binder.View(context.Background(), &src)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = binder.Model(context.Background(), view)
	}
}
