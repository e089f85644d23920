package validate_test

import (
	"testing"

	"github.com/dmitrymomot/validate"
)

func BenchmarkValidator_Valid(b *testing.B) {
	keep := func(v int) int { return v }
	fallback := func(_ int, _ string) int { return 0 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = validate.Of[int, int](42).
			On(validate.Negative[int], "must not be negative").
			On(validate.Above(1000), "too large").
			OnSuccess(keep).
			OnFailure(fallback)
	}
}

func BenchmarkValidator_FailFast(b *testing.B) {
	keep := func(v int) int { return v }
	fallback := func(_ int, _ string) int { return 0 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = validate.Of[int, int](-5, validate.FailFast()).
			On(validate.Negative[int], "must not be negative").
			On(validate.Above(1000), "too large").
			On(validate.Zero[int], "must not be zero").
			OnSuccess(keep).
			OnFailure(fallback)
	}
}

func BenchmarkValidator_RunAll(b *testing.B) {
	keep := func(v int) int { return v }
	fallback := func(_ int, _ string) int { return 0 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = validate.Of[int, int](-5).
			On(validate.Negative[int], "must not be negative").
			On(validate.Above(1000), "too large").
			On(validate.Zero[int], "must not be zero").
			OnSuccess(keep).
			OnFailure(fallback)
	}
}

func BenchmarkAcceptor(b *testing.B) {
	var ok, failed int
	accept := func(string) { ok++ }
	reject := func(_ string, _ string) { failed++ }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		validate.Accept("hello").
			On(validate.Blank, "must not be blank").
			On(validate.LongerThan(64), "too long").
			OnSuccess(accept).
			OnFailure(reject)
	}
}

func BenchmarkChecks(b *testing.B) {
	// Parameterized checks are built once so the loop measures the
	// predicate alone.
	tooLong := validate.LongerThan(32)
	allowed := validate.NotOneOf("draft", "active", "archived")
	inRange := validate.Outside(1, 100)

	b.Run("blank", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = validate.Blank("   ")
		}
	})

	b.Run("longer_than", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = tooLong("a perfectly reasonable subject line")
		}
	})

	b.Run("not_email", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = validate.NotEmail("user@example.com")
		}
	})

	b.Run("not_uuid", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = validate.NotUUID("550e8400-e29b-41d4-a716-446655440000")
		}
	})

	b.Run("not_one_of", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = allowed("active")
		}
	})

	b.Run("outside", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = inRange(50)
		}
	})
}
