package filter

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// generateTestRecords creates product-shaped records. Even indexes are active.
func generateTestRecords(count int) []Record {
	records := make([]Record, count)

	for i := range count {
		records[i] = Record{
			"id":             fmt.Sprintf("p-%d", i),
			"name":           fmt.Sprintf("Product %d", i),
			"sku":            fmt.Sprintf("SKU-%04d", i),
			"price":          float64(5 + i%50),
			"stock_quantity": float64(i % 7),
			"is_active":      i%2 == 0,
			"tags":           []any{"sale", "new", "clearance"}[:(i%3)+1],
			"created_at":     time.Now().AddDate(0, -i%12, 0).Format(time.RFC3339),
		}
	}

	return records
}

func BenchmarkCompileFilter(b *testing.B) {
	expressions := []struct {
		name string
		expr string
	}{
		{"simple", `is_active`},
		{"complex", `is_active and price > 20 and icontains(name, "product") and daysSince(created_at) > 30`},
	}

	for _, tc := range expressions {
		b.Run(tc.name, func(b *testing.B) {
			compiler := NewExprCompiler()
			b.ReportAllocs()
			for b.Loop() {
				if _, err := compiler.Compile(tc.expr); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCompileFilterWithCache(b *testing.B) {
	compiler := NewExprCompiler(WithCache(100))
	expression := `is_active and price > 20`

	b.ReportAllocs()
	for b.Loop() {
		if _, err := compiler.Compile(expression); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFilterEvaluation(b *testing.B) {
	filter, err := NewExprCompiler().Compile(`is_active and price > 20 and "sale" in tags`)
	if err != nil {
		b.Fatal(err)
	}
	record := generateTestRecords(1)[0]

	b.ReportAllocs()
	for b.Loop() {
		filter.Evaluate(record)
	}
}

func BenchmarkEvaluator(b *testing.B) {
	filter, err := NewExprCompiler().Compile(`is_active and stock_quantity < 3`)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	for _, size := range []int{50, 1000, 10000} {
		records := generateTestRecords(size)

		b.Run(fmt.Sprintf("sequential-%d", size), func(b *testing.B) {
			for b.Loop() {
				evaluateSequential(filter, records)
			}
		})
		b.Run(fmt.Sprintf("concurrent-%d", size), func(b *testing.B) {
			evaluator := NewConcurrentEvaluator()
			for b.Loop() {
				if _, err := evaluator.Evaluate(ctx, filter, records); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
