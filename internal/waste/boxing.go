package waste

import "math"

// BoxingResult summarizes BoxIntegers.
type BoxingResult struct {
	Boxed       int
	Sum         int64
	SqrtEntries int
}

// BoxIntegers stores every loop counter in a []any and then unboxes each
// element twice to build a sum of v + 2v. It also fills a map of boxed
// square roots for sqrtKeys keys.
func BoxIntegers(iterations, sqrtKeys int) BoxingResult {
	var boxedIntegers []any
	for i := 0; i < iterations; i++ {
		boxedIntegers = append(boxedIntegers, i)
	}

	var sum int64
	for _, boxed := range boxedIntegers {
		sum += int64(boxed.(int))
		sum += int64(boxed.(int) * 2)
	}

	calculations := map[int]any{}
	for i := 0; i < sqrtKeys; i++ {
		calculations[i] = math.Sqrt(float64(i))
	}

	return BoxingResult{
		Boxed:       len(boxedIntegers),
		Sum:         sum,
		SqrtEntries: len(calculations),
	}
}
