package waste

import "strconv"

// CollectionResult summarizes GrowCollections.
type CollectionResult struct {
	Iterations int
	Evens      int
	Keys       int
	Unique     int
}

// GrowCollections fills a slice, a map and a set without size hints.
// Every map value is a fresh placeholder of width slots. Set keys cycle
// through keySpace values, so most inserts are duplicates. Even numbers
// are then collected by a linear scan.
func GrowCollections(iterations, width, keySpace int) CollectionResult {
	var numbers []int
	data := map[string][]any{}
	uniqueItems := map[string]struct{}{}

	for i := 0; i < iterations; i++ {
		numbers = append(numbers, i)
		data["key"+strconv.Itoa(i)] = make([]any, width)
		uniqueItems["item"+strconv.Itoa(i%keySpace)] = struct{}{}
	}

	var evenNumbers []int
	for _, num := range numbers {
		if num%2 == 0 {
			evenNumbers = append(evenNumbers, num)
		}
	}

	return CollectionResult{
		Iterations: iterations,
		Evens:      len(evenNumbers),
		Keys:       len(data),
		Unique:     len(uniqueItems),
	}
}
