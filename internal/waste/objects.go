package waste

import (
	"fmt"
	"strconv"

	"lowperf/pkg/random"
)

// Address is owned by exactly one UserRecord.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

// UserRecord is a throwaway record built once per iteration.
type UserRecord struct {
	Name    string
	Age     int
	Address *Address
	Tags    []string
}

// ObjectResult summarizes CreateUsers.
type ObjectResult struct {
	Created int
	Users   []*UserRecord
}

// NewAddress derives an address from id.
func NewAddress(id int) *Address {
	return &Address{
		Street:  "Street " + strconv.Itoa(id),
		City:    "City " + strconv.Itoa(id%100),
		State:   "State " + strconv.Itoa(id%50),
		ZipCode: fmt.Sprintf("%05d", id%100000),
	}
}

// RandomTags returns count tags of the form "Tag<n>", n in [0,1000).
func RandomTags(count int, src random.Source) []string {
	var tags []string
	for i := 0; i < count; i++ {
		tags = append(tags, "Tag"+strconv.Itoa(src.IntN(1000)))
	}
	return tags
}

// CreateUsers builds one UserRecord per iteration and keeps only the
// even-indexed ones. The odd ones become garbage immediately.
func CreateUsers(iterations, tagsPerRecord int, src random.Source) ObjectResult {
	var users []*UserRecord
	for i := 0; i < iterations; i++ {
		user := &UserRecord{
			Name:    "User" + strconv.Itoa(i),
			Age:     src.IntN(100),
			Address: NewAddress(i),
			Tags:    RandomTags(tagsPerRecord, src),
		}
		if i%2 == 0 {
			users = append(users, user)
		}
	}
	return ObjectResult{Created: iterations, Users: users}
}
