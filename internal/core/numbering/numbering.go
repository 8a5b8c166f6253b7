// Package numbering generates record identifiers and document numbers.
// Document numbers have the form YYMM-NNNN: a calendar-month key followed
// by a sequence that restarts at 0001 every month.
package numbering

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// GenerateID returns a random UUID v4 string used as a primary key.
func GenerateID() string {
	return uuid.NewString()
}

// MonthKey returns the YYMM key for t.
func MonthKey(t time.Time) string {
	return t.Format("0601")
}

// ParseSequence extracts the trailing sequence from a document number.
// Returns -1 if the number has no numeric trailing segment.
func ParseSequence(number string) int {
	i := strings.LastIndex(number, "-")
	if i < 0 || i == len(number)-1 {
		return -1
	}
	seq, err := strconv.Atoi(number[i+1:])
	if err != nil || seq < 0 {
		return -1
	}
	return seq
}

// GenerateNumber returns the next number for monthKey given every existing
// number. Numbers from other months are ignored; the first of a month is 0001.
func GenerateNumber(existing []string, monthKey string) string {
	prefix := monthKey + "-"
	maxSeq := 0
	for _, n := range existing {
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		if seq := ParseSequence(n); seq > maxSeq {
			maxSeq = seq
		}
	}
	return fmt.Sprintf("%s-%04d", monthKey, maxSeq+1)
}

// Allocator serializes number allocation per month key. Hold the lock from
// reading the existing numbers until the new record is stored.
type Allocator struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewAllocator creates an empty Allocator.
func NewAllocator() *Allocator {
	return &Allocator{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the lock for monthKey and returns its release function.
func (a *Allocator) Lock(monthKey string) (unlock func()) {
	a.mu.Lock()
	l, ok := a.locks[monthKey]
	if !ok {
		l = &sync.Mutex{}
		a.locks[monthKey] = l
	}
	a.mu.Unlock()

	l.Lock()
	return l.Unlock
}
