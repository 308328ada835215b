package analyze

import (
	"reflect"
	"testing"
)

func TestCountValuesExcludesAbsent(t *testing.T) {
	got := CountValues([]string{"a", "a", "b", "", "b", "b"})
	want := map[string]int{"a": 2, "b": 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCountValuesEmpty(t *testing.T) {
	if got := CountValues([]string(nil)); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestCountValuesInts(t *testing.T) {
	got := CountValues([]int64{5, 5, 7})
	want := map[int64]int{5: 2, 7: 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
