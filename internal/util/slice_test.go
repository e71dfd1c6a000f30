package util

import (
	"reflect"
	"testing"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{
			name: "even length",
			in:   []int{1, 2, 3, 4},
			want: []int{4, 3, 2, 1},
		},
		{
			name: "odd length",
			in:   []int{1, 2, 3},
			want: []int{3, 2, 1},
		},
		{
			name: "single element",
			in:   []int{1},
			want: []int{1},
		},
		{
			name: "empty",
			in:   []int{},
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reverse(tt.in)
			if !reflect.DeepEqual(tt.in, tt.want) {
				t.Errorf("Reverse() = %v, want %v", tt.in, tt.want)
			}
		})
	}
}

func TestReverseStrings(t *testing.T) {
	s := []string{"a", "b", "c"}
	Reverse(s)
	if !reflect.DeepEqual(s, []string{"c", "b", "a"}) {
		t.Errorf("Reverse() = %v", s)
	}
}
