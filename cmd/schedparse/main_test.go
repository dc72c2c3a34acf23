package main

import (
	"reflect"
	"testing"
)

func TestParsePages(t *testing.T) {
	got, err := parsePages("1, 3,5")
	if err != nil {
		t.Fatalf("parsePages() error = %v", err)
	}
	if want := []int{1, 3, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("parsePages() = %v, want %v", got, want)
	}

	if _, err := parsePages("1,x"); err == nil {
		t.Error("parsePages(\"1,x\") error = nil, want error")
	}
}
