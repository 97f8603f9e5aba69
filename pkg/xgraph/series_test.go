package xgraph

import (
	"errors"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

func TestStoreAddNormalizesAndCopies(t *testing.T) {
	var s Store
	data := []float64{0, 0, 1, 1}
	index, err := s.Add(Element{Color: [4]float64{255, 0, 51, 255}, Data: data})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if index != 0 {
		t.Errorf("Expected index 0, got %d", index)
	}

	data[0] = 99
	got, ok := s.At(0)
	if !ok {
		t.Fatalf("Expected series at 0")
	}
	if got.Data[0] != 0 {
		t.Errorf("Stored data must not alias the caller's slice")
	}
	blue := 51.0
	want := mgl32.Vec4{1, 0, float32(blue / 255), 1}
	if got.Color != want {
		t.Errorf("Expected color %v, got %v", want, got.Color)
	}

	got.Data[1] = 42
	again, _ := s.At(0)
	if again.Data[1] != 0 {
		t.Errorf("At must return a copy")
	}
}

func TestStoreRejectsOddData(t *testing.T) {
	var s Store
	if _, err := s.Add(Element{Data: []float64{1, 2, 3}}); !errors.Is(err, ErrOddLength) {
		t.Fatalf("Expected ErrOddLength, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Rejected element must not be stored")
	}
}

func TestStoreAddRemoveRestores(t *testing.T) {
	var s Store
	s.Add(Element{Color: [4]float64{255, 0, 0, 255}, Data: []float64{0, 0, 1, 1}})
	s.Add(Element{Color: [4]float64{0, 255, 0, 255}, Data: []float64{2, 2}})
	before := snapshot(&s)

	index, err := s.Add(Element{Color: [4]float64{0, 0, 255, 255}, Data: []float64{3, 3}})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Remove(index); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if after := snapshot(&s); !reflect.DeepEqual(before, after) {
		t.Errorf("Expected %v after add/remove, got %v", before, after)
	}
}

func TestStoreRemoveShiftsIndices(t *testing.T) {
	var s Store
	for i := 0; i < 3; i++ {
		s.Add(Element{Data: []float64{float64(i), 0}})
	}
	if err := s.Remove(0); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	got, _ := s.At(0)
	if got.Data[0] != 1 {
		t.Errorf("Expected former index 1 at 0, got %v", got.Data)
	}
}

func TestStoreRemoveOutOfRange(t *testing.T) {
	var s Store
	s.Add(Element{Data: []float64{1, 1}})
	for _, index := range []int{-1, 1, 5} {
		if err := s.Remove(index); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Remove(%d): expected ErrIndexOutOfRange, got %v", index, err)
		}
	}
	if s.Len() != 1 {
		t.Errorf("Failed removals must leave the store unchanged")
	}
}

func TestStoreClear(t *testing.T) {
	var s Store
	s.Add(Element{Data: []float64{1, 1}})
	s.Add(Element{Data: []float64{2, 2}})
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Expected empty store, got %d", s.Len())
	}
	if _, ok := s.At(0); ok {
		t.Errorf("Expected no series after clear")
	}
}

func TestElementColor(t *testing.T) {
	got := ElementColor(colornames.Orange)
	want := [4]float64{255, 165, 0, 255}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func snapshot(s *Store) []Series {
	out := make([]Series, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		series, _ := s.At(i)
		out = append(out, series)
	}
	return out
}
