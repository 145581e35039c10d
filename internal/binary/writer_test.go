package binary

import (
	"bytes"
	"testing"
)

func TestRecordWriter_WriteFixed_Pads(t *testing.T) {
	w := NewRecordWriter(10)
	w.WriteFixed([]byte("abc"), 6)

	want := []byte("abc   ")
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("expected %q, got %q", want, w.Bytes())
	}
}

func TestRecordWriter_WriteFixed_Truncates(t *testing.T) {
	w := NewRecordWriter(10)
	w.WriteFixed([]byte("abcdefgh"), 4)

	want := []byte("abcd")
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("expected %q, got %q", want, w.Bytes())
	}
}

func TestRecordWriter_WriteFixed_ExactWidth(t *testing.T) {
	w := NewRecordWriter(10)
	w.WriteFixed([]byte("abcd"), 4)

	if !bytes.Equal(w.Bytes(), []byte("abcd")) {
		t.Errorf("expected abcd, got %q", w.Bytes())
	}
}

func TestRecordWriter_PutUint8(t *testing.T) {
	w := NewRecordWriter(8)
	w.WriteBytes([]byte("TAG"))
	w.WriteFixed([]byte("comment"), 4)
	w.PutUint8(5, 0)
	w.PutUint8(6, 42)
	w.WriteUint8(17)

	want := []byte{'T', 'A', 'G', 'c', 'o', 0, 42, 17}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("expected %v, got %v", want, w.Bytes())
	}
	if w.Len() != 8 {
		t.Errorf("expected length 8, got %d", w.Len())
	}
}
