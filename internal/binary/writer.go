package binary

// RecordWriter serializes fixed-width record fields into an in-memory
// buffer so the result can be committed with a single write.
type RecordWriter struct {
	buf []byte
}

// NewRecordWriter creates a RecordWriter with capacity for size bytes.
func NewRecordWriter(size int) *RecordWriter {
	return &RecordWriter{buf: make([]byte, 0, size)}
}

// WriteBytes appends raw bytes.
func (w *RecordWriter) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteFixed appends b as a field of exactly width bytes: longer input
// is truncated, shorter input is right-padded with spaces.
func (w *RecordWriter) WriteFixed(b []byte, width int) {
	if len(b) > width {
		b = b[:width]
	}
	w.buf = append(w.buf, b...)
	for i := len(b); i < width; i++ {
		w.buf = append(w.buf, ' ')
	}
}

// WriteUint8 appends a single byte.
func (w *RecordWriter) WriteUint8(v byte) {
	w.buf = append(w.buf, v)
}

// PutUint8 overwrites the byte at off, which must already be written.
func (w *RecordWriter) PutUint8(off int, v byte) {
	w.buf[off] = v
}

// Len returns the number of bytes written so far.
func (w *RecordWriter) Len() int {
	return len(w.buf)
}

// Bytes returns the serialized record.
func (w *RecordWriter) Bytes() []byte {
	return w.buf
}
