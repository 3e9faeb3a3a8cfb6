package encio_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/maxatome/go-testdeep/td"

	"github.com/stewi1014/stf/encio"
)

func TestReadFillsBuffer(t *testing.T) {
	src := []byte("hello world")
	buff := make([]byte, len(src))

	err := encio.Read(buff, iotest.OneByteReader(bytes.NewReader(src)))
	td.CmpNoError(t, err)
	td.Cmp(t, buff, src)
}

func TestReadShort(t *testing.T) {
	buff := make([]byte, 8)

	err := encio.Read(buff, bytes.NewReader([]byte{1, 2, 3}))
	if !errors.Is(err, encio.ErrTruncated) {
		t.Fatalf("want ErrTruncated, got %v", err)
	}

	var ioErr encio.IOError
	td.CmpTrue(t, errors.As(err, &ioErr))
}

func TestReadError(t *testing.T) {
	sentinel := errors.New("broken")
	err := encio.Read(make([]byte, 4), iotest.ErrReader(sentinel))
	td.CmpTrue(t, errors.Is(err, sentinel), "got %v", err)
}

type shortWriter struct {
	w io.Writer
}

func (s shortWriter) Write(buff []byte) (int, error) {
	if len(buff) > 1 {
		buff = buff[:1]
	}
	return s.w.Write(buff)
}

func TestWriteRetriesShortWriter(t *testing.T) {
	var out bytes.Buffer
	err := encio.Write([]byte("abc"), shortWriter{&out})
	td.CmpNoError(t, err)
	td.Cmp(t, out.String(), "abc")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestWriteError(t *testing.T) {
	err := encio.Write([]byte("abc"), failWriter{})
	td.CmpTrue(t, errors.Is(err, io.ErrClosedPipe), "got %v", err)
}

func TestErrorMessage(t *testing.T) {
	err := encio.NewError(encio.ErrMalformed, "count 3, found 2", 0)
	td.CmpTrue(t, errors.Is(err, encio.ErrMalformed))
	td.Cmp(t, err.Error(), td.Re(`TestErrorMessage: malformed data \(count 3, found 2\)$`))
}

func TestErrorf(t *testing.T) {
	err := encio.Errorf(encio.ErrMalformed, "count %v, found %v", 3, 2)
	td.CmpTrue(t, errors.Is(err, encio.ErrMalformed))
	td.Cmp(t, err.Error(), td.Re(`TestErrorf: malformed data \(count 3, found 2\)$`))

	// the caller is recorded where the error is made, not in a helper further up
	_, err = encio.NewReader([]byte{2}).Bool()
	td.Cmp(t, err.Error(), td.Re(`\(\*Reader\)\.Bool: .*\(bool byte is 0x2\)$`))
}
