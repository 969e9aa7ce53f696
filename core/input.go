package core

import "io"

// Input supplies bytes to read instructions, one per call.
type Input interface {
	ReadByte() (byte, error)
}

type byteInput struct {
	r   io.Reader
	buf [1]byte
}

// NewByteInput adapts r to Input. Each ReadByte consumes exactly one byte from
// r and never reads ahead, so bytes after the last read stay available to
// other readers of r.
func NewByteInput(r io.Reader) Input {
	return &byteInput{r: r}
}

func (b *byteInput) ReadByte() (byte, error) {
	_, err := io.ReadFull(b.r, b.buf[:])
	if err != nil {
		return 0, err
	}
	return b.buf[0], nil
}
