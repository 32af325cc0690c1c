// SPDX-License-Identifier: EPL-2.0

package audio

// Item is a fully realized in-memory audio object: a header plus one sample
// buffer per channel. It is the whole-file counterpart to the streaming
// interfaces used for chunked transfer.
type Item struct {
	Header Header
	// Frames holds one []float32 per channel, each Header.Frames long.
	Frames [][]float32
}

// NewItem allocates an item with zeroed sample buffers matching h.
func NewItem(h Header) *Item {
	frames := make([][]float32, h.Channels)
	for ch := range frames {
		frames[ch] = make([]float32, h.Frames)
	}
	return &Item{Header: h, Frames: frames}
}

// ItemReader exposes an item's channel-major sample buffers as an
// interleaved frame stream.
type ItemReader struct {
	item *Item
	pos  int64
}

// NewItemReader creates a frame stream over item. The item must not be
// mutated while the reader is in use.
func NewItemReader(item *Item) *ItemReader {
	return &ItemReader{item: item}
}

func (r *ItemReader) ReadFrames(dst []float32) (int, error) {
	channels := r.item.Header.Channels
	if channels == 0 || len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	remaining := r.item.Header.Frames - r.pos
	frames := int64(len(dst) / channels)
	if frames > remaining {
		frames = remaining
	}

	for i := int64(0); i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			dst[i*int64(channels)+int64(ch)] = r.item.Frames[ch][r.pos+i]
		}
	}

	r.pos += frames
	return int(frames), nil
}

// ItemWriter materializes a frame stream into an item. WriteHeader
// allocates the sample buffers; WriteFrames deinterleaves into them.
type ItemWriter struct {
	item *Item
	pos  int64
}

// NewItemWriter creates an ItemOutput that populates item in place.
func NewItemWriter(item *Item) *ItemWriter {
	return &ItemWriter{item: item}
}

func (w *ItemWriter) WriteHeader(h Header) error {
	if err := h.Validate(); err != nil {
		return err
	}

	w.item.Header = h
	w.item.Frames = make([][]float32, h.Channels)
	for ch := range w.item.Frames {
		w.item.Frames[ch] = make([]float32, h.Frames)
	}
	w.pos = 0

	return nil
}

func (w *ItemWriter) WriteFrames(src []float32) (int, error) {
	channels := w.item.Header.Channels
	if channels == 0 {
		return 0, ErrHeaderNotWritten
	}
	if len(src)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	remaining := w.item.Header.Frames - w.pos
	frames := int64(len(src) / channels)
	if frames > remaining {
		frames = remaining
	}

	for i := int64(0); i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			w.item.Frames[ch][w.pos+i] = src[i*int64(channels)+int64(ch)]
		}
	}

	w.pos += frames
	return int(frames), nil
}

func (w *ItemWriter) SeekFrame(frame int64) error {
	if frame < 0 || frame > w.item.Header.Frames {
		return ErrInvalidFrameCount
	}
	w.pos = frame
	return nil
}

// Commit is a no-op: an item becomes visible as soon as it is populated.
func (w *ItemWriter) Commit() error { return nil }
