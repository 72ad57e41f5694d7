package capture

import (
	"errors"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"safelens/internal/domain"
)

// OutputBitDepth is the sample size of finalized recordings.
const OutputBitDepth = 16

// encodeWAV joins chunks in order and encodes them as a 16-bit PCM WAV.
func encodeWAV(format domain.AudioFormat, chunks [][]int) ([]byte, error) {
	if format.SampleRate <= 0 || format.Channels <= 0 {
		return nil, errors.New("capture: stream reported no audio format")
	}
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	data := make([]int, 0, total)
	for _, c := range chunks {
		for _, v := range c {
			data = append(data, to16(v, format.BitDepth))
		}
	}

	out := &memFile{}
	enc := wav.NewEncoder(out, format.SampleRate, OutputBitDepth, format.Channels, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: format.Channels,
			SampleRate:  format.SampleRate,
		},
		Data:           data,
		SourceBitDepth: OutputBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return out.buf, nil
}

// to16 rescales a sample of the given depth to 16 bits. 8-bit WAV is
// unsigned.
func to16(v, depth int) int {
	switch {
	case depth == 8:
		return (v - 128) << 8
	case depth > 16:
		return v >> (depth - 16)
	default:
		return v
	}
}

// memFile is an in-memory io.WriteSeeker; the WAV encoder seeks back to
// patch chunk sizes once the data is written.
type memFile struct {
	buf []byte
	pos int
}

func (m *memFile) Write(p []byte) (int, error) {
	end := m.pos + len(p)
	if end > len(m.buf) {
		m.buf = append(m.buf, make([]byte, end-len(m.buf))...)
	}
	copy(m.buf[m.pos:], p)
	m.pos = end
	return len(p), nil
}

func (m *memFile) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(m.pos) + offset
	case io.SeekEnd:
		abs = int64(len(m.buf)) + offset
	default:
		return 0, errors.New("capture: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("capture: negative position")
	}
	m.pos = int(abs)
	return abs, nil
}
