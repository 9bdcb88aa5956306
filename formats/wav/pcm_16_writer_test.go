// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

func TestWriteWAV16_Header(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	samples := []int16{100, -100, 200, -200}

	if err := WriteWAV16(&buf, 44100, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != wavHeaderSize+len(samples)*2 {
		t.Fatalf("output length = %d, want %d", len(data), wavHeaderSize+len(samples)*2)
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Errorf("missing RIFF/WAVE markers: %q %q", data[0:4], data[8:12])
	}
	if got := binary.LittleEndian.Uint32(data[4:8]); got != 36+uint32(len(samples)*2) {
		t.Errorf("riff size = %d, want %d", got, 36+len(samples)*2)
	}
	if got := binary.LittleEndian.Uint16(data[20:22]); got != 1 {
		t.Errorf("audio format = %d, want 1 (PCM)", got)
	}
	if got := binary.LittleEndian.Uint16(data[22:24]); got != 1 {
		t.Errorf("channels = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(data[24:28]); got != 44100 {
		t.Errorf("sample rate = %d, want 44100", got)
	}
	if got := binary.LittleEndian.Uint32(data[28:32]); got != 88200 {
		t.Errorf("byte rate = %d, want 88200", got)
	}
	if got := binary.LittleEndian.Uint16(data[32:34]); got != 2 {
		t.Errorf("block align = %d, want 2", got)
	}
	if got := binary.LittleEndian.Uint16(data[34:36]); got != 16 {
		t.Errorf("bits per sample = %d, want 16", got)
	}
	if got := binary.LittleEndian.Uint32(data[40:44]); got != uint32(len(samples)*2) {
		t.Errorf("data size = %d, want %d", got, len(samples)*2)
	}
}

func TestWriteWAV16_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767, -32768}
	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0, -1.0}

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 8000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	got := make([]float32, len(samples))
	n, err := src.ReadSamples(got)
	if err != nil && !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

// A payload larger than the internal chunk size must come out intact across
// the chunk boundaries.
func TestWriteWAV16_ChunkedPayload(t *testing.T) {
	t.Parallel()

	const total = 20000
	samples := make([]int16, total)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 44100, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()[wavHeaderSize:]
	if len(data) != total*2 {
		t.Fatalf("payload length = %d, want %d", len(data), total*2)
	}

	for _, i := range []int{0, 8191, 8192, 16383, 16384, total - 1} {
		got := int16(binary.LittleEndian.Uint16(data[i*2 : i*2+2]))
		if got != samples[i] {
			t.Errorf("sample %d = %d, want %d", i, got, samples[i])
		}
	}
}

func TestWriteWAV16_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 44100, nil); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	if buf.Len() != wavHeaderSize {
		t.Errorf("output length = %d, want header only (%d)", buf.Len(), wavHeaderSize)
	}
	if got := binary.LittleEndian.Uint32(buf.Bytes()[40:44]); got != 0 {
		t.Errorf("data size = %d, want 0", got)
	}
}

// failAfterWriter accepts a fixed number of writes and then fails.
type failAfterWriter struct {
	remaining int
	err       error
}

func (w *failAfterWriter) Write(p []byte) (int, error) {
	if w.remaining <= 0 {
		return 0, w.err
	}
	w.remaining--
	return len(p), nil
}

func TestWriteWAV16_WriteErrors(t *testing.T) {
	t.Parallel()

	sinkErr := errors.New("sink failed")
	samples := make([]int16, 16)

	tests := []struct {
		name   string
		accept int
	}{
		{name: "header write fails", accept: 0},
		{name: "data write fails", accept: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := &failAfterWriter{remaining: tt.accept, err: sinkErr}
			err := WriteWAV16(w, 44100, samples)
			if !errors.Is(err, sinkErr) {
				t.Errorf("WriteWAV16() error = %v, want wrapped sink error", err)
			}
		})
	}
}
