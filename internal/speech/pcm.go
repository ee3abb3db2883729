package speech

import "encoding/binary"

// SampleRate is the fixed sample rate of synthesized audio: 24 kHz mono.
const SampleRate = 24000

// DecodePCM16 converts raw 16-bit little-endian PCM into normalized
// float32 samples in [-1, 1). A trailing odd byte is dropped.
func DecodePCM16(data []byte) []float32 {
	n := len(data) / 2
	samples := make([]float32, n)
	for i := 0; i < n; i++ {
		s := int16(binary.LittleEndian.Uint16(data[i*2:]))
		samples[i] = float32(s) / 32768.0
	}
	return samples
}

// EncodePCM16 converts normalized float32 samples back to 16-bit
// little-endian PCM, clamping out-of-range values.
func EncodePCM16(samples []float32) []byte {
	out := make([]byte, len(samples)*2)
	for i, f := range samples {
		v := f * 32768.0
		if v > 32767 {
			v = 32767
		}
		if v < -32768 {
			v = -32768
		}
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(v)))
	}
	return out
}
