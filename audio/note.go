package audio

import "math"

// MIDI note numbers used by the effects and the music loop
const (
	NoteC3 = 48
	NoteG3 = 55
	NoteC4 = 60
	NoteE4 = 64
	NoteG4 = 67
	NoteB4 = 71
	NoteC5 = 72
	NoteE5 = 76
	NoteG5 = 79
	NoteA5 = 81
	NoteC6 = 84
	NoteE6 = 88
)

// NoteFrequencies contains precomputed frequencies for MIDI notes 0-127
// A4 (note 69) = 440Hz, equal temperament
var NoteFrequencies [128]float64

func init() {
	for i := range NoteFrequencies {
		NoteFrequencies[i] = 440.0 * math.Exp2((float64(i)-69.0)/12.0)
	}
}

// NoteFreq returns frequency in Hz for MIDI note number
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= len(NoteFrequencies) {
		return 0
	}
	return NoteFrequencies[midi]
}
