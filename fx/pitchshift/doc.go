// SPDX-License-Identifier: EPL-2.0

// Package pitchshift implements a delay-line pitch shifter with an
// independent playback speed control.
//
// Pitch is shifted by sweeping two read taps across a short delay line
// and crossfading between them with a sine window, so the shift stays
// click-free as each tap wraps. Speed does not touch the audio itself:
// the Shifter exposes it through a playback rate accessor and the host
// applies it upstream by adjusting the resampling ratio.
package pitchshift
