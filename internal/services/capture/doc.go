// Package capture records audio evidence.
//
// A Session moves Idle → Recording → (PendingSave →) Idle. Start opens a
// Microphone and collects PCM chunks on one goroutine; Stop joins it and
// finalizes the chunks into a 16-bit WAV payload. In vault mode the payload
// waits for Save or Discard; in download mode it is written to disk at once.
//
// Microphones:
//
//   - WAVFile replays a recorded file as if it were a device
//   - Denied models a refused microphone permission
package capture
