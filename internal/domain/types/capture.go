package types

// CaptureState is the lifecycle position of an audio capture session.
type CaptureState int

const (
	CaptureIdle CaptureState = iota
	CaptureRecording
	CapturePendingSave
)

// String returns a human-readable state name.
func (s CaptureState) String() string {
	switch s {
	case CaptureIdle:
		return "idle"
	case CaptureRecording:
		return "recording"
	case CapturePendingSave:
		return "pending-save"
	default:
		return "unknown"
	}
}

// SaveMode selects what Stop does with a finished recording.
type SaveMode string

const (
	// SaveToVault holds the recording until the caller saves or discards it.
	SaveToVault SaveMode = "vault"
	// SaveAsDownload writes the recording straight to a file.
	SaveAsDownload SaveMode = "download"
)

// AudioFormat describes the PCM stream produced by a microphone.
type AudioFormat struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Recording is a finalized capture.
type Recording struct {
	Audio []byte // WAV payload
	Path  string // set when saved as a download
}
