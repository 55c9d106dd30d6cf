package out

// ProgressSink defines the contract for surfacing image build progress.
// Lines arrive one at a time, in engine order, while the build is still running.
type ProgressSink interface {
	// Progress receives one non-blank progress line without its trailing newline.
	Progress(line string)
}
