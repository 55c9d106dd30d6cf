package domain

// BuildRequest describes an image build from a local working directory.
type BuildRequest struct {
	Dockerfile string // path to the Dockerfile, absolute or relative to the process
	ContextDir string // root of the build context
	Tag        string
	BuildArgs  map[string]string
	NoCache    bool
}

// BuildOptions is the engine level build request.
type BuildOptions struct {
	Dockerfile string // relative to the context root, slash separated
	Tags       []string
	BuildArgs  map[string]string
	NoCache    bool
}
