package gtmagent

// ArtifactWriter persists generated text artifacts.
type ArtifactWriter interface {
	// Write stores content under a timestamped name derived from kind
	// and returns the path written.
	Write(kind string, content string) (path string, err error)
}
