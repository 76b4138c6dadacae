package model

// Segment is the intermediate type produced by connectors and consumed by the engine.
// One Segment corresponds to one transcript record in the source corpus.
type Segment struct {
	Source    string         // provider name (e.g. "manifest")
	Text      string         // transcript text
	AudioPath string         // source audio file, when the provider supplies one
	Duration  float64        // audio duration in seconds, 0 when unknown
	Metadata  map[string]any // provider-specific metadata
}
