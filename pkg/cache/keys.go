package cache

// Keyer derives cache keys. Implementations must be deterministic: equal
// inputs always produce equal keys.
type Keyer interface {
	// RunKey addresses the final snapshot of a seeded run.
	RunKey(opts RunKeyOpts) string

	// ArtifactKey addresses one rendered output of a snapshot.
	ArtifactKey(snapshotHash string, opts ArtifactKeyOpts) string
}

// RunKeyOpts lists every option that influences the outcome of a run.
type RunKeyOpts struct {
	Radius    int     `json:"radius"`
	Epsilon   float64 `json:"epsilon"`
	MaxSteps  int     `json:"max_steps"`
	Seed      uint64  `json:"seed"`
	Threshold float64 `json:"threshold"`
	Batch     int     `json:"batch"`
	MaxWalks  int     `json:"max_walks"`
}

// ArtifactKeyOpts lists the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Style  string  `json:"style"`
	Scale  float64 `json:"scale"`
}

// DefaultKeyer hashes its inputs with SHA-256 behind a type prefix.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) RunKey(opts RunKeyOpts) string {
	return hashKey("run", opts)
}

func (DefaultKeyer) ArtifactKey(snapshotHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", snapshotHash, opts)
}
