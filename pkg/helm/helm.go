package helm

const (
	// ReadySetHelmRepoURL is the public chart repository ReadySet publishes to.
	ReadySetHelmRepoURL = "https://helm.releases.readyset.io"

	// ReadySetChart is the chart deploying the adapter + server pair.
	ReadySetChart = "readyset"

	// DefaultReleaseName is what the docs assume; the notes and connection
	// commands reference resources named after it.
	DefaultReleaseName = "readyset"
)
