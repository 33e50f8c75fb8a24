// Package notes renders the ReadySet chart's post-install banner: the text
// helm prints after `helm install`, telling the operator how to fetch the
// upstream database credentials and connect through the adapter.
package notes

import (
	"strings"

	"github.com/pkg/errors"
	"helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/chartutil"
	"helm.sh/helm/v3/pkg/engine"
)

// Template is the chart's NOTES.txt body. The kubectl --template expression
// on the host lookup line is quoted so it reaches the operator verbatim
// instead of being evaluated by the chart render.
const Template = `** Please be patient while the chart is being deployed **

CHART NAME: {{ .Chart.Name }}
CHART VERSION: {{ .Chart.Version }}
APP VERSION: {{ .Chart.AppVersion }}

Retrieve the upstream database credentials:

    MYSQL_USER=$(kubectl get secret readyset-upstream-database -o jsonpath="{.data.username}" | base64 --decode)
    MYSQL_PASSWORD=$(kubectl get secret readyset-upstream-database -o jsonpath="{.data.password}" | base64 --decode)
    MYSQL_DATABASE=$(kubectl get secret readyset-upstream-database -o jsonpath="{.data.database}" | base64 --decode)

Look up the address of the readyset-adapter service:

    READYSET_HOST=$(kubectl get svc readyset-adapter --template "{{"{{ range (index .status.loadBalancer.ingress 0) }}{{ . }}{{ end }}"}}")

Connect through ReadySet:

    mysql -u ${MYSQL_USER} -h ${READYSET_HOST} --password=${MYSQL_PASSWORD} --database=${MYSQL_DATABASE}
`

// Metadata carries the chart fields the banner interpolates.
type Metadata struct {
	Name       string
	Version    string
	AppVersion string
}

// Options selects the release the notes are rendered for.
type Options struct {
	ReleaseName string
	Namespace   string
	Values      map[string]interface{}
}

// Render produces the banner through the helm engine, the same renderer that
// produces it during a real install.
func Render(meta Metadata, opts Options) (string, error) {
	if meta.Name == "" {
		return "", errors.New("chart name is required")
	}

	ch := &chart.Chart{
		Metadata: &chart.Metadata{
			APIVersion: chart.APIVersionV2,
			Name:       meta.Name,
			Version:    meta.Version,
			AppVersion: meta.AppVersion,
		},
		Templates: []*chart.File{
			{Name: "templates/NOTES.txt", Data: []byte(Template)},
		},
	}

	releaseName := opts.ReleaseName
	if releaseName == "" {
		releaseName = meta.Name
	}
	namespace := opts.Namespace
	if namespace == "" {
		namespace = "default"
	}

	renderValues, err := chartutil.ToRenderValues(ch, opts.Values, chartutil.ReleaseOptions{
		Name:      releaseName,
		Namespace: namespace,
	}, chartutil.DefaultCapabilities)
	if err != nil {
		return "", errors.Wrap(err, "building render values")
	}

	rendered, err := engine.Render(ch, renderValues)
	if err != nil {
		return "", errors.Wrap(err, "rendering notes template")
	}

	out, ok := rendered[meta.Name+"/templates/NOTES.txt"]
	if !ok {
		return "", errors.New("notes template missing from render output")
	}

	return strings.TrimRight(out, "\n") + "\n", nil
}

// FromChart renders the NOTES.txt shipped inside a loaded chart, falling
// back to the embedded template when the chart has none.
func FromChart(ch *chart.Chart, opts Options) (string, error) {
	hasNotes := false
	for _, f := range ch.Templates {
		if strings.HasSuffix(f.Name, "NOTES.txt") {
			hasNotes = true
			break
		}
	}

	if !hasNotes {
		return Render(Metadata{
			Name:       ch.Metadata.Name,
			Version:    ch.Metadata.Version,
			AppVersion: ch.Metadata.AppVersion,
		}, opts)
	}

	releaseName := opts.ReleaseName
	if releaseName == "" {
		releaseName = ch.Metadata.Name
	}
	namespace := opts.Namespace
	if namespace == "" {
		namespace = "default"
	}

	renderValues, err := chartutil.ToRenderValues(ch, opts.Values, chartutil.ReleaseOptions{
		Name:      releaseName,
		Namespace: namespace,
	}, chartutil.DefaultCapabilities)
	if err != nil {
		return "", errors.Wrap(err, "building render values")
	}

	rendered, err := engine.Render(ch, renderValues)
	if err != nil {
		return "", errors.Wrap(err, "rendering chart templates")
	}

	for name, content := range rendered {
		if strings.HasSuffix(name, "NOTES.txt") {
			return strings.TrimRight(content, "\n") + "\n", nil
		}
	}

	return "", errors.New("notes template missing from render output")
}
