package helm

import (
	"os"

	"github.com/pkg/errors"
	"helm.sh/helm/v3/pkg/cli"
	"helm.sh/helm/v3/pkg/downloader"
	"helm.sh/helm/v3/pkg/getter"
	"helm.sh/helm/v3/pkg/repo"
)

// DownloadChart fetches a chart tarball from a repository into dest and
// returns the path of the downloaded archive. An empty version means latest.
func DownloadChart(url string, name string, version string, dest string) (string, error) {
	settings := cli.New()
	getters := getter.All(settings)

	chartURL, err := repo.FindChartInRepoURL(url, name, version, "", "", "", getters)
	if err != nil {
		return "", errors.Wrapf(err, "locating chart %s in %s", name, url)
	}

	if err := os.MkdirAll(dest, 0755); err != nil {
		return "", err
	}

	dl := downloader.ChartDownloader{
		Out:              os.Stderr,
		Verify:           downloader.VerifyNever,
		Getters:          getters,
		RepositoryConfig: settings.RepositoryConfig,
		RepositoryCache:  settings.RepositoryCache,
	}

	saved, _, err := dl.DownloadTo(chartURL, version, dest)
	if err != nil {
		return "", errors.Wrapf(err, "downloading chart %s", chartURL)
	}

	return saved, nil
}
