package helm

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"helm.sh/helm/v3/pkg/action"
	"helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/cli"
	"helm.sh/helm/v3/pkg/release"
	"helm.sh/helm/v3/pkg/storage/driver"
)

const applyTimeout = 5 * time.Minute

func actionConfig(namespace string) (*action.Configuration, error) {
	settings := cli.New()

	cfg := new(action.Configuration)
	err := cfg.Init(
		settings.RESTClientGetter(),
		namespace,
		os.Getenv("HELM_DRIVER"),
		func(format string, v ...interface{}) {},
	)
	if err != nil {
		return nil, errors.Wrap(err, "initializing helm action configuration")
	}

	return cfg, nil
}

// Apply installs the chart as releaseName, or upgrades it when a release by
// that name already exists.
func Apply(
	namespace string,
	releaseName string,
	ch *chart.Chart,
	vals map[string]interface{},
) (*release.Release, error) {
	cfg, err := actionConfig(namespace)
	if err != nil {
		return nil, err
	}

	histClient := action.NewHistory(cfg)
	histClient.Max = 1
	if _, err := histClient.Run(releaseName); errors.Is(err, driver.ErrReleaseNotFound) {
		install := action.NewInstall(cfg)
		install.ReleaseName = releaseName
		install.Namespace = namespace
		install.CreateNamespace = true
		install.Timeout = applyTimeout

		return install.Run(ch, vals)
	}

	upgrade := action.NewUpgrade(cfg)
	upgrade.Namespace = namespace
	upgrade.Timeout = applyTimeout

	return upgrade.Run(releaseName, ch, vals)
}

// Uninstall removes a release and keeps no history.
func Uninstall(namespace string, releaseName string) error {
	cfg, err := actionConfig(namespace)
	if err != nil {
		return err
	}

	uninstall := action.NewUninstall(cfg)
	if _, err := uninstall.Run(releaseName); err != nil {
		return errors.Wrapf(err, "uninstalling release %s", releaseName)
	}

	return nil
}
