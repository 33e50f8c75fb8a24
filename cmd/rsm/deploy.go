package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"path"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/chart/loader"
	"helm.sh/helm/v3/pkg/release"

	"github.com/kovyrin/readyset/pkg/connect"
	"github.com/kovyrin/readyset/pkg/deployer"
	"github.com/kovyrin/readyset/pkg/helm"
	"github.com/kovyrin/readyset/pkg/helm/values"
	"github.com/kovyrin/readyset/pkg/kubectl"
	"github.com/kovyrin/readyset/pkg/notes"
	"github.com/kovyrin/readyset/pkg/spec"
	"github.com/kovyrin/readyset/pkg/term/task"
	"github.com/kovyrin/readyset/pkg/utils"
)

func init() {
	rootCmd.AddCommand(DeployCmd())
}

func base64EncodeFile(filePath string) (string, error) {
	fileContents, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(fileContents), nil
}

func downloadReadySetChart(url string, name string, version string, dest string) string {
	chartPath, err := helm.DownloadChart(url, name, version, dest)
	if err != nil {
		panic(err)
	}
	return chartPath
}

func loadChart(chartPath string) *chart.Chart {
	readysetChart, err := loader.Load(chartPath)
	if err != nil {
		panic(err)
	}
	return readysetChart
}

func deployChart(
	namespace string,
	releaseName string,
	ch *chart.Chart,
	vals map[string]interface{},
) *release.Release {
	var rel *release.Release
	cb := func() error {
		var err error
		rel, err = helm.Apply(namespace, releaseName, ch, vals)
		return err
	}
	if _, err := task.New("Deploying ReadySet", cb).Run(); err != nil {
		panic(err)
	}
	return rel
}

func specFromBundle(bundlePath string) (*spec.Spec, error) {
	specPath := path.Join(bundlePath, "spec.yaml")
	specData, err := os.ReadFile(specPath)
	if err != nil {
		return nil, err
	}

	bundleSpec := &spec.Spec{}
	if err := yaml.Unmarshal(specData, bundleSpec); err != nil {
		return nil, err
	}

	return bundleSpec, nil
}

func upsertUpstreamSecret(user, password, database, namespace string) error {
	return kubectl.UpsertSecret(map[string][]byte{
		"username": []byte(user),
		"password": []byte(password),
		"database": []byte(database),
	}, connect.DefaultSecretName, namespace)
}

func DeployCmd() *cobra.Command {
	var bundlePath string
	var chartPath string
	var valuesPath string
	var namespace string
	var channel string
	var airgapped bool
	var upstreamUser string
	var upstreamPassword string
	var upstreamDatabase string
	releaseName := helm.DefaultReleaseName

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Install or upgrade ReadySet from the helm chart",
		Run: func(cmd *cobra.Command, args []string) {
			homedir, err := os.UserHomeDir()
			if err != nil {
				fmt.Printf("could not find home dir: %v", err)
				os.Exit(1)
			}

			getSpec := func() (*spec.Spec, error) {
				if bundlePath != "" {
					return specFromBundle(bundlePath)
				}
				channelSpec, err := deployer.GetChannelSpec(channel)
				if err != nil {
					fmt.Println("Channel API unavailable, using the public chart repo:", err)
					return deployer.DefaultSpec(), nil
				}
				return channelSpec, nil
			}

			specToApply, err := getSpec()
			if err != nil {
				fmt.Println("Error getting channel spec:", err)
				os.Exit(1)
			}

			if bundlePath != "" {
				chartPath, err = utils.PathFromDir(bundlePath+"/charts", utils.ReadySetChartPattern)
				if err != nil {
					fmt.Println("Error finding readyset chart in bundle:", err)
					os.Exit(1)
				}
			}

			chartsDir := path.Join(homedir, ".readyset", "charts")
			_ = os.MkdirAll(chartsDir, 0755)

			vals := specToApply.Values
			if vals == nil {
				vals = values.Values{}
			}
			if localVals, err := values.FromYAMLFile(valuesPath); err == nil {
				if finalVals, err := vals.Merge(localVals); err == nil {
					vals = finalVals
				}
			}

			if upstreamUser != "" || upstreamPassword != "" || upstreamDatabase != "" {
				if upstreamUser == "" || upstreamPassword == "" || upstreamDatabase == "" {
					fmt.Println("All of --upstream-user, --upstream-password and --upstream-database are required together.")
					os.Exit(1)
				}
				if err := upsertUpstreamSecret(upstreamUser, upstreamPassword, upstreamDatabase, namespace); err != nil {
					fmt.Println("Error creating upstream database secret:", err)
					os.Exit(1)
				}
			}

			if chartPath == "" {
				fmt.Println("Downloading ReadySet chart from", specToApply.Chart.URL)
				chartPath = downloadReadySetChart(
					specToApply.Chart.URL, specToApply.Chart.Name, specToApply.Chart.Version, chartsDir)
			}

			readysetChart := loadChart(chartPath)

			if airgapped {
				chartBinary, err := base64EncodeFile(chartPath)
				if err != nil {
					fmt.Println("Error reading chart archive:", err)
					os.Exit(1)
				}
				if err := kubectl.UpsertConfigMap(map[string]string{
					helm.ReadySetChart: chartBinary,
				}, "readyset-charts", namespace); err != nil {
					fmt.Println("Error upserting chart config map:", err)
					os.Exit(1)
				}
			}

			rel := deployChart(namespace, releaseName, readysetChart, vals.AsMap())

			banner := ""
			if rel != nil && rel.Info != nil {
				banner = rel.Info.Notes
			}
			if banner == "" {
				banner, err = notes.FromChart(readysetChart, notes.Options{
					ReleaseName: releaseName,
					Namespace:   namespace,
					Values:      vals.AsMap(),
				})
				if err != nil {
					fmt.Println("Error rendering notes:", err)
					os.Exit(1)
				}
			}

			fmt.Println()
			fmt.Println(banner)
		},
	}

	cmd.Flags().StringVarP(&bundlePath, "bundle", "b", "", "Path to the bundle to deploy with. Cannot be combined with chart.")
	cmd.Flags().StringVarP(&chartPath, "chart", "c", "", "Path to the ReadySet helm chart. Cannot be combined with bundle.")
	cmd.Flags().StringVarP(&valuesPath, "values", "v", "", "Values file to apply to the helm chart yaml.")
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "Namespace to deploy into.")
	cmd.Flags().StringVarP(&channel, "channel", "", "", "Release channel to deploy from.")
	cmd.Flags().BoolVarP(&airgapped, "airgapped", "a", false, "Deploy in airgapped mode.")
	cmd.Flags().StringVarP(&upstreamUser, "upstream-user", "", "", "Upstream database username to store in the credentials secret.")
	cmd.Flags().StringVarP(&upstreamPassword, "upstream-password", "", "", "Upstream database password to store in the credentials secret.")
	cmd.Flags().StringVarP(&upstreamDatabase, "upstream-database", "", "", "Upstream database name to store in the credentials secret.")

	return cmd
}
