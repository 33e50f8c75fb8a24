package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kovyrin/readyset/pkg/deployer"
	"github.com/kovyrin/readyset/pkg/helm"
	"github.com/kovyrin/readyset/pkg/images"
	"github.com/kovyrin/readyset/pkg/term/pkgm"
	"github.com/kovyrin/readyset/pkg/utils"
)

func init() {
	rootCmd.AddCommand(DownloadCmd())
}

func downloadChartImages(
	url string,
	name string,
	version string,
	vals map[string]interface{},
) ([]string, error) {
	chartsDir := "bundle/charts"
	if err := os.MkdirAll(chartsDir, 0755); err != nil {
		return nil, err
	}

	chartPath, err := helm.DownloadChart(url, name, version, chartsDir)
	if err != nil {
		return nil, err
	}

	runs, err := helm.GetRuntimeObjects(chartPath, vals)
	if err != nil {
		return nil, err
	}
	return helm.ExtractImages(runs), nil
}

func DownloadCmd() *cobra.Command {
	var channel string

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Build an airgap bundle with the chart and its images",
		Run: func(cmd *cobra.Command, args []string) {
			channelSpec, err := deployer.GetChannelSpec(channel)
			if err != nil {
				fmt.Println("Channel API unavailable, using the public chart repo:", err)
				channelSpec = deployer.DefaultSpec()
			}

			fmt.Println("Downloading readyset helm chart")
			imgs, err := downloadChartImages(
				channelSpec.Chart.URL,
				channelSpec.Chart.Name,
				channelSpec.Chart.Version,
				channelSpec.Values,
			)
			if err != nil {
				fmt.Println("Error downloading chart images:", err)
				os.Exit(1)
			}

			imgs = utils.RemoveDuplicates(utils.EnsureReadySetSemverCompatibleImages(imgs))
			if len(imgs) == 0 {
				fmt.Println("No images to download.")
				os.Exit(1)
			}

			yamlData, err := yaml.Marshal(channelSpec)
			if err != nil {
				panic(err)
			}
			if err = os.WriteFile("bundle/spec.yaml", yamlData, 0644); err != nil {
				panic(err)
			}

			cb := func(pkg string) {
				path := "bundle/images/" + pkg
				_ = os.MkdirAll(path, 0755)
				err := images.Download(pkg, path+"/image.tgz")
				if err != nil {
					fmt.Println(err)
				}
			}

			if _, err := pkgm.New(imgs, cb).Run(); err != nil {
				fmt.Println("Error downloading images:", err)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVarP(&channel, "channel", "", "", "Release channel to bundle.")

	return cmd
}
