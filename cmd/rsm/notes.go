package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kovyrin/readyset/pkg/helm"
	"github.com/kovyrin/readyset/pkg/helm/values"
	"github.com/kovyrin/readyset/pkg/notes"
)

func init() {
	rootCmd.AddCommand(NotesCmd())
}

// NotesCmd renders the chart's post-install banner without touching the
// cluster, for operators who dismissed the helm output.
func NotesCmd() *cobra.Command {
	var chartPath string
	var chartVersion string
	var appVersion string
	var releaseName string
	var namespace string
	var valuesPath string

	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Print the post-install connection notes",
		Run: func(cmd *cobra.Command, args []string) {
			vals := values.Values{}
			if valuesPath != "" {
				localVals, err := values.FromYAMLFile(valuesPath)
				if err != nil {
					fmt.Println("Error reading values file:", err)
					os.Exit(1)
				}
				vals = localVals
			}

			opts := notes.Options{
				ReleaseName: releaseName,
				Namespace:   namespace,
				Values:      vals.AsMap(),
			}

			var banner string
			var err error
			if chartPath != "" {
				banner, err = notes.FromChart(loadChart(chartPath), opts)
			} else {
				banner, err = notes.Render(notes.Metadata{
					Name:       helm.ReadySetChart,
					Version:    chartVersion,
					AppVersion: appVersion,
				}, opts)
			}
			if err != nil {
				fmt.Println("Error rendering notes:", err)
				os.Exit(1)
			}

			fmt.Print(banner)
		},
	}

	cmd.Flags().StringVarP(&chartPath, "chart", "c", "", "Path to a chart to render the notes from.")
	cmd.Flags().StringVarP(&chartVersion, "chart-version", "", "", "Chart version to show in the banner.")
	cmd.Flags().StringVarP(&appVersion, "app-version", "", "", "App version to show in the banner.")
	cmd.Flags().StringVarP(&releaseName, "release", "r", helm.DefaultReleaseName, "Release name the notes refer to.")
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "Namespace the release lives in.")
	cmd.Flags().StringVarP(&valuesPath, "values", "v", "", "Values file the chart was installed with.")

	return cmd
}
