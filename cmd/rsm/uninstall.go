package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kovyrin/readyset/pkg/helm"
	"github.com/kovyrin/readyset/pkg/term/task"
)

func init() {
	rootCmd.AddCommand(UninstallCmd())
}

func UninstallCmd() *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove a ReadySet release",
		Run: func(cmd *cobra.Command, args []string) {
			releaseName := helm.DefaultReleaseName
			if len(args) > 0 {
				releaseName = args[0]
			}

			cb := func() error {
				return helm.Uninstall(namespace, releaseName)
			}
			if _, err := task.New("Uninstalling "+releaseName, cb).Run(); err != nil {
				fmt.Println("Error uninstalling release:", err)
				os.Exit(1)
			}

			fmt.Println("The upstream database secret and any persistent volumes are left in place.")
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "Namespace the release was deployed into.")

	return cmd
}
