package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kovyrin/readyset/pkg/connect"
)

func init() {
	rootCmd.AddCommand(ConnectCmd())
}

var connectHeaderStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("14")).
	Bold(true)

// ConnectCmd prints the commands to fetch credentials and open a mysql
// session through the adapter. It prints them instead of running them: the
// credentials stay between kubectl and the operator's shell.
func ConnectCmd() *cobra.Command {
	var namespace string
	var secretName string
	var serviceName string

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Show how to connect to a deployed ReadySet instance",
		Run: func(cmd *cobra.Command, args []string) {
			target := connect.Target{
				SecretName:  secretName,
				ServiceName: serviceName,
				Namespace:   namespace,
			}

			fmt.Println(connectHeaderStyle.Render("Run the following to connect to ReadySet:"))
			fmt.Println()
			fmt.Println(target.Script())
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "Namespace the release was deployed into.")
	cmd.Flags().StringVarP(&secretName, "secret", "", "", "Name of the upstream database credentials secret.")
	cmd.Flags().StringVarP(&serviceName, "service", "", "", "Name of the adapter service.")

	return cmd
}
