/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/webstack-io/topology-stack/deploy"
	"github.com/webstack-io/topology-stack/stack"
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the changes a deployment would make",
	Run: func(cmd *cobra.Command, args []string) {
		configureLogger(cmd)

		settings := loadSettings()
		topologyStack := stack.NewTopologyStack(settings, log)

		deployClient := deploy.NewDeployClient(
			settings.ProjectName,
			settings.StackName,
			settings.Region,
			viper.GetBool("skipRefresh"),
			topologyStack.Program(),
			log,
		)

		if err := deployClient.Preview(); err != nil {
			log.Fatalf("Preview failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
