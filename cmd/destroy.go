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

// destroyCmd represents the destroy command
var destroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Tear the deployed topology down",
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

		if err := deployClient.Destroy(); err != nil {
			log.Fatalf("Destroy failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(destroyCmd)
}
