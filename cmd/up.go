/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/webstack-io/topology-stack/csv"
	"github.com/webstack-io/topology-stack/deploy"
	"github.com/webstack-io/topology-stack/filepathparser"
	"github.com/webstack-io/topology-stack/json"
	"github.com/webstack-io/topology-stack/stack"
)

// upCmd represents the up command
var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Deploy the topology and export its diagram",
	Long: `The up command deploys the full topology:

1. Declares the VPC, subnets, route tables and security groups
2. Declares the EC2 instance and the application load balancer in front of it
3. Deploys the stack through the Pulumi Automation API
4. Writes topology.csv (diagrams.net import dialect) and outputs.json
   into the working folder

Examples:
  # Deploy the dev stack with the bundled config
  topology-stack up --config ./config.yaml

  # Deploy into another region and stack
  topology-stack up --stackName staging --region eu-west-1`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogger(cmd)

		workingFolderPath, err := filepathparser.ParsePath(viper.GetString("workingFolderPath"))
		if err != nil {
			log.Fatalf("Error getting working folder path: %v", err)
		}
		if err := filepathparser.EnsureDir(workingFolderPath); err != nil {
			log.Fatalf("Error creating working folder: %v", err)
		}

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

		outputs, err := deployClient.Up()
		if err != nil {
			log.Fatalf("Deployment failed: %v", err)
		}

		topologyCsv, ok := outputs[stack.TopologyCsvOutput].(string)
		if !ok {
			log.Fatalf("Stack output %s is missing or not a string", stack.TopologyCsvOutput)
		}

		csvClient := csv.NewTopologyCsvClient(workingFolderPath, log)
		csvClient.Export(topologyCsv)

		jsonClient := json.NewJsonClient(workingFolderPath, log)
		jsonClient.Export(outputs, "outputs.json")
	},
}

func init() {
	rootCmd.AddCommand(upCmd)
}
