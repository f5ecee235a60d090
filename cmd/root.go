/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logrus.New()

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "topology-stack",
	Short: "Deploy a small AWS web-service topology and export a diagram of it",
	Long: `topology-stack deploys a single-region AWS web-service topology
(VPC, subnets, security groups, one EC2 instance behind an application
load balancer) through the Pulumi Automation API, and exports a CSV
description of the topology in the diagrams.net import dialect.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("verbosity", "info", "Log verbosity (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("structuredLogs", false, "Emit logs as JSON")
	viper.BindPFlag("structuredLogs", rootCmd.PersistentFlags().Lookup("structuredLogs"))

	rootCmd.PersistentFlags().StringP("stackName", "s", "dev", "Stack name to deploy")
	viper.BindPFlag("stackName", rootCmd.PersistentFlags().Lookup("stackName"))
	rootCmd.PersistentFlags().StringP("region", "r", "us-east-1", "AWS region to deploy into")
	viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	rootCmd.PersistentFlags().StringP("workingFolderPath", "w", ".", "Working folder path for generated artifacts")
	viper.BindPFlag("workingFolderPath", rootCmd.PersistentFlags().Lookup("workingFolderPath"))
	rootCmd.PersistentFlags().Bool("skipRefresh", false, "Skip the stack refresh before the operation")
	viper.BindPFlag("skipRefresh", rootCmd.PersistentFlags().Lookup("skipRefresh"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetDefault("projectName", "topology-stack")
	viper.SetDefault("vpcCidr", "10.0.0.0/16")
	viper.SetDefault("availabilityZoneCount", 2)
	viper.SetDefault("publicSubnetCidrs", []string{"10.0.0.0/24", "10.0.1.0/24"})
	viper.SetDefault("privateSubnetCidrs", []string{"10.0.10.0/24", "10.0.11.0/24"})
	viper.SetDefault("instanceType", "t3.micro")
	viper.SetDefault("amiNamePattern", "al2023-ami-2023.*-kernel-6.1-x86_64")
	viper.SetDefault("amiOwner", "amazon")
	viper.SetDefault("rootVolumeSizeGb", 20)
	viper.SetDefault("appPort", 8080)
	viper.SetDefault("listenerPort", 80)
	viper.SetDefault("healthCheckPath", "/healthz")
	viper.SetDefault("diagramTitle", "Web service topology")

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
