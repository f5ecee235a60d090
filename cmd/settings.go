package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/webstack-io/topology-stack/types"
)

func configureLogger(cmd *cobra.Command) {
	logVerbosity, _ := cmd.Flags().GetString("verbosity")
	logLevel, err := logrus.ParseLevel(logVerbosity)
	if err != nil {
		log.Fatalf("Invalid log level: %s", logVerbosity)
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{})
	if viper.GetBool("structuredLogs") {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	for key, value := range viper.GetViper().AllSettings() {
		log.Debugf("Command Flag: %s = %v", key, value)
	}
}

func loadSettings() types.StackSettings {
	settings := types.StackSettings{
		ProjectName:           viper.GetString("projectName"),
		StackName:             viper.GetString("stackName"),
		Region:                viper.GetString("region"),
		VpcCidr:               viper.GetString("vpcCidr"),
		AvailabilityZoneCount: viper.GetInt("availabilityZoneCount"),
		PublicSubnetCidrs:     viper.GetStringSlice("publicSubnetCidrs"),
		PrivateSubnetCidrs:    viper.GetStringSlice("privateSubnetCidrs"),
		InstanceType:          viper.GetString("instanceType"),
		AmiNamePattern:        viper.GetString("amiNamePattern"),
		AmiOwner:              viper.GetString("amiOwner"),
		RootVolumeSizeGb:      viper.GetInt("rootVolumeSizeGb"),
		AppPort:               viper.GetInt("appPort"),
		ListenerPort:          viper.GetInt("listenerPort"),
		HealthCheckPath:       viper.GetString("healthCheckPath"),
		AdminSshCidr:          viper.GetString("adminSshCidr"),
		DiagramTitle:          viper.GetString("diagramTitle"),
	}

	settings.AlbIngress = []types.IngressRule{
		{
			Description: "HTTP from anywhere",
			Port:        settings.ListenerPort,
			Protocol:    "tcp",
			CidrBlocks:  []string{"0.0.0.0/0"},
		},
	}
	if viper.InConfig("albIngress") {
		albIngress := []types.IngressRule{}
		albIngressRaw := viper.Get("albIngress").([]any)
		for _, rawRule := range albIngressRaw {
			ruleMap := rawRule.(map[string]any)
			cidrBlocks := []string{}
			for _, cidr := range ruleMap["cidrblocks"].([]any) {
				cidrBlocks = append(cidrBlocks, cidr.(string))
			}
			albIngress = append(albIngress, types.IngressRule{
				Description: ruleMap["description"].(string),
				Port:        ruleMap["port"].(int),
				Protocol:    ruleMap["protocol"].(string),
				CidrBlocks:  cidrBlocks,
			})
		}
		settings.AlbIngress = albIngress
	}

	if err := settings.Validate(); err != nil {
		log.Fatalf("Invalid stack settings: %v", err)
	}

	return settings
}
