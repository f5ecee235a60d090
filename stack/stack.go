package stack

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/sirupsen/logrus"

	"github.com/webstack-io/topology-stack/types"
)

// Stack output keys.
const (
	VpcIdOutput            = "vpcId"
	PublicSubnetIdsOutput  = "publicSubnetIds"
	PrivateSubnetIdsOutput = "privateSubnetIds"
	InstanceIdOutput       = "instanceId"
	InstancePublicIpOutput = "instancePublicIp"
	AlbDnsNameOutput       = "albDnsName"
	TopologyCsvOutput      = "topologyCsv"
)

type TopologyStack struct {
	Settings types.StackSettings
	Logger   *logrus.Logger
}

func NewTopologyStack(settings types.StackSettings, logger *logrus.Logger) *TopologyStack {
	return &TopologyStack{
		Settings: settings,
		Logger:   logger,
	}
}

// Program returns the inline Pulumi program declaring the whole topology.
func (topologyStack *TopologyStack) Program() pulumi.RunFunc {
	return func(ctx *pulumi.Context) error {
		network, err := topologyStack.buildNetwork(ctx)
		if err != nil {
			return err
		}

		groups, err := topologyStack.buildSecurityGroups(ctx, network)
		if err != nil {
			return err
		}

		instance, err := topologyStack.buildInstance(ctx, network, groups)
		if err != nil {
			return err
		}

		loadBalancer, err := topologyStack.buildLoadBalancer(ctx, network, groups, instance)
		if err != nil {
			return err
		}

		topologyStack.export(ctx, network, instance, loadBalancer)
		return nil
	}
}
