package stack

import (
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/ec2"
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/lb"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/webstack-io/topology-stack/diagram"
)

func (topologyStack *TopologyStack) export(ctx *pulumi.Context, network *networkResources, instance *ec2.Instance, loadBalancer *loadBalancerResources) {
	publicSubnetIds := pulumi.StringArray{}
	for _, subnet := range network.PublicSubnets {
		publicSubnetIds = append(publicSubnetIds, subnet.ID())
	}
	privateSubnetIds := pulumi.StringArray{}
	for _, subnet := range network.PrivateSubnets {
		privateSubnetIds = append(privateSubnetIds, subnet.ID())
	}

	ctx.Export(VpcIdOutput, network.Vpc.ID())
	ctx.Export(PublicSubnetIdsOutput, publicSubnetIds)
	ctx.Export(PrivateSubnetIdsOutput, privateSubnetIds)
	ctx.Export(InstanceIdOutput, instance.ID())
	ctx.Export(InstancePublicIpOutput, instance.PublicIp)
	ctx.Export(AlbDnsNameOutput, loadBalancer.LoadBalancer.DnsName)
	ctx.Export(TopologyCsvOutput, topologyStack.diagramOutput(instance, loadBalancer.LoadBalancer))
}

// diagramOutput resolves the provisioned instance ID and load balancer name
// and renders the topology diagram from them. A diagram error fails the
// deployment rather than exporting a corrupt diagram.
func (topologyStack *TopologyStack) diagramOutput(instance *ec2.Instance, loadBalancer *lb.LoadBalancer) pulumi.StringOutput {
	return pulumi.All(instance.ID(), loadBalancer.Name).ApplyT(func(args []interface{}) (string, error) {
		instanceId := string(args[0].(pulumi.ID))
		loadBalancerName := args[1].(string)

		builder := diagram.NewBuilder()
		_, err := builder.NewNode(diagram.KindLoadBalancer, loadBalancerName)
		if err != nil {
			return "", err
		}
		instanceNode, err := builder.NewNode(diagram.KindComputeInstance, instanceId)
		if err != nil {
			return "", err
		}
		if err := builder.AddReference(instanceNode, loadBalancerName); err != nil {
			return "", err
		}

		return diagram.Render(topologyStack.Settings.DiagramTitle, builder.Nodes()), nil
	}).(pulumi.StringOutput)
}
