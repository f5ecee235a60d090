package stack

import (
	"strings"
	"sync"
	"testing"

	"github.com/pulumi/pulumi/sdk/v3/go/common/resource"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webstack-io/topology-stack/types"
)

type topologyMocks struct{}

func (topologyMocks) NewResource(args pulumi.MockResourceArgs) (string, resource.PropertyMap, error) {
	outputs := args.Inputs.Copy()
	switch args.TypeToken {
	case "aws:ec2/instance:Instance":
		outputs["publicIp"] = resource.NewStringProperty("203.0.113.12")
	case "aws:lb/loadBalancer:LoadBalancer":
		outputs["dnsName"] = resource.NewStringProperty(args.Name + ".elb.amazonaws.com")
		outputs["arn"] = resource.NewStringProperty("arn:aws:elasticloadbalancing:us-east-1:000000000000:loadbalancer/app/" + args.Name)
	case "aws:lb/targetGroup:TargetGroup":
		outputs["arn"] = resource.NewStringProperty("arn:aws:elasticloadbalancing:us-east-1:000000000000:targetgroup/" + args.Name)
	}
	return args.Name + "_id", outputs, nil
}

func (topologyMocks) Call(args pulumi.MockCallArgs) (resource.PropertyMap, error) {
	switch args.Token {
	case "aws:index/getAvailabilityZones:getAvailabilityZones":
		return resource.PropertyMap{
			"names": resource.NewArrayProperty([]resource.PropertyValue{
				resource.NewStringProperty("us-east-1a"),
				resource.NewStringProperty("us-east-1b"),
				resource.NewStringProperty("us-east-1c"),
			}),
		}, nil
	case "aws:ec2/getAmi:getAmi":
		return resource.PropertyMap{
			"id":   resource.NewStringProperty("ami-0123456789abcdef0"),
			"name": resource.NewStringProperty("al2023-ami-2023.4.20240611.0-kernel-6.1-x86_64"),
		}, nil
	}
	return resource.PropertyMap{}, nil
}

func testSettings() types.StackSettings {
	return types.StackSettings{
		ProjectName:           "topology-stack",
		StackName:             "test",
		Region:                "us-east-1",
		VpcCidr:               "10.0.0.0/16",
		AvailabilityZoneCount: 2,
		PublicSubnetCidrs:     []string{"10.0.0.0/24", "10.0.1.0/24"},
		PrivateSubnetCidrs:    []string{"10.0.10.0/24", "10.0.11.0/24"},
		InstanceType:          "t3.micro",
		AmiNamePattern:        "al2023-ami-2023.*-kernel-6.1-x86_64",
		AmiOwner:              "amazon",
		RootVolumeSizeGb:      20,
		AppPort:               8080,
		ListenerPort:          80,
		HealthCheckPath:       "/healthz",
		AdminSshCidr:          "198.51.100.0/24",
		AlbIngress: []types.IngressRule{
			{Description: "HTTP from anywhere", Port: 80, Protocol: "tcp", CidrBlocks: []string{"0.0.0.0/0"}},
		},
		DiagramTitle: "Web service topology",
	}
}

func TestTopologyStack_BuildNetwork(t *testing.T) {
	topologyStack := NewTopologyStack(testSettings(), logrus.New())

	err := pulumi.RunErr(func(ctx *pulumi.Context) error {
		network, err := topologyStack.buildNetwork(ctx)
		require.NoError(t, err)

		assert.NotNil(t, network.Vpc)
		assert.NotNil(t, network.InternetGateway)
		assert.Len(t, network.PublicSubnets, 2)
		assert.Len(t, network.PrivateSubnets, 2)
		return nil
	}, pulumi.WithMocks("topology-stack", "test", topologyMocks{}))

	assert.NoError(t, err)
}

func TestTopologyStack_DiagramOutput(t *testing.T) {
	topologyStack := NewTopologyStack(testSettings(), logrus.New())

	err := pulumi.RunErr(func(ctx *pulumi.Context) error {
		network, err := topologyStack.buildNetwork(ctx)
		require.NoError(t, err)
		groups, err := topologyStack.buildSecurityGroups(ctx, network)
		require.NoError(t, err)
		instance, err := topologyStack.buildInstance(ctx, network, groups)
		require.NoError(t, err)
		loadBalancer, err := topologyStack.buildLoadBalancer(ctx, network, groups, instance)
		require.NoError(t, err)

		var wg sync.WaitGroup
		wg.Add(1)
		topologyStack.diagramOutput(instance, loadBalancer.LoadBalancer).ApplyT(func(topologyCsv string) error {
			defer wg.Done()

			assert.Contains(t, topologyCsv, "## Web service topology")
			assert.Contains(t, topologyCsv, "component,fill,stroke,shape,refs")

			lines := strings.Split(strings.TrimRight(topologyCsv, "\n"), "\n")
			assert.Equal(t, "web-alb,#8C4FFF,#ffffff,mxgraph.aws4.application_load_balancer,", lines[len(lines)-2])
			assert.Equal(t, "web-instance_id,#ED7100,#ffffff,mxgraph.aws4.ec2,web-alb", lines[len(lines)-1])
			return nil
		})
		wg.Wait()
		return nil
	}, pulumi.WithMocks("topology-stack", "test", topologyMocks{}))

	assert.NoError(t, err)
}

func TestTopologyStack_Program(t *testing.T) {
	topologyStack := NewTopologyStack(testSettings(), logrus.New())

	err := pulumi.RunErr(topologyStack.Program(), pulumi.WithMocks("topology-stack", "test", topologyMocks{}))

	assert.NoError(t, err)
}
