package stack

import (
	"fmt"

	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws"
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/ec2"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

type networkResources struct {
	Vpc             *ec2.Vpc
	InternetGateway *ec2.InternetGateway
	PublicSubnets   []*ec2.Subnet
	PrivateSubnets  []*ec2.Subnet
}

// buildNetwork declares the VPC, internet gateway, the public and private
// subnets spread over the first N availability zones, and the route tables
// wiring the public subnets to the internet gateway.
func (topologyStack *TopologyStack) buildNetwork(ctx *pulumi.Context) (*networkResources, error) {
	settings := topologyStack.Settings

	vpc, err := ec2.NewVpc(ctx, "web-vpc", &ec2.VpcArgs{
		CidrBlock:          pulumi.String(settings.VpcCidr),
		EnableDnsSupport:   pulumi.Bool(true),
		EnableDnsHostnames: pulumi.Bool(true),
		Tags:               nameTag("web-vpc"),
	})
	if err != nil {
		return nil, err
	}

	internetGateway, err := ec2.NewInternetGateway(ctx, "web-igw", &ec2.InternetGatewayArgs{
		VpcId: vpc.ID(),
		Tags:  nameTag("web-igw"),
	})
	if err != nil {
		return nil, err
	}

	zones, err := aws.GetAvailabilityZones(ctx, &aws.GetAvailabilityZonesArgs{
		State: pulumi.StringRef("available"),
	})
	if err != nil {
		return nil, err
	}
	if len(zones.Names) < settings.AvailabilityZoneCount {
		return nil, fmt.Errorf("region %s has %d availability zones, need %d", settings.Region, len(zones.Names), settings.AvailabilityZoneCount)
	}

	network := &networkResources{
		Vpc:             vpc,
		InternetGateway: internetGateway,
	}

	for i := 0; i < settings.AvailabilityZoneCount; i++ {
		subnetName := fmt.Sprintf("web-public-%d", i)
		publicSubnet, err := ec2.NewSubnet(ctx, subnetName, &ec2.SubnetArgs{
			VpcId:               vpc.ID(),
			AvailabilityZone:    pulumi.String(zones.Names[i]),
			CidrBlock:           pulumi.String(settings.PublicSubnetCidrs[i]),
			MapPublicIpOnLaunch: pulumi.Bool(true),
			Tags:                nameTag(subnetName),
		})
		if err != nil {
			return nil, err
		}
		network.PublicSubnets = append(network.PublicSubnets, publicSubnet)
	}

	for i := 0; i < settings.AvailabilityZoneCount; i++ {
		subnetName := fmt.Sprintf("web-private-%d", i)
		privateSubnet, err := ec2.NewSubnet(ctx, subnetName, &ec2.SubnetArgs{
			VpcId:            vpc.ID(),
			AvailabilityZone: pulumi.String(zones.Names[i]),
			CidrBlock:        pulumi.String(settings.PrivateSubnetCidrs[i]),
			Tags:             nameTag(subnetName),
		})
		if err != nil {
			return nil, err
		}
		network.PrivateSubnets = append(network.PrivateSubnets, privateSubnet)
	}

	publicRouteTable, err := ec2.NewRouteTable(ctx, "web-public-rt", &ec2.RouteTableArgs{
		VpcId: vpc.ID(),
		Tags:  nameTag("web-public-rt"),
	})
	if err != nil {
		return nil, err
	}

	_, err = ec2.NewRoute(ctx, "web-public-route", &ec2.RouteArgs{
		RouteTableId:         publicRouteTable.ID(),
		DestinationCidrBlock: pulumi.String("0.0.0.0/0"),
		GatewayId:            internetGateway.ID(),
	})
	if err != nil {
		return nil, err
	}

	for i, publicSubnet := range network.PublicSubnets {
		_, err := ec2.NewRouteTableAssociation(ctx, fmt.Sprintf("web-public-rta-%d", i), &ec2.RouteTableAssociationArgs{
			SubnetId:     publicSubnet.ID(),
			RouteTableId: publicRouteTable.ID(),
		})
		if err != nil {
			return nil, err
		}
	}

	privateRouteTable, err := ec2.NewRouteTable(ctx, "web-private-rt", &ec2.RouteTableArgs{
		VpcId: vpc.ID(),
		Tags:  nameTag("web-private-rt"),
	})
	if err != nil {
		return nil, err
	}

	for i, privateSubnet := range network.PrivateSubnets {
		_, err := ec2.NewRouteTableAssociation(ctx, fmt.Sprintf("web-private-rta-%d", i), &ec2.RouteTableAssociationArgs{
			SubnetId:     privateSubnet.ID(),
			RouteTableId: privateRouteTable.ID(),
		})
		if err != nil {
			return nil, err
		}
	}

	return network, nil
}

func nameTag(name string) pulumi.StringMap {
	return pulumi.StringMap{
		"Name": pulumi.String(name),
	}
}
