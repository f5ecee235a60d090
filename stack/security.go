package stack

import (
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/ec2"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

type securityGroups struct {
	LoadBalancer *ec2.SecurityGroup
	Instance     *ec2.SecurityGroup
}

// buildSecurityGroups declares the load balancer security group (ingress per
// config) and the instance security group, which only admits the application
// port from the load balancer group plus optional SSH from the admin CIDR.
func (topologyStack *TopologyStack) buildSecurityGroups(ctx *pulumi.Context, network *networkResources) (*securityGroups, error) {
	settings := topologyStack.Settings

	albIngress := ec2.SecurityGroupIngressArray{}
	for _, rule := range settings.AlbIngress {
		cidrBlocks := pulumi.StringArray{}
		for _, cidr := range rule.CidrBlocks {
			cidrBlocks = append(cidrBlocks, pulumi.String(cidr))
		}
		albIngress = append(albIngress, &ec2.SecurityGroupIngressArgs{
			Description: pulumi.String(rule.Description),
			FromPort:    pulumi.Int(rule.Port),
			ToPort:      pulumi.Int(rule.Port),
			Protocol:    pulumi.String(rule.Protocol),
			CidrBlocks:  cidrBlocks,
		})
	}

	loadBalancerGroup, err := ec2.NewSecurityGroup(ctx, "web-alb-sg", &ec2.SecurityGroupArgs{
		VpcId:       network.Vpc.ID(),
		Description: pulumi.String("Inbound traffic to the load balancer"),
		Ingress:     albIngress,
		Egress:      openEgress(),
		Tags:        nameTag("web-alb-sg"),
	})
	if err != nil {
		return nil, err
	}

	instanceIngress := ec2.SecurityGroupIngressArray{
		&ec2.SecurityGroupIngressArgs{
			Description:    pulumi.String("Application traffic from the load balancer"),
			FromPort:       pulumi.Int(settings.AppPort),
			ToPort:         pulumi.Int(settings.AppPort),
			Protocol:       pulumi.String("tcp"),
			SecurityGroups: pulumi.StringArray{loadBalancerGroup.ID()},
		},
	}
	if settings.AdminSshCidr != "" {
		instanceIngress = append(instanceIngress, &ec2.SecurityGroupIngressArgs{
			Description: pulumi.String("SSH from the admin network"),
			FromPort:    pulumi.Int(22),
			ToPort:      pulumi.Int(22),
			Protocol:    pulumi.String("tcp"),
			CidrBlocks:  pulumi.StringArray{pulumi.String(settings.AdminSshCidr)},
		})
	}

	instanceGroup, err := ec2.NewSecurityGroup(ctx, "web-instance-sg", &ec2.SecurityGroupArgs{
		VpcId:       network.Vpc.ID(),
		Description: pulumi.String("Inbound traffic to the web instance"),
		Ingress:     instanceIngress,
		Egress:      openEgress(),
		Tags:        nameTag("web-instance-sg"),
	})
	if err != nil {
		return nil, err
	}

	return &securityGroups{
		LoadBalancer: loadBalancerGroup,
		Instance:     instanceGroup,
	}, nil
}

func openEgress() ec2.SecurityGroupEgressArray {
	return ec2.SecurityGroupEgressArray{
		&ec2.SecurityGroupEgressArgs{
			FromPort:   pulumi.Int(0),
			ToPort:     pulumi.Int(0),
			Protocol:   pulumi.String("-1"),
			CidrBlocks: pulumi.StringArray{pulumi.String("0.0.0.0/0")},
		},
	}
}
