package stack

import (
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/ec2"
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/lb"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

type loadBalancerResources struct {
	LoadBalancer *lb.LoadBalancer
	TargetGroup  *lb.TargetGroup
	Listener     *lb.Listener
}

// buildLoadBalancer declares the internet-facing ALB across the public
// subnets, its target group on the application port, the forwarding listener,
// and the attachment binding the web instance into the target group.
func (topologyStack *TopologyStack) buildLoadBalancer(ctx *pulumi.Context, network *networkResources, groups *securityGroups, instance *ec2.Instance) (*loadBalancerResources, error) {
	settings := topologyStack.Settings

	subnetIds := pulumi.StringArray{}
	for _, subnet := range network.PublicSubnets {
		subnetIds = append(subnetIds, subnet.ID())
	}

	loadBalancer, err := lb.NewLoadBalancer(ctx, "web-alb", &lb.LoadBalancerArgs{
		Name:             pulumi.String("web-alb"),
		Internal:         pulumi.Bool(false),
		LoadBalancerType: pulumi.String("application"),
		SecurityGroups:   pulumi.StringArray{groups.LoadBalancer.ID()},
		Subnets:          subnetIds,
		Tags:             nameTag("web-alb"),
	})
	if err != nil {
		return nil, err
	}

	targetGroup, err := lb.NewTargetGroup(ctx, "web-tg", &lb.TargetGroupArgs{
		Port:       pulumi.Int(settings.AppPort),
		Protocol:   pulumi.String("HTTP"),
		TargetType: pulumi.String("instance"),
		VpcId:      network.Vpc.ID(),
		HealthCheck: &lb.TargetGroupHealthCheckArgs{
			Path:    pulumi.String(settings.HealthCheckPath),
			Matcher: pulumi.String("200"),
		},
		Tags: nameTag("web-tg"),
	})
	if err != nil {
		return nil, err
	}

	listener, err := lb.NewListener(ctx, "web-listener", &lb.ListenerArgs{
		LoadBalancerArn: loadBalancer.Arn,
		Port:            pulumi.Int(settings.ListenerPort),
		Protocol:        pulumi.String("HTTP"),
		DefaultActions: lb.ListenerDefaultActionArray{
			&lb.ListenerDefaultActionArgs{
				Type:           pulumi.String("forward"),
				TargetGroupArn: targetGroup.Arn,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	_, err = lb.NewTargetGroupAttachment(ctx, "web-tg-attachment", &lb.TargetGroupAttachmentArgs{
		TargetGroupArn: targetGroup.Arn,
		TargetId:       instance.ID(),
		Port:           pulumi.Int(settings.AppPort),
	})
	if err != nil {
		return nil, err
	}

	return &loadBalancerResources{
		LoadBalancer: loadBalancer,
		TargetGroup:  targetGroup,
		Listener:     listener,
	}, nil
}
