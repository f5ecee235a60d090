package stack

import (
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/ec2"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// buildInstance declares the single web instance in the first public subnet,
// on the most recent AMI matching the configured name pattern.
func (topologyStack *TopologyStack) buildInstance(ctx *pulumi.Context, network *networkResources, groups *securityGroups) (*ec2.Instance, error) {
	settings := topologyStack.Settings

	ami, err := ec2.LookupAmi(ctx, &ec2.LookupAmiArgs{
		MostRecent: pulumi.BoolRef(true),
		Owners:     []string{settings.AmiOwner},
		Filters: []ec2.GetAmiFilter{
			{
				Name:   "name",
				Values: []string{settings.AmiNamePattern},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	instance, err := ec2.NewInstance(ctx, "web-instance", &ec2.InstanceArgs{
		Ami:                      pulumi.String(ami.Id),
		InstanceType:             pulumi.String(settings.InstanceType),
		SubnetId:                 network.PublicSubnets[0].ID(),
		VpcSecurityGroupIds:      pulumi.StringArray{groups.Instance.ID()},
		AssociatePublicIpAddress: pulumi.Bool(true),
		RootBlockDevice: &ec2.InstanceRootBlockDeviceArgs{
			VolumeSize:          pulumi.Int(settings.RootVolumeSizeGb),
			VolumeType:          pulumi.String("gp3"),
			DeleteOnTermination: pulumi.Bool(true),
		},
		Tags: nameTag("web-instance"),
	})
	if err != nil {
		return nil, err
	}

	return instance, nil
}
