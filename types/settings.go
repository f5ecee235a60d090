package types

import "fmt"

type IngressRule struct {
	Description string
	Port        int
	Protocol    string
	CidrBlocks  []string
}

// StackSettings carries everything the inline Pulumi program needs to declare
// the topology. Values come from the config file and command flags.
type StackSettings struct {
	ProjectName string
	StackName   string
	Region      string

	VpcCidr               string
	AvailabilityZoneCount int
	PublicSubnetCidrs     []string
	PrivateSubnetCidrs    []string

	InstanceType     string
	AmiNamePattern   string
	AmiOwner         string
	RootVolumeSizeGb int

	AppPort         int
	ListenerPort    int
	HealthCheckPath string
	AdminSshCidr    string
	AlbIngress      []IngressRule

	DiagramTitle string
}

func (settings *StackSettings) Validate() error {
	if settings.ProjectName == "" {
		return fmt.Errorf("projectName must be set")
	}
	if settings.StackName == "" {
		return fmt.Errorf("stackName must be set")
	}
	if settings.Region == "" {
		return fmt.Errorf("region must be set")
	}
	if settings.VpcCidr == "" {
		return fmt.Errorf("vpcCidr must be set")
	}
	if settings.AvailabilityZoneCount < 2 {
		return fmt.Errorf("availabilityZoneCount must be at least 2, the load balancer needs subnets in two availability zones")
	}
	if len(settings.PublicSubnetCidrs) < settings.AvailabilityZoneCount {
		return fmt.Errorf("need %d publicSubnetCidrs, got %d", settings.AvailabilityZoneCount, len(settings.PublicSubnetCidrs))
	}
	if len(settings.PrivateSubnetCidrs) < settings.AvailabilityZoneCount {
		return fmt.Errorf("need %d privateSubnetCidrs, got %d", settings.AvailabilityZoneCount, len(settings.PrivateSubnetCidrs))
	}
	if settings.InstanceType == "" {
		return fmt.Errorf("instanceType must be set")
	}
	if settings.AppPort <= 0 {
		return fmt.Errorf("appPort must be a positive port number, got %d", settings.AppPort)
	}
	if settings.ListenerPort <= 0 {
		return fmt.Errorf("listenerPort must be a positive port number, got %d", settings.ListenerPort)
	}
	return nil
}
