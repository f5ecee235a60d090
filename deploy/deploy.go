package deploy

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optdestroy"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optpreview"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optup"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/sirupsen/logrus"
)

// Version of the AWS provider plugin installed into the workspace. Keep in
// step with the pulumi-aws SDK version in go.mod.
const awsPluginVersion = "v6.56.1"

type IDeployClient interface {
	Up() (map[string]any, error)
	Preview() error
	Destroy() error
}

type DeployClient struct {
	ProjectName string
	StackName   string
	Region      string
	SkipRefresh bool
	Program     pulumi.RunFunc
	RunID       string
	Logger      *logrus.Logger
}

func NewDeployClient(projectName string, stackName string, region string, skipRefresh bool, program pulumi.RunFunc, logger *logrus.Logger) *DeployClient {
	return &DeployClient{
		ProjectName: projectName,
		StackName:   stackName,
		Region:      region,
		SkipRefresh: skipRefresh,
		Program:     program,
		RunID:       uuid.NewString(),
		Logger:      logger,
	}
}

func (deployClient *DeployClient) selectStack(ctx context.Context) (auto.Stack, error) {
	stack, err := auto.UpsertStackInlineSource(ctx, deployClient.StackName, deployClient.ProjectName, deployClient.Program)
	if err != nil {
		return auto.Stack{}, fmt.Errorf("creating or selecting stack %s: %w", deployClient.StackName, err)
	}

	deployClient.Logger.Debugf("Run %s: installing AWS plugin %s", deployClient.RunID, awsPluginVersion)
	if err := stack.Workspace().InstallPlugin(ctx, "aws", awsPluginVersion); err != nil {
		return auto.Stack{}, fmt.Errorf("installing AWS plugin: %w", err)
	}

	if err := stack.SetConfig(ctx, "aws:region", auto.ConfigValue{Value: deployClient.Region}); err != nil {
		return auto.Stack{}, fmt.Errorf("setting aws:region: %w", err)
	}

	return stack, nil
}

func (deployClient *DeployClient) refresh(ctx context.Context, stack auto.Stack) error {
	if deployClient.SkipRefresh {
		deployClient.Logger.Debug("Skipping stack refresh")
		return nil
	}
	deployClient.Logger.Infof("Refreshing stack %s", deployClient.StackName)
	_, err := stack.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("refreshing stack %s: %w", deployClient.StackName, err)
	}
	return nil
}

// Up deploys the stack and returns its outputs, secrets unwrapped.
func (deployClient *DeployClient) Up() (map[string]any, error) {
	ctx := context.Background()
	stack, err := deployClient.selectStack(ctx)
	if err != nil {
		return nil, err
	}
	if err := deployClient.refresh(ctx, stack); err != nil {
		return nil, err
	}

	deployClient.Logger.Infof("Run %s: deploying stack %s", deployClient.RunID, deployClient.StackName)
	result, err := stack.Up(ctx, optup.ProgressStreams(deployClient.Logger.Writer()))
	if err != nil {
		return nil, fmt.Errorf("deploying stack %s: %w", deployClient.StackName, err)
	}

	deployClient.Logger.Infof("Stack %s deployed", deployClient.StackName)
	return flattenOutputs(result.Outputs), nil
}

func (deployClient *DeployClient) Preview() error {
	ctx := context.Background()
	stack, err := deployClient.selectStack(ctx)
	if err != nil {
		return err
	}
	if err := deployClient.refresh(ctx, stack); err != nil {
		return err
	}

	deployClient.Logger.Infof("Run %s: previewing stack %s", deployClient.RunID, deployClient.StackName)
	result, err := stack.Preview(ctx, optpreview.ProgressStreams(deployClient.Logger.Writer()))
	if err != nil {
		return fmt.Errorf("previewing stack %s: %w", deployClient.StackName, err)
	}

	for op, count := range result.ChangeSummary {
		deployClient.Logger.Infof("Planned operation: %s x%d", op, count)
	}
	return nil
}

func (deployClient *DeployClient) Destroy() error {
	ctx := context.Background()
	stack, err := deployClient.selectStack(ctx)
	if err != nil {
		return err
	}
	if err := deployClient.refresh(ctx, stack); err != nil {
		return err
	}

	deployClient.Logger.Infof("Run %s: destroying stack %s", deployClient.RunID, deployClient.StackName)
	_, err = stack.Destroy(ctx, optdestroy.ProgressStreams(deployClient.Logger.Writer()))
	if err != nil {
		return fmt.Errorf("destroying stack %s: %w", deployClient.StackName, err)
	}

	deployClient.Logger.Infof("Stack %s destroyed", deployClient.StackName)
	return nil
}

func flattenOutputs(outputs auto.OutputMap) map[string]any {
	flattened := map[string]any{}
	for key, output := range outputs {
		flattened[key] = output.Value
	}
	return flattened
}
