package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_NewNode(t *testing.T) {
	builder := NewBuilder()

	node, err := builder.NewNode(KindLoadBalancer, "alb-1")
	require.NoError(t, err)

	assert.Equal(t, "alb-1", node.Name)
	assert.Equal(t, KindLoadBalancer, node.Kind)
	assert.Equal(t, "#8C4FFF", node.Style.Fill)
	assert.Equal(t, "#ffffff", node.Style.Stroke)
	assert.Equal(t, "mxgraph.aws4.application_load_balancer", node.Style.Shape)
	assert.Empty(t, node.References)
}

func TestBuilder_NewNode_EmptyName(t *testing.T) {
	builder := NewBuilder()

	node, err := builder.NewNode(KindComputeInstance, "")

	assert.Nil(t, node)
	var invalidName *InvalidNameError
	assert.ErrorAs(t, err, &invalidName)
}

func TestBuilder_NewNode_NameWithComma(t *testing.T) {
	builder := NewBuilder()

	node, err := builder.NewNode(KindComputeInstance, "a,b")

	assert.Nil(t, node)
	var invalidName *InvalidNameError
	require.ErrorAs(t, err, &invalidName)
	assert.Equal(t, "a,b", invalidName.Name)
}

func TestBuilder_NewNode_NameWithNewline(t *testing.T) {
	builder := NewBuilder()

	node, err := builder.NewNode(KindComputeInstance, "a\nb")

	assert.Nil(t, node)
	var invalidName *InvalidNameError
	assert.ErrorAs(t, err, &invalidName)
}

func TestBuilder_NewNode_UnknownKind(t *testing.T) {
	builder := NewBuilder()

	node, err := builder.NewNode(Kind("Database"), "db-1")

	assert.Nil(t, node)
	var unknownKind *UnknownKindError
	require.ErrorAs(t, err, &unknownKind)
	assert.Equal(t, Kind("Database"), unknownKind.Kind)
}

func TestBuilder_AddReference(t *testing.T) {
	builder := NewBuilder()
	alb, err := builder.NewNode(KindLoadBalancer, "alb-1")
	require.NoError(t, err)
	instance, err := builder.NewNode(KindComputeInstance, "i-1")
	require.NoError(t, err)

	err = builder.AddReference(instance, "alb-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"alb-1"}, instance.References)
	assert.Empty(t, alb.References)
}

func TestBuilder_AddReference_UnknownTarget(t *testing.T) {
	builder := NewBuilder()
	instance, err := builder.NewNode(KindComputeInstance, "i-1")
	require.NoError(t, err)

	err = builder.AddReference(instance, "alb-1")

	var unknownTarget *UnknownTargetError
	require.ErrorAs(t, err, &unknownTarget)
	assert.Equal(t, "alb-1", unknownTarget.Target)
	assert.Empty(t, instance.References)
}

func TestBuilder_AddReference_DeduplicatesTargets(t *testing.T) {
	builder := NewBuilder()
	_, err := builder.NewNode(KindLoadBalancer, "alb-1")
	require.NoError(t, err)
	instance, err := builder.NewNode(KindComputeInstance, "i-1")
	require.NoError(t, err)

	require.NoError(t, builder.AddReference(instance, "alb-1"))
	require.NoError(t, builder.AddReference(instance, "alb-1"))

	assert.Equal(t, []string{"alb-1"}, instance.References)
}

func TestBuilder_Nodes_InsertionOrder(t *testing.T) {
	builder := NewBuilder()
	_, err := builder.NewNode(KindLoadBalancer, "alb-1")
	require.NoError(t, err)
	_, err = builder.NewNode(KindComputeInstance, "i-1")
	require.NoError(t, err)
	_, err = builder.NewNode(KindComputeInstance, "i-2")
	require.NoError(t, err)

	nodes := builder.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, "alb-1", nodes[0].Name)
	assert.Equal(t, "i-1", nodes[1].Name)
	assert.Equal(t, "i-2", nodes[2].Name)
}

func TestStyleFor_UnknownKind(t *testing.T) {
	_, err := StyleFor(Kind("Queue"))

	var unknownKind *UnknownKindError
	assert.ErrorAs(t, err, &unknownKind)
}
