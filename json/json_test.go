package json

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonClient_Export(t *testing.T) {
	workingFolder := t.TempDir()
	jsonClient := NewJsonClient(workingFolder, logrus.New())
	outputs := map[string]any{
		"vpcId":      "vpc-123",
		"albDnsName": "web-alb.elb.amazonaws.com",
	}

	jsonClient.Export(outputs, "outputs.json")

	written, err := os.ReadFile(filepath.Join(workingFolder, "outputs.json"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(written, &decoded))
	assert.Equal(t, "vpc-123", decoded["vpcId"])
	assert.Equal(t, "web-alb.elb.amazonaws.com", decoded["albDnsName"])
}
