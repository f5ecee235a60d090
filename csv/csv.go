package csv

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const topologyCsvFileName = "topology.csv"

type ITopologyCsvClient interface {
	Export(topologyCsv string)
}

type TopologyCsvClient struct {
	WorkingFolderPath string
	Logger            *logrus.Logger
}

func NewTopologyCsvClient(workingFolderPath string, logger *logrus.Logger) *TopologyCsvClient {
	return &TopologyCsvClient{
		WorkingFolderPath: workingFolderPath,
		Logger:            logger,
	}
}

// Export writes the rendered diagram into the working folder. The text is
// already in the diagrams.net import dialect, directive header included, so it
// is written verbatim rather than through an encoding/csv writer, which would
// quote the directive lines.
func (csvClient *TopologyCsvClient) Export(topologyCsv string) {
	csvFilePath := filepath.Join(csvClient.WorkingFolderPath, topologyCsvFileName)
	err := os.WriteFile(csvFilePath, []byte(topologyCsv), 0644)
	if err != nil {
		csvClient.Logger.Fatalf("Failed to write CSV file: %v", err)
	}
	csvClient.Logger.Infof("Topology diagram written to %s", csvFilePath)
}
