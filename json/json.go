package json

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

type IJsonClient interface {
	Export(outputs any, fileName string)
}

type JsonClient struct {
	WorkingFolderPath string
	Logger            *logrus.Logger
}

func NewJsonClient(workingFolderPath string, logger *logrus.Logger) *JsonClient {
	return &JsonClient{
		WorkingFolderPath: workingFolderPath,
		Logger:            logger,
	}
}

// Export writes the stack outputs into the working folder as indented JSON.
func (jsonClient *JsonClient) Export(outputs any, fileName string) {
	jsonOutputs, err := json.MarshalIndent(outputs, "", "  ")
	if err != nil {
		jsonClient.Logger.Fatal("Error during Marshal(): ", err)
	}
	jsonFilePath := filepath.Join(jsonClient.WorkingFolderPath, fileName)
	err = os.WriteFile(jsonFilePath, jsonOutputs, 0644)
	if err != nil {
		jsonClient.Logger.Fatal("Error writing file: ", err)
	}
	jsonClient.Logger.Infof("Stack outputs written to %s", jsonFilePath)
}
