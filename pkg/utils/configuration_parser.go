package utils

import (
	"os"
	"path/filepath"

	"github.com/janael-pinheiro/prtg-sensor-sdk-golang/pkg/entities"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type config interface {
	entities.SensorDefinitions | entities.SensorDefinition
}

func readTextFile(filepathName string) ([]byte, error) {
	fileContent, err := os.ReadFile(filepath.Clean(filepathName))
	return fileContent, err
}

// ConfigurationParser reads the YAML file at filepathName into configEntity.
func ConfigurationParser[T config](filepathName string, configEntity T) (T, error) {
	fileContent, err := readTextFile(filepathName)
	if err != nil {
		return configEntity, errors.Wrap(err, "read configuration file")
	}

	err = yaml.UnmarshalStrict(fileContent, &configEntity)
	if err != nil {
		return configEntity, errors.Wrapf(err, "parse %s", filepath.Base(filepathName))
	}
	return configEntity, nil
}
