package main

import (
	"fmt"

	"github.com/hokaccha/go-prettyjson"
	"github.com/janael-pinheiro/prtg-sensor-sdk-golang/pkg/encoding"
	"github.com/janael-pinheiro/prtg-sensor-sdk-golang/pkg/entities"
	"github.com/janael-pinheiro/prtg-sensor-sdk-golang/pkg/gateways/prtg"
	"github.com/janael-pinheiro/prtg-sensor-sdk-golang/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd(log *logrus.Entry) *cobra.Command {
	var definitionPath string
	var pretty bool

	cmd := &cobra.Command{
		Use:           "prtg-sensor",
		Short:         "Print a PRTG custom sensor result",
		Long:          "Print one PRTG custom sensor JSON result per sensor definition. Without a definition file the breakfast sample is printed.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, err := loadMessages(definitionPath)
			if err != nil {
				return err
			}
			log.WithField("sensors", len(messages)).Debug("messages loaded")

			if pretty {
				return printPretty(cmd, messages)
			}

			sender, err := prtg.NewSender(cmd.OutOrStdout(), encoding.NewJSONEncoder(), log)
			if err != nil {
				return errors.Wrap(err, "create sender")
			}
			return sender.SendMessages(messages)
		},
	}

	cmd.Flags().StringVarP(&definitionPath, "definition", "d", "", "Sensor definition YAML file")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent and colorize output for reading; PRTG expects the compact form")

	return cmd
}

func loadMessages(definitionPath string) ([]*entities.Message, error) {
	if definitionPath == "" {
		message, err := breakfastOrder()
		if err != nil {
			return nil, err
		}
		return []*entities.Message{message}, nil
	}

	definitions, err := utils.ConfigurationParser(definitionPath, entities.SensorDefinitions{})
	if err != nil {
		return nil, err
	}
	return definitions.ToMessages()
}

func breakfastOrder() (*entities.Message, error) {
	channels := []entities.Channel{
		entities.NewChannel("eggs", 0),
		entities.NewChannel("bacon", 3),
		entities.NewChannel("waffle", 1),
		entities.NewChannel("toast", 2),
	}
	return entities.NewMessage(channels, entities.WithText("Breakfast Order"))
}

func printPretty(cmd *cobra.Command, messages []*entities.Message) error {
	documents, err := encoding.EncodeAll(messages)
	if err != nil {
		return err
	}
	for _, document := range documents {
		formatted, err := prettyjson.Format(document)
		if err != nil {
			return errors.Wrap(err, "format document")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatted)
	}
	return nil
}
