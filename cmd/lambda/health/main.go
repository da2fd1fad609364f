package main

import (
	"health-responder/internal/config"
	"health-responder/pkg/lambda"
	"health-responder/pkg/server"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

var container *server.Container

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err = server.NewContainer(cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func main() {
	sc := config.GetServerlessConfig()
	container.Logger.WithFields(logrus.Fields{
		"function_name": sc.FunctionName,
		"region":        sc.Region,
		"stage":         sc.Stage,
	}).Info("Health responder starting")

	awslambda.StartHandler(lambda.NewHandler(container.Responder, container.Logger))
}
