package main

import (
	_ "github.com/edusight/dropout-api/docs"
	"github.com/edusight/dropout-api/internal/bootstrap"
)

// @title Dropout Prediction API
// @version 1.0.0
// @description API for predicting student dropout risk from session interaction logs

// @host localhost:8080
// @BasePath /v1

func main() {
	bootstrap.Run()
}
