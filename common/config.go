package common

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

type config struct {
	DogName    string
	DogAge     int
	Increments int
	LogLevel   zerolog.Level
	LogPretty  bool
}

func newConfig() *config {
	return &config{
		DogName:    "Snoopy",
		DogAge:     5,
		Increments: 3,
		LogLevel:   zerolog.InfoLevel,
		LogPretty:  false,
	}
}

var Config *config

func Init() {
	Config = newConfig()

	if val := os.Getenv("DOG_NAME"); val != "" {
		Config.DogName = val
	}
	if val := os.Getenv("DOG_AGE"); val != "" {
		pVal, err := strconv.Atoi(val)
		if err != nil {
			panic(err)
		}
		Config.DogAge = pVal
	}
	if val := os.Getenv("INCREMENTS"); val != "" {
		pVal, err := strconv.Atoi(val)
		if err != nil {
			panic(err)
		}
		if pVal < 0 {
			panic(fmt.Errorf("INCREMENTS must not be negative, got %d", pVal))
		}
		Config.Increments = pVal
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		pVal, err := zerolog.ParseLevel(val)
		if err != nil {
			panic(err)
		}
		Config.LogLevel = pVal
	}
	if val := os.Getenv("LOG_PRETTY"); val != "" {
		Config.LogPretty = val == "true"
	}
}
