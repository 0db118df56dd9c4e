package container

import (
	"log"

	"github.com/saulo-duarte/tutor-lambda/internal/config"
	"github.com/saulo-duarte/tutor-lambda/internal/tutor"
)

type Container struct {
	Settings       *config.Settings
	TutorContainer *tutor.TutorContainer
}

func New() *Container {
	config.Init()

	settings, err := config.LoadSettings(".env")
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}
	settings.ReportSecrets()

	return &Container{
		Settings:       settings,
		TutorContainer: tutor.NewTutorContainer(settings),
	}
}
