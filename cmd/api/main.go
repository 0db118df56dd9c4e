package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/saulo-duarte/tutor-lambda/internal/config"
	"github.com/saulo-duarte/tutor-lambda/internal/container"
	"github.com/saulo-duarte/tutor-lambda/internal/router"
)

// @title        Tutor API
// @version      1.0
// @description  Relays teacher-persona prompts to an LLM completion API.
// @BasePath     /
func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		CorsOrigin:   c.Settings.CorsOrigin,
		TutorHandler: c.TutorContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(handler)
		lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		})
		return
	}

	addr := ":" + c.Settings.Port
	config.Logger.Infof("Server is running on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		config.Logger.WithError(err).Fatal("server stopped")
	}
}
