package main

import (
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/app"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		panic(err)
	}

	err := app.NewTodoApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
