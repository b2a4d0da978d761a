package main

import (
	"skywitness/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.SightingModel{},
		model.WitnessDeviceModel{},
		model.AlertSubscriptionModel{},
		model.SightingAlertModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
